package mock

import (
	"sort"
	"strings"
	"sync"
	"time"
)

// Template is the JSON shape served for a template. Ids are integers, as on
// the real backend.
type Template struct {
	ID        int      `json:"id"`
	Title     string   `json:"title"`
	Content   string   `json:"content"`
	Tags      []string `json:"tags"`
	CreatedAt string   `json:"created_at"`
	UpdatedAt string   `json:"updated_at"`
}

// Tag is the JSON shape served for a tag
type Tag struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

type storedTemplate struct {
	id        int
	title     string
	content   string
	tags      []string
	createdAt time.Time
	updatedAt time.Time
}

// Store is the in-memory template and tag repository behind the mock backend
type Store struct {
	mu        sync.RWMutex
	templates map[int]*storedTemplate
	tags      []Tag
	nextID    int
	nextTagID int
	now       func() time.Time
}

// NewStore creates an empty store
func NewStore() *Store {
	return &Store{
		templates: make(map[int]*storedTemplate),
		nextID:    1,
		nextTagID: 1,
		now:       func() time.Time { return time.Now().UTC() },
	}
}

// templateUpdate carries the fields of a PUT body; nil fields are left unchanged
type templateUpdate struct {
	Title   *string   `json:"title"`
	Content *string   `json:"content"`
	Tags    *[]string `json:"tags"`
}

// List returns templates ordered by id. search matches title or content
// case-insensitively; tag narrows to templates carrying it, and is ignored
// when no such tag exists.
func (s *Store) List(search, tag string) []Template {
	s.mu.RLock()
	defer s.mu.RUnlock()

	search = strings.ToLower(search)
	tagKnown := tag != "" && s.hasTagLocked(tag)

	ids := make([]int, 0, len(s.templates))
	for id := range s.templates {
		ids = append(ids, id)
	}
	sort.Ints(ids)

	result := make([]Template, 0, len(ids))
	for _, id := range ids {
		t := s.templates[id]
		if search != "" &&
			!strings.Contains(strings.ToLower(t.title), search) &&
			!strings.Contains(strings.ToLower(t.content), search) {
			continue
		}
		if tagKnown && !contains(t.tags, tag) {
			continue
		}
		result = append(result, t.toTemplate())
	}
	return result
}

// Get returns one template
func (s *Store) Get(id int) (Template, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	t, ok := s.templates[id]
	if !ok {
		return Template{}, false
	}
	return t.toTemplate(), true
}

// Create stores a template, creating unknown tags on the way
func (s *Store) Create(title, content string, tagNames []string) Template {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	t := &storedTemplate{
		id:        s.nextID,
		title:     title,
		content:   content,
		tags:      s.attachTagsLocked(tagNames),
		createdAt: now,
		updatedAt: now,
	}
	s.templates[t.id] = t
	s.nextID++
	return t.toTemplate()
}

// Update applies the non-nil fields of u
func (s *Store) Update(id int, u templateUpdate) (Template, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	t, ok := s.templates[id]
	if !ok {
		return Template{}, false
	}
	if u.Title != nil {
		t.title = *u.Title
	}
	if u.Content != nil {
		t.content = *u.Content
	}
	if u.Tags != nil {
		t.tags = s.attachTagsLocked(*u.Tags)
	}
	t.updatedAt = s.now()
	return t.toTemplate(), true
}

// Delete removes a template. Tags stay, as they do on the real backend.
func (s *Store) Delete(id int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.templates[id]; !ok {
		return false
	}
	delete(s.templates, id)
	return true
}

// Tags returns every tag in creation order
func (s *Store) Tags() []Tag {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Tag, len(s.tags))
	copy(out, s.tags)
	return out
}

// attachTagsLocked resolves names to tags, creating missing ones.
// A template carries each tag once.
func (s *Store) attachTagsLocked(names []string) []string {
	attached := make([]string, 0, len(names))
	for _, name := range names {
		if contains(attached, name) {
			continue
		}
		if !s.hasTagLocked(name) {
			s.tags = append(s.tags, Tag{ID: s.nextTagID, Name: name})
			s.nextTagID++
		}
		attached = append(attached, name)
	}
	return attached
}

func (s *Store) hasTagLocked(name string) bool {
	for _, tag := range s.tags {
		if tag.Name == name {
			return true
		}
	}
	return false
}

func (t *storedTemplate) toTemplate() Template {
	tags := make([]string, len(t.tags))
	copy(tags, t.tags)
	return Template{
		ID:        t.id,
		Title:     t.title,
		Content:   t.content,
		Tags:      tags,
		CreatedAt: t.createdAt.Format(time.RFC3339),
		UpdatedAt: t.updatedAt.Format(time.RFC3339),
	}
}

func contains(list []string, s string) bool {
	for _, item := range list {
		if item == s {
			return true
		}
	}
	return false
}

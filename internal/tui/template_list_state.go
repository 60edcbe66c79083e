package tui

import (
	"sync"

	"github.com/charmbracelet/bubbles/textinput"

	"github.com/studiowebux/replydesk/internal/types"
)

const (
	listColumns     = 3
	listPlaceholder = "No templates found"
	listNoTags      = "No tags"
)

// TableRow is one rendered row of the management table.
// Span is the number of columns the first cell covers.
type TableRow struct {
	Cells    []string
	Span     int
	Template *types.Template // nil for the placeholder row
}

// TemplateListState is the management table on the templates tab
type TemplateListState struct {
	mu sync.RWMutex

	Search    textinput.Model
	TagFilter *SelectState

	templates []types.Template
	loaded    bool // false until the last fetch succeeded
	cursor    int
	offset    int
}

// NewTemplateListState creates an empty table
func NewTemplateListState() *TemplateListState {
	search := textinput.New()
	search.Placeholder = "Search templates..."
	search.Prompt = "/ "

	return &TemplateListState{
		Search:    search,
		TagFilter: NewSelectState("All tags"),
	}
}

// Filter returns the query for the table
func (s *TemplateListState) Filter() types.TemplateFilter {
	return types.TemplateFilter{
		Search: s.Search.Value(),
		Tag:    s.TagFilter.Value(),
	}
}

// Clear removes every row
func (s *TemplateListState) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.templates = nil
	s.loaded = false
	s.cursor = 0
	s.offset = 0
}

// SetTemplates replaces the rows with a fetch result
func (s *TemplateListState) SetTemplates(templates []types.Template) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.templates = append([]types.Template(nil), templates...)
	s.loaded = true
	if s.cursor >= len(s.templates) {
		s.cursor = max(0, len(s.templates)-1)
	}
}

// Len returns the number of templates
func (s *TemplateListState) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.templates)
}

// Rows returns the table body. A successful empty fetch yields exactly one
// placeholder row spanning every column; before any fetch the body is empty.
func (s *TemplateListState) Rows() []TableRow {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.loaded {
		return nil
	}
	if len(s.templates) == 0 {
		return []TableRow{{Cells: []string{listPlaceholder}, Span: listColumns}}
	}

	rows := make([]TableRow, 0, len(s.templates))
	for i := range s.templates {
		t := &s.templates[i]
		rows = append(rows, TableRow{
			Cells:    []string{t.Title, tagChips(t.Tags), "Edit  Delete"},
			Span:     1,
			Template: t,
		})
	}
	return rows
}

// Selected returns the template under the cursor
func (s *TemplateListState) Selected() (types.Template, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.cursor < 0 || s.cursor >= len(s.templates) {
		return types.Template{}, false
	}
	return s.templates[s.cursor], true
}

// Cursor returns the cursor position
func (s *TemplateListState) Cursor() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cursor
}

// MoveCursor moves the cursor by delta, clamped to the rows
func (s *TemplateListState) MoveCursor(delta int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.setCursorLocked(s.cursor + delta)
}

// SetCursor places the cursor, clamped to the rows
func (s *TemplateListState) SetCursor(i int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.setCursorLocked(i)
}

func (s *TemplateListState) setCursorLocked(i int) {
	if i >= len(s.templates) {
		i = len(s.templates) - 1
	}
	if i < 0 {
		i = 0
	}
	s.cursor = i
}

// VisibleRange returns the first and one-past-last row index that fit in
// height rows, scrolling to keep the cursor visible.
func (s *TemplateListState) VisibleRange(height int) (int, int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if height < 1 {
		height = 1
	}
	if s.cursor < s.offset {
		s.offset = s.cursor
	}
	if s.cursor >= s.offset+height {
		s.offset = s.cursor - height + 1
	}
	end := min(len(s.templates), s.offset+height)
	return s.offset, end
}

func tagChips(tagList []string) string {
	if len(tagList) == 0 {
		return listNoTags
	}
	out := ""
	for i, tag := range tagList {
		if i > 0 {
			out += " "
		}
		out += "[" + tag + "]"
	}
	return out
}

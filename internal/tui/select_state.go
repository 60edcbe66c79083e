package tui

import (
	"strings"
	"sync"
	"time"

	"github.com/sahilm/fuzzy"
)

// typeAheadReset is the pause after which type-ahead starts a new query
const typeAheadReset = time.Second

// Option is one entry of a dropdown
type Option struct {
	Value string
	Label string
}

// SelectState is a dropdown whose first option is a fixed placeholder
// with an empty value.
type SelectState struct {
	mu sync.RWMutex

	placeholder Option
	options     []Option // without the placeholder
	value       string   // selected value, "" for the placeholder

	query      string
	lastTypeAt time.Time
	now        func() time.Time
}

// NewSelectState creates a dropdown holding only its placeholder
func NewSelectState(placeholder string) *SelectState {
	return &SelectState{
		placeholder: Option{Label: placeholder},
		now:         time.Now,
	}
}

// Reset removes every option but the placeholder.
// The selected value is remembered and restored if a later SetOptions brings it back.
func (s *SelectState) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.options = nil
}

// SetOptions replaces the options after the placeholder
func (s *SelectState) SetOptions(options []Option) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.options = append([]Option(nil), options...)
}

// Options returns all options, placeholder first
func (s *SelectState) Options() []Option {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Option, 0, len(s.options)+1)
	out = append(out, s.placeholder)
	return append(out, s.options...)
}

// Len returns the number of options including the placeholder
func (s *SelectState) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.options) + 1
}

// Value returns the selected value; "" when the placeholder is selected
// or the remembered value is not among the options.
func (s *SelectState) Value() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.indexLocked() == 0 {
		return ""
	}
	return s.value
}

// Selected returns the selected option
func (s *SelectState) Selected() Option {
	s.mu.RLock()
	defer s.mu.RUnlock()
	i := s.indexLocked()
	if i == 0 {
		return s.placeholder
	}
	return s.options[i-1]
}

// Index returns the position of the selected option, 0 being the placeholder
func (s *SelectState) Index() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.indexLocked()
}

func (s *SelectState) indexLocked() int {
	if s.value == "" {
		return 0
	}
	for i, opt := range s.options {
		if opt.Value == s.value {
			return i + 1
		}
	}
	return 0
}

// SelectIndex selects by position and reports whether the selection changed
func (s *SelectState) SelectIndex(i int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if i < 0 {
		i = 0
	}
	if i > len(s.options) {
		i = len(s.options)
	}
	before := s.indexLocked()
	if i == 0 {
		s.value = ""
	} else {
		s.value = s.options[i-1].Value
	}
	return before != i
}

// SelectValue selects by value; unknown values select the placeholder
func (s *SelectState) SelectValue(value string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	before := s.indexLocked()
	s.value = value
	return before != s.indexLocked()
}

// Next moves the selection down one option
func (s *SelectState) Next() bool {
	return s.SelectIndex(s.Index() + 1)
}

// Prev moves the selection up one option
func (s *SelectState) Prev() bool {
	return s.SelectIndex(s.Index() - 1)
}

// TypeAhead extends the type-ahead query with r and selects the best fuzzy
// match among the option labels. Reports whether the selection changed.
func (s *SelectState) TypeAhead(r rune) bool {
	s.mu.Lock()
	now := s.now()
	if now.Sub(s.lastTypeAt) > typeAheadReset {
		s.query = ""
	}
	s.lastTypeAt = now
	s.query += string(r)
	query := s.query

	labels := make([]string, len(s.options))
	for i, opt := range s.options {
		labels[i] = strings.ToLower(opt.Label)
	}
	s.mu.Unlock()

	matches := fuzzy.Find(strings.ToLower(query), labels)
	if len(matches) == 0 {
		return false
	}
	return s.SelectIndex(matches[0].Index + 1)
}

// Query returns the pending type-ahead query
func (s *SelectState) Query() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.now().Sub(s.lastTypeAt) > typeAheadReset {
		return ""
	}
	return s.query
}

package tui

import (
	"sync"
)

// Severity classifies a status message
type Severity int

const (
	SeverityNone Severity = iota
	SeverityLoading
	SeveritySuccess
	SeverityError
)

func (s Severity) String() string {
	switch s {
	case SeverityLoading:
		return "loading"
	case SeveritySuccess:
		return "success"
	case SeverityError:
		return "error"
	default:
		return "none"
	}
}

// StatusState is the transient message of one panel
type StatusState struct {
	mu sync.RWMutex

	message  string
	severity Severity
	seq      int // bumped on every change so stale clear ticks can be ignored
}

// NewStatusState creates an empty status
func NewStatusState() *StatusState {
	return &StatusState{}
}

// Set replaces the message and returns its sequence number
func (s *StatusState) Set(message string, severity Severity) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.message = message
	s.severity = severity
	s.seq++
	return s.seq
}

// Clear removes the message
func (s *StatusState) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.message == "" && s.severity == SeverityNone {
		return
	}
	s.message = ""
	s.severity = SeverityNone
	s.seq++
}

// ClearIfCurrent clears the message only if nothing replaced it since seq
func (s *StatusState) ClearIfCurrent(seq int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.seq != seq {
		return false
	}
	s.message = ""
	s.severity = SeverityNone
	s.seq++
	return true
}

// Get returns the message and its severity
func (s *StatusState) Get() (string, Severity) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.message, s.severity
}

// Message returns the message text
func (s *StatusState) Message() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.message
}

package tui

import (
	"testing"

	"github.com/studiowebux/replydesk/internal/types"
)

func TestTemplateFormState_FillAndClear(t *testing.T) {
	s := NewTemplateFormState()
	s.Fill(&types.Template{ID: "7", Title: "Delay", Content: "Sorry", Tags: []string{"a", "b"}})

	if s.Heading() != "Edit Template" {
		t.Errorf("Expected edit heading, got %q", s.Heading())
	}
	if s.TemplateID() != "7" {
		t.Errorf("Expected id 7, got %q", s.TemplateID())
	}
	if s.Tags.Value() != "a, b" {
		t.Errorf("Expected joined tags, got %q", s.Tags.Value())
	}

	s.Clear()
	if s.Heading() != "Create/Edit Template" || s.ID != "" || s.Title.Value() != "" {
		t.Error("Clear should reset the form to create mode")
	}
}

func TestTemplateFormState_Input(t *testing.T) {
	s := NewTemplateFormState()
	s.Title.SetValue("  Greeting ")
	s.Content.SetValue("\nHello\n")
	s.Tags.SetValue(" a ,, b ")

	in := s.Input()
	if in.Title != "Greeting" || in.Content != "Hello" {
		t.Errorf("Expected trimmed input, got %+v", in)
	}
	if len(in.Tags) != 2 || in.Tags[0] != "a" || in.Tags[1] != "b" {
		t.Errorf("Expected [a b], got %v", in.Tags)
	}

	s.Tags.SetValue("")
	if in := s.Input(); in.Tags == nil || len(in.Tags) != 0 {
		t.Errorf("Expected empty non-nil tags, got %v", in.Tags)
	}
}

package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"

	"github.com/studiowebux/replydesk/internal/tags"
	"github.com/studiowebux/replydesk/internal/types"
)

const (
	headingCreate = "Create/Edit Template"
	headingEdit   = "Edit Template"
)

// TemplateFormState is the create/edit form on the templates tab
type TemplateFormState struct {
	ID      string // hidden; empty creates, set updates
	Title   textinput.Model
	Content textarea.Model
	Tags    textinput.Model

	heading string
}

// NewTemplateFormState creates an empty form
func NewTemplateFormState() *TemplateFormState {
	title := textinput.New()
	title.Placeholder = "Template title"
	title.Prompt = ""

	tagInput := textinput.New()
	tagInput.Placeholder = "comma, separated, tags"
	tagInput.Prompt = ""

	return &TemplateFormState{
		Title:   title,
		Content: newTextArea("Template content"),
		Tags:    tagInput,
		heading: headingCreate,
	}
}

// Heading returns the form title
func (s *TemplateFormState) Heading() string {
	return s.heading
}

// Clear empties every field and restores the create heading
func (s *TemplateFormState) Clear() {
	s.ID = ""
	s.Title.Reset()
	s.Content.Reset()
	s.Tags.Reset()
	s.heading = headingCreate
}

// Fill loads a template for editing
func (s *TemplateFormState) Fill(t *types.Template) {
	s.ID = t.ID.String()
	s.Title.SetValue(t.Title)
	s.Content.SetValue(t.Content)
	s.Tags.SetValue(tags.Join(t.Tags))
	s.heading = headingEdit
}

// TemplateID returns the hidden id, trimmed
func (s *TemplateFormState) TemplateID() types.ID {
	return types.ID(strings.TrimSpace(s.ID))
}

// Input returns the trimmed form values with parsed tags
func (s *TemplateFormState) Input() types.TemplateInput {
	return types.TemplateInput{
		Title:   strings.TrimSpace(s.Title.Value()),
		Content: strings.TrimSpace(s.Content.Value()),
		Tags:    tags.Parse(s.Tags.Value()),
	}
}

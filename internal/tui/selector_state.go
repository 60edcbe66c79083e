package tui

import (
	"github.com/charmbracelet/bubbles/textinput"

	"github.com/studiowebux/replydesk/internal/types"
)

const (
	previewPlaceholder = "Select a template to see preview"
	previewError       = "Error loading preview"
)

// SelectorState is the template picker on the response tab
type SelectorState struct {
	Search    textinput.Model
	TagFilter *SelectState
	Templates *SelectState

	preview      string
	previewMuted bool // placeholder or error text rather than template content
}

// NewSelectorState creates a picker with nothing loaded
func NewSelectorState() *SelectorState {
	search := textinput.New()
	search.Placeholder = "Search templates..."
	search.Prompt = "/ "

	s := &SelectorState{
		Search:    search,
		TagFilter: NewSelectState("All tags"),
		Templates: NewSelectState("No template"),
	}
	s.SetPreviewPlaceholder()
	return s
}

// Filter returns the query for the selector's template list
func (s *SelectorState) Filter() types.TemplateFilter {
	return types.TemplateFilter{
		Search: s.Search.Value(),
		Tag:    s.TagFilter.Value(),
	}
}

// SelectedTemplateID returns the chosen template, or nil for the placeholder
func (s *SelectorState) SelectedTemplateID() *types.ID {
	v := s.Templates.Value()
	if v == "" {
		return nil
	}
	id := types.ID(v)
	return &id
}

// SetPreview shows template content
func (s *SelectorState) SetPreview(content string) {
	s.preview = content
	s.previewMuted = false
}

// SetPreviewPlaceholder shows the "nothing selected" hint
func (s *SelectorState) SetPreviewPlaceholder() {
	s.preview = previewPlaceholder
	s.previewMuted = true
}

// SetPreviewError shows the preview failure hint
func (s *SelectorState) SetPreviewError() {
	s.preview = previewError
	s.previewMuted = true
}

// Preview returns the preview text and whether it is a hint
func (s *SelectorState) Preview() (string, bool) {
	return s.preview, s.previewMuted
}

// templateOptions maps templates to dropdown options (value=id, label=title)
func templateOptions(templates []types.Template) []Option {
	options := make([]Option, 0, len(templates))
	for _, t := range templates {
		options = append(options, Option{Value: t.ID.String(), Label: t.Title})
	}
	return options
}

// tagOptions maps tags to dropdown options (value=label=name)
func tagOptions(tags []types.Tag) []Option {
	options := make([]Option, 0, len(tags))
	for _, t := range tags {
		options = append(options, Option{Value: t.Name, Label: t.Name})
	}
	return options
}

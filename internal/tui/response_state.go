package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
)

// ResponseState holds the generation panel: the customer email, the drafted
// response and the modification request.
type ResponseState struct {
	CustomerEmail textarea.Model
	Response      textarea.Model
	Modification  textinput.Model

	// busy disables generate and modify while a request is in flight
	busy bool
}

// NewResponseState creates an empty generation panel
func NewResponseState() *ResponseState {
	email := newTextArea("Paste the customer email here...")
	response := newTextArea("The drafted response appears here")

	mod := textinput.New()
	mod.Placeholder = "e.g. make it shorter, more formal..."
	mod.Prompt = "> "

	return &ResponseState{
		CustomerEmail: email,
		Response:      response,
		Modification:  mod,
	}
}

func newTextArea(placeholder string) textarea.Model {
	ta := textarea.New()
	ta.Placeholder = placeholder
	ta.Prompt = ""
	ta.ShowLineNumbers = false
	ta.CharLimit = 0
	ta.MaxHeight = 0
	ta.SetHeight(6)
	ta.SetWidth(48)
	ta.Blur()
	return ta
}

// EmailText returns the trimmed customer email
func (s *ResponseState) EmailText() string {
	return strings.TrimSpace(s.CustomerEmail.Value())
}

// ResponseText returns the trimmed response
func (s *ResponseState) ResponseText() string {
	return strings.TrimSpace(s.Response.Value())
}

// ModificationText returns the trimmed modification request
func (s *ResponseState) ModificationText() string {
	return strings.TrimSpace(s.Modification.Value())
}

// Busy reports whether generate and modify are disabled
func (s *ResponseState) Busy() bool {
	return s.busy
}

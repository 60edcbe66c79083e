package types

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
)

// ID is an opaque server-assigned identifier. The backend may encode it as a
// JSON number or a JSON string; both decode to the same textual form.
type ID string

// UnmarshalJSON accepts numbers, strings and null
func (id *ID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*id = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return fmt.Errorf("invalid id: %w", err)
		}
		*id = ID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("invalid id: %w", err)
	}
	*id = ID(n.String())
	return nil
}

// String returns the identifier as text
func (id ID) String() string {
	return string(id)
}

// IsZero reports whether no identifier is set
func (id ID) IsZero() bool {
	return strings.TrimSpace(string(id)) == ""
}

// Template is a reusable, tagged canned reply stored server-side
type Template struct {
	ID        ID       `json:"id" yaml:"id,omitempty"`
	Title     string   `json:"title" yaml:"title"`
	Content   string   `json:"content" yaml:"content"`
	Tags      []string `json:"tags" yaml:"tags,omitempty"`
	CreatedAt string   `json:"created_at,omitempty" yaml:"-"`
	UpdatedAt string   `json:"updated_at,omitempty" yaml:"-"`
}

// TemplateInput is the body of a create or update call
type TemplateInput struct {
	Title   string   `json:"title"`
	Content string   `json:"content"`
	Tags    []string `json:"tags"`
}

// Tag is a label used to filter templates
type Tag struct {
	ID   ID     `json:"id,omitempty"`
	Name string `json:"name"`
}

// TemplateFilter narrows a template listing. Empty fields are not sent.
type TemplateFilter struct {
	Search string
	Tag    string
}

// GenerateRequest is the body of POST /generate_response.
// TemplateID is only used for an initial draft; PreviousResponse and
// ModificationRequest are only used for a modification.
type GenerateRequest struct {
	CustomerEmail       string `json:"customer_email"`
	TemplateID          *ID    `json:"template_id,omitempty"`
	PreviousResponse    string `json:"previous_response,omitempty"`
	ModificationRequest string `json:"modification_request,omitempty"`
}

// IsModification reports whether the request asks to rework a previous draft
func (r GenerateRequest) IsModification() bool {
	return r.PreviousResponse != ""
}

// GenerateResponse is the success body of POST /generate_response
type GenerateResponse struct {
	Response string `json:"response"`
}

// DeleteResponse is the acknowledgement returned by DELETE /api/templates/{id}
type DeleteResponse struct {
	Message string `json:"message"`
}

// ErrorBody is the JSON shape of every error the backend reports
type ErrorBody struct {
	Error string `json:"error"`
}

// APIError is returned for any non-2xx response
type APIError struct {
	Status  int
	Message string // the body's "error" field, empty when absent
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("server returned status %d", e.Status)
	}
	return e.Message
}

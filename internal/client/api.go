package client

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"go.uber.org/zap"

	"github.com/studiowebux/replydesk/internal/types"
)

// Login submits the backend's login form. The session cookie is kept for
// subsequent calls.
func (c *Client) Login(ctx context.Context, username, password string) error {
	form := url.Values{}
	form.Set("username", username)
	form.Set("password", password)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint("/login", nil), strings.NewReader(form.Encode()))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("login: %w", err)
	}
	defer resp.Body.Close()

	// Success redirects away from the login page; failure re-renders it
	if resp.StatusCode >= 300 && resp.StatusCode < 400 && !isLoginRedirect(resp) {
		c.logger.Info("logged in", zap.String("username", username))
		return nil
	}
	if IsSuccessStatus(resp.StatusCode) || isLoginRedirect(resp) {
		return ErrInvalidCredentials
	}
	return &types.APIError{Status: resp.StatusCode}
}

// Logout ends the session
func (c *Client) Logout(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpoint("/logout", nil), nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("logout: %w", err)
	}
	resp.Body.Close()
	return nil
}

// GenerateResponse drafts a reply, or reworks one when req carries a previous response
func (c *Client) GenerateResponse(ctx context.Context, req types.GenerateRequest) (string, error) {
	var out types.GenerateResponse
	if err := c.do(ctx, http.MethodPost, "/generate_response", nil, req, &out); err != nil {
		return "", err
	}
	return out.Response, nil
}

// TemplatesQuery encodes a filter; empty fields are omitted
func TemplatesQuery(filter types.TemplateFilter) url.Values {
	q := url.Values{}
	if s := strings.TrimSpace(filter.Search); s != "" {
		q.Set("search", s)
	}
	if filter.Tag != "" {
		q.Set("tag", filter.Tag)
	}
	return q
}

// ListTemplates fetches templates matching filter
func (c *Client) ListTemplates(ctx context.Context, filter types.TemplateFilter) ([]types.Template, error) {
	var out []types.Template
	if err := c.do(ctx, http.MethodGet, "/api/templates", TemplatesQuery(filter), nil, &out); err != nil {
		return nil, err
	}
	if out == nil {
		out = []types.Template{}
	}
	return out, nil
}

// GetTemplate fetches one template
func (c *Client) GetTemplate(ctx context.Context, id types.ID) (*types.Template, error) {
	var out types.Template
	if err := c.do(ctx, http.MethodGet, templatePath(id), nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CreateTemplate stores a new template
func (c *Client) CreateTemplate(ctx context.Context, in types.TemplateInput) (*types.Template, error) {
	var out types.Template
	if err := c.do(ctx, http.MethodPost, "/api/templates", nil, normalizeInput(in), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateTemplate replaces title, content and tags of an existing template
func (c *Client) UpdateTemplate(ctx context.Context, id types.ID, in types.TemplateInput) (*types.Template, error) {
	var out types.Template
	if err := c.do(ctx, http.MethodPut, templatePath(id), nil, normalizeInput(in), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// SaveTemplate creates when id is empty and updates otherwise
func (c *Client) SaveTemplate(ctx context.Context, id types.ID, in types.TemplateInput) (*types.Template, error) {
	if id.IsZero() {
		return c.CreateTemplate(ctx, in)
	}
	return c.UpdateTemplate(ctx, id, in)
}

// DeleteTemplate removes a template
func (c *Client) DeleteTemplate(ctx context.Context, id types.ID) error {
	var out types.DeleteResponse
	return c.do(ctx, http.MethodDelete, templatePath(id), nil, nil, &out)
}

// ListTags fetches every known tag
func (c *Client) ListTags(ctx context.Context) ([]types.Tag, error) {
	var out []types.Tag
	if err := c.do(ctx, http.MethodGet, "/api/tags", nil, nil, &out); err != nil {
		return nil, err
	}
	if out == nil {
		out = []types.Tag{}
	}
	return out, nil
}

func templatePath(id types.ID) string {
	return "/api/templates/" + url.PathEscape(strings.TrimSpace(id.String()))
}

// normalizeInput makes sure tags encode as [] rather than null
func normalizeInput(in types.TemplateInput) types.TemplateInput {
	if in.Tags == nil {
		in.Tags = []string{}
	}
	return in
}

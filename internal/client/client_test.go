package client

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/studiowebux/replydesk/internal/mock"
	"github.com/studiowebux/replydesk/internal/types"
)

func newBackend(t *testing.T, cfg *mock.Config) (*mock.Server, *Client) {
	t.Helper()
	srv := mock.NewServer(cfg, nil)
	ts := httptest.NewServer(srv.Handler())
	t.Cleanup(ts.Close)

	c, err := New(Options{BaseURL: ts.URL + "/", Timeout: 5 * time.Second})
	require.NoError(t, err)
	return srv, c
}

func TestNewRejectsBadScheme(t *testing.T) {
	_, err := New(Options{BaseURL: "ftp://example.com"})
	assert.Error(t, err)

	c, err := New(Options{BaseURL: "http://localhost:5000/"})
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:5000", c.BaseURL())
}

func TestTemplatesQuery(t *testing.T) {
	tests := []struct {
		name   string
		filter types.TemplateFilter
		want   string
	}{
		{name: "empty", filter: types.TemplateFilter{}, want: ""},
		{name: "whitespace search omitted", filter: types.TemplateFilter{Search: "   "}, want: ""},
		{name: "search trimmed", filter: types.TemplateFilter{Search: " order "}, want: "search=order"},
		{name: "tag", filter: types.TemplateFilter{Tag: "shipping"}, want: "tag=shipping"},
		{name: "both", filter: types.TemplateFilter{Search: "a b", Tag: "x"}, want: "search=a+b&tag=x"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, TemplatesQuery(tt.filter).Encode())
		})
	}
}

func TestTemplateCRUD(t *testing.T) {
	_, c := newBackend(t, &mock.Config{})
	ctx := context.Background()

	created, err := c.SaveTemplate(ctx, "", types.TemplateInput{Title: "Greeting", Content: "Hello"})
	require.NoError(t, err)
	assert.Equal(t, types.ID("1"), created.ID)
	assert.Empty(t, created.Tags)

	updated, err := c.SaveTemplate(ctx, created.ID, types.TemplateInput{
		Title:   "Greeting",
		Content: "Hello there",
		Tags:    []string{"welcome"},
	})
	require.NoError(t, err)
	assert.Equal(t, "Hello there", updated.Content)
	assert.Equal(t, []string{"welcome"}, updated.Tags)

	got, err := c.GetTemplate(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Hello there", got.Content)

	list, err := c.ListTemplates(ctx, types.TemplateFilter{Tag: "welcome"})
	require.NoError(t, err)
	require.Len(t, list, 1)

	tagList, err := c.ListTags(ctx)
	require.NoError(t, err)
	assert.Equal(t, []types.Tag{{ID: "1", Name: "welcome"}}, tagList)

	require.NoError(t, c.DeleteTemplate(ctx, created.ID))

	_, err = c.GetTemplate(ctx, created.ID)
	var apiErr *types.APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusNotFound, apiErr.Status)
	assert.Equal(t, "Template not found", apiErr.Message)

	list, err = c.ListTemplates(ctx, types.TemplateFilter{})
	require.NoError(t, err)
	assert.NotNil(t, list)
	assert.Empty(t, list)
}

func TestCreateTemplateServerValidation(t *testing.T) {
	_, c := newBackend(t, &mock.Config{})

	_, err := c.CreateTemplate(context.Background(), types.TemplateInput{Title: "no content"})
	require.Error(t, err)
	assert.Equal(t, "Title and content are required", ErrorMessage(err, "Error saving template"))
}

func TestGenerateResponse(t *testing.T) {
	srv, c := newBackend(t, &mock.Config{})
	ctx := context.Background()
	tmpl := srv.Store().Create("Storage", "Keep at -20C.", nil)

	draft, err := c.GenerateResponse(ctx, types.GenerateRequest{CustomerEmail: "How do I store it?"})
	require.NoError(t, err)
	assert.Contains(t, draft, "How do I store it?")
	assert.NotContains(t, draft, "Keep at -20C.")

	id := types.ID("1")
	require.Equal(t, 1, tmpl.ID)
	withTemplate, err := c.GenerateResponse(ctx, types.GenerateRequest{CustomerEmail: "How do I store it?", TemplateID: &id})
	require.NoError(t, err)
	assert.Contains(t, withTemplate, "Keep at -20C.")

	revised, err := c.GenerateResponse(ctx, types.GenerateRequest{
		CustomerEmail:       "How do I store it?",
		PreviousResponse:    draft,
		ModificationRequest: "be brief",
	})
	require.NoError(t, err)
	assert.Contains(t, revised, "(Revised: be brief)")

	_, err = c.GenerateResponse(ctx, types.GenerateRequest{})
	assert.Equal(t, "Customer email is required", ErrorMessage(err, "fallback"))
}

func TestLoginFlow(t *testing.T) {
	_, c := newBackend(t, &mock.Config{Username: "agent", Password: "secret"})
	ctx := context.Background()

	_, err := c.ListTags(ctx)
	assert.ErrorIs(t, err, ErrUnauthorized)

	err = c.Login(ctx, "agent", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	require.NoError(t, c.Login(ctx, "agent", "secret"))
	_, err = c.ListTags(ctx)
	assert.NoError(t, err)

	require.NoError(t, c.Logout(ctx))
	_, err = c.ListTags(ctx)
	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestErrorWithoutJSONBody(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte("<html>boom</html>"))
	}))
	defer ts.Close()

	c, err := New(Options{BaseURL: ts.URL})
	require.NoError(t, err)

	_, err = c.ListTags(context.Background())
	var apiErr *types.APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusInternalServerError, apiErr.Status)
	assert.Equal(t, "Error loading tags", ErrorMessage(err, "Error loading tags"))
	assert.Equal(t, "server returned status 500", err.Error())
}

func TestContextCancellation(t *testing.T) {
	_, c := newBackend(t, &mock.Config{})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := c.ListTemplates(ctx, types.TemplateFilter{})
	assert.ErrorIs(t, err, context.Canceled)
}

package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/studiowebux/replydesk/internal/client"
	"github.com/studiowebux/replydesk/internal/mock"
	"github.com/studiowebux/replydesk/internal/types"
)

func newTestRunner(t *testing.T, format, stdin string) (*Runner, *bytes.Buffer) {
	t.Helper()
	srv := mock.NewServer(&mock.Config{
		Templates: []mock.SeedTemplate{
			{Title: "Welcome", Content: "We are glad to have you.", Tags: []string{"greeting"}},
			{Title: "Refund", Content: "Your refund is on its way.", Tags: []string{"billing"}},
		},
	}, nil)
	ts := httptest.NewServer(srv.Handler())
	t.Cleanup(ts.Close)

	c, err := client.New(client.Options{BaseURL: ts.URL, Timeout: 5 * time.Second})
	require.NoError(t, err)

	out := &bytes.Buffer{}
	return &Runner{API: c, Out: out, In: strings.NewReader(stdin), Format: format}, out
}

func TestGenerate(t *testing.T) {
	r, out := newTestRunner(t, "text", "")

	err := r.Generate(context.Background(), GenerateOptions{Email: "Where is my order?", TemplateID: "2"})
	require.NoError(t, err)

	assert.Contains(t, out.String(), `regarding "Where is my order?"`)
	assert.Contains(t, out.String(), "Your refund is on its way.")
}

func TestGenerateRequiresEmail(t *testing.T) {
	r, out := newTestRunner(t, "text", "")

	err := r.Generate(context.Background(), GenerateOptions{Email: "  \n"})
	assert.ErrorIs(t, err, ErrEmailRequired)
	assert.Empty(t, out.String())
}

func TestModify(t *testing.T) {
	tests := []struct {
		name    string
		opts    ModifyOptions
		wantErr error
	}{
		{name: "no email", opts: ModifyOptions{Previous: "draft", Modification: "shorter"}, wantErr: ErrEmailRequired},
		{name: "no previous", opts: ModifyOptions{Email: "hi", Modification: "shorter"}, wantErr: ErrResponseRequired},
		{name: "no modification", opts: ModifyOptions{Email: "hi", Previous: "draft"}, wantErr: ErrModificationRequired},
		{name: "ok", opts: ModifyOptions{Email: "hi", Previous: "draft", Modification: "shorter"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, out := newTestRunner(t, "json", "")
			err := r.Modify(context.Background(), tt.opts)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)

			var resp types.GenerateResponse
			require.NoError(t, json.Unmarshal(out.Bytes(), &resp))
			assert.Equal(t, "draft\n\n(Revised: shorter)", resp.Response)
		})
	}
}

func TestListTemplates(t *testing.T) {
	r, out := newTestRunner(t, "text", "")

	require.NoError(t, r.ListTemplates(context.Background(), types.TemplateFilter{Tag: "billing"}))

	text := out.String()
	assert.Contains(t, text, "TITLE")
	assert.Contains(t, text, "Refund")
	assert.NotContains(t, text, "Welcome")
}

func TestListTemplatesEmpty(t *testing.T) {
	r, out := newTestRunner(t, "text", "")

	require.NoError(t, r.ListTemplates(context.Background(), types.TemplateFilter{Search: "nothing matches"}))
	assert.Equal(t, "No templates found\n", out.String())
}

func TestListTemplatesYAML(t *testing.T) {
	r, out := newTestRunner(t, "yaml", "")

	require.NoError(t, r.ListTemplates(context.Background(), types.TemplateFilter{}))

	var templates []types.Template
	require.NoError(t, yaml.Unmarshal(out.Bytes(), &templates))
	require.Len(t, templates, 2)
	assert.Equal(t, "Welcome", templates[0].Title)
}

func TestShowTemplateNotFound(t *testing.T) {
	r, _ := newTestRunner(t, "text", "")

	err := r.ShowTemplate(context.Background(), "99")
	require.Error(t, err)
	assert.Equal(t, "Template not found", Describe(err))
}

func TestSaveTemplate(t *testing.T) {
	r, out := newTestRunner(t, "text", "")
	ctx := context.Background()

	assert.ErrorIs(t, r.SaveTemplate(ctx, SaveOptions{Content: "x"}), ErrTitleRequired)
	assert.ErrorIs(t, r.SaveTemplate(ctx, SaveOptions{Title: "x"}), ErrContentRequired)

	require.NoError(t, r.SaveTemplate(ctx, SaveOptions{Title: " Delay ", Content: "Sorry", Tags: "shipping, delay"}))
	assert.Contains(t, out.String(), `Template "Delay" saved successfully (id 3)`)

	out.Reset()
	require.NoError(t, r.SaveTemplate(ctx, SaveOptions{ID: "3", Title: "Delay v2", Content: "Sorry again"}))
	assert.Contains(t, out.String(), `Template "Delay v2" saved successfully (id 3)`)
}

func TestDeleteTemplate(t *testing.T) {
	t.Run("declined", func(t *testing.T) {
		r, _ := newTestRunner(t, "text", "n\n")
		err := r.DeleteTemplate(context.Background(), "1", false)
		assert.ErrorIs(t, err, ErrCancelled)
	})

	t.Run("confirmed", func(t *testing.T) {
		r, out := newTestRunner(t, "text", "y\n")
		require.NoError(t, r.DeleteTemplate(context.Background(), "1", false))
		assert.Contains(t, out.String(), `Are you sure you want to delete the template "Welcome"?`)
		assert.Contains(t, out.String(), `Template "Welcome" deleted successfully`)

		err := r.ShowTemplate(context.Background(), "1")
		assert.Error(t, err)
	})

	t.Run("forced", func(t *testing.T) {
		r, out := newTestRunner(t, "text", "")
		require.NoError(t, r.DeleteTemplate(context.Background(), "2", true))
		assert.NotContains(t, out.String(), "Are you sure")
	})
}

func TestListTags(t *testing.T) {
	r, out := newTestRunner(t, "text", "")

	require.NoError(t, r.ListTags(context.Background()))
	assert.Contains(t, out.String(), "billing\n")
	assert.Contains(t, out.String(), "greeting\n")
}

func TestUnknownFormat(t *testing.T) {
	r, _ := newTestRunner(t, "xml", "")

	err := r.ListTags(context.Background())
	assert.ErrorContains(t, err, "unknown output format")
}

func TestReadInput(t *testing.T) {
	path := filepath.Join(t.TempDir(), "email.txt")
	require.NoError(t, os.WriteFile(path, []byte("from file"), 0644))

	got, err := ReadInput("-", strings.NewReader("from stdin"))
	require.NoError(t, err)
	assert.Equal(t, "from stdin", got)

	got, err = ReadInput("@"+path, nil)
	require.NoError(t, err)
	assert.Equal(t, "from file", got)

	got, err = ReadInput("literal", nil)
	require.NoError(t, err)
	assert.Equal(t, "literal", got)

	_, err = ReadInput("@"+filepath.Join(t.TempDir(), "missing"), nil)
	assert.Error(t, err)
}

func TestDescribe(t *testing.T) {
	assert.Equal(t, "Customer email is required",
		Describe(&types.APIError{Status: 400, Message: "Customer email is required"}))
	assert.Equal(t, "server returned status 500", Describe(&types.APIError{Status: 500}))
	assert.Contains(t, Describe(client.ErrUnauthorized), "not logged in")
	assert.Equal(t, "boom", Describe(errors.New("boom")))
}

func TestPickerModel(t *testing.T) {
	templates := []types.Template{
		{ID: "1", Title: "Welcome", Tags: []string{"greeting"}},
		{ID: "2", Title: "Refund"},
	}

	t.Run("enter selects", func(t *testing.T) {
		m := newPickerModel(templates)
		next, _ := m.Update(tea.KeyMsg{Type: tea.KeyDown})
		next, _ = next.Update(tea.KeyMsg{Type: tea.KeyEnter})

		result := next.(pickerModel)
		require.NotNil(t, result.choice)
		assert.Equal(t, types.ID("2"), *result.choice)
	})

	t.Run("n drafts without template", func(t *testing.T) {
		m := newPickerModel(templates)
		next, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("n")})

		result := next.(pickerModel)
		assert.True(t, result.none)
		assert.Nil(t, result.choice)
	})

	t.Run("q cancels", func(t *testing.T) {
		m := newPickerModel(templates)
		next, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})

		result := next.(pickerModel)
		assert.True(t, result.quitting)
		assert.Nil(t, result.choice)
		assert.Empty(t, result.View())
	})
}

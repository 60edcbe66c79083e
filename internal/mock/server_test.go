package mock

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T, cfg *Config) (*Server, *httptest.Server) {
	t.Helper()
	s := NewServer(cfg, nil)
	ts := httptest.NewServer(s.Handler())
	t.Cleanup(ts.Close)
	return s, ts
}

func noRedirectClient() *http.Client {
	return &http.Client{
		CheckRedirect: func(*http.Request, []*http.Request) error { return http.ErrUseLastResponse },
	}
}

func decodeBody(t *testing.T, resp *http.Response, v any) {
	t.Helper()
	defer resp.Body.Close()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(v))
}

func TestServerTemplateLifecycle(t *testing.T) {
	_, ts := newTestServer(t, &Config{})

	resp, err := http.Post(ts.URL+"/api/templates", "application/json",
		strings.NewReader(`{"title":"Hello","content":"World","tags":["greet"]}`))
	require.NoError(t, err)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var created Template
	decodeBody(t, resp, &created)
	assert.Equal(t, 1, created.ID)

	req, _ := http.NewRequest(http.MethodPut, ts.URL+"/api/templates/1", strings.NewReader(`{"content":"Updated"}`))
	req.Header.Set("Content-Type", "application/json")
	resp, err = http.DefaultClient.Do(req)
	require.NoError(t, err)
	var updated Template
	decodeBody(t, resp, &updated)
	assert.Equal(t, "Hello", updated.Title)
	assert.Equal(t, "Updated", updated.Content)

	resp, err = http.Get(ts.URL + "/api/tags")
	require.NoError(t, err)
	var tags []Tag
	decodeBody(t, resp, &tags)
	assert.Equal(t, []Tag{{ID: 1, Name: "greet"}}, tags)

	req, _ = http.NewRequest(http.MethodDelete, ts.URL+"/api/templates/1", nil)
	resp, err = http.DefaultClient.Do(req)
	require.NoError(t, err)
	var deleted map[string]string
	decodeBody(t, resp, &deleted)
	assert.Equal(t, "Template deleted successfully", deleted["message"])

	resp, err = http.Get(ts.URL + "/api/templates/1")
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	resp.Body.Close()
}

func TestServerCreateRequiresTitleAndContent(t *testing.T) {
	_, ts := newTestServer(t, &Config{})

	resp, err := http.Post(ts.URL+"/api/templates", "application/json", strings.NewReader(`{"title":"only"}`))
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	var body map[string]string
	decodeBody(t, resp, &body)
	assert.Equal(t, "Title and content are required", body["error"])
}

func TestServerGenerateResponse(t *testing.T) {
	s, ts := newTestServer(t, &Config{})
	tmpl := s.Store().Create("Storage", "Store at -20C.", nil)

	tests := []struct {
		name       string
		body       string
		wantStatus int
		contains   string
	}{
		{
			name:       "missing email",
			body:       `{"customer_email":""}`,
			wantStatus: http.StatusBadRequest,
			contains:   "Customer email is required",
		},
		{
			name:       "plain",
			body:       `{"customer_email":"Where is my order?"}`,
			wantStatus: http.StatusOK,
			contains:   "Where is my order?",
		},
		{
			name:       "with template",
			body:       `{"customer_email":"How to store?","template_id":` + jsonInt(tmpl.ID) + `}`,
			wantStatus: http.StatusOK,
			contains:   "Store at -20C.",
		},
		{
			name:       "modification",
			body:       `{"customer_email":"x","previous_response":"Draft","modification_request":"shorter"}`,
			wantStatus: http.StatusOK,
			contains:   "(Revised: shorter)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := http.Post(ts.URL+"/generate_response", "application/json", strings.NewReader(tt.body))
			require.NoError(t, err)
			assert.Equal(t, tt.wantStatus, resp.StatusCode)
			var body map[string]string
			decodeBody(t, resp, &body)
			joined := body["response"] + body["error"]
			assert.Contains(t, joined, tt.contains)
		})
	}
}

func TestServerRequiresLogin(t *testing.T) {
	_, ts := newTestServer(t, &Config{Username: "agent", Password: "secret"})
	c := noRedirectClient()

	resp, err := c.Get(ts.URL + "/api/tags")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusFound, resp.StatusCode)
	assert.Equal(t, "/login", resp.Header.Get("Location"))

	resp, err = c.PostForm(ts.URL+"/login", url.Values{"username": {"agent"}, "password": {"wrong"}})
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp, err = c.PostForm(ts.URL+"/login", url.Values{"username": {"agent"}, "password": {"secret"}})
	require.NoError(t, err)
	resp.Body.Close()
	require.Equal(t, http.StatusFound, resp.StatusCode)
	assert.Equal(t, "/", resp.Header.Get("Location"))

	var session *http.Cookie
	for _, cookie := range resp.Cookies() {
		if cookie.Name == sessionCookie {
			session = cookie
		}
	}
	require.NotNil(t, session)

	req, _ := http.NewRequest(http.MethodGet, ts.URL+"/api/tags", nil)
	req.AddCookie(session)
	resp, err = c.Do(req)
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestServerRequestLog(t *testing.T) {
	s, ts := newTestServer(t, &Config{Logging: true})

	resp, err := http.Get(ts.URL + "/api/templates?search=abc")
	require.NoError(t, err)
	resp.Body.Close()

	logs := s.GetLogs()
	require.Len(t, logs, 1)
	assert.Equal(t, http.MethodGet, logs[0].Method)
	assert.Equal(t, "/api/templates", logs[0].Path)
	assert.Equal(t, "search=abc", logs[0].Query)
	assert.Equal(t, http.StatusOK, logs[0].Status)

	s.ClearLogs()
	assert.Empty(t, s.GetLogs())
}

func jsonInt(n int) string {
	b, _ := json.Marshal(n)
	return string(b)
}

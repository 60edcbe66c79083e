package mock

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const sessionCookie = "session"

// Server is an in-memory stand-in for the email assistant backend
type Server struct {
	config     *Config
	store      *Store
	engine     *gin.Engine
	httpServer *http.Server
	logger     *zap.Logger

	logs      []RequestLog
	logsMutex sync.RWMutex

	sessions   map[string]struct{}
	sessionsMu sync.Mutex
}

// NewServer creates a mock backend and loads the configured seed templates
func NewServer(config *Config, logger *zap.Logger) *Server {
	if config.Port == 0 {
		config.Port = 5000
	}
	if config.Host == "" {
		config.Host = "localhost"
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	s := &Server{
		config:   config,
		store:    NewStore(),
		logger:   logger.Named("mock"),
		logs:     make([]RequestLog, 0),
		sessions: make(map[string]struct{}),
	}

	for _, seed := range config.Templates {
		s.store.Create(seed.Title, seed.Content, seed.Tags)
	}

	gin.SetMode(gin.ReleaseMode)
	s.engine = gin.New()
	s.engine.Use(gin.Recovery(), s.logRequests())
	s.registerRoutes(s.engine)

	return s
}

func (s *Server) registerRoutes(r *gin.Engine) {
	r.GET("/login", s.loginPage)
	r.POST("/login", s.login)
	r.GET("/logout", s.logout)

	authed := r.Group("")
	authed.Use(s.requireLogin())
	authed.GET("/", s.index)
	authed.POST("/generate_response", s.generateResponse)
	authed.GET("/api/templates", s.listTemplates)
	authed.GET("/api/templates/:id", s.getTemplate)
	authed.POST("/api/templates", s.createTemplate)
	authed.PUT("/api/templates/:id", s.updateTemplate)
	authed.DELETE("/api/templates/:id", s.deleteTemplate)
	authed.GET("/api/tags", s.listTags)
}

// Handler exposes the router, e.g. for httptest.NewServer
func (s *Server) Handler() http.Handler {
	return s.engine
}

// Store exposes the backing store
func (s *Server) Store() *Store {
	return s.store
}

// Start starts the mock server
func (s *Server) Start() error {
	addr := fmt.Sprintf("%s:%d", s.config.Host, s.config.Port)

	s.httpServer = &http.Server{
		Addr:    addr,
		Handler: s.engine,
	}

	go func() {
		if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.logger.Error("mock server error", zap.Error(err))
		}
	}()

	s.logger.Info("mock backend listening", zap.String("addr", addr), zap.Bool("auth", s.authEnabled()))
	return nil
}

// Stop stops the mock server
func (s *Server) Stop() error {
	if s.httpServer == nil {
		return nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	return s.httpServer.Shutdown(ctx)
}

// GetAddress returns the server address
func (s *Server) GetAddress() string {
	return fmt.Sprintf("http://%s:%d", s.config.Host, s.config.Port)
}

func (s *Server) authEnabled() bool {
	return s.config.Username != ""
}

func (s *Server) requireLogin() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !s.authEnabled() {
			c.Next()
			return
		}
		token, err := c.Cookie(sessionCookie)
		if err == nil && s.hasSession(token) {
			c.Next()
			return
		}
		c.Redirect(http.StatusFound, "/login")
		c.Abort()
	}
}

func (s *Server) loginPage(c *gin.Context) {
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(loginHTML("")))
}

func (s *Server) login(c *gin.Context) {
	if s.authEnabled() &&
		(c.PostForm("username") != s.config.Username || c.PostForm("password") != s.config.Password) {
		c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(loginHTML("Invalid username or password")))
		return
	}

	token := uuid.NewString()
	s.sessionsMu.Lock()
	s.sessions[token] = struct{}{}
	s.sessionsMu.Unlock()

	c.SetCookie(sessionCookie, token, 0, "/", "", false, true)
	c.Redirect(http.StatusFound, "/")
}

func (s *Server) logout(c *gin.Context) {
	if token, err := c.Cookie(sessionCookie); err == nil {
		s.sessionsMu.Lock()
		delete(s.sessions, token)
		s.sessionsMu.Unlock()
	}
	c.SetCookie(sessionCookie, "", -1, "/", "", false, true)
	c.Redirect(http.StatusFound, "/login")
}

func (s *Server) hasSession(token string) bool {
	s.sessionsMu.Lock()
	defer s.sessionsMu.Unlock()
	_, ok := s.sessions[token]
	return ok
}

func (s *Server) index(c *gin.Context) {
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte("<html><body>replydesk mock backend</body></html>"))
}

type generateRequest struct {
	CustomerEmail       string `json:"customer_email"`
	PreviousResponse    string `json:"previous_response"`
	ModificationRequest string `json:"modification_request"`
	TemplateID          any    `json:"template_id"`
}

func (s *Server) generateResponse(c *gin.Context) {
	var req generateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON body"})
		return
	}
	if req.CustomerEmail == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Customer email is required"})
		return
	}

	if req.PreviousResponse != "" {
		c.JSON(http.StatusOK, gin.H{"response": reviseDraft(req.PreviousResponse, req.ModificationRequest)})
		return
	}

	templateContent := ""
	if id, ok := parseTemplateID(req.TemplateID); ok {
		if t, found := s.store.Get(id); found {
			templateContent = t.Content
		}
	}
	c.JSON(http.StatusOK, gin.H{"response": draftReply(req.CustomerEmail, templateContent)})
}

func (s *Server) listTemplates(c *gin.Context) {
	c.JSON(http.StatusOK, s.store.List(c.Query("search"), c.Query("tag")))
}

func (s *Server) getTemplate(c *gin.Context) {
	id, ok := templateIDParam(c)
	if !ok {
		return
	}
	t, found := s.store.Get(id)
	if !found {
		notFound(c)
		return
	}
	c.JSON(http.StatusOK, t)
}

type createRequest struct {
	Title   string   `json:"title"`
	Content string   `json:"content"`
	Tags    []string `json:"tags"`
}

func (s *Server) createTemplate(c *gin.Context) {
	var req createRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON body"})
		return
	}
	if req.Title == "" || req.Content == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Title and content are required"})
		return
	}
	c.JSON(http.StatusCreated, s.store.Create(req.Title, req.Content, req.Tags))
}

func (s *Server) updateTemplate(c *gin.Context) {
	id, ok := templateIDParam(c)
	if !ok {
		return
	}
	var req templateUpdate
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON body"})
		return
	}
	t, found := s.store.Update(id, req)
	if !found {
		notFound(c)
		return
	}
	c.JSON(http.StatusOK, t)
}

func (s *Server) deleteTemplate(c *gin.Context) {
	id, ok := templateIDParam(c)
	if !ok {
		return
	}
	if !s.store.Delete(id) {
		notFound(c)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Template deleted successfully"})
}

func (s *Server) listTags(c *gin.Context) {
	c.JSON(http.StatusOK, s.store.Tags())
}

func templateIDParam(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		notFound(c)
		return 0, false
	}
	return id, true
}

func parseTemplateID(v any) (int, bool) {
	switch id := v.(type) {
	case float64:
		return int(id), true
	case string:
		n, err := strconv.Atoi(strings.TrimSpace(id))
		return n, err == nil
	default:
		return 0, false
	}
}

func notFound(c *gin.Context) {
	c.JSON(http.StatusNotFound, gin.H{"error": "Template not found"})
}

// draftReply builds a deterministic reply so clients can assert on it
func draftReply(customerEmail, templateContent string) string {
	var b strings.Builder
	b.WriteString("Dear customer,\n\nThank you for your message")
	if subject := firstLine(customerEmail); subject != "" {
		fmt.Fprintf(&b, " regarding %q", subject)
	}
	b.WriteString(".\n\n")
	if templateContent != "" {
		b.WriteString(templateContent)
		b.WriteString("\n\n")
	}
	b.WriteString("Best regards,\nCustomer Service")
	return b.String()
}

func reviseDraft(previous, instruction string) string {
	if instruction == "" {
		return previous
	}
	return fmt.Sprintf("%s\n\n(Revised: %s)", previous, instruction)
}

func firstLine(s string) string {
	s = strings.TrimSpace(s)
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		s = s[:i]
	}
	return strings.TrimSpace(s)
}

func loginHTML(flash string) string {
	return "<html><body><form method=\"post\" action=\"/login\">" + flash + "</form></body></html>"
}

// logRequests records every request when logging is enabled
func (s *Server) logRequests() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		var body []byte
		if c.Request.Body != nil {
			body, _ = io.ReadAll(c.Request.Body)
			c.Request.Body = io.NopCloser(bytes.NewReader(body))
		}

		c.Next()

		duration := time.Since(start)
		s.logger.Debug("request",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("duration", duration))

		if s.config.Logging {
			s.logRequest(RequestLog{
				Timestamp: start,
				Method:    c.Request.Method,
				Path:      c.Request.URL.Path,
				Query:     c.Request.URL.RawQuery,
				Body:      string(body),
				Status:    c.Writer.Status(),
				Duration:  duration,
			})
		}
	}
}

// logRequest adds a request to the log
func (s *Server) logRequest(log RequestLog) {
	s.logsMutex.Lock()
	defer s.logsMutex.Unlock()

	s.logs = append(s.logs, log)

	// Keep only last 1000 logs
	if len(s.logs) > 1000 {
		s.logs = s.logs[len(s.logs)-1000:]
	}
}

// GetLogs returns all logged requests
func (s *Server) GetLogs() []RequestLog {
	s.logsMutex.RLock()
	defer s.logsMutex.RUnlock()

	// Return a copy
	logs := make([]RequestLog, len(s.logs))
	copy(logs, s.logs)
	return logs
}

// ClearLogs clears all logged requests
func (s *Server) ClearLogs() {
	s.logsMutex.Lock()
	defer s.logsMutex.Unlock()

	s.logs = make([]RequestLog, 0)
}

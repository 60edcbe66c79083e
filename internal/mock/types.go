package mock

import "time"

// Config represents the mock backend configuration
type Config struct {
	Port      int            `json:"port" yaml:"port"`           // Server port (default: 5000)
	Host      string         `json:"host" yaml:"host"`           // Server host (default: localhost)
	Username  string         `json:"username" yaml:"username"`   // Login user; empty disables auth
	Password  string         `json:"password" yaml:"password"`   // Login password
	Templates []SeedTemplate `json:"templates" yaml:"templates"` // Templates loaded at startup
	Logging   bool           `json:"logging" yaml:"logging"`     // Keep a request log
}

// SeedTemplate is a template definition in a seed file
type SeedTemplate struct {
	Title   string   `json:"title" yaml:"title"`
	Content string   `json:"content" yaml:"content"`
	Tags    []string `json:"tags,omitempty" yaml:"tags,omitempty"`
}

// RequestLog represents a logged request
type RequestLog struct {
	Timestamp time.Time     `json:"timestamp"`
	Method    string        `json:"method"`
	Path      string        `json:"path"`
	Query     string        `json:"query"`
	Body      string        `json:"body"`
	Status    int           `json:"status"`
	Duration  time.Duration `json:"duration"`
}

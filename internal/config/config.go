package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const (
	// FilePermissions is the default permission mode for regular files (read/write for owner, read for others)
	FilePermissions = 0644
	// DirPermissions is the default permission mode for directories (rwxr-xr-x)
	DirPermissions = 0755

	// EnvPrefix prefixes every environment override (REPLYDESK_SERVER_URL, ...)
	EnvPrefix = "REPLYDESK"
)

var (
	// ConfigDir is the global configuration directory (~/.replydesk)
	ConfigDir string

	// ConfigFile is the default settings file
	ConfigFile string

	// LogFile is the default log destination
	LogFile string

	// KeybindsFile holds user keybinding overrides
	KeybindsFile string
)

const defaultConfig = `# replydesk settings
server:
  url: http://localhost:5000
  timeout: 60
auth:
  username: ""
  password: ""
log:
  level: info
  format: json
ui:
  message_timeout: 0
`

// Initialize sets up the configuration directory and files
// It creates ~/.replydesk/ if it doesn't exist
func Initialize() error {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return fmt.Errorf("failed to get home directory: %w", err)
	}
	return InitializeAt(filepath.Join(homeDir, ".replydesk"))
}

// InitializeAt sets up the configuration directory rooted at dir
func InitializeAt(dir string) error {
	ConfigDir = dir
	ConfigFile = filepath.Join(ConfigDir, "config.yaml")
	LogFile = filepath.Join(ConfigDir, "replydesk.log")
	KeybindsFile = filepath.Join(ConfigDir, "keybinds.json")

	if err := os.MkdirAll(ConfigDir, DirPermissions); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", ConfigDir, err)
	}

	// Create default settings file if it doesn't exist
	if _, err := os.Stat(ConfigFile); os.IsNotExist(err) {
		if err := os.WriteFile(ConfigFile, []byte(defaultConfig), FilePermissions); err != nil {
			return fmt.Errorf("failed to create config file: %w", err)
		}
	}

	return nil
}

// Settings is the resolved configuration
type Settings struct {
	Server ServerConfig `mapstructure:"server"`
	Auth   AuthConfig   `mapstructure:"auth"`
	Log    LogConfig    `mapstructure:"log"`
	UI     UIConfig     `mapstructure:"ui"`
	Mock   MockConfig   `mapstructure:"mock"`
}

// ServerConfig locates the assistant backend
type ServerConfig struct {
	URL                string `mapstructure:"url"`
	Timeout            int    `mapstructure:"timeout"` // seconds
	InsecureSkipVerify bool   `mapstructure:"insecure_skip_verify"`
	CAFile             string `mapstructure:"ca_file"`
}

// AuthConfig holds the form-login credentials. Empty username skips login.
type AuthConfig struct {
	Username string `mapstructure:"username"`
	Password string `mapstructure:"password"`
}

// LogConfig mirrors the zap production config knobs we expose
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"` // json or console
	Output string `mapstructure:"output"` // file path, "stderr" or "stdout"
}

// UIConfig tunes the terminal UI
type UIConfig struct {
	MessageTimeout int `mapstructure:"message_timeout"` // seconds, 0 keeps status messages until replaced
}

// MockConfig configures `replydesk mock`
type MockConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	SeedFile string `mapstructure:"seed_file"`
	Username string `mapstructure:"username"`
	Password string `mapstructure:"password"`
}

// TimeoutDuration returns the HTTP timeout
func (s ServerConfig) TimeoutDuration() time.Duration {
	return time.Duration(s.Timeout) * time.Second
}

// HasCredentials reports whether a login should be attempted
func (a AuthConfig) HasCredentials() bool {
	return a.Username != ""
}

// NewViper returns a viper instance with defaults and env bindings applied.
// Callers may bind command flags to it before calling Load.
func NewViper() *viper.Viper {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	return v
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.url", "http://localhost:5000")
	v.SetDefault("server.timeout", 60)
	v.SetDefault("server.insecure_skip_verify", false)
	v.SetDefault("server.ca_file", "")

	v.SetDefault("auth.username", "")
	v.SetDefault("auth.password", "")

	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")
	v.SetDefault("log.output", LogFile)

	v.SetDefault("ui.message_timeout", 0)

	v.SetDefault("mock.host", "localhost")
	v.SetDefault("mock.port", 5000)
	v.SetDefault("mock.seed_file", "")
	v.SetDefault("mock.username", "")
	v.SetDefault("mock.password", "")
}

// Load reads settings from configFile (or the default locations when empty)
// layered under environment variables and any flags bound to v.
func Load(v *viper.Viper, configFile string) (*Settings, error) {
	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if ConfigDir != "" {
			v.AddConfigPath(ConfigDir)
		}
	}

	if err := v.ReadInConfig(); err != nil {
		// A missing file is fine, defaults and env vars still apply
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) || configFile != "" {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var settings Settings
	if err := v.Unmarshal(&settings); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := settings.validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &settings, nil
}

func (s *Settings) validate() error {
	s.Server.URL = strings.TrimRight(strings.TrimSpace(s.Server.URL), "/")
	if s.Server.URL == "" {
		return errors.New("server.url is required")
	}
	if !strings.HasPrefix(s.Server.URL, "http://") && !strings.HasPrefix(s.Server.URL, "https://") {
		return fmt.Errorf("server.url must start with http:// or https://, got %q", s.Server.URL)
	}
	if s.Server.Timeout <= 0 {
		s.Server.Timeout = 60
	}
	if s.Log.Output == "" {
		s.Log.Output = LogFile
	}
	if s.UI.MessageTimeout < 0 {
		return errors.New("ui.message_timeout must not be negative")
	}
	return nil
}

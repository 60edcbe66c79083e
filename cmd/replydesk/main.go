package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/studiowebux/replydesk/internal/cli"
	"github.com/studiowebux/replydesk/internal/client"
	"github.com/studiowebux/replydesk/internal/config"
	"github.com/studiowebux/replydesk/internal/keybinds"
	"github.com/studiowebux/replydesk/internal/logging"
	"github.com/studiowebux/replydesk/internal/tui"
)

var (
	version = "0.1.0"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", cli.Describe(err))
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "replydesk",
	Short: "Terminal client for the AI email response assistant",
	Long: `replydesk drafts replies to customer emails with the AI email response
assistant and manages the reply templates it can start from.

Run without arguments to start the TUI, or use a subcommand for one-shot work.

Examples:
  replydesk                                  # Start interactive TUI
  replydesk generate --email @mail.txt       # Draft a reply to the email in mail.txt
  pbpaste | replydesk generate --email - -t 3
  replydesk modify --email @mail.txt --previous @draft.txt -m "shorter"
  replydesk templates list --tag shipping
  replydesk templates save --title Delay --content "Sorry..." --tags shipping,delay
  replydesk mock --seed seed.yaml            # Run a local backend to try things out`,
	Version:       version,
	SilenceUsage:  true,
	SilenceErrors: true,
	Args:          cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runTUI(cmd)
	},
}

// Global flags
var (
	flagConfig   string
	flagURL      string
	flagTimeout  int
	flagUser     string
	flagPassword string
	flagLogLevel string
	flagOutput   string
)

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&flagConfig, "config", "", "Settings file (default ~/.replydesk/config.yaml)")
	flags.StringVar(&flagURL, "url", "", "Backend base URL")
	flags.IntVar(&flagTimeout, "timeout", 0, "Request timeout in seconds")
	flags.StringVarP(&flagUser, "username", "u", "", "Login username")
	flags.StringVar(&flagPassword, "password", "", "Login password")
	flags.StringVar(&flagLogLevel, "log-level", "", "Log level (debug/info/warn/error)")
	flags.StringVarP(&flagOutput, "output", "o", "text", "Output format for one-shot commands (text/json/yaml)")

	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(modifyCmd)
	rootCmd.AddCommand(templatesCmd)
	rootCmd.AddCommand(tagsCmd)
	rootCmd.AddCommand(mockCmd)
	rootCmd.AddCommand(keybindsCmd)
}

// bindFlags layers the command line over config file and environment
func bindFlags(cmd *cobra.Command, v *viper.Viper) {
	bindings := map[string]string{
		"url":       "server.url",
		"timeout":   "server.timeout",
		"username":  "auth.username",
		"password":  "auth.password",
		"log-level": "log.level",
		"host":      "mock.host",
		"port":      "mock.port",
		"seed":      "mock.seed_file",
		"user":      "mock.username",
		"pass":      "mock.password",
	}
	for flag, key := range bindings {
		if f := cmd.Flags().Lookup(flag); f != nil {
			_ = v.BindPFlag(key, f)
		}
	}
}

// loadSettings bootstraps the config directory and resolves settings
func loadSettings(cmd *cobra.Command) (*config.Settings, error) {
	if err := config.Initialize(); err != nil {
		return nil, fmt.Errorf("failed to initialize config: %w", err)
	}

	v := config.NewViper()
	bindFlags(cmd, v)
	return config.Load(v, flagConfig)
}

// session is what every backend-facing command needs
type session struct {
	settings *config.Settings
	logger   *zap.Logger
	client   *client.Client
}

// connect loads settings, builds the logger and client, and logs in when
// credentials are configured.
func connect(cmd *cobra.Command) (*session, error) {
	settings, err := loadSettings(cmd)
	if err != nil {
		return nil, err
	}

	logger := logging.New(settings.Log)

	c, err := client.New(client.Options{
		BaseURL: settings.Server.URL,
		Timeout: settings.Server.TimeoutDuration(),
		TLS: &client.TLSConfig{
			InsecureSkipVerify: settings.Server.InsecureSkipVerify,
			CAFile:             settings.Server.CAFile,
		},
		Logger: logger,
	})
	if err != nil {
		return nil, err
	}

	if settings.Auth.HasCredentials() {
		ctx, cancel := context.WithTimeout(cmd.Context(), settings.Server.TimeoutDuration())
		defer cancel()
		if err := c.Login(ctx, settings.Auth.Username, settings.Auth.Password); err != nil {
			logger.Warn("login failed", zap.String("username", settings.Auth.Username), zap.Error(err))
			return nil, fmt.Errorf("login failed: %w", err)
		}
	}

	return &session{settings: settings, logger: logger, client: c}, nil
}

func (s *session) close() {
	_ = s.logger.Sync()
}

// runTUI starts the interactive TUI
func runTUI(cmd *cobra.Command) error {
	s, err := connect(cmd)
	if err != nil {
		return err
	}
	defer s.close()

	registry, err := keybinds.LoadOrDefault(config.KeybindsFile)
	if err != nil {
		return err
	}

	s.logger.Info("starting tui", zap.String("server", s.settings.Server.URL))
	return tui.Run(s.client, tui.Options{
		Context:        cmd.Context(),
		Keybinds:       registry,
		Logger:         s.logger,
		BaseURL:        s.settings.Server.URL,
		MessageTimeout: time.Duration(s.settings.UI.MessageTimeout) * time.Second,
	})
}

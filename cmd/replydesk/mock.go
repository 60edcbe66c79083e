package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/studiowebux/replydesk/internal/logging"
	"github.com/studiowebux/replydesk/internal/mock"
)

// Flags for mock
var (
	flagMockHost    string
	flagMockPort    int
	flagMockSeed    string
	flagMockUser    string
	flagMockPass    string
	flagMockExample string
)

var mockCmd = &cobra.Command{
	Use:   "mock",
	Short: "Run an in-memory backend for trying replydesk",
	Long: `Run an in-memory implementation of the assistant's REST API.

Generated replies are deterministic drafts, not AI output. Templates can be
seeded from a YAML or JSON file; --example writes a starter seed file.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if flagMockExample != "" {
			if err := mock.SaveConfig(mock.ExampleConfig(), flagMockExample); err != nil {
				return err
			}
			fmt.Printf("Example seed written to %s\n", flagMockExample)
			return nil
		}
		return runMock(cmd)
	},
}

func init() {
	mockCmd.Flags().StringVar(&flagMockHost, "host", "", "Listen host (default localhost)")
	mockCmd.Flags().IntVar(&flagMockPort, "port", 0, "Listen port (default 5000)")
	mockCmd.Flags().StringVar(&flagMockSeed, "seed", "", "Seed file with templates (.yaml/.yml/.json)")
	mockCmd.Flags().StringVar(&flagMockUser, "user", "", "Require a login with this username")
	mockCmd.Flags().StringVar(&flagMockPass, "pass", "", "Password for --user")
	mockCmd.Flags().StringVar(&flagMockExample, "example", "", "Write an example seed file to this path and exit")
}

func runMock(cmd *cobra.Command) error {
	settings, err := loadSettings(cmd)
	if err != nil {
		return err
	}

	// The mock has no UI, so it logs to the terminal
	logCfg := settings.Log
	logCfg.Output = "stderr"
	logCfg.Format = "console"
	logger := logging.New(logCfg)
	defer logger.Sync()

	cfg := &mock.Config{Logging: true}
	if settings.Mock.SeedFile != "" {
		cfg, err = mock.LoadConfig(settings.Mock.SeedFile)
		if err != nil {
			return err
		}
	}
	if settings.Mock.Host != "" {
		cfg.Host = settings.Mock.Host
	}
	if settings.Mock.Port != 0 {
		cfg.Port = settings.Mock.Port
	}
	if settings.Mock.Username != "" {
		cfg.Username = settings.Mock.Username
		cfg.Password = settings.Mock.Password
	}

	srv := mock.NewServer(cfg, logger)
	if err := srv.Start(); err != nil {
		return err
	}
	fmt.Fprintf(os.Stderr, "Mock backend running at %s (ctrl+c to stop)\n", srv.GetAddress())

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	logger.Info("shutting down", zap.Int("requests", len(srv.GetLogs())))
	return srv.Stop()
}

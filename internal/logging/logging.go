// Package logging builds the zap logger used across replydesk.
//
// The terminal UI owns stdout, so the default output is a file in the config
// directory. One-shot commands may log to stderr instead.
package logging

import (
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/studiowebux/replydesk/internal/config"
)

// New builds a logger from the log settings. It never fails: an unusable
// configuration falls back to a no-op logger so the UI keeps working.
func New(cfg config.LogConfig) *zap.Logger {
	zc := zap.NewProductionConfig()

	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		level = zapcore.InfoLevel
	}
	zc.Level = zap.NewAtomicLevelAt(level)

	if cfg.Format == "console" {
		zc.Encoding = "console"
		zc.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	} else {
		zc.Encoding = "json"
	}

	output := cfg.Output
	if output == "" {
		output = "stderr"
	}
	if output != "stderr" && output != "stdout" {
		if err := os.MkdirAll(filepath.Dir(output), config.DirPermissions); err != nil {
			return zap.NewNop()
		}
	}
	zc.OutputPaths = []string{output}
	zc.ErrorOutputPaths = []string{output}

	logger, err := zc.Build()
	if err != nil {
		return zap.NewNop()
	}
	return logger
}

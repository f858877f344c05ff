package app

import (
	"os"

	"github.com/rs/zerolog"

	"github.com/agentstation/dirsync/pkg/logging"
)

// NewLogger creates the application logger from configuration.
func NewLogger(cfg *Config) zerolog.Logger {
	level := zerolog.InfoLevel
	if cfg.Verbose {
		level = zerolog.DebugLevel
	}
	if parsed, err := zerolog.ParseLevel(cfg.LogLevel); err == nil && cfg.LogLevel != "" {
		level = parsed
	}
	zerolog.SetGlobalLevel(level)

	var logger zerolog.Logger
	if cfg.LogFormat == "json" {
		logger = logging.New(os.Stderr)
	} else {
		logger = logging.NewConsole()
	}
	logger = logger.Level(level)

	logging.SetDefault(logger)
	return logger
}

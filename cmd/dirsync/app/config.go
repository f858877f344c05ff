package app

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/agentstation/dirsync/pkg/errors"
)

// Config holds the application configuration loaded from flags,
// environment variables, and .env files.
type Config struct {
	// Global flags
	Verbose bool

	// Scenario is the default scenario file for the pull command.
	Scenario string

	// Logging configuration
	LogLevel  string
	LogFormat string
}

// LoadConfig loads configuration from all sources in order of
// precedence: command-line flags (handled by cobra), environment
// variables, .env files, then defaults.
func LoadConfig() (*Config, error) {
	// Load .env files first (before Viper env binding)
	loadEnvFiles()

	viper.SetEnvPrefix("DIRSYNC")
	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))

	viper.SetDefault("log_level", "info")
	viper.SetDefault("log_format", "auto")

	config := &Config{
		Scenario:  viper.GetString("scenario"),
		LogLevel:  viper.GetString("log_level"),
		LogFormat: viper.GetString("log_format"),
	}

	switch config.LogFormat {
	case "auto", "json", "console":
	default:
		return nil, errors.NewConfigError("logging",
			fmt.Sprintf("unknown log format %q (want auto, json, or console)", config.LogFormat), nil)
	}

	return config, nil
}

// loadEnvFiles loads .env files from the working directory, most
// specific first. Missing files are fine.
func loadEnvFiles() {
	for _, name := range []string{".env.local", ".env"} {
		if _, err := os.Stat(name); err == nil {
			_ = godotenv.Load(name)
		}
	}
}

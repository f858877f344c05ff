// Package app provides the application context and dependency management
// for the dirsync CLI. It centralizes configuration, logging, and the
// reconciliation engine instance.
package app

import (
	"context"
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/agentstation/dirsync"
)

// App represents the dirsync application with all its dependencies.
type App struct {
	version string
	commit  string
	date    string

	config *Config
	logger *zerolog.Logger
	engine dirsync.Dirsync
}

// New creates a new App instance with the given version information.
func New(version, commit, date string) (*App, error) {
	a := &App{
		version: version,
		commit:  commit,
		date:    date,
	}

	config, err := LoadConfig()
	if err != nil {
		return nil, err
	}
	a.config = config

	logger := NewLogger(config)
	a.logger = &logger

	engine, err := dirsync.New(dirsync.WithLogger(a.logger))
	if err != nil {
		return nil, err
	}
	a.engine = engine

	return a, nil
}

// Logger returns the application logger.
func (a *App) Logger() *zerolog.Logger {
	return a.logger
}

// Execute runs the dirsync CLI application with the given arguments.
func (a *App) Execute(ctx context.Context, args []string) error {
	rootCmd := a.createRootCommand()
	rootCmd.SetArgs(args)
	return rootCmd.ExecuteContext(ctx)
}

// createRootCommand creates the root cobra command with all subcommands.
func (a *App) createRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:     "dirsync",
		Short:   "Identity directory reconciliation CLI",
		Version: fmt.Sprintf("%s (commit %s, built %s)", a.version, a.commit, a.date),
		Long: `Dirsync reconciles identity records pulled from external directories
with an internal identity model: it maps connector attributes into typed
entities, overlays templates, generates policy-compliant credentials,
and computes minimal patches against existing entities.`,
		PersistentPreRunE: a.setupCommand,
		SilenceUsage:      true,
		SilenceErrors:     true,
	}

	rootCmd.PersistentFlags().BoolVarP(&a.config.Verbose, "verbose", "v", false, "verbose output (shortcut for --log-level=debug)")
	rootCmd.PersistentFlags().StringVar(&a.config.LogLevel, "log-level", a.config.LogLevel, "log level: trace, debug, info, warn, error")

	rootCmd.AddCommand(a.pullCommand())

	return rootCmd
}

// setupCommand runs before any command: it folds the parsed global flags
// into the configuration and rebuilds the logger and engine from it.
func (a *App) setupCommand(cmd *cobra.Command, _ []string) error {
	if a.config.Verbose && !cmd.Flags().Changed("log-level") {
		a.config.LogLevel = "debug"
	}

	logger := NewLogger(a.config)
	a.logger = &logger

	engine, err := dirsync.New(dirsync.WithLogger(a.logger))
	if err != nil {
		return err
	}
	a.engine = engine

	return nil
}

// ExitOnError prints the error and exits with a non-zero status.
func ExitOnError(err error) {
	if err == nil {
		return
	}
	fmt.Fprintln(os.Stderr, "Error:", err)
	os.Exit(1)
}

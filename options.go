package dirsync

import (
	"github.com/rs/zerolog"

	"github.com/agentstation/dirsync/pkg/differ"
	"github.com/agentstation/dirsync/pkg/policy"
	"github.com/agentstation/dirsync/pkg/reconcile"
)

// config collects the construction-time settings of a Dirsync instance.
type config struct {
	engineOptions []reconcile.Option
}

func defaultConfig() *config {
	return &config{}
}

// Option configures a Dirsync instance.
type Option func(*config) error

// WithLogger sets the logger used by the engine.
func WithLogger(logger *zerolog.Logger) Option {
	return func(c *config) error {
		c.engineOptions = append(c.engineOptions, reconcile.WithLogger(logger))
		return nil
	}
}

// WithDiffer sets the differ used by the patch path.
func WithDiffer(d differ.Differ) Option {
	return func(c *config) error {
		c.engineOptions = append(c.engineOptions, reconcile.WithDiffer(d))
		return nil
	}
}

// WithGenerator sets the secret generator used by the build path.
func WithGenerator(g *policy.Generator) Option {
	return func(c *config) error {
		c.engineOptions = append(c.engineOptions, reconcile.WithGenerator(g))
		return nil
	}
}

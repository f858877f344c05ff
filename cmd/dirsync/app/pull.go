package app

import (
	"fmt"
	"io"

	"github.com/goccy/go-yaml"
	"github.com/spf13/cobra"

	"github.com/agentstation/dirsync/internal/scenario"
	"github.com/agentstation/dirsync/pkg/errors"
	"github.com/agentstation/dirsync/pkg/identity"
	"github.com/agentstation/dirsync/pkg/reconcile"
)

// pullCommand creates the pull subcommand: a one-shot inbound
// reconciliation over a scenario file.
func (a *App) pullCommand() *cobra.Command {
	var scenarioPath string
	var key string

	cmd := &cobra.Command{
		Use:   "pull",
		Short: "Reconcile one connector record from a scenario file",
		Long: `Pull reads a YAML scenario describing a connector record together with
the realm, resource, template, and credential configuration, then either
builds a full entity (creation) or computes a minimal patch against the
scenario's original snapshot (update), printing the result as YAML.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if scenarioPath == "" {
				scenarioPath = a.config.Scenario
			}
			if scenarioPath == "" {
				return errors.NewValidationError("scenario", "", "a scenario file is required")
			}
			return a.runPull(cmd, scenarioPath, key)
		},
	}

	cmd.Flags().StringVarP(&scenarioPath, "scenario", "s", "", "scenario file (or DIRSYNC_SCENARIO)")
	cmd.Flags().StringVarP(&key, "key", "k", "", "entity key override for the patch path")

	return cmd
}

// runPull executes one reconciliation pass over the scenario.
func (a *App) runPull(cmd *cobra.Command, path, keyOverride string) error {
	s, err := scenario.Load(path)
	if err != nil {
		return err
	}

	res, ok := s.TargetResource()
	if !ok {
		return errors.NewNotFoundError("resource", s.Resource)
	}

	tx := s.Store().ReadTx()
	rec := s.ConnectorRecord()
	ctx := &reconcile.Context{
		Kind:             s.Kind,
		Mapping:          res.Mapping,
		Template:         s.Template,
		DestinationRealm: s.DestinationRealm,
		Resource:         s.Resource,
		GeneratePassword: res.GeneratePasswordIfMissing,
	}

	logger := a.logger.With().
		Str("kind", s.Kind.String()).
		Str("resource", s.Resource).
		Logger()

	if original := s.OriginalSnapshot(); original != nil {
		key := keyOverride
		if key == "" {
			key = s.Key
		}
		if key == "" {
			key = original.Core().Key
		}

		patch := a.engine.Patch(tx, key, rec, original, ctx)
		if patch == nil {
			return fmt.Errorf("%w: %s", errors.ErrUnsupportedKind, s.Kind)
		}
		if patch.Empty() {
			logger.Info().Str("key", key).Msg("no changes detected")
		}
		return writeYAML(cmd.OutOrStdout(), patch)
	}

	snap := a.engine.Build(tx, rec, ctx)
	if snap == nil {
		return fmt.Errorf("%w: %s", errors.ErrUnsupportedKind, s.Kind)
	}
	if snap.Core().Key == "" {
		snap.Core().Key = identity.NewKey()
	}
	logger.Info().Str("key", snap.Core().Key).Msg("entity built")

	return writeYAML(cmd.OutOrStdout(), redacted(snap))
}

// redacted copies the snapshot with the credential masked for display;
// secrets are printed nowhere, only their presence.
func redacted(snap identity.Snapshot) identity.Snapshot {
	out := snap.Clone()
	if p, ok := out.(*identity.Person); ok && p.Password != "" {
		p.Password = "********"
	}
	return out
}

// writeYAML marshals v as YAML onto w.
func writeYAML(w io.Writer, v any) error {
	data, err := yaml.Marshal(v)
	if err != nil {
		return errors.Wrap(err, "rendering result")
	}
	_, err = w.Write(data)
	return err
}

// Package dirsync reconciles identity records held in external
// directories with an internal identity model. It maps connector
// attribute sets into typed entity snapshots (persons, groups, generic
// objects) through a declarative schema mapping, enriches them with
// configured templates, supplies persons with policy-compliant
// credentials when the directory delivers none, and diffs against
// existing entities to produce minimal, protection-aware patches.
//
// The package is the in-process facade over pkg/reconcile; storage,
// scheduling, and connector I/O are collaborator concerns supplied by
// the caller.
package dirsync

import (
	"github.com/agentstation/dirsync/pkg/connector"
	"github.com/agentstation/dirsync/pkg/differ"
	"github.com/agentstation/dirsync/pkg/identity"
	"github.com/agentstation/dirsync/pkg/reconcile"
	"github.com/agentstation/dirsync/pkg/store"
)

// Dirsync is the reconciliation surface exposed to callers such as a
// pull-task executor.
type Dirsync interface {
	// Build produces a fully built entity snapshot from a connector
	// record, for entity creation.
	Build(tx store.ReadTx, rec *connector.Record, ctx *reconcile.Context) identity.Snapshot

	// Patch produces the minimal patch for an existing entity. A nil
	// return means the entity kind could not be reconciled; an empty
	// patch is a valid no-op update.
	Patch(tx store.ReadTx, key string, rec *connector.Record, original identity.Snapshot, ctx *reconcile.Context) *differ.Patch
}

// dirsync is the internal implementation of the Dirsync interface.
type dirsync struct {
	engine *reconcile.Engine
}

// New creates a new Dirsync instance with the given options.
func New(opts ...Option) (Dirsync, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, err
		}
	}

	return &dirsync{engine: reconcile.New(cfg.engineOptions...)}, nil
}

// Build implements Dirsync.
func (d *dirsync) Build(tx store.ReadTx, rec *connector.Record, ctx *reconcile.Context) identity.Snapshot {
	return d.engine.Build(tx, rec, ctx)
}

// Patch implements Dirsync.
func (d *dirsync) Patch(tx store.ReadTx, key string, rec *connector.Record, original identity.Snapshot, ctx *reconcile.Context) *differ.Patch {
	return d.engine.Patch(tx, key, rec, original, ctx)
}

// ExtractSecret decodes a credential value received from a connector
// into a plain comparable string. It is exposed here for collaborators
// that read raw connector attribute values outside entity building.
func ExtractSecret(v connector.Value) string {
	return connector.ExtractSecret(v)
}

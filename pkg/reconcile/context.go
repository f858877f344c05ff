// Package reconcile implements the reconciliation engine: it builds a
// typed entity snapshot from a connector record (mapping, template
// overlay, and credential generation for persons), and produces minimal
// patches against existing entities with field-protection rules that
// keep externally-unmanaged state from being discarded.
package reconcile

import (
	"github.com/agentstation/dirsync/pkg/identity"
	"github.com/agentstation/dirsync/pkg/mapping"
	"github.com/agentstation/dirsync/pkg/template"
)

// Context is the read-only bundle for one reconciliation call. It lives
// for exactly one call, is never shared across calls, and holds no
// mutable state.
type Context struct {
	// Kind is the target entity kind.
	Kind identity.Kind

	// Mapping is the schema mapping to apply.
	Mapping *mapping.Mapping

	// Template is the template to overlay, if any.
	Template *template.Template

	// DestinationRealm is the full path of the realm entities land in.
	DestinationRealm string

	// Resource is the name of the target external resource.
	Resource string

	// GeneratePassword makes the build path generate a policy-compliant
	// credential for persons the record delivered without one.
	GeneratePassword bool
}

// Package store defines the read-only collaborator surface the
// reconciliation engine borrows for one call: realm hierarchy, external
// resource configuration, and stored credentials. The engine never
// writes through it. An in-memory implementation backs the CLI and
// tests; real deployments put their persistence layer behind ReadTx.
package store

import (
	"github.com/agentstation/dirsync/pkg/mapping"
	"github.com/agentstation/dirsync/pkg/policy"
	"github.com/agentstation/dirsync/pkg/secrets"
)

// Realm is one node of the realm hierarchy, identified by its full path
// ("/", "/corp", "/corp/emea", ...).
type Realm struct {
	FullPath string         `yaml:"fullPath" json:"fullPath"`
	Policy   *policy.Policy `yaml:"passwordPolicy,omitempty" json:"passwordPolicy,omitempty"`
}

// PasswordPolicy returns the policy assigned to the realm, if any.
func (r *Realm) PasswordPolicy() *policy.Policy {
	if r == nil {
		return nil
	}
	return r.Policy
}

// Resource is the configuration of one external resource (directory,
// database, cloud API) entities may be provisioned to.
type Resource struct {
	Name string `yaml:"name" json:"name"`

	// Policy is the resource-level password policy, if any.
	Policy *policy.Policy `yaml:"passwordPolicy,omitempty" json:"passwordPolicy,omitempty"`

	// GeneratePasswordIfMissing makes the build path generate a
	// policy-compliant credential for persons the directory delivered
	// without one.
	GeneratePasswordIfMissing bool `yaml:"generatePasswordIfMissing,omitempty" json:"generatePasswordIfMissing,omitempty"`

	// Mapping is the resource's schema mapping.
	Mapping *mapping.Mapping `yaml:"mapping,omitempty" json:"mapping,omitempty"`
}

// PasswordPolicy returns the policy assigned to the resource, if any.
func (r *Resource) PasswordPolicy() *policy.Policy {
	if r == nil {
		return nil
	}
	return r.Policy
}

// Credential is a stored, hashed credential together with the algorithm
// that hashed it.
type Credential struct {
	Hash      string            `yaml:"hash" json:"hash"`
	Algorithm secrets.Algorithm `yaml:"algorithm" json:"algorithm"`
}

// ReadTx is a borrowed, read-scoped transaction handle: a consistent
// read-only snapshot of shared configuration for the duration of one
// reconciliation call. Implementations must tolerate concurrent readers;
// the engine never stores a ReadTx beyond the call it was passed to.
type ReadTx interface {
	policy.Lookup

	// CredentialByKey returns the stored credential of the entity with
	// the given key.
	CredentialByKey(key string) (Credential, bool)
}

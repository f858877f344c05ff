// Package differ computes minimal patches between two entity snapshots
// of the same kind. The patch maps field names to change descriptors; a
// cleanup pass strips changes whose resulting value would be null or an
// empty collection, so downstream consumers never see no-op churn.
package differ

import (
	"sort"
	"strings"

	"github.com/agentstation/dirsync/pkg/identity"
)

// attrPrefix namespaces plain-attribute fields in a patch.
const attrPrefix = "attrs."

// Op is the kind of change applied to a field.
type Op string

const (
	// OpSet replaces a field's value(s).
	OpSet Op = "set"

	// OpClear removes a field's value entirely.
	OpClear Op = "clear"

	// OpAdd adds entries to a collection field.
	OpAdd Op = "add"

	// OpRemove removes entries from a collection field.
	OpRemove Op = "remove"
)

// Change describes one field-level change. Values carries the new
// value(s) for OpSet, the entries for OpAdd and OpRemove, and is empty
// for OpClear. Prior carries the previous value(s) for audit.
type Change struct {
	Op     Op       `yaml:"op" json:"op"`
	Values []string `yaml:"values,omitempty" json:"values,omitempty"`
	Prior  []string `yaml:"prior,omitempty" json:"prior,omitempty"`
}

// Patch is the minimal set of field-level changes needed to bring an
// existing entity in line with a freshly mapped snapshot. An empty patch
// is a valid no-op update, not an error.
type Patch struct {
	Kind   identity.Kind     `yaml:"kind" json:"kind"`
	Key    string            `yaml:"key" json:"key"`
	Fields map[string]Change `yaml:"fields,omitempty" json:"fields,omitempty"`
}

// Empty reports whether the patch carries no field changes.
func (p *Patch) Empty() bool {
	return p == nil || len(p.Fields) == 0
}

// FieldNames returns the changed field names in sorted order, for
// deterministic output.
func (p *Patch) FieldNames() []string {
	if p == nil {
		return nil
	}
	names := make([]string, 0, len(p.Fields))
	for name := range p.Fields {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// set records a change on the patch.
func (p *Patch) set(field string, c Change) {
	if p.Fields == nil {
		p.Fields = make(map[string]Change)
	}
	p.Fields[field] = c
}

// Clean is the cleanup pass run after diffing: it removes change entries
// whose resulting value would be null or an empty collection. A plain
// attribute the updated snapshot no longer carries yields no patch entry
// at all; clears of non-attribute fields survive as meaningful removals.
func Clean(p *Patch) {
	if p == nil {
		return
	}
	for name, change := range p.Fields {
		switch change.Op {
		case OpSet, OpAdd, OpRemove:
			if !hasValue(change.Values) {
				delete(p.Fields, name)
			}
		case OpClear:
			if strings.HasPrefix(name, attrPrefix) || !hasValue(change.Prior) {
				delete(p.Fields, name)
			}
		}
	}
}

// hasValue reports whether at least one non-empty value is present.
func hasValue(values []string) bool {
	for _, v := range values {
		if v != "" {
			return true
		}
	}
	return false
}

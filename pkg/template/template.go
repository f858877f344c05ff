// Package template applies configured entity templates onto freshly
// mapped snapshots. A template only fills gaps: values the attribute
// mapper already set are never overwritten, and collection defaults are
// appended, not replaced.
package template

import (
	"github.com/agentstation/dirsync/pkg/identity"
)

// Template holds the default values configured for one entity kind of a
// pull task.
type Template struct {
	// Attrs are default plain attributes, applied only where the mapped
	// snapshot has no value for the schema.
	Attrs []identity.Attr `yaml:"attrs,omitempty" json:"attrs,omitempty"`

	// Resources are default external resource associations.
	Resources []string `yaml:"resources,omitempty" json:"resources,omitempty"`

	// AuxClasses are default auxiliary class associations.
	AuxClasses []string `yaml:"auxClasses,omitempty" json:"auxClasses,omitempty"`

	// Memberships are default group memberships (persons and objects).
	Memberships []string `yaml:"memberships,omitempty" json:"memberships,omitempty"`

	// Roles are default role associations (persons only).
	Roles []string `yaml:"roles,omitempty" json:"roles,omitempty"`
}

// Apply overlays the template onto the snapshot in place. A nil template
// is a no-op.
func Apply(snap identity.Snapshot, tpl *Template) {
	if snap == nil || tpl == nil {
		return
	}

	core := snap.Core()
	for _, attr := range tpl.Attrs {
		if _, ok := core.Attr(attr.Schema); !ok {
			core.SetAttr(attr.Schema, attr.Values...)
		}
	}
	for _, r := range tpl.Resources {
		core.AddResource(r)
	}
	for _, c := range tpl.AuxClasses {
		core.AddAuxClass(c)
	}

	switch s := snap.(type) {
	case *identity.Person:
		s.Memberships = appendMissing(s.Memberships, tpl.Memberships)
		s.Roles = appendMissing(s.Roles, tpl.Roles)
	case *identity.ObjectRecord:
		s.Memberships = appendMissing(s.Memberships, tpl.Memberships)
	case *identity.Group:
		// groups have no template-driven collections beyond the core
	}
}

// appendMissing appends the defaults not already present, preserving the
// order of both lists.
func appendMissing(have, defaults []string) []string {
	for _, d := range defaults {
		found := false
		for _, h := range have {
			if h == d {
				found = true
				break
			}
		}
		if !found {
			have = append(have, d)
		}
	}
	return have
}

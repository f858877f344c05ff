package differ

import (
	"strconv"

	"github.com/agentstation/dirsync/pkg/identity"
)

// Differ computes patches between entity snapshots.
type Differ interface {
	// Diff compares updated against original and returns the minimal
	// patch. Both snapshots must be of the same kind; a kind mismatch
	// returns nil.
	Diff(updated, original identity.Snapshot) *Patch
}

// differ is the default implementation of Differ.
type differ struct {
	// strict treats fields absent on updated as explicit removals rather
	// than "unspecified".
	strict bool
}

// Option configures a Differ.
type Option func(*differ)

// WithStrict controls strict mode: when enabled, a field the updated
// snapshot leaves unset becomes a clear/remove, instead of being ignored.
func WithStrict(strict bool) Option {
	return func(d *differ) {
		d.strict = strict
	}
}

// New creates a new Differ with the given options.
func New(opts ...Option) Differ {
	d := &differ{}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Diff compares updated against original and returns the minimal patch.
func (d *differ) Diff(updated, original identity.Snapshot) *Patch {
	if updated == nil || original == nil || updated.Kind() != original.Kind() {
		return nil
	}

	patch := &Patch{Kind: updated.Kind(), Key: updated.Core().Key}

	d.diffCore(patch, updated.Core(), original.Core())

	switch u := updated.(type) {
	case *identity.Person:
		d.diffPerson(patch, u, original.(*identity.Person))
	case *identity.Group:
		d.diffGroup(patch, u, original.(*identity.Group))
	case *identity.ObjectRecord:
		d.diffObject(patch, u, original.(*identity.ObjectRecord))
	}

	return patch
}

// diffCore compares the shared entity core.
func (d *differ) diffCore(patch *Patch, updated, original *identity.Any) {
	d.scalar(patch, "realm", updated.Realm, original.Realm)
	d.collection(patch, "auxClasses", updated.AuxClasses, original.AuxClasses)
	d.collection(patch, "resources", updated.Resources, original.Resources)
	d.attrs(patch, updated.Attrs, original.Attrs)
}

// diffPerson compares person-specific fields.
func (d *differ) diffPerson(patch *Patch, updated, original *identity.Person) {
	d.scalar(patch, "username", updated.Username, original.Username)
	d.scalar(patch, "password", updated.Password, original.Password)
	d.scalar(patch, "securityQuestion", updated.SecurityQuestion, original.SecurityQuestion)
	d.boolean(patch, "mustChangePassword", updated.MustChangePassword, original.MustChangePassword)
	d.collection(patch, "roles", updated.Roles, original.Roles)
	d.collection(patch, "memberships", updated.Memberships, original.Memberships)
}

// diffGroup compares group-specific fields.
func (d *differ) diffGroup(patch *Patch, updated, original *identity.Group) {
	d.scalar(patch, "name", updated.Name, original.Name)
	d.scalar(patch, "userOwner", updated.UserOwner, original.UserOwner)
	d.scalar(patch, "groupOwner", updated.GroupOwner, original.GroupOwner)
	d.scalar(patch, "uDynMembershipCond", updated.UDynMembershipCond, original.UDynMembershipCond)
	d.conds(patch, updated.ADynMembershipConds, original.ADynMembershipConds)
	d.collection(patch, "typeExtensions", updated.TypeExtensions, original.TypeExtensions)
}

// diffObject compares generic object fields.
func (d *differ) diffObject(patch *Patch, updated, original *identity.ObjectRecord) {
	d.scalar(patch, "name", updated.Name, original.Name)
	d.collection(patch, "memberships", updated.Memberships, original.Memberships)
}

// scalar records a set when updated carries a different non-empty value,
// and in strict mode a clear when updated leaves a previously set field
// empty.
func (d *differ) scalar(patch *Patch, field, updated, original string) {
	if updated == original {
		return
	}
	if updated != "" {
		patch.set(field, Change{Op: OpSet, Values: []string{updated}, Prior: prior(original)})
		return
	}
	if d.strict && original != "" {
		patch.set(field, Change{Op: OpClear, Prior: []string{original}})
	}
}

// boolean records a set when the flag changed.
func (d *differ) boolean(patch *Patch, field string, updated, original bool) {
	if updated == original {
		return
	}
	patch.set(field, Change{
		Op:     OpSet,
		Values: []string{strconv.FormatBool(updated)},
		Prior:  []string{strconv.FormatBool(original)},
	})
}

// collection records additions and, in strict mode, removals. When a
// collection has both, the whole collection is replaced instead, which
// keeps one descriptor per field.
func (d *differ) collection(patch *Patch, field string, updated, original []string) {
	added := missing(updated, original)
	removed := missing(original, updated)
	if !d.strict {
		removed = nil
	}

	switch {
	case len(added) > 0 && len(removed) > 0:
		patch.set(field, Change{Op: OpSet, Values: updated, Prior: original})
	case len(added) > 0:
		patch.set(field, Change{Op: OpAdd, Values: added})
	case len(removed) > 0:
		patch.set(field, Change{Op: OpRemove, Values: removed, Prior: original})
	}
}

// attrs compares plain attributes by schema name. An attribute is
// replaced whole when its values differ; in strict mode an attribute
// absent on updated is cleared.
func (d *differ) attrs(patch *Patch, updated, original []identity.Attr) {
	originalBySchema := make(map[string][]string, len(original))
	for _, attr := range original {
		originalBySchema[attr.Schema] = attr.Values
	}

	seen := make(map[string]bool, len(updated))
	for _, attr := range updated {
		seen[attr.Schema] = true
		prev, had := originalBySchema[attr.Schema]
		if had && equal(attr.Values, prev) {
			continue
		}
		patch.set(attrPrefix+attr.Schema, Change{Op: OpSet, Values: attr.Values, Prior: prev})
	}

	if !d.strict {
		return
	}
	for _, attr := range original {
		if !seen[attr.Schema] {
			patch.set(attrPrefix+attr.Schema, Change{Op: OpClear, Prior: attr.Values})
		}
	}
}

// conds compares the per-type dynamic membership conditions of a group.
func (d *differ) conds(patch *Patch, updated, original map[string]string) {
	for anyType, cond := range updated {
		if prev, had := original[anyType]; !had || prev != cond {
			patch.set("aDynMembershipConds."+anyType, Change{Op: OpSet, Values: []string{cond}, Prior: prior(original[anyType])})
		}
	}
	if !d.strict {
		return
	}
	for anyType, cond := range original {
		if _, still := updated[anyType]; !still {
			patch.set("aDynMembershipConds."+anyType, Change{Op: OpClear, Prior: []string{cond}})
		}
	}
}

// prior wraps a previous scalar value, omitting empties.
func prior(v string) []string {
	if v == "" {
		return nil
	}
	return []string{v}
}

// missing returns the entries of a not present in b, preserving order.
func missing(a, b []string) []string {
	var out []string
	for _, v := range a {
		found := false
		for _, w := range b {
			if v == w {
				found = true
				break
			}
		}
		if !found {
			out = append(out, v)
		}
	}
	return out
}

// equal reports whether two value slices are identical in content and
// order.
func equal(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// Package identity defines the typed internal representation of the
// entities the reconciliation engine builds: persons, groups, and generic
// objects, all sharing a common core of realm, plain attributes, and
// associations. Snapshots are values built fresh on every reconciliation
// pass; they are never persisted by this package.
package identity

// Kind discriminates the entity variants the engine can reconcile.
type Kind string

const (
	// KindPerson is a user identity.
	KindPerson Kind = "person"

	// KindGroup is a group identity.
	KindGroup Kind = "group"

	// KindObject is a generic (non-user, non-group) identity.
	KindObject Kind = "object"
)

// String returns the string representation of a kind.
func (k Kind) String() string {
	return string(k)
}

// Valid reports whether the kind is one of the supported variants.
func (k Kind) Valid() bool {
	switch k {
	case KindPerson, KindGroup, KindObject:
		return true
	default:
		return false
	}
}

// Snapshot is the sealed interface over the entity variants. The three
// implementations are Person, Group, and ObjectRecord; reconciliation
// logic selects behavior by switching over the variant, never by
// inspecting unexported state.
type Snapshot interface {
	// Kind returns the variant tag.
	Kind() Kind

	// Core returns the shared entity core.
	Core() *Any

	// Clone returns a deep copy, so the engine never aliases caller state.
	Clone() Snapshot

	// sealed keeps the variant set closed.
	sealed()
}

// New returns a fresh, empty snapshot of the given kind, or nil for an
// unrecognized kind.
func New(kind Kind) Snapshot {
	switch kind {
	case KindPerson:
		return &Person{}
	case KindGroup:
		return &Group{ADynMembershipConds: map[string]string{}}
	case KindObject:
		return &ObjectRecord{}
	default:
		return nil
	}
}

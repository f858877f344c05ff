package differ

import (
	"testing"

	"github.com/agentstation/dirsync/pkg/identity"
)

// TestDiff_Scalar verifies scalar set and strict-mode clear behavior.
func TestDiff_Scalar(t *testing.T) {
	t.Run("set on change", func(t *testing.T) {
		d := New()
		patch := d.Diff(
			&identity.Person{Username: "jdoe2"},
			&identity.Person{Username: "jdoe"},
		)
		change, ok := patch.Fields["username"]
		if !ok || change.Op != OpSet || change.Values[0] != "jdoe2" {
			t.Errorf("username change = %+v, %v", change, ok)
		}
		if change.Prior[0] != "jdoe" {
			t.Errorf("Prior = %v, want [jdoe]", change.Prior)
		}
	})

	t.Run("no change on equal", func(t *testing.T) {
		d := New()
		patch := d.Diff(
			&identity.Person{Username: "jdoe"},
			&identity.Person{Username: "jdoe"},
		)
		if !patch.Empty() {
			t.Errorf("equal snapshots produced changes: %v", patch.FieldNames())
		}
	})

	t.Run("lenient ignores empty", func(t *testing.T) {
		d := New()
		patch := d.Diff(
			&identity.Person{},
			&identity.Person{Username: "jdoe"},
		)
		if _, ok := patch.Fields["username"]; ok {
			t.Error("lenient diff cleared an unset field")
		}
	})

	t.Run("strict clears empty", func(t *testing.T) {
		d := New(WithStrict(true))
		patch := d.Diff(
			&identity.Person{},
			&identity.Person{Username: "jdoe"},
		)
		change, ok := patch.Fields["username"]
		if !ok || change.Op != OpClear || change.Prior[0] != "jdoe" {
			t.Errorf("strict clear = %+v, %v", change, ok)
		}
	})
}

// TestDiff_Boolean verifies flag changes carry both values.
func TestDiff_Boolean(t *testing.T) {
	d := New()
	patch := d.Diff(
		&identity.Person{MustChangePassword: true},
		&identity.Person{},
	)
	change, ok := patch.Fields["mustChangePassword"]
	if !ok || change.Values[0] != "true" || change.Prior[0] != "false" {
		t.Errorf("mustChangePassword change = %+v, %v", change, ok)
	}
}

// TestDiff_Collections verifies add, remove, and full-replace descriptors.
func TestDiff_Collections(t *testing.T) {
	t.Run("additions", func(t *testing.T) {
		d := New()
		patch := d.Diff(
			&identity.Person{Roles: []string{"user", "admin"}},
			&identity.Person{Roles: []string{"user"}},
		)
		change := patch.Fields["roles"]
		if change.Op != OpAdd || len(change.Values) != 1 || change.Values[0] != "admin" {
			t.Errorf("roles change = %+v", change)
		}
	})

	t.Run("strict removals", func(t *testing.T) {
		d := New(WithStrict(true))
		patch := d.Diff(
			&identity.Person{Roles: []string{"user"}},
			&identity.Person{Roles: []string{"user", "admin"}},
		)
		change := patch.Fields["roles"]
		if change.Op != OpRemove || change.Values[0] != "admin" {
			t.Errorf("roles change = %+v", change)
		}
	})

	t.Run("lenient ignores removals", func(t *testing.T) {
		d := New()
		patch := d.Diff(
			&identity.Person{Roles: []string{"user"}},
			&identity.Person{Roles: []string{"user", "admin"}},
		)
		if _, ok := patch.Fields["roles"]; ok {
			t.Error("lenient diff recorded a removal")
		}
	})

	t.Run("mixed becomes replace", func(t *testing.T) {
		d := New(WithStrict(true))
		patch := d.Diff(
			&identity.Person{Roles: []string{"user", "reviewer"}},
			&identity.Person{Roles: []string{"user", "admin"}},
		)
		change := patch.Fields["roles"]
		if change.Op != OpSet || len(change.Values) != 2 {
			t.Errorf("roles change = %+v, want full replacement", change)
		}
	})
}

// TestDiff_Attrs verifies plain attribute diffing by schema.
func TestDiff_Attrs(t *testing.T) {
	updated := &identity.Person{}
	updated.SetAttr("email", "new@example.com")
	updated.SetAttr("locale", "en")

	original := &identity.Person{}
	original.SetAttr("email", "old@example.com")
	original.SetAttr("phone", "555-0100")

	d := New(WithStrict(true))
	patch := d.Diff(updated, original)

	if change := patch.Fields["attrs.email"]; change.Op != OpSet || change.Values[0] != "new@example.com" {
		t.Errorf("attrs.email = %+v", change)
	}
	if change := patch.Fields["attrs.locale"]; change.Op != OpSet {
		t.Errorf("attrs.locale = %+v", change)
	}
	if change := patch.Fields["attrs.phone"]; change.Op != OpClear || change.Prior[0] != "555-0100" {
		t.Errorf("attrs.phone = %+v", change)
	}
}

// TestDiff_Group verifies group fields including per-type conditions.
func TestDiff_Group(t *testing.T) {
	d := New(WithStrict(true))
	patch := d.Diff(
		&identity.Group{
			Name:                "devs",
			ADynMembershipConds: map[string]string{"printer": "model=X"},
		},
		&identity.Group{
			Name:                "devs",
			UserOwner:           "jdoe",
			ADynMembershipConds: map[string]string{"printer": "model=Y", "scanner": "dpi>300"},
		},
	)

	if change := patch.Fields["userOwner"]; change.Op != OpClear {
		t.Errorf("userOwner = %+v", change)
	}
	if change := patch.Fields["aDynMembershipConds.printer"]; change.Op != OpSet || change.Values[0] != "model=X" {
		t.Errorf("conds.printer = %+v", change)
	}
	if change := patch.Fields["aDynMembershipConds.scanner"]; change.Op != OpClear {
		t.Errorf("conds.scanner = %+v", change)
	}
}

// TestDiff_KindMismatch verifies cross-kind diffs return nil.
func TestDiff_KindMismatch(t *testing.T) {
	d := New()
	if patch := d.Diff(&identity.Person{}, &identity.Group{}); patch != nil {
		t.Errorf("cross-kind diff = %+v, want nil", patch)
	}
	if patch := d.Diff(nil, &identity.Group{}); patch != nil {
		t.Errorf("nil updated diff = %+v, want nil", patch)
	}
}

// TestClean verifies the cleanup pass drops value-less changes and
// plain-attribute clears, while non-attribute clears survive.
func TestClean(t *testing.T) {
	p := &Patch{Kind: identity.KindPerson, Key: "k1"}
	p.set("keepSet", Change{Op: OpSet, Values: []string{"v"}})
	p.set("dropSet", Change{Op: OpSet, Values: []string{""}})
	p.set("keepClear", Change{Op: OpClear, Prior: []string{"old"}})
	p.set("dropClear", Change{Op: OpClear})
	p.set("dropAdd", Change{Op: OpAdd})
	p.set("attrs.email", Change{Op: OpClear, Prior: []string{"old@example.com"}})
	p.set("attrs.locale", Change{Op: OpSet, Values: []string{"en"}})

	Clean(p)

	want := []string{"attrs.locale", "keepClear", "keepSet"}
	got := p.FieldNames()
	if len(got) != len(want) {
		t.Fatalf("FieldNames() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("FieldNames()[%d] = %q, want %q", i, got[i], want[i])
		}
	}

	// nil patch must not panic
	Clean(nil)
}

// TestPatch_Empty verifies empty reporting on nil and zero patches.
func TestPatch_Empty(t *testing.T) {
	var p *Patch
	if !p.Empty() {
		t.Error("nil patch not empty")
	}
	if !(&Patch{}).Empty() {
		t.Error("zero patch not empty")
	}
	full := &Patch{}
	full.set("x", Change{Op: OpSet, Values: []string{"v"}})
	if full.Empty() {
		t.Error("populated patch reported empty")
	}
}

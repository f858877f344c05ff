package policy

import (
	"testing"
)

// fakeRealm and fakeLookup are in-package doubles for resolver tests.
type fakeRealm struct {
	path   string
	policy *Policy
}

func (r *fakeRealm) PasswordPolicy() *Policy { return r.policy }

type fakeResource struct {
	policy *Policy
}

func (r *fakeResource) PasswordPolicy() *Policy { return r.policy }

type fakeLookup struct {
	realms    map[string]*fakeRealm
	ancestry  map[string][]string
	resources map[string]*fakeResource
}

func (l *fakeLookup) RealmByPath(path string) (Realm, bool) {
	r, ok := l.realms[path]
	if !ok {
		return nil, false
	}
	return r, true
}

func (l *fakeLookup) Ancestors(realm Realm) []Realm {
	r := realm.(*fakeRealm)
	var out []Realm
	for _, path := range l.ancestry[r.path] {
		if ancestor, ok := l.realms[path]; ok {
			out = append(out, ancestor)
		}
	}
	return out
}

func (l *fakeLookup) ResourceByName(name string) (Resource, bool) {
	r, ok := l.resources[name]
	if !ok {
		return nil, false
	}
	return r, true
}

func named(name string, minLength int) *Policy {
	return &Policy{Name: name, Rules: []Rule{{MinLength: minLength}}}
}

// TestResolve_DiscoveryOrder verifies realm ancestry comes first, leaf to
// root, followed by resources in association order.
func TestResolve_DiscoveryOrder(t *testing.T) {
	lookup := &fakeLookup{
		realms: map[string]*fakeRealm{
			"/corp/emea": {path: "/corp/emea", policy: named("emea", 10)},
			"/corp":      {path: "/corp", policy: named("corp", 11)},
			"/":          {path: "/", policy: named("root", 12)},
		},
		ancestry: map[string][]string{
			"/corp/emea": {"/corp/emea", "/corp", "/"},
		},
		resources: map[string]*fakeResource{
			"ldap": {policy: named("ldap", 13)},
			"crm":  {policy: named("crm", 14)},
		},
	}

	rules := Resolve(lookup, "/corp/emea", []string{"ldap", "crm"})
	want := []int{10, 11, 12, 13, 14}
	if len(rules) != len(want) {
		t.Fatalf("Resolve() returned %d rules, want %d", len(rules), len(want))
	}
	for i, minLen := range want {
		if rules[i].MinLength != minLen {
			t.Errorf("rules[%d].MinLength = %d, want %d", i, rules[i].MinLength, minLen)
		}
	}
}

// TestResolve_DuplicatesKept verifies a policy reachable through two
// sources contributes twice.
func TestResolve_DuplicatesKept(t *testing.T) {
	shared := named("shared", 9)
	lookup := &fakeLookup{
		realms: map[string]*fakeRealm{
			"/": {path: "/", policy: shared},
		},
		ancestry:  map[string][]string{"/": {"/"}},
		resources: map[string]*fakeResource{"ldap": {policy: shared}},
	}

	rules := Resolve(lookup, "/", []string{"ldap"})
	if len(rules) != 2 {
		t.Errorf("Resolve() returned %d rules, want the shared policy twice", len(rules))
	}
}

// TestResolve_UnknownSources verifies unknown realms and resources
// contribute nothing.
func TestResolve_UnknownSources(t *testing.T) {
	lookup := &fakeLookup{
		realms:    map[string]*fakeRealm{},
		ancestry:  map[string][]string{},
		resources: map[string]*fakeResource{},
	}

	rules := Resolve(lookup, "/nowhere", []string{"ghost"})
	if !rules.Empty() {
		t.Errorf("Resolve() = %v, want empty rule set", rules)
	}
}

// TestResolve_PolicylessSources verifies sources without a policy are
// skipped, not treated as errors.
func TestResolve_PolicylessSources(t *testing.T) {
	lookup := &fakeLookup{
		realms: map[string]*fakeRealm{
			"/corp": {path: "/corp"},
			"/":     {path: "/", policy: named("root", 8)},
		},
		ancestry:  map[string][]string{"/corp": {"/corp", "/"}},
		resources: map[string]*fakeResource{"ldap": {}},
	}

	rules := Resolve(lookup, "/corp", []string{"ldap"})
	if len(rules) != 1 || rules[0].MinLength != 8 {
		t.Errorf("Resolve() = %v, want only the root realm's rule", rules)
	}
}

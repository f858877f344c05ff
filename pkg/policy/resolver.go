package policy

// Realm is the resolver's view of a realm node: the password policy
// assigned to it, if any.
type Realm interface {
	PasswordPolicy() *Policy
}

// Resource is the resolver's view of an external resource: the password
// policy assigned to it, if any.
type Resource interface {
	PasswordPolicy() *Policy
}

// Lookup is the read-only collaborator surface the resolver walks. A
// store's read transaction satisfies it.
type Lookup interface {
	// RealmByPath returns the realm at the given full path.
	RealmByPath(path string) (Realm, bool)

	// Ancestors returns the realm itself followed by each ancestor up to
	// the root.
	Ancestors(realm Realm) []Realm

	// ResourceByName returns the external resource with the given name.
	ResourceByName(name string) (Resource, bool)
}

// Resolve collects the password rules applicable to an entity in the
// realm at realmPath that is associated with the named resources.
// Contributions appear in discovery order: realm ancestry first, then
// resources in the given order. An unknown realm path contributes no
// realm-derived rules; unknown resource names are skipped likewise.
func Resolve(lookup Lookup, realmPath string, resourceNames []string) RuleSet {
	var rules RuleSet

	if realm, ok := lookup.RealmByPath(realmPath); ok {
		for _, ancestor := range lookup.Ancestors(realm) {
			if p := ancestor.PasswordPolicy(); p != nil {
				rules = append(rules, p.Rules...)
			}
		}
	}

	for _, name := range resourceNames {
		if res, ok := lookup.ResourceByName(name); ok {
			if p := res.PasswordPolicy(); p != nil {
				rules = append(rules, p.Rules...)
			}
		}
	}

	return rules
}

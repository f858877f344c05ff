package identity

// Person is a user identity, carrying a credential and the security
// state that only the internal model manages.
type Person struct {
	Any `yaml:",inline"`

	Username           string   `yaml:"username,omitempty" json:"username,omitempty"`
	Password           string   `yaml:"password,omitempty" json:"password,omitempty"`
	SecurityQuestion   string   `yaml:"securityQuestion,omitempty" json:"securityQuestion,omitempty"`
	MustChangePassword bool     `yaml:"mustChangePassword,omitempty" json:"mustChangePassword,omitempty"`
	Roles              []string `yaml:"roles,omitempty" json:"roles,omitempty"`
	Memberships        []string `yaml:"memberships,omitempty" json:"memberships,omitempty"`
}

// Kind returns KindPerson.
func (p *Person) Kind() Kind { return KindPerson }

// Core returns the shared entity core.
func (p *Person) Core() *Any { return &p.Any }

// Clone returns a deep copy of the person.
func (p *Person) Clone() Snapshot {
	c := &Person{
		Any:                p.Any.clone(),
		Username:           p.Username,
		Password:           p.Password,
		SecurityQuestion:   p.SecurityQuestion,
		MustChangePassword: p.MustChangePassword,
		Roles:              append([]string(nil), p.Roles...),
		Memberships:        append([]string(nil), p.Memberships...),
	}
	return c
}

func (p *Person) sealed() {}

// Group is a group identity. Ownership and dynamic membership are owned
// by the internal model, never by external reconciliation.
type Group struct {
	Any `yaml:",inline"`

	Name                string            `yaml:"name,omitempty" json:"name,omitempty"`
	UserOwner           string            `yaml:"userOwner,omitempty" json:"userOwner,omitempty"`
	GroupOwner          string            `yaml:"groupOwner,omitempty" json:"groupOwner,omitempty"`
	UDynMembershipCond  string            `yaml:"uDynMembershipCond,omitempty" json:"uDynMembershipCond,omitempty"`
	ADynMembershipConds map[string]string `yaml:"aDynMembershipConds,omitempty" json:"aDynMembershipConds,omitempty"`
	TypeExtensions      []string          `yaml:"typeExtensions,omitempty" json:"typeExtensions,omitempty"`
}

// Kind returns KindGroup.
func (g *Group) Kind() Kind { return KindGroup }

// Core returns the shared entity core.
func (g *Group) Core() *Any { return &g.Any }

// Clone returns a deep copy of the group.
func (g *Group) Clone() Snapshot {
	c := &Group{
		Any:                g.Any.clone(),
		Name:               g.Name,
		UserOwner:          g.UserOwner,
		GroupOwner:         g.GroupOwner,
		UDynMembershipCond: g.UDynMembershipCond,
		TypeExtensions:     append([]string(nil), g.TypeExtensions...),
	}
	if g.ADynMembershipConds != nil {
		c.ADynMembershipConds = make(map[string]string, len(g.ADynMembershipConds))
		for k, v := range g.ADynMembershipConds {
			c.ADynMembershipConds[k] = v
		}
	}
	return c
}

func (g *Group) sealed() {}

// ObjectRecord is a generic identity: anything the directory holds that
// is neither a person nor a group (printers, service accounts, ...).
type ObjectRecord struct {
	Any `yaml:",inline"`

	Name        string   `yaml:"name,omitempty" json:"name,omitempty"`
	Memberships []string `yaml:"memberships,omitempty" json:"memberships,omitempty"`
}

// Kind returns KindObject.
func (o *ObjectRecord) Kind() Kind { return KindObject }

// Core returns the shared entity core.
func (o *ObjectRecord) Core() *Any { return &o.Any }

// Clone returns a deep copy of the record.
func (o *ObjectRecord) Clone() Snapshot {
	return &ObjectRecord{
		Any:         o.Any.clone(),
		Name:        o.Name,
		Memberships: append([]string(nil), o.Memberships...),
	}
}

func (o *ObjectRecord) sealed() {}

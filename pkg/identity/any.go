package identity

// Attr is one ordered, multi-valued plain attribute of an entity.
type Attr struct {
	Schema string   `yaml:"schema" json:"schema"`
	Values []string `yaml:"values" json:"values"`
}

// Clone returns a deep copy of the attribute.
func (a Attr) Clone() Attr {
	return Attr{Schema: a.Schema, Values: append([]string(nil), a.Values...)}
}

// Any is the core shared by every entity variant: key, type, realm,
// plain attributes, and associations to resources and auxiliary classes.
type Any struct {
	Key        string   `yaml:"key,omitempty" json:"key,omitempty"`
	Type       string   `yaml:"type,omitempty" json:"type,omitempty"`
	Realm      string   `yaml:"realm,omitempty" json:"realm,omitempty"`
	Attrs      []Attr   `yaml:"attrs,omitempty" json:"attrs,omitempty"`
	AuxClasses []string `yaml:"auxClasses,omitempty" json:"auxClasses,omitempty"`
	Resources  []string `yaml:"resources,omitempty" json:"resources,omitempty"`
}

// Attr returns the plain attribute with the given schema name.
func (a *Any) Attr(schema string) (Attr, bool) {
	for _, attr := range a.Attrs {
		if attr.Schema == schema {
			return attr, true
		}
	}
	return Attr{}, false
}

// SetAttr sets the plain attribute with the given schema name, replacing
// any previous values while keeping the attribute's position; a new
// schema is appended.
func (a *Any) SetAttr(schema string, values ...string) {
	for i := range a.Attrs {
		if a.Attrs[i].Schema == schema {
			a.Attrs[i].Values = values
			return
		}
	}
	a.Attrs = append(a.Attrs, Attr{Schema: schema, Values: values})
}

// AddResource associates the entity with an external resource, ignoring
// duplicates.
func (a *Any) AddResource(name string) {
	for _, r := range a.Resources {
		if r == name {
			return
		}
	}
	a.Resources = append(a.Resources, name)
}

// AddAuxClass associates the entity with an auxiliary class, ignoring
// duplicates.
func (a *Any) AddAuxClass(name string) {
	for _, c := range a.AuxClasses {
		if c == name {
			return
		}
	}
	a.AuxClasses = append(a.AuxClasses, name)
}

// clone returns a deep copy of the core.
func (a *Any) clone() Any {
	c := Any{
		Key:        a.Key,
		Type:       a.Type,
		Realm:      a.Realm,
		AuxClasses: append([]string(nil), a.AuxClasses...),
		Resources:  append([]string(nil), a.Resources...),
	}
	for _, attr := range a.Attrs {
		c.Attrs = append(c.Attrs, attr.Clone())
	}
	return c
}

// Package scenario loads reconciliation scenarios for the dirsync CLI:
// one connector record plus the configuration (realms, resources,
// template, stored credentials) and, optionally, the original snapshot
// to patch against.
package scenario

import (
	"os"

	"github.com/goccy/go-yaml"

	"github.com/agentstation/dirsync/pkg/connector"
	"github.com/agentstation/dirsync/pkg/errors"
	"github.com/agentstation/dirsync/pkg/identity"
	"github.com/agentstation/dirsync/pkg/store"
	"github.com/agentstation/dirsync/pkg/template"
)

// RecordAttr is one attribute of the scenario's connector record.
// Secret values are guarded in memory once loaded; binary values are
// given base64-encoded.
type RecordAttr struct {
	Name   string   `yaml:"name"`
	Values []string `yaml:"values"`
	Secret bool     `yaml:"secret,omitempty"`
}

// Original carries the existing entity snapshot for the patch path; the
// field matching the scenario kind is used.
type Original struct {
	Person *identity.Person       `yaml:"person,omitempty"`
	Group  *identity.Group        `yaml:"group,omitempty"`
	Object *identity.ObjectRecord `yaml:"object,omitempty"`
}

// Scenario is one CLI reconciliation run.
type Scenario struct {
	Kind             identity.Kind               `yaml:"kind"`
	DestinationRealm string                      `yaml:"destinationRealm"`
	Resource         string                      `yaml:"resource"`
	Key              string                      `yaml:"key,omitempty"`
	Realms           []*store.Realm              `yaml:"realms,omitempty"`
	Resources        []*store.Resource           `yaml:"resources,omitempty"`
	Template         *template.Template          `yaml:"template,omitempty"`
	Record           []RecordAttr                `yaml:"record"`
	Original         *Original                   `yaml:"original,omitempty"`
	Credentials      map[string]store.Credential `yaml:"credentials,omitempty"`
}

// Load reads and parses a scenario file.
func Load(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.WrapResource("read", "scenario", path, err)
	}

	var s Scenario
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, errors.WrapParse("yaml", path, err)
	}

	if !s.Kind.Valid() {
		return nil, errors.NewValidationError("kind", s.Kind, "must be person, group, or object")
	}
	if s.Resource == "" {
		return nil, errors.NewValidationError("resource", s.Resource, "target resource is required")
	}

	return &s, nil
}

// Store builds the in-memory configuration store the scenario describes.
func (s *Scenario) Store() *store.MemStore {
	ms := store.NewMemStore()
	for _, r := range s.Realms {
		ms.AddRealm(r)
	}
	for _, r := range s.Resources {
		ms.AddResource(r)
	}
	for key, cred := range s.Credentials {
		ms.SetCredential(key, cred)
	}
	return ms
}

// TargetResource returns the configuration of the scenario's target
// resource.
func (s *Scenario) TargetResource() (*store.Resource, bool) {
	for _, r := range s.Resources {
		if r.Name == s.Resource {
			return r, true
		}
	}
	return nil, false
}

// ConnectorRecord builds the connector record, guarding secret values.
func (s *Scenario) ConnectorRecord() *connector.Record {
	attrs := make([]connector.Attribute, 0, len(s.Record))
	for _, ra := range s.Record {
		attr := connector.Attribute{Name: ra.Name}
		for _, v := range ra.Values {
			if ra.Secret {
				attr.Values = append(attr.Values, connector.GuardedStringValue(v))
			} else {
				attr.Values = append(attr.Values, connector.StringValue(v))
			}
		}
		attrs = append(attrs, attr)
	}
	return connector.NewRecord(attrs...)
}

// OriginalSnapshot returns the original snapshot matching the scenario
// kind, or nil when the scenario describes a creation.
func (s *Scenario) OriginalSnapshot() identity.Snapshot {
	if s.Original == nil {
		return nil
	}
	switch s.Kind {
	case identity.KindPerson:
		if s.Original.Person != nil {
			return s.Original.Person
		}
	case identity.KindGroup:
		if s.Original.Group != nil {
			return s.Original.Group
		}
	case identity.KindObject:
		if s.Original.Object != nil {
			return s.Original.Object
		}
	}
	return nil
}

// Package mapping defines the declarative schema mapping binding external
// attribute names to internal entity fields, and the mapper that applies
// it to a connector record to produce an entity snapshot.
package mapping

// Purpose states the reconciliation direction an item applies to.
type Purpose string

const (
	// PurposePull applies inbound only, directory to internal model.
	PurposePull Purpose = "pull"

	// PurposePush applies outbound only.
	PurposePush Purpose = "push"

	// PurposeBoth applies in both directions.
	PurposeBoth Purpose = "both"

	// PurposeNone disables the item.
	PurposeNone Purpose = "none"
)

// Pull reports whether the purpose covers inbound reconciliation.
func (p Purpose) Pull() bool {
	return p == PurposePull || p == PurposeBoth
}

// Well-known internal field names an item may target. Anything else is
// treated as a plain attribute schema.
const (
	FieldUsername           = "username"
	FieldName               = "name"
	FieldPassword           = "password"
	FieldUserOwner          = "userOwner"
	FieldGroupOwner         = "groupOwner"
	FieldMustChangePassword = "mustChangePassword"
)

// Item binds one external attribute to one internal field.
type Item struct {
	// ExtAttr is the attribute name on the external record.
	ExtAttr string `yaml:"extAttr" json:"extAttr"`

	// IntField is the internal destination: a well-known field name or a
	// plain attribute schema.
	IntField string `yaml:"intField" json:"intField"`

	// Purpose restricts the direction the item applies to.
	Purpose Purpose `yaml:"purpose" json:"purpose"`

	// ConnObjectKey marks the item carrying the external object's key.
	ConnObjectKey bool `yaml:"connObjectKey,omitempty" json:"connObjectKey,omitempty"`

	// Password marks the item as carrying the credential; its value is
	// routed through the secret codec before assignment.
	Password bool `yaml:"password,omitempty" json:"password,omitempty"`
}

// Mapping is the ordered schema mapping of one provision. It is owned by
// resource configuration and read-only to the engine.
type Mapping struct {
	Items []Item `yaml:"items" json:"items"`
}

// PullItems returns the items applicable to inbound reconciliation, in
// mapping order.
func (m *Mapping) PullItems() []Item {
	if m == nil {
		return nil
	}
	items := make([]Item, 0, len(m.Items))
	for _, item := range m.Items {
		if item.Purpose.Pull() {
			items = append(items, item)
		}
	}
	return items
}

// ConnObjectKeyItem returns the item flagged as carrying the external
// object key, if any.
func (m *Mapping) ConnObjectKeyItem() (Item, bool) {
	if m == nil {
		return Item{}, false
	}
	for _, item := range m.Items {
		if item.ConnObjectKey {
			return item, true
		}
	}
	return Item{}, false
}

// ManagesMustChangePassword reports whether the mapping explicitly pulls
// the must-change-password flag. When it does not, reconciliation must
// preserve the stored flag instead of resetting it.
func (m *Mapping) ManagesMustChangePassword() bool {
	if m == nil {
		return false
	}
	for _, item := range m.Items {
		if item.Purpose.Pull() && item.IntField == FieldMustChangePassword {
			return true
		}
	}
	return false
}

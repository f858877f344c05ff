package mapping

import (
	"strconv"

	"github.com/agentstation/dirsync/pkg/connector"
	"github.com/agentstation/dirsync/pkg/identity"
)

// ToSnapshot converts a connector record into an entity snapshot of the
// given kind, driven by the mapping's pull items in mapping order. A
// later item targeting the same internal field overwrites the earlier
// assignment. Absent external attributes leave the field unset. The kind
// and destination realm are structural, set from the reconciliation
// context rather than the mapping.
func ToSnapshot(rec *connector.Record, m *Mapping, kind identity.Kind, destRealm string) identity.Snapshot {
	snap := identity.New(kind)
	if snap == nil {
		return nil
	}
	snap.Core().Type = kind.String()
	snap.Core().Realm = destRealm

	for _, item := range m.PullItems() {
		attr, ok := rec.Lookup(item.ExtAttr)
		if !ok {
			continue
		}
		assign(snap, item, attr.Values)
	}

	return snap
}

// assign writes one mapped attribute onto the snapshot. Credential items
// are routed through the secret codec; well-known scalar fields take the
// first value; everything else lands in an ordered plain attribute with
// all values.
func assign(snap identity.Snapshot, item Item, values []connector.Value) {
	if len(values) == 0 {
		return
	}

	if item.Password {
		if p, ok := snap.(*identity.Person); ok {
			p.Password = connector.ExtractSecret(values[0])
		}
		return
	}

	switch item.IntField {
	case FieldUsername:
		if p, ok := snap.(*identity.Person); ok {
			p.Username = first(values)
		}
	case FieldName:
		switch s := snap.(type) {
		case *identity.Group:
			s.Name = first(values)
		case *identity.ObjectRecord:
			s.Name = first(values)
		case *identity.Person:
			// persons are named by username
			s.Username = first(values)
		}
	case FieldPassword:
		if p, ok := snap.(*identity.Person); ok {
			p.Password = connector.ExtractSecret(values[0])
		}
	case FieldUserOwner:
		if g, ok := snap.(*identity.Group); ok {
			g.UserOwner = first(values)
		}
	case FieldGroupOwner:
		if g, ok := snap.(*identity.Group); ok {
			g.GroupOwner = first(values)
		}
	case FieldMustChangePassword:
		if p, ok := snap.(*identity.Person); ok {
			if b, err := strconv.ParseBool(first(values)); err == nil {
				p.MustChangePassword = b
			}
		}
	default:
		rendered := make([]string, 0, len(values))
		for _, v := range values {
			rendered = append(rendered, connector.Text(v))
		}
		snap.Core().SetAttr(item.IntField, rendered...)
	}
}

func first(values []connector.Value) string {
	return connector.Text(values[0])
}

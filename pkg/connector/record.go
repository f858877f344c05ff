package connector

import (
	"golang.org/x/text/cases"
)

// attrFold folds attribute names for case-insensitive comparison.
// Directory servers treat attribute names as caseless identifiers.
var attrFold = cases.Fold()

// Attribute is one named, ordered, multi-valued attribute of a record.
type Attribute struct {
	Name   string
	Values []Value
}

// Record is the attribute set delivered by a connector for one external
// identity. It is immutable once received; the engine only reads it.
type Record struct {
	attrs []Attribute
}

// NewRecord builds a record from the given attributes, preserving order.
func NewRecord(attrs ...Attribute) *Record {
	return &Record{attrs: attrs}
}

// Attributes returns the record's attributes in delivery order.
func (r *Record) Attributes() []Attribute {
	if r == nil {
		return nil
	}
	return r.attrs
}

// Lookup returns the attribute with the given name, matched caselessly.
// The second return is false when the record carries no such attribute.
func (r *Record) Lookup(name string) (Attribute, bool) {
	if r == nil {
		return Attribute{}, false
	}
	folded := attrFold.String(name)
	for _, attr := range r.attrs {
		if attrFold.String(attr.Name) == folded {
			return attr, true
		}
	}
	return Attribute{}, false
}

// RenderedAttribute is an attribute in transport form: guarded values
// revealed, binary values base64-encoded.
type RenderedAttribute struct {
	Name   string   `yaml:"name" json:"name"`
	Values []string `yaml:"values" json:"values"`
}

// Render converts the whole record into transport form, preserving
// attribute order. Nil values are skipped; empty attributes are kept so
// that the rendered record mirrors the record's shape.
func (r *Record) Render() []RenderedAttribute {
	if r == nil {
		return nil
	}
	rendered := make([]RenderedAttribute, 0, len(r.attrs))
	for _, attr := range r.attrs {
		ra := RenderedAttribute{Name: attr.Name}
		for _, v := range attr.Values {
			ra.Values = append(ra.Values, Text(v))
		}
		rendered = append(rendered, ra)
	}
	return rendered
}

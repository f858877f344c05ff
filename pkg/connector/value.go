// Package connector models the data delivered by an external directory
// connector: records of named, ordered, multi-valued attributes, where a
// value may be a plain string, a binary blob, or a guarded (in-memory
// obscured) credential. The package also provides the secret codec used
// to decode guarded values and to render records for transport.
package connector

import (
	"crypto/rand"
	"fmt"
)

// ValueKind discriminates the closed set of attribute value variants.
type ValueKind uint8

const (
	// ValueString is a plain string value.
	ValueString ValueKind = iota

	// ValueBinary is a raw byte value, base64-encoded for transport.
	ValueBinary

	// ValueGuardedString is a credential delivered as an obscured string.
	ValueGuardedString

	// ValueGuardedBinary is a credential delivered as obscured bytes.
	ValueGuardedBinary
)

// Value is one attribute value as delivered by a connector.
// The zero value is an empty plain string.
type Value struct {
	kind    ValueKind
	str     string
	bin     []byte
	guarded *Guarded
}

// StringValue returns a plain string value.
func StringValue(s string) Value {
	return Value{kind: ValueString, str: s}
}

// BinaryValue returns a binary value.
func BinaryValue(b []byte) Value {
	return Value{kind: ValueBinary, bin: b}
}

// GuardedStringValue obscures s in memory and returns it as a guarded value.
func GuardedStringValue(s string) Value {
	return Value{kind: ValueGuardedString, guarded: NewGuarded([]byte(s))}
}

// GuardedBinaryValue obscures b in memory and returns it as a guarded value.
func GuardedBinaryValue(b []byte) Value {
	return Value{kind: ValueGuardedBinary, guarded: NewGuarded(b)}
}

// Kind returns the value's variant.
func (v Value) Kind() ValueKind {
	return v.kind
}

// String implements fmt.Stringer. Guarded variants are redacted so that
// credentials never reach log output by accident.
func (v Value) String() string {
	switch v.kind {
	case ValueString:
		return v.str
	case ValueBinary:
		return fmt.Sprintf("binary[%d]", len(v.bin))
	default:
		return "********"
	}
}

// Guarded holds a byte sequence XOR-obscured with a random one-time pad,
// so that a credential is never resident in memory as plaintext between
// receipt from the connector and the moment it is actually needed.
type Guarded struct {
	pad  []byte
	data []byte
}

// NewGuarded obscures plain and returns the guarded holder.
func NewGuarded(plain []byte) *Guarded {
	pad := make([]byte, len(plain))
	if _, err := rand.Read(pad); err != nil {
		// crypto/rand never fails on supported platforms; an empty pad
		// degrades to an unobscured copy rather than losing the value.
		pad = make([]byte, len(plain))
	}
	data := make([]byte, len(plain))
	for i := range plain {
		data[i] = plain[i] ^ pad[i]
	}
	return &Guarded{pad: pad, data: data}
}

// Reveal reconstructs and returns the plaintext.
func (g *Guarded) Reveal() []byte {
	plain := make([]byte, len(g.data))
	for i := range g.data {
		plain[i] = g.data[i] ^ g.pad[i]
	}
	return plain
}

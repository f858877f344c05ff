package connector

import (
	"encoding/base64"
)

// ExtractSecret decodes a credential value received from a connector into
// a plain comparable string. Guarded variants are revealed, plain strings
// pass through, and anything else falls back to the value's generic string
// rendering. The result must never be logged.
func ExtractSecret(v Value) string {
	switch v.kind {
	case ValueGuardedString, ValueGuardedBinary:
		return string(v.guarded.Reveal())
	case ValueString:
		return v.str
	case ValueBinary:
		return string(v.bin)
	default:
		return v.String()
	}
}

// Text converts a value into its transport form: guarded values are
// revealed, binary values are base64-encoded, strings pass through.
func Text(v Value) string {
	switch v.kind {
	case ValueGuardedString, ValueGuardedBinary:
		return string(v.guarded.Reveal())
	case ValueBinary:
		return base64.StdEncoding.EncodeToString(v.bin)
	default:
		return v.str
	}
}

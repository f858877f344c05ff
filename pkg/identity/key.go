package identity

import (
	"github.com/google/uuid"
)

// NewKey returns a fresh entity key. Keys are opaque to the engine;
// UUIDs keep them unique across stores without coordination.
func NewKey() string {
	return uuid.NewString()
}

// Package secrets implements credential hashing and verification for the
// stored-credential comparison the patch path performs: an incoming
// credential that verifies against the stored hash is an echo, not a
// change.
package secrets

import (
	"crypto/sha256"
	"crypto/sha512"
	"crypto/subtle"
	"encoding/hex"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/agentstation/dirsync/pkg/errors"
)

// Algorithm identifies how a stored credential was hashed.
type Algorithm string

const (
	// AlgorithmPlain stores the credential unhashed (legacy directories).
	AlgorithmPlain Algorithm = "plain"

	// AlgorithmSHA256 stores a hex-encoded SHA-256 digest.
	AlgorithmSHA256 Algorithm = "sha256"

	// AlgorithmSHA512 stores a hex-encoded SHA-512 digest.
	AlgorithmSHA512 Algorithm = "sha512"

	// AlgorithmBCrypt stores a bcrypt hash.
	AlgorithmBCrypt Algorithm = "bcrypt"
)

// Hash encodes plain with the given algorithm, for fixtures and stores
// that need to persist a comparable credential.
func Hash(plain string, alg Algorithm) (string, error) {
	switch alg {
	case AlgorithmPlain:
		return plain, nil
	case AlgorithmSHA256:
		sum := sha256.Sum256([]byte(plain))
		return hex.EncodeToString(sum[:]), nil
	case AlgorithmSHA512:
		sum := sha512.Sum512([]byte(plain))
		return hex.EncodeToString(sum[:]), nil
	case AlgorithmBCrypt:
		hashed, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
		if err != nil {
			return "", errors.Wrap(err, "hashing credential")
		}
		return string(hashed), nil
	default:
		return "", errors.NewValidationError("algorithm", alg, "unknown hashing algorithm")
	}
}

// Verify reports whether plain, hashed with the stored algorithm, equals
// the stored credential. An unknown algorithm verifies false rather than
// erroring: the caller treats a non-match as a genuine change.
func Verify(plain string, alg Algorithm, stored string) bool {
	switch alg {
	case AlgorithmPlain:
		return subtle.ConstantTimeCompare([]byte(plain), []byte(stored)) == 1
	case AlgorithmSHA256:
		sum := sha256.Sum256([]byte(plain))
		return strings.EqualFold(hex.EncodeToString(sum[:]), stored)
	case AlgorithmSHA512:
		sum := sha512.Sum512([]byte(plain))
		return strings.EqualFold(hex.EncodeToString(sum[:]), stored)
	case AlgorithmBCrypt:
		return bcrypt.CompareHashAndPassword([]byte(stored), []byte(plain)) == nil
	default:
		return false
	}
}

package policy

import (
	"crypto/rand"
	"math/big"
	"strings"

	"github.com/agentstation/dirsync/pkg/errors"
)

const (
	lowercaseChars = "abcdefghijklmnopqrstuvwxyz"
	uppercaseChars = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	digitChars     = "0123456789"
	specialDefault = "!@#$%^&*()-_=+"

	// FallbackLength is the length of the random secret generated when a
	// rule set cannot be satisfied.
	FallbackLength = 16

	// defaultLength is the target length when no rule constrains it.
	defaultLength = 16

	// generation is retried this many times before the rule set is
	// declared unsatisfiable (prohibited-word collisions).
	maxAttempts = 8
)

// Generator synthesizes secrets honoring every rule in a rule set.
type Generator struct{}

// NewGenerator creates a new Generator.
func NewGenerator() *Generator {
	return &Generator{}
}

// requirements is the merged view of a rule set: the strictest value of
// each constraint across all rules.
type requirements struct {
	minLength  int
	maxLength  int
	minDigits  int
	minUpper   int
	minLower   int
	minSpecial int
	specials   string
	prohibited []string
}

// merge folds the rule set into a single requirements value, validating
// each rule on the way.
func merge(rules RuleSet) (requirements, error) {
	req := requirements{specials: specialDefault}

	for _, r := range rules {
		if r.MinLength < 0 || r.MaxLength < 0 ||
			r.MinDigits < 0 || r.MinUppercase < 0 || r.MinLowercase < 0 || r.MinSpecial < 0 {
			return req, errors.NewRuleSetError("", "negative constraint")
		}
		if r.MinLength > req.minLength {
			req.minLength = r.MinLength
		}
		if r.MaxLength > 0 && (req.maxLength == 0 || r.MaxLength < req.maxLength) {
			req.maxLength = r.MaxLength
		}
		if r.MinDigits > req.minDigits {
			req.minDigits = r.MinDigits
		}
		if r.MinUppercase > req.minUpper {
			req.minUpper = r.MinUppercase
		}
		if r.MinLowercase > req.minLower {
			req.minLower = r.MinLowercase
		}
		if r.MinSpecial > req.minSpecial {
			req.minSpecial = r.MinSpecial
		}
		if r.SpecialChars != "" {
			req.specials = r.SpecialChars
		}
		req.prohibited = append(req.prohibited, r.ProhibitedWords...)
	}

	required := req.minDigits + req.minUpper + req.minLower + req.minSpecial
	if req.maxLength > 0 && req.minLength > req.maxLength {
		return req, errors.NewRuleSetError("", "minimum length exceeds maximum length")
	}
	if req.maxLength > 0 && required > req.maxLength {
		return req, errors.NewRuleSetError("", "required character classes exceed maximum length")
	}

	return req, nil
}

// length picks the secret length satisfying the merged constraints.
func (req requirements) length() int {
	n := defaultLength
	if req.minLength > n {
		n = req.minLength
	}
	if required := req.minDigits + req.minUpper + req.minLower + req.minSpecial; required > n {
		n = required
	}
	if req.maxLength > 0 && n > req.maxLength {
		n = req.maxLength
	}
	return n
}

// Generate synthesizes a secret honoring every rule in the set. It
// returns ErrInvalidRuleSet (wrapped) when the rule set is malformed or
// unsatisfiable; callers fall back to Random.
func (g *Generator) Generate(rules RuleSet) (string, error) {
	req, err := merge(rules)
	if err != nil {
		return "", err
	}

	for attempt := 0; attempt < maxAttempts; attempt++ {
		secret, err := req.build()
		if err != nil {
			return "", err
		}
		if !containsAny(secret, req.prohibited) {
			return secret, nil
		}
	}

	return "", errors.NewRuleSetError("", "prohibited words make the rule set unsatisfiable")
}

// build assembles one candidate secret: the required count from each
// character class, the rest from letters and digits, shuffled.
func (req requirements) build() (string, error) {
	n := req.length()
	chars := make([]byte, 0, n)

	var err error
	if chars, err = appendRandom(chars, digitChars, req.minDigits); err != nil {
		return "", err
	}
	if chars, err = appendRandom(chars, uppercaseChars, req.minUpper); err != nil {
		return "", err
	}
	if chars, err = appendRandom(chars, lowercaseChars, req.minLower); err != nil {
		return "", err
	}
	if chars, err = appendRandom(chars, req.specials, req.minSpecial); err != nil {
		return "", err
	}
	if chars, err = appendRandom(chars, lowercaseChars+uppercaseChars+digitChars, n-len(chars)); err != nil {
		return "", err
	}

	if err := shuffle(chars); err != nil {
		return "", err
	}
	return string(chars), nil
}

// appendRandom appends count random characters drawn from alphabet.
func appendRandom(dst []byte, alphabet string, count int) ([]byte, error) {
	if count <= 0 {
		return dst, nil
	}
	if alphabet == "" {
		return nil, errors.NewRuleSetError("", "empty character alphabet")
	}
	max := big.NewInt(int64(len(alphabet)))
	for i := 0; i < count; i++ {
		idx, err := rand.Int(rand.Reader, max)
		if err != nil {
			return nil, errors.Wrap(err, "reading randomness")
		}
		dst = append(dst, alphabet[idx.Int64()])
	}
	return dst, nil
}

// shuffle permutes chars in place with a Fisher-Yates walk over
// crypto/rand.
func shuffle(chars []byte) error {
	for i := len(chars) - 1; i > 0; i-- {
		j, err := rand.Int(rand.Reader, big.NewInt(int64(i+1)))
		if err != nil {
			return errors.Wrap(err, "reading randomness")
		}
		chars[i], chars[j.Int64()] = chars[j.Int64()], chars[i]
	}
	return nil
}

func containsAny(s string, words []string) bool {
	for _, w := range words {
		if w != "" && strings.Contains(strings.ToLower(s), strings.ToLower(w)) {
			return true
		}
	}
	return false
}

// Random returns a cryptographically random alphanumeric secret of the
// given length. It is the guaranteed fallback when compliant generation
// fails; it never errors, degrading to a fixed-alphabet draw.
func Random(n int) string {
	const alphabet = lowercaseChars + uppercaseChars + digitChars
	chars := make([]byte, n)
	max := big.NewInt(int64(len(alphabet)))
	for i := range chars {
		idx, err := rand.Int(rand.Reader, max)
		if err != nil {
			// crypto/rand never fails on supported platforms
			chars[i] = alphabet[0]
			continue
		}
		chars[i] = alphabet[idx.Int64()]
	}
	return string(chars)
}

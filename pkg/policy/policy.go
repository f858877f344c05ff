// Package policy implements hierarchical password policy resolution and
// policy-compliant secret generation. Rules are collected from every
// realm ancestor and every associated resource that carries a policy;
// contributions are kept in discovery order and deliberately not
// deduplicated, so a policy reachable through two sources is enforced
// twice rather than silently collapsed.
package policy

// Rule is one password-construction rule configuration.
type Rule struct {
	// MinLength is the minimum secret length; zero means unconstrained.
	MinLength int `yaml:"minLength,omitempty" json:"minLength,omitempty"`

	// MaxLength is the maximum secret length; zero means unconstrained.
	MaxLength int `yaml:"maxLength,omitempty" json:"maxLength,omitempty"`

	// MinDigits is the minimum number of digit characters.
	MinDigits int `yaml:"minDigits,omitempty" json:"minDigits,omitempty"`

	// MinUppercase is the minimum number of uppercase letters.
	MinUppercase int `yaml:"minUppercase,omitempty" json:"minUppercase,omitempty"`

	// MinLowercase is the minimum number of lowercase letters.
	MinLowercase int `yaml:"minLowercase,omitempty" json:"minLowercase,omitempty"`

	// MinSpecial is the minimum number of special characters.
	MinSpecial int `yaml:"minSpecial,omitempty" json:"minSpecial,omitempty"`

	// SpecialChars is the special character alphabet; empty falls back to
	// a standard set when MinSpecial is positive.
	SpecialChars string `yaml:"specialChars,omitempty" json:"specialChars,omitempty"`

	// ProhibitedWords are substrings the secret must not contain.
	ProhibitedWords []string `yaml:"prohibitedWords,omitempty" json:"prohibitedWords,omitempty"`
}

// Policy is a named password policy: an ordered list of rules.
type Policy struct {
	Name  string `yaml:"name,omitempty" json:"name,omitempty"`
	Rules []Rule `yaml:"rules" json:"rules"`
}

// RuleSet is the ordered collection of rules assembled from all
// applicable sources. Order has no effect on evaluation; duplicate
// contributions are kept.
type RuleSet []Rule

// Empty reports whether no source contributed any rule.
func (rs RuleSet) Empty() bool {
	return len(rs) == 0
}

// Package errors provides custom error types for the dirsync system.
// These errors enable better error handling, programmatic error checking,
// and improved debugging throughout the reconciliation core.
package errors

import (
	"errors"
	"fmt"
)

// New returns an error that formats as the given text.
// It's an alias for the standard library errors.New for convenience.
var New = errors.New

// Is reports whether any error in err's chain matches target.
// It's an alias for the standard library errors.Is for convenience.
var Is = errors.Is

// As finds the first error in err's chain that matches target.
// It's an alias for the standard library errors.As for convenience.
var As = errors.As

// Common sentinel errors for the dirsync system
var (
	// ErrNotFound indicates that a requested resource was not found
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates that provided input was invalid
	ErrInvalidInput = errors.New("invalid input")

	// ErrUnsupportedKind indicates an entity kind the engine cannot reconcile
	ErrUnsupportedKind = errors.New("unsupported entity kind")

	// ErrInvalidRuleSet indicates a password rule set that cannot be satisfied
	ErrInvalidRuleSet = errors.New("invalid password rule set")
)

// NotFoundError represents an error when a resource is not found
type NotFoundError struct {
	Resource string
	ID       string
}

// Error implements the error interface
func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s with ID %s not found", e.Resource, e.ID)
}

// Is implements errors.Is support
func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

// NewNotFoundError creates a new NotFoundError
func NewNotFoundError(resource, id string) *NotFoundError {
	return &NotFoundError{Resource: resource, ID: id}
}

// ValidationError represents a validation failure
type ValidationError struct {
	Field   string
	Value   interface{}
	Message string
}

// Error implements the error interface
func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation failed for field %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation failed: %s", e.Message)
}

// Is implements errors.Is support
func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidInput
}

// NewValidationError creates a new ValidationError
func NewValidationError(field string, value interface{}, message string) *ValidationError {
	return &ValidationError{Field: field, Value: value, Message: message}
}

// RuleSetError represents a password rule set that cannot produce a secret,
// either because a rule is malformed or because the combined constraints
// are unsatisfiable.
type RuleSetError struct {
	Rule    string
	Message string
	Err     error
}

// Error implements the error interface
func (e *RuleSetError) Error() string {
	if e.Rule != "" {
		return fmt.Sprintf("password rule %s: %s", e.Rule, e.Message)
	}
	return fmt.Sprintf("password rule set: %s", e.Message)
}

// Unwrap implements errors.Unwrap
func (e *RuleSetError) Unwrap() error {
	return e.Err
}

// Is implements errors.Is support
func (e *RuleSetError) Is(target error) bool {
	return target == ErrInvalidRuleSet
}

// NewRuleSetError creates a new RuleSetError
func NewRuleSetError(rule, message string) *RuleSetError {
	return &RuleSetError{Rule: rule, Message: message}
}

// ConfigError represents a configuration error
type ConfigError struct {
	Component string
	Message   string
	Err       error
}

// Error implements the error interface
func (e *ConfigError) Error() string {
	if e.Component != "" {
		return fmt.Sprintf("configuration error in %s: %s", e.Component, e.Message)
	}
	return fmt.Sprintf("configuration error: %s", e.Message)
}

// Unwrap implements errors.Unwrap
func (e *ConfigError) Unwrap() error {
	return e.Err
}

// NewConfigError creates a new ConfigError
func NewConfigError(component, message string, err error) *ConfigError {
	return &ConfigError{Component: component, Message: message, Err: err}
}

// Wrap wraps an error with additional context.
// Returns nil if err is nil.
func Wrap(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}

// WrapResource wraps an error with resource operation context
func WrapResource(operation, resource, id string, err error) error {
	if err == nil {
		return nil
	}
	if id == "" {
		return fmt.Errorf("%s %s: %w", operation, resource, err)
	}
	return fmt.Errorf("%s %s %s: %w", operation, resource, id, err)
}

// WrapParse wraps an error with parse context
func WrapParse(format, file string, err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("parsing %s file %s: %w", format, file, err)
}

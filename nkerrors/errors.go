package nkerrors

import (
	"errors"
	"fmt"
)

// Sentinel errors for use with errors.Is().
var (
	// ErrPattern indicates a search term could not be compiled.
	ErrPattern = errors.New("invalid pattern")

	// ErrParse indicates a document or config decoding failure.
	ErrParse = errors.New("parse error")

	// ErrConfig indicates an invalid configuration.
	ErrConfig = errors.New("configuration error")

	// ErrHost indicates a failed host round-trip.
	ErrHost = errors.New("host error")

	// ErrNotFound indicates an element id unknown to the host.
	ErrNotFound = errors.New("element not found")
)

// PatternError represents a search or replace term that failed to compile.
type PatternError struct {
	// Pattern is the term as typed by the user
	Pattern string
	// Regex is true when the term was meant as a regular expression
	Regex bool
	// Cause is the underlying compile error
	Cause error
}

// Error returns a human-readable error message.
func (e *PatternError) Error() string {
	msg := "invalid pattern"
	if e.Regex {
		msg = "invalid regular expression"
	}
	msg += fmt.Sprintf(" %q", e.Pattern)
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying cause for error chaining.
func (e *PatternError) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error type.
func (e *PatternError) Is(target error) bool {
	return target == ErrPattern
}

// ParseError represents a failure to decode a design document or config file.
type ParseError struct {
	// Path is the file path or source identifier
	Path string
	// Format is the expected encoding ("yaml" or "json")
	Format string
	// Message describes the parsing failure
	Message string
	// Cause is the underlying error, if any
	Cause error
}

// Error returns a human-readable error message.
func (e *ParseError) Error() string {
	msg := "parse error"
	if e.Path != "" {
		msg += " in " + e.Path
	}
	if e.Format != "" {
		msg += " (" + e.Format + ")"
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying cause for error chaining.
func (e *ParseError) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error type.
func (e *ParseError) Is(target error) bool {
	return target == ErrParse
}

// ConfigError represents an invalid configuration or input.
type ConfigError struct {
	// Option is the name of the problematic configuration option
	Option string
	// Value is the invalid value that was provided (may be nil)
	Value any
	// Message describes the configuration error
	Message string
	// Cause is the underlying error, if any
	Cause error
}

// Error returns a human-readable error message.
func (e *ConfigError) Error() string {
	msg := "configuration error"
	if e.Option != "" {
		msg += " for " + e.Option
	}
	if e.Value != nil {
		msg += fmt.Sprintf(" (value: %v)", e.Value)
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying cause for error chaining.
func (e *ConfigError) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error type.
func (e *ConfigError) Is(target error) bool {
	return target == ErrConfig
}

// HostError represents a failed round-trip to the item source or commit sink.
type HostError struct {
	// Op is the host operation, "fetch" or "rename"
	Op string
	// Category is the element category label involved
	Category string
	// Cause is the underlying error
	Cause error
}

// Error returns a human-readable error message.
func (e *HostError) Error() string {
	msg := "host error"
	if e.Op != "" {
		msg += " during " + e.Op
	}
	if e.Category != "" {
		msg += " of " + e.Category
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying cause for error chaining.
func (e *HostError) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error type.
func (e *HostError) Is(target error) bool {
	return target == ErrHost
}

// NotFoundError reports an element id that the host does not know.
type NotFoundError struct {
	// ID is the missing element id
	ID string
	// Category is the element category label searched
	Category string
}

// Error returns a human-readable error message.
func (e *NotFoundError) Error() string {
	msg := "element not found"
	if e.Category != "" {
		msg += " in " + e.Category
	}
	if e.ID != "" {
		msg += ": " + e.ID
	}
	return msg
}

// Is reports whether target matches this error type.
func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

package casing

import (
	"fmt"
	"strings"

	"github.com/erraggy/namekit/nkerrors"
)

// Format is a naming convention a name can be converted to.
type Format int

const (
	// None leaves names untouched.
	None Format = iota

	// Camel produces camelCase.
	// Example: "user profile" -> "userProfile"
	Camel

	// Snake produces snake_case.
	// Example: "UserProfile" -> "user_profile"
	Snake

	// Kebab produces kebab-case.
	// Example: "UserProfile" -> "user-profile"
	Kebab

	// Title produces Title Case.
	// Example: "userProfile" -> "User Profile"
	Title

	// Pascal produces PascalCase.
	// Example: "user profile" -> "UserProfile"
	Pascal

	// UpperSnake produces UPPER_CASE.
	// Example: "user profile" -> "USER_PROFILE"
	UpperSnake
)

var formatLabels = [...]string{
	None:       "none",
	Camel:      "camelCase",
	Snake:      "snake_case",
	Kebab:      "kebab-case",
	Title:      "Title Case",
	Pascal:     "PascalCase",
	UpperSnake: "UPPER_CASE",
}

// formatAliases maps lowercased labels and short names to formats.
var formatAliases = map[string]Format{
	"none":        None,
	"camelcase":   Camel,
	"camel":       Camel,
	"snake_case":  Snake,
	"snake":       Snake,
	"kebab-case":  Kebab,
	"kebab":       Kebab,
	"title case":  Title,
	"title":       Title,
	"pascalcase":  Pascal,
	"pascal":      Pascal,
	"upper_case":  UpperSnake,
	"upper":       UpperSnake,
	"upper-snake": UpperSnake,
	"upper_snake": UpperSnake,
}

// String returns the canonical label of the format.
func (f Format) String() string {
	if f < None || int(f) >= len(formatLabels) {
		return fmt.Sprintf("Format(%d)", int(f))
	}
	return formatLabels[f]
}

// Valid reports whether f is one of the declared formats.
func (f Format) Valid() bool {
	return f >= None && int(f) < len(formatLabels)
}

// MarshalText implements encoding.TextMarshaler.
func (f Format) MarshalText() ([]byte, error) {
	if !f.Valid() {
		return nil, &nkerrors.ConfigError{Option: "format", Value: int(f), Message: "unknown case format"}
	}
	return []byte(f.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (f *Format) UnmarshalText(text []byte) error {
	parsed, err := ParseFormat(string(text))
	if err != nil {
		return err
	}
	*f = parsed
	return nil
}

// ParseFormat parses a format label ("camelCase", "snake_case", ...) or a short
// alias ("camel", "snake", "kebab", "title", "pascal", "upper").
// Matching is case-insensitive.
func ParseFormat(s string) (Format, error) {
	if f, ok := formatAliases[strings.ToLower(strings.TrimSpace(s))]; ok {
		return f, nil
	}
	return None, &nkerrors.ConfigError{
		Option:  "format",
		Value:   s,
		Message: "unknown case format, valid formats: " + strings.Join(Labels(), ", "),
	}
}

// Formats returns the active formats in display order.
func Formats() []Format {
	return []Format{Camel, Snake, Kebab, Pascal, Title, UpperSnake}
}

// Labels returns the labels of Formats.
func Labels() []string {
	formats := Formats()
	labels := make([]string, 0, len(formats))
	for _, f := range formats {
		labels = append(labels, f.String())
	}
	return labels
}

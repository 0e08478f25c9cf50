// Package element describes the renameable design elements a host supplies
// and routes each of them to the naming target that governs its name.
//
// Import path: github.com/erraggy/namekit/element
package element

import (
	"strings"

	"github.com/erraggy/namekit/nkerrors"
)

// Category is the kind of design element.
type Category int

const (
	// Component covers components and component sets.
	Component Category = iota + 1
	// Style covers local paint, text, effect and grid styles.
	Style
	// Variable covers local variables.
	Variable
)

// String returns the wire label of the category.
func (c Category) String() string {
	switch c {
	case Component:
		return "COMP"
	case Style:
		return "STYLE"
	case Variable:
		return "VAR"
	default:
		return "UNKNOWN"
	}
}

// MarshalText implements encoding.TextMarshaler.
func (c Category) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
// Unknown labels decode to the zero Category instead of failing, so that a
// host can hand over elements this package does not route.
func (c *Category) UnmarshalText(text []byte) error {
	*c, _ = ParseCategory(string(text))
	return nil
}

// ParseCategory parses "COMP"/"COMPONENT", "STYLE" or "VAR"/"VARIABLE",
// case-insensitively.
func ParseCategory(s string) (Category, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "COMP", "COMPONENT":
		return Component, nil
	case "STYLE":
		return Style, nil
	case "VAR", "VARIABLE":
		return Variable, nil
	}
	return 0, &nkerrors.ConfigError{Option: "category", Value: s, Message: "valid categories: COMPONENT, STYLE, VARIABLE"}
}

// Categories returns every known category.
func Categories() []Category {
	return []Category{Component, Style, Variable}
}

// Subtype labels reported by hosts.
const (
	SubtypeComponent    = "COMPONENT"
	SubtypeComponentSet = "COMPONENT_SET"

	SubtypeColor  = "COLOR"
	SubtypeText   = "TEXT"
	SubtypeEffect = "EFFECT"
	SubtypeGrid   = "GRID"

	SubtypeString = "STRING"
	SubtypeBool   = "BOOL"
	SubtypeNumber = "NUMBER"
)

// Scope limits which part of a document a host searches for components.
// Styles and variables are document-wide and ignore it.
type Scope int

const (
	// CurrentPage searches only the page currently open.
	CurrentPage Scope = iota
	// AllPages searches every page; hosts may be slow for large documents.
	AllPages
)

// String returns the wire label of the scope.
func (s Scope) String() string {
	if s == AllPages {
		return "ALL_PAGES"
	}
	return "CURRENT_PAGE"
}

// ParseScope parses "CURRENT_PAGE"/"current" or "ALL_PAGES"/"all".
func ParseScope(s string) (Scope, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "", "CURRENT_PAGE", "CURRENT", "PAGE":
		return CurrentPage, nil
	case "ALL_PAGES", "ALL":
		return AllPages, nil
	}
	return CurrentPage, &nkerrors.ConfigError{Option: "scope", Value: s, Message: "valid scopes: CURRENT_PAGE, ALL_PAGES"}
}

// Item is a renameable element as supplied by a host.
type Item struct {
	ID       string   `yaml:"id" json:"id"`
	Name     string   `yaml:"name" json:"name"`
	Category Category `yaml:"category" json:"category"`
	Subtype  string   `yaml:"subtype,omitempty" json:"subtype,omitempty"`
	Location string   `yaml:"location,omitempty" json:"location,omitempty"`
}

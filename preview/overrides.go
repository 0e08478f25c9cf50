package preview

import (
	"strings"

	"github.com/erraggy/namekit/casing"
	"github.com/erraggy/namekit/element"
	"github.com/erraggy/namekit/pattern"
)

// Overrides are rule settings layered over a Config, as given on a command
// line or in a tool call. Empty fields leave the config untouched.
type Overrides struct {
	Mode string

	// Query replaces the filter when non-empty, together with Filter.
	Query  string
	Filter pattern.Options

	// Formats maps target labels to format labels, e.g. "nodeName": "snake".
	Formats       map[string]string
	FormatTargets []string

	// ReplaceFrom replaces the find/replace rule when non-empty, together
	// with ReplaceTo and Replace.
	ReplaceFrom    string
	ReplaceTo      string
	Replace        pattern.Options
	ReplaceTargets []string
}

// Apply layers o over c. Labels that do not parse leave c partially
// updated and return a ConfigError.
func (c *Config) Apply(o Overrides) error {
	if o.Mode != "" {
		m, err := ParseMode(o.Mode)
		if err != nil {
			return err
		}
		c.Mode = m
	}
	if o.Query != "" {
		c.Query = o.Query
		c.Filter = o.Filter
	}

	for name, value := range o.Formats {
		t, err := element.ParseTarget(strings.TrimSpace(name))
		if err != nil {
			return err
		}
		f, err := casing.ParseFormat(value)
		if err != nil {
			return err
		}
		c.SetFormat(t, f)
	}
	if len(o.FormatTargets) > 0 {
		set, err := ParseTargets(o.FormatTargets)
		if err != nil {
			return err
		}
		c.FormatTargets = set
	}

	if o.ReplaceFrom != "" {
		c.ReplaceFrom = o.ReplaceFrom
		c.ReplaceTo = o.ReplaceTo
		c.Replace = o.Replace
	}
	if len(o.ReplaceTargets) > 0 {
		set, err := ParseTargets(o.ReplaceTargets)
		if err != nil {
			return err
		}
		c.ReplaceTargets = set
	}
	return nil
}

// ParseTargets parses target labels into a set.
func ParseTargets(names []string) (TargetSet, error) {
	var set TargetSet
	for _, name := range names {
		t, err := element.ParseTarget(strings.TrimSpace(name))
		if err != nil {
			return nil, err
		}
		set = set.With(t)
	}
	return set, nil
}

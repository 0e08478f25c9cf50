package preview

import (
	"encoding/json"
	"errors"
	"maps"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/erraggy/namekit/casing"
	"github.com/erraggy/namekit/element"
	"github.com/erraggy/namekit/nkerrors"
	"github.com/erraggy/namekit/pattern"
	"go.yaml.in/yaml/v4"
)

// Mode selects which transformer a preview applies.
type Mode int

const (
	// ModeFormat converts names with the per-target case format.
	ModeFormat Mode = iota
	// ModeReplace applies the find/replace rule.
	ModeReplace
)

// String returns "format" or "replace".
func (m Mode) String() string {
	if m == ModeReplace {
		return "replace"
	}
	return "format"
}

// MarshalText implements encoding.TextMarshaler.
func (m Mode) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (m *Mode) UnmarshalText(text []byte) error {
	parsed, err := ParseMode(string(text))
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}

// ParseMode parses "format" or "replace", case-insensitively.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "format":
		return ModeFormat, nil
	case "replace":
		return ModeReplace, nil
	}
	return ModeFormat, &nkerrors.ConfigError{Option: "mode", Value: s, Message: "valid modes: format, replace"}
}

// TargetSet is a set of naming targets kept as an ordered list so that it
// reads naturally in config files.
type TargetSet []element.Target

// NewTargetSet builds a set from targets, dropping duplicates.
func NewTargetSet(targets ...element.Target) TargetSet {
	var s TargetSet
	for _, t := range targets {
		s = s.With(t)
	}
	return s
}

// Has reports whether t is in the set.
func (s TargetSet) Has(t element.Target) bool {
	return slices.Contains(s, t)
}

// With returns the set with t added.
func (s TargetSet) With(t element.Target) TargetSet {
	if s.Has(t) {
		return s
	}
	out := append(slices.Clone(s), t)
	slices.Sort(out)
	return out
}

// Toggle returns the set with t added if absent and removed if present.
func (s TargetSet) Toggle(t element.Target) TargetSet {
	if !s.Has(t) {
		return s.With(t)
	}
	return slices.DeleteFunc(slices.Clone(s), func(x element.Target) bool { return x == t })
}

// Config is every input of a preview besides the items themselves.
type Config struct {
	Mode Mode `yaml:"mode" json:"mode"`

	// Query filters items by name before anything else happens.
	Query  string          `yaml:"query,omitempty" json:"query,omitempty"`
	Filter pattern.Options `yaml:"filter" json:"filter"`

	// Formats holds the case format of each target. Targets absent from the
	// map are left unchanged.
	Formats       map[element.Target]casing.Format `yaml:"formats,omitempty" json:"formats,omitempty"`
	FormatTargets TargetSet                        `yaml:"formatTargets" json:"formatTargets"`

	ReplaceFrom    string          `yaml:"replaceFrom,omitempty" json:"replaceFrom,omitempty"`
	ReplaceTo      string          `yaml:"replaceTo,omitempty" json:"replaceTo,omitempty"`
	Replace        pattern.Options `yaml:"replace" json:"replace"`
	ReplaceTargets TargetSet       `yaml:"replaceTargets" json:"replaceTargets"`
}

// DefaultConfig returns the configuration used when a category is picked:
// format mode, camelCase for every target, and the category's default
// target selected for both modes.
func DefaultConfig(c element.Category) Config {
	formats := make(map[element.Target]casing.Format, len(element.Targets()))
	for _, t := range element.Targets() {
		formats[t] = casing.Camel
	}
	def := element.DefaultTarget(c)
	return Config{
		Mode:           ModeFormat,
		Formats:        formats,
		FormatTargets:  NewTargetSet(def),
		ReplaceTargets: NewTargetSet(def),
	}
}

// Clone returns a copy of c that shares no map or slice with it.
func (c Config) Clone() Config {
	c.Formats = maps.Clone(c.Formats)
	c.FormatTargets = slices.Clone(c.FormatTargets)
	c.ReplaceTargets = slices.Clone(c.ReplaceTargets)
	return c
}

// FormatFor returns the case format configured for t.
func (c Config) FormatFor(t element.Target) casing.Format {
	if f, ok := c.Formats[t]; ok {
		return f
	}
	return casing.None
}

// SetFormat sets the case format of t.
func (c *Config) SetFormat(t element.Target, f casing.Format) {
	if c.Formats == nil {
		c.Formats = make(map[element.Target]casing.Format)
	}
	c.Formats[t] = f
}

// Validate checks that every enumerated field holds a known value.
func (c Config) Validate() error {
	if c.Mode != ModeFormat && c.Mode != ModeReplace {
		return &nkerrors.ConfigError{Option: "mode", Value: int(c.Mode), Message: "unknown mode"}
	}
	for t, f := range c.Formats {
		if !f.Valid() {
			return &nkerrors.ConfigError{Option: "formats." + t.String(), Value: int(f), Message: "unknown case format"}
		}
	}
	return nil
}

// ParseConfig decodes a YAML or JSON config on top of DefaultConfig(c).
// Keys missing from data keep their default.
func ParseConfig(data []byte, c element.Category) (Config, error) {
	cfg := DefaultConfig(c)
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, &nkerrors.ParseError{Format: "yaml", Message: "decoding rename config", Cause: err}
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// LoadConfig reads a config file. Files ending in .json are decoded as JSON,
// anything else as YAML.
func LoadConfig(path string, c element.Category) (Config, error) {
	data, err := os.ReadFile(path) //nolint:gosec // G304: path is supplied by the user on purpose
	if err != nil {
		return Config{}, &nkerrors.ConfigError{Option: "config", Value: path, Message: "reading config file", Cause: err}
	}
	if !strings.EqualFold(filepath.Ext(path), ".json") {
		cfg, err := ParseConfig(data, c)
		var pe *nkerrors.ParseError
		if errors.As(err, &pe) {
			pe.Path = path
		}
		return cfg, err
	}

	cfg := DefaultConfig(c)
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Config{}, &nkerrors.ParseError{Path: path, Format: "json", Message: "decoding rename config", Cause: err}
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

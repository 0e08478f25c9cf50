package mcpserver

import (
	"fmt"

	"github.com/erraggy/namekit/document"
	"github.com/erraggy/namekit/element"
	"github.com/erraggy/namekit/internal/options"
	"github.com/erraggy/namekit/pattern"
	"github.com/erraggy/namekit/preview"
)

// documentInput represents the two ways a design document can be provided.
// Exactly one of File or Content must be set.
type documentInput struct {
	File    string `json:"file,omitempty"    jsonschema:"Path to a design document on disk (YAML or JSON)"`
	Content string `json:"content,omitempty" jsonschema:"Inline design document content (JSON or YAML)"`
}

// resolve loads the document from whichever input was provided. Every call
// returns a fresh document, so renames never leak between tool calls.
func (d documentInput) resolve() (*document.Document, error) {
	if err := options.ValidateSingleInputSource(
		options.Source{Name: "file", Set: d.File != ""},
		options.Source{Name: "content", Set: d.Content != ""},
	); err != nil {
		return nil, err
	}
	if d.File != "" {
		return document.Load(d.File)
	}
	if int64(len(d.Content)) > cfg.MaxInlineSize {
		return nil, fmt.Errorf("inline content size %d bytes exceeds maximum %d bytes; use file input instead, or set NAMEKIT_MAX_INLINE_SIZE to increase",
			len(d.Content), cfg.MaxInlineSize)
	}
	return document.Parse([]byte(d.Content), document.SourceFormatUnknown)
}

// ruleInput describes which elements to rename and how.
type ruleInput struct {
	Category string `json:"category"                    jsonschema:"Element category: COMPONENT, STYLE or VARIABLE"`
	Scope    string `json:"scope,omitempty"             jsonschema:"CURRENT_PAGE or ALL_PAGES (components only). Default configurable via NAMEKIT_DEFAULT_SCOPE"`
	Config   string `json:"config,omitempty"            jsonschema:"Path to a YAML or JSON rename config. Fields set on this call override it"`
	Mode     string `json:"mode,omitempty"              jsonschema:"format (default) or replace"`

	Query              string `json:"query,omitempty"                jsonschema:"Only include elements whose name matches this term"`
	QueryCaseSensitive bool   `json:"query_case_sensitive,omitempty" jsonschema:"Match the query case-sensitively"`
	QueryRegex         bool   `json:"query_regex,omitempty"          jsonschema:"Treat the query as a regular expression"`

	Formats       map[string]string `json:"formats,omitempty"        jsonschema:"Case format per naming target (nodeName\\, propName\\, colorStyle\\, textStyle\\, effectStyle\\, gridStyle\\, colorVar\\, numberVar\\, stringVar\\, boolVar). Unlisted targets use camelCase"`
	FormatTargets []string          `json:"format_targets,omitempty" jsonschema:"Naming targets converted in format mode. Default: the category's primary target"`

	Find           string   `json:"find,omitempty"            jsonschema:"Replace mode: term to search for"`
	ReplaceWith    string   `json:"replace_with,omitempty"    jsonschema:"Replace mode: replacement text. With regex\\, $1 and $<name> refer to groups"`
	CaseSensitive  bool     `json:"case_sensitive,omitempty"  jsonschema:"Replace mode: match the find term case-sensitively"`
	Regex          bool     `json:"regex,omitempty"           jsonschema:"Replace mode: treat the find term as a regular expression"`
	ReplaceTargets []string `json:"replace_targets,omitempty" jsonschema:"Naming targets rewritten in replace mode. Default: the category's primary target"`
}

// build resolves the rule into a category, scope and preview config.
func (r ruleInput) build() (element.Category, element.Scope, preview.Config, error) {
	c, err := element.ParseCategory(r.Category)
	if err != nil {
		return 0, 0, preview.Config{}, err
	}

	scope := cfg.DefaultScope
	if r.Scope != "" {
		if scope, err = element.ParseScope(r.Scope); err != nil {
			return 0, 0, preview.Config{}, err
		}
	}

	pc := preview.DefaultConfig(c)
	if r.Config != "" {
		if pc, err = preview.LoadConfig(r.Config, c); err != nil {
			return 0, 0, preview.Config{}, err
		}
	}

	if err := pc.Apply(r.overrides()); err != nil {
		return 0, 0, preview.Config{}, err
	}

	return c, scope, pc, nil
}

func (r ruleInput) overrides() preview.Overrides {
	return preview.Overrides{
		Mode:           r.Mode,
		Query:          r.Query,
		Filter:         pattern.Options{CaseSensitive: r.QueryCaseSensitive, UseRegex: r.QueryRegex},
		Formats:        r.Formats,
		FormatTargets:  r.FormatTargets,
		ReplaceFrom:    r.Find,
		ReplaceTo:      r.ReplaceWith,
		Replace:        pattern.Options{CaseSensitive: r.CaseSensitive, UseRegex: r.Regex},
		ReplaceTargets: r.ReplaceTargets,
	}
}

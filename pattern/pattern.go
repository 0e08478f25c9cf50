// Package pattern implements find/replace and name filtering with literal or
// regular-expression search terms.
//
// Import path: github.com/erraggy/namekit/pattern
//
// Both [Replace] and [Matches] are fail-soft: a term that does not compile
// (only possible in regex mode while the user is still typing) never yields
// an error. Replace returns the input unchanged; Matches falls back to a
// case-insensitive substring check of the raw term. Callers that need the
// compile error use [Compile].
//
// Regular expressions use Go's RE2 syntax. Constructs RE2 does not support,
// such as lookaround and backreferences, count as malformed patterns.
//
// Global replacement follows Go's match iteration: an empty match directly
// after a non-empty match is skipped. Replace("abc", "b*", "X", true, false)
// yields "XaXcX" where an ECMAScript replaceAll yields "XaXXcX".
package pattern

import (
	"regexp"
	"strings"

	"github.com/erraggy/namekit/nkerrors"
)

// Options controls how a search term is interpreted.
// The zero value is a case-insensitive literal search.
type Options struct {
	CaseSensitive bool `yaml:"caseSensitive" json:"caseSensitive"`
	UseRegex      bool `yaml:"useRegex" json:"useRegex"`
}

// Compile builds the regular expression for a search term.
// Literal terms have every metacharacter escaped. Unless CaseSensitive is
// set the expression matches case-insensitively. Errors are *nkerrors.PatternError.
func Compile(term string, opts Options) (*regexp.Regexp, error) {
	expr := term
	if !opts.UseRegex {
		expr = regexp.QuoteMeta(term)
	}
	if !opts.CaseSensitive {
		expr = "(?i)" + expr
	}
	re, err := regexp.Compile(expr)
	if err != nil {
		return nil, &nkerrors.PatternError{Pattern: term, Regex: opts.UseRegex, Cause: err}
	}
	return re, nil
}

// Replace replaces every non-overlapping occurrence of from in input with to.
// An empty from, or a from that fails to compile, returns input unchanged.
// The replacement understands $$, $&, $`, $', $n and $<name>.
func Replace(input, from, to string, useRegex, caseSensitive bool) string {
	return Options{CaseSensitive: caseSensitive, UseRegex: useRegex}.Replace(input, from, to)
}

// Replace is the method form of the package-level Replace.
func (o Options) Replace(input, from, to string) string {
	return o.Replacer(from, to)(input)
}

// Replacer compiles from once and returns a function applying the
// replacement to any input. It follows the same rules as Replace.
func (o Options) Replacer(from, to string) func(string) string {
	if from == "" {
		return identity
	}
	re, err := Compile(from, o)
	if err != nil {
		return identity
	}
	return func(input string) string {
		return replaceAll(re, input, to)
	}
}

// Matches reports whether name matches query. An empty query matches every
// name. A query that fails to compile falls back to a case-insensitive
// substring check of the raw query.
func Matches(name, query string, caseSensitive, useRegex bool) bool {
	return Options{CaseSensitive: caseSensitive, UseRegex: useRegex}.Matches(name, query)
}

// Matches is the method form of the package-level Matches.
func (o Options) Matches(name, query string) bool {
	return o.Matcher(query)(name)
}

// Matcher compiles query once and returns a predicate following the same
// rules as Matches.
func (o Options) Matcher(query string) func(string) bool {
	if query == "" {
		return func(string) bool { return true }
	}
	re, err := Compile(query, o)
	if err != nil {
		lowered := strings.ToLower(query)
		return func(name string) bool {
			return strings.Contains(strings.ToLower(name), lowered)
		}
	}
	return re.MatchString
}

func identity(s string) string { return s }

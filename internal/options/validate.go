// Package options validates option combinations shared by the CLI and the
// MCP server.
package options

import (
	"fmt"
	"strings"

	"github.com/erraggy/namekit/nkerrors"
)

// Source is one way of supplying an input, such as a file path or inline
// content.
type Source struct {
	Name string
	Set  bool
}

// ValidateSingleInputSource ensures exactly one of sources is set.
func ValidateSingleInputSource(sources ...Source) error {
	names, set := tally(sources)
	if set == 1 {
		return nil
	}
	return &nkerrors.ConfigError{
		Option:  "input",
		Message: fmt.Sprintf("exactly one of %s must be provided (got %d)", strings.Join(names, " or "), set),
	}
}

// ValidateExclusive ensures at most one of sources is set.
func ValidateExclusive(sources ...Source) error {
	names, set := tally(sources)
	if set <= 1 {
		return nil
	}
	return &nkerrors.ConfigError{
		Option:  strings.Join(names, "/"),
		Message: "options are mutually exclusive",
	}
}

func tally(sources []Source) (names []string, set int) {
	names = make([]string, 0, len(sources))
	for _, s := range sources {
		names = append(names, s.Name)
		if s.Set {
			set++
		}
	}
	return names, set
}

package commands

import (
	"errors"
	"flag"
	"fmt"

	"github.com/erraggy/namekit/internal/cliutil"
	"github.com/erraggy/namekit/pattern"
)

// MatchFlags contains flags for the match command
type MatchFlags struct {
	Query         string
	CaseSensitive bool
	Regex         bool
	Invert        bool
	Count         bool
	Output        string
}

// MatchResult is the structured output of the match command.
type MatchResult struct {
	Total   int      `json:"total" yaml:"total"`
	Matched int      `json:"matched" yaml:"matched"`
	Matches []string `json:"matches,omitempty" yaml:"matches,omitempty"`
}

// SetupMatchFlags creates and configures a FlagSet for the match command.
// Returns the FlagSet and a MatchFlags struct with bound flag variables.
func SetupMatchFlags() (*flag.FlagSet, *MatchFlags) {
	fs := flag.NewFlagSet("match", flag.ContinueOnError)
	flags := &MatchFlags{}

	fs.StringVar(&flags.Query, "q", "", "filter term (empty matches every name)")
	fs.StringVar(&flags.Query, "query", "", "filter term (empty matches every name)")
	fs.BoolVar(&flags.CaseSensitive, "case-sensitive", false, "match case-sensitively")
	fs.BoolVar(&flags.Regex, "regex", false, "treat the query as a regular expression")
	fs.BoolVar(&flags.Invert, "v", false, "select names that do not match")
	fs.BoolVar(&flags.Invert, "invert", false, "select names that do not match")
	fs.BoolVar(&flags.Count, "count", false, "print only the number of selected names")
	fs.StringVar(&flags.Output, "o", FormatText, "output format: text, json, or yaml")
	fs.StringVar(&flags.Output, "output", FormatText, "output format: text, json, or yaml")

	fs.Usage = func() {
		cliutil.Writef(fs.Output(), "Usage: namekit match [flags] <name>... | -\n\n")
		cliutil.Writef(fs.Output(), "Filter names by a plain or regular expression query.\n\n")
		cliutil.Writef(fs.Output(), "Flags:\n")
		fs.PrintDefaults()
		cliutil.Writef(fs.Output(), "\nExamples:\n")
		cliutil.Writef(fs.Output(), "  namekit match -q button \"Icon Button\" card\n")
		cliutil.Writef(fs.Output(), "  cat names.txt | namekit match --regex -q '^btn/' --count -\n")
		cliutil.Writef(fs.Output(), "\nNotes:\n")
		cliutil.Writef(fs.Output(), "  - An invalid regular expression falls back to a plain substring match\n")
	}

	return fs, flags
}

// HandleMatch executes the match command
func HandleMatch(args []string) error {
	fs, flags := SetupMatchFlags()

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	if err := ValidateOutputFormat(flags.Output); err != nil {
		return err
	}
	names, err := readNames(fs.Args())
	if err != nil {
		return err
	}
	if len(names) == 0 {
		fs.Usage()
		return fmt.Errorf("match command requires at least one name, or '-' for stdin")
	}

	match := pattern.Options{CaseSensitive: flags.CaseSensitive, UseRegex: flags.Regex}.Matcher(flags.Query)
	result := MatchResult{Total: len(names)}
	for _, name := range names {
		if match(name) != flags.Invert {
			result.Matches = append(result.Matches, name)
		}
	}
	result.Matched = len(result.Matches)

	switch {
	case flags.Output != FormatText:
		return OutputStructured(result, flags.Output)
	case flags.Count:
		cliutil.Writef(stdout, "%d\n", result.Matched)
	default:
		for _, name := range result.Matches {
			cliutil.Writeln(stdout, name)
		}
	}
	return nil
}

package commands

import (
	"errors"
	"flag"
	"fmt"

	"github.com/erraggy/namekit/internal/cliutil"
	"github.com/erraggy/namekit/pattern"
)

// ReplaceFlags contains flags for the replace command
type ReplaceFlags struct {
	Find          string
	With          string
	CaseSensitive bool
	Regex         bool
	Output        string
}

// ReplacedName is one rewritten name in structured output.
type ReplacedName struct {
	Original string `json:"original" yaml:"original"`
	Result   string `json:"result" yaml:"result"`
	Changed  bool   `json:"changed" yaml:"changed"`
}

// SetupReplaceFlags creates and configures a FlagSet for the replace command.
// Returns the FlagSet and a ReplaceFlags struct with bound flag variables.
func SetupReplaceFlags() (*flag.FlagSet, *ReplaceFlags) {
	fs := flag.NewFlagSet("replace", flag.ContinueOnError)
	flags := &ReplaceFlags{}

	fs.StringVar(&flags.Find, "find", "", "term to search for (required)")
	fs.StringVar(&flags.With, "with", "", "replacement text ($1 and $<name> refer to regex groups)")
	fs.BoolVar(&flags.CaseSensitive, "case-sensitive", false, "match the term case-sensitively")
	fs.BoolVar(&flags.Regex, "regex", false, "treat the term as a regular expression")
	fs.StringVar(&flags.Output, "o", FormatText, "output format: text, json, or yaml")
	fs.StringVar(&flags.Output, "output", FormatText, "output format: text, json, or yaml")

	fs.Usage = func() {
		cliutil.Writef(fs.Output(), "Usage: namekit replace --find <term> [flags] <name>... | -\n\n")
		cliutil.Writef(fs.Output(), "Find and replace text in names.\n\n")
		cliutil.Writef(fs.Output(), "Flags:\n")
		fs.PrintDefaults()
		cliutil.Writef(fs.Output(), "\nExamples:\n")
		cliutil.Writef(fs.Output(), "  namekit replace --find btn --with button btn/primary btn/secondary\n")
		cliutil.Writef(fs.Output(), "  namekit replace --regex --find '(\\w+)/(\\w+)' --with '$2/$1' icon/small\n")
		cliutil.Writef(fs.Output(), "\nNotes:\n")
		cliutil.Writef(fs.Output(), "  - Matching is case-insensitive unless --case-sensitive is set\n")
		cliutil.Writef(fs.Output(), "  - An invalid regular expression leaves every name unchanged\n")
	}

	return fs, flags
}

// HandleReplace executes the replace command
func HandleReplace(args []string) error {
	fs, flags := SetupReplaceFlags()

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	if err := ValidateOutputFormat(flags.Output); err != nil {
		return err
	}
	if flags.Find == "" {
		fs.Usage()
		return fmt.Errorf("find term is required (use --find)")
	}
	names, err := readNames(fs.Args())
	if err != nil {
		return err
	}
	if len(names) == 0 {
		fs.Usage()
		return fmt.Errorf("replace command requires at least one name, or '-' for stdin")
	}

	opts := pattern.Options{CaseSensitive: flags.CaseSensitive, UseRegex: flags.Regex}
	if _, err := pattern.Compile(flags.Find, opts); err != nil {
		cliutil.Writef(stderr, "Warning: %v; names left unchanged\n", err)
	}

	replace := opts.Replacer(flags.Find, flags.With)
	results := make([]ReplacedName, 0, len(names))
	for _, name := range names {
		r := ReplacedName{Original: name, Result: replace(name)}
		r.Changed = r.Result != name
		results = append(results, r)
	}

	if flags.Output != FormatText {
		return OutputStructured(results, flags.Output)
	}
	for _, r := range results {
		cliutil.Writeln(stdout, r.Result)
	}
	return nil
}

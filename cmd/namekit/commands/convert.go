package commands

import (
	"errors"
	"flag"
	"fmt"

	"github.com/erraggy/namekit/casing"
	"github.com/erraggy/namekit/internal/cliutil"
)

// ConvertFlags contains flags for the convert command
type ConvertFlags struct {
	Format string
	Output string
}

// ConvertedName is one converted name in structured output.
type ConvertedName struct {
	Original   string            `json:"original" yaml:"original"`
	Converted  string            `json:"converted,omitempty" yaml:"converted,omitempty"`
	Variations map[string]string `json:"variations,omitempty" yaml:"variations,omitempty"`
}

// SetupConvertFlags creates and configures a FlagSet for the convert command.
// Returns the FlagSet and a ConvertFlags struct with bound flag variables.
func SetupConvertFlags() (*flag.FlagSet, *ConvertFlags) {
	fs := flag.NewFlagSet("convert", flag.ContinueOnError)
	flags := &ConvertFlags{}

	fs.StringVar(&flags.Format, "t", "", "target case format: camel, snake, kebab, pascal, title or upper (default: all)")
	fs.StringVar(&flags.Format, "to", "", "target case format: camel, snake, kebab, pascal, title or upper (default: all)")
	fs.StringVar(&flags.Output, "o", FormatText, "output format: text, json, or yaml")
	fs.StringVar(&flags.Output, "output", FormatText, "output format: text, json, or yaml")

	fs.Usage = func() {
		cliutil.Writef(fs.Output(), "Usage: namekit convert [flags] <name>... | -\n\n")
		cliutil.Writef(fs.Output(), "Convert names between case conventions.\n\n")
		cliutil.Writef(fs.Output(), "Flags:\n")
		fs.PrintDefaults()
		cliutil.Writef(fs.Output(), "\nExamples:\n")
		cliutil.Writef(fs.Output(), "  namekit convert -t snake \"Icon Button\" primaryColor\n")
		cliutil.Writef(fs.Output(), "  namekit convert btn/primary\n")
		cliutil.Writef(fs.Output(), "  cat names.txt | namekit convert -t kebab -o json -\n")
		cliutil.Writef(fs.Output(), "\nNotes:\n")
		cliutil.Writef(fs.Output(), "  - Use '-' to read one name per line from stdin\n")
		cliutil.Writef(fs.Output(), "  - Without -t, every format is shown for each name\n")
	}

	return fs, flags
}

// HandleConvert executes the convert command
func HandleConvert(args []string) error {
	fs, flags := SetupConvertFlags()

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
		return fmt.Errorf("convert command requires at least one name, or '-' for stdin")
	}

	var format casing.Format
	if flags.Format != "" {
		if format, err = casing.ParseFormat(flags.Format); err != nil {
			return err
		}
	}

	results := convertNames(names, format)
	if flags.Output != FormatText {
		return OutputStructured(results, flags.Output)
	}

	if format != casing.None {
		for _, r := range results {
			cliutil.Writeln(stdout, r.Converted)
		}
		return nil
	}
	for i, r := range results {
		if i > 0 {
			cliutil.Writeln(stdout, "")
		}
		cliutil.Writeln(stdout, r.Original)
		tbl := cliutil.NewTable(stdout)
		for _, f := range casing.Formats() {
			tbl.Row("  "+f.String()+":", r.Variations[f.String()])
		}
		tbl.Flush()
	}
	return nil
}

// convertNames converts each name to format, or to every format when
// format is casing.None.
func convertNames(names []string, format casing.Format) []ConvertedName {
	results := make([]ConvertedName, 0, len(names))
	for _, name := range names {
		if format != casing.None {
			results = append(results, ConvertedName{Original: name, Converted: casing.Convert(name, format)})
			continue
		}
		variations := make(map[string]string, len(casing.Formats()))
		for _, f := range casing.Formats() {
			variations[f.String()] = casing.Convert(name, f)
		}
		results = append(results, ConvertedName{Original: name, Variations: variations})
	}
	return results
}


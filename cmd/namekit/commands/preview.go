package commands

import (
	"context"
	"errors"
	"flag"
	"fmt"

	"github.com/erraggy/namekit/bridge"
	"github.com/erraggy/namekit/internal/cliutil"
	"github.com/erraggy/namekit/preview"
)

// PreviewFlags contains flags for the preview command
type PreviewFlags struct {
	Rule        RuleFlags
	ChangedOnly bool
	Output      string
}

// PreviewEntry is one row of a preview in structured output.
type PreviewEntry struct {
	ID        string `json:"id" yaml:"id"`
	Original  string `json:"original" yaml:"original"`
	Processed string `json:"processed" yaml:"processed"`
	Changed   bool   `json:"changed" yaml:"changed"`
	Target    string `json:"target" yaml:"target"`
	Subtype   string `json:"subtype,omitempty" yaml:"subtype,omitempty"`
	Location  string `json:"location,omitempty" yaml:"location,omitempty"`
}

// PreviewResult is the structured output of the preview command.
type PreviewResult struct {
	Document string         `json:"document" yaml:"document"`
	Category string         `json:"category" yaml:"category"`
	Scope    string         `json:"scope" yaml:"scope"`
	Mode     string         `json:"mode" yaml:"mode"`
	Total    int            `json:"total" yaml:"total"`
	Changed  int            `json:"changed" yaml:"changed"`
	Entries  []PreviewEntry `json:"entries,omitempty" yaml:"entries,omitempty"`
}

// SetupPreviewFlags creates and configures a FlagSet for the preview command.
// Returns the FlagSet and a PreviewFlags struct with bound flag variables.
func SetupPreviewFlags() (*flag.FlagSet, *PreviewFlags) {
	fs := flag.NewFlagSet("preview", flag.ContinueOnError)
	flags := &PreviewFlags{}

	flags.Rule.register(fs)
	fs.BoolVar(&flags.ChangedOnly, "changed-only", false, "only list elements whose name would change")
	fs.StringVar(&flags.Output, "o", FormatText, "output format: text, json, or yaml")
	fs.StringVar(&flags.Output, "output", FormatText, "output format: text, json, or yaml")

	fs.Usage = func() {
		cliutil.Writef(fs.Output(), "Usage: namekit preview -c <category> [flags] <document|->\n\n")
		cliutil.Writef(fs.Output(), "Show how the elements of a design document would be renamed.\n\n")
		cliutil.Writef(fs.Output(), "Flags:\n")
		fs.PrintDefaults()
		cliutil.Writef(fs.Output(), "\nExamples:\n")
		cliutil.Writef(fs.Output(), "  namekit preview -c COMPONENT -f nodeName=pascal design.yaml\n")
		cliutil.Writef(fs.Output(), "  namekit preview -c COMPONENT --scope ALL_PAGES --targets nodeName,propName -f propName=camel design.yaml\n")
		cliutil.Writef(fs.Output(), "  namekit preview -c STYLE -m replace --find primary --replace brand design.json\n")
		cliutil.Writef(fs.Output(), "  cat design.yaml | namekit preview -c VARIABLE -q spacing -o json -\n")
		cliutil.Writef(fs.Output(), "\nTargets:\n")
		cliutil.Writef(fs.Output(), "  COMPONENT  nodeName, propName, propValue\n")
		cliutil.Writef(fs.Output(), "  STYLE      colorStyle, textStyle, effectStyle, gridStyle\n")
		cliutil.Writef(fs.Output(), "  VARIABLE   colorVar, numberVar, stringVar, boolVar\n")
	}

	return fs, flags
}

// HandlePreview executes the preview command
func HandlePreview(args []string) error {
	fs, flags := SetupPreviewFlags()

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	if err := ValidateOutputFormat(flags.Output); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		fs.Usage()
		return fmt.Errorf("preview command requires exactly one document path, or '-' for stdin")
	}
	docPath := fs.Arg(0)

	c, scope, pc, err := flags.Rule.build()
	if err != nil {
		return err
	}
	doc, err := LoadDocument(docPath)
	if err != nil {
		return err
	}

	s := bridge.NewSession(doc, c,
		bridge.WithScope(scope),
		bridge.WithConfig(pc),
		bridge.WithLogger(newLogger(flags.Rule.Debug)),
	)
	defer s.Close()
	if err := s.Load(context.Background()); err != nil {
		return err
	}

	entries := s.Preview()
	summary := preview.Summarize(entries)
	result := PreviewResult{
		Document: FormatDocumentPath(docPath),
		Category: c.String(),
		Scope:    scope.String(),
		Mode:     pc.Mode.String(),
		Total:    summary.Total,
		Changed:  summary.Changed,
	}
	for _, e := range entries {
		if flags.ChangedOnly && !e.Changed() {
			continue
		}
		result.Entries = append(result.Entries, toPreviewEntry(e))
	}

	if flags.Output != FormatText {
		return OutputStructured(result, flags.Output)
	}
	writePreviewTable(result)
	return nil
}

func toPreviewEntry(e preview.Entry) PreviewEntry {
	return PreviewEntry{
		ID:        e.Item.ID,
		Original:  e.Original,
		Processed: e.Processed,
		Changed:   e.Changed(),
		Target:    e.Target.String(),
		Subtype:   e.Item.Subtype,
		Location:  e.Item.Location,
	}
}

// writePreviewTable prints the entries as a table followed by a summary
// line. Changed rows are marked with "*".
func writePreviewTable(r PreviewResult) {
	cliutil.Writef(stdout, "%s · %s · %s mode\n\n", r.Category, r.Scope, r.Mode)
	if len(r.Entries) > 0 {
		tbl := cliutil.NewTable(stdout, "", "ID", "LOCATION", "ORIGINAL", "PROCESSED")
		for _, e := range r.Entries {
			mark := ""
			if e.Changed {
				mark = "*"
			}
			tbl.Row(mark, e.ID, e.Location, e.Original, e.Processed)
		}
		tbl.Flush()
		cliutil.Writeln(stdout, "")
	}
	cliutil.Writef(stdout, "%d of %d names would change\n", r.Changed, r.Total)
}

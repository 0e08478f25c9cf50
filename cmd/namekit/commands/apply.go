package commands

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"strings"

	"github.com/erraggy/namekit/bridge"
	"github.com/erraggy/namekit/document"
	"github.com/erraggy/namekit/internal/cliutil"
	"github.com/erraggy/namekit/internal/fileutil"
	"github.com/erraggy/namekit/internal/options"
	"github.com/erraggy/namekit/nkerrors"
	"github.com/erraggy/namekit/preview"
)

// ApplyFlags contains flags for the apply command
type ApplyFlags struct {
	Rule    RuleFlags
	IDs     listFlag
	DryRun  bool
	Write   string
	InPlace bool
	Quiet   bool
}

// SetupApplyFlags creates and configures a FlagSet for the apply command.
// Returns the FlagSet and an ApplyFlags struct with bound flag variables.
func SetupApplyFlags() (*flag.FlagSet, *ApplyFlags) {
	fs := flag.NewFlagSet("apply", flag.ContinueOnError)
	flags := &ApplyFlags{}

	flags.Rule.register(fs)
	fs.Var(&flags.IDs, "ids", "comma-separated element ids to rename (default: every changed element)")
	fs.BoolVar(&flags.DryRun, "dry-run", false, "list the renames without applying them")
	fs.StringVar(&flags.Write, "w", "", "write the renamed document to this path (default: stdout)")
	fs.StringVar(&flags.Write, "write", "", "write the renamed document to this path (default: stdout)")
	fs.BoolVar(&flags.InPlace, "i", false, "overwrite the input document")
	fs.BoolVar(&flags.InPlace, "in-place", false, "overwrite the input document")
	fs.BoolVar(&flags.Quiet, "quiet", false, "quiet mode: no summary on stderr")

	fs.Usage = func() {
		cliutil.Writef(fs.Output(), "Usage: namekit apply -c <category> [flags] <document|->\n\n")
		cliutil.Writef(fs.Output(), "Rename the elements of a design document and write the result.\n\n")
		cliutil.Writef(fs.Output(), "Flags:\n")
		fs.PrintDefaults()
		cliutil.Writef(fs.Output(), "\nExamples:\n")
		cliutil.Writef(fs.Output(), "  namekit apply -c COMPONENT -f nodeName=pascal -i design.yaml\n")
		cliutil.Writef(fs.Output(), "  namekit apply -c STYLE --ids S:1,S:2 -f colorStyle=kebab -w renamed.json design.yaml\n")
		cliutil.Writef(fs.Output(), "  namekit apply -c VARIABLE --dry-run design.yaml\n")
		cliutil.Writef(fs.Output(), "  cat design.yaml | namekit apply -c COMPONENT --quiet - > renamed.yaml\n")
		cliutil.Writef(fs.Output(), "\nNotes:\n")
		cliutil.Writef(fs.Output(), "  - Renames are best-effort: ids that cannot be renamed are reported and skipped\n")
		cliutil.Writef(fs.Output(), "  - The output format follows the extension of --write, else the input format\n")
		cliutil.Writef(fs.Output(), "\nExit Codes:\n")
		cliutil.Writef(fs.Output(), "  0    Every selected rename was applied\n")
		cliutil.Writef(fs.Output(), "  1    Invalid input, or at least one rename failed\n")
	}

	return fs, flags
}

// HandleApply executes the apply command
func HandleApply(args []string) error {
	fs, flags := SetupApplyFlags()

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	if fs.NArg() != 1 {
		fs.Usage()
		return fmt.Errorf("apply command requires exactly one document path, or '-' for stdin")
	}
	docPath := fs.Arg(0)

	if err := options.ValidateExclusive(
		options.Source{Name: "write", Set: flags.Write != ""},
		options.Source{Name: "in-place", Set: flags.InPlace},
	); err != nil {
		return err
	}
	if flags.InPlace && docPath == StdinFilePath {
		return fmt.Errorf("--in-place cannot be used with stdin input")
	}
	if flags.Write != "" && docPath != StdinFilePath && fileutil.SameFile(flags.Write, docPath) {
		return fmt.Errorf("output file %s would overwrite input file %s; use --in-place", flags.Write, docPath)
	}

	c, scope, pc, err := flags.Rule.build()
	if err != nil {
		return err
	}
	doc, err := LoadDocument(docPath)
	if err != nil {
		return err
	}

	ctx := context.Background()
	s := bridge.NewSession(doc, c,
		bridge.WithScope(scope),
		bridge.WithConfig(pc),
		bridge.WithLogger(newLogger(flags.Rule.Debug)),
	)
	defer s.Close()
	if err := s.Load(ctx); err != nil {
		return err
	}

	entries := s.Preview()
	indices, missing := preview.Select(entries, flags.IDs)
	var failures []bridge.Failure
	for _, id := range missing {
		nf := &nkerrors.NotFoundError{ID: id, Category: c.String()}
		failures = append(failures, bridge.Failure{ID: id, Reason: nf.Error()})
	}

	if flags.DryRun {
		tbl := cliutil.NewTable(stdout, "ID", "FROM", "TO")
		for _, i := range indices {
			if e := entries[i]; e.Changed() {
				tbl.Row(e.Item.ID, e.Original, e.Processed)
			}
		}
		tbl.Flush()
		reportFailures(failures)
		return nil
	}

	res, err := s.ApplySelected(ctx, indices...)
	if err != nil {
		return err
	}
	failures = append(failures, res.Failures...)

	if err := writeDocument(doc, docPath, flags); err != nil {
		return err
	}

	if !flags.Quiet {
		cliutil.Writef(stderr, "Renamed %d %s element(s) in %s\n", res.Renamed, c, FormatDocumentPath(docPath))
		reportFailures(failures)
	}
	if len(failures) > 0 {
		return fmt.Errorf("%d rename(s) failed", len(failures))
	}
	return nil
}

func writeDocument(doc *document.Document, docPath string, flags *ApplyFlags) error {
	switch {
	case flags.InPlace:
		return doc.Save(docPath)
	case flags.Write != "":
		return doc.Save(flags.Write)
	}
	data, err := doc.Encode(doc.Format())
	if err != nil {
		return fmt.Errorf("encoding document: %w", err)
	}
	cliutil.Writeln(stdout, strings.TrimRight(string(data), "\n"))
	return nil
}

func reportFailures(failures []bridge.Failure) {
	for _, f := range failures {
		cliutil.Writef(stderr, "  failed %s: %s\n", f.ID, f.Reason)
	}
}

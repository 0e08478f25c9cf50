// Package cliutil provides output helpers for the namekit CLI.
package cliutil

import (
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"
)

// Writef writes formatted output to the writer.
// If the write fails, it logs to stderr.
func Writef(w io.Writer, format string, args ...any) {
	if _, err := fmt.Fprintf(w, format, args...); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "write error: %v\n", err)
	}
}

// Writeln writes s followed by a newline.
func Writeln(w io.Writer, s string) {
	Writef(w, "%s\n", s)
}

// Table writes tab-separated rows with aligned columns. Call Flush once all
// rows are added.
type Table struct {
	tw *tabwriter.Writer
}

// NewTable returns a Table writing to w with the given column headers.
// Headers are omitted when none are given.
func NewTable(w io.Writer, headers ...string) *Table {
	t := &Table{tw: tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)}
	if len(headers) > 0 {
		t.Row(headers...)
	}
	return t
}

// Row adds one row. Tabs and newlines inside cells are shown escaped so
// they cannot break the layout.
func (t *Table) Row(cells ...string) {
	escaped := make([]string, len(cells))
	for i, c := range cells {
		escaped[i] = cellEscaper.Replace(c)
	}
	Writef(t.tw, "%s\n", strings.Join(escaped, "\t"))
}

// Flush writes the aligned rows.
func (t *Table) Flush() {
	if err := t.tw.Flush(); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "write error: %v\n", err)
	}
}

var cellEscaper = strings.NewReplacer("\t", `\t`, "\n", `\n`, "\r", `\r`)

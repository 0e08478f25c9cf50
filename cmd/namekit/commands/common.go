// Package commands provides CLI command handlers for namekit.
package commands

import (
	"bufio"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"sort"
	"strings"

	"github.com/erraggy/namekit/document"
	"github.com/erraggy/namekit/element"
	"github.com/erraggy/namekit/internal/cliutil"
	"github.com/erraggy/namekit/pattern"
	"github.com/erraggy/namekit/preview"
	"go.yaml.in/yaml/v4"
)

// Output format constants
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// StdinFilePath is the special file path used to indicate reading from stdin.
const StdinFilePath = "-"

// Standard streams, replaced in tests.
var (
	stdin  io.Reader = os.Stdin
	stdout io.Writer = os.Stdout
	stderr io.Writer = os.Stderr
)

// ValidateOutputFormat validates an output format and returns an error if invalid.
func ValidateOutputFormat(format string) error {
	if format != FormatText && format != FormatJSON && format != FormatYAML {
		return fmt.Errorf("invalid format '%s'. Valid formats: %s, %s, %s", format, FormatText, FormatJSON, FormatYAML)
	}
	return nil
}

// OutputStructured outputs data in the specified format (json or yaml) to stdout.
// Returns an error if marshaling fails.
func OutputStructured(data any, format string) error {
	var bytes []byte
	var err error

	switch format {
	case FormatJSON:
		bytes, err = json.MarshalIndent(data, "", "  ")
	case FormatYAML:
		bytes, err = yaml.Marshal(data)
	default:
		return fmt.Errorf("invalid format for structured output: %s", format)
	}

	if err != nil {
		return fmt.Errorf("marshaling to %s: %w", format, err)
	}

	cliutil.Writeln(stdout, strings.TrimRight(string(bytes), "\n"))
	return nil
}

// FormatDocumentPath returns a display-friendly path for a design document.
// Returns "<stdin>" if the path is StdinFilePath, otherwise returns the path as-is.
func FormatDocumentPath(path string) string {
	if path == StdinFilePath {
		return "<stdin>"
	}
	return path
}

// LoadDocument reads a design document from path, or from stdin when path
// is StdinFilePath.
func LoadDocument(path string) (*document.Document, error) {
	if path != StdinFilePath {
		return document.Load(path)
	}
	data, err := io.ReadAll(stdin)
	if err != nil {
		return nil, fmt.Errorf("reading stdin: %w", err)
	}
	return document.Parse(data, document.SourceFormatUnknown)
}

// readNames returns the names given as arguments. A single "-" argument
// reads one name per line from stdin, skipping blank lines.
func readNames(args []string) ([]string, error) {
	if len(args) != 1 || args[0] != StdinFilePath {
		return args, nil
	}
	var names []string
	scanner := bufio.NewScanner(stdin)
	for scanner.Scan() {
		if line := strings.TrimRight(scanner.Text(), "\r"); strings.TrimSpace(line) != "" {
			names = append(names, line)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading stdin: %w", err)
	}
	return names, nil
}

// newLogger returns a stderr logger at debug level when debug is set, and
// at warn level otherwise. A debug logger also becomes the slog default so
// package-level logging reaches stderr too.
func newLogger(debug bool) *slog.Logger {
	level := slog.LevelWarn
	if debug {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))
	if debug {
		slog.SetDefault(logger)
	}
	return logger
}

// listFlag collects comma-separated values across repeated flags.
type listFlag []string

func (l *listFlag) String() string { return strings.Join(*l, ",") }

func (l *listFlag) Set(value string) error {
	for part := range strings.SplitSeq(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			*l = append(*l, part)
		}
	}
	return nil
}

// mapFlag collects target=format pairs across repeated flags.
type mapFlag map[string]string

func (m *mapFlag) String() string {
	if *m == nil {
		return ""
	}
	pairs := make([]string, 0, len(*m))
	for k, v := range *m {
		pairs = append(pairs, k+"="+v)
	}
	sort.Strings(pairs)
	return strings.Join(pairs, ",")
}

func (m *mapFlag) Set(value string) error {
	for part := range strings.SplitSeq(value, ",") {
		key, val, ok := strings.Cut(part, "=")
		key, val = strings.TrimSpace(key), strings.TrimSpace(val)
		if !ok || key == "" || val == "" {
			return fmt.Errorf("expected target=format, got %q", part)
		}
		if *m == nil {
			*m = make(mapFlag)
		}
		(*m)[key] = val
	}
	return nil
}

// RuleFlags are the flags shared by preview and apply that select elements
// and describe how to rename them.
type RuleFlags struct {
	Category string
	Scope    string
	Config   string
	Mode     string

	Query              string
	QueryCaseSensitive bool
	QueryRegex         bool

	Formats       mapFlag
	FormatTargets listFlag

	Find           string
	ReplaceWith    string
	CaseSensitive  bool
	Regex          bool
	ReplaceTargets listFlag

	Debug bool
}

func (r *RuleFlags) register(fs *flag.FlagSet) {
	fs.StringVar(&r.Category, "c", "", "element category: COMPONENT, STYLE or VARIABLE (required)")
	fs.StringVar(&r.Category, "category", "", "element category: COMPONENT, STYLE or VARIABLE (required)")
	fs.StringVar(&r.Scope, "scope", "CURRENT_PAGE", "component scope: CURRENT_PAGE or ALL_PAGES")
	fs.StringVar(&r.Config, "config", "", "YAML or JSON rename config; other rule flags override it")
	fs.StringVar(&r.Mode, "m", "", "rename mode: format or replace (default: format)")
	fs.StringVar(&r.Mode, "mode", "", "rename mode: format or replace (default: format)")
	fs.StringVar(&r.Query, "q", "", "only include elements whose name matches this term")
	fs.StringVar(&r.Query, "query", "", "only include elements whose name matches this term")
	fs.BoolVar(&r.QueryCaseSensitive, "query-case-sensitive", false, "match the query case-sensitively")
	fs.BoolVar(&r.QueryRegex, "query-regex", false, "treat the query as a regular expression")
	fs.Var(&r.Formats, "f", "case format of a target as target=format (repeatable)")
	fs.Var(&r.Formats, "format", "case format of a target as target=format (repeatable)")
	fs.Var(&r.FormatTargets, "targets", "comma-separated targets converted in format mode")
	fs.StringVar(&r.Find, "find", "", "replace mode: term to search for")
	fs.StringVar(&r.ReplaceWith, "replace", "", "replace mode: replacement text ($1 and $<name> refer to regex groups)")
	fs.BoolVar(&r.CaseSensitive, "case-sensitive", false, "replace mode: match the find term case-sensitively")
	fs.BoolVar(&r.Regex, "regex", false, "replace mode: treat the find term as a regular expression")
	fs.Var(&r.ReplaceTargets, "replace-targets", "comma-separated targets rewritten in replace mode")
	fs.BoolVar(&r.Debug, "debug", false, "log debug details to stderr")
}

// build resolves the flags into a category, scope and preview config.
func (r *RuleFlags) build() (element.Category, element.Scope, preview.Config, error) {
	if r.Category == "" {
		return 0, 0, preview.Config{}, fmt.Errorf("category is required (use -c or --category)")
	}
	c, err := element.ParseCategory(r.Category)
	if err != nil {
		return 0, 0, preview.Config{}, err
	}
	scope, err := element.ParseScope(r.Scope)
	if err != nil {
		return 0, 0, preview.Config{}, err
	}

	pc := preview.DefaultConfig(c)
	if r.Config != "" {
		if pc, err = preview.LoadConfig(r.Config, c); err != nil {
			return 0, 0, preview.Config{}, err
		}
	}
	err = pc.Apply(preview.Overrides{
		Mode:           r.Mode,
		Query:          r.Query,
		Filter:         pattern.Options{CaseSensitive: r.QueryCaseSensitive, UseRegex: r.QueryRegex},
		Formats:        r.Formats,
		FormatTargets:  r.FormatTargets,
		ReplaceFrom:    r.Find,
		ReplaceTo:      r.ReplaceWith,
		Replace:        pattern.Options{CaseSensitive: r.CaseSensitive, UseRegex: r.Regex},
		ReplaceTargets: r.ReplaceTargets,
	})
	if err != nil {
		return 0, 0, preview.Config{}, err
	}
	return c, scope, pc, nil
}

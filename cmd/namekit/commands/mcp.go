package commands

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/erraggy/namekit/internal/cliutil"
	"github.com/erraggy/namekit/internal/mcpserver"
)

// MCPFlags contains flags for the mcp command
type MCPFlags struct {
	Debug bool
}

// SetupMCPFlags creates and configures a FlagSet for the mcp command.
// Returns the FlagSet and an MCPFlags struct with bound flag variables.
func SetupMCPFlags() (*flag.FlagSet, *MCPFlags) {
	fs := flag.NewFlagSet("mcp", flag.ContinueOnError)
	flags := &MCPFlags{}

	fs.BoolVar(&flags.Debug, "debug", false, "log debug details to stderr")

	fs.Usage = func() {
		cliutil.Writef(fs.Output(), "Usage: namekit mcp [flags]\n\n")
		cliutil.Writef(fs.Output(), "Serve the namekit tools over the Model Context Protocol on stdio.\n\n")
		cliutil.Writef(fs.Output(), "Flags:\n")
		fs.PrintDefaults()
		cliutil.Writef(fs.Output(), "\nTools:\n")
		cliutil.Writef(fs.Output(), "  convert_case, replace_text, match_name, preview, apply\n")
		cliutil.Writef(fs.Output(), "\nEnvironment:\n")
		cliutil.Writef(fs.Output(), "  NAMEKIT_PREVIEW_LIMIT     default page size of preview results (100)\n")
		cliutil.Writef(fs.Output(), "  NAMEKIT_MAX_LIMIT         largest page size a client may request (1000)\n")
		cliutil.Writef(fs.Output(), "  NAMEKIT_DEFAULT_SCOPE     CURRENT_PAGE or ALL_PAGES (CURRENT_PAGE)\n")
		cliutil.Writef(fs.Output(), "  NAMEKIT_DRY_RUN           make apply report changes without writing (false)\n")
		cliutil.Writef(fs.Output(), "  NAMEKIT_MAX_INLINE_SIZE   maximum inline document size in bytes (10485760)\n")
	}

	return fs, flags
}

// HandleMCP executes the mcp command. It blocks until the client
// disconnects or the process is interrupted.
func HandleMCP(args []string) error {
	fs, flags := SetupMCPFlags()

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}
	if fs.NArg() != 0 {
		fs.Usage()
		return fmt.Errorf("mcp command takes no arguments")
	}

	// stdout carries the protocol; logs go to stderr.
	slog.SetDefault(newLogger(flags.Debug))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := mcpserver.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return fmt.Errorf("mcp server: %w", err)
	}
	return nil
}

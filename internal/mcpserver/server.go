// Package mcpserver implements an MCP (Model Context Protocol) server
// that exposes namekit capabilities as MCP tools over stdio.
package mcpserver

import (
	"context"
	"regexp"

	"github.com/erraggy/namekit"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

const serverInstructions = `namekit MCP server: batch-renames design elements (components, styles, variables) by case conversion or find/replace, with a preview before anything is written.

Workflow: call preview with a design document and a rule to see original and processed names, then apply with the same rule. convert_case, replace_text and match_name work on plain name lists without a document.

Configuration: defaults are configurable via NAMEKIT_* environment variables set in your MCP client config.

Key settings:
- NAMEKIT_PREVIEW_LIMIT (default: 100): default number of preview entries returned
- NAMEKIT_MAX_LIMIT (default: 1000): upper bound for any limit
- NAMEKIT_DEFAULT_SCOPE (default: CURRENT_PAGE): component search scope when a call names none
- NAMEKIT_DRY_RUN (default: false): make apply report changes without writing them
- NAMEKIT_MAX_INLINE_SIZE (default: 10MiB): maximum inline document size`

// Run starts the MCP server over stdio and blocks until the client disconnects
// or the context is cancelled.
func Run(ctx context.Context) error {
	server := mcp.NewServer(
		&mcp.Implementation{Name: "namekit", Version: namekit.Version()},
		&mcp.ServerOptions{
			Instructions: serverInstructions,
		},
	)
	registerAllTools(server)
	return server.Run(ctx, &mcp.StdioTransport{})
}

func registerAllTools(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "convert_case",
		Description: "Convert names to a naming convention: camelCase, snake_case, kebab-case, PascalCase, Title Case or UPPER_CASE. Omit format to get every convention for each name.",
	}, handleConvertCase)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "replace_text",
		Description: "Apply a find/replace rule to names. Literal by default; set regex=true for regular expressions with $1 / $<name> group references. An invalid regular expression leaves names unchanged and is reported as a warning.",
	}, handleReplaceText)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "match_name",
		Description: "Filter names by a query, as the preview filter does. Case-insensitive substring match by default; set regex=true for regular expressions. A malformed regular expression falls back to a substring match.",
	}, handleMatchName)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "preview",
		Description: "Preview a batch rename over a design document. Lists each element of the category with its original and processed name. Use changed_only=true to see only elements that would be renamed. Use offset/limit to paginate. Default limit is configurable via NAMEKIT_PREVIEW_LIMIT.",
	}, handlePreview)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "apply",
		Description: "Apply a batch rename to a design document. Renames every changed element, or only the given ids. Unknown ids are reported as failures without stopping the batch. Use dry_run=true to list the renames without applying them, output to write the renamed document to a file, or in_place=true to overwrite the input file.",
	}, handleApply)
}

// paginate applies offset/limit pagination to a slice, returning the
// requested page. A non-positive limit defaults to cfg.PreviewLimit.
func paginate[T any](items []T, offset, limit int) []T {
	if limit <= 0 {
		limit = cfg.PreviewLimit
	}
	if limit > cfg.MaxLimit {
		limit = cfg.MaxLimit
	}
	if offset < 0 || offset >= len(items) {
		return nil
	}
	end := offset + limit
	if end < offset || end > len(items) { // overflow or beyond slice
		end = len(items)
	}
	return items[offset:end]
}

// makeSlice returns nil when n is 0 (preserving omitempty JSON semantics),
// otherwise returns make([]T, 0, n) for pre-allocated appending.
func makeSlice[T any](n int) []T {
	if n == 0 {
		return nil
	}
	return make([]T, 0, n)
}

// sanitizeError strips absolute filesystem paths from error messages
// to prevent leaking internal directory structure to MCP clients.
var pathPattern = regexp.MustCompile(`(?:/(?:home|tmp|var|Users|etc|opt|usr|private|root|mnt|srv|run|snap|nix)[a-zA-Z0-9._/-]*)`)

func sanitizeError(err error) string {
	if err == nil {
		return ""
	}
	return pathPattern.ReplaceAllString(err.Error(), "<path>")
}

// errResult creates an MCP error result from an error.
func errResult(err error) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		IsError: true,
		Content: []mcp.Content{&mcp.TextContent{Text: sanitizeError(err)}},
	}
}

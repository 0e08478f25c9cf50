package mcpserver

import (
	"context"

	"github.com/erraggy/namekit/pattern"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

type matchNameInput struct {
	Names         []string `json:"names"                    jsonschema:"Names to filter"`
	Query         string   `json:"query,omitempty"          jsonschema:"Filter term. An empty query matches every name"`
	CaseSensitive bool     `json:"case_sensitive,omitempty" jsonschema:"Match case-sensitively"`
	Regex         bool     `json:"regex,omitempty"          jsonschema:"Treat the query as a regular expression"`
}

type matchNameOutput struct {
	Total   int      `json:"total"`
	Matched int      `json:"matched"`
	Matches []string `json:"matches,omitempty"`
}

func handleMatchName(_ context.Context, _ *mcp.CallToolRequest, input matchNameInput) (*mcp.CallToolResult, matchNameOutput, error) {
	match := pattern.Options{CaseSensitive: input.CaseSensitive, UseRegex: input.Regex}.Matcher(input.Query)

	output := matchNameOutput{Total: len(input.Names)}
	for _, name := range input.Names {
		if match(name) {
			output.Matches = append(output.Matches, name)
		}
	}
	output.Matched = len(output.Matches)
	return nil, output, nil
}

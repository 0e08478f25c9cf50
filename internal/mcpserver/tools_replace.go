package mcpserver

import (
	"context"
	"fmt"

	"github.com/erraggy/namekit/pattern"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

type replaceTextInput struct {
	Names         []string `json:"names"                    jsonschema:"Names to rewrite"`
	Find          string   `json:"find"                     jsonschema:"Term to search for. An empty term leaves names unchanged"`
	ReplaceWith   string   `json:"replace_with,omitempty"   jsonschema:"Replacement text. With regex\\, $1 and $<name> refer to groups and $$ is a literal dollar"`
	CaseSensitive bool     `json:"case_sensitive,omitempty" jsonschema:"Match the term case-sensitively"`
	Regex         bool     `json:"regex,omitempty"          jsonschema:"Treat the term as a regular expression"`
}

type replacedName struct {
	Original string `json:"original"`
	Result   string `json:"result"`
	Changed  bool   `json:"changed"`
}

type replaceTextOutput struct {
	Changed int            `json:"changed"`
	Names   []replacedName `json:"names,omitempty"`
	Warning string         `json:"warning,omitempty"`
}

func handleReplaceText(_ context.Context, _ *mcp.CallToolRequest, input replaceTextInput) (*mcp.CallToolResult, replaceTextOutput, error) {
	if len(input.Names) == 0 {
		return errResult(fmt.Errorf("names must contain at least one name")), replaceTextOutput{}, nil
	}

	opts := pattern.Options{CaseSensitive: input.CaseSensitive, UseRegex: input.Regex}

	var output replaceTextOutput
	if input.Find != "" {
		if _, err := pattern.Compile(input.Find, opts); err != nil {
			output.Warning = sanitizeError(err) + "; names left unchanged"
		}
	}

	replace := opts.Replacer(input.Find, input.ReplaceWith)
	output.Names = makeSlice[replacedName](len(input.Names))
	for _, name := range input.Names {
		r := replacedName{Original: name, Result: replace(name)}
		r.Changed = r.Result != name
		if r.Changed {
			output.Changed++
		}
		output.Names = append(output.Names, r)
	}
	return nil, output, nil
}

package mcpserver

import (
	"context"
	"fmt"

	"github.com/erraggy/namekit/casing"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

type convertCaseInput struct {
	Names  []string `json:"names"            jsonschema:"Names to convert"`
	Format string   `json:"format,omitempty" jsonschema:"Target convention: camel\\, snake\\, kebab\\, pascal\\, title or upper. Omit to get all of them"`
}

type convertedName struct {
	Original   string            `json:"original"`
	Converted  string            `json:"converted,omitempty"`
	Variations map[string]string `json:"variations,omitempty"`
}

type convertCaseOutput struct {
	Format string          `json:"format,omitempty"`
	Names  []convertedName `json:"names,omitempty"`
}

func handleConvertCase(_ context.Context, _ *mcp.CallToolRequest, input convertCaseInput) (*mcp.CallToolResult, convertCaseOutput, error) {
	if len(input.Names) == 0 {
		return errResult(fmt.Errorf("names must contain at least one name")), convertCaseOutput{}, nil
	}

	var output convertCaseOutput
	output.Names = makeSlice[convertedName](len(input.Names))

	if input.Format == "" {
		for _, name := range input.Names {
			variations := make(map[string]string, len(casing.Formats()))
			for _, f := range casing.Formats() {
				variations[f.String()] = casing.Convert(name, f)
			}
			output.Names = append(output.Names, convertedName{Original: name, Variations: variations})
		}
		return nil, output, nil
	}

	f, err := casing.ParseFormat(input.Format)
	if err != nil {
		return errResult(err), convertCaseOutput{}, nil
	}
	output.Format = f.String()
	for _, name := range input.Names {
		output.Names = append(output.Names, convertedName{Original: name, Converted: casing.Convert(name, f)})
	}
	return nil, output, nil
}

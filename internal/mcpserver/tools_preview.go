package mcpserver

import (
	"context"

	"github.com/erraggy/namekit/bridge"
	"github.com/erraggy/namekit/preview"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

type previewInput struct {
	Document    documentInput `json:"document"               jsonschema:"The design document to preview renames for"`
	Rule        ruleInput     `json:"rule"                   jsonschema:"Which elements to rename and how"`
	ChangedOnly bool          `json:"changed_only,omitempty" jsonschema:"Only return entries whose name would change"`
	Offset      int           `json:"offset,omitempty"       jsonschema:"Skip the first N entries (for pagination)"`
	Limit       int           `json:"limit,omitempty"        jsonschema:"Maximum number of entries to return (default 100)"`
}

type previewEntry struct {
	ID        string `json:"id"`
	Original  string `json:"original"`
	Processed string `json:"processed"`
	Changed   bool   `json:"changed"`
	Target    string `json:"target"`
	Subtype   string `json:"subtype,omitempty"`
	Location  string `json:"location,omitempty"`
}

type previewOutput struct {
	Category string         `json:"category"`
	Scope    string         `json:"scope"`
	Mode     string         `json:"mode"`
	Total    int            `json:"total"`
	Changed  int            `json:"changed"`
	Returned int            `json:"returned"`
	Entries  []previewEntry `json:"entries,omitempty"`
}

func handlePreview(ctx context.Context, _ *mcp.CallToolRequest, input previewInput) (*mcp.CallToolResult, previewOutput, error) {
	doc, err := input.Document.resolve()
	if err != nil {
		return errResult(err), previewOutput{}, nil
	}
	c, scope, pc, err := input.Rule.build()
	if err != nil {
		return errResult(err), previewOutput{}, nil
	}

	s := bridge.NewSession(doc, c, bridge.WithScope(scope), bridge.WithConfig(pc))
	if err := s.Load(ctx); err != nil {
		return errResult(err), previewOutput{}, nil
	}
	entries := s.Preview()
	summary := preview.Summarize(entries)

	output := previewOutput{
		Category: c.String(),
		Scope:    scope.String(),
		Mode:     pc.Mode.String(),
		Total:    summary.Total,
		Changed:  summary.Changed,
	}

	listed := makeSlice[previewEntry](len(entries))
	for _, e := range entries {
		if input.ChangedOnly && !e.Changed() {
			continue
		}
		listed = append(listed, toPreviewEntry(e))
	}
	output.Entries = paginate(listed, input.Offset, input.Limit)
	output.Returned = len(output.Entries)
	return nil, output, nil
}

func toPreviewEntry(e preview.Entry) previewEntry {
	return previewEntry{
		ID:        e.Item.ID,
		Original:  e.Original,
		Processed: e.Processed,
		Changed:   e.Changed(),
		Target:    e.Target.String(),
		Subtype:   e.Item.Subtype,
		Location:  e.Item.Location,
	}
}

package mcpserver

import (
	"context"
	"fmt"

	"github.com/erraggy/namekit/bridge"
	"github.com/erraggy/namekit/internal/options"
	"github.com/erraggy/namekit/nkerrors"
	"github.com/erraggy/namekit/preview"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

type applyInput struct {
	Document        documentInput `json:"document"                   jsonschema:"The design document to rename elements in"`
	Rule            ruleInput     `json:"rule"                       jsonschema:"Which elements to rename and how"`
	IDs             []string      `json:"ids,omitempty"              jsonschema:"Only rename these element ids. Omit to rename every changed element"`
	DryRun          *bool         `json:"dry_run,omitempty"          jsonschema:"List the renames without applying them. Default configurable via NAMEKIT_DRY_RUN"`
	Output          string        `json:"output,omitempty"           jsonschema:"File path to write the renamed document to"`
	InPlace         bool          `json:"in_place,omitempty"         jsonschema:"Overwrite the input file with the renamed document (file input only)"`
	IncludeDocument bool          `json:"include_document,omitempty" jsonschema:"Include the renamed document in the output"`
}

type applyChange struct {
	ID   string `json:"id"`
	From string `json:"from"`
	To   string `json:"to"`
}

type applyOutput struct {
	DryRun    bool             `json:"dry_run"`
	Renamed   int              `json:"renamed"`
	Changes   []applyChange    `json:"changes,omitempty"`
	Failures  []bridge.Failure `json:"failures,omitempty"`
	WrittenTo string           `json:"written_to,omitempty"`
	Document  string           `json:"document,omitempty"`
}

func handleApply(ctx context.Context, _ *mcp.CallToolRequest, input applyInput) (*mcp.CallToolResult, applyOutput, error) {
	if input.InPlace && input.Document.File == "" {
		return errResult(fmt.Errorf("in_place requires file input")), applyOutput{}, nil
	}
	if err := options.ValidateExclusive(
		options.Source{Name: "in_place", Set: input.InPlace},
		options.Source{Name: "output", Set: input.Output != ""},
	); err != nil {
		return errResult(err), applyOutput{}, nil
	}

	doc, err := input.Document.resolve()
	if err != nil {
		return errResult(err), applyOutput{}, nil
	}
	c, scope, pc, err := input.Rule.build()
	if err != nil {
		return errResult(err), applyOutput{}, nil
	}

	s := bridge.NewSession(doc, c, bridge.WithScope(scope), bridge.WithConfig(pc))
	if err := s.Load(ctx); err != nil {
		return errResult(err), applyOutput{}, nil
	}

	output := applyOutput{DryRun: cfg.DryRun}
	if input.DryRun != nil {
		output.DryRun = *input.DryRun
	}

	entries := s.Preview()
	indices, missing := preview.Select(entries, input.IDs)
	for _, id := range missing {
		nf := &nkerrors.NotFoundError{ID: id, Category: c.String()}
		output.Failures = append(output.Failures, bridge.Failure{ID: id, Reason: nf.Error()})
	}
	output.Changes = makeSlice[applyChange](len(indices))
	for _, i := range indices {
		if e := entries[i]; e.Changed() {
			output.Changes = append(output.Changes, applyChange{ID: e.Item.ID, From: e.Original, To: e.Processed})
		}
	}

	if output.DryRun {
		return nil, output, nil
	}

	res, err := s.ApplySelected(ctx, indices...)
	if err != nil {
		return errResult(err), applyOutput{}, nil
	}
	output.Renamed = res.Renamed
	output.Failures = append(output.Failures, res.Failures...)

	target := input.Output
	if input.InPlace {
		target = input.Document.File
	}
	if target != "" {
		if err := doc.Save(target); err != nil {
			return errResult(err), applyOutput{}, nil
		}
		output.WrittenTo = target
	}
	if input.IncludeDocument {
		data, err := doc.Encode(doc.Format())
		if err != nil {
			return errResult(err), applyOutput{}, nil
		}
		output.Document = string(data)
	}
	return nil, output, nil
}

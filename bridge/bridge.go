// Package bridge connects the preview pipeline to a host application.
//
// Import path: github.com/erraggy/namekit/bridge
//
// A host supplies items through a [Source] and applies renames through a
// [Sink]. Both are round-trips that may be slow or fail; the pure preview
// computation never sees those failures. [Session] holds the state a rename
// workflow needs (category, scope, config, fetched items) and drives the
// fetch → preview → commit → refetch cycle.
package bridge

import (
	"context"

	"github.com/erraggy/namekit/element"
	"github.com/erraggy/namekit/preview"
)

// Source supplies the renameable items of a category, in host order.
type Source interface {
	Items(ctx context.Context, c element.Category, scope element.Scope) ([]element.Item, error)
}

// Sink applies renames. Implementations rename best-effort: an id that
// fails is reported in Result.Failures and does not stop the batch. The
// error return is reserved for failures of the whole round-trip.
type Sink interface {
	Rename(ctx context.Context, c element.Category, scope element.Scope, changes []preview.Change) (Result, error)
}

// Host is a Source and a Sink.
type Host interface {
	Source
	Sink
}

// Failure records one rename that the sink could not apply.
type Failure struct {
	ID     string `yaml:"id" json:"id"`
	Reason string `yaml:"reason" json:"reason"`
}

// Result reports the outcome of a rename batch. The count is informational.
type Result struct {
	Renamed  int       `yaml:"renamed" json:"renamed"`
	Failures []Failure `yaml:"failures,omitempty" json:"failures,omitempty"`
}

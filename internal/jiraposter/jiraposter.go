// Package jiraposter defines the JIRA posting contract referenced in spec
// §6.1's jira_options request field, adapted from codegates'
// integrations/jira_integration.py. It is kept as an interface only; no
// concrete implementation ships in core, consistent with spec §1's explicit
// exclusion of issue-tracker integration from the engine's scope.
package jiraposter

import (
	"context"

	"github.com/hardgate/scanengine/internal/model"
)

// Options is forwarded verbatim from the scan request body; the core never
// interprets its contents.
type Options map[string]any

// Result is what a Poster reports back about the issue it created or
// updated. Nothing in the service calls Post, and the scan status response
// carries no Result.
type Result struct {
	IssueKey string
	IssueURL string
	Action   string
}

// Poster files or updates a tracking issue summarizing a completed scan.
type Poster interface {
	Post(ctx context.Context, result *model.ValidationResult, opts Options) (*Result, error)
}

// NoOp satisfies Poster without contacting any external system and returns
// a nil Result; it is the Poster cmd/hardgate-scand wires in.
type NoOp struct{}

func (NoOp) Post(context.Context, *model.ValidationResult, Options) (*Result, error) {
	return nil, nil
}

package blockgen

import (
	"context"

	"github.com/goliatone/go-blockgen/pkg/orchestrator"
)

// Request mirrors the orchestrator request; alias exported via the root
// package for convenience.
type Request = orchestrator.Request

// NewOrchestrator exposes the orchestrator constructor from the top-level
// module.
func NewOrchestrator(options ...orchestrator.Option) *orchestrator.Orchestrator {
	return orchestrator.New(options...)
}

// GenerateHTML parses the codeblock, fills the inline template, and returns
// the final markup. It is the simplest entry point for callers that just
// want output.
func GenerateHTML(ctx context.Context, block, templateText string, options ...orchestrator.Option) ([]byte, error) {
	gen := orchestrator.New(options...)
	return gen.Generate(ctx, orchestrator.Request{
		Block:    block,
		Template: templateText,
	})
}

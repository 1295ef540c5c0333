package llmsfull

import "context"

// Rewriter restructures extracted documentation text for LLM consumption.
// Rewriting is a best-effort enhancement: callers must treat any error as
// non-fatal and fall back to the original text (fail open).
type Rewriter interface {
	Rewrite(ctx context.Context, text string) (string, error)
}

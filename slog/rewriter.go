package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/llmsfull"
)

// Ensure LoggingRewriter implements llmsfull.Rewriter.
var _ llmsfull.Rewriter = (*LoggingRewriter)(nil)

// LoggingRewriter wraps a Rewriter with per-call logging. Rewrite failures
// are logged at warn level since the pipeline falls back to the original
// text rather than failing the page.
type LoggingRewriter struct {
	next   llmsfull.Rewriter
	logger *slog.Logger
}

// NewLoggingRewriter creates a new LoggingRewriter.
func NewLoggingRewriter(next llmsfull.Rewriter, logger *slog.Logger) *LoggingRewriter {
	return &LoggingRewriter{next: next, logger: logger}
}

// Rewrite delegates to the wrapped rewriter and logs the operation.
func (r *LoggingRewriter) Rewrite(ctx context.Context, text string) (string, error) {
	begin := time.Now()
	rewritten, err := r.next.Rewrite(ctx, text)
	if err != nil {
		r.logger.Warn("rewrite failed, keeping original text",
			"in_bytes", len(text),
			"duration", time.Since(begin),
			"err", err,
		)
		return "", err
	}
	r.logger.Info("rewrite",
		"in_bytes", len(text),
		"out_bytes", len(rewritten),
		"duration", time.Since(begin),
	)
	return rewritten, nil
}

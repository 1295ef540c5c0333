package mock

import (
	"context"

	"github.com/fwojciec/llmsfull"
)

var _ llmsfull.Rewriter = (*Rewriter)(nil)

// Rewriter is a mock implementation of llmsfull.Rewriter.
type Rewriter struct {
	RewriteFn func(ctx context.Context, text string) (string, error)
}

func (r *Rewriter) Rewrite(ctx context.Context, text string) (string, error) {
	return r.RewriteFn(ctx, text)
}

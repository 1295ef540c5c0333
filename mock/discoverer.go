package mock

import (
	"context"

	"github.com/fwojciec/llmsfull"
)

var _ llmsfull.LinkDiscoverer = (*LinkDiscoverer)(nil)

// LinkDiscoverer is a mock implementation of llmsfull.LinkDiscoverer.
type LinkDiscoverer struct {
	DiscoverLinksFn func(ctx context.Context, hubURL string) ([]string, error)
}

func (d *LinkDiscoverer) DiscoverLinks(ctx context.Context, hubURL string) ([]string, error) {
	return d.DiscoverLinksFn(ctx, hubURL)
}

var _ llmsfull.URLSource = (*URLSource)(nil)

// URLSource is a mock implementation of llmsfull.URLSource.
type URLSource struct {
	ResolveFn func(ctx context.Context, baseURL, filterPath string) ([]string, error)
}

func (s *URLSource) Resolve(ctx context.Context, baseURL, filterPath string) ([]string, error) {
	return s.ResolveFn(ctx, baseURL, filterPath)
}

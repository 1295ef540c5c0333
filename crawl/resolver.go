package crawl

import (
	"context"

	"github.com/fwojciec/llmsfull"
)

// Ensure Resolver implements llmsfull.URLSource at compile time.
var _ llmsfull.URLSource = (*Resolver)(nil)

// Resolver turns raw hub-page discovery into the ordered URL set of a
// corpus build: filter by path substring, sort by (segment count,
// lexicographic), persist. A persisted list short-circuits discovery, so
// resolution runs at most once per (baseURL, filterPath) per cache
// lifetime.
type Resolver struct {
	Discoverer llmsfull.LinkDiscoverer
	Lists      llmsfull.URLListStore

	// HubURL overrides where links are discovered from.
	// Defaults to the base URL itself.
	HubURL string
}

// Resolve returns the ordered URL list for (baseURL, filterPath).
// An empty list is a valid terminal outcome and is persisted like any
// other result.
func (r *Resolver) Resolve(ctx context.Context, baseURL, filterPath string) ([]string, error) {
	urls, err := r.Lists.Load(ctx, baseURL, filterPath)
	if err == nil {
		return urls, nil
	}
	if llmsfull.ErrorCode(err) != llmsfull.ENOTFOUND {
		return nil, err
	}

	hub := r.HubURL
	if hub == "" {
		hub = baseURL
	}

	discovered, err := r.Discoverer.DiscoverLinks(ctx, hub)
	if err != nil {
		return nil, err
	}

	resolved := llmsfull.SortURLs(llmsfull.FilterURLs(discovered, filterPath))

	if err := r.Lists.Save(ctx, baseURL, filterPath, resolved); err != nil {
		return nil, err
	}

	return resolved, nil
}

// Package crawl orchestrates corpus builds: hub-page link discovery,
// URL set resolution, and the sequential fetch-extract-rewrite pipeline.
package crawl

import (
	"context"
	"fmt"

	"github.com/fwojciec/llmsfull"
	"github.com/fwojciec/llmsfull/goquery"
)

// Ensure Discoverer implements llmsfull.LinkDiscoverer at compile time.
var _ llmsfull.LinkDiscoverer = (*Discoverer)(nil)

// Discoverer enumerates same-origin links visible on a single hub page.
// It renders the hub via the Fetcher (the settle delay applies) and keeps
// every deduplicated link under BaseURL. There is no recursion: links on
// pages other than the hub are never followed.
type Discoverer struct {
	Fetcher llmsfull.Fetcher
	BaseURL string
}

// DiscoverLinks renders the hub URL and returns the deduplicated set of
// absolute URLs prefixed by the base origin. A render failure propagates:
// without the hub page no URL list can be built.
func (d *Discoverer) DiscoverLinks(ctx context.Context, hubURL string) ([]string, error) {
	html, err := d.Fetcher.Fetch(ctx, hubURL)
	if err != nil {
		return nil, fmt.Errorf("rendering hub page %s: %w", hubURL, err)
	}

	return goquery.ExtractHubLinks(html, hubURL, d.BaseURL)
}

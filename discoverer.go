package llmsfull

import "context"

// LinkDiscoverer enumerates same-origin hyperlinks visible on a hub page.
// Only the single hub page is inspected; discovery never recurses.
type LinkDiscoverer interface {
	// DiscoverLinks renders the hub URL and returns the deduplicated set
	// of absolute URLs that begin with the configured base origin.
	// A render failure propagates; no URL list can be built without the hub.
	DiscoverLinks(ctx context.Context, hubURL string) ([]string, error)
}

// URLSource resolves the ordered sequence of page URLs for a corpus build.
// Resolution is idempotent across invocations for the same
// (baseURL, filterPath) pair because the result is persisted.
type URLSource interface {
	Resolve(ctx context.Context, baseURL, filterPath string) ([]string, error)
}

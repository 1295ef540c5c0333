package llmsfull

import "context"

// FetchTextFunc produces the extracted text for a URL on a cache miss.
type FetchTextFunc func(ctx context.Context, url string) (string, error)

// PageCache is a content-addressable store mapping a URL to previously
// extracted plain text. Keys are derived from a hash of the URL; the URL
// string is used verbatim, with no canonicalization.
type PageCache interface {
	// GetOrFetch returns the cached text for url if present. Otherwise it
	// invokes fetch and persists the result, but only when non-empty:
	// failed or empty fetches are never cached and will be retried on the
	// next run. Entries never expire.
	GetOrFetch(ctx context.Context, url string, fetch FetchTextFunc) (string, error)
}

// URLListStore persists resolved URL lists keyed by (baseURL, filterPath).
// A persisted list is immutable for the lifetime of the cache directory.
type URLListStore interface {
	// Load returns the persisted list for the key.
	// Returns ENOTFOUND if no list has been persisted.
	Load(ctx context.Context, baseURL, filterPath string) ([]string, error)

	// Save persists the list for the key. An empty list is a valid value.
	Save(ctx context.Context, baseURL, filterPath string, urls []string) error
}

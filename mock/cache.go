package mock

import (
	"context"

	"github.com/fwojciec/llmsfull"
)

var _ llmsfull.PageCache = (*PageCache)(nil)

// PageCache is a mock implementation of llmsfull.PageCache.
type PageCache struct {
	GetOrFetchFn func(ctx context.Context, url string, fetch llmsfull.FetchTextFunc) (string, error)
}

func (c *PageCache) GetOrFetch(ctx context.Context, url string, fetch llmsfull.FetchTextFunc) (string, error) {
	return c.GetOrFetchFn(ctx, url, fetch)
}

// PassthroughPageCache is a PageCache that always misses and never
// persists, invoking the fetch function on every call.
func PassthroughPageCache() *PageCache {
	return &PageCache{
		GetOrFetchFn: func(ctx context.Context, url string, fetch llmsfull.FetchTextFunc) (string, error) {
			return fetch(ctx, url)
		},
	}
}

var _ llmsfull.URLListStore = (*URLListStore)(nil)

// URLListStore is a mock implementation of llmsfull.URLListStore.
type URLListStore struct {
	LoadFn func(ctx context.Context, baseURL, filterPath string) ([]string, error)
	SaveFn func(ctx context.Context, baseURL, filterPath string, urls []string) error
}

func (s *URLListStore) Load(ctx context.Context, baseURL, filterPath string) ([]string, error) {
	return s.LoadFn(ctx, baseURL, filterPath)
}

func (s *URLListStore) Save(ctx context.Context, baseURL, filterPath string, urls []string) error {
	return s.SaveFn(ctx, baseURL, filterPath, urls)
}

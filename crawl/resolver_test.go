package crawl_test

import (
	"context"
	"errors"
	"testing"

	"github.com/fwojciec/llmsfull"
	"github.com/fwojciec/llmsfull/crawl"
	"github.com/fwojciec/llmsfull/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// memoryListStore is an in-memory URLListStore for resolver tests.
type memoryListStore struct {
	lists map[string][]string
}

func newMemoryListStore() *memoryListStore {
	return &memoryListStore{lists: make(map[string][]string)}
}

func (s *memoryListStore) Load(ctx context.Context, baseURL, filterPath string) ([]string, error) {
	urls, ok := s.lists[baseURL+"\x00"+filterPath]
	if !ok {
		return nil, llmsfull.Errorf(llmsfull.ENOTFOUND, "no persisted URL list")
	}
	return urls, nil
}

func (s *memoryListStore) Save(ctx context.Context, baseURL, filterPath string, urls []string) error {
	s.lists[baseURL+"\x00"+filterPath] = urls
	return nil
}

func TestResolver_Resolve(t *testing.T) {
	t.Parallel()

	t.Run("filters, orders, and persists the discovered set", func(t *testing.T) {
		t.Parallel()

		discoverer := &mock.LinkDiscoverer{
			DiscoverLinksFn: func(ctx context.Context, hubURL string) ([]string, error) {
				return []string{
					"https://example.com/docs/guide/a/b",
					"https://example.com/docs/other",
					"https://example.com/docs/guide/intro",
				}, nil
			},
		}
		resolver := &crawl.Resolver{Discoverer: discoverer, Lists: newMemoryListStore()}

		urls, err := resolver.Resolve(context.Background(), "https://example.com", "guide")

		require.NoError(t, err)
		assert.Equal(t, []string{
			"https://example.com/docs/guide/intro",
			"https://example.com/docs/guide/a/b",
		}, urls, "intro has fewer path segments and sorts first; other is excluded")
	})

	t.Run("persisted list short-circuits discovery", func(t *testing.T) {
		t.Parallel()

		calls := 0
		discoverer := &mock.LinkDiscoverer{
			DiscoverLinksFn: func(ctx context.Context, hubURL string) ([]string, error) {
				calls++
				return []string{"https://example.com/docs/live"}, nil
			},
		}
		resolver := &crawl.Resolver{Discoverer: discoverer, Lists: newMemoryListStore()}
		ctx := context.Background()

		first, err := resolver.Resolve(ctx, "https://example.com", "")
		require.NoError(t, err)

		second, err := resolver.Resolve(ctx, "https://example.com", "")
		require.NoError(t, err)

		assert.Equal(t, first, second)
		assert.Equal(t, 1, calls, "discovery must run at most once per cache lifetime")
	})

	t.Run("persisted list wins even when live discovery would differ", func(t *testing.T) {
		t.Parallel()

		lists := newMemoryListStore()
		require.NoError(t, lists.Save(context.Background(), "https://example.com", "guide",
			[]string{"https://example.com/docs/guide/cached"}))

		discoverer := &mock.LinkDiscoverer{
			DiscoverLinksFn: func(ctx context.Context, hubURL string) ([]string, error) {
				t.Fatal("discovery must not run when a list is persisted")
				return nil, nil
			},
		}
		resolver := &crawl.Resolver{Discoverer: discoverer, Lists: lists}

		urls, err := resolver.Resolve(context.Background(), "https://example.com", "guide")

		require.NoError(t, err)
		assert.Equal(t, []string{"https://example.com/docs/guide/cached"}, urls)
	})

	t.Run("empty filter keeps every discovered URL", func(t *testing.T) {
		t.Parallel()

		discoverer := &mock.LinkDiscoverer{
			DiscoverLinksFn: func(ctx context.Context, hubURL string) ([]string, error) {
				return []string{
					"https://example.com/docs/b",
					"https://example.com/docs/a",
				}, nil
			},
		}
		resolver := &crawl.Resolver{Discoverer: discoverer, Lists: newMemoryListStore()}

		urls, err := resolver.Resolve(context.Background(), "https://example.com", "")

		require.NoError(t, err)
		assert.Equal(t, []string{
			"https://example.com/docs/a",
			"https://example.com/docs/b",
		}, urls)
	})

	t.Run("empty resolved list is valid and persisted", func(t *testing.T) {
		t.Parallel()

		calls := 0
		discoverer := &mock.LinkDiscoverer{
			DiscoverLinksFn: func(ctx context.Context, hubURL string) ([]string, error) {
				calls++
				return nil, nil
			},
		}
		resolver := &crawl.Resolver{Discoverer: discoverer, Lists: newMemoryListStore()}
		ctx := context.Background()

		urls, err := resolver.Resolve(ctx, "https://example.com", "guide")
		require.NoError(t, err)
		assert.Empty(t, urls)

		_, err = resolver.Resolve(ctx, "https://example.com", "guide")
		require.NoError(t, err)
		assert.Equal(t, 1, calls, "an empty result still counts as resolved")
	})

	t.Run("hub render failure propagates", func(t *testing.T) {
		t.Parallel()

		discoverer := &mock.LinkDiscoverer{
			DiscoverLinksFn: func(ctx context.Context, hubURL string) ([]string, error) {
				return nil, errors.New("navigation failed")
			},
		}
		resolver := &crawl.Resolver{Discoverer: discoverer, Lists: newMemoryListStore()}

		_, err := resolver.Resolve(context.Background(), "https://example.com", "")

		require.Error(t, err)
	})

	t.Run("custom hub URL is used for discovery", func(t *testing.T) {
		t.Parallel()

		var gotHub string
		discoverer := &mock.LinkDiscoverer{
			DiscoverLinksFn: func(ctx context.Context, hubURL string) ([]string, error) {
				gotHub = hubURL
				return nil, nil
			},
		}
		resolver := &crawl.Resolver{
			Discoverer: discoverer,
			Lists:      newMemoryListStore(),
			HubURL:     "https://example.com/docs",
		}

		_, err := resolver.Resolve(context.Background(), "https://example.com", "")

		require.NoError(t, err)
		assert.Equal(t, "https://example.com/docs", gotHub)
	})
}

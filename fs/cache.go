// Package fs provides file-backed implementations of the page cache and
// the resolved URL-list store. Both live in one working cache directory;
// the URL-list files carry a "urls-" prefix so the two key namespaces
// cannot collide.
package fs

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/llmsfull"
)

// Ensure PageCache implements llmsfull.PageCache at compile time.
var _ llmsfull.PageCache = (*PageCache)(nil)

// PageCache stores extracted page text as one UTF-8 file per URL, named by
// a hash of the URL. Entries never expire; stale entries persist until the
// cache directory is deleted.
type PageCache struct {
	dir string
}

// NewPageCache creates a PageCache rooted at dir.
// The directory is created lazily on first write.
func NewPageCache(dir string) *PageCache {
	return &PageCache{dir: dir}
}

// Key returns the content-addressable cache key for a URL: the xxhash-64
// digest as a fixed-length hex string. It is a filename-safe identifier,
// not a security primitive. The URL is hashed verbatim — no normalization.
func Key(url string) string {
	return fmt.Sprintf("%016x", xxhash.Sum64String(url))
}

func (c *PageCache) path(url string) string {
	return filepath.Join(c.dir, Key(url)+".txt")
}

// GetOrFetch returns the cached text for url, invoking fetch on a miss.
// Only non-empty fetch results are persisted; a failed or empty fetch is
// retried on the next run.
func (c *PageCache) GetOrFetch(ctx context.Context, url string, fetch llmsfull.FetchTextFunc) (string, error) {
	path := c.path(url)

	if b, err := os.ReadFile(path); err == nil {
		return string(b), nil
	} else if !os.IsNotExist(err) {
		return "", err
	}

	text, err := fetch(ctx, url)
	if err != nil {
		return "", err
	}
	if text == "" {
		return "", nil
	}

	if err := os.MkdirAll(c.dir, 0755); err != nil {
		return "", err
	}
	if err := os.WriteFile(path, []byte(text), 0644); err != nil {
		return "", err
	}

	return text, nil
}

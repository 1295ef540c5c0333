package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/llmsfull"
)

// Compile-time interface verification.
var (
	_ llmsfull.PageCache    = (*PageCache)(nil)
	_ llmsfull.URLListStore = (*URLListStore)(nil)
)

// key returns the content-addressable key for a URL. The URL is hashed
// verbatim, with no normalization, so the same keys are used whether the
// cache backend is sqlite or fs.
func key(url string) string {
	return fmt.Sprintf("%016x", xxhash.Sum64String(url))
}

// listKey returns the key for a (baseURL, filterPath) pair.
func listKey(baseURL, filterPath string) string {
	return fmt.Sprintf("%016x", xxhash.Sum64String(baseURL+"\x00"+filterPath))
}

// PageCache implements llmsfull.PageCache using SQLite.
type PageCache struct {
	db *DB
}

// NewPageCache creates a new PageCache.
func NewPageCache(db *DB) *PageCache {
	return &PageCache{db: db}
}

// GetOrFetch returns the cached text for url, invoking fetch on a miss.
// Only non-empty fetch results are persisted; a failed or empty fetch is
// retried on the next run. Entries never expire.
func (c *PageCache) GetOrFetch(ctx context.Context, url string, fetch llmsfull.FetchTextFunc) (string, error) {
	k := key(url)

	var content string
	err := c.db.QueryRowContext(ctx, `
		SELECT content FROM pages WHERE key = ?
	`, k).Scan(&content)
	if err == nil {
		return content, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return "", err
	}

	text, err := fetch(ctx, url)
	if err != nil {
		return "", err
	}
	if text == "" {
		return "", nil
	}

	_, err = c.db.ExecContext(ctx, `
		INSERT INTO pages (key, url, content, fetched_at)
		VALUES (?, ?, ?, ?)
	`, k, url, text, time.Now().UTC().Format(time.RFC3339))
	if err != nil {
		return "", err
	}

	return text, nil
}

// URLListStore implements llmsfull.URLListStore using SQLite. Lists are
// keyed by (baseURL, filterPath), so switching the filter between runs does
// not silently reuse a stale list built for a different configuration.
type URLListStore struct {
	db *DB
}

// NewURLListStore creates a new URLListStore.
func NewURLListStore(db *DB) *URLListStore {
	return &URLListStore{db: db}
}

// Load returns the persisted list for the key.
// Returns ENOTFOUND if no list has been persisted.
func (s *URLListStore) Load(ctx context.Context, baseURL, filterPath string) ([]string, error) {
	var urls string
	err := s.db.QueryRowContext(ctx, `
		SELECT urls FROM url_lists WHERE key = ?
	`, listKey(baseURL, filterPath)).Scan(&urls)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, llmsfull.Errorf(llmsfull.ENOTFOUND, "no persisted URL list for base %q filter %q", baseURL, filterPath)
	}
	if err != nil {
		return nil, err
	}

	if urls == "" {
		// A persisted empty list is a valid terminal outcome.
		return []string{}, nil
	}
	return strings.Split(urls, "\n"), nil
}

// Save persists the list for the key, replacing any previous list.
// An empty list is a valid value.
func (s *URLListStore) Save(ctx context.Context, baseURL, filterPath string, urls []string) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO url_lists (key, base_url, filter_path, urls, resolved_at)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET urls = excluded.urls, resolved_at = excluded.resolved_at
	`, listKey(baseURL, filterPath), baseURL, filterPath, strings.Join(urls, "\n"),
		time.Now().UTC().Format(time.RFC3339))
	return err
}

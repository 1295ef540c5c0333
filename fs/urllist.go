package fs

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/llmsfull"
)

// Ensure URLListStore implements llmsfull.URLListStore at compile time.
var _ llmsfull.URLListStore = (*URLListStore)(nil)

// URLListStore persists resolved URL lists as newline-separated UTF-8
// files. Lists are keyed by (baseURL, filterPath), so switching the filter
// between runs does not silently reuse a stale list built for a different
// configuration.
type URLListStore struct {
	dir string
}

// NewURLListStore creates a URLListStore rooted at dir.
func NewURLListStore(dir string) *URLListStore {
	return &URLListStore{dir: dir}
}

// ListKey returns the cache key for a (baseURL, filterPath) pair.
func ListKey(baseURL, filterPath string) string {
	return fmt.Sprintf("%016x", xxhash.Sum64String(baseURL+"\x00"+filterPath))
}

func (s *URLListStore) path(baseURL, filterPath string) string {
	return filepath.Join(s.dir, "urls-"+ListKey(baseURL, filterPath)+".txt")
}

// Load returns the persisted list for the key.
// Returns ENOTFOUND if no list has been persisted.
func (s *URLListStore) Load(ctx context.Context, baseURL, filterPath string) ([]string, error) {
	b, err := os.ReadFile(s.path(baseURL, filterPath))
	if os.IsNotExist(err) {
		return nil, llmsfull.Errorf(llmsfull.ENOTFOUND, "no persisted URL list for base %q filter %q", baseURL, filterPath)
	} else if err != nil {
		return nil, err
	}

	content := strings.TrimRight(string(b), "\n")
	if content == "" {
		// A persisted empty list is a valid terminal outcome.
		return []string{}, nil
	}
	return strings.Split(content, "\n"), nil
}

// Save persists the list for the key, one URL per line.
func (s *URLListStore) Save(ctx context.Context, baseURL, filterPath string, urls []string) error {
	if err := os.MkdirAll(s.dir, 0755); err != nil {
		return err
	}

	var sb strings.Builder
	for _, u := range urls {
		sb.WriteString(u)
		sb.WriteString("\n")
	}
	return os.WriteFile(s.path(baseURL, filterPath), []byte(sb.String()), 0644)
}

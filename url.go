package llmsfull

import (
	"net/url"
	"slices"
	"strings"
)

// SortURLs orders urls by the number of path segments (ascending), breaking
// ties lexicographically. Shallower, index-like pages sort before deeper
// nested pages, approximating a sensible reading order without a sitemap.
// The sort is performed in place and the slice is returned for convenience.
func SortURLs(urls []string) []string {
	slices.SortStableFunc(urls, func(a, b string) int {
		sa, sb := PathSegments(a), PathSegments(b)
		if sa != sb {
			return sa - sb
		}
		return strings.Compare(a, b)
	})
	return urls
}

// PathSegments returns the number of non-empty path segments in a URL.
// Unparseable URLs fall back to counting slashes in the raw string.
func PathSegments(rawURL string) int {
	u, err := url.Parse(rawURL)
	if err != nil {
		return strings.Count(rawURL, "/")
	}
	n := 0
	for _, seg := range strings.Split(u.Path, "/") {
		if seg != "" {
			n++
		}
	}
	return n
}

// FilterURLs keeps URLs that contain filterPath as a substring.
// An empty filter keeps everything. The input order is preserved.
func FilterURLs(urls []string, filterPath string) []string {
	if filterPath == "" {
		return urls
	}
	kept := make([]string, 0, len(urls))
	for _, u := range urls {
		if strings.Contains(u, filterPath) {
			kept = append(kept, u)
		}
	}
	return kept
}

package goquery

import (
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/llmsfull"
)

// ExtractHubLinks parses rendered hub-page HTML and returns the deduplicated
// set of absolute link targets that begin with the base origin. Relative
// hrefs are resolved against the hub URL; beyond that the URLs are kept
// verbatim — trailing slashes, query strings, and fragments are not
// canonicalized. The result preserves document order of first occurrence.
func ExtractHubLinks(html, hubURL, baseURL string) ([]string, error) {
	hub, err := url.Parse(hubURL)
	if err != nil {
		return nil, llmsfull.Errorf(llmsfull.EINVALID, "invalid hub URL: %v", err)
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, llmsfull.Errorf(llmsfull.EINVALID, "failed to parse HTML: %v", err)
	}

	seen := make(map[string]struct{})
	var links []string

	doc.Find("a[href]").Each(func(_ int, sel *goquery.Selection) {
		href, exists := sel.Attr("href")
		if !exists || href == "" {
			return
		}

		// Skip non-HTTP links (javascript:, mailto:, etc.)
		if isNonHTTPLink(href) {
			return
		}

		resolved := resolveURL(hub, href)
		if resolved == "" {
			return
		}

		if !strings.HasPrefix(resolved, baseURL) {
			return
		}

		if _, ok := seen[resolved]; ok {
			return
		}
		seen[resolved] = struct{}{}
		links = append(links, resolved)
	})

	return links, nil
}

// resolveURL resolves a relative href against the hub URL.
// Returns empty string if the href cannot be parsed.
func resolveURL(hub *url.URL, href string) string {
	ref, err := url.Parse(href)
	if err != nil {
		return ""
	}
	return hub.ResolveReference(ref).String()
}

// isNonHTTPLink checks if a href is a non-HTTP link that should be skipped.
func isNonHTTPLink(href string) bool {
	href = strings.ToLower(strings.TrimSpace(href))
	return strings.HasPrefix(href, "javascript:") ||
		strings.HasPrefix(href, "mailto:") ||
		strings.HasPrefix(href, "tel:") ||
		strings.HasPrefix(href, "data:")
}

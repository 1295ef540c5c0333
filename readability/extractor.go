// Package readability implements content extraction using go-readability,
// an alternative engine to the selector cascade.
package readability

import (
	"strings"

	"github.com/fwojciec/llmsfull"
	"github.com/go-shiori/go-readability"
)

// Ensure Extractor implements llmsfull.Extractor at compile time.
var _ llmsfull.Extractor = (*Extractor)(nil)

// Extractor wraps go-readability to extract main content from HTML.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract processes raw HTML and returns the main content as plain text.
// An empty result means the engine found no main content; the page is
// skipped, not failed.
func (e *Extractor) Extract(rawHTML string) (string, error) {
	if rawHTML == "" {
		return "", nil
	}

	article, err := readability.FromReader(strings.NewReader(rawHTML), nil)
	if err != nil {
		return "", err
	}

	return strings.TrimSpace(article.TextContent), nil
}

// Package trafilatura implements content extraction using go-trafilatura,
// an alternative engine to the selector cascade.
package trafilatura

import (
	"strings"

	"github.com/fwojciec/llmsfull"
	"github.com/markusmobius/go-trafilatura"
)

// Ensure Extractor implements llmsfull.Extractor at compile time.
var _ llmsfull.Extractor = (*Extractor)(nil)

// Extractor wraps go-trafilatura to extract main content from HTML.
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

	opts := trafilatura.Options{
		EnableFallback: true,
	}

	result, err := trafilatura.Extract(strings.NewReader(rawHTML), opts)
	if err != nil {
		return "", err
	}

	return strings.TrimSpace(result.ContentText), nil
}

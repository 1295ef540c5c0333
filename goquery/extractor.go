// Package goquery provides CSS-selector based content extraction and
// hub-page link discovery on top of PuerkitoBio/goquery.
package goquery

import (
	"strings"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/llmsfull"
	"golang.org/x/net/html"
)

// MinContentLength is the acceptance threshold for extracted text.
// A candidate element whose text is this many characters or fewer is
// rejected and the cascade moves on to the next strategy.
const MinContentLength = 50

// fallbackSelectors is the ordered cascade of known documentation-layout
// containers, tried in sequence after any caller-supplied selector.
var fallbackSelectors = []string{
	"article",              // blogs and structured docs
	"div.col-content",      // Contentful-style docs
	"div.markdown-body",    // GitHub/GitBook-style docs
	"section.main-content", // section-based dev docs
	"div.doc-content",      // other documentation platforms
	"main",                 // generic landmark fallback
}

// Ensure Extractor implements llmsfull.Extractor at compile time.
var _ llmsfull.Extractor = (*Extractor)(nil)

// Extractor recovers main documentation text from rendered HTML using an
// ordered selector cascade: optional custom selector, then the fixed
// fallback table, then the largest div on the page. The first candidate
// whose text clears MinContentLength wins.
type Extractor struct {
	customSelector string
}

// Option configures an Extractor.
type Option func(*Extractor)

// WithCustomSelector sets a CSS selector tried before the built-in cascade.
func WithCustomSelector(selector string) Option {
	return func(e *Extractor) {
		e.customSelector = selector
	}
}

// NewExtractor creates a new Extractor.
func NewExtractor(opts ...Option) *Extractor {
	e := &Extractor{}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Extract returns the plain-text body of the page's main content, or ""
// when no cascade stage clears the threshold. Empty is a valid, silent
// outcome, not an error.
func (e *Extractor) Extract(rawHTML string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(rawHTML))
	if err != nil {
		return "", llmsfull.Errorf(llmsfull.EINVALID, "failed to parse HTML: %v", err)
	}

	if e.customSelector != "" {
		if text := selectionText(doc.Find(e.customSelector).First()); acceptable(text) {
			return text, nil
		}
	}

	for _, selector := range fallbackSelectors {
		sel := doc.Find(selector).First()
		if sel.Length() == 0 {
			continue
		}
		if text := selectionText(sel); acceptable(text) {
			return text, nil
		}
	}

	// Last resort: the single div with the largest total text length.
	var largest *goquery.Selection
	largestLen := -1
	doc.Find("div").Each(func(_ int, sel *goquery.Selection) {
		if l := len(sel.Text()); l > largestLen {
			largest = sel
			largestLen = l
		}
	})
	if largest != nil {
		if text := selectionText(largest); acceptable(text) {
			return text, nil
		}
	}

	return "", nil
}

func acceptable(text string) bool {
	return utf8.RuneCountInString(text) > MinContentLength
}

// selectionText joins the descendant text nodes of a selection with
// newlines. Whitespace-only nodes and script/style text are skipped.
func selectionText(sel *goquery.Selection) string {
	var parts []string
	for _, node := range sel.Nodes {
		collectText(node, &parts)
	}
	return strings.TrimSpace(strings.Join(parts, "\n"))
}

func collectText(n *html.Node, parts *[]string) {
	if n.Type == html.TextNode {
		if t := strings.TrimSpace(n.Data); t != "" {
			*parts = append(*parts, t)
		}
		return
	}
	if n.Type == html.ElementNode {
		switch n.Data {
		case "script", "style", "noscript":
			return
		}
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		collectText(c, parts)
	}
}

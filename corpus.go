package llmsfull

import (
	"fmt"
	"strings"
)

// Section is one titled unit of the output corpus, corresponding to a
// single successfully processed page.
type Section struct {
	Title string
	URL   string
	Body  string
}

// Corpus is the final flat document: a header block followed by an ordered
// sequence of sections. Section order matches the resolved URL list order.
type Corpus struct {
	BaseURL    string
	FilterPath string
	Sections   []Section
}

// sectionRule separates sections in the rendered output.
var sectionRule = strings.Repeat("-", 40)

// Empty reports whether the corpus has no sections.
func (c *Corpus) Empty() bool {
	return len(c.Sections) == 0
}

// Render produces the full output document: header, then one block per
// section framed by 40-character rules. Returns "" for an empty corpus
// so callers can skip writing the output file.
func (c *Corpus) Render() string {
	if c.Empty() {
		return ""
	}

	var body strings.Builder
	for _, s := range c.Sections {
		body.WriteString("\n\n")
		body.WriteString(sectionRule)
		body.WriteString("\n")
		body.WriteString(s.Title)
		body.WriteString("\n")
		body.WriteString(s.URL)
		body.WriteString("\n")
		body.WriteString(sectionRule)
		body.WriteString("\n\n")
		body.WriteString(s.Body)
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "# Documentation from %s\n", c.BaseURL)
	fmt.Fprintf(&sb, "> Extracted content from %s\n\n", c.FilterPath)
	sb.WriteString(strings.TrimSpace(body.String()))
	return sb.String()
}

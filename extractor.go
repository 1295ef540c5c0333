package llmsfull

// Extractor recovers the main documentation text from rendered HTML.
type Extractor interface {
	// Extract returns the plain-text body of the page's main content.
	// An empty string is a valid outcome meaning no candidate cleared the
	// acceptance threshold; it is not an error. Errors are reserved for
	// unparseable input.
	Extract(html string) (string, error)
}

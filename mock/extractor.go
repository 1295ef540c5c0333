package mock

import "github.com/fwojciec/llmsfull"

var _ llmsfull.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of llmsfull.Extractor.
type Extractor struct {
	ExtractFn func(html string) (string, error)
}

func (e *Extractor) Extract(html string) (string, error) {
	return e.ExtractFn(html)
}

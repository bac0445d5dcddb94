package mock

import "github.com/mferenc/distill"

var _ distill.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of distill.Extractor.
type Extractor struct {
	ExtractFn func(html, baseURL string) (*distill.ExtractResult, error)
}

func (e *Extractor) Extract(html, baseURL string) (*distill.ExtractResult, error) {
	return e.ExtractFn(html, baseURL)
}

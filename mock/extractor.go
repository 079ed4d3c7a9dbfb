package mock

import "github.com/fwojciec/assist"

var _ assist.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of assist.Extractor.
type Extractor struct {
	ExtractFn func(html string, opts assist.ExtractOptions) *assist.ExtractionResult
}

func (e *Extractor) Extract(html string, opts assist.ExtractOptions) *assist.ExtractionResult {
	return e.ExtractFn(html, opts)
}

package mock

import "github.com/fwojciec/typgrab"

var _ typgrab.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of typgrab.Extractor.
type Extractor struct {
	ExtractFn func(rawHTML string) (*typgrab.ExtractResult, error)
}

func (e *Extractor) Extract(rawHTML string) (*typgrab.ExtractResult, error) {
	return e.ExtractFn(rawHTML)
}

// Package readability provides a go-readability based implementation of
// typgrab.Extractor, used as an optional pre-cleaning stage for article
// layouts the converter's own heuristics don't recognize.
package readability

import (
	"strings"

	"github.com/fwojciec/typgrab"
	"github.com/go-shiori/go-readability"
)

// Ensure Extractor implements typgrab.Extractor at compile time.
var _ typgrab.Extractor = (*Extractor)(nil)

// Extractor wraps go-readability to extract main content from HTML.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract processes raw HTML and returns the main content.
func (e *Extractor) Extract(rawHTML string) (*typgrab.ExtractResult, error) {
	if rawHTML == "" {
		return nil, typgrab.Errorf(typgrab.EINVALID, "empty HTML input")
	}

	article, err := readability.FromReader(strings.NewReader(rawHTML), nil)
	if err != nil {
		return nil, err
	}

	return &typgrab.ExtractResult{
		Title:       article.Title,
		ContentHTML: article.Content,
	}, nil
}

package mock

import (
	"context"

	"github.com/fwojciec/typgrab"
)

var _ typgrab.Converter = (*Converter)(nil)

// Converter is a mock implementation of typgrab.Converter.
type Converter struct {
	ConvertFn func(ctx context.Context, rawHTML string, baseURL string) (*typgrab.ConvertResult, error)
}

func (c *Converter) Convert(ctx context.Context, rawHTML string, baseURL string) (*typgrab.ConvertResult, error) {
	return c.ConvertFn(ctx, rawHTML, baseURL)
}

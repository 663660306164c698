package mock

import (
	"context"

	"github.com/fwojciec/typgrab"
)

var _ typgrab.ImageStore = (*ImageStore)(nil)

// ImageStore is a mock implementation of typgrab.ImageStore.
type ImageStore struct {
	MaterializeFn func(ctx context.Context, url string) (string, error)
}

func (s *ImageStore) Materialize(ctx context.Context, url string) (string, error) {
	return s.MaterializeFn(ctx, url)
}

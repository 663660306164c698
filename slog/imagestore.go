package slog

import (
	"context"
	"log/slog"

	"github.com/fwojciec/typgrab"
)

// Ensure LoggingImageStore implements typgrab.ImageStore.
var _ typgrab.ImageStore = (*LoggingImageStore)(nil)

// LoggingImageStore wraps an ImageStore, logging each materialization.
// Failures log at warn level since the renderer degrades by omitting the
// image rather than aborting.
type LoggingImageStore struct {
	next   typgrab.ImageStore
	logger *slog.Logger
}

// NewLoggingImageStore creates a new LoggingImageStore.
func NewLoggingImageStore(next typgrab.ImageStore, logger *slog.Logger) *LoggingImageStore {
	return &LoggingImageStore{next: next, logger: logger}
}

// Materialize delegates to the wrapped store and logs the outcome.
func (s *LoggingImageStore) Materialize(ctx context.Context, url string) (string, error) {
	local, err := s.next.Materialize(ctx, url)
	if err != nil {
		s.logger.Warn("image download failed, figure will be omitted",
			"url", url,
			"error", err,
		)
		return "", err
	}
	s.logger.Debug("materialized image", "url", url, "path", local)
	return local, nil
}

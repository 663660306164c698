package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/typgrab"
)

// Ensure LoggingConverter implements typgrab.Converter.
var _ typgrab.Converter = (*LoggingConverter)(nil)

// LoggingConverter wraps a Converter with conversion logging.
type LoggingConverter struct {
	next   typgrab.Converter
	logger *slog.Logger
}

// NewLoggingConverter creates a new LoggingConverter.
func NewLoggingConverter(next typgrab.Converter, logger *slog.Logger) *LoggingConverter {
	return &LoggingConverter{next: next, logger: logger}
}

// Convert delegates to the wrapped converter and logs the outcome,
// warning when no content container was found.
func (c *LoggingConverter) Convert(ctx context.Context, rawHTML string, baseURL string) (*typgrab.ConvertResult, error) {
	begin := time.Now()
	result, err := c.next.Convert(ctx, rawHTML, baseURL)
	if err != nil {
		c.logger.Error("conversion failed",
			"url", baseURL,
			"duration", time.Since(begin),
			"error", err,
		)
		return nil, err
	}

	if !result.ContentFound {
		c.logger.Warn("no content container recognized, fragment is empty", "url", baseURL)
	}
	c.logger.Info("converted article",
		"title", result.Article.Title,
		"bytes", len(result.Article.Content),
		"duration", time.Since(begin),
	)
	return result, nil
}

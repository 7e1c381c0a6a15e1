// Package slog provides logging decorators for docxtext services.
package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/docxtext"
)

// Ensure LoggingExtractor implements docxtext.Extractor.
var _ docxtext.Extractor = (*LoggingExtractor)(nil)

// LoggingExtractor wraps an Extractor with debug logging.
type LoggingExtractor struct {
	next   docxtext.Extractor
	logger *slog.Logger
}

// NewLoggingExtractor creates a new LoggingExtractor.
func NewLoggingExtractor(next docxtext.Extractor, logger *slog.Logger) *LoggingExtractor {
	return &LoggingExtractor{next: next, logger: logger}
}

// Extract delegates to the wrapped extractor and logs the operation.
func (e *LoggingExtractor) Extract(ctx context.Context, path string) (doc *docxtext.Document, err error) {
	defer func(begin time.Time) {
		e.logger.Info("extract",
			"path", path,
			"paragraphs", doc.Len(),
			"duration", time.Since(begin),
			"code", docxtext.ErrorCode(err),
			"err", err,
		)
	}(time.Now())
	return e.next.Extract(ctx, path)
}

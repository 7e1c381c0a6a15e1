package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/docxtext"
)

// Ensure LoggingTextWriter implements docxtext.TextWriter.
var _ docxtext.TextWriter = (*LoggingTextWriter)(nil)

// LoggingTextWriter wraps a TextWriter with debug logging.
type LoggingTextWriter struct {
	next   docxtext.TextWriter
	logger *slog.Logger
}

// NewLoggingTextWriter creates a new LoggingTextWriter.
func NewLoggingTextWriter(next docxtext.TextWriter, logger *slog.Logger) *LoggingTextWriter {
	return &LoggingTextWriter{next: next, logger: logger}
}

// WriteText delegates to the wrapped writer and logs the operation.
func (w *LoggingTextWriter) WriteText(ctx context.Context, path, text string) (err error) {
	defer func(begin time.Time) {
		w.logger.Info("write output",
			"path", path,
			"bytes", len(text),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return w.next.WriteText(ctx, path, text)
}

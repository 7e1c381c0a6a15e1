package slog_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/fwojciec/docxtext/mock"
	docslog "github.com/fwojciec/docxtext/slog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggingTextWriter_WriteText(t *testing.T) {
	t.Parallel()

	t.Run("logs path and size", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.TextWriter{
			WriteTextFn: func(ctx context.Context, path, text string) error {
				return nil
			},
		}

		w := docslog.NewLoggingTextWriter(inner, logger)
		err := w.WriteText(context.Background(), "out.txt", "Hi there\n")

		require.NoError(t, err)
		output := buf.String()
		assert.Contains(t, output, "write output")
		assert.Contains(t, output, "path=out.txt")
		assert.Contains(t, output, "bytes=9")
		assert.Contains(t, output, "duration=")
	})

	t.Run("logs error on failure", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.TextWriter{
			WriteTextFn: func(ctx context.Context, path, text string) error {
				return errors.New("disk full")
			},
		}

		w := docslog.NewLoggingTextWriter(inner, logger)
		err := w.WriteText(context.Background(), "out.txt", "text")

		require.Error(t, err)
		assert.Contains(t, buf.String(), "err=\"disk full\"")
	})
}

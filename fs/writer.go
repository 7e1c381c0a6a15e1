// Package fs provides file-based input checks and output for extracted text.
package fs

import (
	"context"
	"errors"
	iofs "io/fs"
	"os"
	"path/filepath"

	"github.com/fwojciec/docxtext"
)

// Exists reports whether a file or directory exists at path.
func Exists(path string) (bool, error) {
	_, err := os.Stat(path)
	if err == nil {
		return true, nil
	}
	if errors.Is(err, iofs.ErrNotExist) {
		return false, nil
	}
	return false, err
}

// Ensure Writer implements docxtext.TextWriter at compile time.
var _ docxtext.TextWriter = (*Writer)(nil)

// Writer writes extracted text to files with atomic replace semantics.
// Text is written to a temporary file next to the target, then renamed
// over it, so a failed write never leaves a truncated output behind.
type Writer struct {
	perm os.FileMode
}

// NewWriter creates a new Writer that creates files with mode 0644.
func NewWriter() *Writer {
	return &Writer{perm: 0644}
}

// WriteText writes text to path, replacing any existing file.
func (w *Writer) WriteText(ctx context.Context, path, text string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if path == "" {
		return docxtext.Errorf(docxtext.EINVALID, "output path required")
	}

	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()

	// Remove the temp file on any failure below; a no-op after rename.
	defer os.Remove(tmpName)

	if _, err := tmp.WriteString(text); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Chmod(w.perm); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}

	return os.Rename(tmpName, path)
}

// Package zip reads parts from ZIP-based document containers.
package zip

import (
	"archive/zip"
	"context"
	"errors"
	"io"

	"github.com/fwojciec/docxtext"
)

// DefaultMaxPartSize caps the uncompressed size of a part read into memory.
const DefaultMaxPartSize = 256 << 20

// Ensure PartReader implements docxtext.PartReader at compile time.
var _ docxtext.PartReader = (*PartReader)(nil)

// PartReader reads named entries from ZIP archives on disk.
type PartReader struct {
	maxPartSize int64
}

// Option configures a PartReader.
type Option func(*PartReader)

// WithMaxPartSize sets the largest uncompressed entry ReadPart accepts.
func WithMaxPartSize(n int64) Option {
	return func(r *PartReader) {
		r.maxPartSize = n
	}
}

// NewPartReader creates a new PartReader with the given options.
func NewPartReader(opts ...Option) *PartReader {
	r := &PartReader{maxPartSize: DefaultMaxPartSize}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// ReadPart opens the archive at path, reads the entry called name and closes
// the archive before returning its bytes.
func (r *PartReader) ReadPart(ctx context.Context, path, name string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	zr, err := zip.OpenReader(path)
	// Non-local entry names are reported but leave the reader usable;
	// entries are only looked up by exact name here.
	if err != nil && !errors.Is(err, zip.ErrInsecurePath) {
		return nil, docxtext.Errorf(docxtext.EARCHIVE, "%s: %v", path, err)
	}
	defer zr.Close()

	f := findFile(zr.File, name)
	if f == nil {
		return nil, docxtext.Errorf(docxtext.ENOTFOUND, "there is no item named %q in the archive", name)
	}

	return r.readFile(f)
}

// findFile returns the entry with the exact name, or nil.
func findFile(files []*zip.File, name string) *zip.File {
	for _, f := range files {
		if f.Name == name {
			return f
		}
	}
	return nil
}

func (r *PartReader) readFile(f *zip.File) ([]byte, error) {
	if f.UncompressedSize64 > uint64(r.maxPartSize) {
		return nil, docxtext.Errorf(docxtext.EARCHIVE, "entry %q is %d bytes, limit is %d", f.Name, f.UncompressedSize64, r.maxPartSize)
	}

	rc, err := f.Open()
	if err != nil {
		return nil, docxtext.Errorf(docxtext.EARCHIVE, "open entry %q: %v", f.Name, err)
	}
	defer rc.Close()

	// The header size can lie, so bound the read as well.
	data, err := io.ReadAll(io.LimitReader(rc, r.maxPartSize+1))
	if err != nil {
		return nil, docxtext.Errorf(docxtext.EARCHIVE, "read entry %q: %v", f.Name, err)
	}
	if int64(len(data)) > r.maxPartSize {
		return nil, docxtext.Errorf(docxtext.EARCHIVE, "entry %q exceeds %d bytes", f.Name, r.maxPartSize)
	}

	return data, nil
}

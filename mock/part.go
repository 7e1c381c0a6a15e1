package mock

import (
	"context"

	"github.com/fwojciec/docxtext"
)

var _ docxtext.PartReader = (*PartReader)(nil)

// PartReader is a mock implementation of docxtext.PartReader.
type PartReader struct {
	ReadPartFn func(ctx context.Context, path, name string) ([]byte, error)
}

func (r *PartReader) ReadPart(ctx context.Context, path, name string) ([]byte, error) {
	return r.ReadPartFn(ctx, path, name)
}

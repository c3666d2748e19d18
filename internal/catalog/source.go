package catalog

import (
	"context"
	"io"
	"os"
)

// PriceSource supplies the raw fuel price table. Implementations exist for
// a local CSV file and for an S3 object (see internal/cache).
type PriceSource interface {
	Open(ctx context.Context) (io.ReadCloser, error)
}

// LocalFile reads the price table from the local filesystem.
type LocalFile struct {
	Path string
}

func (f LocalFile) Open(_ context.Context) (io.ReadCloser, error) {
	return os.Open(f.Path)
}

package storage

import (
	"context"
	"io"
)

// ObjectStorage holds attachment bytes out-of-band in reference mode.
type ObjectStorage interface {
	PutObject(ctx context.Context, objectName string, reader io.Reader, size int64, contentType string) error
	RemoveObject(ctx context.Context, objectName string) error
}

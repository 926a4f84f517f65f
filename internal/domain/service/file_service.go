package service

import (
	"context"
	"io"
)

// ProgressFunc receives the number of bytes written so far and the expected
// total (0 when unknown). It is called repeatedly during an upload.
type ProgressFunc func(written, total int64)

type UploadedObject struct {
	Path        string
	URL         string
	ContentType string
	Size        int64
}

type FileStorage interface {
	Upload(ctx context.Context, path string, r io.Reader, contentType string, size int64, progress ProgressFunc) (*UploadedObject, error)
	Download(ctx context.Context, path string) (io.ReadCloser, error)
	Delete(ctx context.Context, path string) error
	Close() error
}

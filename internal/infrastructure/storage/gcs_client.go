package storage

import (
	"context"
	"fmt"
	"io"
	"strings"

	"cloud.google.com/go/storage"
	"google.golang.org/api/option"

	"connekt/internal/domain/service"
	"connekt/pkg/errors"
	"connekt/pkg/logger"
)

// uploadChunkSize controls both the resumable upload chunk and how often the
// progress callback fires.
const uploadChunkSize = 256 * 1024

type CloudStorageClient struct {
	client     *storage.Client
	bucketName string
}

var _ service.FileStorage = (*CloudStorageClient)(nil)

func NewCloudStorageClient(ctx context.Context, bucketName string, opts ...option.ClientOption) (*CloudStorageClient, error) {
	client, err := storage.NewClient(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create storage client: %v", err)
	}

	storageClient := &CloudStorageClient{
		client:     client,
		bucketName: bucketName,
	}

	if err := storageClient.setBucketCORS(ctx); err != nil {
		logger.Warn("Failed to set CORS configuration: %v", err)
	}

	return storageClient, nil
}

func (c *CloudStorageClient) setBucketCORS(ctx context.Context) error {
	bucket := c.client.Bucket(c.bucketName)

	corsConfig := storage.CORS{
		MaxAge:          3600,
		Methods:         []string{"GET", "PUT", "DELETE", "OPTIONS"},
		Origins:         []string{"*"},
		ResponseHeaders: []string{"Content-Type", "x-goog-resumable"},
	}

	bucketAttrs, err := bucket.Attrs(ctx)
	if err != nil {
		return fmt.Errorf("failed to get bucket attributes: %v", err)
	}

	if len(bucketAttrs.CORS) == 0 {
		if _, err := bucket.Update(ctx, storage.BucketAttrsToUpdate{CORS: []storage.CORS{corsConfig}}); err != nil {
			return fmt.Errorf("failed to update bucket CORS: %v", err)
		}
	}

	return nil
}

// Upload streams r to path as a resumable upload. progress, when set, is
// called after every chunk with the bytes written so far.
func (c *CloudStorageClient) Upload(ctx context.Context, path string, r io.Reader, contentType string, size int64, progress service.ProgressFunc) (*service.UploadedObject, error) {
	obj := c.client.Bucket(c.bucketName).Object(path)
	wc := obj.NewWriter(ctx)
	wc.ContentType = contentType
	wc.CacheControl = "public, max-age=86400"
	wc.ChunkSize = uploadChunkSize
	if progress != nil {
		wc.ProgressFunc = func(written int64) {
			progress(written, size)
		}
	}

	written, err := io.Copy(wc, r)
	if err != nil {
		_ = wc.Close()
		return nil, errors.Internal("failed to upload file", err)
	}
	if err := wc.Close(); err != nil {
		return nil, errors.Internal("failed to finalize upload", err)
	}
	if progress != nil {
		progress(written, size)
	}

	return &service.UploadedObject{
		Path:        path,
		URL:         c.PublicURL(path),
		ContentType: contentType,
		Size:        written,
	}, nil
}

func (c *CloudStorageClient) Download(ctx context.Context, path string) (io.ReadCloser, error) {
	rc, err := c.client.Bucket(c.bucketName).Object(path).NewReader(ctx)
	if err != nil {
		if err == storage.ErrObjectNotExist {
			return nil, errors.NotFound("File", err)
		}
		return nil, errors.Internal("failed to read file", err)
	}
	return rc, nil
}

// Delete treats an already missing object as deleted.
func (c *CloudStorageClient) Delete(ctx context.Context, path string) error {
	path = c.objectPath(path)
	if err := c.client.Bucket(c.bucketName).Object(path).Delete(ctx); err != nil && err != storage.ErrObjectNotExist {
		return errors.Internal("failed to delete file", err)
	}
	return nil
}

func (c *CloudStorageClient) PublicURL(path string) string {
	return fmt.Sprintf("https://storage.googleapis.com/%s/%s", c.bucketName, path)
}

// objectPath accepts either an object path or a public URL of this bucket.
func (c *CloudStorageClient) objectPath(pathOrURL string) string {
	prefix := fmt.Sprintf("https://storage.googleapis.com/%s/", c.bucketName)
	return strings.TrimPrefix(pathOrURL, prefix)
}

func (c *CloudStorageClient) Close() error {
	return c.client.Close()
}

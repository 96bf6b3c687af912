package storage

import (
	"context"
	"io"
)

// Package storage keeps the raw uploaded PDF bytes in an S3-compatible
// object store. Archival is best-effort: extraction and persistence of the
// document record never depend on it, and the service runs with a nil
// Archive when no endpoint is configured.

// ObjectInfo contains basic information about an archived object.
type ObjectInfo struct {
	Key         string
	Size        int64
	ETag        string
	ContentType string
}

// Archive is the object storage contract. Implementations must be safe for
// concurrent use and rely on streaming I/O only.
type Archive interface {
	// Put uploads an object under the given key.
	Put(ctx context.Context, key string, r io.Reader, size int64, contentType string, metadata map[string]string) (ObjectInfo, error)
	// Get retrieves an object's content as a streaming reader alongside its info.
	Get(ctx context.Context, key string) (io.ReadCloser, ObjectInfo, error)
	// Delete removes an object by key.
	Delete(ctx context.Context, key string) error
}

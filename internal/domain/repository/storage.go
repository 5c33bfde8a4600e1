package repository

import (
	"context"
	"io"
)

// AssetStore stores uploaded binary assets (video files, thumbnails).
// Implementations should be provided by the infrastructure layer (e.g., MinIO, S3).
type AssetStore interface {
	// Upload stores the content of reader under key and returns the URL the
	// asset is served from. size may be -1 when unknown.
	// key is the object path within the bucket (e.g., "videos/{owner}/{uuid}.mp4").
	Upload(ctx context.Context, key string, reader io.Reader, size int64, contentType string) (string, error)

	// Delete removes the object stored under key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error
}

package port

import (
	"context"
	"io"
)

// UploadInput describes one object to store, typically an uploaded
// spreadsheet kept for audit alongside its import run.
type UploadInput struct {
	Bucket      string
	Key         string
	Body        io.Reader
	ContentType string
	Size        int64
}

// UploadOutput is what the backend reports after a successful upload.
type UploadOutput struct {
	Location string
	ETag     string
}

// ObjectStorage is the object-store boundary. The S3 adapter implements it;
// services only ever see this interface.
type ObjectStorage interface {
	Upload(ctx context.Context, input UploadInput) (*UploadOutput, error)
	Delete(ctx context.Context, bucket, key string) error
	GetPresignedURL(ctx context.Context, bucket, key string, expirySeconds int64) (string, error)
}

package port

import (
	"context"
	"time"
)

// Cache provides caching capabilities for classification results, keyed by
// video URL.
type Cache interface {
	GetClassification(ctx context.Context, videoURL string) ([]byte, error)
	GetEtagClassification(ctx context.Context, videoURL string) (string, error)
	SetClassification(ctx context.Context, videoURL string, data []byte, validUntil time.Time)
	SetEtagClassification(ctx context.Context, videoURL string, etag string, validUntil time.Time)
	DeleteClassification(ctx context.Context, videoURL string) error
	DeleteEtagClassification(ctx context.Context, videoURL string) error
}

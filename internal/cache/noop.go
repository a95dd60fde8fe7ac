package cache

import (
	"context"
	"time"

	"github.com/adpulse/vidcat-ms-go/internal/port"
)

type NoopCache struct{}

// compile-time check: *NoopCache must satisfy port.Cache
var _ port.Cache = (*NoopCache)(nil)

func NewNoop() *NoopCache {
	return &NoopCache{}
}

func (n *NoopCache) GetClassification(ctx context.Context, videoURL string) ([]byte, error) {
	return nil, nil // always cache miss
}

func (n *NoopCache) GetEtagClassification(ctx context.Context, videoURL string) (string, error) {
	return "", nil
}

func (n *NoopCache) SetClassification(ctx context.Context, videoURL string, data []byte, validUntil time.Time) {
}

func (n *NoopCache) SetEtagClassification(ctx context.Context, videoURL string, etag string, validUntil time.Time) {
}

func (n *NoopCache) DeleteClassification(ctx context.Context, videoURL string) error { return nil }

func (n *NoopCache) DeleteEtagClassification(ctx context.Context, videoURL string) error {
	return nil
}

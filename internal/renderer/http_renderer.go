package renderer

import (
	"context"
	"fmt"
	"hash/crc32"

	"github.com/adpulse/vidcat-ms-go/internal/port"
	"github.com/adpulse/vidcat-ms-go/internal/usecase/video"
)

type httpRenderer struct {
	cache port.Cache
}

// compile-time check: *httpRenderer must satisfy port.HTTPRenderer
var _ port.HTTPRenderer = (*httpRenderer)(nil)

// NewHTTPRenderer creates a new HTTPRenderer implementation.
func NewHTTPRenderer(cache port.Cache) port.HTTPRenderer {
	return &httpRenderer{cache: cache}
}

// RenderGetClassification fetches the cached classification for a URL and
// returns the JSON encoded result with a quoted ETag string. The worker is
// the only writer of this cache; a miss here means the URL has not been
// classified yet (or the entry expired), never that classification failed —
// failed results are not cached.
func (r *httpRenderer) RenderGetClassification(ctx context.Context, videoURL string) ([]byte, string, error) {
	raw, err := r.cache.GetClassification(ctx, videoURL)
	if err != nil {
		return nil, "", fmt.Errorf("cache get: %w", err)
	}
	if raw == nil {
		return nil, "", video.ErrClassificationNotFound
	}

	etag, err := r.cache.GetEtagClassification(ctx, videoURL)
	if err != nil {
		return nil, "", fmt.Errorf("cache get etag: %w", err)
	}
	if etag == "" {
		etag = fmt.Sprintf("\"%08x\"", crc32.ChecksumIEEE(raw))
	}

	return raw, etag, nil
}

package port

import "context"

// HTTPRenderer mediates between HTTP handlers and the classification cache.
// It returns the cached JSON result along with an ETag value derived from it.
type HTTPRenderer interface {
	RenderGetClassification(ctx context.Context, videoURL string) ([]byte, string, error)
}

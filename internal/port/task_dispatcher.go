package port

import "context"

// TaskDispatcher converts a validated URL into a durable classify-video task
// and returns the queue-assigned task ID.
type TaskDispatcher interface {
	EnqueueClassifyVideo(ctx context.Context, videoURL string) (string, error)
}

package port

import (
	"context"

	"github.com/adpulse/vidcat-ms-go/internal/queue"
)

// QueueManager ensures a named durable queue exists with its configured
// rate and retry policy. Ensure is idempotent.
type QueueManager interface {
	Ensure(ctx context.Context, desc queue.Descriptor) error
	Get(ctx context.Context, name string) (*queue.Descriptor, error)
}

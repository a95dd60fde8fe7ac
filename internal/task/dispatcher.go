package task

import (
	"context"
	"errors"
	"fmt"

	"github.com/adpulse/vidcat-ms-go/internal/port"
	"github.com/adpulse/vidcat-ms-go/internal/queue"
	msuuid "github.com/adpulse/vidcat-ms-go/internal/uuid"
	"github.com/hibiken/asynq"
)

// enqueuer is the slice of *asynq.Client the dispatcher needs.
type enqueuer interface {
	EnqueueContext(ctx context.Context, task *asynq.Task, opts ...asynq.Option) (*asynq.TaskInfo, error)
}

type Dispatcher struct {
	client enqueuer
	mgr    port.QueueManager
	desc   queue.Descriptor
}

// compile-time check
var _ port.TaskDispatcher = (*Dispatcher)(nil)

func NewDispatcher(addr, password string, mgr port.QueueManager, desc queue.Descriptor) *Dispatcher {
	c := asynq.NewClient(asynq.RedisClientOpt{Addr: addr, Password: password})
	return &Dispatcher{client: c, mgr: mgr, desc: desc}
}

// EnqueueClassifyVideo ensures the queue exists, then enqueues the URL onto
// it. The task ID is derived from the URL, so enqueueing the same URL again
// while a task for it is still pending is a no-op that returns the same ID.
// A failed enqueue is not retried here; redelivery belongs to the queue.
func (d *Dispatcher) EnqueueClassifyVideo(ctx context.Context, videoURL string) (string, error) {
	if err := d.mgr.Ensure(ctx, d.desc); err != nil {
		return "", err
	}

	t, err := NewClassifyVideoTask(videoURL)
	if err != nil {
		return "", err
	}

	id := msuuid.FromURL(videoURL).String()
	info, err := d.client.EnqueueContext(ctx, t,
		asynq.Queue(d.desc.Name),
		asynq.TaskID(id),
		asynq.MaxRetry(maxRetry(d.desc.Retry.MaxAttempts)),
	)
	if err != nil {
		if errors.Is(err, asynq.ErrTaskIDConflict) {
			// already queued for this URL
			return id, nil
		}
		return "", fmt.Errorf("could not enqueue classify-video task for %q: %w", videoURL, err)
	}
	return info.ID, nil
}

// maxRetry converts the descriptor's total-attempts budget to Asynq's
// retry count (first delivery excluded).
func maxRetry(maxAttempts int) int {
	if maxAttempts <= 1 {
		return 0
	}
	return maxAttempts - 1
}

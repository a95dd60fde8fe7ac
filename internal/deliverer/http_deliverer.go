package deliverer

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/adpulse/vidcat-ms-go/internal/logger"
	"github.com/adpulse/vidcat-ms-go/internal/metrics"
	"github.com/adpulse/vidcat-ms-go/internal/queue"
	"github.com/adpulse/vidcat-ms-go/internal/taskctx"
	"github.com/hibiken/asynq"
	"golang.org/x/time/rate"
)

// Deliverer is the queue's delivery mechanism: it POSTs each task payload to
// the worker endpoint and translates the HTTP outcome into ack/retry.
// A 2xx acknowledges the task. A 4xx is permanent — the payload will not get
// better on redelivery. Everything else is retried under the queue's backoff
// policy.
type Deliverer struct {
	client    *http.Client
	workerURL string
	limiter   *rate.Limiter
}

func New(workerURL string, rl queue.RateLimits) *Deliverer {
	limit := rate.Limit(rl.MaxDispatchesPerSecond)
	if rl.MaxDispatchesPerSecond <= 0 {
		limit = rate.Inf
	}
	// The worker call has no local timeout: the deadline comes from the
	// task context set by the queue server.
	return &Deliverer{
		client:    &http.Client{},
		workerURL: workerURL,
		limiter:   rate.NewLimiter(limit, 1),
	}
}

func (d *Deliverer) HandleClassifyVideo(ctx context.Context, t *asynq.Task) error {
	if id, ok := asynq.GetTaskID(ctx); ok {
		ctx = taskctx.WithTaskID(ctx, id)
	}

	if err := d.limiter.Wait(ctx); err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, d.workerURL, bytes.NewReader(t.Payload()))
	if err != nil {
		return fmt.Errorf("could not build worker request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := d.client.Do(req)
	if err != nil {
		metrics.DeliveriesTotal.WithLabelValues("retry").Inc()
		return fmt.Errorf("worker call failed: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	body, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
	switch {
	case resp.StatusCode >= 500:
		metrics.DeliveriesTotal.WithLabelValues("retry").Inc()
		return fmt.Errorf("worker returned %s: %s", resp.Status, body)
	case resp.StatusCode >= 400:
		metrics.DeliveriesTotal.WithLabelValues("rejected").Inc()
		logger.Errorf(ctx, "worker rejected task (%s): %s", resp.Status, body)
		return fmt.Errorf("worker rejected task (%s): %w", resp.Status, asynq.SkipRetry)
	}

	metrics.DeliveriesTotal.WithLabelValues("ok").Inc()
	logger.Infof(ctx, "task delivered to worker (%s)", resp.Status)
	return nil
}

// RetryDelay derives the queue's exponential backoff from its retry config:
// MinBackoff doubled per attempt, capped at MaxBackoff.
func RetryDelay(rc queue.RetryConfig) asynq.RetryDelayFunc {
	return func(n int, e error, t *asynq.Task) time.Duration {
		backoff := rc.MinBackoff
		for i := 0; i < n; i++ {
			backoff *= 2
			if backoff >= rc.MaxBackoff {
				return rc.MaxBackoff
			}
		}
		return backoff
	}
}

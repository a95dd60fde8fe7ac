package port

import (
	"context"

	"github.com/adpulse/vidcat-ms-go/internal/model"
)

// Classifier invokes the external multimodal model on the video at the given
// URL. It never returns a Go error: failures are caught at its boundary and
// reported inside the result, so a classifier outage cannot crash the worker.
type Classifier interface {
	Classify(ctx context.Context, videoURL string) model.ClassificationResult
}

package port

import (
	"context"

	"github.com/adpulse/vidcat-ms-go/internal/model"
)

// VideoSubmitter validates a video URL and queues it for classification.
type VideoSubmitter interface {
	SubmitVideo(ctx context.Context, in SubmitVideoInput) (SubmitVideoOutput, error)
}
type SubmitVideoInput struct {
	URL string
}
type SubmitVideoOutput struct {
	TaskID string `json:"task_id"`
	URL    string `json:"url"`
}

// VideoClassifier runs the classification of one video, consulting the
// result cache before calling the external model.
type VideoClassifier interface {
	ClassifyVideo(ctx context.Context, in ClassifyVideoInput) (model.ClassificationResult, error)
}
type ClassifyVideoInput struct {
	URL string
}

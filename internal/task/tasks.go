package task

import (
	"encoding/json"
	"fmt"

	"github.com/hibiken/asynq"
)

const TypeClassifyVideo = "video:classify"

type ClassifyVideoPayload struct {
	URL string `json:"url"`
}

// NewClassifyVideoTask creates an Asynq task for classifying the video at a URL.
func NewClassifyVideoTask(videoURL string) (*asynq.Task, error) {
	p := ClassifyVideoPayload{URL: videoURL}
	data, err := json.Marshal(p)
	if err != nil {
		return nil, fmt.Errorf("could not marshal classify-video payload: %w", err)
	}
	return asynq.NewTask(TypeClassifyVideo, data), nil
}

// ParseClassifyVideoPayload parses the task payload to ClassifyVideoPayload.
func ParseClassifyVideoPayload(t *asynq.Task) (ClassifyVideoPayload, error) {
	var p ClassifyVideoPayload
	if err := json.Unmarshal(t.Payload(), &p); err != nil {
		return ClassifyVideoPayload{}, fmt.Errorf("could not unmarshal payload: %w", err)
	}
	return p, nil
}

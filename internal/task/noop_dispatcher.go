package task

import (
	"context"

	"github.com/adpulse/vidcat-ms-go/internal/port"
	msuuid "github.com/adpulse/vidcat-ms-go/internal/uuid"
)

type NoopDispatcher struct{}

var _ port.TaskDispatcher = (*NoopDispatcher)(nil)

func NewNoopDispatcher() *NoopDispatcher { return &NoopDispatcher{} }

func (d *NoopDispatcher) EnqueueClassifyVideo(ctx context.Context, videoURL string) (string, error) {
	return msuuid.FromURL(videoURL).String(), nil
}

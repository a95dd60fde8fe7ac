package video

import (
	"context"
	"fmt"

	"github.com/adpulse/vidcat-ms-go/internal/logger"
	"github.com/adpulse/vidcat-ms-go/internal/port"
	"github.com/adpulse/vidcat-ms-go/internal/validation"
)

type videoSubmitterSrv struct {
	dispatcher port.TaskDispatcher
}

func NewVideoSubmitter(dispatcher port.TaskDispatcher) port.VideoSubmitter {
	return &videoSubmitterSrv{dispatcher}
}

// SubmitVideo checks the URL against the intake policy and enqueues it.
// Invalid URLs never reach the queue: validation runs before any external
// call is made.
func (s *videoSubmitterSrv) SubmitVideo(ctx context.Context, in port.SubmitVideoInput) (port.SubmitVideoOutput, error) {
	if err := validation.CheckVideoURL(in.URL); err != nil {
		return port.SubmitVideoOutput{}, err
	}

	id, err := s.dispatcher.EnqueueClassifyVideo(ctx, in.URL)
	if err != nil {
		return port.SubmitVideoOutput{}, fmt.Errorf("could not queue URL %q: %w", in.URL, err)
	}

	logger.Infof(ctx, "Created task: %s. URL in queue: %s", id, in.URL)
	return port.SubmitVideoOutput{TaskID: id, URL: in.URL}, nil
}

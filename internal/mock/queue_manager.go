package mock

import (
	"context"

	"github.com/adpulse/vidcat-ms-go/internal/queue"
)

// MockQueueManager implements the queue manager port for tests.
type MockQueueManager struct {
	EnsureCalled int
	EnsureErr    error

	Desc   *queue.Descriptor
	GetErr error
}

func (m *MockQueueManager) Ensure(ctx context.Context, desc queue.Descriptor) error {
	m.EnsureCalled++
	return m.EnsureErr
}

func (m *MockQueueManager) Get(ctx context.Context, name string) (*queue.Descriptor, error) {
	if m.GetErr != nil {
		return nil, m.GetErr
	}
	return m.Desc, nil
}

package mock

import "context"

// MockDispatcher implements task dispatching for tests.
type MockDispatcher struct {
	EnqueueCalled bool
	EnqueueURLs   []string
	TaskID        string
	EnqueueErr    error
}

func (m *MockDispatcher) EnqueueClassifyVideo(ctx context.Context, videoURL string) (string, error) {
	m.EnqueueCalled = true
	m.EnqueueURLs = append(m.EnqueueURLs, videoURL)
	if m.EnqueueErr != nil {
		return "", m.EnqueueErr
	}
	return m.TaskID, nil
}

package mock

import (
	"context"

	"github.com/adpulse/vidcat-ms-go/internal/model"
)

// MockClassifier implements the classifier port for tests.
type MockClassifier struct {
	ClassifyCalled bool
	ClassifyURLs   []string
	Result         model.ClassificationResult
}

func (m *MockClassifier) Classify(ctx context.Context, videoURL string) model.ClassificationResult {
	m.ClassifyCalled = true
	m.ClassifyURLs = append(m.ClassifyURLs, videoURL)
	return m.Result
}

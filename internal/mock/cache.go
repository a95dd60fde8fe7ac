package mock

import (
	"context"
	"time"
)

// MockCache implements the cache port for tests with in-memory maps.
type MockCache struct {
	Data  map[string][]byte
	Etags map[string]string

	GetErr     error
	GetEtagErr error
	DeleteErr  error

	SetCalled bool
}

func NewMockCache() *MockCache {
	return &MockCache{
		Data:  make(map[string][]byte),
		Etags: make(map[string]string),
	}
}

func (m *MockCache) GetClassification(ctx context.Context, videoURL string) ([]byte, error) {
	if m.GetErr != nil {
		return nil, m.GetErr
	}
	return m.Data[videoURL], nil
}

func (m *MockCache) GetEtagClassification(ctx context.Context, videoURL string) (string, error) {
	if m.GetEtagErr != nil {
		return "", m.GetEtagErr
	}
	return m.Etags[videoURL], nil
}

func (m *MockCache) SetClassification(ctx context.Context, videoURL string, data []byte, validUntil time.Time) {
	m.SetCalled = true
	m.Data[videoURL] = data
}

func (m *MockCache) SetEtagClassification(ctx context.Context, videoURL string, etag string, validUntil time.Time) {
	m.Etags[videoURL] = etag
}

func (m *MockCache) DeleteClassification(ctx context.Context, videoURL string) error {
	delete(m.Data, videoURL)
	return m.DeleteErr
}

func (m *MockCache) DeleteEtagClassification(ctx context.Context, videoURL string) error {
	delete(m.Etags, videoURL)
	return m.DeleteErr
}

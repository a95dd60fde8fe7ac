package renderer

import (
	"context"
	"errors"
	"testing"

	"github.com/adpulse/vidcat-ms-go/internal/mock"
	"github.com/adpulse/vidcat-ms-go/internal/usecase/video"
)

const testURL = "gs://bucket/ad.mp4"

func TestRenderGetClassification_Miss(t *testing.T) {
	r := NewHTTPRenderer(mock.NewMockCache())

	_, _, err := r.RenderGetClassification(context.Background(), testURL)
	if !errors.Is(err, video.ErrClassificationNotFound) {
		t.Fatalf("expected ErrClassificationNotFound, got %v", err)
	}
}

func TestRenderGetClassification_HitWithEtag(t *testing.T) {
	c := mock.NewMockCache()
	c.Data[testURL] = []byte(`{"IAB_Category":"Automotive"}`)
	c.Etags[testURL] = `"cafebabe"`
	r := NewHTTPRenderer(c)

	data, etag, err := r.RenderGetClassification(context.Background(), testURL)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(data) != `{"IAB_Category":"Automotive"}` {
		t.Errorf("data = %s", data)
	}
	if etag != `"cafebabe"` {
		t.Errorf("etag = %q; want %q", etag, `"cafebabe"`)
	}
}

func TestRenderGetClassification_HitWithoutEtag(t *testing.T) {
	c := mock.NewMockCache()
	c.Data[testURL] = []byte(`{"IAB_Category":"Automotive"}`)
	r := NewHTTPRenderer(c)

	_, etag, err := r.RenderGetClassification(context.Background(), testURL)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// recomputed from the payload, always quoted
	if len(etag) != 10 || etag[0] != '"' || etag[len(etag)-1] != '"' {
		t.Errorf("etag = %q; want a quoted 8-hex-digit string", etag)
	}
}

func TestRenderGetClassification_CacheErrors(t *testing.T) {
	c := mock.NewMockCache()
	c.GetErr = errors.New("redis gone")
	r := NewHTTPRenderer(c)

	if _, _, err := r.RenderGetClassification(context.Background(), testURL); err == nil {
		t.Error("expected error when cache get fails, got nil")
	}

	c = mock.NewMockCache()
	c.Data[testURL] = []byte(`{}`)
	c.GetEtagErr = errors.New("redis gone")
	r = NewHTTPRenderer(c)

	if _, _, err := r.RenderGetClassification(context.Background(), testURL); err == nil {
		t.Error("expected error when etag get fails, got nil")
	}
}

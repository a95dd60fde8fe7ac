package task

import (
	"strings"
	"testing"

	"github.com/hibiken/asynq"
)

func TestNewClassifyVideoTask(t *testing.T) {
	tk, err := NewClassifyVideoTask("gs://bucket/ad.mp4")
	if err != nil {
		t.Fatalf("NewClassifyVideoTask: %v", err)
	}
	if tk.Type() != TypeClassifyVideo {
		t.Errorf("type = %q; want %q", tk.Type(), TypeClassifyVideo)
	}

	p, err := ParseClassifyVideoPayload(tk)
	if err != nil {
		t.Fatalf("ParseClassifyVideoPayload: %v", err)
	}
	if p.URL != "gs://bucket/ad.mp4" {
		t.Errorf("URL = %q; want %q", p.URL, "gs://bucket/ad.mp4")
	}
}

func TestParseClassifyVideoPayload_Invalid(t *testing.T) {
	tk := asynq.NewTask(TypeClassifyVideo, []byte("{ not json"))

	_, err := ParseClassifyVideoPayload(tk)
	if err == nil || !strings.Contains(err.Error(), "could not unmarshal payload") {
		t.Errorf("expected unmarshal error, got %v", err)
	}
}

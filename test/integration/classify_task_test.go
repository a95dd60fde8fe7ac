package integration

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/adpulse/vidcat-ms-go/internal/cache"
	"github.com/adpulse/vidcat-ms-go/internal/model"
	"github.com/adpulse/vidcat-ms-go/internal/port"
	"github.com/adpulse/vidcat-ms-go/internal/queue"
	"github.com/adpulse/vidcat-ms-go/internal/renderer"
	"github.com/adpulse/vidcat-ms-go/internal/task"
	videoSvc "github.com/adpulse/vidcat-ms-go/internal/usecase/video"
	"github.com/adpulse/vidcat-ms-go/test/testutil"
)

// setupPipeline wires the full delivery path against the shared Redis: a
// dispatcher, a worker server calling the given Gemini stand-in, and an asynq
// deliverer POSTing to that worker.
func setupPipeline(t *testing.T, queueName string, gemini *testutil.FakeGemini) (port.TaskDispatcher, port.HTTPRenderer, func()) {
	t.Helper()

	desc := testQueue(queueName)
	mgr := queue.NewManager(RedisAddr, "")
	dispatcher := task.NewDispatcher(RedisAddr, "", mgr, desc)

	workerURL, workerStop := testutil.StartWorker(gemini.URL(), RedisAddr)
	delivererStop := testutil.StartDeliverer(RedisAddr, workerURL, desc)

	rd := renderer.NewHTTPRenderer(cache.NewCache(RedisAddr, ""))

	cleanup := func() {
		delivererStop()
		workerStop()
	}
	return dispatcher, rd, cleanup
}

func waitClassified(t *testing.T, rd port.HTTPRenderer, url string) model.ClassificationResult {
	t.Helper()
	deadline := time.Now().Add(10 * time.Second)
	for {
		raw, _, err := rd.RenderGetClassification(context.Background(), url)
		if err == nil {
			var res model.ClassificationResult
			if err := json.Unmarshal(raw, &res); err != nil {
				t.Fatalf("cached classification is not valid JSON: %v", err)
			}
			return res
		}
		if !errors.Is(err, videoSvc.ErrClassificationNotFound) {
			t.Fatalf("RenderGetClassification: %v", err)
		}
		if time.Now().After(deadline) {
			t.Fatalf("timeout waiting for classification of %s", url)
		}
		time.Sleep(250 * time.Millisecond)
	}
}

func TestClassifyTaskIntegration_Success(t *testing.T) {
	const url = "gs://bucket/integration-success.mp4"

	gemini := testutil.StartFakeGemini("Automotive")
	defer gemini.Close()

	dispatcher, rd, cleanup := setupPipeline(t, "classify-success", gemini)
	defer cleanup()

	id, err := dispatcher.EnqueueClassifyVideo(context.Background(), url)
	if err != nil {
		t.Fatalf("enqueue: %v", err)
	}
	if id == "" {
		t.Fatal("expected non-empty task ID")
	}

	res := waitClassified(t, rd, url)
	if res.IABCategory != "Automotive" {
		t.Errorf("IABCategory = %q; want Automotive", res.IABCategory)
	}
	if res.Failed() {
		t.Errorf("unexpected failure: %s", res.Error)
	}
	if gemini.Calls() != 1 {
		t.Errorf("Gemini calls = %d; want 1", gemini.Calls())
	}
}

func TestClassifyTaskIntegration_RedeliveryServedFromCache(t *testing.T) {
	const url = "gs://bucket/integration-redelivery.mp4"

	gemini := testutil.StartFakeGemini("Travel")
	defer gemini.Close()

	dispatcher, rd, cleanup := setupPipeline(t, "classify-redelivery", gemini)
	defer cleanup()

	if _, err := dispatcher.EnqueueClassifyVideo(context.Background(), url); err != nil {
		t.Fatalf("first enqueue: %v", err)
	}
	waitClassified(t, rd, url)

	// A second task for the same URL must be served from the result cache.
	if _, err := dispatcher.EnqueueClassifyVideo(context.Background(), url); err != nil {
		t.Fatalf("second enqueue: %v", err)
	}
	time.Sleep(2 * time.Second)

	if gemini.Calls() != 1 {
		t.Errorf("Gemini calls = %d; want 1 (second delivery should hit the cache)", gemini.Calls())
	}
}

func TestClassifyTaskIntegration_GeminiFailureNotCached(t *testing.T) {
	const url = "gs://bucket/integration-failure.mp4"

	gemini := testutil.StartBrokenGemini()
	defer gemini.Close()

	dispatcher, rd, cleanup := setupPipeline(t, "classify-failure", gemini)
	defer cleanup()

	if _, err := dispatcher.EnqueueClassifyVideo(context.Background(), url); err != nil {
		t.Fatalf("enqueue: %v", err)
	}

	// The worker acks failed classifications, so the task completes without
	// leaving a cached result behind.
	deadline := time.Now().Add(10 * time.Second)
	for gemini.Calls() == 0 {
		if time.Now().After(deadline) {
			t.Fatal("timeout waiting for delivery")
		}
		time.Sleep(250 * time.Millisecond)
	}
	time.Sleep(time.Second)

	_, _, err := rd.RenderGetClassification(context.Background(), url)
	if !errors.Is(err, videoSvc.ErrClassificationNotFound) {
		t.Fatalf("expected ErrClassificationNotFound, got %v", err)
	}
}

func TestDispatcherIntegration_IdempotentEnqueue(t *testing.T) {
	const url = "gs://bucket/integration-idempotent.mp4"

	// No deliverer: the first task stays pending, so the second enqueue hits
	// the task ID conflict path.
	desc := testQueue("classify-pending")
	mgr := queue.NewManager(RedisAddr, "")
	dispatcher := task.NewDispatcher(RedisAddr, "", mgr, desc)

	first, err := dispatcher.EnqueueClassifyVideo(context.Background(), url)
	if err != nil {
		t.Fatalf("first enqueue: %v", err)
	}
	second, err := dispatcher.EnqueueClassifyVideo(context.Background(), url)
	if err != nil {
		t.Fatalf("second enqueue: %v", err)
	}
	if first != second {
		t.Errorf("task IDs differ: %q vs %q", first, second)
	}
}

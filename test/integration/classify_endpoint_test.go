package integration

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/adpulse/vidcat-ms-go/internal/cache"
	apiHandler "github.com/adpulse/vidcat-ms-go/internal/handler/api"
	"github.com/adpulse/vidcat-ms-go/internal/middleware"
	"github.com/adpulse/vidcat-ms-go/internal/port"
	"github.com/adpulse/vidcat-ms-go/internal/queue"
	"github.com/adpulse/vidcat-ms-go/internal/renderer"
	"github.com/adpulse/vidcat-ms-go/internal/task"
	videoSvc "github.com/adpulse/vidcat-ms-go/internal/usecase/video"
	"github.com/go-chi/chi/v5"
)

// newAPIRouter mirrors the route wiring of the api binary.
func newAPIRouter(submitSvc port.VideoSubmitter, rd port.HTTPRenderer) http.Handler {
	r := chi.NewRouter()
	r.Post("/videos/classify", apiHandler.ClassifyVideoHandler(submitSvc))
	r.With(middleware.WithVideoURL()).Get("/classifications", apiHandler.GetClassificationHandler(rd))
	return r
}

func TestClassifyVideoEndpointIntegration(t *testing.T) {
	desc := testQueue("classify-intake")
	mgr := queue.NewManager(RedisAddr, "")
	dispatcher := task.NewDispatcher(RedisAddr, "", mgr, desc)
	submitSvc := videoSvc.NewVideoSubmitter(dispatcher)
	rd := renderer.NewHTTPRenderer(cache.NewCache(RedisAddr, ""))

	srv := httptest.NewServer(newAPIRouter(submitSvc, rd))
	defer srv.Close()

	post := func(body string) *http.Response {
		resp, err := http.Post(srv.URL+"/videos/classify", "application/json", strings.NewReader(body))
		if err != nil {
			t.Fatalf("POST: %v", err)
		}
		return resp
	}

	// invalid URL never reaches the queue
	resp := post(`{"url":"https://bucket/ad.mp4"}`)
	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("status = %d; want 400", resp.StatusCode)
	}
	_ = resp.Body.Close()

	// valid URL is accepted
	resp = post(`{"url":"gs://bucket/endpoint-intake.mp4"}`)
	if resp.StatusCode != http.StatusAccepted {
		t.Fatalf("status = %d; want 202", resp.StatusCode)
	}
	var first port.SubmitVideoOutput
	if err := json.NewDecoder(resp.Body).Decode(&first); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	_ = resp.Body.Close()
	if first.TaskID == "" {
		t.Fatal("expected non-empty task_id")
	}

	// resubmitting the same URL yields the same task
	resp = post(`{"url":"gs://bucket/endpoint-intake.mp4"}`)
	if resp.StatusCode != http.StatusAccepted {
		t.Fatalf("status = %d; want 202", resp.StatusCode)
	}
	var second port.SubmitVideoOutput
	if err := json.NewDecoder(resp.Body).Decode(&second); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	_ = resp.Body.Close()
	if second.TaskID != first.TaskID {
		t.Errorf("task IDs differ: %q vs %q", second.TaskID, first.TaskID)
	}
}

func TestGetClassificationEndpointIntegration(t *testing.T) {
	const url = "gs://bucket/endpoint-read.mp4"

	ca := cache.NewCache(RedisAddr, "")
	rd := renderer.NewHTTPRenderer(ca)
	srv := httptest.NewServer(newAPIRouter(videoSvc.NewVideoSubmitter(task.NewNoopDispatcher()), rd))
	defer srv.Close()

	get := func(ifNoneMatch string) *http.Response {
		req, err := http.NewRequest(http.MethodGet, srv.URL+"/classifications?url="+url, nil)
		if err != nil {
			t.Fatalf("build request: %v", err)
		}
		if ifNoneMatch != "" {
			req.Header.Set("If-None-Match", ifNoneMatch)
		}
		resp, err := http.DefaultClient.Do(req)
		if err != nil {
			t.Fatalf("GET: %v", err)
		}
		return resp
	}

	// nothing classified yet
	resp := get("")
	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("status = %d; want 404", resp.StatusCode)
	}
	_ = resp.Body.Close()

	// seed the cache the way the worker does
	ca.SetClassification(context.Background(), url, []byte(`{"IAB_Category":"Sports"}`), time.Now().Add(time.Hour))

	resp = get("")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d; want 200", resp.StatusCode)
	}
	etag := resp.Header.Get("ETag")
	if etag == "" {
		t.Error("expected non-empty ETag")
	}
	var res struct {
		IABCategory string `json:"IAB_Category"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&res); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	_ = resp.Body.Close()
	if res.IABCategory != "Sports" {
		t.Errorf("IAB_Category = %q; want Sports", res.IABCategory)
	}

	// conditional request revalidates against the ETag
	resp = get(etag)
	if resp.StatusCode != http.StatusNotModified {
		t.Errorf("status = %d; want 304", resp.StatusCode)
	}
	_ = resp.Body.Close()
}

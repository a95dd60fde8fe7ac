package testutil

import (
	"net/http/httptest"

	"github.com/adpulse/vidcat-ms-go/internal/cache"
	"github.com/adpulse/vidcat-ms-go/internal/classifier"
	"github.com/adpulse/vidcat-ms-go/internal/deliverer"
	workerHandler "github.com/adpulse/vidcat-ms-go/internal/handler/worker"
	"github.com/adpulse/vidcat-ms-go/internal/queue"
	"github.com/adpulse/vidcat-ms-go/internal/task"
	videoSvc "github.com/adpulse/vidcat-ms-go/internal/usecase/video"
	"github.com/hibiken/asynq"
)

// StartWorker starts the classification callback endpoint backed by a Gemini
// client pointed at geminiURL and a Redis result cache. It returns the worker
// URL and a function to shut the server down.
func StartWorker(geminiURL, redisAddr string) (string, func()) {
	clf := classifier.NewGeminiClient("test-project", "us-central1", "gemini-1.5-pro-002", "", geminiURL)
	ca := cache.NewCache(redisAddr, "")
	svc := videoSvc.NewVideoClassifier(clf, ca)

	srv := httptest.NewServer(workerHandler.ClassifyVideoHandler(svc))
	return srv.URL, srv.Close
}

// StartDeliverer starts an asynq server that POSTs queued payloads to the
// worker endpoint, the same wiring the deliverer binary uses.
// It returns a function to gracefully shut it down.
func StartDeliverer(redisAddr, workerURL string, desc queue.Descriptor) func() {
	d := deliverer.New(workerURL, desc.RateLimits)

	mux := asynq.NewServeMux()
	mux.HandleFunc(task.TypeClassifyVideo, d.HandleClassifyVideo)

	srv := asynq.NewServer(asynq.RedisClientOpt{Addr: redisAddr}, asynq.Config{
		Concurrency:    desc.RateLimits.MaxConcurrentDispatches,
		Queues:         map[string]int{desc.Name: 1},
		RetryDelayFunc: deliverer.RetryDelay(desc.Retry),
	})
	if err := srv.Start(mux); err != nil {
		panic(err)
	}

	return func() {
		srv.Shutdown()
	}
}

package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/adpulse/vidcat-ms-go/internal/config"
	"github.com/adpulse/vidcat-ms-go/internal/deliverer"
	"github.com/adpulse/vidcat-ms-go/internal/logger"
	"github.com/adpulse/vidcat-ms-go/internal/queue"
	"github.com/adpulse/vidcat-ms-go/internal/task"
	"github.com/hibiken/asynq"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func main() {
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		logger.Errorf(ctx, "❌  Configuration error: %v", err)
		os.Exit(1)
	}
	if cfg.RedisAddr == "" {
		logger.Error(ctx, "⚠️  REDIS_ADDR must be set to run the deliverer")
		os.Exit(1)
	}
	if cfg.WorkerURL == "" {
		logger.Error(ctx, "⚠️  WORKER_URL must be set to run the deliverer")
		os.Exit(1)
	}

	logger.Init()

	desc, err := config.LoadQueuePolicy(cfg.QueueConfigPath)
	if err != nil {
		logger.Errorf(ctx, "❌  Failed to load queue config: %v", err)
		os.Exit(1)
	}

	// Create the queue up front so its policy exists before the first enqueue.
	mgr := queue.NewManager(cfg.RedisAddr, cfg.RedisPassword)
	if err := mgr.Ensure(ctx, desc); err != nil {
		logger.Errorf(ctx, "❌  Failed to ensure queue %q: %v", desc.Name, err)
		os.Exit(1)
	}

	d := deliverer.New(cfg.WorkerURL, desc.RateLimits)

	mux := asynq.NewServeMux()
	mux.HandleFunc(task.TypeClassifyVideo, d.HandleClassifyVideo)

	go serveMetrics(ctx, cfg)

	runDeliverer(ctx, mux, cfg, desc)
}

// serveMetrics exposes the delivery counters; the deliverer has no other
// HTTP surface.
func serveMetrics(ctx context.Context, cfg *config.Settings) {
	srv := &http.Server{Addr: ":" + strconv.Itoa(cfg.ServerPort), Handler: promhttp.Handler()}
	logger.Infof(ctx, "🚀 Metrics listening on %s", srv.Addr)
	if err := srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
		logger.Warnf(ctx, "metrics listen error: %v", err)
	}
}

func runDeliverer(ctx context.Context, mux *asynq.ServeMux, cfg *config.Settings, desc queue.Descriptor) {
	srv := asynq.NewServer(asynq.RedisClientOpt{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
	}, asynq.Config{
		Concurrency:    desc.RateLimits.MaxConcurrentDispatches,
		Queues:         map[string]int{desc.Name: 1},
		RetryDelayFunc: deliverer.RetryDelay(desc.Retry),
	})

	// Run server in background
	go func() {
		if err := srv.Run(mux); err != nil {
			logger.Errorf(context.Background(), "❌  Deliverer failed: %v", err)
			os.Exit(1)
		}
	}()
	logger.Infof(ctx, "🚀 Deliverer started on queue %q", desc.Name)

	// Wait for interrupt signal
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	<-sigCh
	logger.Info(ctx, "🛑 Shutdown signal received, exiting…")

	// Give Asynq up to 30 sec to finish in-flight deliveries
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	srv.Shutdown()       // stop accepting new tasks, finish in-flight
	<-shutdownCtx.Done() // either timeout or done

	logger.Info(ctx, "✅  Deliverer gracefully stopped")
}

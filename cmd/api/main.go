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

	"github.com/adpulse/vidcat-ms-go/internal/cache"
	"github.com/adpulse/vidcat-ms-go/internal/config"
	"github.com/adpulse/vidcat-ms-go/internal/handler"
	"github.com/adpulse/vidcat-ms-go/internal/handler/api"
	"github.com/adpulse/vidcat-ms-go/internal/logger"
	cMiddleware "github.com/adpulse/vidcat-ms-go/internal/middleware"
	"github.com/adpulse/vidcat-ms-go/internal/port"
	"github.com/adpulse/vidcat-ms-go/internal/queue"
	"github.com/adpulse/vidcat-ms-go/internal/renderer"
	"github.com/adpulse/vidcat-ms-go/internal/task"
	videoSvc "github.com/adpulse/vidcat-ms-go/internal/usecase/video"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func main() {
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		logger.Errorf(ctx, "❌  Configuration error: %v", err)
		os.Exit(1)
	}

	logger.Init()

	desc := loadQueuePolicy(ctx, cfg)

	r := initRouter(ctx)

	var ca port.Cache
	var dispatcher port.TaskDispatcher
	if cfg.RedisAddr != "" {
		ca = cache.NewCache(cfg.RedisAddr, cfg.RedisPassword)
		mgr := queue.NewManager(cfg.RedisAddr, cfg.RedisPassword)
		dispatcher = task.NewDispatcher(cfg.RedisAddr, cfg.RedisPassword, mgr, desc)
		logger.Info(ctx, "✅  Redis queue and cache enabled")
	} else {
		ca = cache.NewNoop()
		dispatcher = task.NewNoopDispatcher()
		logger.Warn(ctx, "⚠️  Redis not configured — tasks are dropped and caching is disabled")
	}

	submitSvc := videoSvc.NewVideoSubmitter(dispatcher)
	r.Post("/videos/classify", api.ClassifyVideoHandler(submitSvc))

	rendererSvc := renderer.NewHTTPRenderer(ca)
	r.With(cMiddleware.WithVideoURL()).
		Get("/classifications", api.GetClassificationHandler(rendererSvc))

	r.Handle("/metrics", promhttp.Handler())

	listenRouter(ctx, r, cfg)
}

func loadQueuePolicy(ctx context.Context, cfg *config.Settings) queue.Descriptor {
	desc, err := config.LoadQueuePolicy(cfg.QueueConfigPath)
	if err != nil {
		logger.Errorf(ctx, "❌  Failed to load queue config: %v", err)
		os.Exit(1)
	}
	return desc
}

func initRouter(ctx context.Context) *chi.Mux {
	logger.Info(ctx, "initialising router...")

	r := chi.NewRouter()

	r.Use(middleware.Logger)

	r.NotFound(handler.NotFoundHandler())
	r.MethodNotAllowed(api.MethodNotAllowedHandler())

	return r
}

func listenRouter(ctx context.Context, r *chi.Mux, cfg *config.Settings) {
	srv := &http.Server{Addr: ":" + strconv.Itoa(cfg.ServerPort), Handler: r}

	// start serving
	go func() {
		logger.Infof(ctx, "🚀 API listening on %s", srv.Addr)
		if err := srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			logger.Errorf(ctx, "❌  Listen error: %v", err)
			os.Exit(1)
		}
	}()

	// block until we get SIGINT/SIGTERM
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info(ctx, "🛑 Shutdown signal received, exiting…")

	// graceful shutdown with timeout
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Errorf(ctx, "❌  Server shutdown failed: %v", err)
		os.Exit(1)
	}
	logger.Info(ctx, "✅  Server gracefully stopped")
}

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
	"github.com/adpulse/vidcat-ms-go/internal/classifier"
	"github.com/adpulse/vidcat-ms-go/internal/config"
	"github.com/adpulse/vidcat-ms-go/internal/handler"
	"github.com/adpulse/vidcat-ms-go/internal/handler/api"
	workerHandler "github.com/adpulse/vidcat-ms-go/internal/handler/worker"
	"github.com/adpulse/vidcat-ms-go/internal/logger"
	"github.com/adpulse/vidcat-ms-go/internal/port"
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
	if cfg.ProjectID == "" && cfg.GeminiEndpoint == "" {
		logger.Error(ctx, "⚠️  PROJECT_ID must be set to run the worker")
		os.Exit(1)
	}

	logger.Init()

	clf := classifier.NewGeminiClient(
		cfg.ProjectID,
		cfg.Location,
		cfg.GeminiModel,
		cfg.GeminiAccessToken,
		cfg.GeminiEndpoint,
	)

	var ca port.Cache
	if cfg.RedisAddr != "" {
		ca = cache.NewCache(cfg.RedisAddr, cfg.RedisPassword)
		logger.Info(ctx, "✅  Redis cache enabled")
	} else {
		ca = cache.NewNoop()
		logger.Warn(ctx, "⚠️  Redis not configured — result caching is disabled")
	}

	classifySvc := videoSvc.NewVideoClassifier(clf, ca)

	r := chi.NewRouter()
	r.Use(middleware.Logger)
	r.NotFound(handler.NotFoundHandler())
	r.MethodNotAllowed(api.MethodNotAllowedHandler())

	r.Post("/tasks/classify_video", workerHandler.ClassifyVideoHandler(classifySvc))
	r.Handle("/metrics", promhttp.Handler())

	listenRouter(ctx, r, cfg)
}

func listenRouter(ctx context.Context, r *chi.Mux, cfg *config.Settings) {
	srv := &http.Server{Addr: ":" + strconv.Itoa(cfg.ServerPort), Handler: r}

	go func() {
		logger.Infof(ctx, "🚀 Worker listening on %s", srv.Addr)
		if err := srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			logger.Errorf(ctx, "❌  Listen error: %v", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info(ctx, "🛑 Shutdown signal received, exiting…")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Errorf(ctx, "❌  Server shutdown failed: %v", err)
		os.Exit(1)
	}
	logger.Info(ctx, "✅  Worker gracefully stopped")
}

package main

import (
	"context"
	"flag"
	"log"

	"github.com/adpulse/vidcat-ms-go/internal/config"
	"github.com/adpulse/vidcat-ms-go/internal/port"
	"github.com/adpulse/vidcat-ms-go/internal/queue"
	"github.com/adpulse/vidcat-ms-go/internal/task"
	videoSvc "github.com/adpulse/vidcat-ms-go/internal/usecase/video"
)

func main() {
	url := flag.String("url", "", "gs:// URL of the MP4 video to enqueue")
	flag.Parse()
	if *url == "" {
		log.Fatal("❌  -url is required")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("❌  Configuration error: %v", err)
	}

	dispatcher := initDispatcher(cfg)

	submitter := videoSvc.NewVideoSubmitter(dispatcher)
	out, err := submitter.SubmitVideo(context.Background(), port.SubmitVideoInput{URL: *url})
	if err != nil {
		log.Fatalf("❌  Could not queue URL: %v", err)
	}
	log.Printf("✅  URL queued for processing. Task ID: %s", out.TaskID)
}

func initDispatcher(cfg *config.Settings) port.TaskDispatcher {
	if cfg.RedisAddr == "" {
		log.Fatalf("❌  Redis not configured: this command requires a running Redis instance")
	}

	desc, err := config.LoadQueuePolicy(cfg.QueueConfigPath)
	if err != nil {
		log.Fatalf("❌  Failed to load queue config: %v", err)
	}

	mgr := queue.NewManager(cfg.RedisAddr, cfg.RedisPassword)
	return task.NewDispatcher(cfg.RedisAddr, cfg.RedisPassword, mgr, desc)
}

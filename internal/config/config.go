package config

import (
	"fmt"
	"log"
	"time"

	"github.com/adpulse/vidcat-ms-go/internal/queue"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Settings struct {
	ServerPort        int
	RedisAddr         string
	RedisPassword     string
	WorkerURL         string
	ProjectID         string
	Location          string
	GeminiModel       string
	GeminiEndpoint    string
	GeminiAccessToken string
	QueueConfigPath   string
}

func Load() (*Settings, error) {
	if err := godotenv.Load(".env"); err != nil {
		log.Println("No .env file found; proceeding with OS environment variables")
	}

	viper.AutomaticEnv()

	viper.SetConfigFile(".env")
	viper.SetConfigType("env")

	if err := viper.ReadInConfig(); err != nil {
		log.Printf("Warning: could not read .env file: %v", err)
	}

	if !viper.IsSet("SERVER_PORT") {
		return nil, fmt.Errorf("SERVER_PORT is required")
	}

	viper.SetDefault("LOCATION", "us-central1")
	viper.SetDefault("GEMINI_MODEL", "gemini-1.5-pro-002")
	viper.SetDefault("QUEUE_CONFIG_PATH", "queue.yaml")

	return &Settings{
		ServerPort:        viper.GetInt("SERVER_PORT"),
		RedisAddr:         viper.GetString("REDIS_ADDR"),
		RedisPassword:     viper.GetString("REDIS_PASSWORD"),
		WorkerURL:         viper.GetString("WORKER_URL"),
		ProjectID:         viper.GetString("PROJECT_ID"),
		Location:          viper.GetString("LOCATION"),
		GeminiModel:       viper.GetString("GEMINI_MODEL"),
		GeminiEndpoint:    viper.GetString("GEMINI_ENDPOINT"),
		GeminiAccessToken: viper.GetString("GEMINI_ACCESS_TOKEN"),
		QueueConfigPath:   viper.GetString("QUEUE_CONFIG_PATH"),
	}, nil
}

// LoadQueuePolicy reads the queue descriptor document (queue name, rate
// limits, retry config) once at startup. The document is the single source
// of truth for the queue's delivery policy.
func LoadQueuePolicy(path string) (queue.Descriptor, error) {
	v := viper.New()
	v.SetConfigFile(path)

	if err := v.ReadInConfig(); err != nil {
		return queue.Descriptor{}, fmt.Errorf("could not read queue config %q: %w", path, err)
	}

	var desc queue.Descriptor
	if err := v.Unmarshal(&desc); err != nil {
		return queue.Descriptor{}, fmt.Errorf("could not parse queue config %q: %w", path, err)
	}
	if desc.Name == "" {
		return queue.Descriptor{}, fmt.Errorf("queue_id is required in %q", path)
	}

	if desc.RateLimits.MaxDispatchesPerSecond <= 0 {
		desc.RateLimits.MaxDispatchesPerSecond = 5
	}
	if desc.RateLimits.MaxConcurrentDispatches <= 0 {
		desc.RateLimits.MaxConcurrentDispatches = 10
	}
	if desc.Retry.MaxAttempts <= 0 {
		desc.Retry.MaxAttempts = 5
	}
	if desc.Retry.MinBackoff <= 0 {
		desc.Retry.MinBackoff = 10 * time.Second
	}
	if desc.Retry.MaxBackoff <= 0 {
		desc.Retry.MaxBackoff = 300 * time.Second
	}

	return desc, nil
}

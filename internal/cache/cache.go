package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/adpulse/vidcat-ms-go/internal/logger"
	"github.com/adpulse/vidcat-ms-go/internal/port"
	"github.com/redis/go-redis/v9"
)

// Cache stores classification results in Redis, keyed by video URL. Results
// are derived, expiring data: losing an entry only costs one extra call to
// the classifier on the next delivery.
type Cache struct {
	client *redis.Client
}

// compile-time check: *Cache must satisfy port.Cache
var _ port.Cache = (*Cache)(nil)

func NewCache(addr, password string) *Cache {
	rdb := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       0,
	})

	return &Cache{client: rdb}
}

func (c *Cache) GetClassification(ctx context.Context, videoURL string) ([]byte, error) {
	val, err := c.client.Get(ctx, getCacheKey(videoURL, false)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil // cache miss
	}
	if err != nil {
		return nil, fmt.Errorf("redis get failed: %w", err)
	}
	return val, nil
}

func (c *Cache) GetEtagClassification(ctx context.Context, videoURL string) (string, error) {
	val, err := c.client.Get(ctx, getCacheKey(videoURL, true)).Result()
	if errors.Is(err, redis.Nil) {
		return "", nil // cache miss
	}
	if err != nil {
		return "", fmt.Errorf("redis get failed: %w", err)
	}
	return val, nil
}

func (c *Cache) SetClassification(ctx context.Context, videoURL string, data []byte, validUntil time.Time) {
	logger.Debugf(ctx, "creating cache entry for %q, valid until %s...", videoURL, validUntil.Format(time.RFC1123))

	if err := c.client.Set(ctx, getCacheKey(videoURL, false), data, time.Until(validUntil)).Err(); err != nil {
		logger.Warnf(ctx, "redis set failed for %q: %v", videoURL, err)
	}
}

func (c *Cache) SetEtagClassification(ctx context.Context, videoURL string, etag string, validUntil time.Time) {
	if err := c.client.Set(ctx, getCacheKey(videoURL, true), etag, time.Until(validUntil)).Err(); err != nil {
		logger.Warnf(ctx, "redis set failed for etag of %q: %v", videoURL, err)
	}
}

func (c *Cache) DeleteClassification(ctx context.Context, videoURL string) error {
	if err := c.client.Del(ctx, getCacheKey(videoURL, false)).Err(); err != nil {
		return fmt.Errorf("redis del failed: %w", err)
	}
	return nil
}

func (c *Cache) DeleteEtagClassification(ctx context.Context, videoURL string) error {
	if err := c.client.Del(ctx, getCacheKey(videoURL, true)).Err(); err != nil {
		return fmt.Errorf("redis del failed: %w", err)
	}
	return nil
}

func getCacheKey(videoURL string, etag bool) string {
	if etag {
		return "etag:classification:" + videoURL
	}
	return "classification:" + videoURL
}

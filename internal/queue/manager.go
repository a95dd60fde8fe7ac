package queue

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/adpulse/vidcat-ms-go/internal/logger"
	"github.com/redis/go-redis/v9"
)

var (
	// ErrQueueLookup means the existence check itself failed, which is not
	// the same thing as the queue being absent. No creation is attempted in
	// that case so a transient error never masquerades as "not found".
	ErrQueueLookup = errors.New("queue lookup failed")

	ErrQueueNotFound = errors.New("queue not found")
)

// Manager keeps the registry of queue descriptors in Redis.
type Manager struct {
	client *redis.Client
}

func NewManager(addr, password string) *Manager {
	rdb := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       0,
	})

	return &Manager{client: rdb}
}

// Ensure makes sure the descriptor's queue exists. Looking the queue up and
// finding it is a no-op; a not-found lookup creates it with SETNX, so two
// callers racing on creation both succeed and the first write wins.
func (m *Manager) Ensure(ctx context.Context, desc Descriptor) error {
	err := m.client.Get(ctx, descriptorKey(desc.Name)).Err()
	if err == nil {
		logger.Debugf(ctx, "queue %q already exists", desc.Name)
		return nil
	}
	if !errors.Is(err, redis.Nil) {
		return fmt.Errorf("%w: %v", ErrQueueLookup, err)
	}

	data, err := json.Marshal(desc)
	if err != nil {
		return fmt.Errorf("could not marshal descriptor for queue %q: %w", desc.Name, err)
	}
	if err := m.client.SetNX(ctx, descriptorKey(desc.Name), data, 0).Err(); err != nil {
		return fmt.Errorf("could not create queue %q: %w", desc.Name, err)
	}

	logger.Infof(ctx, "queue %q created", desc.Name)
	return nil
}

// Get fetches the stored descriptor for a queue.
func (m *Manager) Get(ctx context.Context, name string) (*Descriptor, error) {
	val, err := m.client.Get(ctx, descriptorKey(name)).Result()
	if errors.Is(err, redis.Nil) {
		return nil, ErrQueueNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrQueueLookup, err)
	}

	var desc Descriptor
	if err := json.Unmarshal([]byte(val), &desc); err != nil {
		return nil, fmt.Errorf("could not unmarshal descriptor for queue %q: %w", name, err)
	}
	return &desc, nil
}

func descriptorKey(name string) string {
	return "queue:descriptor:" + name
}

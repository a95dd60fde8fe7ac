package queue

import "time"

// RateLimits caps how fast the deliverer drains the queue.
type RateLimits struct {
	MaxDispatchesPerSecond  float64 `json:"max_dispatches_per_second" mapstructure:"max_dispatches_per_second"`
	MaxConcurrentDispatches int     `json:"max_concurrent_dispatches" mapstructure:"max_concurrent_dispatches"`
}

// RetryConfig governs redelivery after a failed dispatch. Backoff grows
// exponentially from MinBackoff and is capped at MaxBackoff.
type RetryConfig struct {
	MaxAttempts int           `json:"max_attempts" mapstructure:"max_attempts"`
	MinBackoff  time.Duration `json:"min_backoff" mapstructure:"min_backoff"`
	MaxBackoff  time.Duration `json:"max_backoff" mapstructure:"max_backoff"`
}

// Descriptor identifies a durable queue and its delivery policy. It is loaded
// once at startup and never mutated afterwards.
type Descriptor struct {
	Name       string      `json:"name" mapstructure:"queue_id"`
	RateLimits RateLimits  `json:"rate_limits" mapstructure:"rate_limits"`
	Retry      RetryConfig `json:"retry_config" mapstructure:"retry_config"`
}

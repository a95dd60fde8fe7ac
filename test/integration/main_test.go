package integration

import (
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/adpulse/vidcat-ms-go/internal/queue"
	"github.com/adpulse/vidcat-ms-go/test/testutil"
)

var RedisAddr string

func TestMain(m *testing.M) {
	code := func() int {
		cleanup, err := setupRedis()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Redis setup failed: %v\n", err)
			return 1
		}
		defer cleanup()

		return m.Run()
	}()

	os.Exit(code)
}

func setupRedis() (cleanup func(), err error) {
	if addr := os.Getenv("TEST_REDIS_ADDR"); addr != "" {
		// CI provided it; nothing to clean up
		RedisAddr = addr
		return func() {}, nil
	}

	rc, err := testutil.StartRedisContainer()
	if err != nil {
		return nil, err
	}

	RedisAddr = rc.Addr
	return rc.Cleanup, nil
}

// testQueue keeps backoff short so redelivery paths finish within the test
// deadline.
func testQueue(name string) queue.Descriptor {
	return queue.Descriptor{
		Name: name,
		RateLimits: queue.RateLimits{
			MaxDispatchesPerSecond:  0, // unlimited
			MaxConcurrentDispatches: 5,
		},
		Retry: queue.RetryConfig{
			MaxAttempts: 3,
			MinBackoff:  500 * time.Millisecond,
			MaxBackoff:  2 * time.Second,
		},
	}
}

//go:build integration

package containers

import (
	"context"
	"testing"
	"time"

	goredis "github.com/redis/go-redis/v9"
	tcredis "github.com/testcontainers/testcontainers-go/modules/redis"

	"udaan/internal/platform/config"
	"udaan/internal/platform/redis"
)

// RedisContainer is a Redis instance for record cache tests, connected through
// the same client constructor the server uses.
type RedisContainer struct {
	Container *tcredis.RedisContainer
	URL       string
	Client    *goredis.Client
}

// NewRedisContainer starts Redis and connects to it.
func NewRedisContainer(t *testing.T) *RedisContainer {
	t.Helper()
	ctx := context.Background()

	container, err := tcredis.Run(ctx, "redis:7-alpine")
	if err != nil {
		t.Fatalf("start redis container: %v", err)
	}
	abort := func(format string, err error) {
		_ = container.Terminate(ctx)
		t.Fatalf(format, err)
	}

	url, err := container.ConnectionString(ctx)
	if err != nil {
		abort("redis connection string: %v", err)
	}
	client, err := redis.New(ctx, config.RedisConfig{URL: url, DialTimeout: 5 * time.Second})
	if err != nil {
		abort("connect redis: %v", err)
	}

	// The Manager shares this container across suites; Ryuk removes it when
	// the test binary exits.
	return &RedisContainer{Container: container, URL: url, Client: client}
}

// FlushAll empties the database between tests.
func (r *RedisContainer) FlushAll(ctx context.Context) error {
	return r.Client.FlushDB(ctx).Err()
}

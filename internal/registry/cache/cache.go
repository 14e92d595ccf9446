// Package cache holds record detail caches for the registry service. Values
// are stored as JSON so both backends share one encoding.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"

	"udaan/pkg/platform/sentinel"
)

const keyPrefix = "udaan:record:"

// RedisCache stores records in Redis with a fixed TTL.
type RedisCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedis constructs a Redis-backed record cache.
func NewRedis(client *redis.Client, ttl time.Duration) *RedisCache {
	return &RedisCache{client: client, ttl: ttl}
}

// Get decodes the cached value for key into dst. A miss returns sentinel.ErrNotFound.
func (c *RedisCache) Get(ctx context.Context, key string, dst any) error {
	data, err := c.client.Get(ctx, keyPrefix+key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return sentinel.ErrNotFound
		}
		return fmt.Errorf("redis get %s: %w", key, err)
	}
	if err := json.Unmarshal(data, dst); err != nil {
		return fmt.Errorf("decode cached %s: %w", key, err)
	}
	return nil
}

func (c *RedisCache) Set(ctx context.Context, key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	if err := c.client.Set(ctx, keyPrefix+key, data, c.ttl).Err(); err != nil {
		return fmt.Errorf("redis set %s: %w", key, err)
	}
	return nil
}

type entry struct {
	data     []byte
	storedAt time.Time
}

// InMemoryCache is the process-local cache used when Redis is not configured.
// Expired entries are dropped lazily on read.
type InMemoryCache struct {
	mu      sync.RWMutex
	entries map[string]entry
	ttl     time.Duration
	now     func() time.Time
}

// NewInMemory creates an in-memory cache with the given TTL.
func NewInMemory(ttl time.Duration) *InMemoryCache {
	return &InMemoryCache{entries: make(map[string]entry), ttl: ttl, now: time.Now}
}

func (c *InMemoryCache) Get(_ context.Context, key string, dst any) error {
	c.mu.RLock()
	e, ok := c.entries[key]
	c.mu.RUnlock()
	if !ok {
		return sentinel.ErrNotFound
	}
	if c.now().Sub(e.storedAt) >= c.ttl {
		c.mu.Lock()
		if cur, ok := c.entries[key]; ok && cur.storedAt.Equal(e.storedAt) {
			delete(c.entries, key)
		}
		c.mu.Unlock()
		return sentinel.ErrNotFound
	}
	return json.Unmarshal(e.data, dst)
}

func (c *InMemoryCache) Set(_ context.Context, key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = entry{data: data, storedAt: c.now()}
	return nil
}

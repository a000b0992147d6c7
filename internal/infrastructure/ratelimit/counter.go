// Package ratelimit counts requests in fixed windows.
package ratelimit

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

// Counter increments the hit count of key in the window containing now
// and returns the new count.
type Counter interface {
	Incr(ctx context.Context, key string, window time.Duration, now time.Time) (int64, error)
}

func bucketKey(key string, window time.Duration, now time.Time) string {
	return fmt.Sprintf("ratelimit:%s:%d", key, now.Unix()/int64(window.Seconds()))
}

// RedisCounter shares counts between portal instances.
type RedisCounter struct {
	client *redis.Client
}

func NewRedisCounter(client *redis.Client) *RedisCounter {
	return &RedisCounter{client: client}
}

func (r *RedisCounter) Incr(ctx context.Context, key string, window time.Duration, now time.Time) (int64, error) {
	k := bucketKey(key, window, now)

	count, err := r.client.Incr(ctx, k).Result()
	if err != nil {
		return 0, err
	}
	if count == 1 {
		r.client.Expire(ctx, k, window+time.Second)
	}
	return count, nil
}

// MemoryCounter keeps counts in process for callers sharing one window
// length. Buckets from past windows are dropped on the next increment.
type MemoryCounter struct {
	mu      sync.Mutex
	buckets map[string]int64
	current int64
}

func NewMemoryCounter() *MemoryCounter {
	return &MemoryCounter{buckets: make(map[string]int64)}
}

func (m *MemoryCounter) Incr(_ context.Context, key string, window time.Duration, now time.Time) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if w := now.Unix() / int64(window.Seconds()); w != m.current {
		m.buckets = make(map[string]int64)
		m.current = w
	}

	k := bucketKey(key, window, now)
	m.buckets[k]++
	return m.buckets[k], nil
}

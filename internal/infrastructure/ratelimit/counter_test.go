package ratelimit

import (
	"context"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestRedis(t *testing.T) *redis.Client {
	client := redis.NewClient(&redis.Options{
		Addr: "localhost:6379",
		DB:   15,
	})

	ctx := context.Background()
	if err := client.Ping(ctx).Err(); err != nil {
		t.Skipf("Redis not available: %v", err)
	}

	client.FlushDB(ctx)
	t.Cleanup(func() {
		client.FlushDB(ctx)
		client.Close()
	})

	return client
}

func TestMemoryCounter_CountsWithinWindow(t *testing.T) {
	c := NewMemoryCounter()
	now := time.Unix(1_700_000_000, 0)

	for i := int64(1); i <= 3; i++ {
		n, err := c.Incr(context.Background(), "login:10.0.0.1", time.Minute, now)
		require.NoError(t, err)
		assert.Equal(t, i, n)
	}

	n, err := c.Incr(context.Background(), "login:10.0.0.2", time.Minute, now)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n, "keys are counted separately")
}

func TestMemoryCounter_ResetsInNextWindow(t *testing.T) {
	c := NewMemoryCounter()
	now := time.Unix(1_700_000_000, 0)

	_, _ = c.Incr(context.Background(), "k", time.Minute, now)
	_, _ = c.Incr(context.Background(), "k", time.Minute, now)

	n, err := c.Incr(context.Background(), "k", time.Minute, now.Add(time.Minute))
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)
	assert.Len(t, c.buckets, 1)
}

func TestRedisCounter_Incr(t *testing.T) {
	client := setupTestRedis(t)
	c := NewRedisCounter(client)
	now := time.Now()

	for i := int64(1); i <= 3; i++ {
		n, err := c.Incr(context.Background(), "test-key", time.Minute, now)
		require.NoError(t, err)
		assert.Equal(t, i, n)
	}

	ttl, err := client.TTL(context.Background(), bucketKey("test-key", time.Minute, now)).Result()
	require.NoError(t, err)
	assert.Greater(t, ttl, time.Duration(0))
}

package session

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"skylink/internal/domain/session"
	"skylink/internal/shared/authorization"
	"skylink/internal/shared/config"
)

func sampleSession() session.Session {
	return session.Session{
		Token:  "opaque-token",
		Role:   authorization.RoleCustomer,
		UserID: 42,
		Email:  "asha@skylink.test",
	}
}

func exerciseStore(t *testing.T, store session.Store) {
	t.Helper()
	ctx := context.Background()

	_, err := store.Load(ctx, "missing")
	assert.ErrorIs(t, err, session.ErrNotFound)

	require.NoError(t, store.Save(ctx, "k1", sampleSession()))
	got, err := store.Load(ctx, "k1")
	require.NoError(t, err)
	assert.Equal(t, sampleSession(), got)

	other := sampleSession()
	other.Role = authorization.RoleAdmin
	require.NoError(t, store.Save(ctx, "k2", other))

	require.NoError(t, store.Delete(ctx, "k1"))
	_, err = store.Load(ctx, "k1")
	assert.ErrorIs(t, err, session.ErrNotFound)

	got, err = store.Load(ctx, "k2")
	require.NoError(t, err)
	assert.Equal(t, authorization.RoleAdmin, got.Role)

	require.NoError(t, store.Delete(ctx, "k1"))
}

func TestMemoryStore(t *testing.T) {
	exerciseStore(t, NewMemoryStore())
}

func TestFileStore(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "session.yaml")
	store, err := NewFileStore(path)
	require.NoError(t, err)

	exerciseStore(t, store)

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
}

func TestFileStore_RemovesFileWhenEmpty(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "session.yaml")
	store, err := NewFileStore(path)
	require.NoError(t, err)

	require.NoError(t, store.Save(ctx, "cli", sampleSession()))
	require.NoError(t, store.Delete(ctx, "cli"))

	_, err = os.Stat(path)
	assert.True(t, os.IsNotExist(err))
}

func TestFileStore_CorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.yaml")
	require.NoError(t, os.WriteFile(path, []byte("{not yaml: ["), 0o600))
	store, err := NewFileStore(path)
	require.NoError(t, err)

	_, err = store.Load(context.Background(), "cli")
	assert.Error(t, err)
	assert.NotErrorIs(t, err, session.ErrNotFound)
}

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

func TestRedisStore(t *testing.T) {
	client := setupTestRedis(t)
	store := NewRedisStore(client, time.Minute)

	exerciseStore(t, store)

	ttl := client.TTL(context.Background(), redisKeyPrefix+"k2").Val()
	assert.Greater(t, ttl, time.Duration(0))
}

func TestNewStore(t *testing.T) {
	store, err := NewStore(config.SessionConfig{Store: "memory"}, nil)
	require.NoError(t, err)
	assert.IsType(t, &MemoryStore{}, store)

	store, err = NewStore(config.SessionConfig{Store: "file", FilePath: filepath.Join(t.TempDir(), "s.yaml")}, nil)
	require.NoError(t, err)
	assert.IsType(t, &FileStore{}, store)

	_, err = NewStore(config.SessionConfig{Store: "redis"}, nil)
	assert.Error(t, err)

	_, err = NewStore(config.SessionConfig{Store: "etcd"}, nil)
	assert.Error(t, err)
}

func TestNewID(t *testing.T) {
	a, err := NewID()
	require.NoError(t, err)
	b, err := NewID()
	require.NoError(t, err)

	assert.Len(t, a, sessionIDBytes*2)
	assert.NotEqual(t, a, b)
}

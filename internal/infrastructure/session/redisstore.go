package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"skylink/internal/domain/session"
)

const redisKeyPrefix = "skylink:session:"

// RedisStore shares portal sessions between server replicas.
type RedisStore struct {
	client *redis.Client
	prefix string
	ttl    time.Duration
}

// NewRedisStore creates a RedisStore. A zero ttl keeps sessions until they
// are deleted.
func NewRedisStore(client *redis.Client, ttl time.Duration) *RedisStore {
	return &RedisStore{client: client, prefix: redisKeyPrefix, ttl: ttl}
}

func (s *RedisStore) Save(ctx context.Context, key string, sess session.Session) error {
	if key == "" {
		return errors.New("session key cannot be empty")
	}
	data, err := json.Marshal(sess)
	if err != nil {
		return fmt.Errorf("failed to marshal session: %w", err)
	}
	if err := s.client.Set(ctx, s.buildKey(key), data, s.ttl).Err(); err != nil {
		return fmt.Errorf("failed to store session in redis: %w", err)
	}
	return nil
}

// Load returns the session and slides its expiry forward.
func (s *RedisStore) Load(ctx context.Context, key string) (session.Session, error) {
	data, err := s.client.Get(ctx, s.buildKey(key)).Bytes()
	if errors.Is(err, redis.Nil) {
		return session.Session{}, session.ErrNotFound
	}
	if err != nil {
		return session.Session{}, fmt.Errorf("failed to get session from redis: %w", err)
	}

	var sess session.Session
	if err := json.Unmarshal(data, &sess); err != nil {
		return session.Session{}, fmt.Errorf("failed to unmarshal session: %w", err)
	}
	if s.ttl > 0 {
		s.client.Expire(ctx, s.buildKey(key), s.ttl)
	}
	return sess, nil
}

func (s *RedisStore) Delete(ctx context.Context, key string) error {
	return s.client.Del(ctx, s.buildKey(key)).Err()
}

func (s *RedisStore) buildKey(key string) string {
	return s.prefix + key
}

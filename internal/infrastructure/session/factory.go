package session

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"

	"github.com/redis/go-redis/v9"

	"skylink/internal/domain/session"
	"skylink/internal/shared/config"
)

const sessionIDBytes = 16

// NewStore builds the store selected by cfg.Store. The redis client is
// only used for the "redis" store and may be nil otherwise.
func NewStore(cfg config.SessionConfig, client *redis.Client) (session.Store, error) {
	switch cfg.Store {
	case "", "memory":
		return NewMemoryStore(), nil
	case "file":
		return NewFileStore(cfg.FilePath)
	case "redis":
		if client == nil {
			return nil, fmt.Errorf("session store redis requires a redis client")
		}
		return NewRedisStore(client, cfg.GetTTL()), nil
	default:
		return nil, fmt.Errorf("unknown session store %q", cfg.Store)
	}
}

// NewID returns a random hex identifier for a browser session cookie.
func NewID() (string, error) {
	b := make([]byte, sessionIDBytes)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("failed to generate session id: %w", err)
	}
	return hex.EncodeToString(b), nil
}

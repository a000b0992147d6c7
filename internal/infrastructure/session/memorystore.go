package session

import (
	"context"
	"sync"

	"skylink/internal/domain/session"
)

// MemoryStore keeps sessions in process memory. It is the default for the
// portal server, where every browser gets its own key.
type MemoryStore struct {
	mu       sync.RWMutex
	sessions map[string]session.Session
}

// NewMemoryStore creates an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{sessions: make(map[string]session.Session)}
}

func (s *MemoryStore) Save(_ context.Context, key string, sess session.Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[key] = sess
	return nil
}

func (s *MemoryStore) Load(_ context.Context, key string) (session.Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	sess, ok := s.sessions[key]
	if !ok {
		return session.Session{}, session.ErrNotFound
	}
	return sess, nil
}

func (s *MemoryStore) Delete(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, key)
	return nil
}

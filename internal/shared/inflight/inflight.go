// Package inflight rejects a second submission of the same action while
// the first one is still running.
package inflight

import (
	"sync"

	"skylink/internal/shared/errors"
)

// MsgInProgress is returned to a caller whose action is already running.
const MsgInProgress = "This request is already being processed."

// Guard tracks running actions by key.
type Guard struct {
	mu      sync.Mutex
	running map[string]struct{}
}

// NewGuard creates an empty Guard.
func NewGuard() *Guard {
	return &Guard{running: make(map[string]struct{})}
}

// Acquire marks key as running. It returns false when key already is.
// release must be called exactly once when ok is true.
func (g *Guard) Acquire(key string) (release func(), ok bool) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if _, busy := g.running[key]; busy {
		return nil, false
	}
	g.running[key] = struct{}{}
	return func() {
		g.mu.Lock()
		delete(g.running, key)
		g.mu.Unlock()
	}, true
}

// Do runs fn unless key is already running, in which case a conflict
// error is returned without calling fn.
func (g *Guard) Do(key string, fn func() error) error {
	release, ok := g.Acquire(key)
	if !ok {
		return errors.NewConflictError(MsgInProgress)
	}
	defer release()
	return fn()
}

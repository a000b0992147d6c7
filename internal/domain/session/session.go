// Package session defines the client-held proof of authentication that
// gates every dashboard view.
package session

import (
	"context"
	"errors"

	"skylink/internal/shared/authorization"
)

// ErrNotFound is returned by a Store that holds nothing under a key.
var ErrNotFound = errors.New("session not found")

// Session is opaque to the portal apart from routing on Role. The token
// is forwarded to the backend verbatim.
type Session struct {
	Token  string                 `json:"token" yaml:"token"`
	Role   authorization.UserRole `json:"role" yaml:"role"`
	UserID uint                   `json:"userId" yaml:"user_id"`
	Email  string                 `json:"email" yaml:"email"`
}

// IsZero reports an empty session. A session without a token never
// grants access.
func (s Session) IsZero() bool {
	return s.Token == ""
}

// HomeRoute is where this session's user lands after login.
func (s Session) HomeRoute() string {
	return s.Role.HomeRoute()
}

// Store persists sessions by key. Implementations must be safe for
// concurrent use.
type Store interface {
	Save(ctx context.Context, key string, s Session) error
	Load(ctx context.Context, key string) (Session, error)
	Delete(ctx context.Context, key string) error
}

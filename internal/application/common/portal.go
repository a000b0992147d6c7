// Package common holds what every portal use case needs: the session
// check and the binding of a backend client to the session token.
package common

import (
	"context"

	"skylink/internal/domain/session"
	"skylink/internal/shared/authorization"
	"skylink/internal/shared/errors"
)

// MsgNotAuthorized is shown when a session's role does not own the view.
const MsgNotAuthorized = "You are not authorized to view this page."

// Bind returns a backend view authorized with a session token.
type Bind[T any] func(token string) T

// RequireSession returns the holder's session. When roles are given the
// session role must be one of them.
func RequireSession(ctx context.Context, h *session.Holder, roles ...authorization.UserRole) (session.Session, error) {
	if h == nil {
		return session.Session{}, errors.NewNoSessionError()
	}
	s, err := h.Get(ctx)
	if err != nil {
		return session.Session{}, err
	}
	if len(roles) == 0 {
		return s, nil
	}
	for _, r := range roles {
		if s.Role == r {
			return s, nil
		}
	}
	return session.Session{}, errors.NewRoleMismatchError(MsgNotAuthorized)
}

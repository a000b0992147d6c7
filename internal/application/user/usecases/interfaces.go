package usecases

import (
	"context"

	"skylink/internal/domain/user"
)

// AuthAPI is the unauthenticated part of the backend.
type AuthAPI interface {
	Login(ctx context.Context, email, password string) (*user.LoginReply, error)
	Signup(ctx context.Context, req user.Registration) error
}

// ProfileAPI reads one account.
type ProfileAPI interface {
	GetUser(ctx context.Context, id uint) (*user.User, error)
}

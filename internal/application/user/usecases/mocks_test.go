package usecases

import (
	"context"

	"skylink/internal/domain/user"
)

type mockAuthAPI struct {
	LoginFunc  func(ctx context.Context, email, password string) (*user.LoginReply, error)
	SignupFunc func(ctx context.Context, req user.Registration) error
}

func (m *mockAuthAPI) Login(ctx context.Context, email, password string) (*user.LoginReply, error) {
	if m.LoginFunc != nil {
		return m.LoginFunc(ctx, email, password)
	}
	return &user.LoginReply{Token: "t"}, nil
}

func (m *mockAuthAPI) Signup(ctx context.Context, req user.Registration) error {
	if m.SignupFunc != nil {
		return m.SignupFunc(ctx, req)
	}
	return nil
}

type mockProfileAPI struct {
	GetUserFunc func(ctx context.Context, id uint) (*user.User, error)
}

func (m *mockProfileAPI) GetUser(ctx context.Context, id uint) (*user.User, error) {
	return m.GetUserFunc(ctx, id)
}

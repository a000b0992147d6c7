package handlers

import (
	"context"

	commondto "skylink/internal/application/common/dto"
	"skylink/internal/application/user/usecases"
	"skylink/internal/domain/session"
	"skylink/internal/domain/user"
)

type loginUseCase interface {
	Execute(ctx context.Context, h *session.Holder, cmd usecases.LoginWithPasswordCommand) (*usecases.LoginWithPasswordResult, error)
}

type signupUseCase interface {
	Execute(ctx context.Context, req user.Registration) error
}

type logoutUseCase interface {
	Execute(ctx context.Context, h *session.Holder) (string, error)
}

type profileUseCase interface {
	Execute(ctx context.Context, h *session.Holder) (*commondto.UserDTO, error)
}

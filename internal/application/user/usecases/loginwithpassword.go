package usecases

import (
	"context"
	"strings"

	"skylink/internal/domain/session"
	"skylink/internal/shared/logger"
	"skylink/internal/shared/utils"
)

const MsgLoginSucceeded = "Login successful!"

type LoginWithPasswordCommand struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type LoginWithPasswordResult struct {
	Session  session.Session
	Redirect string
}

// LoginWithPasswordUseCase exchanges credentials for a backend token and
// stores the session. The returned redirect depends only on the role the
// backend reported.
type LoginWithPasswordUseCase struct {
	api    AuthAPI
	logger logger.Interface
}

func NewLoginWithPasswordUseCase(api AuthAPI, logger logger.Interface) *LoginWithPasswordUseCase {
	return &LoginWithPasswordUseCase{
		api:    api,
		logger: logger,
	}
}

func (uc *LoginWithPasswordUseCase) Execute(ctx context.Context, h *session.Holder, cmd LoginWithPasswordCommand) (*LoginWithPasswordResult, error) {
	cmd.Email = strings.TrimSpace(cmd.Email)
	if err := utils.ValidateStruct(cmd); err != nil {
		return nil, err
	}

	reply, err := uc.api.Login(ctx, cmd.Email, cmd.Password)
	if err != nil {
		uc.logger.Warnw("login failed", "email", cmd.Email, "error", err)
		return nil, err
	}

	s, err := h.Set(ctx, reply.Token, reply.Role, reply.Email, reply.UserID)
	if err != nil {
		uc.logger.Errorw("failed to store session", "email", reply.Email, "error", err)
		return nil, err
	}

	uc.logger.Infow("user logged in", "user_id", s.UserID, "role", s.Role)

	return &LoginWithPasswordResult{Session: s, Redirect: s.HomeRoute()}, nil
}

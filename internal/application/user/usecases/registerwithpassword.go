package usecases

import (
	"context"

	"skylink/internal/domain/user"
	"skylink/internal/shared/errors"
	"skylink/internal/shared/logger"
	"skylink/internal/shared/utils"
)

const (
	MsgPasswordMismatch = "Passwords don't match"
	MsgSignupSucceeded  = "Account created successfully! Please login."
)

type RegisterWithPasswordUseCase struct {
	api    AuthAPI
	logger logger.Interface
}

func NewRegisterWithPasswordUseCase(api AuthAPI, logger logger.Interface) *RegisterWithPasswordUseCase {
	return &RegisterWithPasswordUseCase{
		api:    api,
		logger: logger,
	}
}

// Execute creates a customer account. It does not log the user in.
func (uc *RegisterWithPasswordUseCase) Execute(ctx context.Context, req user.Registration) error {
	if req.Password != req.ConfirmPassword {
		return errors.NewValidationError(MsgPasswordMismatch)
	}
	req.Normalize()
	if err := utils.ValidateStruct(req); err != nil {
		return err
	}

	if err := uc.api.Signup(ctx, req); err != nil {
		uc.logger.Warnw("signup failed", "email", req.Email, "error", err)
		return err
	}

	uc.logger.Infow("account created", "email", req.Email)
	return nil
}

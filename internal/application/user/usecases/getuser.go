package usecases

import (
	"context"

	"skylink/internal/application/common"
	commondto "skylink/internal/application/common/dto"
	"skylink/internal/domain/session"
	"skylink/internal/shared/logger"
)

// GetProfileUseCase loads the account behind the session.
type GetProfileUseCase struct {
	api    common.Bind[ProfileAPI]
	logger logger.Interface
}

func NewGetProfileUseCase(api common.Bind[ProfileAPI], logger logger.Interface) *GetProfileUseCase {
	return &GetProfileUseCase{api: api, logger: logger}
}

func (uc *GetProfileUseCase) Execute(ctx context.Context, h *session.Holder) (*commondto.UserDTO, error) {
	s, err := common.RequireSession(ctx, h)
	if err != nil {
		return nil, err
	}
	u, err := uc.api(s.Token).GetUser(ctx, s.UserID)
	if err != nil {
		uc.logger.Errorw("failed to get profile", "user_id", s.UserID, "error", err)
		return nil, h.Guard(ctx, err)
	}
	out := commondto.ToUserDTO(*u)
	return &out, nil
}

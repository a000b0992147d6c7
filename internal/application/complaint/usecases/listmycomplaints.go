package usecases

import (
	"context"

	"skylink/internal/application/common"
	commondto "skylink/internal/application/common/dto"
	"skylink/internal/domain/complaint"
	"skylink/internal/domain/session"
	"skylink/internal/shared/authorization"
	"skylink/internal/shared/logger"
)

// ListMyComplaintsUseCase lists the session user's complaints, newest
// first.
type ListMyComplaintsUseCase struct {
	api    common.Bind[CustomerComplaintAPI]
	logger logger.Interface
}

func NewListMyComplaintsUseCase(api common.Bind[CustomerComplaintAPI], logger logger.Interface) *ListMyComplaintsUseCase {
	return &ListMyComplaintsUseCase{api: api, logger: logger}
}

func (uc *ListMyComplaintsUseCase) Execute(ctx context.Context, h *session.Holder) ([]commondto.ComplaintDTO, error) {
	s, err := common.RequireSession(ctx, h, authorization.RoleCustomer)
	if err != nil {
		return nil, err
	}
	mine, err := uc.api(s.Token).ListUserComplaints(ctx, s.UserID)
	if err != nil {
		uc.logger.Errorw("failed to list complaints", "user_id", s.UserID, "error", err)
		return nil, h.Guard(ctx, err)
	}
	return commondto.ToComplaintDTOList(complaint.NewestFirst(mine)), nil
}

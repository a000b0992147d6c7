package usecases

import (
	"context"

	"skylink/internal/application/admin/dto"
	"skylink/internal/application/analytics"
	"skylink/internal/application/common"
	"skylink/internal/domain/session"
	"skylink/internal/shared/authorization"
	"skylink/internal/shared/logger"
)

// GetAdminOverviewUseCase builds the admin Overview tab.
type GetAdminOverviewUseCase struct {
	api        common.Bind[AdminAPI]
	aggregator *analytics.Aggregator
	logger     logger.Interface
}

// NewGetAdminOverviewUseCase creates a new GetAdminOverviewUseCase.
func NewGetAdminOverviewUseCase(
	api common.Bind[AdminAPI],
	aggregator *analytics.Aggregator,
	log logger.Interface,
) *GetAdminOverviewUseCase {
	return &GetAdminOverviewUseCase{
		api:        api,
		aggregator: aggregator,
		logger:     log,
	}
}

// Execute fetches and derives the overview. Backend failures other than a
// rejected session only zero the affected figures.
func (uc *GetAdminOverviewUseCase) Execute(ctx context.Context, h *session.Holder) (*dto.AdminOverviewDTO, error) {
	s, err := common.RequireSession(ctx, h, authorization.RoleAdmin)
	if err != nil {
		return nil, err
	}

	uc.logger.Debugw("fetching admin overview", "user_id", s.UserID)

	ov, err := uc.aggregator.Overview(ctx, uc.api(s.Token))
	if err != nil {
		return nil, h.Guard(ctx, err)
	}
	return dto.ToAdminOverviewDTO(ov), nil
}

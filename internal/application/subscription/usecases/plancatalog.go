package usecases

import (
	"context"
	"strconv"
	"time"

	"skylink/internal/application/common"
	commondto "skylink/internal/application/common/dto"
	"skylink/internal/application/subscription/dto"
	"skylink/internal/domain/plan"
	"skylink/internal/domain/session"
	"skylink/internal/shared/authorization"
	"skylink/internal/shared/errors"
	"skylink/internal/shared/logger"
	"skylink/internal/shared/utils"
)

// ListAvailablePlansUseCase serves the Choose Plan tab.
type ListAvailablePlansUseCase struct {
	api    common.Bind[CustomerAPI]
	logger logger.Interface
}

func NewListAvailablePlansUseCase(api common.Bind[CustomerAPI], log logger.Interface) *ListAvailablePlansUseCase {
	return &ListAvailablePlansUseCase{api: api, logger: log}
}

func (uc *ListAvailablePlansUseCase) Execute(ctx context.Context, h *session.Holder) ([]commondto.PlanDTO, error) {
	s, err := common.RequireSession(ctx, h, authorization.RoleCustomer)
	if err != nil {
		return nil, err
	}
	plans, err := uc.api(s.Token).ListActivePlans(ctx)
	if err != nil {
		uc.logger.Errorw("failed to list active plans", "error", err)
		return nil, h.Guard(ctx, err)
	}
	return commondto.ToPlanDTOList(plans), nil
}

// GetPlanDetailsUseCase serves the Plan Details tab for one active plan.
type GetPlanDetailsUseCase struct {
	api    common.Bind[CustomerAPI]
	logger logger.Interface
	now    func() time.Time
}

func NewGetPlanDetailsUseCase(api common.Bind[CustomerAPI], log logger.Interface) *GetPlanDetailsUseCase {
	return &GetPlanDetailsUseCase{api: api, logger: log, now: time.Now}
}

func (uc *GetPlanDetailsUseCase) Execute(ctx context.Context, h *session.Holder, planID uint) (*dto.PlanDetailsDTO, error) {
	s, err := common.RequireSession(ctx, h, authorization.RoleCustomer)
	if err != nil {
		return nil, err
	}
	plans, err := uc.api(s.Token).ListActivePlans(ctx)
	if err != nil {
		uc.logger.Errorw("failed to list active plans", "error", err)
		return nil, h.Guard(ctx, err)
	}
	p, ok := plan.FindByID(plans, planID)
	if !ok {
		return nil, errors.NewNotFoundError("plan not found")
	}
	return PlanDetails(p, uc.now()), nil
}

// PlanDetails renders the validity window a subscription bought at now
// would cover.
func PlanDetails(p plan.Plan, now time.Time) *dto.PlanDetailsDTO {
	start, end := p.ValidityWindow(now)
	return &dto.PlanDetailsDTO{
		Plan:          commondto.ToPlanDTO(p),
		StartDate:     utils.FormatDate(start),
		EndDate:       utils.FormatDate(end),
		DurationLabel: strconv.Itoa(p.DurationInDays) + " days",
		ConfirmLabel:  "Confirm Subscription - " + utils.FormatPrice(p.Price),
	}
}

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
	"skylink/internal/domain/subscription"
	"skylink/internal/shared/authorization"
	"skylink/internal/shared/errors"
	"skylink/internal/shared/goroutine"
	"skylink/internal/shared/logger"
	"skylink/internal/shared/utils"
)

// GetCustomerOverviewUseCase builds the customer Overview tab.
type GetCustomerOverviewUseCase struct {
	api    common.Bind[CustomerAPI]
	logger logger.Interface
	now    func() time.Time
}

// NewGetCustomerOverviewUseCase creates a new GetCustomerOverviewUseCase.
func NewGetCustomerOverviewUseCase(api common.Bind[CustomerAPI], log logger.Interface) *GetCustomerOverviewUseCase {
	return &GetCustomerOverviewUseCase{api: api, logger: log, now: time.Now}
}

// Execute fetches the active plan catalog and the user's ACTIVE
// subscription concurrently. A failed fetch leaves its part empty; only a
// rejected session is returned as an error.
func (uc *GetCustomerOverviewUseCase) Execute(ctx context.Context, h *session.Holder) (*dto.CustomerOverviewDTO, error) {
	s, err := common.RequireSession(ctx, h, authorization.RoleCustomer)
	if err != nil {
		return nil, err
	}
	return uc.load(ctx, h, s, uc.api(s.Token))
}

func (uc *GetCustomerOverviewUseCase) load(ctx context.Context, h *session.Holder, s session.Session, api CustomerAPI) (*dto.CustomerOverviewDTO, error) {
	var (
		plans  []plan.Plan
		lookup subscription.ActiveLookup
	)
	j := goroutine.NewJoin(uc.logger)
	j.Go("active plans", func() (err error) {
		plans, err = api.ListActivePlans(ctx)
		return err
	})
	j.Go("active subscription", func() (err error) {
		lookup, err = api.GetActiveSubscription(ctx, s.UserID)
		return err
	})
	if err := j.Wait(); err != nil && errors.IsAuthFailure(err) {
		return nil, h.Guard(ctx, err)
	}

	if lookup.Violation() {
		uc.logger.Warnw("user has more than one ACTIVE subscription",
			"user_id", s.UserID,
			"active_rows", lookup.Matches,
		)
	}

	view := dto.CurrentPlanView{
		PlanName:      subscription.NoActivePlanLabel,
		DaysLeft:      utils.NotApplicable,
		DataRemaining: utils.NotApplicable,
		ValidUntil:    utils.NotApplicable,
	}
	action := dto.QuickActionChoosePlan
	if lookup.Found {
		view = CurrentPlan(lookup.Subscription.BindCatalog(plans), uc.now())
		action = dto.QuickActionChangePlan
	}

	return &dto.CustomerOverviewDTO{
		Email:       s.Email,
		CurrentPlan: view,
		QuickAction: action,
		Plans:       commondto.ToPlanDTOList(plans),
	}, nil
}

// CurrentPlan renders a catalog-bound subscription for the overview card.
func CurrentPlan(sub subscription.Subscription, now time.Time) dto.CurrentPlanView {
	return dto.CurrentPlanView{
		HasSubscription: true,
		PlanName:        sub.DisplayName(),
		Status:          sub.Status.String(),
		DaysLeft:        strconv.Itoa(sub.DaysLeft(now)) + " days",
		DataRemaining:   sub.DataRemaining(),
		ValidUntil:      utils.FormatOptionalDate(sub.EndDate),
	}
}

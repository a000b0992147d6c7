package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"skylink/internal/application/subscription/dto"
	"skylink/internal/domain/plan"
	"skylink/internal/domain/subscription"
	vo "skylink/internal/domain/subscription/valueobjects"
	"skylink/internal/shared/authorization"
	"skylink/internal/shared/errors"
	"skylink/internal/shared/inflight"
	"skylink/internal/shared/logger"
)

func f64(v float64) *float64 { return &v }

var fixedNow = time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

func TestGetCustomerOverviewUseCase_WithSubscription(t *testing.T) {
	end := fixedNow.Add(36 * time.Hour)
	api := &mockCustomerAPI{
		ListActivePlansFunc: func(context.Context) ([]plan.Plan, error) {
			return []plan.Plan{{ID: 7, Name: "Premium Plus", Price: 499, DataLimitGB: 10, DurationInDays: 28, Active: true}}, nil
		},
		GetActiveSubscriptionFunc: func(_ context.Context, userID uint) (subscription.ActiveLookup, error) {
			assert.Equal(t, uint(42), userID)
			return subscription.ActiveLookup{
				Subscription: subscription.Subscription{UserID: 42, PlanID: 7, Status: vo.StatusActive, EndDate: &end, DataUsedGB: f64(5)},
				Found:        true,
				Matches:      1,
			}, nil
		},
	}
	uc := NewGetCustomerOverviewUseCase(api.bind(), logger.NewNopLogger())
	uc.now = func() time.Time { return fixedNow }

	got, err := uc.Execute(context.Background(), newHolder(t, authorization.RoleCustomer))
	require.NoError(t, err)

	assert.Equal(t, "asha@skylink.test", got.Email)
	assert.Equal(t, dto.QuickActionChangePlan, got.QuickAction)
	assert.Equal(t, dto.CurrentPlanView{
		HasSubscription: true,
		PlanName:        "Premium Plus",
		Status:          "ACTIVE",
		DaysLeft:        "2 days",
		DataRemaining:   "5 GB",
		ValidUntil:      "02 Mar 2026",
	}, got.CurrentPlan)
	assert.Len(t, got.Plans, 1)
}

func TestGetCustomerOverviewUseCase_NoSubscription(t *testing.T) {
	api := &mockCustomerAPI{}
	uc := NewGetCustomerOverviewUseCase(api.bind(), logger.NewNopLogger())

	got, err := uc.Execute(context.Background(), newHolder(t, authorization.RoleCustomer))
	require.NoError(t, err)

	assert.Equal(t, dto.QuickActionChoosePlan, got.QuickAction)
	assert.False(t, got.CurrentPlan.HasSubscription)
	assert.Equal(t, subscription.NoActivePlanLabel, got.CurrentPlan.PlanName)
	assert.Equal(t, "N/A", got.CurrentPlan.DaysLeft)
	assert.Equal(t, "N/A", got.CurrentPlan.DataRemaining)
}

func TestGetCustomerOverviewUseCase_PartialFailure(t *testing.T) {
	api := &mockCustomerAPI{
		ListActivePlansFunc: func(context.Context) ([]plan.Plan, error) {
			return nil, errors.NewInternalError("boom")
		},
		GetActiveSubscriptionFunc: func(context.Context, uint) (subscription.ActiveLookup, error) {
			return subscription.ActiveLookup{
				Subscription: subscription.Subscription{PlanName: "Basic", Status: vo.StatusActive},
				Found:        true,
				Matches:      2,
			}, nil
		},
	}
	uc := NewGetCustomerOverviewUseCase(api.bind(), logger.NewNopLogger())

	got, err := uc.Execute(context.Background(), newHolder(t, authorization.RoleCustomer))
	require.NoError(t, err)

	assert.Equal(t, "Basic", got.CurrentPlan.PlanName)
	assert.Equal(t, "N/A", got.CurrentPlan.DataRemaining)
	assert.Empty(t, got.Plans)
}

func TestGetCustomerOverviewUseCase_Unauthorized(t *testing.T) {
	api := &mockCustomerAPI{
		GetActiveSubscriptionFunc: func(context.Context, uint) (subscription.ActiveLookup, error) {
			return subscription.ActiveLookup{}, errors.NewUnauthorizedError("expired")
		},
	}
	h := newHolder(t, authorization.RoleCustomer)
	uc := NewGetCustomerOverviewUseCase(api.bind(), logger.NewNopLogger())

	_, err := uc.Execute(context.Background(), h)

	assert.True(t, errors.IsSessionEnded(err))
	_, getErr := h.Get(context.Background())
	assert.Error(t, getErr)
}

func TestGetCustomerOverviewUseCase_AdminRejected(t *testing.T) {
	api := &mockCustomerAPI{}
	uc := NewGetCustomerOverviewUseCase(api.bind(), logger.NewNopLogger())

	_, err := uc.Execute(context.Background(), newHolder(t, authorization.RoleAdmin))

	assert.True(t, errors.IsRoleMismatch(err))
	assert.Empty(t, api.calls)
}

func TestPlanDetails(t *testing.T) {
	got := PlanDetails(plan.Plan{ID: 3, Name: "Enterprise", Price: 1299.5, DurationInDays: 30}, fixedNow)

	assert.Equal(t, "01 Mar 2026", got.StartDate)
	assert.Equal(t, "31 Mar 2026", got.EndDate)
	assert.Equal(t, "30 days", got.DurationLabel)
	assert.Equal(t, "Confirm Subscription - ₹1,299.5", got.ConfirmLabel)
}

func TestGetPlanDetailsUseCase_UnknownPlan(t *testing.T) {
	api := &mockCustomerAPI{
		ListActivePlansFunc: func(context.Context) ([]plan.Plan, error) {
			return []plan.Plan{{ID: 1, Name: "Basic"}}, nil
		},
	}
	uc := NewGetPlanDetailsUseCase(api.bind(), logger.NewNopLogger())

	_, err := uc.Execute(context.Background(), newHolder(t, authorization.RoleCustomer), 9)

	assert.True(t, errors.IsNotFoundError(err))
}

func TestSubscribeUseCase_Execute(t *testing.T) {
	subscribed := false
	api := &mockCustomerAPI{
		SubscribeFunc: func(_ context.Context, userID, planID uint) error {
			assert.Equal(t, uint(42), userID)
			assert.Equal(t, uint(7), planID)
			subscribed = true
			return nil
		},
		GetActiveSubscriptionFunc: func(context.Context, uint) (subscription.ActiveLookup, error) {
			if !subscribed {
				return subscription.ActiveLookup{}, nil
			}
			return subscription.ActiveLookup{
				Subscription: subscription.Subscription{PlanID: 7, PlanName: "Pro", Status: vo.StatusActive},
				Found:        true,
				Matches:      1,
			}, nil
		},
	}
	uc := NewSubscribeUseCase(api.bind(), inflight.NewGuard(), logger.NewNopLogger())

	got, err := uc.Execute(context.Background(), newHolder(t, authorization.RoleCustomer), SubscribeCommand{PlanID: 7})
	require.NoError(t, err)

	assert.Equal(t, MsgSubscribed, got.Message)
	assert.Equal(t, "Pro", got.Overview.CurrentPlan.PlanName)
	assert.Equal(t, dto.QuickActionChangePlan, got.Overview.QuickAction)
}

func TestSubscribeUseCase_DuplicateRejected(t *testing.T) {
	guard := inflight.NewGuard()
	release, ok := guard.Acquire("subscribe:42")
	require.True(t, ok)
	defer release()

	api := &mockCustomerAPI{}
	uc := NewSubscribeUseCase(api.bind(), guard, logger.NewNopLogger())

	_, err := uc.Execute(context.Background(), newHolder(t, authorization.RoleCustomer), SubscribeCommand{PlanID: 7})

	assert.True(t, errors.IsConflictError(err))
	assert.Empty(t, api.calls)
}

func TestSubscribeUseCase_BackendMessageSurfaced(t *testing.T) {
	api := &mockCustomerAPI{
		SubscribeFunc: func(context.Context, uint, uint) error {
			return errors.NewValidationError("User already has an active subscription")
		},
	}
	h := newHolder(t, authorization.RoleCustomer)
	uc := NewSubscribeUseCase(api.bind(), inflight.NewGuard(), logger.NewNopLogger())

	_, err := uc.Execute(context.Background(), h, SubscribeCommand{PlanID: 7})

	assert.Equal(t, "User already has an active subscription", errors.UserMessage(err))
	_, getErr := h.Get(context.Background())
	assert.NoError(t, getErr)
}

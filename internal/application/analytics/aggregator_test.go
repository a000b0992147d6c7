package analytics

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"skylink/internal/domain/complaint"
	complaintvo "skylink/internal/domain/complaint/valueobjects"
	"skylink/internal/domain/subscription"
	subscriptionvo "skylink/internal/domain/subscription/valueobjects"
	"skylink/internal/domain/user"
	"skylink/internal/shared/authorization"
	apperrors "skylink/internal/shared/errors"
	"skylink/internal/shared/logger"
)

type mockSource struct {
	ListUsersFunc                func(ctx context.Context) ([]user.User, error)
	CountActiveSubscriptionsFunc func(ctx context.Context) (int64, error)
	ListSubscriptionsFunc        func(ctx context.Context) ([]subscription.Subscription, error)
	ListComplaintsFunc           func(ctx context.Context) ([]complaint.Complaint, error)
}

func (m *mockSource) ListUsers(ctx context.Context) ([]user.User, error) {
	if m.ListUsersFunc != nil {
		return m.ListUsersFunc(ctx)
	}
	return nil, nil
}

func (m *mockSource) CountActiveSubscriptions(ctx context.Context) (int64, error) {
	if m.CountActiveSubscriptionsFunc != nil {
		return m.CountActiveSubscriptionsFunc(ctx)
	}
	return 0, nil
}

func (m *mockSource) ListSubscriptions(ctx context.Context) ([]subscription.Subscription, error) {
	if m.ListSubscriptionsFunc != nil {
		return m.ListSubscriptionsFunc(ctx)
	}
	return nil, nil
}

func (m *mockSource) ListComplaints(ctx context.Context) ([]complaint.Complaint, error) {
	if m.ListComplaintsFunc != nil {
		return m.ListComplaintsFunc(ctx)
	}
	return nil, nil
}

func sampleUsers() []user.User {
	return []user.User{
		{ID: 1, Role: authorization.RoleCustomer, SubscriptionPlan: "PRO"},
		{ID: 2, Role: authorization.RoleAdmin},
		{ID: 3, Role: authorization.RoleCustomer, SubscriptionPlan: "NONE"},
	}
}

func sampleComplaints() []complaint.Complaint {
	return []complaint.Complaint{
		{ID: 1, Status: complaintvo.StatusOpen},
		{ID: 2, Status: complaintvo.StatusResolved},
		{ID: 3, Status: complaintvo.StatusInProgress},
	}
}

func TestAggregator_Overview(t *testing.T) {
	src := &mockSource{
		ListUsersFunc:                func(context.Context) ([]user.User, error) { return sampleUsers(), nil },
		CountActiveSubscriptionsFunc: func(context.Context) (int64, error) { return 1, nil },
		ListSubscriptionsFunc: func(context.Context) ([]subscription.Subscription, error) {
			return []subscription.Subscription{{UserID: 3, PlanID: 2, Status: subscriptionvo.StatusActive}}, nil
		},
		ListComplaintsFunc: func(context.Context) ([]complaint.Complaint, error) { return sampleComplaints(), nil },
	}

	ov, err := NewAggregator(0, logger.NewNopLogger()).Overview(context.Background(), src)
	require.NoError(t, err)

	assert.Equal(t, Analytics{TotalCustomers: 2, ActiveCustomers: 1, TotalComplaints: 3, PendingIssues: 2}, ov.Analytics)
	assert.False(t, ov.ActiveFromTags)
	assert.Equal(t, map[string]int{"No Plan": 1, "Plan 2": 1}, ov.PlanDistribution.Map())
	assert.Equal(t, ComplaintStatus{Pending: 2, Resolved: 1}, ov.ComplaintStatus)
	assert.Len(t, ov.RecentCustomers, 2)
	assert.Len(t, ov.RecentComplaints, 3)
}

func TestAggregator_CountFallback(t *testing.T) {
	src := &mockSource{
		ListUsersFunc:                func(context.Context) ([]user.User, error) { return sampleUsers(), nil },
		CountActiveSubscriptionsFunc: func(context.Context) (int64, error) { return 0, apperrors.NewInternalError("boom") },
	}

	ov, err := NewAggregator(5, logger.NewNopLogger()).Overview(context.Background(), src)
	require.NoError(t, err)

	assert.True(t, ov.ActiveFromTags)
	assert.Equal(t, int64(1), ov.Analytics.ActiveCustomers)
}

func TestAggregator_TotalFailureGivesDefaults(t *testing.T) {
	fail := errors.New("connection refused")
	src := &mockSource{
		ListUsersFunc:                func(context.Context) ([]user.User, error) { return nil, fail },
		CountActiveSubscriptionsFunc: func(context.Context) (int64, error) { return 0, fail },
		ListSubscriptionsFunc:        func(context.Context) ([]subscription.Subscription, error) { return nil, fail },
		ListComplaintsFunc:           func(context.Context) ([]complaint.Complaint, error) { return nil, fail },
	}

	ov, err := NewAggregator(5, logger.NewNopLogger()).Overview(context.Background(), src)
	require.NoError(t, err)

	assert.Equal(t, Analytics{}, ov.Analytics)
	assert.Empty(t, ov.PlanDistribution)
	assert.Equal(t, ComplaintStatus{}, ov.ComplaintStatus)
	assert.False(t, ov.ActiveFromTags)
}

func TestAggregator_AuthFailureIsReturned(t *testing.T) {
	src := &mockSource{
		ListComplaintsFunc: func(context.Context) ([]complaint.Complaint, error) {
			return nil, apperrors.NewUnauthorizedError("token rejected")
		},
	}

	_, err := NewAggregator(5, logger.NewNopLogger()).Overview(context.Background(), src)
	assert.True(t, apperrors.IsAuthFailure(err))
}

func TestAggregator_ResolvingResolvedComplaintKeepsSplit(t *testing.T) {
	complaints := sampleComplaints()
	src := &mockSource{
		ListComplaintsFunc: func(context.Context) ([]complaint.Complaint, error) { return complaints, nil },
	}
	agg := NewAggregator(5, logger.NewNopLogger())

	before, err := agg.Overview(context.Background(), src)
	require.NoError(t, err)

	// complaint 2 is already RESOLVED; a second resolve leaves it RESOLVED
	complaints[1].Status = complaintvo.StatusResolved
	complaints[1].AdminResponse = complaint.AdminResolutionResponse

	after, err := agg.Overview(context.Background(), src)
	require.NoError(t, err)
	assert.Equal(t, before.ComplaintStatus, after.ComplaintStatus)
}

func TestAggregator_LogsActiveViolations(t *testing.T) {
	var buf bytes.Buffer
	log := logger.NewLoggerWithSlog(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))

	src := &mockSource{
		ListUsersFunc: func(context.Context) ([]user.User, error) { return sampleUsers(), nil },
		ListSubscriptionsFunc: func(context.Context) ([]subscription.Subscription, error) {
			return []subscription.Subscription{
				{UserID: 1, PlanID: 2, Status: subscriptionvo.StatusActive},
				{UserID: 1, PlanID: 5, Status: subscriptionvo.StatusActive},
			}, nil
		},
	}

	ov, err := NewAggregator(5, log).Overview(context.Background(), src)
	require.NoError(t, err)

	assert.Equal(t, map[string]int{"Plan 2": 1, "No Plan": 1}, ov.PlanDistribution.Map())
	assert.Contains(t, buf.String(), "customer has more than one ACTIVE subscription")
	assert.Contains(t, buf.String(), "user_id=1")
	assert.Contains(t, buf.String(), "active_rows=2")
}

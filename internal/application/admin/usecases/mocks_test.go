package usecases

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"skylink/internal/application/common"
	"skylink/internal/domain/complaint"
	complaintvo "skylink/internal/domain/complaint/valueobjects"
	"skylink/internal/domain/plan"
	"skylink/internal/domain/session"
	"skylink/internal/domain/subscription"
	"skylink/internal/domain/user"
	sessionstore "skylink/internal/infrastructure/session"
	"skylink/internal/shared/authorization"
)

type mockAdminAPI struct {
	mu    sync.Mutex
	token string
	calls []string

	ListUsersFunc                func(ctx context.Context) ([]user.User, error)
	CountActiveSubscriptionsFunc func(ctx context.Context) (int64, error)
	ListSubscriptionsFunc        func(ctx context.Context) ([]subscription.Subscription, error)
	ListComplaintsFunc           func(ctx context.Context) ([]complaint.Complaint, error)
	ListPlansFunc                func(ctx context.Context) ([]plan.Plan, error)
	CreatePlanFunc               func(ctx context.Context, in plan.Input) error
	UpdatePlanFunc               func(ctx context.Context, id uint, in plan.Input) error
	SetPlanActiveFunc            func(ctx context.Context, id uint, active bool) error
	DeletePlanFunc               func(ctx context.Context, id uint) error
	UpdateComplaintStatusFunc    func(ctx context.Context, id uint, status complaintvo.ComplaintStatus, adminResponse string) error
}

func (m *mockAdminAPI) record(call string) {
	m.mu.Lock()
	m.calls = append(m.calls, call)
	m.mu.Unlock()
}

func (m *mockAdminAPI) bind() common.Bind[AdminAPI] {
	return func(token string) AdminAPI {
		m.token = token
		return m
	}
}

func (m *mockAdminAPI) ListUsers(ctx context.Context) ([]user.User, error) {
	m.record("ListUsers")
	if m.ListUsersFunc != nil {
		return m.ListUsersFunc(ctx)
	}
	return nil, nil
}

func (m *mockAdminAPI) CountActiveSubscriptions(ctx context.Context) (int64, error) {
	m.record("CountActiveSubscriptions")
	if m.CountActiveSubscriptionsFunc != nil {
		return m.CountActiveSubscriptionsFunc(ctx)
	}
	return 0, nil
}

func (m *mockAdminAPI) ListSubscriptions(ctx context.Context) ([]subscription.Subscription, error) {
	m.record("ListSubscriptions")
	if m.ListSubscriptionsFunc != nil {
		return m.ListSubscriptionsFunc(ctx)
	}
	return nil, nil
}

func (m *mockAdminAPI) ListComplaints(ctx context.Context) ([]complaint.Complaint, error) {
	m.record("ListComplaints")
	if m.ListComplaintsFunc != nil {
		return m.ListComplaintsFunc(ctx)
	}
	return nil, nil
}

func (m *mockAdminAPI) ListPlans(ctx context.Context) ([]plan.Plan, error) {
	m.record("ListPlans")
	if m.ListPlansFunc != nil {
		return m.ListPlansFunc(ctx)
	}
	return nil, nil
}

func (m *mockAdminAPI) CreatePlan(ctx context.Context, in plan.Input) error {
	m.record("CreatePlan")
	if m.CreatePlanFunc != nil {
		return m.CreatePlanFunc(ctx, in)
	}
	return nil
}

func (m *mockAdminAPI) UpdatePlan(ctx context.Context, id uint, in plan.Input) error {
	m.record("UpdatePlan")
	if m.UpdatePlanFunc != nil {
		return m.UpdatePlanFunc(ctx, id, in)
	}
	return nil
}

func (m *mockAdminAPI) SetPlanActive(ctx context.Context, id uint, active bool) error {
	m.record("SetPlanActive")
	if m.SetPlanActiveFunc != nil {
		return m.SetPlanActiveFunc(ctx, id, active)
	}
	return nil
}

func (m *mockAdminAPI) DeletePlan(ctx context.Context, id uint) error {
	m.record("DeletePlan")
	if m.DeletePlanFunc != nil {
		return m.DeletePlanFunc(ctx, id)
	}
	return nil
}

func (m *mockAdminAPI) UpdateComplaintStatus(ctx context.Context, id uint, status complaintvo.ComplaintStatus, adminResponse string) error {
	m.record("UpdateComplaintStatus")
	if m.UpdateComplaintStatusFunc != nil {
		return m.UpdateComplaintStatusFunc(ctx, id, status, adminResponse)
	}
	return nil
}

func newHolder(t *testing.T, role authorization.UserRole) *session.Holder {
	t.Helper()
	h := session.NewHolder(sessionstore.NewMemoryStore(), "test", nil)
	_, err := h.Set(context.Background(), "admin-token", role, "root@skylink.test", 1)
	require.NoError(t, err)
	return h
}

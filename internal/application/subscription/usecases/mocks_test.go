package usecases

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"skylink/internal/application/common"
	"skylink/internal/domain/plan"
	"skylink/internal/domain/session"
	"skylink/internal/domain/subscription"
	sessionstore "skylink/internal/infrastructure/session"
	"skylink/internal/shared/authorization"
)

type mockCustomerAPI struct {
	mu    sync.Mutex
	calls []string

	ListActivePlansFunc       func(ctx context.Context) ([]plan.Plan, error)
	GetActiveSubscriptionFunc func(ctx context.Context, userID uint) (subscription.ActiveLookup, error)
	SubscribeFunc             func(ctx context.Context, userID, planID uint) error
}

func (m *mockCustomerAPI) record(call string) {
	m.mu.Lock()
	m.calls = append(m.calls, call)
	m.mu.Unlock()
}

func (m *mockCustomerAPI) bind() common.Bind[CustomerAPI] {
	return func(string) CustomerAPI { return m }
}

func (m *mockCustomerAPI) ListActivePlans(ctx context.Context) ([]plan.Plan, error) {
	m.record("ListActivePlans")
	if m.ListActivePlansFunc != nil {
		return m.ListActivePlansFunc(ctx)
	}
	return nil, nil
}

func (m *mockCustomerAPI) GetActiveSubscription(ctx context.Context, userID uint) (subscription.ActiveLookup, error) {
	m.record("GetActiveSubscription")
	if m.GetActiveSubscriptionFunc != nil {
		return m.GetActiveSubscriptionFunc(ctx, userID)
	}
	return subscription.ActiveLookup{}, nil
}

func (m *mockCustomerAPI) Subscribe(ctx context.Context, userID, planID uint) error {
	m.record("Subscribe")
	if m.SubscribeFunc != nil {
		return m.SubscribeFunc(ctx, userID, planID)
	}
	return nil
}

func newHolder(t *testing.T, role authorization.UserRole) *session.Holder {
	t.Helper()
	h := session.NewHolder(sessionstore.NewMemoryStore(), "test", nil)
	_, err := h.Set(context.Background(), "cust-token", role, "asha@skylink.test", 42)
	require.NoError(t, err)
	return h
}

package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"skylink/internal/application/common"
	"skylink/internal/domain/complaint"
	"skylink/internal/domain/session"
	sessionstore "skylink/internal/infrastructure/session"
	"skylink/internal/shared/authorization"
)

type mockComplaintAPI struct {
	calls []string

	ListUserComplaintsFunc func(ctx context.Context, userID uint) ([]complaint.Complaint, error)
	CreateComplaintFunc    func(ctx context.Context, draft complaint.Draft) (*complaint.Complaint, error)
}

func (m *mockComplaintAPI) bind() common.Bind[CustomerComplaintAPI] {
	return func(string) CustomerComplaintAPI { return m }
}

func (m *mockComplaintAPI) ListUserComplaints(ctx context.Context, userID uint) ([]complaint.Complaint, error) {
	m.calls = append(m.calls, "ListUserComplaints")
	if m.ListUserComplaintsFunc != nil {
		return m.ListUserComplaintsFunc(ctx, userID)
	}
	return nil, nil
}

func (m *mockComplaintAPI) CreateComplaint(ctx context.Context, draft complaint.Draft) (*complaint.Complaint, error) {
	m.calls = append(m.calls, "CreateComplaint")
	if m.CreateComplaintFunc != nil {
		return m.CreateComplaintFunc(ctx, draft)
	}
	return &complaint.Complaint{ID: 1}, nil
}

func newHolder(t *testing.T, role authorization.UserRole) *session.Holder {
	t.Helper()
	h := session.NewHolder(sessionstore.NewMemoryStore(), "test", nil)
	_, err := h.Set(context.Background(), "cust-token", role, "asha@skylink.test", 42)
	require.NoError(t, err)
	return h
}

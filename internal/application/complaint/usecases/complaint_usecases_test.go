package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"skylink/internal/domain/complaint"
	vo "skylink/internal/domain/complaint/valueobjects"
	"skylink/internal/shared/authorization"
	"skylink/internal/shared/errors"
	"skylink/internal/shared/logger"
	"skylink/internal/shared/services/markdown"
)

func TestSubmitComplaintUseCase_Execute_Success(t *testing.T) {
	var sent complaint.Draft
	api := &mockComplaintAPI{
		CreateComplaintFunc: func(_ context.Context, d complaint.Draft) (*complaint.Complaint, error) {
			sent = d
			return &complaint.Complaint{ID: 17, UserID: d.UserID, Subject: d.Subject, Status: vo.StatusOpen}, nil
		},
		ListUserComplaintsFunc: func(_ context.Context, userID uint) ([]complaint.Complaint, error) {
			assert.Equal(t, uint(42), userID)
			return []complaint.Complaint{
				{ID: 3, Status: vo.StatusResolved, CreatedAt: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)},
				{ID: 17, Status: vo.StatusOpen, CreatedAt: time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)},
			}, nil
		},
	}
	uc := NewSubmitComplaintUseCase(api.bind(), markdown.NewMarkdownService(), logger.NewNopLogger())

	got, err := uc.Execute(context.Background(), newHolder(t, authorization.RoleCustomer), SubmitComplaintCommand{
		Subject:     "  No signal <b>today</b> ",
		Description: "Calls drop after 2 minutes",
	})
	require.NoError(t, err)

	assert.Equal(t, complaint.Draft{
		UserID:      42,
		Subject:     "No signal today",
		Description: "Calls drop after 2 minutes",
		Priority:    vo.PriorityMedium,
	}, sent)
	assert.Equal(t, uint(17), got.ComplaintID)
	assert.Equal(t, "Complaint submitted successfully! ID: 17", got.Message)
	require.Len(t, got.Complaints, 2)
	assert.Equal(t, uint(17), got.Complaints[0].ID)
}

func TestSubmitComplaintUseCase_Execute_Validation(t *testing.T) {
	tests := []struct {
		name string
		cmd  SubmitComplaintCommand
		want string
	}{
		{"blank subject", SubmitComplaintCommand{Subject: "   ", Description: "x"}, MsgComplaintFieldsRequired},
		{"markup only", SubmitComplaintCommand{Subject: "<i></i>", Description: "x"}, MsgComplaintFieldsRequired},
		{"missing description", SubmitComplaintCommand{Subject: "x"}, MsgComplaintFieldsRequired},
		{"bad priority", SubmitComplaintCommand{Subject: "x", Description: "y", Priority: "urgent"}, "invalid priority"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			api := &mockComplaintAPI{}
			uc := NewSubmitComplaintUseCase(api.bind(), markdown.NewMarkdownService(), logger.NewNopLogger())

			_, err := uc.Execute(context.Background(), newHolder(t, authorization.RoleCustomer), tt.cmd)

			require.Error(t, err)
			assert.True(t, errors.IsValidationError(err))
			assert.Equal(t, tt.want, errors.UserMessage(err))
			assert.Empty(t, api.calls)
		})
	}
}

func TestSubmitComplaintUseCase_Execute_ReloadFailureKeepsResult(t *testing.T) {
	api := &mockComplaintAPI{
		ListUserComplaintsFunc: func(context.Context, uint) ([]complaint.Complaint, error) {
			return nil, errors.NewNetworkError(assert.AnError)
		},
	}
	uc := NewSubmitComplaintUseCase(api.bind(), markdown.NewMarkdownService(), logger.NewNopLogger())

	got, err := uc.Execute(context.Background(), newHolder(t, authorization.RoleCustomer), SubmitComplaintCommand{Subject: "a", Description: "b"})

	require.NoError(t, err)
	assert.Equal(t, uint(1), got.ComplaintID)
	assert.Empty(t, got.Complaints)
}

func TestSubmitComplaintUseCase_Execute_SessionExpired(t *testing.T) {
	api := &mockComplaintAPI{
		CreateComplaintFunc: func(context.Context, complaint.Draft) (*complaint.Complaint, error) {
			return nil, errors.NewUnauthorizedError("jwt expired")
		},
	}
	h := newHolder(t, authorization.RoleCustomer)
	uc := NewSubmitComplaintUseCase(api.bind(), markdown.NewMarkdownService(), logger.NewNopLogger())

	_, err := uc.Execute(context.Background(), h, SubmitComplaintCommand{Subject: "a", Description: "b"})

	assert.True(t, errors.IsSessionEnded(err))
	assert.Equal(t, errors.MsgSessionExpired, errors.UserMessage(err))
}

func TestListMyComplaintsUseCase_Execute(t *testing.T) {
	api := &mockComplaintAPI{
		ListUserComplaintsFunc: func(context.Context, uint) ([]complaint.Complaint, error) {
			return []complaint.Complaint{{ID: 1, Status: vo.StatusInProgress}}, nil
		},
	}
	uc := NewListMyComplaintsUseCase(api.bind(), logger.NewNopLogger())

	got, err := uc.Execute(context.Background(), newHolder(t, authorization.RoleCustomer))
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.True(t, got[0].CanResolve)

	_, err = uc.Execute(context.Background(), newHolder(t, authorization.RoleAdmin))
	assert.True(t, errors.IsRoleMismatch(err))
}

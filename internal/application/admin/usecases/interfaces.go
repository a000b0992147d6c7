package usecases

import (
	"context"

	"skylink/internal/application/analytics"
	complaintvo "skylink/internal/domain/complaint/valueobjects"
	"skylink/internal/domain/plan"
)

// AdminAPI is the backend surface the admin dashboard uses.
type AdminAPI interface {
	analytics.Source
	ListPlans(ctx context.Context) ([]plan.Plan, error)
	CreatePlan(ctx context.Context, in plan.Input) error
	UpdatePlan(ctx context.Context, id uint, in plan.Input) error
	SetPlanActive(ctx context.Context, id uint, active bool) error
	DeletePlan(ctx context.Context, id uint) error
	UpdateComplaintStatus(ctx context.Context, id uint, status complaintvo.ComplaintStatus, adminResponse string) error
}

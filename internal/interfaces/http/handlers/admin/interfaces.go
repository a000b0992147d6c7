package admin

import (
	"context"

	"skylink/internal/application/admin/dto"
	"skylink/internal/application/admin/usecases"
	"skylink/internal/domain/plan"
	"skylink/internal/domain/session"
)

type overviewUseCase interface {
	Execute(ctx context.Context, h *session.Holder) (*dto.AdminOverviewDTO, error)
}

type listCustomersUseCase interface {
	Execute(ctx context.Context, h *session.Holder) ([]dto.CustomerRowDTO, error)
}

type listComplaintsUseCase interface {
	Execute(ctx context.Context, h *session.Holder, query usecases.ListComplaintsQuery) (*dto.ComplaintListDTO, error)
}

type resolveComplaintUseCase interface {
	Execute(ctx context.Context, h *session.Holder, cmd usecases.ResolveComplaintCommand) (*dto.ComplaintListDTO, error)
}

type managePlansUseCase interface {
	List(ctx context.Context, h *session.Holder) (*dto.PlanListDTO, error)
	Create(ctx context.Context, h *session.Holder, in plan.Input) (*dto.PlanListDTO, error)
	Update(ctx context.Context, h *session.Holder, id uint, in plan.Input) (*dto.PlanListDTO, error)
	Delete(ctx context.Context, h *session.Holder, id uint) (*dto.PlanListDTO, error)
	Toggle(ctx context.Context, h *session.Holder, id uint) (*dto.PlanListDTO, error)
}

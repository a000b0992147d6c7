package usecases

import (
	"context"

	"skylink/internal/application/admin/dto"
	"skylink/internal/application/common"
	commondto "skylink/internal/application/common/dto"
	"skylink/internal/domain/plan"
	"skylink/internal/domain/session"
	"skylink/internal/shared/authorization"
	"skylink/internal/shared/errors"
	"skylink/internal/shared/logger"
	"skylink/internal/shared/utils"
)

// ManagePlansUseCase is the admin Plans tab. Every mutation is a single
// request followed by a reload of the whole catalog; there is no
// optimistic update and concurrent edits overwrite each other.
type ManagePlansUseCase struct {
	api    common.Bind[AdminAPI]
	logger logger.Interface
}

func NewManagePlansUseCase(api common.Bind[AdminAPI], log logger.Interface) *ManagePlansUseCase {
	return &ManagePlansUseCase{api: api, logger: log}
}

// List returns the catalog, inactive plans included.
func (uc *ManagePlansUseCase) List(ctx context.Context, h *session.Holder) (*dto.PlanListDTO, error) {
	api, err := uc.bind(ctx, h)
	if err != nil {
		return nil, err
	}
	plans, err := api.ListPlans(ctx)
	if err != nil {
		return nil, h.Guard(ctx, err)
	}
	return &dto.PlanListDTO{Plans: commondto.ToPlanDTOList(plans)}, nil
}

// Create validates the form and adds the plan.
func (uc *ManagePlansUseCase) Create(ctx context.Context, h *session.Holder, in plan.Input) (*dto.PlanListDTO, error) {
	api, err := uc.bind(ctx, h)
	if err != nil {
		return nil, err
	}
	in.Normalize()
	if err := utils.ValidateStruct(in); err != nil {
		return nil, err
	}

	uc.logger.Infow("creating plan", "name", in.Name)
	if err := api.CreatePlan(ctx, in); err != nil {
		uc.logger.Errorw("failed to create plan", "name", in.Name, "error", err)
		return nil, h.Guard(ctx, err)
	}
	return uc.reload(ctx, h, api)
}

// Update validates the form and replaces the plan's fields.
func (uc *ManagePlansUseCase) Update(ctx context.Context, h *session.Holder, id uint, in plan.Input) (*dto.PlanListDTO, error) {
	api, err := uc.bind(ctx, h)
	if err != nil {
		return nil, err
	}
	if id == 0 {
		return nil, errors.NewValidationError("plan ID is required")
	}
	in.Normalize()
	if err := utils.ValidateStruct(in); err != nil {
		return nil, err
	}

	uc.logger.Infow("updating plan", "plan_id", id)
	if err := api.UpdatePlan(ctx, id, in); err != nil {
		uc.logger.Errorw("failed to update plan", "plan_id", id, "error", err)
		return nil, h.Guard(ctx, err)
	}
	return uc.reload(ctx, h, api)
}

// Delete removes the plan. Confirmation is the caller's job.
func (uc *ManagePlansUseCase) Delete(ctx context.Context, h *session.Holder, id uint) (*dto.PlanListDTO, error) {
	api, err := uc.bind(ctx, h)
	if err != nil {
		return nil, err
	}
	if id == 0 {
		return nil, errors.NewValidationError("plan ID is required")
	}

	uc.logger.Infow("deleting plan", "plan_id", id)
	if err := api.DeletePlan(ctx, id); err != nil {
		uc.logger.Errorw("failed to delete plan", "plan_id", id, "error", err)
		return nil, h.Guard(ctx, err)
	}
	return uc.reload(ctx, h, api)
}

// Toggle flips the plan between active and inactive. The current status is
// read from the catalog right before the change.
func (uc *ManagePlansUseCase) Toggle(ctx context.Context, h *session.Holder, id uint) (*dto.PlanListDTO, error) {
	api, err := uc.bind(ctx, h)
	if err != nil {
		return nil, err
	}

	plans, err := api.ListPlans(ctx)
	if err != nil {
		return nil, h.Guard(ctx, err)
	}
	current, ok := plan.FindByID(plans, id)
	if !ok {
		return nil, errors.NewNotFoundError("plan not found")
	}

	uc.logger.Infow("changing plan status", "plan_id", id, "active", !current.Active)
	if err := api.SetPlanActive(ctx, id, !current.Active); err != nil {
		uc.logger.Errorw("failed to change plan status", "plan_id", id, "error", err)
		return nil, h.Guard(ctx, err)
	}
	return uc.reload(ctx, h, api)
}

func (uc *ManagePlansUseCase) bind(ctx context.Context, h *session.Holder) (AdminAPI, error) {
	s, err := common.RequireSession(ctx, h, authorization.RoleAdmin)
	if err != nil {
		return nil, err
	}
	return uc.api(s.Token), nil
}

// reload refetches the catalog after a successful mutation. A failed reload
// is logged and yields an empty list; the mutation itself stands.
func (uc *ManagePlansUseCase) reload(ctx context.Context, h *session.Holder, api AdminAPI) (*dto.PlanListDTO, error) {
	plans, err := api.ListPlans(ctx)
	if err != nil {
		if guarded := h.Guard(ctx, err); errors.IsSessionEnded(guarded) {
			return nil, guarded
		}
		uc.logger.Errorw("failed to reload plans", "error", err)
		return &dto.PlanListDTO{Plans: []commondto.PlanDTO{}}, nil
	}
	return &dto.PlanListDTO{Plans: commondto.ToPlanDTOList(plans)}, nil
}

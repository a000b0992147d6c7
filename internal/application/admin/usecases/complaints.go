package usecases

import (
	"context"
	"strconv"

	"skylink/internal/application/admin/dto"
	"skylink/internal/application/analytics"
	"skylink/internal/application/common"
	commondto "skylink/internal/application/common/dto"
	"skylink/internal/domain/complaint"
	complaintvo "skylink/internal/domain/complaint/valueobjects"
	"skylink/internal/domain/session"
	"skylink/internal/shared/authorization"
	"skylink/internal/shared/errors"
	"skylink/internal/shared/inflight"
	"skylink/internal/shared/logger"
)

// ListComplaintsQuery selects the Complaints tab filter.
type ListComplaintsQuery struct {
	Filter complaint.Filter
}

// ListComplaintsUseCase serves the admin Complaints tab.
type ListComplaintsUseCase struct {
	api    common.Bind[AdminAPI]
	logger logger.Interface
}

func NewListComplaintsUseCase(api common.Bind[AdminAPI], log logger.Interface) *ListComplaintsUseCase {
	return &ListComplaintsUseCase{api: api, logger: log}
}

func (uc *ListComplaintsUseCase) Execute(ctx context.Context, h *session.Holder, query ListComplaintsQuery) (*dto.ComplaintListDTO, error) {
	s, err := common.RequireSession(ctx, h, authorization.RoleAdmin)
	if err != nil {
		return nil, err
	}
	return listComplaints(ctx, h, uc.api(s.Token), query.Filter)
}

func listComplaints(ctx context.Context, h *session.Holder, api AdminAPI, filter complaint.Filter) (*dto.ComplaintListDTO, error) {
	all, err := api.ListComplaints(ctx)
	if err != nil {
		return nil, h.Guard(ctx, err)
	}
	if filter == "" {
		filter = complaint.FilterAll
	}
	return &dto.ComplaintListDTO{
		Filter:     string(filter),
		Counts:     analytics.SplitComplaints(all),
		Complaints: commondto.ToComplaintDTOList(filter.Apply(all)),
	}, nil
}

// ResolveComplaintCommand resolves one complaint and reloads the tab with
// Filter.
type ResolveComplaintCommand struct {
	ComplaintID uint
	Filter      complaint.Filter
}

// ResolveComplaintUseCase marks a complaint RESOLVED with the fixed admin
// response. A second resolve of the same complaint while the first is in
// flight is rejected.
type ResolveComplaintUseCase struct {
	api    common.Bind[AdminAPI]
	guard  *inflight.Guard
	logger logger.Interface
}

func NewResolveComplaintUseCase(api common.Bind[AdminAPI], guard *inflight.Guard, log logger.Interface) *ResolveComplaintUseCase {
	return &ResolveComplaintUseCase{api: api, guard: guard, logger: log}
}

func (uc *ResolveComplaintUseCase) Execute(ctx context.Context, h *session.Holder, cmd ResolveComplaintCommand) (*dto.ComplaintListDTO, error) {
	s, err := common.RequireSession(ctx, h, authorization.RoleAdmin)
	if err != nil {
		return nil, err
	}
	if cmd.ComplaintID == 0 {
		return nil, errors.NewValidationError("complaint ID is required")
	}
	api := uc.api(s.Token)

	uc.logger.Infow("resolving complaint", "complaint_id", cmd.ComplaintID, "admin_id", s.UserID)

	key := "complaint:" + strconv.FormatUint(uint64(cmd.ComplaintID), 10)
	err = uc.guard.Do(key, func() error {
		return api.UpdateComplaintStatus(ctx, cmd.ComplaintID, complaintvo.StatusResolved, complaint.AdminResolutionResponse)
	})
	if err != nil {
		uc.logger.Errorw("failed to resolve complaint", "complaint_id", cmd.ComplaintID, "error", err)
		return nil, h.Guard(ctx, err)
	}

	uc.logger.Infow("complaint resolved", "complaint_id", cmd.ComplaintID)

	list, err := listComplaints(ctx, h, api, cmd.Filter)
	if err != nil {
		if errors.IsSessionEnded(err) {
			return nil, err
		}
		uc.logger.Errorw("failed to reload complaints after resolve", "error", err)
		return &dto.ComplaintListDTO{Filter: string(cmd.Filter), Complaints: []commondto.ComplaintDTO{}}, nil
	}
	return list, nil
}

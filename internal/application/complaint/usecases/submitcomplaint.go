package usecases

import (
	"context"
	"fmt"
	"strings"

	"skylink/internal/application/common"
	commondto "skylink/internal/application/common/dto"
	"skylink/internal/domain/complaint"
	vo "skylink/internal/domain/complaint/valueobjects"
	"skylink/internal/domain/session"
	"skylink/internal/shared/authorization"
	"skylink/internal/shared/errors"
	"skylink/internal/shared/logger"
)

const MsgComplaintFieldsRequired = "Please enter both subject and description."

type SubmitComplaintCommand struct {
	Subject     string `json:"subject"`
	Description string `json:"description"`
	// Priority defaults to MEDIUM.
	Priority string `json:"priority"`
}

type SubmitComplaintResult struct {
	ComplaintID uint                     `json:"complaint_id"`
	Message     string                   `json:"message"`
	Complaints  []commondto.ComplaintDTO `json:"complaints"`
}

type SubmitComplaintUseCase struct {
	api       common.Bind[CustomerComplaintAPI]
	sanitizer TextSanitizer
	logger    logger.Interface
}

func NewSubmitComplaintUseCase(
	api common.Bind[CustomerComplaintAPI],
	sanitizer TextSanitizer,
	logger logger.Interface,
) *SubmitComplaintUseCase {
	return &SubmitComplaintUseCase{
		api:       api,
		sanitizer: sanitizer,
		logger:    logger,
	}
}

func (uc *SubmitComplaintUseCase) Execute(ctx context.Context, h *session.Holder, cmd SubmitComplaintCommand) (*SubmitComplaintResult, error) {
	s, err := common.RequireSession(ctx, h, authorization.RoleCustomer)
	if err != nil {
		return nil, err
	}

	draft, err := uc.draft(s.UserID, cmd)
	if err != nil {
		return nil, err
	}
	api := uc.api(s.Token)

	uc.logger.Infow("submitting complaint", "user_id", s.UserID, "priority", draft.Priority)

	created, err := api.CreateComplaint(ctx, draft)
	if err != nil {
		uc.logger.Errorw("failed to submit complaint", "user_id", s.UserID, "error", err)
		return nil, h.Guard(ctx, err)
	}

	uc.logger.Infow("complaint submitted", "complaint_id", created.ID, "user_id", s.UserID)

	result := &SubmitComplaintResult{
		ComplaintID: created.ID,
		Message:     fmt.Sprintf("Complaint submitted successfully! ID: %d", created.ID),
		Complaints:  []commondto.ComplaintDTO{},
	}

	mine, err := api.ListUserComplaints(ctx, s.UserID)
	if err != nil {
		if guarded := h.Guard(ctx, err); errors.IsSessionEnded(guarded) {
			return nil, guarded
		}
		uc.logger.Errorw("failed to reload complaints after submit", "user_id", s.UserID, "error", err)
		return result, nil
	}
	result.Complaints = commondto.ToComplaintDTOList(complaint.NewestFirst(mine))
	return result, nil
}

func (uc *SubmitComplaintUseCase) draft(userID uint, cmd SubmitComplaintCommand) (complaint.Draft, error) {
	subject := uc.sanitizer.StripTags(strings.TrimSpace(cmd.Subject))
	description := uc.sanitizer.StripTags(strings.TrimSpace(cmd.Description))
	if subject == "" || description == "" {
		return complaint.Draft{}, errors.NewValidationError(MsgComplaintFieldsRequired)
	}

	priority, err := vo.NewPriority(cmd.Priority)
	if err != nil {
		return complaint.Draft{}, errors.NewValidationError("invalid priority")
	}

	return complaint.Draft{
		UserID:      userID,
		Subject:     subject,
		Description: description,
		Priority:    priority,
	}, nil
}

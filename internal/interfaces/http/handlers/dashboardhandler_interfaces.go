package handlers

import (
	"context"

	commondto "skylink/internal/application/common/dto"
	complaintusecases "skylink/internal/application/complaint/usecases"
	"skylink/internal/application/help"
	subdto "skylink/internal/application/subscription/dto"
	subusecases "skylink/internal/application/subscription/usecases"
	"skylink/internal/domain/session"
)

type customerOverviewUseCase interface {
	Execute(ctx context.Context, h *session.Holder) (*subdto.CustomerOverviewDTO, error)
}

type listPlansUseCase interface {
	Execute(ctx context.Context, h *session.Holder) ([]commondto.PlanDTO, error)
}

type planDetailsUseCase interface {
	Execute(ctx context.Context, h *session.Holder, planID uint) (*subdto.PlanDetailsDTO, error)
}

type subscribeUseCase interface {
	Execute(ctx context.Context, h *session.Holder, cmd subusecases.SubscribeCommand) (*subdto.SubscribeResultDTO, error)
}

type listMyComplaintsUseCase interface {
	Execute(ctx context.Context, h *session.Holder) ([]commondto.ComplaintDTO, error)
}

type submitComplaintUseCase interface {
	Execute(ctx context.Context, h *session.Holder, cmd complaintusecases.SubmitComplaintCommand) (*complaintusecases.SubmitComplaintResult, error)
}

type faqUseCase interface {
	Execute(ctx context.Context) (*help.FAQDTO, error)
}

package usecases

import (
	"context"
	"strconv"
	"time"

	"skylink/internal/application/common"
	"skylink/internal/application/subscription/dto"
	"skylink/internal/domain/session"
	"skylink/internal/shared/authorization"
	"skylink/internal/shared/errors"
	"skylink/internal/shared/inflight"
	"skylink/internal/shared/logger"
)

const MsgSubscribed = "Subscribed successfully!"

type SubscribeCommand struct {
	PlanID uint
}

// SubscribeUseCase subscribes the session's user to a plan. While one
// subscribe request of a user is in flight, further ones are rejected.
type SubscribeUseCase struct {
	api      common.Bind[CustomerAPI]
	guard    *inflight.Guard
	overview *GetCustomerOverviewUseCase
	logger   logger.Interface
}

func NewSubscribeUseCase(api common.Bind[CustomerAPI], guard *inflight.Guard, log logger.Interface) *SubscribeUseCase {
	return &SubscribeUseCase{
		api:      api,
		guard:    guard,
		overview: &GetCustomerOverviewUseCase{api: api, logger: log, now: time.Now},
		logger:   log,
	}
}

func (uc *SubscribeUseCase) Execute(ctx context.Context, h *session.Holder, cmd SubscribeCommand) (*dto.SubscribeResultDTO, error) {
	s, err := common.RequireSession(ctx, h, authorization.RoleCustomer)
	if err != nil {
		return nil, err
	}
	if cmd.PlanID == 0 {
		return nil, errors.NewValidationError("Please select a plan")
	}
	api := uc.api(s.Token)

	uc.logger.Infow("subscribing user to plan", "user_id", s.UserID, "plan_id", cmd.PlanID)

	key := "subscribe:" + strconv.FormatUint(uint64(s.UserID), 10)
	err = uc.guard.Do(key, func() error {
		return api.Subscribe(ctx, s.UserID, cmd.PlanID)
	})
	if err != nil {
		uc.logger.Errorw("failed to subscribe", "user_id", s.UserID, "plan_id", cmd.PlanID, "error", err)
		return nil, h.Guard(ctx, err)
	}

	uc.logger.Infow("subscription created", "user_id", s.UserID, "plan_id", cmd.PlanID)

	ov, err := uc.overview.load(ctx, h, s, api)
	if err != nil {
		return nil, err
	}
	return &dto.SubscribeResultDTO{Message: MsgSubscribed, Overview: ov}, nil
}

package usecases

import (
	"context"
	"strconv"

	"skylink/internal/application/admin/dto"
	"skylink/internal/application/analytics"
	"skylink/internal/application/common"
	"skylink/internal/domain/session"
	"skylink/internal/domain/subscription"
	"skylink/internal/domain/user"
	"skylink/internal/shared/authorization"
	"skylink/internal/shared/goroutine"
	"skylink/internal/shared/logger"
	"skylink/internal/shared/utils"
)

const (
	CustomerStatusActive   = "Active"
	CustomerStatusInactive = "Inactive"
)

// ListCustomersUseCase joins users with their ACTIVE subscription for the
// Customers tab.
type ListCustomersUseCase struct {
	api    common.Bind[AdminAPI]
	logger logger.Interface
}

// NewListCustomersUseCase creates a new ListCustomersUseCase.
func NewListCustomersUseCase(api common.Bind[AdminAPI], log logger.Interface) *ListCustomersUseCase {
	return &ListCustomersUseCase{api: api, logger: log}
}

func (uc *ListCustomersUseCase) Execute(ctx context.Context, h *session.Holder) ([]dto.CustomerRowDTO, error) {
	s, err := common.RequireSession(ctx, h, authorization.RoleAdmin)
	if err != nil {
		return nil, err
	}
	api := uc.api(s.Token)

	var (
		users []user.User
		subs  []subscription.Subscription
	)
	j := goroutine.NewJoin(uc.logger)
	j.Go("users", func() (err error) {
		users, err = api.ListUsers(ctx)
		return err
	})
	j.Go("subscriptions", func() (err error) {
		subs, err = api.ListSubscriptions(ctx)
		return err
	})
	if err := j.Wait(); err != nil {
		return nil, h.Guard(ctx, err)
	}

	customers := analytics.FilterCustomers(users)
	rows := make([]dto.CustomerRowDTO, 0, len(customers))
	for _, c := range customers {
		lookup := subscription.FindActive(subs, c.ID)
		if lookup.Violation() {
			uc.logger.Warnw("customer has more than one ACTIVE subscription",
				"user_id", c.ID,
				"active_rows", lookup.Matches,
			)
		}
		rows = append(rows, customerRow(c, lookup))
	}
	return rows, nil
}

func customerRow(c user.User, lookup subscription.ActiveLookup) dto.CustomerRowDTO {
	row := dto.CustomerRowDTO{
		ID:           c.ID,
		Name:         c.Name,
		Email:        c.Email,
		MobileNumber: c.MobileNumber,
		Plan:         user.NoPlanTag,
		Status:       CustomerStatusInactive,
		JoinedOn:     utils.FormatDate(c.CreatedAt),
		LastUpdated:  utils.FormatOptionalDate(c.UpdatedAt),
	}
	if lookup.Found {
		row.Status = CustomerStatusActive
		row.Plan = utils.NotApplicable
		if id := lookup.Subscription.PlanID; id != 0 {
			row.Plan = strconv.FormatUint(uint64(id), 10)
		}
	}
	return row
}

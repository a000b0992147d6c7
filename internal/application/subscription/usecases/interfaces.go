package usecases

import (
	"context"

	"skylink/internal/domain/plan"
	"skylink/internal/domain/subscription"
)

// CustomerAPI is the slice of the backend the customer dashboard uses.
type CustomerAPI interface {
	ListActivePlans(ctx context.Context) ([]plan.Plan, error)
	// GetActiveSubscription reports Found=false when the user has none.
	GetActiveSubscription(ctx context.Context, userID uint) (subscription.ActiveLookup, error)
	Subscribe(ctx context.Context, userID, planID uint) error
}

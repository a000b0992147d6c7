package analytics

import (
	"context"
	"errors"
	"sync"

	"skylink/internal/domain/complaint"
	"skylink/internal/domain/subscription"
	"skylink/internal/domain/user"
	"skylink/internal/shared/goroutine"
	apperrors "skylink/internal/shared/errors"
	"skylink/internal/shared/logger"
)

// Source is the slice of the backend the aggregator reads.
type Source interface {
	ListUsers(ctx context.Context) ([]user.User, error)
	CountActiveSubscriptions(ctx context.Context) (int64, error)
	ListSubscriptions(ctx context.Context) ([]subscription.Subscription, error)
	ListComplaints(ctx context.Context) ([]complaint.Complaint, error)
}

// Analytics are the four headline figures.
type Analytics struct {
	TotalCustomers  int   `json:"total_customers"`
	ActiveCustomers int64 `json:"active_customers"`
	TotalComplaints int   `json:"total_complaints"`
	PendingIssues   int   `json:"pending_issues"`
}

// Overview is everything the admin Overview tab shows.
type Overview struct {
	Analytics        Analytics
	PlanDistribution PlanDistribution
	ComplaintStatus  ComplaintStatus
	RecentCustomers  []user.User
	RecentComplaints []complaint.Complaint
	// ActiveFromTags is set when ActiveCustomers was estimated from plan
	// tags because the backend count failed.
	ActiveFromTags bool
}

// Aggregator builds the admin overview.
type Aggregator struct {
	recentLimit int
	logger      logger.Interface
}

// NewAggregator creates an Aggregator. A non-positive recentLimit uses
// DefaultRecentLimit.
func NewAggregator(recentLimit int, log logger.Interface) *Aggregator {
	if recentLimit <= 0 {
		recentLimit = DefaultRecentLimit
	}
	return &Aggregator{recentLimit: recentLimit, logger: log}
}

// Overview fetches users, the active count, subscriptions and complaints
// concurrently and derives the dashboard. A failed fetch only zeroes the
// figures that depend on it. The returned error is non-nil only when the
// backend rejected the session, so the caller can end it.
func (a *Aggregator) Overview(ctx context.Context, src Source) (*Overview, error) {
	var (
		users       []user.User
		activeCount int64
		subs        []subscription.Subscription
		complaints  []complaint.Complaint

		mu       sync.Mutex
		usersOK  bool
		countOK  bool
		authFail error
	)

	noteAuth := func(err error) {
		if apperrors.IsAuthFailure(err) {
			mu.Lock()
			if authFail == nil {
				authFail = err
			}
			mu.Unlock()
		}
	}

	j := goroutine.NewJoin(a.logger)
	j.Go("users", func() error {
		res, err := src.ListUsers(ctx)
		if err != nil {
			noteAuth(err)
			return err
		}
		users, usersOK = res, true
		return nil
	})
	j.Go("active subscription count", func() error {
		n, err := src.CountActiveSubscriptions(ctx)
		if err != nil {
			noteAuth(err)
			return err
		}
		activeCount, countOK = n, true
		return nil
	})
	j.Go("subscriptions", func() error {
		res, err := src.ListSubscriptions(ctx)
		if err != nil {
			noteAuth(err)
			return err
		}
		subs = res
		return nil
	})
	j.Go("complaints", func() error {
		res, err := src.ListComplaints(ctx)
		if err != nil {
			noteAuth(err)
			return err
		}
		complaints = res
		return nil
	})
	_ = j.Wait()

	if authFail != nil {
		return nil, authFail
	}
	if err := ctx.Err(); err != nil && errors.Is(err, context.Canceled) {
		return nil, err
	}

	customers := FilterCustomers(users)
	ov := &Overview{
		Analytics: Analytics{
			TotalCustomers:  len(customers),
			ActiveCustomers: activeCount,
			TotalComplaints: len(complaints),
			PendingIssues:   CountPending(complaints),
		},
		PlanDistribution: DistributePlans(customers, subs),
		ComplaintStatus:  SplitComplaints(complaints),
		RecentCustomers:  RecentCustomers(customers, a.recentLimit),
		RecentComplaints: RecentComplaints(complaints, a.recentLimit),
	}
	if !countOK && usersOK {
		ov.Analytics.ActiveCustomers = int64(CountTaggedActive(customers))
		ov.ActiveFromTags = true
		a.logger.Warnw("active customer count estimated from plan tags",
			"active_customers", ov.Analytics.ActiveCustomers,
		)
	}
	for id, n := range ActiveViolations(customers, subs) {
		a.logger.Warnw("customer has more than one ACTIVE subscription",
			"user_id", id,
			"active_rows", n,
		)
	}
	a.logger.Debugw("overview derived",
		"plan_distribution", ov.PlanDistribution.Map(),
		"pending", ov.ComplaintStatus.Pending,
		"resolved", ov.ComplaintStatus.Resolved,
	)
	if ov.PlanDistribution == nil {
		ov.PlanDistribution = PlanDistribution{}
	}
	return ov, nil
}

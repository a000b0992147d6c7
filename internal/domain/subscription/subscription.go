// Package subscription models a user's binding to a plan and the
// derivations the dashboards display from it.
package subscription

import (
	"math"
	"strconv"
	"time"

	"skylink/internal/domain/plan"
	vo "skylink/internal/domain/subscription/valueobjects"
)

const (
	NoActivePlanLabel = "No Active Plan"
	UnnamedPlanLabel  = "Active Plan"
	NotAvailable      = "N/A"
)

// Subscription is the canonical shape every backend response is
// normalized into. PlanName is the explicit name or the embedded plan's
// name. DataLimitGB is the limit known for the subscribed plan, if any.
type Subscription struct {
	ID          uint
	UserID      uint
	PlanID      uint
	PlanName    string
	Plan        *plan.Plan
	Status      vo.SubscriptionStatus
	StartDate   *time.Time
	EndDate     *time.Time
	DataLeftGB  *float64
	DataUsedGB  *float64
	DataLimitGB *float64
}

// BindCatalog resolves the subscribed plan against the plan list fetched
// alongside the subscription. An embedded plan that carries a data limit
// wins; otherwise the catalog is searched by id and then by name. The
// receiver is not modified.
func (s Subscription) BindCatalog(catalog []plan.Plan) Subscription {
	if s.Plan != nil && s.Plan.HasDataLimit() {
		limit := s.Plan.DataLimitGB
		s.DataLimitGB = &limit
		return s
	}

	if s.PlanID != 0 {
		if p, ok := plan.FindByID(catalog, s.PlanID); ok {
			return s.withPlan(p)
		}
	}
	if p, ok := plan.FindByName(catalog, s.PlanName); ok {
		return s.withPlan(p)
	}
	return s
}

func (s Subscription) withPlan(p plan.Plan) Subscription {
	s.Plan = &p
	limit := p.DataLimitGB
	s.DataLimitGB = &limit
	return s
}

// DisplayName tries the explicit name, then the resolved plan's name.
func (s Subscription) DisplayName() string {
	if s.PlanName != "" {
		return s.PlanName
	}
	if s.Plan != nil && s.Plan.Name != "" {
		return s.Plan.Name
	}
	return UnnamedPlanLabel
}

// RemainingDataGB prefers the backend's explicit dataLeft, then
// limit minus used floored at zero, then the full limit.
func (s Subscription) RemainingDataGB() (float64, bool) {
	if s.DataLeftGB != nil {
		return *s.DataLeftGB, true
	}
	if s.DataLimitGB == nil {
		return 0, false
	}
	if s.DataUsedGB != nil {
		return math.Max(0, *s.DataLimitGB-*s.DataUsedGB), true
	}
	return *s.DataLimitGB, true
}

// DataRemaining renders RemainingDataGB for display, e.g. "5 GB" or "N/A".
func (s Subscription) DataRemaining() string {
	gb, ok := s.RemainingDataGB()
	if !ok {
		return NotAvailable
	}
	return FormatGB(gb)
}

// DaysLeft counts whole days until EndDate, rounding up and never
// going below zero. A missing end date yields zero.
func (s Subscription) DaysLeft(now time.Time) int {
	if s.EndDate == nil {
		return 0
	}
	days := int(math.Ceil(s.EndDate.Sub(now).Hours() / 24))
	if days < 0 {
		return 0
	}
	return days
}

// FormatGB prints a data amount without trailing zeros.
func FormatGB(gb float64) string {
	return strconv.FormatFloat(gb, 'f', -1, 64) + " GB"
}

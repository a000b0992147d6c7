// Package analytics derives the admin dashboard figures from raw backend
// lists. Every figure is recomputed from scratch on each fetch.
package analytics

import (
	"sort"
	"strconv"

	"skylink/internal/domain/complaint"
	"skylink/internal/domain/subscription"
	"skylink/internal/domain/user"
)

const NoPlanBucket = "No Plan"

// DefaultRecentLimit is how many recent customers and complaints the
// overview lists.
const DefaultRecentLimit = 5

// PlanBucket is one slice of the plan distribution chart.
type PlanBucket struct {
	Label string `json:"label"`
	Count int    `json:"count"`
}

// PlanDistribution keeps buckets in the order their label first appeared.
type PlanDistribution []PlanBucket

// Map returns the label to count view of the distribution.
func (d PlanDistribution) Map() map[string]int {
	m := make(map[string]int, len(d))
	for _, b := range d {
		m[b.Label] = b.Count
	}
	return m
}

// ComplaintStatus has exactly two buckets. Pending+Resolved always equals
// the number of complaints counted.
type ComplaintStatus struct {
	Pending  int `json:"pending"`
	Resolved int `json:"resolved"`
}

// FilterCustomers keeps the accounts counted as customers.
func FilterCustomers(users []user.User) []user.User {
	out := make([]user.User, 0, len(users))
	for _, u := range users {
		if u.IsCustomer() {
			out = append(out, u)
		}
	}
	return out
}

// CountTaggedActive approximates active customers from subscriptionPlan
// tags. It is only used when the backend count is unavailable and may
// disagree with it.
func CountTaggedActive(customers []user.User) int {
	n := 0
	for _, c := range customers {
		if c.HasPlanTag() {
			n++
		}
	}
	return n
}

// CountPending counts complaints that are not RESOLVED or CLOSED. Unknown
// or empty statuses count as pending so pending plus resolved stays equal
// to the total.
func CountPending(complaints []complaint.Complaint) int {
	n := 0
	for _, c := range complaints {
		if c.IsPending() {
			n++
		}
	}
	return n
}

// SplitComplaints buckets complaints into pending and resolved.
func SplitComplaints(complaints []complaint.Complaint) ComplaintStatus {
	pending := CountPending(complaints)
	return ComplaintStatus{Pending: pending, Resolved: len(complaints) - pending}
}

// PlanLabel names the distribution bucket of a customer's ACTIVE
// subscription.
func PlanLabel(lookup subscription.ActiveLookup) string {
	if !lookup.Found {
		return NoPlanBucket
	}
	s := lookup.Subscription
	switch {
	case s.PlanID != 0:
		return "Plan " + strconv.FormatUint(uint64(s.PlanID), 10)
	case s.PlanName != "":
		return "Plan " + s.PlanName
	default:
		return "Plan unknown"
	}
}

// DistributePlans counts customers per ACTIVE plan. Customers without an
// ACTIVE subscription fall into "No Plan" whatever their tag says.
func DistributePlans(customers []user.User, subs []subscription.Subscription) PlanDistribution {
	var dist PlanDistribution
	index := make(map[string]int)
	for _, c := range customers {
		label := PlanLabel(subscription.FindActive(subs, c.ID))
		if i, ok := index[label]; ok {
			dist[i].Count++
			continue
		}
		index[label] = len(dist)
		dist = append(dist, PlanBucket{Label: label, Count: 1})
	}
	return dist
}

// ActiveViolations maps each customer with more than one ACTIVE
// subscription to the number of ACTIVE rows found.
func ActiveViolations(customers []user.User, subs []subscription.Subscription) map[uint]int {
	out := make(map[uint]int)
	for _, c := range customers {
		if lookup := subscription.FindActive(subs, c.ID); lookup.Violation() {
			out[c.ID] = lookup.Matches
		}
	}
	return out
}

// RecentCustomers returns the newest limit customers by creation time.
func RecentCustomers(customers []user.User, limit int) []user.User {
	sorted := make([]user.User, len(customers))
	copy(sorted, customers)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].CreatedAt.After(sorted[j].CreatedAt)
	})
	return head(sorted, limit)
}

// RecentComplaints returns the newest limit complaints by creation time.
func RecentComplaints(complaints []complaint.Complaint, limit int) []complaint.Complaint {
	return head(complaint.NewestFirst(complaints), limit)
}

func head[T any](items []T, limit int) []T {
	if limit >= 0 && len(items) > limit {
		return items[:limit]
	}
	return items
}

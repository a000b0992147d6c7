package valueobjects

import "strings"

type SubscriptionStatus string

const (
	StatusActive    SubscriptionStatus = "ACTIVE"
	StatusPending   SubscriptionStatus = "PENDING"
	StatusExpired   SubscriptionStatus = "EXPIRED"
	StatusCancelled SubscriptionStatus = "CANCELLED"
	StatusSuspended SubscriptionStatus = "SUSPENDED"
)

func (s SubscriptionStatus) String() string {
	return string(s)
}

func (s SubscriptionStatus) IsActive() bool {
	return s == StatusActive
}

// ParseSubscriptionStatus upper-cases whatever the backend sent. The
// backend mixes "ACTIVE" and "active" across endpoints.
func ParseSubscriptionStatus(s string) SubscriptionStatus {
	return SubscriptionStatus(strings.ToUpper(strings.TrimSpace(s)))
}

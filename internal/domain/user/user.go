// Package user holds the portal's read model of backend user accounts.
package user

import (
	"strings"
	"time"

	"skylink/internal/shared/authorization"
)

// NoPlanTag is the placeholder the backend writes into subscriptionPlan
// for users without a plan.
const NoPlanTag = "NONE"

// User is a backend-owned account. The portal never mutates it.
type User struct {
	ID               uint
	Name             string
	Email            string
	MobileNumber     string
	Role             authorization.UserRole
	SubscriptionPlan string
	CreatedAt        time.Time
	UpdatedAt        *time.Time
}

// IsAdmin reports the backend role tag only.
func (u User) IsAdmin() bool {
	return u.Role.IsAdmin()
}

// IsCustomer reports whether the user counts as a customer for admin
// views. Admins are excluded unless they carry a subscription plan tag
// other than "NONE", which tolerates accounts the backend tagged
// inconsistently.
func (u User) IsCustomer() bool {
	if !u.IsAdmin() {
		return true
	}
	return u.SubscriptionPlan != "" && u.SubscriptionPlan != NoPlanTag
}

// HasPlanTag reports a subscriptionPlan value that names a plan: non-empty
// and not "none" in any casing. It only approximates the authoritative
// active-subscription count.
func (u User) HasPlanTag() bool {
	tag := strings.TrimSpace(u.SubscriptionPlan)
	return tag != "" && !strings.EqualFold(tag, NoPlanTag)
}

// Registration is the signup form as sent to the backend.
type Registration struct {
	Name            string `json:"name" validate:"required"`
	Email           string `json:"email" validate:"required,email"`
	MobileNumber    string `json:"mobileNumber" validate:"required,mobile"`
	Password        string `json:"password" validate:"required"`
	ConfirmPassword string `json:"-"`
}

// Normalize trims every field except the passwords.
func (r *Registration) Normalize() {
	r.Name = strings.TrimSpace(r.Name)
	r.Email = strings.TrimSpace(r.Email)
	r.MobileNumber = strings.TrimSpace(r.MobileNumber)
}

// LoginReply is what a successful login yields, whatever shape the
// backend used.
type LoginReply struct {
	Token  string
	Role   authorization.UserRole
	Email  string
	UserID uint
}

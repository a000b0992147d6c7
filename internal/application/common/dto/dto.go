// Package dto holds the view models shared by the customer and admin
// dashboards.
package dto

import (
	"time"

	"skylink/internal/domain/complaint"
	"skylink/internal/domain/plan"
	"skylink/internal/domain/user"
	"skylink/internal/shared/utils"
)

// PlanDTO is a plan card.
type PlanDTO struct {
	ID             uint    `json:"id"`
	Name           string  `json:"name"`
	Description    string  `json:"description"`
	Price          float64 `json:"price"`
	PriceLabel     string  `json:"price_label"`
	DurationInDays int     `json:"duration_in_days"`
	DataLimitGB    float64 `json:"data_limit_gb"`
	SpeedMbps      int     `json:"speed_mbps"`
	Active         bool    `json:"active"`
	StatusLabel    string  `json:"status_label"`
}

// ComplaintDTO is one row of a complaint table.
type ComplaintDTO struct {
	ID            uint      `json:"id"`
	UserID        uint      `json:"user_id"`
	Subject       string    `json:"subject"`
	Description   string    `json:"description"`
	Status        string    `json:"status"`
	StatusLabel   string    `json:"status_label"`
	Priority      string    `json:"priority"`
	AdminResponse string    `json:"admin_response,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
	CreatedOn     string    `json:"created_on"`
	CanResolve    bool      `json:"can_resolve"`
}

// UserDTO is a customer as listed on the admin overview.
type UserDTO struct {
	ID               uint      `json:"id"`
	Name             string    `json:"name"`
	Email            string    `json:"email"`
	MobileNumber     string    `json:"mobile_number,omitempty"`
	Role             string    `json:"role"`
	SubscriptionPlan string    `json:"subscription_plan,omitempty"`
	CreatedAt        time.Time `json:"created_at"`
	JoinedOn         string    `json:"joined_on"`
}

func ToPlanDTO(p plan.Plan) PlanDTO {
	status := "Inactive"
	if p.Active {
		status = "Active"
	}
	return PlanDTO{
		ID:             p.ID,
		Name:           p.Name,
		Description:    p.Description,
		Price:          p.Price,
		PriceLabel:     utils.FormatPrice(p.Price),
		DurationInDays: p.DurationInDays,
		DataLimitGB:    p.DataLimitGB,
		SpeedMbps:      p.SpeedMbps,
		Active:         p.Active,
		StatusLabel:    status,
	}
}

func ToPlanDTOList(plans []plan.Plan) []PlanDTO {
	out := make([]PlanDTO, 0, len(plans))
	for _, p := range plans {
		out = append(out, ToPlanDTO(p))
	}
	return out
}

func ToComplaintDTO(c complaint.Complaint) ComplaintDTO {
	return ComplaintDTO{
		ID:            c.ID,
		UserID:        c.UserID,
		Subject:       c.Subject,
		Description:   c.Description,
		Status:        c.Status.String(),
		StatusLabel:   c.Status.Label(),
		Priority:      c.Priority.String(),
		AdminResponse: c.AdminResponse,
		CreatedAt:     c.CreatedAt,
		CreatedOn:     utils.FormatDate(c.CreatedAt),
		CanResolve:    c.CanResolve(),
	}
}

func ToComplaintDTOList(complaints []complaint.Complaint) []ComplaintDTO {
	out := make([]ComplaintDTO, 0, len(complaints))
	for _, c := range complaints {
		out = append(out, ToComplaintDTO(c))
	}
	return out
}

func ToUserDTO(u user.User) UserDTO {
	return UserDTO{
		ID:               u.ID,
		Name:             u.Name,
		Email:            u.Email,
		MobileNumber:     u.MobileNumber,
		Role:             u.Role.String(),
		SubscriptionPlan: u.SubscriptionPlan,
		CreatedAt:        u.CreatedAt,
		JoinedOn:         utils.FormatDate(u.CreatedAt),
	}
}

func ToUserDTOList(users []user.User) []UserDTO {
	out := make([]UserDTO, 0, len(users))
	for _, u := range users {
		out = append(out, ToUserDTO(u))
	}
	return out
}

package dto

import (
	"skylink/internal/application/analytics"
	commondto "skylink/internal/application/common/dto"
)

// AdminOverviewDTO is the admin Overview tab.
type AdminOverviewDTO struct {
	Analytics        analytics.Analytics       `json:"analytics"`
	ActiveFromTags   bool                      `json:"active_from_tags"`
	PlanDistribution []analytics.PlanBucket    `json:"plan_distribution"`
	ComplaintStatus  analytics.ComplaintStatus `json:"complaint_status"`
	RecentCustomers  []commondto.UserDTO       `json:"recent_customers"`
	RecentComplaints []commondto.ComplaintDTO  `json:"recent_complaints"`
}

// CustomerRowDTO is one row of the admin Customers tab.
type CustomerRowDTO struct {
	ID           uint   `json:"id"`
	Name         string `json:"name"`
	Email        string `json:"email"`
	MobileNumber string `json:"mobile_number"`
	Plan         string `json:"plan"`
	Status       string `json:"status"`
	JoinedOn     string `json:"joined_on"`
	LastUpdated  string `json:"last_updated"`
}

// ComplaintListDTO is the admin Complaints tab.
type ComplaintListDTO struct {
	Filter     string                    `json:"filter"`
	Counts     analytics.ComplaintStatus `json:"counts"`
	Complaints []commondto.ComplaintDTO  `json:"complaints"`
}

// PlanListDTO is the admin Plans tab.
type PlanListDTO struct {
	Plans []commondto.PlanDTO `json:"plans"`
}

func ToAdminOverviewDTO(ov *analytics.Overview) *AdminOverviewDTO {
	return &AdminOverviewDTO{
		Analytics:        ov.Analytics,
		ActiveFromTags:   ov.ActiveFromTags,
		PlanDistribution: ov.PlanDistribution,
		ComplaintStatus:  ov.ComplaintStatus,
		RecentCustomers:  commondto.ToUserDTOList(ov.RecentCustomers),
		RecentComplaints: commondto.ToComplaintDTOList(ov.RecentComplaints),
	}
}

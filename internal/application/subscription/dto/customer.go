package dto

import (
	commondto "skylink/internal/application/common/dto"
)

const (
	QuickActionChangePlan = "Change Plan"
	QuickActionChoosePlan = "Choose Plan"
)

// CurrentPlanView is the "current plan" card of the customer overview.
// Every field is display-ready.
type CurrentPlanView struct {
	HasSubscription bool   `json:"has_subscription"`
	PlanName        string `json:"plan_name"`
	Status          string `json:"status,omitempty"`
	DaysLeft        string `json:"days_left"`
	DataRemaining   string `json:"data_remaining"`
	ValidUntil      string `json:"valid_until"`
}

// CustomerOverviewDTO is the customer Overview tab.
type CustomerOverviewDTO struct {
	Email       string              `json:"email"`
	CurrentPlan CurrentPlanView     `json:"current_plan"`
	QuickAction string              `json:"quick_action"`
	Plans       []commondto.PlanDTO `json:"plans"`
}

// PlanDetailsDTO is the Plan Details tab shown before subscribing.
type PlanDetailsDTO struct {
	Plan          commondto.PlanDTO `json:"plan"`
	StartDate     string            `json:"start_date"`
	EndDate       string            `json:"end_date"`
	DurationLabel string            `json:"duration_label"`
	ConfirmLabel  string            `json:"confirm_label"`
}

// SubscribeResultDTO carries the refreshed overview after a subscription.
type SubscribeResultDTO struct {
	Message  string               `json:"message"`
	Overview *CustomerOverviewDTO `json:"overview"`
}

// Package plan describes purchasable service tiers.
package plan

import (
	"strings"
	"time"
)

// Plan is a service tier as the backend reports it.
type Plan struct {
	ID             uint
	Name           string
	Description    string
	Price          float64
	DurationInDays int
	DataLimitGB    float64
	SpeedMbps      int
	Active         bool
}

// Input is the admin plan form. Field names follow the backend payload.
type Input struct {
	Name           string  `json:"name" validate:"required"`
	Description    string  `json:"description" validate:"required"`
	Price          float64 `json:"price" validate:"gte=0"`
	DurationInDays int     `json:"durationInDays" validate:"gte=1"`
	DataLimitGB    float64 `json:"dataLimitGB" validate:"gte=0"`
	SpeedMbps      int     `json:"speedMbps" validate:"gte=0"`
	Active         bool    `json:"active"`
}

// Normalize trims the free-text fields in place.
func (in *Input) Normalize() {
	in.Name = strings.TrimSpace(in.Name)
	in.Description = strings.TrimSpace(in.Description)
}

// ToInput seeds an edit form from an existing plan.
func (p Plan) ToInput() Input {
	return Input{
		Name:           p.Name,
		Description:    p.Description,
		Price:          p.Price,
		DurationInDays: p.DurationInDays,
		DataLimitGB:    p.DataLimitGB,
		SpeedMbps:      p.SpeedMbps,
		Active:         p.Active,
	}
}

// HasDataLimit reports a positive data allowance.
func (p Plan) HasDataLimit() bool {
	return p.DataLimitGB > 0
}

// ValidityWindow is the period a subscription bought at now would cover.
func (p Plan) ValidityWindow(now time.Time) (start, end time.Time) {
	return now, now.AddDate(0, 0, p.DurationInDays)
}

// FindByID returns the first plan with the given id.
func FindByID(plans []Plan, id uint) (Plan, bool) {
	for _, p := range plans {
		if p.ID == id {
			return p, true
		}
	}
	return Plan{}, false
}

// FindByName returns the first plan whose name matches exactly.
func FindByName(plans []Plan, name string) (Plan, bool) {
	if name == "" {
		return Plan{}, false
	}
	for _, p := range plans {
		if p.Name == name {
			return p, true
		}
	}
	return Plan{}, false
}

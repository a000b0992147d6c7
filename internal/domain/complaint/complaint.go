// Package complaint models customer support tickets as the portal sees
// them.
package complaint

import (
	"sort"
	"strings"
	"time"

	vo "skylink/internal/domain/complaint/valueobjects"
)

// AdminResolutionResponse is attached to every complaint an admin
// resolves from the portal. There is no free-text response.
const AdminResolutionResponse = "Issue has been resolved by admin."

type Complaint struct {
	ID            uint
	UserID        uint
	Subject       string
	Description   string
	Status        vo.ComplaintStatus
	Priority      vo.Priority
	AdminResponse string
	CreatedAt     time.Time
}

// Draft is a complaint being filed by a customer.
type Draft struct {
	UserID      uint        `json:"userId"`
	Subject     string      `json:"subject"`
	Description string      `json:"description"`
	Priority    vo.Priority `json:"priority"`
}

func (c Complaint) IsPending() bool {
	return c.Status.IsPending()
}

func (c Complaint) IsResolved() bool {
	return c.Status.IsTerminal()
}

// CanResolve reports whether the resolve action is offered, i.e. whether
// the backend accepts a move to RESOLVED from the current status.
func (c Complaint) CanResolve() bool {
	return c.Status.CanTransitionTo(vo.StatusResolved)
}

// Filter selects a slice of the complaint list for the admin view.
type Filter string

const (
	FilterAll      Filter = "ALL"
	FilterPending  Filter = "PENDING"
	FilterResolved Filter = "RESOLVED"
)

// ParseFilter falls back to ALL for anything unrecognized.
func ParseFilter(s string) Filter {
	f := Filter(strings.ToUpper(strings.TrimSpace(s)))
	switch f {
	case FilterPending, FilterResolved:
		return f
	default:
		return FilterAll
	}
}

// Apply returns the complaints matching f, preserving order.
func (f Filter) Apply(complaints []Complaint) []Complaint {
	if f == FilterAll {
		return complaints
	}
	out := make([]Complaint, 0, len(complaints))
	for _, c := range complaints {
		if (f == FilterPending && c.IsPending()) || (f == FilterResolved && c.IsResolved()) {
			out = append(out, c)
		}
	}
	return out
}

// NewestFirst returns a copy sorted by creation time, most recent first.
func NewestFirst(complaints []Complaint) []Complaint {
	out := make([]Complaint, len(complaints))
	copy(out, complaints)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out
}

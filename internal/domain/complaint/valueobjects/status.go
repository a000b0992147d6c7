package valueobjects

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

type ComplaintStatus string

const (
	StatusOpen       ComplaintStatus = "OPEN"
	StatusInProgress ComplaintStatus = "IN_PROGRESS"
	StatusResolved   ComplaintStatus = "RESOLVED"
	StatusClosed     ComplaintStatus = "CLOSED"
)

var validComplaintStatuses = map[ComplaintStatus]bool{
	StatusOpen:       true,
	StatusInProgress: true,
	StatusResolved:   true,
	StatusClosed:     true,
}

// Transitions the backend allows. The portal itself only ever triggers
// the move to RESOLVED; CLOSED is reached through the backend alone.
var complaintStatusTransitions = map[ComplaintStatus][]ComplaintStatus{
	StatusOpen:       {StatusInProgress, StatusResolved, StatusClosed},
	StatusInProgress: {StatusResolved, StatusClosed},
	StatusResolved:   {StatusClosed},
	StatusClosed:     {},
}

func (s ComplaintStatus) String() string {
	return string(s)
}

func (s ComplaintStatus) IsValid() bool {
	return validComplaintStatuses[s]
}

// IsTerminal covers RESOLVED and CLOSED.
func (s ComplaintStatus) IsTerminal() bool {
	return s == StatusResolved || s == StatusClosed
}

// IsPending is true for every non-terminal status, including values the
// backend sends that the portal does not recognize.
func (s ComplaintStatus) IsPending() bool {
	return !s.IsTerminal()
}

func (s ComplaintStatus) CanTransitionTo(next ComplaintStatus) bool {
	for _, allowed := range complaintStatusTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// Label renders the status for people: "IN_PROGRESS" becomes "In Progress".
func (s ComplaintStatus) Label() string {
	if s == "" {
		return "Unknown"
	}
	words := strings.ReplaceAll(strings.ToLower(string(s)), "_", " ")
	return cases.Title(language.English).String(words)
}

// ParseComplaintStatus normalizes casing only; unknown values are kept.
func ParseComplaintStatus(s string) ComplaintStatus {
	return ComplaintStatus(strings.ToUpper(strings.TrimSpace(s)))
}

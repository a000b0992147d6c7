package utils

import "time"

const (
	DateLayout    = "02 Jan 2006"
	NotApplicable = "N/A"
)

// FormatDate renders a calendar date for tables and cards.
func FormatDate(t time.Time) string {
	if t.IsZero() {
		return NotApplicable
	}
	return t.Format(DateLayout)
}

// FormatOptionalDate renders t or "N/A" when it is unknown.
func FormatOptionalDate(t *time.Time) string {
	if t == nil {
		return NotApplicable
	}
	return FormatDate(*t)
}

package usecases

import (
	"context"

	"skylink/internal/domain/complaint"
)

// CustomerComplaintAPI is the slice of the backend the customer
// Complaints tab uses.
type CustomerComplaintAPI interface {
	ListUserComplaints(ctx context.Context, userID uint) ([]complaint.Complaint, error)
	CreateComplaint(ctx context.Context, draft complaint.Draft) (*complaint.Complaint, error)
}

// TextSanitizer strips markup from free text before it leaves the portal.
type TextSanitizer interface {
	StripTags(text string) string
}

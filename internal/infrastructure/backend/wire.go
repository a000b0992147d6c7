package backend

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"skylink/internal/domain/complaint"
	complaintvo "skylink/internal/domain/complaint/valueobjects"
	"skylink/internal/domain/plan"
	"skylink/internal/domain/subscription"
	subscriptionvo "skylink/internal/domain/subscription/valueobjects"
	"skylink/internal/domain/user"
	"skylink/internal/shared/authorization"
)

// flexID accepts ids sent as numbers or numeric strings. Anything else
// decodes as zero so one odd row never fails a whole list.
type flexID uint

func (f *flexID) UnmarshalJSON(data []byte) error {
	n, ok := parseFlexNumber(data)
	if !ok || n < 0 {
		*f = 0
		return nil
	}
	*f = flexID(n)
	return nil
}

// flexFloat accepts numbers or numeric strings. Set is false for null and
// for values that are not numbers.
type flexFloat struct {
	Value float64
	Set   bool
}

func (f *flexFloat) UnmarshalJSON(data []byte) error {
	n, ok := parseFlexNumber(data)
	if !ok {
		*f = flexFloat{}
		return nil
	}
	*f = flexFloat{Value: n, Set: true}
	return nil
}

func parseFlexNumber(data []byte) (float64, bool) {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || string(data) == "null" {
		return 0, false
	}
	s := string(data)
	if data[0] == '"' {
		if err := json.Unmarshal(data, &s); err != nil {
			return 0, false
		}
		s = strings.TrimSpace(s)
	}
	n, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return n, true
}

func (f flexFloat) ptr() *float64 {
	if !f.Set {
		return nil
	}
	v := f.Value
	return &v
}

// flexTime accepts RFC 3339 timestamps, the zone-less local date-time and
// date forms, epoch milliseconds and Jackson's [y,m,d,h,m,s,nanos] arrays.
// Unrecognized values decode as the zero time.
type flexTime struct {
	time.Time
}

var timeLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

func (t *flexTime) UnmarshalJSON(data []byte) error {
	*t = flexTime{}
	data = bytes.TrimSpace(data)
	if len(data) == 0 || string(data) == "null" {
		return nil
	}

	switch data[0] {
	case '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return nil
		}
		s = strings.TrimSpace(s)
		for _, layout := range timeLayouts {
			if parsed, err := time.Parse(layout, s); err == nil {
				t.Time = parsed
				return nil
			}
		}
	case '[':
		var parts []int
		if err := json.Unmarshal(data, &parts); err != nil || len(parts) < 3 {
			return nil
		}
		parts = append(parts, make([]int, 7-min(len(parts), 7))...)
		t.Time = time.Date(parts[0], time.Month(parts[1]), parts[2], parts[3], parts[4], parts[5], parts[6], time.UTC)
	default:
		var ms int64
		if err := json.Unmarshal(data, &ms); err == nil {
			t.Time = time.UnixMilli(ms).UTC()
		}
	}
	return nil
}

func (t flexTime) ptr() *time.Time {
	if t.IsZero() {
		return nil
	}
	v := t.Time
	return &v
}

type wireUser struct {
	ID               flexID   `json:"id"`
	UserID           flexID   `json:"userId"`
	Name             string   `json:"name"`
	Email            string   `json:"email"`
	MobileNumber     string   `json:"mobileNumber"`
	Role             string   `json:"role"`
	SubscriptionPlan string   `json:"subscriptionPlan"`
	CreatedAt        flexTime `json:"createdAt"`
	UpdatedAt        flexTime `json:"updatedAt"`
}

func (w wireUser) toDomain() user.User {
	id := uint(w.ID)
	if id == 0 {
		id = uint(w.UserID)
	}
	return user.User{
		ID:               id,
		Name:             strings.TrimSpace(w.Name),
		Email:            strings.TrimSpace(w.Email),
		MobileNumber:     strings.TrimSpace(w.MobileNumber),
		Role:             authorization.ParseUserRole(w.Role),
		SubscriptionPlan: strings.TrimSpace(w.SubscriptionPlan),
		CreatedAt:        w.CreatedAt.Time,
		UpdatedAt:        w.UpdatedAt.ptr(),
	}
}

type wirePlan struct {
	ID             flexID    `json:"id"`
	Name           string    `json:"name"`
	Description    string    `json:"description"`
	Price          flexFloat `json:"price"`
	DurationInDays flexFloat `json:"durationInDays"`
	DataLimitGB    flexFloat `json:"dataLimitGB"`
	SpeedMbps      flexFloat `json:"speedMbps"`
	Active         *bool     `json:"active"`
}

func (w wirePlan) toDomain() plan.Plan {
	return plan.Plan{
		ID:             uint(w.ID),
		Name:           strings.TrimSpace(w.Name),
		Description:    w.Description,
		Price:          w.Price.Value,
		DurationInDays: int(w.DurationInDays.Value),
		DataLimitGB:    w.DataLimitGB.Value,
		SpeedMbps:      int(w.SpeedMbps.Value),
		Active:         w.Active != nil && *w.Active,
	}
}

// wireSubscription covers every subscription shape the backend has been
// seen to return: an embedded plan or user, a bare planId/userId, a
// planName, dataLeft/dataUsed with or without the GB suffix, and a
// top-level dataLimitGB.
type wireSubscription struct {
	ID          flexID    `json:"id"`
	UserID      flexID    `json:"userId"`
	User        *wireUser `json:"user"`
	PlanID      flexID    `json:"planId"`
	Plan        *wirePlan `json:"plan"`
	PlanName    string    `json:"planName"`
	Status      string    `json:"status"`
	StartDate   flexTime  `json:"startDate"`
	EndDate     flexTime  `json:"endDate"`
	DataLeft    flexFloat `json:"dataLeft"`
	DataLeftGB  flexFloat `json:"dataLeftGB"`
	DataUsed    flexFloat `json:"dataUsed"`
	DataUsedGB  flexFloat `json:"dataUsedGB"`
	DataLimitGB flexFloat `json:"dataLimitGB"`
}

func (w wireSubscription) toDomain() subscription.Subscription {
	s := subscription.Subscription{
		ID:          uint(w.ID),
		UserID:      uint(w.UserID),
		PlanID:      uint(w.PlanID),
		PlanName:    strings.TrimSpace(w.PlanName),
		Status:      subscriptionvo.ParseSubscriptionStatus(w.Status),
		StartDate:   w.StartDate.ptr(),
		EndDate:     w.EndDate.ptr(),
		DataLeftGB:  firstSet(w.DataLeft, w.DataLeftGB),
		DataUsedGB:  firstSet(w.DataUsed, w.DataUsedGB),
		DataLimitGB: w.DataLimitGB.ptr(),
	}
	if s.UserID == 0 && w.User != nil {
		s.UserID = w.User.toDomain().ID
	}
	if w.Plan != nil {
		p := w.Plan.toDomain()
		s.Plan = &p
		if s.PlanID == 0 {
			s.PlanID = p.ID
		}
		if s.PlanName == "" {
			s.PlanName = p.Name
		}
	}
	return s
}

func firstSet(values ...flexFloat) *float64 {
	for _, v := range values {
		if v.Set {
			return v.ptr()
		}
	}
	return nil
}

type wireComplaint struct {
	ID            flexID    `json:"id"`
	UserID        flexID    `json:"userId"`
	User          *wireUser `json:"user"`
	Subject       string    `json:"subject"`
	Description   string    `json:"description"`
	Status        string    `json:"status"`
	Priority      string    `json:"priority"`
	AdminResponse string    `json:"adminResponse"`
	CreatedAt     flexTime  `json:"createdAt"`
}

func (w wireComplaint) toDomain() complaint.Complaint {
	c := complaint.Complaint{
		ID:            uint(w.ID),
		UserID:        uint(w.UserID),
		Subject:       w.Subject,
		Description:   w.Description,
		Status:        complaintvo.ParseComplaintStatus(w.Status),
		Priority:      complaintvo.Priority(strings.ToUpper(strings.TrimSpace(w.Priority))),
		AdminResponse: w.AdminResponse,
		CreatedAt:     w.CreatedAt.Time,
	}
	if c.UserID == 0 && w.User != nil {
		c.UserID = w.User.toDomain().ID
	}
	return c
}

// wireLogin is the login reply. Role, email and id may sit at the top
// level or under "user".
type wireLogin struct {
	Token   string    `json:"token"`
	Role    string    `json:"role"`
	Email   string    `json:"email"`
	UserID  flexID    `json:"userId"`
	ID      flexID    `json:"id"`
	User    *wireUser `json:"user"`
	Message string    `json:"message"`
}

// wireCount is the active-subscription count: a bare number or an object
// with a count field.
type wireCount struct {
	Count int64
}

func (w *wireCount) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '{' {
		var obj struct {
			Count       *flexFloat `json:"count"`
			ActiveCount *flexFloat `json:"activeCount"`
		}
		if err := json.Unmarshal(data, &obj); err != nil {
			return err
		}
		switch {
		case obj.Count != nil && obj.Count.Set:
			w.Count = int64(obj.Count.Value)
		case obj.ActiveCount != nil && obj.ActiveCount.Set:
			w.Count = int64(obj.ActiveCount.Value)
		default:
			return fmt.Errorf("count missing in %s", string(data))
		}
		return nil
	}
	var f flexFloat
	if err := f.UnmarshalJSON(data); err != nil {
		return err
	}
	if !f.Set {
		return fmt.Errorf("count missing")
	}
	w.Count = int64(f.Value)
	return nil
}

func mapSlice[W any, D any](in []W, convert func(W) D) []D {
	out := make([]D, 0, len(in))
	for _, w := range in {
		out = append(out, convert(w))
	}
	return out
}

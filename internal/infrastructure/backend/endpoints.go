package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"skylink/internal/domain/complaint"
	complaintvo "skylink/internal/domain/complaint/valueobjects"
	"skylink/internal/domain/plan"
	"skylink/internal/domain/subscription"
	subscriptionvo "skylink/internal/domain/subscription/valueobjects"
	"skylink/internal/domain/user"
	"skylink/internal/shared/authorization"
	apperrors "skylink/internal/shared/errors"
)

// Signup registers a customer account.
func (c *Client) Signup(ctx context.Context, req user.Registration) error {
	if _, err := c.doRequestOr(ctx, http.MethodPost, c.endpoint("/auth/signup", nil), req, nil, apperrors.MsgSignupFailed); err != nil {
		return fmt.Errorf("signup: %w", err)
	}
	return nil
}

// Login exchanges credentials for a session token. The email falls back to
// the one submitted when the reply omits it.
func (c *Client) Login(ctx context.Context, email, password string) (*user.LoginReply, error) {
	body := map[string]string{"email": email, "password": password}

	var reply wireLogin
	if _, err := c.doRequestOr(ctx, http.MethodPost, c.endpoint("/auth/login", nil), body, &reply, apperrors.MsgLoginFailed); err != nil {
		return nil, fmt.Errorf("login: %w", err)
	}
	if strings.TrimSpace(reply.Token) == "" {
		return nil, apperrors.NewUnauthorizedError(orDefault(reply.Message, apperrors.MsgLoginFailed))
	}

	result := &user.LoginReply{
		Token:  reply.Token,
		Role:   authorization.ParseUserRole(reply.Role),
		Email:  reply.Email,
		UserID: uint(reply.UserID),
	}
	if result.UserID == 0 {
		result.UserID = uint(reply.ID)
	}
	if reply.User != nil {
		u := reply.User.toDomain()
		if reply.Role == "" {
			result.Role = u.Role
		}
		if result.Email == "" {
			result.Email = u.Email
		}
		if result.UserID == 0 {
			result.UserID = u.ID
		}
	}
	if result.Email == "" {
		result.Email = email
	}
	return result, nil
}

// ListUsers returns every account.
func (c *Client) ListUsers(ctx context.Context) ([]user.User, error) {
	var users []wireUser
	if _, err := c.doRequest(ctx, http.MethodGet, c.endpoint("/users", nil), nil, &users); err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	return mapSlice(users, wireUser.toDomain), nil
}

// GetUser returns one account.
func (c *Client) GetUser(ctx context.Context, id uint) (*user.User, error) {
	var w wireUser
	if _, err := c.doRequest(ctx, http.MethodGet, c.endpoint(fmt.Sprintf("/users/%d", id), nil), nil, &w); err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}
	u := w.toDomain()
	if u.ID == 0 {
		u.ID = id
	}
	return &u, nil
}

// ListSubscriptions returns every subscription row.
func (c *Client) ListSubscriptions(ctx context.Context) ([]subscription.Subscription, error) {
	var subs []wireSubscription
	if _, err := c.doRequest(ctx, http.MethodGet, c.endpoint("/subscriptions", nil), nil, &subs); err != nil {
		return nil, fmt.Errorf("list subscriptions: %w", err)
	}
	return mapSlice(subs, wireSubscription.toDomain), nil
}

// CountActiveSubscriptions returns the backend's authoritative active
// subscription count.
func (c *Client) CountActiveSubscriptions(ctx context.Context) (int64, error) {
	var count wireCount
	status, err := c.doRequest(ctx, http.MethodGet, c.endpoint("/subscriptions/stats/active", nil), nil, &count)
	if err != nil {
		return 0, fmt.Errorf("count active subscriptions: %w", err)
	}
	if status == http.StatusNoContent {
		return 0, fmt.Errorf("count active subscriptions: empty response")
	}
	return count.Count, nil
}

// GetActiveSubscription looks up the user's ACTIVE subscription. A 404,
// an empty body or null means the user has none. A list reply is reduced
// with first-match semantics and the number of ACTIVE rows is reported.
func (c *Client) GetActiveSubscription(ctx context.Context, userID uint) (subscription.ActiveLookup, error) {
	var raw json.RawMessage
	status, err := c.doRequest(ctx, http.MethodGet, c.endpoint(fmt.Sprintf("/subscriptions/user/%d/active", userID), nil), nil, &raw)
	if err != nil {
		if status == http.StatusNotFound {
			return subscription.ActiveLookup{}, nil
		}
		return subscription.ActiveLookup{}, fmt.Errorf("get active subscription: %w", err)
	}

	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || string(raw) == "null" {
		return subscription.ActiveLookup{}, nil
	}

	var rows []wireSubscription
	if raw[0] == '[' {
		if err := json.Unmarshal(raw, &rows); err != nil {
			return subscription.ActiveLookup{}, fmt.Errorf("get active subscription: decode list: %w", err)
		}
	} else {
		var row wireSubscription
		if err := json.Unmarshal(raw, &row); err != nil {
			return subscription.ActiveLookup{}, fmt.Errorf("get active subscription: decode: %w", err)
		}
		rows = append(rows, row)
	}

	subs := mapSlice(rows, wireSubscription.toDomain)
	for i := range subs {
		if subs[i].UserID == 0 {
			subs[i].UserID = userID
		}
		// the endpoint only returns active rows; a missing status means ACTIVE
		if subs[i].Status == "" {
			subs[i].Status = subscriptionvo.StatusActive
		}
	}
	return subscription.FindActive(subs, userID), nil
}

// Subscribe binds the user to a plan.
func (c *Client) Subscribe(ctx context.Context, userID, planID uint) error {
	body := map[string]uint{"userId": userID, "planId": planID}
	if _, err := c.doRequest(ctx, http.MethodPost, c.endpoint("/subscriptions", nil), body, nil); err != nil {
		return fmt.Errorf("subscribe: %w", err)
	}
	return nil
}

// ListComplaints returns every complaint.
func (c *Client) ListComplaints(ctx context.Context) ([]complaint.Complaint, error) {
	var rows []wireComplaint
	if _, err := c.doRequest(ctx, http.MethodGet, c.endpoint("/complaints", nil), nil, &rows); err != nil {
		return nil, fmt.Errorf("list complaints: %w", err)
	}
	return mapSlice(rows, wireComplaint.toDomain), nil
}

// ListUserComplaints returns the complaints filed by userID.
func (c *Client) ListUserComplaints(ctx context.Context, userID uint) ([]complaint.Complaint, error) {
	var rows []wireComplaint
	if _, err := c.doRequest(ctx, http.MethodGet, c.endpoint(fmt.Sprintf("/complaints/user/%d", userID), nil), nil, &rows); err != nil {
		return nil, fmt.Errorf("list user complaints: %w", err)
	}
	return mapSlice(rows, wireComplaint.toDomain), nil
}

// CreateComplaint files a complaint and returns it as stored.
func (c *Client) CreateComplaint(ctx context.Context, req complaint.Draft) (*complaint.Complaint, error) {
	var w wireComplaint
	if _, err := c.doRequest(ctx, http.MethodPost, c.endpoint("/complaints", nil), req, &w); err != nil {
		return nil, fmt.Errorf("create complaint: %w", err)
	}
	created := w.toDomain()
	return &created, nil
}

// UpdateComplaintStatus moves a complaint to status. The values travel in
// the query string; the request has no body.
func (c *Client) UpdateComplaintStatus(ctx context.Context, id uint, status complaintvo.ComplaintStatus, adminResponse string) error {
	query := url.Values{}
	query.Set("status", status.String())
	if adminResponse != "" {
		query.Set("adminResponse", adminResponse)
	}
	if _, err := c.doRequest(ctx, http.MethodPut, c.endpoint(fmt.Sprintf("/complaints/%d/status", id), query), nil, nil); err != nil {
		return fmt.Errorf("update complaint status: %w", err)
	}
	return nil
}

// ListPlans returns the whole catalog, inactive plans included.
func (c *Client) ListPlans(ctx context.Context) ([]plan.Plan, error) {
	var rows []wirePlan
	if _, err := c.doRequest(ctx, http.MethodGet, c.endpoint("/plans", nil), nil, &rows); err != nil {
		return nil, fmt.Errorf("list plans: %w", err)
	}
	return mapSlice(rows, wirePlan.toDomain), nil
}

// ListActivePlans returns the plans customers can subscribe to.
func (c *Client) ListActivePlans(ctx context.Context) ([]plan.Plan, error) {
	var rows []wirePlan
	if _, err := c.doRequest(ctx, http.MethodGet, c.endpoint("/plans/active", nil), nil, &rows); err != nil {
		return nil, fmt.Errorf("list active plans: %w", err)
	}
	plans := mapSlice(rows, wirePlan.toDomain)
	for i := range plans {
		if rows[i].Active == nil {
			plans[i].Active = true
		}
	}
	return plans, nil
}

// CreatePlan adds a plan to the catalog.
func (c *Client) CreatePlan(ctx context.Context, in plan.Input) error {
	if _, err := c.doRequest(ctx, http.MethodPost, c.endpoint("/plans", nil), in, nil); err != nil {
		return fmt.Errorf("create plan: %w", err)
	}
	return nil
}

// UpdatePlan replaces a plan's fields.
func (c *Client) UpdatePlan(ctx context.Context, id uint, in plan.Input) error {
	body := struct {
		ID uint `json:"id"`
		plan.Input
	}{ID: id, Input: in}
	if _, err := c.doRequest(ctx, http.MethodPut, c.endpoint(fmt.Sprintf("/plans/%d", id), nil), body, nil); err != nil {
		return fmt.Errorf("update plan: %w", err)
	}
	return nil
}

// SetPlanActive activates or deactivates a plan.
func (c *Client) SetPlanActive(ctx context.Context, id uint, active bool) error {
	body := map[string]bool{"active": active}
	if _, err := c.doRequest(ctx, http.MethodPatch, c.endpoint(fmt.Sprintf("/plans/%d/status", id), nil), body, nil); err != nil {
		return fmt.Errorf("set plan status: %w", err)
	}
	return nil
}

// DeletePlan removes a plan from the catalog.
func (c *Client) DeletePlan(ctx context.Context, id uint) error {
	if _, err := c.doRequest(ctx, http.MethodDelete, c.endpoint(fmt.Sprintf("/plans/%d", id), nil), nil, nil); err != nil {
		return fmt.Errorf("delete plan: %w", err)
	}
	return nil
}

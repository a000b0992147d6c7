package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	commondto "skylink/internal/application/common/dto"
	complaintusecases "skylink/internal/application/complaint/usecases"
	"skylink/internal/application/help"
	subdto "skylink/internal/application/subscription/dto"
	subusecases "skylink/internal/application/subscription/usecases"
	"skylink/internal/domain/session"
	"skylink/internal/interfaces/http/handlers/testutil"
	"skylink/internal/shared/authorization"
	"skylink/internal/shared/errors"
	"skylink/internal/shared/logger"
)

type stubDashboard struct {
	overview   *subdto.CustomerOverviewDTO
	details    *subdto.PlanDetailsDTO
	detailsID  uint
	subscribed subusecases.SubscribeCommand
	submitted  complaintusecases.SubmitComplaintCommand
	err        error
}

type overviewFunc func(ctx context.Context, h *session.Holder) (*subdto.CustomerOverviewDTO, error)

func (f overviewFunc) Execute(ctx context.Context, h *session.Holder) (*subdto.CustomerOverviewDTO, error) {
	return f(ctx, h)
}

type planListFunc func(ctx context.Context, h *session.Holder) ([]commondto.PlanDTO, error)

func (f planListFunc) Execute(ctx context.Context, h *session.Holder) ([]commondto.PlanDTO, error) {
	return f(ctx, h)
}

type planDetailsFunc func(ctx context.Context, h *session.Holder, id uint) (*subdto.PlanDetailsDTO, error)

func (f planDetailsFunc) Execute(ctx context.Context, h *session.Holder, id uint) (*subdto.PlanDetailsDTO, error) {
	return f(ctx, h, id)
}

type subscribeFunc func(ctx context.Context, h *session.Holder, cmd subusecases.SubscribeCommand) (*subdto.SubscribeResultDTO, error)

func (f subscribeFunc) Execute(ctx context.Context, h *session.Holder, cmd subusecases.SubscribeCommand) (*subdto.SubscribeResultDTO, error) {
	return f(ctx, h, cmd)
}

type complaintListFunc func(ctx context.Context, h *session.Holder) ([]commondto.ComplaintDTO, error)

func (f complaintListFunc) Execute(ctx context.Context, h *session.Holder) ([]commondto.ComplaintDTO, error) {
	return f(ctx, h)
}

type submitFunc func(ctx context.Context, h *session.Holder, cmd complaintusecases.SubmitComplaintCommand) (*complaintusecases.SubmitComplaintResult, error)

func (f submitFunc) Execute(ctx context.Context, h *session.Holder, cmd complaintusecases.SubmitComplaintCommand) (*complaintusecases.SubmitComplaintResult, error) {
	return f(ctx, h, cmd)
}

type faqFunc func(ctx context.Context) (*help.FAQDTO, error)

func (f faqFunc) Execute(ctx context.Context) (*help.FAQDTO, error) {
	return f(ctx)
}

func (s *stubDashboard) handler() *DashboardHandler {
	return NewDashboardHandler(DashboardUseCases{
		Overview: overviewFunc(func(ctx context.Context, h *session.Holder) (*subdto.CustomerOverviewDTO, error) {
			return s.overview, s.err
		}),
		ListPlans: planListFunc(func(ctx context.Context, h *session.Holder) ([]commondto.PlanDTO, error) {
			return []commondto.PlanDTO{{ID: 1, Name: "Basic"}}, s.err
		}),
		PlanDetails: planDetailsFunc(func(ctx context.Context, h *session.Holder, id uint) (*subdto.PlanDetailsDTO, error) {
			s.detailsID = id
			return s.details, s.err
		}),
		Subscribe: subscribeFunc(func(ctx context.Context, h *session.Holder, cmd subusecases.SubscribeCommand) (*subdto.SubscribeResultDTO, error) {
			s.subscribed = cmd
			if s.err != nil {
				return nil, s.err
			}
			return &subdto.SubscribeResultDTO{Message: subusecases.MsgSubscribed, Overview: s.overview}, nil
		}),
		ListComplaints: complaintListFunc(func(ctx context.Context, h *session.Holder) ([]commondto.ComplaintDTO, error) {
			return nil, s.err
		}),
		SubmitComplaint: submitFunc(func(ctx context.Context, h *session.Holder, cmd complaintusecases.SubmitComplaintCommand) (*complaintusecases.SubmitComplaintResult, error) {
			s.submitted = cmd
			if s.err != nil {
				return nil, s.err
			}
			return &complaintusecases.SubmitComplaintResult{ComplaintID: 12, Message: "Complaint submitted successfully! ID: 12"}, nil
		}),
		FAQ: faqFunc(func(ctx context.Context) (*help.FAQDTO, error) {
			return &help.FAQDTO{Markdown: "# FAQ", HTML: "<h1>FAQ</h1>"}, s.err
		}),
	}, logger.NewNopLogger())
}

func TestDashboardHandler_GetOverview(t *testing.T) {
	stub := &stubDashboard{overview: &subdto.CustomerOverviewDTO{
		Email:       "c@x.io",
		QuickAction: subdto.QuickActionChoosePlan,
		CurrentPlan: subdto.CurrentPlanView{PlanName: "No Active Plan"},
	}}

	c, w := testutil.NewTestContext(http.MethodGet, "/dashboard", nil)
	testutil.AttachHolder(t, c, authorization.RoleCustomer)

	stub.handler().GetOverview(c)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp testutil.APIResponse
	require.NoError(t, testutil.ParseResponse(w, &resp))
	assert.True(t, resp.Success)
	assert.Contains(t, string(resp.Data), "No Active Plan")
}

func TestDashboardHandler_GetPlanRejectsBadID(t *testing.T) {
	stub := &stubDashboard{}

	c, w := testutil.NewTestContext(http.MethodGet, "/dashboard/plans/abc", nil)
	testutil.SetURLParam(c, "id", "abc")
	testutil.AttachHolder(t, c, authorization.RoleCustomer)

	stub.handler().GetPlan(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Zero(t, stub.detailsID)
}

func TestDashboardHandler_GetPlanNotFound(t *testing.T) {
	stub := &stubDashboard{err: errors.NewNotFoundError("plan not found")}

	c, w := testutil.NewTestContext(http.MethodGet, "/dashboard/plans/9", nil)
	testutil.SetURLParam(c, "id", "9")
	testutil.AttachHolder(t, c, authorization.RoleCustomer)

	stub.handler().GetPlan(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, uint(9), stub.detailsID)
}

func TestDashboardHandler_Subscribe(t *testing.T) {
	stub := &stubDashboard{overview: &subdto.CustomerOverviewDTO{QuickAction: subdto.QuickActionChangePlan}}

	c, w := testutil.NewTestContext(http.MethodPost, "/dashboard/plans/3/subscribe", nil)
	testutil.SetURLParam(c, "id", "3")
	testutil.AttachHolder(t, c, authorization.RoleCustomer)

	stub.handler().Subscribe(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, uint(3), stub.subscribed.PlanID)
	var resp testutil.APIResponse
	require.NoError(t, testutil.ParseResponse(w, &resp))
	assert.Equal(t, subusecases.MsgSubscribed, resp.Message)
}

func TestDashboardHandler_SubscribeInProgress(t *testing.T) {
	stub := &stubDashboard{err: errors.NewConflictError("request already in progress")}

	c, w := testutil.NewTestContext(http.MethodPost, "/dashboard/plans/3/subscribe", nil)
	testutil.SetURLParam(c, "id", "3")
	testutil.AttachHolder(t, c, authorization.RoleCustomer)

	stub.handler().Subscribe(c)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestDashboardHandler_SubmitComplaint(t *testing.T) {
	stub := &stubDashboard{}

	c, w := testutil.NewTestContext(http.MethodPost, "/dashboard/complaints", map[string]string{
		"subject":     "No signal",
		"description": "Since Monday",
		"priority":    "HIGH",
	})
	testutil.AttachHolder(t, c, authorization.RoleCustomer)

	stub.handler().SubmitComplaint(c)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "No signal", stub.submitted.Subject)
	assert.Equal(t, "HIGH", stub.submitted.Priority)
	var resp testutil.APIResponse
	require.NoError(t, testutil.ParseResponse(w, &resp))
	assert.Equal(t, "Complaint submitted successfully! ID: 12", resp.Message)
}

func TestDashboardHandler_ExpiredSessionRedirects(t *testing.T) {
	stub := &stubDashboard{err: errors.NewSessionExpiredError(nil)}

	c, w := testutil.NewTestContext(http.MethodGet, "/dashboard/complaints", nil)
	testutil.AttachHolder(t, c, authorization.RoleCustomer)

	stub.handler().ListComplaints(c)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	var resp testutil.APIResponse
	require.NoError(t, testutil.ParseResponse(w, &resp))
	assert.Equal(t, "/login", resp.Redirect)
}

func TestDashboardHandler_GetHelp(t *testing.T) {
	stub := &stubDashboard{}

	c, w := testutil.NewTestContext(http.MethodGet, "/dashboard/help", nil)

	stub.handler().GetHelp(c)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp testutil.APIResponse
	require.NoError(t, testutil.ParseResponse(w, &resp))
	var faq help.FAQDTO
	require.NoError(t, json.Unmarshal(resp.Data, &faq))
	assert.Equal(t, "<h1>FAQ</h1>", faq.HTML)
}

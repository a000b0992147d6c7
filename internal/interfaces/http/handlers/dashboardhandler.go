package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	complaintusecases "skylink/internal/application/complaint/usecases"
	subusecases "skylink/internal/application/subscription/usecases"
	"skylink/internal/interfaces/http/middleware"
	"skylink/internal/shared/logger"
	"skylink/internal/shared/utils"
)

// DashboardHandler serves the customer dashboard tabs.
type DashboardHandler struct {
	overviewUseCase        customerOverviewUseCase
	listPlansUseCase       listPlansUseCase
	planDetailsUseCase     planDetailsUseCase
	subscribeUseCase       subscribeUseCase
	listComplaintsUseCase  listMyComplaintsUseCase
	submitComplaintUseCase submitComplaintUseCase
	faqUseCase             faqUseCase
	logger                 logger.Interface
}

// DashboardUseCases groups the dashboard handler's dependencies.
type DashboardUseCases struct {
	Overview        customerOverviewUseCase
	ListPlans       listPlansUseCase
	PlanDetails     planDetailsUseCase
	Subscribe       subscribeUseCase
	ListComplaints  listMyComplaintsUseCase
	SubmitComplaint submitComplaintUseCase
	FAQ             faqUseCase
}

// NewDashboardHandler creates a new DashboardHandler
func NewDashboardHandler(ucs DashboardUseCases, logger logger.Interface) *DashboardHandler {
	return &DashboardHandler{
		overviewUseCase:        ucs.Overview,
		listPlansUseCase:       ucs.ListPlans,
		planDetailsUseCase:     ucs.PlanDetails,
		subscribeUseCase:       ucs.Subscribe,
		listComplaintsUseCase:  ucs.ListComplaints,
		submitComplaintUseCase: ucs.SubmitComplaint,
		faqUseCase:             ucs.FAQ,
		logger:                 logger,
	}
}

// GetOverview handles GET /dashboard
func (h *DashboardHandler) GetOverview(c *gin.Context) {
	overview, err := h.overviewUseCase.Execute(c.Request.Context(), middleware.Holder(c))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "", overview)
}

// ListPlans handles GET /dashboard/plans
func (h *DashboardHandler) ListPlans(c *gin.Context) {
	plans, err := h.listPlansUseCase.Execute(c.Request.Context(), middleware.Holder(c))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "", plans)
}

// GetPlan handles GET /dashboard/plans/:id
func (h *DashboardHandler) GetPlan(c *gin.Context) {
	planID, err := utils.ParseUintParam(c, "id", "plan")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	details, err := h.planDetailsUseCase.Execute(c.Request.Context(), middleware.Holder(c), planID)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "", details)
}

// Subscribe handles POST /dashboard/plans/:id/subscribe
func (h *DashboardHandler) Subscribe(c *gin.Context) {
	planID, err := utils.ParseUintParam(c, "id", "plan")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.subscribeUseCase.Execute(c.Request.Context(), middleware.Holder(c), subusecases.SubscribeCommand{PlanID: planID})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, result.Message, result.Overview)
}

// ListComplaints handles GET /dashboard/complaints
func (h *DashboardHandler) ListComplaints(c *gin.Context) {
	complaints, err := h.listComplaintsUseCase.Execute(c.Request.Context(), middleware.Holder(c))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "", complaints)
}

// SubmitComplaint handles POST /dashboard/complaints
func (h *DashboardHandler) SubmitComplaint(c *gin.Context) {
	var cmd complaintusecases.SubmitComplaintCommand
	if err := c.ShouldBindJSON(&cmd); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	result, err := h.submitComplaintUseCase.Execute(c.Request.Context(), middleware.Holder(c), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.CreatedResponse(c, result, result.Message)
}

// GetHelp handles GET /dashboard/help
func (h *DashboardHandler) GetHelp(c *gin.Context) {
	faq, err := h.faqUseCase.Execute(c.Request.Context())
	if err != nil {
		h.logger.Errorw("failed to render FAQ", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "", faq)
}

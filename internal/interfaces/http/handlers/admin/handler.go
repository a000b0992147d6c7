package admin

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"skylink/internal/application/admin/usecases"
	"skylink/internal/domain/complaint"
	"skylink/internal/domain/plan"
	"skylink/internal/interfaces/http/middleware"
	"skylink/internal/shared/logger"
	"skylink/internal/shared/utils"
)

// Handler serves the admin dashboard tabs.
type Handler struct {
	overviewUC  overviewUseCase
	customersUC listCustomersUseCase
	complaintUC listComplaintsUseCase
	resolveUC   resolveComplaintUseCase
	plansUC     managePlansUseCase
	logger      logger.Interface
}

// NewHandler creates a new admin Handler.
func NewHandler(
	overviewUC overviewUseCase,
	customersUC listCustomersUseCase,
	complaintUC listComplaintsUseCase,
	resolveUC resolveComplaintUseCase,
	plansUC managePlansUseCase,
	log logger.Interface,
) *Handler {
	return &Handler{
		overviewUC:  overviewUC,
		customersUC: customersUC,
		complaintUC: complaintUC,
		resolveUC:   resolveUC,
		plansUC:     plansUC,
		logger:      log,
	}
}

// GetOverview handles GET /admin
func (h *Handler) GetOverview(c *gin.Context) {
	resp, err := h.overviewUC.Execute(c.Request.Context(), middleware.Holder(c))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "", resp)
}

// ListCustomers handles GET /admin/customers
func (h *Handler) ListCustomers(c *gin.Context) {
	rows, err := h.customersUC.Execute(c.Request.Context(), middleware.Holder(c))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "", rows)
}

// ListComplaints handles GET /admin/complaints?filter=ALL|PENDING|RESOLVED
func (h *Handler) ListComplaints(c *gin.Context) {
	query := usecases.ListComplaintsQuery{Filter: complaint.ParseFilter(c.Query("filter"))}

	resp, err := h.complaintUC.Execute(c.Request.Context(), middleware.Holder(c), query)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "", resp)
}

// ResolveComplaint handles POST /admin/complaints/:id/resolve
func (h *Handler) ResolveComplaint(c *gin.Context) {
	id, err := utils.ParseUintParam(c, "id", "complaint")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	cmd := usecases.ResolveComplaintCommand{
		ComplaintID: id,
		Filter:      complaint.ParseFilter(c.Query("filter")),
	}
	resp, err := h.resolveUC.Execute(c.Request.Context(), middleware.Holder(c), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "Complaint resolved", resp)
}

// ListPlans handles GET /admin/plans
func (h *Handler) ListPlans(c *gin.Context) {
	resp, err := h.plansUC.List(c.Request.Context(), middleware.Holder(c))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "", resp)
}

// CreatePlan handles POST /admin/plans
func (h *Handler) CreatePlan(c *gin.Context) {
	var in plan.Input
	if err := c.ShouldBindJSON(&in); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	resp, err := h.plansUC.Create(c.Request.Context(), middleware.Holder(c), in)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.CreatedResponse(c, resp, "Plan created")
}

// UpdatePlan handles PUT /admin/plans/:id
func (h *Handler) UpdatePlan(c *gin.Context) {
	id, err := utils.ParseUintParam(c, "id", "plan")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var in plan.Input
	if err := c.ShouldBindJSON(&in); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	resp, err := h.plansUC.Update(c.Request.Context(), middleware.Holder(c), id, in)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "Plan updated", resp)
}

// TogglePlan handles PATCH /admin/plans/:id/status
func (h *Handler) TogglePlan(c *gin.Context) {
	id, err := utils.ParseUintParam(c, "id", "plan")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	resp, err := h.plansUC.Toggle(c.Request.Context(), middleware.Holder(c), id)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "Plan status changed", resp)
}

// DeletePlan handles DELETE /admin/plans/:id
func (h *Handler) DeletePlan(c *gin.Context) {
	id, err := utils.ParseUintParam(c, "id", "plan")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	resp, err := h.plansUC.Delete(c.Request.Context(), middleware.Holder(c), id)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "Plan deleted", resp)
}

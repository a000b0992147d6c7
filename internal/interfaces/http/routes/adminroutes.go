package routes

import (
	"github.com/gin-gonic/gin"

	"skylink/internal/interfaces/http/handlers/admin"
	"skylink/internal/interfaces/http/middleware"
	"skylink/internal/shared/authorization"
)

// AdminRouteConfig holds dependencies for the admin dashboard.
type AdminRouteConfig struct {
	AdminHandler      *admin.Handler
	SessionMiddleware *middleware.SessionMiddleware
	RouteChecker      authorization.RouteChecker
}

// SetupAdminRoutes configures the ADMIN-only /admin tree.
func SetupAdminRoutes(engine *gin.Engine, cfg *AdminRouteConfig) {
	group := engine.Group(authorization.RouteAdmin)
	group.Use(
		cfg.SessionMiddleware.RequireSession(),
		authorization.RequireRoute(cfg.RouteChecker, authorization.RouteAdmin),
	)
	{
		group.GET("", cfg.AdminHandler.GetOverview)
		group.GET("/customers", cfg.AdminHandler.ListCustomers)

		group.GET("/complaints", cfg.AdminHandler.ListComplaints)
		group.POST("/complaints/:id/resolve", cfg.AdminHandler.ResolveComplaint)

		group.GET("/plans", cfg.AdminHandler.ListPlans)
		group.POST("/plans", cfg.AdminHandler.CreatePlan)
		group.PUT("/plans/:id", cfg.AdminHandler.UpdatePlan)
		group.PATCH("/plans/:id/status", cfg.AdminHandler.TogglePlan)
		group.DELETE("/plans/:id", cfg.AdminHandler.DeletePlan)
	}
}

package routes

import (
	"github.com/gin-gonic/gin"

	"skylink/internal/interfaces/http/handlers"
	"skylink/internal/interfaces/http/middleware"
	"skylink/internal/shared/authorization"
)

// DashboardRouteConfig holds dependencies for the customer dashboard.
type DashboardRouteConfig struct {
	DashboardHandler  *handlers.DashboardHandler
	SessionMiddleware *middleware.SessionMiddleware
	RouteChecker      authorization.RouteChecker
}

// SetupDashboardRoutes configures the CUSTOMER-only /dashboard tree.
func SetupDashboardRoutes(engine *gin.Engine, cfg *DashboardRouteConfig) {
	dashboard := engine.Group(authorization.RouteDashboard)
	dashboard.Use(
		cfg.SessionMiddleware.RequireSession(),
		authorization.RequireRoute(cfg.RouteChecker, authorization.RouteDashboard),
	)
	{
		dashboard.GET("", cfg.DashboardHandler.GetOverview)
		dashboard.GET("/plans", cfg.DashboardHandler.ListPlans)
		dashboard.GET("/plans/:id", cfg.DashboardHandler.GetPlan)
		dashboard.POST("/plans/:id/subscribe", cfg.DashboardHandler.Subscribe)
		dashboard.GET("/complaints", cfg.DashboardHandler.ListComplaints)
		dashboard.POST("/complaints", cfg.DashboardHandler.SubmitComplaint)
		dashboard.GET("/help", cfg.DashboardHandler.GetHelp)
	}
}

package http

import (
	"context"

	"github.com/gin-gonic/gin"

	"skylink/internal/infrastructure/config"
	"skylink/internal/interfaces/http/middleware"
	"skylink/internal/interfaces/http/routes"
	"skylink/internal/shared/logger"
)

// Router represents the HTTP router configuration
type Router struct {
	engine    *gin.Engine
	container *Container
}

// NewRouter builds the container and a bare engine with the global
// middleware chain.
func NewRouter(ctx context.Context, cfg *config.Config, log logger.Interface) (*Router, error) {
	container, err := NewContainer(ctx, cfg, log)
	if err != nil {
		return nil, err
	}

	engine := gin.New()
	engine.Use(
		middleware.Recovery(log),
		middleware.Logger(log.Named("http")),
		middleware.CORS(cfg.Server.AllowedOrigins),
		middleware.SecurityHeaders(),
		container.sessionMiddleware.Attach(),
	)

	return &Router{engine: engine, container: container}, nil
}

// SetupRoutes registers every portal route.
func (r *Router) SetupRoutes() {
	c := r.container

	routes.SetupAuthRoutes(r.engine, &routes.AuthRouteConfig{
		AuthHandler:       c.authHandler,
		SessionMiddleware: c.sessionMiddleware,
		RateLimiter:       c.authRateLimiter,
	})

	routes.SetupDashboardRoutes(r.engine, &routes.DashboardRouteConfig{
		DashboardHandler:  c.dashboardHandler,
		SessionMiddleware: c.sessionMiddleware,
		RouteChecker:      c.enforcer,
	})

	routes.SetupAdminRoutes(r.engine, &routes.AdminRouteConfig{
		AdminHandler:      c.adminHandler,
		SessionMiddleware: c.sessionMiddleware,
		RouteChecker:      c.enforcer,
	})
}

// GetEngine returns the gin engine
func (r *Router) GetEngine() *gin.Engine {
	return r.engine
}

// UseCases exposes the wired use cases, e.g. for background jobs.
func (r *Router) UseCases() *UseCases {
	return r.container.ucs
}

// Shutdown releases the container's resources.
func (r *Router) Shutdown() {
	r.container.Shutdown()
}

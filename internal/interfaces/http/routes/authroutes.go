package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"skylink/internal/interfaces/http/handlers"
	"skylink/internal/interfaces/http/middleware"
	"skylink/internal/shared/authorization"
)

// AuthRouteConfig holds dependencies for the public and session routes.
type AuthRouteConfig struct {
	AuthHandler       *handlers.AuthHandler
	SessionMiddleware *middleware.SessionMiddleware
	RateLimiter       *middleware.RateLimiter
}

// SetupAuthRoutes configures /, /login, /signup, /logout, /me and
// /unauthorized.
func SetupAuthRoutes(engine *gin.Engine, cfg *AuthRouteConfig) {
	engine.GET(authorization.RouteRoot, func(c *gin.Context) {
		c.Redirect(http.StatusFound, authorization.RouteLogin)
	})

	engine.GET(authorization.RouteLogin, cfg.AuthHandler.LoginPage)
	engine.POST(authorization.RouteLogin, cfg.RateLimiter.Limit(), cfg.AuthHandler.Login)
	engine.POST("/signup", cfg.RateLimiter.Limit(), cfg.AuthHandler.Signup)
	engine.POST("/logout", cfg.AuthHandler.Logout)
	engine.GET("/me", cfg.SessionMiddleware.RequireSession(), cfg.AuthHandler.Me)
	engine.GET(authorization.RouteUnauthorized, cfg.AuthHandler.Unauthorized)
}

package authorization

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// ContextKeyRole is set by the session middleware.
const ContextKeyRole = "user_role"

// RouteChecker decides whether a role may view a route.
type RouteChecker interface {
	CanView(role UserRole, route string) (bool, error)
}

// RequireRoute lets the request through only when the session role may
// view route; everything else lands on /unauthorized.
func RequireRoute(checker RouteChecker, route string) gin.HandlerFunc {
	return func(c *gin.Context) {
		role := UserRole(c.GetString(ContextKeyRole))
		allowed, err := checker.CanView(role, route)
		if err != nil || !allowed {
			c.JSON(http.StatusForbidden, gin.H{
				"success":  false,
				"redirect": RouteUnauthorized,
				"error": gin.H{
					"type":    "forbidden",
					"message": "You don't have permission to access this page.",
				},
			})
			c.Abort()
			return
		}
		c.Next()
	}
}

package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"skylink/internal/shared/authorization"
	"skylink/internal/shared/logger"
)

// Logger logs one line per request. The session role is attached when the
// session middleware resolved one.
func Logger(log logger.Interface) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		args := []any{
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"latency", time.Since(start),
			"client_ip", c.ClientIP(),
		}

		if q := c.Request.URL.RawQuery; q != "" {
			args = append(args, "query", q)
		}
		if role := c.GetString(authorization.ContextKeyRole); role != "" {
			args = append(args, "role", role)
		}
		if len(c.Errors) > 0 {
			args = append(args, "error", c.Errors.String())
		}

		status := c.Writer.Status()
		switch {
		case status >= 500:
			log.Errorw("HTTP request completed with server error", args...)
		case status >= 400:
			log.Warnw("HTTP request completed with client error", args...)
		default:
			log.Debugw("HTTP request completed", args...)
		}
	}
}

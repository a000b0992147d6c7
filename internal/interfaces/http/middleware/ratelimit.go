package middleware

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"skylink/internal/infrastructure/ratelimit"
	"skylink/internal/shared/logger"
	"skylink/internal/shared/utils"
)

// RateLimiter enforces a fixed-window limit per client IP and route.
type RateLimiter struct {
	counter ratelimit.Counter
	limit   int
	window  time.Duration
	now     func() time.Time
	logger  logger.Interface
}

// NewRateLimiter allows limit requests per window. A limit of zero or
// less disables the check.
func NewRateLimiter(counter ratelimit.Counter, limit int, window time.Duration, logger logger.Interface) *RateLimiter {
	return &RateLimiter{
		counter: counter,
		limit:   limit,
		window:  window,
		now:     time.Now,
		logger:  logger,
	}
}

func (rl *RateLimiter) Limit() gin.HandlerFunc {
	return func(c *gin.Context) {
		if rl.limit <= 0 {
			c.Next()
			return
		}

		key := c.FullPath() + ":" + c.ClientIP()
		count, err := rl.counter.Incr(c.Request.Context(), key, rl.window, rl.now())
		if err != nil {
			// Counting failures must not lock users out.
			rl.logger.Warnw("rate limit counter unavailable", "error", err)
			c.Next()
			return
		}

		if count > int64(rl.limit) {
			utils.ErrorResponse(c, http.StatusTooManyRequests, "Too many attempts. Please try again in a minute.")
			c.Abort()
			return
		}

		c.Next()
	}
}

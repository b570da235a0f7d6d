package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"novita/internal/infrastructure/ratelimit"
	"novita/internal/shared/logger"
	"novita/internal/shared/utils"
)

// RateLimit enforces a per-client-IP limit backed by the shared limiter.
// When the limiter backend is unavailable the request is let through;
// blocking all traffic on a Redis outage would be worse than not limiting.
func RateLimit(limiter ratelimit.RateLimiter, limit ratelimit.Limit, log logger.Interface) gin.HandlerFunc {
	return func(c *gin.Context) {
		allowed, err := limiter.Allow("ip:"+c.ClientIP(), limit)
		if err != nil {
			log.Warnw("rate limiter unavailable", "error", err)
			c.Next()
			return
		}

		if !allowed {
			utils.ErrorResponse(c, http.StatusTooManyRequests, "rate limit exceeded, please try again later")
			c.Abort()
			return
		}

		c.Next()
	}
}

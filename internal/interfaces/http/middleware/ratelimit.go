package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/Harekrushna7138/ticket-service-backend/internal/infrastructure/ratelimit"
	"github.com/Harekrushna7138/ticket-service-backend/internal/shared/errors"
	"github.com/Harekrushna7138/ticket-service-backend/internal/shared/logger"
	"github.com/Harekrushna7138/ticket-service-backend/internal/shared/utils"
)

// RateLimiter throttles a route group per client IP.
type RateLimiter struct {
	limiter ratelimit.Limiter
	budget  ratelimit.Budget
	logger  logger.Interface
}

func NewRateLimiter(limiter ratelimit.Limiter, budget ratelimit.Budget, logger logger.Interface) *RateLimiter {
	return &RateLimiter{
		limiter: limiter,
		budget:  budget,
		logger:  logger,
	}
}

// Limit counts requests under scope:clientIP. Limiter failures let the request through.
func (rl *RateLimiter) Limit(scope string) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := scope + ":" + c.ClientIP()

		allowed, err := rl.limiter.Allow(c.Request.Context(), key, rl.budget)
		if err != nil {
			rl.logger.Warnw("rate limiter unavailable, allowing request", "key", key, "error", err)
			c.Next()
			return
		}

		if !allowed {
			rl.logger.Warnw("rate limit exceeded", "key", key)
			utils.ErrorResponseWithError(c, errors.NewRateLimitedError("rate limit exceeded, please try again later"))
			c.Abort()
			return
		}

		c.Next()
	}
}

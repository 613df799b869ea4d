package ratelimit

import (
	"fmt"

	apperrors "github.com/adelevett/MyTypeMeasure/internal/errors"
	"github.com/adelevett/MyTypeMeasure/internal/monitoring"
	"github.com/gin-gonic/gin"
)

// Middleware enforces the per-IP limit on every request.
func Middleware(rl *RateLimiter, metrics *monitoring.Metrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		result := rl.AllowIP(c.ClientIP())

		c.Header("X-RateLimit-Limit", fmt.Sprintf("%d", result.Limit))
		c.Header("X-RateLimit-Remaining", fmt.Sprintf("%d", result.Remaining))

		if !result.Allowed {
			metrics.IncrementRateLimitBlock()
			c.Header("Retry-After", fmt.Sprintf("%.0f", result.RetryAfter.Seconds()))

			appErr := apperrors.NewRateLimitError(result.RetryAfter.String())
			apperrors.LogError(c, appErr)
			c.AbortWithStatusJSON(appErr.HTTPStatus, appErr)
			return
		}

		c.Next()
	}
}

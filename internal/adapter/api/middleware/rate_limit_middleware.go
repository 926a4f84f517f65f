package middleware

import (
	"math"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"connekt/pkg/errors"
	"connekt/pkg/logger"
	"connekt/pkg/response"
)

type Limiter interface {
	Allow(userID, action string) (bool, time.Duration)
}

// RateLimit applies the limiter's bucket for action, keyed by the
// authenticated uid or the client IP for anonymous callers.
func RateLimit(limiter Limiter, action string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			key := UID(c)
			if key == "" {
				key = "ip:" + c.RealIP()
			}

			allowed, wait := limiter.Allow(key, action)
			if !allowed {
				logger.Warn("Rate limit exceeded for %s on %s", key, action)
				seconds := int(math.Ceil(wait.Seconds()))
				if seconds < 1 {
					seconds = 1
				}
				c.Response().Header().Set("Retry-After", strconv.Itoa(seconds))
				return response.Error(c, errors.TooManyRequests("Rate limit exceeded"))
			}

			return next(c)
		}
	}
}

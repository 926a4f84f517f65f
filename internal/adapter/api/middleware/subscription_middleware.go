package middleware

import (
	"context"

	"github.com/labstack/echo/v4"

	"connekt/internal/domain/entity"
	"connekt/pkg/errors"
	"connekt/pkg/response"
)

type profileReader interface {
	GetProfile(ctx context.Context, uid string) *entity.Profile
}

type SubscriptionMiddleware struct {
	profiles profileReader
}

func NewSubscriptionMiddleware(profiles profileReader) *SubscriptionMiddleware {
	return &SubscriptionMiddleware{
		profiles: profiles,
	}
}

// RequireTier rejects callers whose subscription is below tier. It must run
// after Authenticate.
func (m *SubscriptionMiddleware) RequireTier(tier entity.SubscriptionTier) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			uid := UID(c)
			if uid == "" {
				return response.Error(c, errors.Unauthorized("Authentication required", nil))
			}

			profile := m.profiles.GetProfile(c.Request().Context(), uid)
			if profile == nil {
				return response.Error(c, errors.Forbidden("Failed to verify subscription", nil))
			}

			if !profile.Subscription.Includes(tier) {
				return response.Error(c, errors.Forbidden(string(tier)+" subscription required", nil))
			}

			c.Set("subscription", profile.Subscription)
			return next(c)
		}
	}
}

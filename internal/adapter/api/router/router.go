package router

import (
	"github.com/labstack/echo/v4"

	"connekt/internal/adapter/api/middleware"
)

func Setup(
	e *echo.Echo,
	authMiddleware *middleware.AuthMiddleware,
	subscriptionMiddleware *middleware.SubscriptionMiddleware,
	limiter middleware.Limiter,
) {
	SetupHealthRouter(e)
	SetupProfileRouter(e, authMiddleware, limiter)
	SetupAnalyticsRouter(e, authMiddleware, subscriptionMiddleware)
	SetupWorkspaceRouter(e, authMiddleware, limiter)
	SetupAgencyRouter(e, authMiddleware)
}

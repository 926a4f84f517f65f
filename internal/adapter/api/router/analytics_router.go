package router

import (
	"github.com/labstack/echo/v4"

	"connekt/internal/adapter/api/handler"
	"connekt/internal/adapter/api/middleware"
	"connekt/internal/domain/entity"
)

func SetupAnalyticsRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware, subscriptionMiddleware *middleware.SubscriptionMiddleware) {
	analyticsHandler := handler.GetAnalyticsHandler()

	pro := e.Group("/v1/pro")
	pro.Use(authMiddleware.Authenticate)
	pro.Use(subscriptionMiddleware.RequireTier(entity.TierPro))

	pro.GET("/workspaces/:id/analytics", analyticsHandler.WorkspaceAnalytics)
	pro.GET("/projects/:id/metrics", analyticsHandler.ProjectMetrics)
	pro.GET("/productivity", analyticsHandler.ProductivityReport)
	pro.POST("/search", analyticsHandler.Search)

	proPlus := e.Group("/v1/pro-plus")
	proPlus.Use(authMiddleware.Authenticate)
	proPlus.Use(subscriptionMiddleware.RequireTier(entity.TierProPlus))

	proPlus.GET("/workspaces/:id/talent-pool", analyticsHandler.TalentPool)
	proPlus.GET("/clients", analyticsHandler.ClientDashboard)
	proPlus.GET("/placements", analyticsHandler.PlacementTracking)
	proPlus.GET("/commission", analyticsHandler.Commission)
}

package router

import (
	"github.com/labstack/echo/v4"

	"connekt/internal/adapter/api/handler"
	"connekt/internal/adapter/api/middleware"
)

func SetupAgencyRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware) {
	agencyHandler := handler.GetAgencyHandler()

	// Public routes
	agencies := e.Group("/v1/agencies")
	agencies.GET("/:id", agencyHandler.GetAgency, authMiddleware.OptionalAuth)

	agencies.POST("", agencyHandler.CreateAgency, authMiddleware.Authenticate)
	agencies.PUT("/:id", agencyHandler.UpdateAgency, authMiddleware.Authenticate)
	agencies.POST("/:id/members", agencyHandler.AddMember, authMiddleware.Authenticate)
	agencies.DELETE("/:id/members/:memberId", agencyHandler.RemoveMember, authMiddleware.Authenticate)

	recruiters := e.Group("/v1/recruiters")
	recruiters.GET("/me", agencyHandler.GetMyRecruiter, authMiddleware.Authenticate)
	recruiters.PUT("/me", agencyHandler.UpsertMyRecruiter, authMiddleware.Authenticate)
	recruiters.GET("/:uid", agencyHandler.GetRecruiter, authMiddleware.OptionalAuth)
}

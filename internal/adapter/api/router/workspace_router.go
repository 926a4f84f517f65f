package router

import (
	"github.com/labstack/echo/v4"

	"connekt/internal/adapter/api/handler"
	"connekt/internal/adapter/api/middleware"
	"connekt/internal/infrastructure/ratelimit"
)

func SetupWorkspaceRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware, limiter middleware.Limiter) {
	workspaceHandler := handler.GetWorkspaceHandler()

	workspaces := e.Group("/v1/workspaces")
	workspaces.Use(authMiddleware.Authenticate)

	workspaces.GET("/invitations", workspaceHandler.ListPendingInvitations)
	workspaces.POST("/invitations/:invitationId/accept", workspaceHandler.AcceptInvitation)
	workspaces.POST("/invitations/:invitationId/decline", workspaceHandler.DeclineInvitation)
	workspaces.DELETE("/invitations/:invitationId", workspaceHandler.CancelInvitation)
	workspaces.POST("/:id/invitations", workspaceHandler.InviteMember,
		middleware.RateLimit(limiter, ratelimit.ActionInvite))
}

package handler

import (
	"context"

	"github.com/labstack/echo/v4"

	"connekt/internal/domain/entity"
	"connekt/internal/usecase"
	"connekt/pkg/response"
)

type workspaceService interface {
	InviteMember(ctx context.Context, input usecase.InviteMemberInput) (*entity.Invitation, error)
	AcceptInvitation(ctx context.Context, id, uid string) (*entity.Invitation, error)
	DeclineInvitation(ctx context.Context, id, uid string) (*entity.Invitation, error)
	CancelInvitation(ctx context.Context, id, uid string) (*entity.Invitation, error)
	ListPendingInvitations(ctx context.Context, uid string) ([]*entity.Invitation, error)
}

type WorkspaceHandler struct {
	workspaceUseCase workspaceService
}

func NewWorkspaceHandler(workspaces workspaceService) *WorkspaceHandler {
	return &WorkspaceHandler{
		workspaceUseCase: workspaces,
	}
}

type inviteMemberRequest struct {
	InviteeID string `json:"inviteeId" validate:"required"`
	Role      string `json:"role" validate:"omitempty,oneof=admin member viewer"`
	Message   string `json:"message" validate:"max=500"`
}

func (h *WorkspaceHandler) InviteMember(c echo.Context) error {
	var req inviteMemberRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.Error(c, err)
	}

	invitation, err := h.workspaceUseCase.InviteMember(c.Request().Context(), usecase.InviteMemberInput{
		WorkspaceID: c.Param("id"),
		InviterID:   currentUser(c),
		InviteeID:   req.InviteeID,
		Role:        req.Role,
		Message:     req.Message,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, invitation)
}

func (h *WorkspaceHandler) ListPendingInvitations(c echo.Context) error {
	invitations, err := h.workspaceUseCase.ListPendingInvitations(c.Request().Context(), currentUser(c))
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, invitations)
}

func (h *WorkspaceHandler) AcceptInvitation(c echo.Context) error {
	return h.respond(c, h.workspaceUseCase.AcceptInvitation)
}

func (h *WorkspaceHandler) DeclineInvitation(c echo.Context) error {
	return h.respond(c, h.workspaceUseCase.DeclineInvitation)
}

func (h *WorkspaceHandler) CancelInvitation(c echo.Context) error {
	return h.respond(c, h.workspaceUseCase.CancelInvitation)
}

func (h *WorkspaceHandler) respond(c echo.Context, action func(ctx context.Context, id, uid string) (*entity.Invitation, error)) error {
	invitation, err := action(c.Request().Context(), c.Param("invitationId"), currentUser(c))
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, invitation)
}

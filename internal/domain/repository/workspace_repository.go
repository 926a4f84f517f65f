package repository

import (
	"context"

	"connekt/internal/domain/entity"
)

type WorkspaceRepository interface {
	GetByID(ctx context.Context, id string) (*entity.Workspace, error)
	UpdateMembers(ctx context.Context, id string, members []entity.WorkspaceMember) error
}

type InvitationRepository interface {
	Create(ctx context.Context, invitation *entity.Invitation) error
	GetByID(ctx context.Context, id string) (*entity.Invitation, error)
	Update(ctx context.Context, invitation *entity.Invitation) error
	ListByInvitee(ctx context.Context, inviteeID, status string) ([]*entity.Invitation, error)
	ListByWorkspace(ctx context.Context, workspaceID, status string) ([]*entity.Invitation, error)
}

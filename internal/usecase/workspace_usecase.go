package usecase

import (
	"context"
	"time"

	"connekt/internal/domain/entity"
	"connekt/internal/domain/repository"
	"connekt/pkg/errors"
	"connekt/pkg/logger"
	"connekt/pkg/utils"
)

// WorkspaceUseCase manages membership invitations. Unlike the profile store it
// returns typed errors so the API can tell callers why an action was refused.
type WorkspaceUseCase struct {
	workspaceRepo  repository.WorkspaceRepository
	invitationRepo repository.InvitationRepository
	projectRepo    repository.ProjectRepository
	logger         logger.Logger
	now            func() time.Time
}

func NewWorkspaceUseCase(
	workspaceRepo repository.WorkspaceRepository,
	invitationRepo repository.InvitationRepository,
	projectRepo repository.ProjectRepository,
	log logger.Logger,
) *WorkspaceUseCase {
	return &WorkspaceUseCase{
		workspaceRepo:  workspaceRepo,
		invitationRepo: invitationRepo,
		projectRepo:    projectRepo,
		logger:         log,
		now:            time.Now,
	}
}

type InviteMemberInput struct {
	WorkspaceID string
	InviterID   string
	InviteeID   string
	Role        string
	Message     string
}

func validInviteRole(role string) bool {
	switch role {
	case entity.WorkspaceRoleAdmin, entity.WorkspaceRoleMember, entity.WorkspaceRoleViewer:
		return true
	}
	return false
}

func (uc *WorkspaceUseCase) InviteMember(ctx context.Context, input InviteMemberInput) (*entity.Invitation, error) {
	if input.Role == "" {
		input.Role = entity.WorkspaceRoleMember
	}
	if !validInviteRole(input.Role) {
		return nil, errors.BadRequest("Invalid role", nil)
	}
	if input.InviteeID == "" || input.InviteeID == input.InviterID {
		return nil, errors.BadRequest("Invalid invitee", nil)
	}

	workspace, err := uc.workspaceRepo.GetByID(ctx, input.WorkspaceID)
	if err != nil {
		return nil, err
	}
	if !workspace.CanInvite(input.InviterID) {
		return nil, errors.Forbidden("Only owners and admins can invite members", nil)
	}
	if _, ok := workspace.Member(input.InviteeID); ok {
		return nil, errors.Conflict("User is already a member of this workspace")
	}

	pending, err := uc.invitationRepo.ListByWorkspace(ctx, input.WorkspaceID, entity.InvitationPending)
	if err != nil {
		return nil, err
	}
	for _, inv := range pending {
		if inv.InviteeID == input.InviteeID {
			return nil, errors.Conflict("User already has a pending invitation")
		}
	}

	invitation := &entity.Invitation{
		ID:            utils.NewID(),
		WorkspaceID:   workspace.ID,
		WorkspaceName: workspace.Name,
		InviterID:     input.InviterID,
		InviteeID:     input.InviteeID,
		Role:          input.Role,
		Message:       input.Message,
		Status:        entity.InvitationPending,
		CreatedAt:     uc.now(),
	}
	if err := uc.invitationRepo.Create(ctx, invitation); err != nil {
		return nil, err
	}

	uc.logger.Info("Workspace invitation sent", "workspaceId", workspace.ID, "invitationId", invitation.ID)
	return invitation, nil
}

// RequireMember returns Forbidden unless uid belongs to the workspace.
func (uc *WorkspaceUseCase) RequireMember(ctx context.Context, workspaceID, uid string) error {
	workspace, err := uc.workspaceRepo.GetByID(ctx, workspaceID)
	if err != nil {
		return err
	}
	if _, ok := workspace.Member(uid); !ok {
		return errors.Forbidden("Not a member of this workspace", nil)
	}
	return nil
}

// RequireProjectMember checks membership of the workspace that owns the project.
func (uc *WorkspaceUseCase) RequireProjectMember(ctx context.Context, projectID, uid string) error {
	project, err := uc.projectRepo.GetByID(ctx, projectID)
	if err != nil {
		return err
	}
	return uc.RequireMember(ctx, project.WorkspaceID, uid)
}

func (uc *WorkspaceUseCase) pendingInvitation(ctx context.Context, id string) (*entity.Invitation, error) {
	invitation, err := uc.invitationRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if invitation.Status != entity.InvitationPending {
		return nil, errors.BadRequest("Invitation is no longer pending", nil)
	}
	return invitation, nil
}

// AcceptInvitation adds the invitee to the workspace. Membership is written
// before the invitation is closed, so a failure in between leaves a pending
// invitation for an existing member; accepting it again is a no-op add.
func (uc *WorkspaceUseCase) AcceptInvitation(ctx context.Context, id, uid string) (*entity.Invitation, error) {
	invitation, err := uc.pendingInvitation(ctx, id)
	if err != nil {
		return nil, err
	}
	if invitation.InviteeID != uid {
		return nil, errors.Forbidden("Invitation belongs to another user", nil)
	}

	workspace, err := uc.workspaceRepo.GetByID(ctx, invitation.WorkspaceID)
	if err != nil {
		return nil, err
	}
	if _, ok := workspace.Member(uid); !ok {
		members := append(append([]entity.WorkspaceMember(nil), workspace.Members...), entity.WorkspaceMember{
			UserID:   uid,
			Role:     invitation.Role,
			JoinedAt: uc.now(),
		})
		if err := uc.workspaceRepo.UpdateMembers(ctx, workspace.ID, members); err != nil {
			return nil, err
		}
	}

	return uc.respond(ctx, invitation, entity.InvitationAccepted)
}

func (uc *WorkspaceUseCase) DeclineInvitation(ctx context.Context, id, uid string) (*entity.Invitation, error) {
	invitation, err := uc.pendingInvitation(ctx, id)
	if err != nil {
		return nil, err
	}
	if invitation.InviteeID != uid {
		return nil, errors.Forbidden("Invitation belongs to another user", nil)
	}
	return uc.respond(ctx, invitation, entity.InvitationDeclined)
}

// CancelInvitation may be called by the inviter or any member allowed to invite.
func (uc *WorkspaceUseCase) CancelInvitation(ctx context.Context, id, uid string) (*entity.Invitation, error) {
	invitation, err := uc.pendingInvitation(ctx, id)
	if err != nil {
		return nil, err
	}
	if invitation.InviterID != uid {
		workspace, err := uc.workspaceRepo.GetByID(ctx, invitation.WorkspaceID)
		if err != nil {
			return nil, err
		}
		if !workspace.CanInvite(uid) {
			return nil, errors.Forbidden("Not allowed to cancel this invitation", nil)
		}
	}
	return uc.respond(ctx, invitation, entity.InvitationCancelled)
}

func (uc *WorkspaceUseCase) respond(ctx context.Context, invitation *entity.Invitation, status string) (*entity.Invitation, error) {
	now := uc.now()
	invitation.Status = status
	invitation.RespondedAt = &now
	if err := uc.invitationRepo.Update(ctx, invitation); err != nil {
		return nil, err
	}
	return invitation, nil
}

func (uc *WorkspaceUseCase) ListPendingInvitations(ctx context.Context, uid string) ([]*entity.Invitation, error) {
	invitations, err := uc.invitationRepo.ListByInvitee(ctx, uid, entity.InvitationPending)
	if err != nil {
		return nil, err
	}
	if invitations == nil {
		invitations = []*entity.Invitation{}
	}
	return invitations, nil
}

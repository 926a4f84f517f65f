package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"connekt/internal/domain/entity"
	"connekt/pkg/errors"
	"connekt/pkg/logger"
)

func newWorkspaceFixture() (*WorkspaceUseCase, *fakeWorkspaceRepo, *fakeInvitationRepo) {
	workspaces := newFakeWorkspaceRepo(&entity.Workspace{
		ID:      "w",
		Name:    "Studio",
		OwnerID: "owner",
		Members: []entity.WorkspaceMember{
			{UserID: "owner", Role: entity.WorkspaceRoleOwner},
			{UserID: "admin", Role: entity.WorkspaceRoleAdmin},
			{UserID: "member", Role: entity.WorkspaceRoleMember},
		},
	})
	invitations := newFakeInvitationRepo()
	projects := &fakeProjectRepo{projects: []*entity.Project{
		{ID: "p", WorkspaceID: "w"},
		{ID: "orphan", WorkspaceID: "gone"},
	}}
	uc := NewWorkspaceUseCase(workspaces, invitations, projects, logger.NewNop())
	uc.now = fixedTime
	return uc, workspaces, invitations
}

func TestInviteMember(t *testing.T) {
	ctx := context.Background()
	uc, _, _ := newWorkspaceFixture()

	inv, err := uc.InviteMember(ctx, InviteMemberInput{WorkspaceID: "w", InviterID: "admin", InviteeID: "new"})
	require.NoError(t, err)
	assert.Equal(t, entity.InvitationPending, inv.Status)
	assert.Equal(t, entity.WorkspaceRoleMember, inv.Role)
	assert.Equal(t, "Studio", inv.WorkspaceName)

	tests := []struct {
		name  string
		input InviteMemberInput
		code  string
	}{
		{"plain member", InviteMemberInput{WorkspaceID: "w", InviterID: "member", InviteeID: "x"}, errors.CodeForbidden},
		{"existing member", InviteMemberInput{WorkspaceID: "w", InviterID: "owner", InviteeID: "member"}, errors.CodeConflict},
		{"duplicate pending", InviteMemberInput{WorkspaceID: "w", InviterID: "owner", InviteeID: "new"}, errors.CodeConflict},
		{"owner role", InviteMemberInput{WorkspaceID: "w", InviterID: "owner", InviteeID: "y", Role: entity.WorkspaceRoleOwner}, errors.CodeBadRequest},
		{"self", InviteMemberInput{WorkspaceID: "w", InviterID: "owner", InviteeID: "owner"}, errors.CodeBadRequest},
		{"unknown workspace", InviteMemberInput{WorkspaceID: "nope", InviterID: "owner", InviteeID: "z"}, errors.CodeNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := uc.InviteMember(ctx, tt.input)
			assert.True(t, errors.Is(err, tt.code), "got %v", err)
		})
	}
}

func TestAcceptInvitation(t *testing.T) {
	ctx := context.Background()
	uc, workspaces, _ := newWorkspaceFixture()

	inv, err := uc.InviteMember(ctx, InviteMemberInput{WorkspaceID: "w", InviterID: "owner", InviteeID: "new", Role: entity.WorkspaceRoleViewer})
	require.NoError(t, err)

	_, err = uc.AcceptInvitation(ctx, inv.ID, "intruder")
	assert.True(t, errors.Is(err, errors.CodeForbidden))

	accepted, err := uc.AcceptInvitation(ctx, inv.ID, "new")
	require.NoError(t, err)
	assert.Equal(t, entity.InvitationAccepted, accepted.Status)
	require.NotNil(t, accepted.RespondedAt)

	member, ok := workspaces.workspaces["w"].Member("new")
	require.True(t, ok)
	assert.Equal(t, entity.WorkspaceRoleViewer, member.Role)

	_, err = uc.AcceptInvitation(ctx, inv.ID, "new")
	assert.True(t, errors.Is(err, errors.CodeBadRequest), "only pending invitations can be answered")
}

func TestDeclineAndCancelInvitation(t *testing.T) {
	ctx := context.Background()
	uc, workspaces, _ := newWorkspaceFixture()

	first, err := uc.InviteMember(ctx, InviteMemberInput{WorkspaceID: "w", InviterID: "admin", InviteeID: "a"})
	require.NoError(t, err)
	declined, err := uc.DeclineInvitation(ctx, first.ID, "a")
	require.NoError(t, err)
	assert.Equal(t, entity.InvitationDeclined, declined.Status)
	assert.Len(t, workspaces.workspaces["w"].Members, 3)

	second, err := uc.InviteMember(ctx, InviteMemberInput{WorkspaceID: "w", InviterID: "admin", InviteeID: "b"})
	require.NoError(t, err)
	_, err = uc.CancelInvitation(ctx, second.ID, "member")
	assert.True(t, errors.Is(err, errors.CodeForbidden))

	cancelled, err := uc.CancelInvitation(ctx, second.ID, "owner")
	require.NoError(t, err)
	assert.Equal(t, entity.InvitationCancelled, cancelled.Status)
}

func TestListPendingInvitations(t *testing.T) {
	ctx := context.Background()
	uc, _, _ := newWorkspaceFixture()

	empty, err := uc.ListPendingInvitations(ctx, "new")
	require.NoError(t, err)
	assert.NotNil(t, empty)
	assert.Empty(t, empty)

	inv, err := uc.InviteMember(ctx, InviteMemberInput{WorkspaceID: "w", InviterID: "owner", InviteeID: "new"})
	require.NoError(t, err)

	pending, err := uc.ListPendingInvitations(ctx, "new")
	require.NoError(t, err)
	require.Len(t, pending, 1)
	assert.Equal(t, inv.ID, pending[0].ID)

	_, err = uc.DeclineInvitation(ctx, inv.ID, "new")
	require.NoError(t, err)
	pending, err = uc.ListPendingInvitations(ctx, "new")
	require.NoError(t, err)
	assert.Empty(t, pending)
}

func TestRequireMember(t *testing.T) {
	ctx := context.Background()
	uc, _, _ := newWorkspaceFixture()

	assert.NoError(t, uc.RequireMember(ctx, "w", "member"))
	assert.True(t, errors.Is(uc.RequireMember(ctx, "w", "stranger"), errors.CodeForbidden))
	assert.True(t, errors.IsNotFound(uc.RequireMember(ctx, "missing", "member")))

	assert.NoError(t, uc.RequireProjectMember(ctx, "p", "owner"))
	assert.True(t, errors.Is(uc.RequireProjectMember(ctx, "p", "stranger"), errors.CodeForbidden))
	assert.True(t, errors.IsNotFound(uc.RequireProjectMember(ctx, "nope", "owner")))
	assert.True(t, errors.IsNotFound(uc.RequireProjectMember(ctx, "orphan", "owner")))
}

package repository

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"connekt/internal/domain/entity"
	"connekt/internal/domain/repository"
	"connekt/pkg/errors"
	"connekt/pkg/utils"
)

const (
	workspacesCollection  = "workspaces"
	invitationsCollection = "workspace_invitations"
)

type firestoreWorkspaceRepository struct {
	client *firestore.Client
}

func NewFirestoreWorkspaceRepository(client *firestore.Client) repository.WorkspaceRepository {
	return &firestoreWorkspaceRepository{
		client: client,
	}
}

func (r *firestoreWorkspaceRepository) GetByID(ctx context.Context, id string) (*entity.Workspace, error) {
	doc, err := r.client.Collection(workspacesCollection).Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, errors.NotFound("Workspace", err)
		}
		return nil, errors.Internal("Failed to get workspace", err)
	}

	var workspace entity.Workspace
	if err := doc.DataTo(&workspace); err != nil {
		return nil, errors.Internal("Failed to parse workspace data", err)
	}
	workspace.ID = doc.Ref.ID

	return &workspace, nil
}

func (r *firestoreWorkspaceRepository) UpdateMembers(ctx context.Context, id string, members []entity.WorkspaceMember) error {
	_, err := r.client.Collection(workspacesCollection).Doc(id).Update(ctx, []firestore.Update{
		{Path: "members", Value: members},
		{Path: "updatedAt", Value: time.Now()},
	})
	if err != nil {
		return errors.Internal("Failed to update workspace members", err)
	}

	return nil
}

type firestoreInvitationRepository struct {
	client *firestore.Client
}

func NewFirestoreInvitationRepository(client *firestore.Client) repository.InvitationRepository {
	return &firestoreInvitationRepository{
		client: client,
	}
}

func (r *firestoreInvitationRepository) Create(ctx context.Context, invitation *entity.Invitation) error {
	if invitation.ID == "" {
		invitation.ID = utils.NewID()
	}
	if invitation.CreatedAt.IsZero() {
		invitation.CreatedAt = time.Now()
	}

	_, err := r.client.Collection(invitationsCollection).Doc(invitation.ID).Set(ctx, invitation)
	if err != nil {
		return errors.Internal("Failed to create invitation", err)
	}

	return nil
}

func (r *firestoreInvitationRepository) GetByID(ctx context.Context, id string) (*entity.Invitation, error) {
	doc, err := r.client.Collection(invitationsCollection).Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, errors.NotFound("Invitation", err)
		}
		return nil, errors.Internal("Failed to get invitation", err)
	}

	var invitation entity.Invitation
	if err := doc.DataTo(&invitation); err != nil {
		return nil, errors.Internal("Failed to parse invitation data", err)
	}
	invitation.ID = doc.Ref.ID

	return &invitation, nil
}

func (r *firestoreInvitationRepository) Update(ctx context.Context, invitation *entity.Invitation) error {
	_, err := r.client.Collection(invitationsCollection).Doc(invitation.ID).Set(ctx, invitation)
	if err != nil {
		return errors.Internal("Failed to update invitation", err)
	}

	return nil
}

func (r *firestoreInvitationRepository) ListByInvitee(ctx context.Context, inviteeID, status string) ([]*entity.Invitation, error) {
	query := r.client.Collection(invitationsCollection).Where("inviteeId", "==", inviteeID)
	if status != "" {
		query = query.Where("status", "==", status)
	}
	return r.list(ctx, query)
}

func (r *firestoreInvitationRepository) ListByWorkspace(ctx context.Context, workspaceID, status string) ([]*entity.Invitation, error) {
	query := r.client.Collection(invitationsCollection).Where("workspaceId", "==", workspaceID)
	if status != "" {
		query = query.Where("status", "==", status)
	}
	return r.list(ctx, query)
}

func (r *firestoreInvitationRepository) list(ctx context.Context, query firestore.Query) ([]*entity.Invitation, error) {
	iter := query.Documents(ctx)
	defer iter.Stop()

	invitations := []*entity.Invitation{}
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, errors.Internal("Failed to list invitations", err)
		}

		var invitation entity.Invitation
		if err := doc.DataTo(&invitation); err != nil {
			return nil, errors.Internal("Failed to parse invitation data", err)
		}
		invitation.ID = doc.Ref.ID
		invitations = append(invitations, &invitation)
	}

	return invitations, nil
}

package entity

import (
	"time"
)

type Workspace struct {
	ID        string            `json:"id" firestore:"id"`
	Name      string            `json:"name" firestore:"name"`
	OwnerID   string            `json:"ownerId" firestore:"ownerId"`
	Members   []WorkspaceMember `json:"members" firestore:"members"`
	CreatedAt time.Time         `json:"createdAt" firestore:"createdAt"`
	UpdatedAt time.Time         `json:"updatedAt" firestore:"updatedAt"`
}

type WorkspaceMember struct {
	UserID   string    `json:"userId" firestore:"userId"`
	Role     string    `json:"role" firestore:"role"` // "owner", "admin", "member", "viewer"
	JoinedAt time.Time `json:"joinedAt" firestore:"joinedAt"`
}

const (
	WorkspaceRoleOwner  = "owner"
	WorkspaceRoleAdmin  = "admin"
	WorkspaceRoleMember = "member"
	WorkspaceRoleViewer = "viewer"
)

func (w *Workspace) Member(uid string) (WorkspaceMember, bool) {
	for _, m := range w.Members {
		if m.UserID == uid {
			return m, true
		}
	}
	return WorkspaceMember{}, false
}

// CanInvite reports whether uid may invite new members.
func (w *Workspace) CanInvite(uid string) bool {
	if w.OwnerID == uid {
		return true
	}
	m, ok := w.Member(uid)
	return ok && (m.Role == WorkspaceRoleOwner || m.Role == WorkspaceRoleAdmin)
}

type Invitation struct {
	ID            string     `json:"id" firestore:"id"`
	WorkspaceID   string     `json:"workspaceId" firestore:"workspaceId"`
	WorkspaceName string     `json:"workspaceName" firestore:"workspaceName"`
	InviterID     string     `json:"inviterId" firestore:"inviterId"`
	InviteeID     string     `json:"inviteeId" firestore:"inviteeId"`
	Role          string     `json:"role" firestore:"role"`
	Message       string     `json:"message,omitempty" firestore:"message"`
	Status        string     `json:"status" firestore:"status"`
	CreatedAt     time.Time  `json:"createdAt" firestore:"createdAt"`
	RespondedAt   *time.Time `json:"respondedAt,omitempty" firestore:"respondedAt"`
}

const (
	InvitationPending   = "pending"
	InvitationAccepted  = "accepted"
	InvitationDeclined  = "declined"
	InvitationCancelled = "cancelled"
)

package entity

import (
	"time"
)

// Project and Task are owned by the workspace tooling; this service only reads them.
type Project struct {
	ID          string     `json:"id" firestore:"id"`
	Name        string     `json:"name" firestore:"name"`
	WorkspaceID string     `json:"workspaceId" firestore:"workspaceId"`
	OwnerID     string     `json:"ownerId" firestore:"ownerId"`
	ClientID    string     `json:"clientId,omitempty" firestore:"clientId"`
	ClientName  string     `json:"clientName,omitempty" firestore:"clientName"`
	Status      string     `json:"status" firestore:"status"` // "active", "completed", "on_hold", "cancelled"
	Budget      float64    `json:"budget,omitempty" firestore:"budget"`
	Deadline    *time.Time `json:"deadline,omitempty" firestore:"deadline"`
	CreatedAt   time.Time  `json:"createdAt" firestore:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt" firestore:"updatedAt"`
}

const (
	ProjectStatusActive    = "active"
	ProjectStatusCompleted = "completed"
)

type Task struct {
	ID               string      `json:"id" firestore:"id"`
	Title            string      `json:"title" firestore:"title"`
	ProjectID        string      `json:"projectId" firestore:"projectId"`
	WorkspaceID      string      `json:"workspaceId" firestore:"workspaceId"`
	Status           string      `json:"status" firestore:"status"`
	AssigneeID       string      `json:"assigneeId,omitempty" firestore:"assigneeId"`
	AssigneeUsername string      `json:"assigneeUsername,omitempty" firestore:"assigneeUsername"`
	Pricing          TaskPricing `json:"pricing" firestore:"pricing"`
	EstimatedHours   float64     `json:"estimatedHours,omitempty" firestore:"estimatedHours"`
	ActualHours      *float64    `json:"actualHours,omitempty" firestore:"actualHours"`
	CreatedAt        time.Time   `json:"createdAt" firestore:"createdAt"`
	UpdatedAt        time.Time   `json:"updatedAt" firestore:"updatedAt"`
}

type TaskPricing struct {
	Amount   float64 `json:"amount" firestore:"amount"`
	Currency string  `json:"currency,omitempty" firestore:"currency"`
}

// Task status vocabulary.
const (
	TaskStatusOpen       = "open"
	TaskStatusAssigned   = "assigned"
	TaskStatusInProgress = "in_progress"
	TaskStatusReview     = "review"
	TaskStatusDone       = "done"
	TaskStatusPaid       = "paid"
)

// CompletedTaskStatuses are the terminal states counted as completed work.
var CompletedTaskStatuses = []string{TaskStatusDone, TaskStatusPaid}

func (t *Task) IsCompleted() bool {
	return t.Status == TaskStatusDone || t.Status == TaskStatusPaid
}

// Hours prefers logged hours and falls back to the estimate.
func (t *Task) Hours() float64 {
	if t.ActualHours != nil {
		return *t.ActualHours
	}
	return t.EstimatedHours
}

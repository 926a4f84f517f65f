package repository

import (
	"context"

	"connekt/internal/domain/entity"
)

type ProjectRepository interface {
	GetByID(ctx context.Context, id string) (*entity.Project, error)
	ListByWorkspace(ctx context.Context, workspaceID string) ([]*entity.Project, error)
}

type TaskRepository interface {
	ListByWorkspace(ctx context.Context, workspaceID string) ([]*entity.Task, error)
	ListByProject(ctx context.Context, projectID string) ([]*entity.Task, error)
	ListByAssigneeAndStatus(ctx context.Context, assigneeID string, statuses []string) ([]*entity.Task, error)
}

type ContractRepository interface {
	ListByProvider(ctx context.Context, providerID string) ([]*entity.Contract, error)
}

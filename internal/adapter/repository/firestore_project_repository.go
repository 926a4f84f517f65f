package repository

import (
	"context"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"connekt/internal/domain/entity"
	"connekt/internal/domain/repository"
	"connekt/pkg/errors"
)

const (
	projectsCollection  = "projects"
	tasksCollection     = "tasks"
	contractsCollection = "contracts"
)

type firestoreProjectRepository struct {
	client *firestore.Client
}

func NewFirestoreProjectRepository(client *firestore.Client) repository.ProjectRepository {
	return &firestoreProjectRepository{
		client: client,
	}
}

func (r *firestoreProjectRepository) GetByID(ctx context.Context, id string) (*entity.Project, error) {
	doc, err := r.client.Collection(projectsCollection).Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, errors.NotFound("Project", err)
		}
		return nil, errors.Internal("Failed to get project", err)
	}

	var project entity.Project
	if err := doc.DataTo(&project); err != nil {
		return nil, errors.Internal("Failed to parse project data", err)
	}
	project.ID = doc.Ref.ID

	return &project, nil
}

func (r *firestoreProjectRepository) ListByWorkspace(ctx context.Context, workspaceID string) ([]*entity.Project, error) {
	iter := r.client.Collection(projectsCollection).Where("workspaceId", "==", workspaceID).Documents(ctx)
	defer iter.Stop()

	projects := []*entity.Project{}
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, errors.Internal("Failed to list projects", err)
		}

		var project entity.Project
		if err := doc.DataTo(&project); err != nil {
			return nil, errors.Internal("Failed to parse project data", err)
		}
		project.ID = doc.Ref.ID
		projects = append(projects, &project)
	}

	return projects, nil
}

type firestoreTaskRepository struct {
	client *firestore.Client
}

func NewFirestoreTaskRepository(client *firestore.Client) repository.TaskRepository {
	return &firestoreTaskRepository{
		client: client,
	}
}

func (r *firestoreTaskRepository) ListByWorkspace(ctx context.Context, workspaceID string) ([]*entity.Task, error) {
	return r.list(ctx, r.client.Collection(tasksCollection).Where("workspaceId", "==", workspaceID))
}

func (r *firestoreTaskRepository) ListByProject(ctx context.Context, projectID string) ([]*entity.Task, error) {
	return r.list(ctx, r.client.Collection(tasksCollection).Where("projectId", "==", projectID))
}

// ListByAssigneeAndStatus is not date-scoped: callers filter by period in memory.
func (r *firestoreTaskRepository) ListByAssigneeAndStatus(ctx context.Context, assigneeID string, statuses []string) ([]*entity.Task, error) {
	query := r.client.Collection(tasksCollection).Where("assigneeId", "==", assigneeID)
	if len(statuses) > 0 {
		query = query.Where("status", "in", statuses)
	}
	return r.list(ctx, query)
}

func (r *firestoreTaskRepository) list(ctx context.Context, query firestore.Query) ([]*entity.Task, error) {
	iter := query.Documents(ctx)
	defer iter.Stop()

	tasks := []*entity.Task{}
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, errors.Internal("Failed to list tasks", err)
		}

		var task entity.Task
		if err := doc.DataTo(&task); err != nil {
			return nil, errors.Internal("Failed to parse task data", err)
		}
		task.ID = doc.Ref.ID
		tasks = append(tasks, &task)
	}

	return tasks, nil
}

type firestoreContractRepository struct {
	client *firestore.Client
}

func NewFirestoreContractRepository(client *firestore.Client) repository.ContractRepository {
	return &firestoreContractRepository{
		client: client,
	}
}

func (r *firestoreContractRepository) ListByProvider(ctx context.Context, providerID string) ([]*entity.Contract, error) {
	iter := r.client.Collection(contractsCollection).
		Where("providerId", "==", providerID).
		OrderBy("createdAt", firestore.Desc).
		Documents(ctx)
	defer iter.Stop()

	contracts := []*entity.Contract{}
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, errors.Internal("Failed to list contracts", err)
		}

		var contract entity.Contract
		if err := doc.DataTo(&contract); err != nil {
			return nil, errors.Internal("Failed to parse contract data", err)
		}
		contract.ID = doc.Ref.ID
		contracts = append(contracts, &contract)
	}

	return contracts, nil
}

package repository

import (
	"context"

	"connekt/internal/domain/entity"
)

type ProfileRepository interface {
	GetByID(ctx context.Context, uid string) (*entity.Profile, error)
	Create(ctx context.Context, profile *entity.Profile) error
	// Merge writes the given top-level fields (nested maps merge deeply) and stamps updatedAt.
	Merge(ctx context.Context, uid string, fields map[string]interface{}) error
	IncrementField(ctx context.Context, uid, path string, delta int) error
	Search(ctx context.Context, query ProfileQuery) ([]*entity.Profile, error)
}

// ProfileQuery holds only the filters the document store can evaluate.
type ProfileQuery struct {
	SkillsAny    []string // array-contains-any, at most 10 values
	Availability []string // in
	Location     string   // equality
	Limit        int
	Offset       int
}

type AccountRepository interface {
	GetByID(ctx context.Context, uid string) (*entity.Account, error)
}

type HandleRepository interface {
	Resolve(ctx context.Context, handle string) (string, error)
	Claim(ctx context.Context, mapping *entity.HandleMapping) error
	Release(ctx context.Context, handle string) error
}

package repository

import (
	"context"

	"connekt/internal/domain/entity"
)

type AgencyRepository interface {
	GetByID(ctx context.Context, id string) (*entity.AgencyProfile, error)
	Save(ctx context.Context, agency *entity.AgencyProfile) error
}

type RecruiterRepository interface {
	GetByID(ctx context.Context, uid string) (*entity.RecruiterProfile, error)
	Save(ctx context.Context, recruiter *entity.RecruiterProfile) error
}

package repository

import (
	"context"

	"connekt/internal/domain/entity"
)

type RatingRepository interface {
	Create(ctx context.Context, rating *entity.Rating) error
	ListAll(ctx context.Context, uid string) ([]*entity.Rating, error)
	ListRecent(ctx context.Context, uid string, limit int) ([]*entity.Rating, error)
}

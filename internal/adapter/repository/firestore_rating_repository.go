package repository

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"

	"connekt/internal/domain/entity"
	"connekt/internal/domain/repository"
	"connekt/pkg/errors"
	"connekt/pkg/utils"
)

const ratingsSubcollection = "ratings"

type firestoreRatingRepository struct {
	client *firestore.Client
}

func NewFirestoreRatingRepository(client *firestore.Client) repository.RatingRepository {
	return &firestoreRatingRepository{
		client: client,
	}
}

func (r *firestoreRatingRepository) ratings(uid string) *firestore.CollectionRef {
	return r.client.Collection(profilesCollection).Doc(uid).Collection(ratingsSubcollection)
}

func (r *firestoreRatingRepository) Create(ctx context.Context, rating *entity.Rating) error {
	if rating.ID == "" {
		rating.ID = utils.NewID()
	}
	if rating.CreatedAt.IsZero() {
		rating.CreatedAt = time.Now()
	}

	// Create fails if the id already exists, keeping ratings append-only.
	_, err := r.ratings(rating.ToUserID).Doc(rating.ID).Create(ctx, rating)
	if err != nil {
		return errors.Internal("Failed to create rating", err)
	}

	return nil
}

func (r *firestoreRatingRepository) ListAll(ctx context.Context, uid string) ([]*entity.Rating, error) {
	return r.collect(r.ratings(uid).Documents(ctx))
}

func (r *firestoreRatingRepository) ListRecent(ctx context.Context, uid string, limit int) ([]*entity.Rating, error) {
	query := r.ratings(uid).OrderBy("createdAt", firestore.Desc)
	if limit > 0 {
		query = query.Limit(limit)
	}
	return r.collect(query.Documents(ctx))
}

func (r *firestoreRatingRepository) collect(iter *firestore.DocumentIterator) ([]*entity.Rating, error) {
	defer iter.Stop()

	ratings := []*entity.Rating{}
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, errors.Internal("Failed to list ratings", err)
		}

		var rating entity.Rating
		if err := doc.DataTo(&rating); err != nil {
			return nil, errors.Internal("Failed to parse rating data", err)
		}
		rating.ID = doc.Ref.ID
		ratings = append(ratings, &rating)
	}

	return ratings, nil
}

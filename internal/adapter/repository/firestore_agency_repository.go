package repository

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"connekt/internal/domain/entity"
	"connekt/internal/domain/repository"
	"connekt/pkg/errors"
)

const (
	agenciesCollection   = "agencies"
	recruitersCollection = "recruiters"
)

type firestoreAgencyRepository struct {
	client *firestore.Client
}

func NewFirestoreAgencyRepository(client *firestore.Client) repository.AgencyRepository {
	return &firestoreAgencyRepository{
		client: client,
	}
}

func (r *firestoreAgencyRepository) GetByID(ctx context.Context, id string) (*entity.AgencyProfile, error) {
	doc, err := r.client.Collection(agenciesCollection).Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, errors.NotFound("Agency", err)
		}
		return nil, errors.Internal("Failed to get agency", err)
	}

	var agency entity.AgencyProfile
	if err := doc.DataTo(&agency); err != nil {
		return nil, errors.Internal("Failed to parse agency data", err)
	}
	agency.ID = doc.Ref.ID

	return &agency, nil
}

func (r *firestoreAgencyRepository) Save(ctx context.Context, agency *entity.AgencyProfile) error {
	now := time.Now()
	if agency.CreatedAt.IsZero() {
		agency.CreatedAt = now
	}
	agency.UpdatedAt = now

	_, err := r.client.Collection(agenciesCollection).Doc(agency.ID).Set(ctx, agency)
	if err != nil {
		return errors.Internal("Failed to save agency", err)
	}

	return nil
}

type firestoreRecruiterRepository struct {
	client *firestore.Client
}

func NewFirestoreRecruiterRepository(client *firestore.Client) repository.RecruiterRepository {
	return &firestoreRecruiterRepository{
		client: client,
	}
}

func (r *firestoreRecruiterRepository) GetByID(ctx context.Context, uid string) (*entity.RecruiterProfile, error) {
	doc, err := r.client.Collection(recruitersCollection).Doc(uid).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, errors.NotFound("Recruiter", err)
		}
		return nil, errors.Internal("Failed to get recruiter", err)
	}

	var recruiter entity.RecruiterProfile
	if err := doc.DataTo(&recruiter); err != nil {
		return nil, errors.Internal("Failed to parse recruiter data", err)
	}
	recruiter.UID = doc.Ref.ID

	return &recruiter, nil
}

func (r *firestoreRecruiterRepository) Save(ctx context.Context, recruiter *entity.RecruiterProfile) error {
	now := time.Now()
	if recruiter.CreatedAt.IsZero() {
		recruiter.CreatedAt = now
	}
	recruiter.UpdatedAt = now

	_, err := r.client.Collection(recruitersCollection).Doc(recruiter.UID).Set(ctx, recruiter)
	if err != nil {
		return errors.Internal("Failed to save recruiter", err)
	}

	return nil
}

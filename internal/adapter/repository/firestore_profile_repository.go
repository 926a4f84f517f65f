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
)

const (
	profilesCollection = "profiles"
	accountsCollection = "users"
	handlesCollection  = "usernames"

	// Firestore rejects array-contains-any with more than 10 values.
	maxContainsAny = 10
)

type firestoreProfileRepository struct {
	client *firestore.Client
}

func NewFirestoreProfileRepository(client *firestore.Client) repository.ProfileRepository {
	return &firestoreProfileRepository{
		client: client,
	}
}

func (r *firestoreProfileRepository) GetByID(ctx context.Context, uid string) (*entity.Profile, error) {
	doc, err := r.client.Collection(profilesCollection).Doc(uid).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, errors.NotFound("Profile", err)
		}
		return nil, errors.Internal("Failed to get profile", err)
	}

	var profile entity.Profile
	if err := doc.DataTo(&profile); err != nil {
		return nil, errors.Internal("Failed to parse profile data", err)
	}
	profile.UID = doc.Ref.ID

	return &profile, nil
}

func (r *firestoreProfileRepository) Create(ctx context.Context, profile *entity.Profile) error {
	now := time.Now()
	if profile.CreatedAt.IsZero() {
		profile.CreatedAt = now
	}
	profile.UpdatedAt = now

	_, err := r.client.Collection(profilesCollection).Doc(profile.UID).Set(ctx, profile)
	if err != nil {
		return errors.Internal("Failed to create profile", err)
	}

	return nil
}

func (r *firestoreProfileRepository) Merge(ctx context.Context, uid string, fields map[string]interface{}) error {
	data := make(map[string]interface{}, len(fields)+1)
	for k, v := range fields {
		data[k] = v
	}
	data["updatedAt"] = time.Now()

	_, err := r.client.Collection(profilesCollection).Doc(uid).Set(ctx, data, firestore.MergeAll)
	if err != nil {
		return errors.Internal("Failed to update profile", err)
	}

	return nil
}

func (r *firestoreProfileRepository) IncrementField(ctx context.Context, uid, path string, delta int) error {
	_, err := r.client.Collection(profilesCollection).Doc(uid).Update(ctx, []firestore.Update{
		{Path: path, Value: firestore.Increment(delta)},
	})
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return errors.NotFound("Profile", err)
		}
		return errors.Internal("Failed to increment profile counter", err)
	}

	return nil
}

func (r *firestoreProfileRepository) Search(ctx context.Context, q repository.ProfileQuery) ([]*entity.Profile, error) {
	query := r.client.Collection(profilesCollection).Query

	if len(q.SkillsAny) > 0 {
		skills := q.SkillsAny
		if len(skills) > maxContainsAny {
			skills = skills[:maxContainsAny]
		}
		query = query.Where("skills", "array-contains-any", skills)
	}
	if len(q.Availability) > 0 {
		query = query.Where("availability", "in", q.Availability)
	}
	if q.Location != "" {
		query = query.Where("location", "==", q.Location)
	}

	if q.Offset > 0 {
		query = query.Offset(q.Offset)
	}
	if q.Limit > 0 {
		query = query.Limit(q.Limit)
	}

	iter := query.Documents(ctx)
	defer iter.Stop()

	var profiles []*entity.Profile
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, errors.Internal("Failed to search profiles", err)
		}

		var profile entity.Profile
		if err := doc.DataTo(&profile); err != nil {
			return nil, errors.Internal("Failed to parse profile data", err)
		}
		profile.UID = doc.Ref.ID
		profiles = append(profiles, &profile)
	}

	return profiles, nil
}

type firestoreAccountRepository struct {
	client *firestore.Client
}

func NewFirestoreAccountRepository(client *firestore.Client) repository.AccountRepository {
	return &firestoreAccountRepository{
		client: client,
	}
}

func (r *firestoreAccountRepository) GetByID(ctx context.Context, uid string) (*entity.Account, error) {
	doc, err := r.client.Collection(accountsCollection).Doc(uid).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, errors.NotFound("Account", err)
		}
		return nil, errors.Internal("Failed to get account", err)
	}

	var account entity.Account
	if err := doc.DataTo(&account); err != nil {
		return nil, errors.Internal("Failed to parse account data", err)
	}
	account.UID = doc.Ref.ID

	return &account, nil
}

type firestoreHandleRepository struct {
	client *firestore.Client
}

func NewFirestoreHandleRepository(client *firestore.Client) repository.HandleRepository {
	return &firestoreHandleRepository{
		client: client,
	}
}

func (r *firestoreHandleRepository) Resolve(ctx context.Context, handle string) (string, error) {
	doc, err := r.client.Collection(handlesCollection).Doc(handle).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return "", errors.NotFound("Handle", err)
		}
		return "", errors.Internal("Failed to resolve handle", err)
	}

	var mapping entity.HandleMapping
	if err := doc.DataTo(&mapping); err != nil {
		return "", errors.Internal("Failed to parse handle mapping", err)
	}
	if mapping.UID == "" {
		return "", errors.NotFound("Handle", nil)
	}

	return mapping.UID, nil
}

func (r *firestoreHandleRepository) Claim(ctx context.Context, mapping *entity.HandleMapping) error {
	if mapping.CreatedAt.IsZero() {
		mapping.CreatedAt = time.Now()
	}

	_, err := r.client.Collection(handlesCollection).Doc(mapping.Handle).Set(ctx, mapping)
	if err != nil {
		return errors.Internal("Failed to claim handle", err)
	}

	return nil
}

func (r *firestoreHandleRepository) Release(ctx context.Context, handle string) error {
	_, err := r.client.Collection(handlesCollection).Doc(handle).Delete(ctx)
	if err != nil {
		return errors.Internal("Failed to release handle", err)
	}

	return nil
}

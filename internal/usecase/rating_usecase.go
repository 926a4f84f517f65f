package usecase

import (
	"context"
	"strings"
	"time"

	"connekt/internal/domain/entity"
	"connekt/internal/domain/repository"
	"connekt/pkg/logger"
	"connekt/pkg/utils"
)

const (
	defaultRatingsLimit = 20
	maxRatingsLimit     = 100
)

type profileReader interface {
	GetProfile(ctx context.Context, uid string) *entity.Profile
}

// ratedProfiles also initializes the extended record before stats are merged into it.
type ratedProfiles interface {
	profileReader
	EnsureProfile(ctx context.Context, uid string) bool
}

// RatingUseCase keeps stats.averageRating/totalRatings in sync with the
// append-only ratings sub-collection by recomputing after every write.
type RatingUseCase struct {
	ratingRepo  repository.RatingRepository
	profileRepo repository.ProfileRepository
	profiles    ratedProfiles
	logger      logger.Logger
	now         func() time.Time
}

func NewRatingUseCase(
	ratingRepo repository.RatingRepository,
	profileRepo repository.ProfileRepository,
	profiles ratedProfiles,
	log logger.Logger,
) *RatingUseCase {
	return &RatingUseCase{
		ratingRepo:  ratingRepo,
		profileRepo: profileRepo,
		profiles:    profiles,
		logger:      log,
		now:         time.Now,
	}
}

type AddRatingInput struct {
	ToUserID    string
	FromUserID  string
	Rating      int
	Review      string
	ProjectID   string
	ProjectName string
	Media       []entity.MediaItem
}

type RatingSummary struct {
	AverageRating float64 `json:"averageRating"`
	TotalRatings  int     `json:"totalRatings"`
}

// AddRating stores a rating and recomputes the cached average. The rater's
// name and photo are copied now and never refreshed.
func (uc *RatingUseCase) AddRating(ctx context.Context, input AddRatingInput) *entity.Rating {
	if input.Rating < entity.MinRating || input.Rating > entity.MaxRating {
		return nil
	}
	if input.ToUserID == "" || input.FromUserID == "" || input.ToUserID == input.FromUserID {
		return nil
	}

	if !uc.profiles.EnsureProfile(ctx, input.ToUserID) {
		return nil
	}

	rating := &entity.Rating{
		ID:          utils.NewID(),
		ToUserID:    input.ToUserID,
		FromUserID:  input.FromUserID,
		Rating:      input.Rating,
		Review:      strings.TrimSpace(input.Review),
		ProjectID:   input.ProjectID,
		ProjectName: input.ProjectName,
		Media:       input.Media,
		CreatedAt:   uc.now(),
	}

	rating.FromUserName = "Connekt member"
	if rater := uc.profiles.GetProfile(ctx, input.FromUserID); rater != nil {
		rating.FromUserName = displayName(rater)
		rating.FromUserPhoto = rater.PhotoURL
	}

	if err := uc.ratingRepo.Create(ctx, rating); err != nil {
		uc.logger.Error("Failed to add rating", "to", input.ToUserID, "from", input.FromUserID, "error", err)
		return nil
	}

	if uc.RecomputeAverage(ctx, input.ToUserID) == nil {
		uc.logger.Warn("Rating stored but average not recomputed", "uid", input.ToUserID, "ratingId", rating.ID)
	}

	return rating
}

// AverageRating returns the mean and count; no ratings means an average of 0.
func AverageRating(ratings []*entity.Rating) (float64, int) {
	if len(ratings) == 0 {
		return 0, 0
	}
	sum := 0
	for _, r := range ratings {
		sum += r.Rating
	}
	return float64(sum) / float64(len(ratings)), len(ratings)
}

// RecomputeAverage reads every rating of uid and rewrites the cached stats.
// O(n) per call; rating volume per profile is small.
func (uc *RatingUseCase) RecomputeAverage(ctx context.Context, uid string) *RatingSummary {
	ratings, err := uc.ratingRepo.ListAll(ctx, uid)
	if err != nil {
		uc.logger.Error("Failed to read ratings", "uid", uid, "error", err)
		return nil
	}

	avg, total := AverageRating(ratings)
	if !uc.profiles.EnsureProfile(ctx, uid) {
		uc.logger.Error("No profile to write rating stats", "uid", uid)
		return nil
	}
	err = uc.profileRepo.Merge(ctx, uid, map[string]interface{}{
		"stats": map[string]interface{}{
			"averageRating": avg,
			"totalRatings":  total,
		},
	})
	if err != nil {
		uc.logger.Error("Failed to write rating stats", "uid", uid, "error", err)
		return nil
	}

	return &RatingSummary{AverageRating: avg, TotalRatings: total}
}

// RecomputeAll recomputes several profiles and returns the summaries that succeeded.
func (uc *RatingUseCase) RecomputeAll(ctx context.Context, uids []string) map[string]RatingSummary {
	out := make(map[string]RatingSummary, len(uids))
	for _, uid := range uids {
		if ctx.Err() != nil {
			break
		}
		if s := uc.RecomputeAverage(ctx, uid); s != nil {
			out[uid] = *s
		}
	}
	return out
}

// ListRatings returns up to limit ratings, newest first. There is no cursor.
func (uc *RatingUseCase) ListRatings(ctx context.Context, uid string, limit int) []*entity.Rating {
	if limit <= 0 {
		limit = defaultRatingsLimit
	}
	if limit > maxRatingsLimit {
		limit = maxRatingsLimit
	}

	ratings, err := uc.ratingRepo.ListRecent(ctx, uid, limit)
	if err != nil {
		uc.logger.Error("Failed to list ratings", "uid", uid, "error", err)
		return []*entity.Rating{}
	}
	return ratings
}

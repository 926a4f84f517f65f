package usecase

import (
	"context"
	"strings"
	"time"

	"connekt/internal/domain/entity"
	"connekt/internal/domain/repository"
	"connekt/pkg/errors"
	"connekt/pkg/logger"
	"connekt/pkg/utils"
)

// ProfileUseCase is the profile store. Failures are logged and reported as
// nil/false; callers cannot tell "not found" from a backend error.
//
// List fields (experience, education, custom sections, referrals, portfolio)
// are rewritten whole on every mutation. Two concurrent editors race and the
// last write wins; profiles are edited by their owner only.
type ProfileUseCase struct {
	profileRepo repository.ProfileRepository
	accountRepo repository.AccountRepository
	handleRepo  repository.HandleRepository
	ratingRepo  repository.RatingRepository
	logger      logger.Logger
	now         func() time.Time
}

func NewProfileUseCase(
	profileRepo repository.ProfileRepository,
	accountRepo repository.AccountRepository,
	handleRepo repository.HandleRepository,
	ratingRepo repository.RatingRepository,
	log logger.Logger,
) *ProfileUseCase {
	return &ProfileUseCase{
		profileRepo: profileRepo,
		accountRepo: accountRepo,
		handleRepo:  handleRepo,
		ratingRepo:  ratingRepo,
		logger:      log,
		now:         time.Now,
	}
}

// InitializeUserProfile creates the extended record for a new account.
func (uc *ProfileUseCase) InitializeUserProfile(ctx context.Context, account *entity.Account) *entity.Profile {
	if account == nil || account.UID == "" {
		return nil
	}

	profile := resolveProfile(nil, account)
	profile.CreatedAt = uc.now()
	profile.Subscription = entity.TierFree

	if err := uc.profileRepo.Create(ctx, profile); err != nil {
		uc.logger.Error("Failed to initialize profile", "uid", account.UID, "error", err)
		return nil
	}

	return profile
}

// GetProfile returns the merged view of the extended record and the basic
// account. The merge runs on every read and is never written back.
func (uc *ProfileUseCase) GetProfile(ctx context.Context, uid string) *entity.Profile {
	if uid == "" {
		return nil
	}

	extended, err := uc.profileRepo.GetByID(ctx, uid)
	if err != nil && !errors.IsNotFound(err) {
		uc.logger.Error("Failed to get profile", "uid", uid, "error", err)
		return nil
	}

	var account *entity.Account
	if extended == nil || extended.Bio == "" || len(extended.Skills) == 0 {
		account, err = uc.accountRepo.GetByID(ctx, uid)
		if err != nil && !errors.IsNotFound(err) {
			uc.logger.Warn("Failed to get account for profile merge", "uid", uid, "error", err)
		}
	}

	return resolveProfile(extended, account)
}

// GetProfileByHandle resolves usernames/{handle} and delegates to GetProfile.
func (uc *ProfileUseCase) GetProfileByHandle(ctx context.Context, handle string) *entity.Profile {
	handle = normalizeHandle(handle)
	if handle == "" {
		return nil
	}

	uid, err := uc.handleRepo.Resolve(ctx, handle)
	if err != nil {
		if !errors.IsNotFound(err) {
			uc.logger.Error("Failed to resolve handle", "handle", handle, "error", err)
		}
		return nil
	}

	return uc.GetProfile(ctx, uid)
}

// GetPublicProfile returns the profile as seen by viewerID ("" for anonymous
// visitors), with recent ratings attached before filtering.
func (uc *ProfileUseCase) GetPublicProfile(ctx context.Context, uid, viewerID string) *entity.Profile {
	return uc.publicView(ctx, uc.GetProfile(ctx, uid), viewerID)
}

func (uc *ProfileUseCase) GetPublicProfileByHandle(ctx context.Context, handle, viewerID string) *entity.Profile {
	return uc.publicView(ctx, uc.GetProfileByHandle(ctx, handle), viewerID)
}

func (uc *ProfileUseCase) publicView(ctx context.Context, profile *entity.Profile, viewerID string) *entity.Profile {
	if profile == nil {
		return nil
	}

	ratings, err := uc.ratingRepo.ListRecent(ctx, profile.UID, defaultRatingsLimit)
	if err != nil {
		uc.logger.Warn("Failed to attach ratings", "uid", profile.UID, "error", err)
	} else {
		profile.Ratings = make([]entity.Rating, 0, len(ratings))
		for _, r := range ratings {
			profile.Ratings = append(profile.Ratings, *r)
		}
	}

	isOwner := viewerID != "" && viewerID == profile.UID
	return FilterProfile(profile, viewerID, isOwner)
}

var handleReplacer = strings.NewReplacer("@", "")

func normalizeHandle(handle string) string {
	return strings.ToLower(strings.TrimSpace(handleReplacer.Replace(handle)))
}

func validHandle(handle string) bool {
	if len(handle) < 3 || len(handle) > 30 {
		return false
	}
	for _, r := range handle {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '_', r == '.':
		default:
			return false
		}
	}
	return true
}

// ClaimHandle points handle at uid and releases the previous handle. This is a
// read-then-write sequence, not a transaction.
func (uc *ProfileUseCase) ClaimHandle(ctx context.Context, uid, handle string) error {
	handle = normalizeHandle(handle)
	if !validHandle(handle) {
		return errors.BadRequest("Handle must be 3-30 characters of a-z, 0-9, '_' or '.'", nil)
	}

	owner, err := uc.handleRepo.Resolve(ctx, handle)
	switch {
	case err == nil && owner != uid:
		return errors.Conflict("Handle is already taken")
	case err == nil:
		return nil
	case !errors.IsNotFound(err):
		return err
	}

	current := uc.GetProfile(ctx, uid)
	if current == nil {
		return errors.NotFound("Profile", nil)
	}
	if !uc.EnsureProfile(ctx, uid) {
		return errors.Internal("Failed to initialize profile", nil)
	}

	if err := uc.handleRepo.Claim(ctx, &entity.HandleMapping{Handle: handle, UID: uid, CreatedAt: uc.now()}); err != nil {
		return err
	}
	if err := uc.profileRepo.Merge(ctx, uid, map[string]interface{}{"username": handle}); err != nil {
		return err
	}

	if previous := normalizeHandle(current.Username); previous != "" && previous != handle {
		if err := uc.handleRepo.Release(ctx, previous); err != nil {
			uc.logger.Warn("Failed to release previous handle", "uid", uid, "handle", previous, "error", err)
		}
	}

	return nil
}

// ProfileUpdate carries the scalar fields an owner may change. Nil means "leave as is".
type ProfileUpdate struct {
	DisplayName     *string
	Title           *string
	Bio             *string
	Location        *string
	Phone           *string
	Email           *string
	PhotoURL        *string
	CoverPhotoURL   *string
	Availability    *string
	HourlyRate      *float64
	YearsExperience *int
	SocialLinks     *entity.SocialLinks
}

func (u ProfileUpdate) fields() map[string]interface{} {
	fields := map[string]interface{}{}
	setString := func(key string, v *string) {
		if v != nil {
			fields[key] = strings.TrimSpace(*v)
		}
	}
	setString("displayName", u.DisplayName)
	setString("title", u.Title)
	setString("bio", u.Bio)
	setString("location", u.Location)
	setString("phone", u.Phone)
	setString("email", u.Email)
	setString("photoURL", u.PhotoURL)
	setString("coverPhotoURL", u.CoverPhotoURL)
	setString("availability", u.Availability)
	if u.HourlyRate != nil {
		fields["hourlyRate"] = *u.HourlyRate
	}
	if u.YearsExperience != nil {
		fields["yearsExperience"] = *u.YearsExperience
	}
	if u.SocialLinks != nil {
		fields["socialLinks"] = *u.SocialLinks
	}
	return fields
}

// UpsertProfile merges the given fields into the stored record and always
// stamps updatedAt, even when no field changed.
func (uc *ProfileUseCase) UpsertProfile(ctx context.Context, uid string, update ProfileUpdate) bool {
	if uid == "" {
		return false
	}
	if update.HourlyRate != nil && *update.HourlyRate < 0 {
		return false
	}
	if update.YearsExperience != nil && *update.YearsExperience < 0 {
		return false
	}
	return uc.mergeScalar(ctx, uid, "upsert profile", update.fields())
}

// UpdateSkills stores skills as a set: trimmed, de-duplicated, empty entries dropped.
func (uc *ProfileUseCase) UpdateSkills(ctx context.Context, uid string, skills []string) bool {
	return uc.mergeScalar(ctx, uid, "update skills", map[string]interface{}{"skills": normalizeSkills(skills)})
}

func normalizeSkills(skills []string) []string {
	seen := make(map[string]bool, len(skills))
	out := make([]string, 0, len(skills))
	for _, s := range skills {
		s = strings.TrimSpace(s)
		key := strings.ToLower(s)
		if s == "" || seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, s)
	}
	return out
}

func (uc *ProfileUseCase) UpdatePrivacySettings(ctx context.Context, uid string, settings entity.PrivacySettings) bool {
	if !settings.Valid() {
		return false
	}
	return uc.mergeScalar(ctx, uid, "update privacy settings", map[string]interface{}{"privacySettings": settings})
}

// RecordProfileView bumps stats.profileViews unless the owner is looking.
func (uc *ProfileUseCase) RecordProfileView(ctx context.Context, uid, viewerID string) bool {
	if uid == "" || uid == viewerID {
		return false
	}
	if err := uc.profileRepo.IncrementField(ctx, uid, "stats.profileViews", 1); err != nil {
		uc.logger.Warn("Failed to record profile view", "uid", uid, "error", err)
		return false
	}
	return true
}

// loadForWrite returns the stored record list mutations start from. A user
// with only a basic account gets the extended record initialized first.
func (uc *ProfileUseCase) loadForWrite(ctx context.Context, uid string) *entity.Profile {
	if uid == "" {
		return nil
	}

	profile, err := uc.profileRepo.GetByID(ctx, uid)
	if err == nil {
		normalizeProfile(profile)
		return profile
	}
	if !errors.IsNotFound(err) {
		uc.logger.Error("Failed to load profile for update", "uid", uid, "error", err)
		return nil
	}

	account, err := uc.accountRepo.GetByID(ctx, uid)
	if err != nil {
		if !errors.IsNotFound(err) {
			uc.logger.Error("Failed to load account for profile init", "uid", uid, "error", err)
		}
		return nil
	}
	return uc.InitializeUserProfile(ctx, account)
}

// EnsureProfile makes sure profiles/{uid} exists before a partial write, so
// a merge never leaves a stub that hides the account identity.
func (uc *ProfileUseCase) EnsureProfile(ctx context.Context, uid string) bool {
	return uc.loadForWrite(ctx, uid) != nil
}

func (uc *ProfileUseCase) mergeScalar(ctx context.Context, uid, op string, fields map[string]interface{}) bool {
	if !uc.EnsureProfile(ctx, uid) {
		return false
	}
	return uc.merge(ctx, uid, op, fields)
}

func (uc *ProfileUseCase) merge(ctx context.Context, uid, op string, fields map[string]interface{}) bool {
	if uid == "" {
		return false
	}
	if err := uc.profileRepo.Merge(ctx, uid, fields); err != nil {
		uc.logger.Error("Failed to "+op, "uid", uid, "error", err)
		return false
	}
	return true
}

func (uc *ProfileUseCase) newID() string {
	return utils.NewID()
}

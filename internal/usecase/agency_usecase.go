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

const (
	AgencyRoleOwner  = "owner"
	AgencyRoleAdmin  = "admin"
	AgencyRoleMember = "member"
)

type AgencyUseCase struct {
	agencyRepo    repository.AgencyRepository
	recruiterRepo repository.RecruiterRepository
	logger        logger.Logger
	now           func() time.Time
}

func NewAgencyUseCase(agencyRepo repository.AgencyRepository, recruiterRepo repository.RecruiterRepository, log logger.Logger) *AgencyUseCase {
	return &AgencyUseCase{
		agencyRepo:    agencyRepo,
		recruiterRepo: recruiterRepo,
		logger:        log,
		now:           time.Now,
	}
}

// AgencyInput holds the editable agency fields.
type AgencyInput struct {
	Name            string
	Handle          string
	Tagline         string
	Description     string
	LogoURL         string
	Email           string
	Phone           string
	Location        string
	Industries      []string
	Services        []entity.AgencyService
	SocialLinks     *entity.SocialLinks
	PrivacySettings *entity.PrivacySettings
}

func agencyRole(a *entity.AgencyProfile, uid string) string {
	if a.OwnerID == uid {
		return AgencyRoleOwner
	}
	for _, m := range a.Members {
		if m.UserID == uid {
			return m.Role
		}
	}
	return ""
}

func canManageAgency(a *entity.AgencyProfile, uid string) bool {
	role := agencyRole(a, uid)
	return role == AgencyRoleOwner || role == AgencyRoleAdmin
}

func (uc *AgencyUseCase) GetAgency(ctx context.Context, id string) (*entity.AgencyProfile, error) {
	agency, err := uc.agencyRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	agency.PrivacySettings = agency.PrivacySettings.WithDefaults()
	return agency, nil
}

// GetPublicAgency applies the privacy filter; members and admins see everything.
func (uc *AgencyUseCase) GetPublicAgency(ctx context.Context, id, viewerID string) (*entity.AgencyProfile, error) {
	agency, err := uc.GetAgency(ctx, id)
	if err != nil {
		return nil, err
	}
	isOwner := viewerID != "" && agencyRole(agency, viewerID) != ""
	return FilterAgency(agency, viewerID, isOwner), nil
}

// UpsertAgency creates a new agency owned by actorID when id is empty, and
// otherwise overwrites the editable fields of an agency actorID manages.
func (uc *AgencyUseCase) UpsertAgency(ctx context.Context, id, actorID string, input AgencyInput) (*entity.AgencyProfile, error) {
	if strings.TrimSpace(input.Name) == "" {
		return nil, errors.BadRequest("Agency name is required", nil)
	}
	if input.PrivacySettings != nil && !input.PrivacySettings.Valid() {
		return nil, errors.BadRequest("Invalid privacy settings", nil)
	}

	var agency *entity.AgencyProfile
	if id == "" {
		agency = &entity.AgencyProfile{
			ID:              utils.NewID(),
			OwnerID:         actorID,
			Members:         []entity.AgencyMember{{UserID: actorID, Role: AgencyRoleOwner, JoinedAt: uc.now()}},
			Portfolio:       []entity.MediaItem{},
			PrivacySettings: entity.DefaultPrivacySettings(),
		}
	} else {
		existing, err := uc.agencyRepo.GetByID(ctx, id)
		if err != nil {
			return nil, err
		}
		if !canManageAgency(existing, actorID) {
			return nil, errors.Forbidden("Only agency owners and admins can edit the agency", nil)
		}
		agency = existing
	}

	agency.Name = strings.TrimSpace(input.Name)
	agency.Handle = normalizeHandle(input.Handle)
	agency.Tagline = input.Tagline
	agency.Description = input.Description
	agency.LogoURL = input.LogoURL
	agency.Email = input.Email
	agency.Phone = input.Phone
	agency.Location = input.Location
	agency.Industries = normalizeSkills(input.Industries)
	agency.SocialLinks = input.SocialLinks
	agency.Services = make([]entity.AgencyService, 0, len(input.Services))
	for _, s := range input.Services {
		if s.ID == "" {
			s.ID = utils.NewID()
		}
		agency.Services = append(agency.Services, s)
	}
	if input.PrivacySettings != nil {
		agency.PrivacySettings = *input.PrivacySettings
	}
	agency.PrivacySettings = agency.PrivacySettings.WithDefaults()

	if err := uc.agencyRepo.Save(ctx, agency); err != nil {
		return nil, err
	}
	return agency, nil
}

func (uc *AgencyUseCase) AddAgencyMember(ctx context.Context, agencyID, actorID string, member entity.AgencyMember) (*entity.AgencyProfile, error) {
	if member.UserID == "" {
		return nil, errors.BadRequest("Member user id is required", nil)
	}
	if member.Role == "" {
		member.Role = AgencyRoleMember
	}
	if member.Role != AgencyRoleAdmin && member.Role != AgencyRoleMember {
		return nil, errors.BadRequest("Invalid member role", nil)
	}

	agency, err := uc.agencyRepo.GetByID(ctx, agencyID)
	if err != nil {
		return nil, err
	}
	if !canManageAgency(agency, actorID) {
		return nil, errors.Forbidden("Only agency owners and admins can add members", nil)
	}
	if agencyRole(agency, member.UserID) != "" {
		return nil, errors.Conflict("User is already a member of this agency")
	}

	member.JoinedAt = uc.now()
	agency.Members = append(append([]entity.AgencyMember(nil), agency.Members...), member)
	if err := uc.agencyRepo.Save(ctx, agency); err != nil {
		return nil, err
	}
	return agency, nil
}

// RemoveAgencyMember cannot remove the owner. Members may remove themselves.
func (uc *AgencyUseCase) RemoveAgencyMember(ctx context.Context, agencyID, actorID, memberID string) (*entity.AgencyProfile, error) {
	agency, err := uc.agencyRepo.GetByID(ctx, agencyID)
	if err != nil {
		return nil, err
	}
	if memberID == agency.OwnerID {
		return nil, errors.BadRequest("The agency owner cannot be removed", nil)
	}
	if actorID != memberID && !canManageAgency(agency, actorID) {
		return nil, errors.Forbidden("Only agency owners and admins can remove members", nil)
	}

	members, ok := removeByID(agency.Members, memberID, func(m entity.AgencyMember) string { return m.UserID })
	if !ok {
		return nil, errors.NotFound("Agency member", nil)
	}
	agency.Members = members
	if err := uc.agencyRepo.Save(ctx, agency); err != nil {
		return nil, err
	}
	return agency, nil
}

func (uc *AgencyUseCase) GetRecruiter(ctx context.Context, uid string) (*entity.RecruiterProfile, error) {
	recruiter, err := uc.recruiterRepo.GetByID(ctx, uid)
	if err != nil {
		return nil, err
	}
	recruiter.PrivacySettings = recruiter.PrivacySettings.WithDefaults()
	return recruiter, nil
}

func (uc *AgencyUseCase) GetPublicRecruiter(ctx context.Context, uid, viewerID string) (*entity.RecruiterProfile, error) {
	recruiter, err := uc.GetRecruiter(ctx, uid)
	if err != nil {
		return nil, err
	}
	return FilterRecruiter(recruiter, viewerID, viewerID == uid), nil
}

type RecruiterInput struct {
	DisplayName     string
	Company         string
	Bio             string
	Email           string
	Phone           string
	Location        string
	PhotoURL        string
	Specializations []string
	CommissionRate  float64
	SocialLinks     *entity.SocialLinks
	PrivacySettings *entity.PrivacySettings
}

// UpsertRecruiter writes the caller's own recruiter profile. Placement counts
// and stats are kept from the stored record.
func (uc *AgencyUseCase) UpsertRecruiter(ctx context.Context, uid string, input RecruiterInput) (*entity.RecruiterProfile, error) {
	if input.CommissionRate < 0 || input.CommissionRate > 1 {
		return nil, errors.BadRequest("Commission rate must be between 0 and 1", nil)
	}
	if input.PrivacySettings != nil && !input.PrivacySettings.Valid() {
		return nil, errors.BadRequest("Invalid privacy settings", nil)
	}

	recruiter, err := uc.recruiterRepo.GetByID(ctx, uid)
	if err != nil {
		if !errors.IsNotFound(err) {
			return nil, err
		}
		recruiter = &entity.RecruiterProfile{UID: uid, PrivacySettings: entity.DefaultPrivacySettings()}
	}

	recruiter.DisplayName = strings.TrimSpace(input.DisplayName)
	recruiter.Company = input.Company
	recruiter.Bio = input.Bio
	recruiter.Email = input.Email
	recruiter.Phone = input.Phone
	recruiter.Location = input.Location
	recruiter.PhotoURL = input.PhotoURL
	recruiter.Specializations = normalizeSkills(input.Specializations)
	recruiter.CommissionRate = input.CommissionRate
	recruiter.SocialLinks = input.SocialLinks
	if input.PrivacySettings != nil {
		recruiter.PrivacySettings = *input.PrivacySettings
	}
	recruiter.PrivacySettings = recruiter.PrivacySettings.WithDefaults()

	if err := uc.recruiterRepo.Save(ctx, recruiter); err != nil {
		return nil, err
	}
	return recruiter, nil
}

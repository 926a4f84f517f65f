package usecase

import (
	"connekt/internal/domain/entity"
)

// resolveProfile merges the two profile sources. Precedence per field:
//
//	bio, skills        extended record when non-empty, otherwise the account
//	everything else    extended record only
//
// Without an extended record a minimal profile is derived from the account
// (identity, bio, skills, phone, location, photo, createdAt). Neither source
// yields nil. Lists, privacy settings and section order are normalized to
// their defaults in both cases.
func resolveProfile(extended *entity.Profile, account *entity.Account) *entity.Profile {
	var profile *entity.Profile

	switch {
	case extended != nil:
		p := *extended
		profile = &p
		if account != nil {
			if profile.Bio == "" {
				profile.Bio = account.Bio
			}
			if len(profile.Skills) == 0 && len(account.Skills) > 0 {
				profile.Skills = append([]string(nil), account.Skills...)
			}
		}
	case account != nil:
		profile = &entity.Profile{
			UID:             account.UID,
			Username:        account.Username,
			DisplayName:     account.DisplayName,
			Email:           account.Email,
			Phone:           account.Phone,
			PhotoURL:        account.PhotoURL,
			Bio:             account.Bio,
			Location:        account.Location,
			Skills:          append([]string(nil), account.Skills...),
			Subscription:    entity.TierFree,
			PrivacySettings: entity.DefaultPrivacySettings(),
			CreatedAt:       account.CreatedAt,
		}
	default:
		return nil
	}

	normalizeProfile(profile)
	return profile
}

func normalizeProfile(p *entity.Profile) {
	if p.Skills == nil {
		p.Skills = []string{}
	}
	if p.Experience == nil {
		p.Experience = []entity.Experience{}
	}
	if p.Education == nil {
		p.Education = []entity.Education{}
	}
	if p.Portfolio == nil {
		p.Portfolio = []entity.MediaItem{}
	}
	if p.CustomSections == nil {
		p.CustomSections = []entity.CustomSection{}
	}
	if p.Projects == nil {
		p.Projects = []entity.ProfileProject{}
	}
	if p.Tasks == nil {
		p.Tasks = []entity.ProfileTask{}
	}
	if p.Referrals == nil {
		p.Referrals = []entity.Referral{}
	}
	if len(p.SectionOrder) == 0 {
		p.SectionOrder = entity.DefaultSectionOrder()
	}
	if p.Subscription == "" {
		p.Subscription = entity.TierFree
	}
	p.PrivacySettings = p.PrivacySettings.WithDefaults()
}

package usecase

import (
	"connekt/internal/domain/entity"
)

// CanView applies one visibility setting. Owners see everything; anyone else
// sees public groups, authenticated groups when signed in, and never private ones.
func CanView(visibility entity.Visibility, viewerID string, isOwner bool) bool {
	if isOwner {
		return true
	}
	switch visibility {
	case entity.VisibilityPublic:
		return true
	case entity.VisibilityAuthenticated:
		return viewerID != ""
	default:
		return false
	}
}

// FilterProfile returns a copy of p scoped to the viewer. Only the guarded
// groups in PrivacySettings are redacted; everything else passes through.
// The source profile is never modified.
func FilterProfile(p *entity.Profile, viewerID string, isOwner bool) *entity.Profile {
	if p == nil {
		return nil
	}

	out := cloneProfile(p)
	if isOwner {
		return out
	}

	settings := p.PrivacySettings.WithDefaults()
	visible := func(v entity.Visibility) bool {
		return CanView(v, viewerID, false)
	}

	if !visible(settings.Email) {
		out.Email = ""
	}
	if !visible(settings.Phone) {
		out.Phone = ""
	}
	if !visible(settings.Location) {
		out.Location = ""
	}
	if !visible(settings.Experience) {
		out.Experience = nil
	}
	if !visible(settings.Education) {
		out.Education = nil
	}
	if !visible(settings.Projects) {
		out.Projects = nil
	}
	if !visible(settings.Tasks) {
		out.Tasks = nil
	}
	if !visible(settings.Ratings) {
		out.Ratings = nil
	}
	if !visible(settings.Referrals) {
		out.Referrals = nil
	}
	if !visible(settings.SocialLinks) {
		out.SocialLinks = nil
	}

	return out
}

func cloneSlice[T any](s []T) []T {
	if s == nil {
		return nil
	}
	return append(make([]T, 0, len(s)), s...)
}

func cloneProfile(p *entity.Profile) *entity.Profile {
	out := *p
	out.Skills = cloneSlice(p.Skills)
	out.Experience = cloneSlice(p.Experience)
	out.Education = cloneSlice(p.Education)
	out.Portfolio = cloneSlice(p.Portfolio)
	out.CustomSections = cloneSlice(p.CustomSections)
	out.SectionOrder = cloneSlice(p.SectionOrder)
	out.Projects = cloneSlice(p.Projects)
	out.Tasks = cloneSlice(p.Tasks)
	out.Referrals = cloneSlice(p.Referrals)
	out.Ratings = cloneSlice(p.Ratings)
	if p.SocialLinks != nil {
		links := *p.SocialLinks
		out.SocialLinks = &links
	}
	return &out
}

// FilterAgency redacts the contact groups of an agency profile.
func FilterAgency(a *entity.AgencyProfile, viewerID string, isOwner bool) *entity.AgencyProfile {
	if a == nil {
		return nil
	}

	out := *a
	out.Members = cloneSlice(a.Members)
	out.Services = cloneSlice(a.Services)
	out.Portfolio = cloneSlice(a.Portfolio)
	out.Industries = cloneSlice(a.Industries)
	if a.SocialLinks != nil {
		links := *a.SocialLinks
		out.SocialLinks = &links
	}
	if isOwner {
		return &out
	}

	settings := a.PrivacySettings.WithDefaults()
	if !CanView(settings.Email, viewerID, false) {
		out.Email = ""
	}
	if !CanView(settings.Phone, viewerID, false) {
		out.Phone = ""
	}
	if !CanView(settings.Location, viewerID, false) {
		out.Location = ""
	}
	if !CanView(settings.SocialLinks, viewerID, false) {
		out.SocialLinks = nil
	}
	return &out
}

// FilterRecruiter redacts the contact groups of a recruiter profile.
func FilterRecruiter(r *entity.RecruiterProfile, viewerID string, isOwner bool) *entity.RecruiterProfile {
	if r == nil {
		return nil
	}

	out := *r
	out.Specializations = cloneSlice(r.Specializations)
	if r.SocialLinks != nil {
		links := *r.SocialLinks
		out.SocialLinks = &links
	}
	if isOwner {
		return &out
	}

	settings := r.PrivacySettings.WithDefaults()
	if !CanView(settings.Email, viewerID, false) {
		out.Email = ""
	}
	if !CanView(settings.Phone, viewerID, false) {
		out.Phone = ""
	}
	if !CanView(settings.Location, viewerID, false) {
		out.Location = ""
	}
	if !CanView(settings.SocialLinks, viewerID, false) {
		out.SocialLinks = nil
	}
	return &out
}

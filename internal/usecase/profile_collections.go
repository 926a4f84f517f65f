package usecase

import (
	"context"

	"connekt/internal/domain/entity"
)

func indexByID[T any](items []T, id string, idOf func(T) string) int {
	for i, item := range items {
		if idOf(item) == id {
			return i
		}
	}
	return -1
}

// removeByID returns a copy of items without the entry matching id.
func removeByID[T any](items []T, id string, idOf func(T) string) ([]T, bool) {
	i := indexByID(items, id, idOf)
	if i < 0 {
		return items, false
	}
	out := make([]T, 0, len(items)-1)
	out = append(out, items[:i]...)
	return append(out, items[i+1:]...), true
}

// replaceByID returns a copy of items with the entry matching id replaced.
func replaceByID[T any](items []T, id string, idOf func(T) string, replacement T) ([]T, bool) {
	i := indexByID(items, id, idOf)
	if i < 0 {
		return items, false
	}
	out := append([]T(nil), items...)
	out[i] = replacement
	return out, true
}

func experienceID(e entity.Experience) string         { return e.ID }
func educationID(e entity.Education) string           { return e.ID }
func sectionID(s entity.CustomSection) string         { return s.ID }
func referralID(r entity.Referral) string             { return r.ID }
func mediaID(m entity.MediaItem) string               { return m.ID }
func orderSectionID(o entity.SectionOrderItem) string { return o.SectionID }

func validExperience(e *entity.Experience) bool {
	if e.Title == "" || e.Company == "" || e.StartDate.IsZero() {
		return false
	}
	if e.Current {
		// current entries have no end date to compare against
		e.EndDate = nil
		return true
	}
	return e.EndDate == nil || !e.EndDate.Before(e.StartDate)
}

func validEducation(e *entity.Education) bool {
	if e.School == "" || e.StartDate.IsZero() {
		return false
	}
	if e.Current {
		e.EndDate = nil
		return true
	}
	return e.EndDate == nil || !e.EndDate.Before(e.StartDate)
}

func (uc *ProfileUseCase) AddExperience(ctx context.Context, uid string, exp entity.Experience) *entity.Experience {
	if !validExperience(&exp) {
		return nil
	}
	profile := uc.loadForWrite(ctx, uid)
	if profile == nil {
		return nil
	}

	exp.ID = uc.newID()
	list := append(append([]entity.Experience(nil), profile.Experience...), exp)
	if !uc.merge(ctx, uid, "add experience", map[string]interface{}{"experience": list}) {
		return nil
	}
	return &exp
}

// UpdateExperience replaces the entry with the same id. False when absent.
func (uc *ProfileUseCase) UpdateExperience(ctx context.Context, uid string, exp entity.Experience) bool {
	if exp.ID == "" || !validExperience(&exp) {
		return false
	}
	profile := uc.loadForWrite(ctx, uid)
	if profile == nil {
		return false
	}

	list, ok := replaceByID(profile.Experience, exp.ID, experienceID, exp)
	if !ok {
		return false
	}
	return uc.merge(ctx, uid, "update experience", map[string]interface{}{"experience": list})
}

// DeleteExperience returns false and writes nothing when id is unknown.
func (uc *ProfileUseCase) DeleteExperience(ctx context.Context, uid, id string) bool {
	profile := uc.loadForWrite(ctx, uid)
	if profile == nil {
		return false
	}

	list, ok := removeByID(profile.Experience, id, experienceID)
	if !ok {
		return false
	}
	return uc.merge(ctx, uid, "delete experience", map[string]interface{}{"experience": list})
}

func (uc *ProfileUseCase) AddEducation(ctx context.Context, uid string, edu entity.Education) *entity.Education {
	if !validEducation(&edu) {
		return nil
	}
	profile := uc.loadForWrite(ctx, uid)
	if profile == nil {
		return nil
	}

	edu.ID = uc.newID()
	list := append(append([]entity.Education(nil), profile.Education...), edu)
	if !uc.merge(ctx, uid, "add education", map[string]interface{}{"education": list}) {
		return nil
	}
	return &edu
}

func (uc *ProfileUseCase) UpdateEducation(ctx context.Context, uid string, edu entity.Education) bool {
	if edu.ID == "" || !validEducation(&edu) {
		return false
	}
	profile := uc.loadForWrite(ctx, uid)
	if profile == nil {
		return false
	}

	list, ok := replaceByID(profile.Education, edu.ID, educationID, edu)
	if !ok {
		return false
	}
	return uc.merge(ctx, uid, "update education", map[string]interface{}{"education": list})
}

func (uc *ProfileUseCase) DeleteEducation(ctx context.Context, uid, id string) bool {
	profile := uc.loadForWrite(ctx, uid)
	if profile == nil {
		return false
	}

	list, ok := removeByID(profile.Education, id, educationID)
	if !ok {
		return false
	}
	return uc.merge(ctx, uid, "delete education", map[string]interface{}{"education": list})
}

// AddCustomSection appends the section and a matching entry at the end of the
// section order.
func (uc *ProfileUseCase) AddCustomSection(ctx context.Context, uid string, section entity.CustomSection) *entity.CustomSection {
	if !section.Type.IsCustom() || section.Content.Kind() != section.Type {
		return nil
	}
	profile := uc.loadForWrite(ctx, uid)
	if profile == nil {
		return nil
	}

	now := uc.now()
	section.ID = uc.newID()
	section.CreatedAt = now
	section.UpdatedAt = now

	sections := append(append([]entity.CustomSection(nil), profile.CustomSections...), section)
	order := append(append([]entity.SectionOrderItem(nil), profile.SectionOrder...), entity.SectionOrderItem{
		SectionID: section.ID,
		Type:      section.Type,
		Position:  len(profile.SectionOrder),
		Visible:   section.Visible,
	})

	if !uc.merge(ctx, uid, "add custom section", map[string]interface{}{
		"customSections": sections,
		"sectionOrder":   order,
	}) {
		return nil
	}
	return &section
}

// UpdateCustomSection changes title, visibility and payload. The type is fixed
// at creation; visibility is mirrored into the order entry.
func (uc *ProfileUseCase) UpdateCustomSection(ctx context.Context, uid string, section entity.CustomSection) bool {
	profile := uc.loadForWrite(ctx, uid)
	if profile == nil {
		return false
	}

	i := indexByID(profile.CustomSections, section.ID, sectionID)
	if i < 0 {
		return false
	}
	existing := profile.CustomSections[i]
	if section.Content.Kind() != existing.Type {
		return false
	}

	existing.Title = section.Title
	existing.Visible = section.Visible
	existing.Content = section.Content
	existing.UpdatedAt = uc.now()
	sections, _ := replaceByID(profile.CustomSections, section.ID, sectionID, existing)

	order := append([]entity.SectionOrderItem(nil), profile.SectionOrder...)
	if j := indexByID(order, section.ID, orderSectionID); j >= 0 {
		order[j].Visible = section.Visible
	}

	return uc.merge(ctx, uid, "update custom section", map[string]interface{}{
		"customSections": sections,
		"sectionOrder":   order,
	})
}

// DeleteCustomSection removes the section and its order entry.
func (uc *ProfileUseCase) DeleteCustomSection(ctx context.Context, uid, id string) bool {
	profile := uc.loadForWrite(ctx, uid)
	if profile == nil {
		return false
	}

	sections, ok := removeByID(profile.CustomSections, id, sectionID)
	if !ok {
		return false
	}
	order, _ := removeByID(profile.SectionOrder, id, orderSectionID)
	renumber(order)

	return uc.merge(ctx, uid, "delete custom section", map[string]interface{}{
		"customSections": sections,
		"sectionOrder":   order,
	})
}

// UpdateSectionOrder replaces the layout order. Built-in entries must name a
// built-in type, custom entries an existing section, and ids must be unique.
// Positions are renumbered to follow the given order.
func (uc *ProfileUseCase) UpdateSectionOrder(ctx context.Context, uid string, order []entity.SectionOrderItem) bool {
	profile := uc.loadForWrite(ctx, uid)
	if profile == nil {
		return false
	}

	seen := make(map[string]bool, len(order))
	for _, item := range order {
		if item.SectionID == "" || seen[item.SectionID] {
			return false
		}
		seen[item.SectionID] = true

		switch {
		case item.Type.IsBuiltin():
			if item.SectionID != string(item.Type) {
				return false
			}
		case item.Type.IsCustom():
			if indexByID(profile.CustomSections, item.SectionID, sectionID) < 0 {
				return false
			}
		default:
			return false
		}
	}

	next := append([]entity.SectionOrderItem(nil), order...)
	renumber(next)
	return uc.merge(ctx, uid, "update section order", map[string]interface{}{"sectionOrder": next})
}

func renumber(order []entity.SectionOrderItem) {
	for i := range order {
		order[i].Position = i
	}
}

// AddReferral stores a referral on toUID with a snapshot of the referrer.
func (uc *ProfileUseCase) AddReferral(ctx context.Context, toUID, fromUID, relationship, content string) *entity.Referral {
	if toUID == "" || fromUID == "" || toUID == fromUID || content == "" {
		return nil
	}
	from := uc.GetProfile(ctx, fromUID)
	if from == nil {
		return nil
	}
	profile := uc.loadForWrite(ctx, toUID)
	if profile == nil {
		return nil
	}

	referral := entity.Referral{
		ID:           uc.newID(),
		FromUserID:   fromUID,
		FromUserName: displayName(from),
		FromPhotoURL: from.PhotoURL,
		Relationship: relationship,
		Content:      content,
		CreatedAt:    uc.now(),
	}
	list := append(append([]entity.Referral(nil), profile.Referrals...), referral)
	if !uc.merge(ctx, toUID, "add referral", map[string]interface{}{"referrals": list}) {
		return nil
	}
	return &referral
}

func (uc *ProfileUseCase) DeleteReferral(ctx context.Context, uid, id string) bool {
	profile := uc.loadForWrite(ctx, uid)
	if profile == nil {
		return false
	}

	list, ok := removeByID(profile.Referrals, id, referralID)
	if !ok {
		return false
	}
	return uc.merge(ctx, uid, "delete referral", map[string]interface{}{"referrals": list})
}

// AddPortfolioItem appends an already-stored media item to the portfolio.
func (uc *ProfileUseCase) AddPortfolioItem(ctx context.Context, uid string, item entity.MediaItem) bool {
	profile := uc.loadForWrite(ctx, uid)
	if profile == nil {
		return false
	}

	if item.ID == "" {
		item.ID = uc.newID()
	}
	list := append(append([]entity.MediaItem(nil), profile.Portfolio...), item)
	return uc.merge(ctx, uid, "add portfolio item", map[string]interface{}{"portfolio": list})
}

// RemovePortfolioItem drops the entry and returns it so the blob can be deleted.
func (uc *ProfileUseCase) RemovePortfolioItem(ctx context.Context, uid, id string) *entity.MediaItem {
	profile := uc.loadForWrite(ctx, uid)
	if profile == nil {
		return nil
	}

	i := indexByID(profile.Portfolio, id, mediaID)
	if i < 0 {
		return nil
	}
	removed := profile.Portfolio[i]
	list, _ := removeByID(profile.Portfolio, id, mediaID)
	if !uc.merge(ctx, uid, "remove portfolio item", map[string]interface{}{"portfolio": list}) {
		return nil
	}
	return &removed
}

// ReorderPortfolio rearranges the portfolio; ids must be a permutation of the
// current item ids.
func (uc *ProfileUseCase) ReorderPortfolio(ctx context.Context, uid string, ids []string) bool {
	profile := uc.loadForWrite(ctx, uid)
	if profile == nil || len(ids) != len(profile.Portfolio) {
		return false
	}

	list := make([]entity.MediaItem, 0, len(ids))
	used := make(map[string]bool, len(ids))
	for _, id := range ids {
		i := indexByID(profile.Portfolio, id, mediaID)
		if i < 0 || used[id] {
			return false
		}
		used[id] = true
		list = append(list, profile.Portfolio[i])
	}
	return uc.merge(ctx, uid, "reorder portfolio", map[string]interface{}{"portfolio": list})
}

func displayName(p *entity.Profile) string {
	if p.DisplayName != "" {
		return p.DisplayName
	}
	if p.Username != "" {
		return p.Username
	}
	return "Connekt member"
}

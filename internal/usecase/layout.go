package usecase

import (
	"context"

	"connekt/internal/domain/entity"
)

// SectionRenderer produces the block payload for one section of a profile.
// section is nil for built-in kinds. ok=false drops the block, e.g. when the
// viewer may not see the underlying field group.
type SectionRenderer func(p *entity.Profile, section *entity.CustomSection) (data interface{}, ok bool)

// LayoutRenderer dispatches each section-order entry to the renderer
// registered for its type.
type LayoutRenderer struct {
	renderers map[entity.SectionType]SectionRenderer
}

func NewLayoutRenderer() *LayoutRenderer {
	r := &LayoutRenderer{renderers: map[entity.SectionType]SectionRenderer{}}

	r.Register(entity.SectionAbout, func(p *entity.Profile, _ *entity.CustomSection) (interface{}, bool) {
		return map[string]string{"bio": p.Bio, "title": p.Title}, true
	})
	r.Register(entity.SectionSkills, func(p *entity.Profile, _ *entity.CustomSection) (interface{}, bool) {
		return p.Skills, true
	})
	r.Register(entity.SectionExperience, func(p *entity.Profile, _ *entity.CustomSection) (interface{}, bool) {
		return p.Experience, p.Experience != nil
	})
	r.Register(entity.SectionEducation, func(p *entity.Profile, _ *entity.CustomSection) (interface{}, bool) {
		return p.Education, p.Education != nil
	})
	r.Register(entity.SectionPortfolio, func(p *entity.Profile, _ *entity.CustomSection) (interface{}, bool) {
		return p.Portfolio, true
	})

	custom := func(payload func(c entity.SectionContent) interface{}) SectionRenderer {
		return func(_ *entity.Profile, s *entity.CustomSection) (interface{}, bool) {
			if s == nil || !s.Visible {
				return nil, false
			}
			return payload(s.Content), true
		}
	}
	r.Register(entity.SectionText, custom(func(c entity.SectionContent) interface{} { return c.Text }))
	r.Register(entity.SectionMedia, custom(func(c entity.SectionContent) interface{} { return c.Media }))
	r.Register(entity.SectionLinks, custom(func(c entity.SectionContent) interface{} { return c.Links }))
	r.Register(entity.SectionAchievements, custom(func(c entity.SectionContent) interface{} { return c.Achievements }))
	r.Register(entity.SectionTestimonials, custom(func(c entity.SectionContent) interface{} { return c.Testimonials }))
	r.Register(entity.SectionTimeline, custom(func(c entity.SectionContent) interface{} { return c.Timeline }))
	r.Register(entity.SectionStats, custom(func(c entity.SectionContent) interface{} { return c.Stats }))

	return r
}

// Register replaces the renderer for kind.
func (r *LayoutRenderer) Register(kind entity.SectionType, render SectionRenderer) {
	r.renderers[kind] = render
}

// BuildLayout walks the section order of an already filtered profile.
// Hidden entries, kinds without a renderer and custom entries whose section
// no longer exists are skipped.
func (r *LayoutRenderer) BuildLayout(p *entity.Profile) *entity.ProfileLayout {
	if p == nil {
		return nil
	}

	layout := &entity.ProfileLayout{UID: p.UID, Blocks: []entity.LayoutBlock{}}
	for _, item := range p.SectionOrder {
		if !item.Visible {
			continue
		}
		render, ok := r.renderers[item.Type]
		if !ok {
			continue
		}

		var section *entity.CustomSection
		title := ""
		if item.Type.IsCustom() {
			i := indexByID(p.CustomSections, item.SectionID, sectionID)
			if i < 0 || p.CustomSections[i].Type != item.Type {
				continue
			}
			section = &p.CustomSections[i]
			title = section.Title
		}

		data, ok := render(p, section)
		if !ok {
			continue
		}
		layout.Blocks = append(layout.Blocks, entity.LayoutBlock{
			SectionID: item.SectionID,
			Type:      item.Type,
			Title:     title,
			Position:  len(layout.Blocks),
			Data:      data,
		})
	}
	return layout
}

type publicProfileReader interface {
	GetPublicProfile(ctx context.Context, uid, viewerID string) *entity.Profile
}

type LayoutUseCase struct {
	profiles publicProfileReader
	renderer *LayoutRenderer
}

func NewLayoutUseCase(profiles publicProfileReader, renderer *LayoutRenderer) *LayoutUseCase {
	return &LayoutUseCase{profiles: profiles, renderer: renderer}
}

// GetLayout renders the viewer's projection of uid's profile.
func (uc *LayoutUseCase) GetLayout(ctx context.Context, uid, viewerID string) *entity.ProfileLayout {
	return uc.renderer.BuildLayout(uc.profiles.GetPublicProfile(ctx, uid, viewerID))
}

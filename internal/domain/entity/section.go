package entity

import (
	"time"
)

type SectionType string

// Built-in section kinds rendered from fields of the profile itself.
const (
	SectionAbout      SectionType = "about"
	SectionSkills     SectionType = "skills"
	SectionExperience SectionType = "experience"
	SectionEducation  SectionType = "education"
	SectionPortfolio  SectionType = "portfolio"
)

// Custom section kinds; the payload lives in CustomSection.Content.
const (
	SectionText         SectionType = "text"
	SectionMedia        SectionType = "media"
	SectionLinks        SectionType = "links"
	SectionAchievements SectionType = "achievements"
	SectionTestimonials SectionType = "testimonials"
	SectionTimeline     SectionType = "timeline"
	SectionStats        SectionType = "stats"
)

func (t SectionType) IsBuiltin() bool {
	switch t {
	case SectionAbout, SectionSkills, SectionExperience, SectionEducation, SectionPortfolio:
		return true
	}
	return false
}

func (t SectionType) IsCustom() bool {
	switch t {
	case SectionText, SectionMedia, SectionLinks, SectionAchievements,
		SectionTestimonials, SectionTimeline, SectionStats:
		return true
	}
	return false
}

// CustomSection is a tagged variant: Type selects which pointer in Content is set.
type CustomSection struct {
	ID        string         `json:"id" firestore:"id"`
	Type      SectionType    `json:"type" firestore:"type"`
	Title     string         `json:"title" firestore:"title"`
	Visible   bool           `json:"visible" firestore:"visible"`
	Content   SectionContent `json:"content" firestore:"content"`
	CreatedAt time.Time      `json:"createdAt" firestore:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt" firestore:"updatedAt"`
}

type SectionContent struct {
	Text         *TextContent         `json:"text,omitempty" firestore:"text,omitempty"`
	Media        *MediaContent        `json:"media,omitempty" firestore:"media,omitempty"`
	Links        *LinksContent        `json:"links,omitempty" firestore:"links,omitempty"`
	Achievements *AchievementsContent `json:"achievements,omitempty" firestore:"achievements,omitempty"`
	Testimonials *TestimonialsContent `json:"testimonials,omitempty" firestore:"testimonials,omitempty"`
	Timeline     *TimelineContent     `json:"timeline,omitempty" firestore:"timeline,omitempty"`
	Stats        *StatsContent        `json:"stats,omitempty" firestore:"stats,omitempty"`
}

// Kind returns the section type the payload carries, or "" when zero or
// more than one variant is set.
func (c SectionContent) Kind() SectionType {
	var kind SectionType
	n := 0
	set := func(ok bool, t SectionType) {
		if ok {
			kind = t
			n++
		}
	}
	set(c.Text != nil, SectionText)
	set(c.Media != nil, SectionMedia)
	set(c.Links != nil, SectionLinks)
	set(c.Achievements != nil, SectionAchievements)
	set(c.Testimonials != nil, SectionTestimonials)
	set(c.Timeline != nil, SectionTimeline)
	set(c.Stats != nil, SectionStats)
	if n != 1 {
		return ""
	}
	return kind
}

type TextContent struct {
	Body string `json:"body" firestore:"body"`
}

type MediaContent struct {
	Items []MediaItem `json:"items" firestore:"items"`
}

type LinksContent struct {
	Links []LinkItem `json:"links" firestore:"links"`
}

type LinkItem struct {
	Label string `json:"label" firestore:"label"`
	URL   string `json:"url" firestore:"url"`
}

type AchievementsContent struct {
	Items []Achievement `json:"items" firestore:"items"`
}

type Achievement struct {
	Title       string     `json:"title" firestore:"title"`
	Issuer      string     `json:"issuer,omitempty" firestore:"issuer"`
	Description string     `json:"description,omitempty" firestore:"description"`
	Date        *time.Time `json:"date,omitempty" firestore:"date"`
}

type TestimonialsContent struct {
	Items []Testimonial `json:"items" firestore:"items"`
}

type Testimonial struct {
	Author   string `json:"author" firestore:"author"`
	Role     string `json:"role,omitempty" firestore:"role"`
	Quote    string `json:"quote" firestore:"quote"`
	PhotoURL string `json:"photoURL,omitempty" firestore:"photoURL"`
}

type TimelineContent struct {
	Events []TimelineEvent `json:"events" firestore:"events"`
}

type TimelineEvent struct {
	Title       string    `json:"title" firestore:"title"`
	Description string    `json:"description,omitempty" firestore:"description"`
	Date        time.Time `json:"date" firestore:"date"`
}

type StatsContent struct {
	Items []StatItem `json:"items" firestore:"items"`
}

type StatItem struct {
	Label string `json:"label" firestore:"label"`
	Value string `json:"value" firestore:"value"`
}

// SectionOrderItem places one section in the rendered layout. For built-in
// sections SectionID equals the section type.
type SectionOrderItem struct {
	SectionID string      `json:"sectionId" firestore:"sectionId"`
	Type      SectionType `json:"type" firestore:"type"`
	Position  int         `json:"position" firestore:"position"`
	Visible   bool        `json:"visible" firestore:"visible"`
}

func DefaultSectionOrder() []SectionOrderItem {
	kinds := []SectionType{SectionAbout, SectionSkills, SectionExperience, SectionEducation, SectionPortfolio}
	order := make([]SectionOrderItem, len(kinds))
	for i, k := range kinds {
		order[i] = SectionOrderItem{SectionID: string(k), Type: k, Position: i, Visible: true}
	}
	return order
}

// LayoutBlock is one rendered section of a profile page.
type LayoutBlock struct {
	SectionID string      `json:"sectionId"`
	Type      SectionType `json:"type"`
	Title     string      `json:"title,omitempty"`
	Position  int         `json:"position"`
	Data      interface{} `json:"data"`
}

type ProfileLayout struct {
	UID    string        `json:"uid"`
	Blocks []LayoutBlock `json:"blocks"`
}

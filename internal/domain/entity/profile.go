package entity

import (
	"time"
)

// Profile is the extended profile record stored in profiles/{uid}.
type Profile struct {
	UID           string `json:"uid" firestore:"uid"`
	Username      string `json:"username" firestore:"username"`
	DisplayName   string `json:"displayName" firestore:"displayName"`
	Email         string `json:"email,omitempty" firestore:"email"`
	Phone         string `json:"phone,omitempty" firestore:"phone"`
	PhotoURL      string `json:"photoURL,omitempty" firestore:"photoURL"`
	CoverPhotoURL string `json:"coverPhotoURL,omitempty" firestore:"coverPhotoURL"`

	Bio      string   `json:"bio" firestore:"bio"`
	Title    string   `json:"title" firestore:"title"`
	Location string   `json:"location,omitempty" firestore:"location"`
	Skills   []string `json:"skills" firestore:"skills"`

	// Search facets
	Availability    string  `json:"availability,omitempty" firestore:"availability"` // "available", "busy", "unavailable"
	HourlyRate      float64 `json:"hourlyRate,omitempty" firestore:"hourlyRate"`
	YearsExperience int     `json:"yearsExperience,omitempty" firestore:"yearsExperience"`

	Subscription SubscriptionTier `json:"subscription" firestore:"subscription"`

	Experience     []Experience       `json:"experience" firestore:"experience"`
	Education      []Education        `json:"education" firestore:"education"`
	Portfolio      []MediaItem        `json:"portfolio" firestore:"portfolio"`
	CustomSections []CustomSection    `json:"customSections" firestore:"customSections"`
	SectionOrder   []SectionOrderItem `json:"sectionOrder" firestore:"sectionOrder"`
	Projects       []ProfileProject   `json:"projects" firestore:"projects"`
	Tasks          []ProfileTask      `json:"tasks" firestore:"tasks"`
	Referrals      []Referral         `json:"referrals" firestore:"referrals"`
	SocialLinks    *SocialLinks       `json:"socialLinks,omitempty" firestore:"socialLinks"`

	PrivacySettings PrivacySettings `json:"privacySettings" firestore:"privacySettings"`
	Stats           ProfileStats    `json:"stats" firestore:"stats"`

	// Ratings is attached at read time from the ratings sub-collection.
	Ratings []Rating `json:"ratings,omitempty" firestore:"-"`

	CreatedAt time.Time `json:"createdAt" firestore:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt" firestore:"updatedAt"`
}

type SubscriptionTier string

const (
	TierFree    SubscriptionTier = "free"
	TierPro     SubscriptionTier = "pro"
	TierProPlus SubscriptionTier = "pro_plus"
)

// Includes reports whether t grants at least the features of required.
func (t SubscriptionTier) Includes(required SubscriptionTier) bool {
	rank := map[SubscriptionTier]int{TierFree: 0, TierPro: 1, TierProPlus: 2}
	return rank[t] >= rank[required]
}

type Experience struct {
	ID          string     `json:"id" firestore:"id"`
	Title       string     `json:"title" firestore:"title"`
	Company     string     `json:"company" firestore:"company"`
	Location    string     `json:"location,omitempty" firestore:"location"`
	Description string     `json:"description,omitempty" firestore:"description"`
	Skills      []string   `json:"skills,omitempty" firestore:"skills"`
	StartDate   time.Time  `json:"startDate" firestore:"startDate"`
	EndDate     *time.Time `json:"endDate,omitempty" firestore:"endDate"`
	Current     bool       `json:"current" firestore:"current"`
}

type Education struct {
	ID           string     `json:"id" firestore:"id"`
	School       string     `json:"school" firestore:"school"`
	Degree       string     `json:"degree" firestore:"degree"`
	FieldOfStudy string     `json:"fieldOfStudy,omitempty" firestore:"fieldOfStudy"`
	Grade        string     `json:"grade,omitempty" firestore:"grade"`
	Description  string     `json:"description,omitempty" firestore:"description"`
	StartDate    time.Time  `json:"startDate" firestore:"startDate"`
	EndDate      *time.Time `json:"endDate,omitempty" firestore:"endDate"`
	Current      bool       `json:"current" firestore:"current"`
}

type MediaItem struct {
	ID           string    `json:"id" firestore:"id"`
	Type         string    `json:"type" firestore:"type"` // "image", "video", "document", "link"
	URL          string    `json:"url" firestore:"url"`
	StoragePath  string    `json:"storagePath,omitempty" firestore:"storagePath"`
	ThumbnailURL string    `json:"thumbnailURL,omitempty" firestore:"thumbnailURL"`
	Title        string    `json:"title,omitempty" firestore:"title"`
	Description  string    `json:"description,omitempty" firestore:"description"`
	ContentType  string    `json:"contentType,omitempty" firestore:"contentType"`
	Size         int64     `json:"size,omitempty" firestore:"size"`
	CreatedAt    time.Time `json:"createdAt" firestore:"createdAt"`
}

type SocialLinks struct {
	Website   string `json:"website,omitempty" firestore:"website"`
	LinkedIn  string `json:"linkedin,omitempty" firestore:"linkedin"`
	GitHub    string `json:"github,omitempty" firestore:"github"`
	Twitter   string `json:"twitter,omitempty" firestore:"twitter"`
	Instagram string `json:"instagram,omitempty" firestore:"instagram"`
	Dribbble  string `json:"dribbble,omitempty" firestore:"dribbble"`
}

// ProfileProject is a showcase entry linking the profile to a project.
type ProfileProject struct {
	ID     string `json:"id" firestore:"id"`
	Name   string `json:"name" firestore:"name"`
	Role   string `json:"role,omitempty" firestore:"role"`
	Status string `json:"status,omitempty" firestore:"status"`
}

type ProfileTask struct {
	ID        string `json:"id" firestore:"id"`
	Title     string `json:"title" firestore:"title"`
	ProjectID string `json:"projectId,omitempty" firestore:"projectId"`
	Status    string `json:"status,omitempty" firestore:"status"`
}

type Referral struct {
	ID           string    `json:"id" firestore:"id"`
	FromUserID   string    `json:"fromUserId" firestore:"fromUserId"`
	FromUserName string    `json:"fromUserName" firestore:"fromUserName"`
	FromPhotoURL string    `json:"fromPhotoURL,omitempty" firestore:"fromPhotoURL"`
	Relationship string    `json:"relationship,omitempty" firestore:"relationship"`
	Content      string    `json:"content" firestore:"content"`
	CreatedAt    time.Time `json:"createdAt" firestore:"createdAt"`
}

// ProfileStats are denormalized counters. AverageRating and TotalRatings are a
// cache over the ratings sub-collection.
type ProfileStats struct {
	ProfileViews      int     `json:"profileViews" firestore:"profileViews"`
	Followers         int     `json:"followers" firestore:"followers"`
	Following         int     `json:"following" firestore:"following"`
	ProjectsCompleted int     `json:"projectsCompleted" firestore:"projectsCompleted"`
	TasksCompleted    int     `json:"tasksCompleted" firestore:"tasksCompleted"`
	AverageRating     float64 `json:"averageRating" firestore:"averageRating"`
	TotalRatings      int     `json:"totalRatings" firestore:"totalRatings"`
	ResponseRate      float64 `json:"responseRate" firestore:"responseRate"`
	TimeOnPlatform    int     `json:"timeOnPlatform" firestore:"timeOnPlatform"` // days
}

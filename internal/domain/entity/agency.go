package entity

import (
	"time"
)

type AgencyProfile struct {
	ID          string   `json:"id" firestore:"id"`
	OwnerID     string   `json:"ownerId" firestore:"ownerId"`
	Name        string   `json:"name" firestore:"name"`
	Handle      string   `json:"handle" firestore:"handle"`
	Tagline     string   `json:"tagline,omitempty" firestore:"tagline"`
	Description string   `json:"description,omitempty" firestore:"description"`
	LogoURL     string   `json:"logoURL,omitempty" firestore:"logoURL"`
	Email       string   `json:"email,omitempty" firestore:"email"`
	Phone       string   `json:"phone,omitempty" firestore:"phone"`
	Location    string   `json:"location,omitempty" firestore:"location"`
	Industries  []string `json:"industries,omitempty" firestore:"industries"`

	Members   []AgencyMember  `json:"members" firestore:"members"`
	Services  []AgencyService `json:"services" firestore:"services"`
	Portfolio []MediaItem     `json:"portfolio" firestore:"portfolio"`

	SocialLinks     *SocialLinks    `json:"socialLinks,omitempty" firestore:"socialLinks"`
	PrivacySettings PrivacySettings `json:"privacySettings" firestore:"privacySettings"`
	Stats           ProfileStats    `json:"stats" firestore:"stats"`

	CreatedAt time.Time `json:"createdAt" firestore:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt" firestore:"updatedAt"`
}

type AgencyMember struct {
	UserID   string    `json:"userId" firestore:"userId"`
	Role     string    `json:"role" firestore:"role"` // "owner", "admin", "member"
	Title    string    `json:"title,omitempty" firestore:"title"`
	JoinedAt time.Time `json:"joinedAt" firestore:"joinedAt"`
}

type AgencyService struct {
	ID          string   `json:"id" firestore:"id"`
	Name        string   `json:"name" firestore:"name"`
	Description string   `json:"description,omitempty" firestore:"description"`
	PriceFrom   float64  `json:"priceFrom,omitempty" firestore:"priceFrom"`
	Skills      []string `json:"skills,omitempty" firestore:"skills"`
}

type RecruiterProfile struct {
	UID                 string   `json:"uid" firestore:"uid"`
	DisplayName         string   `json:"displayName" firestore:"displayName"`
	Company             string   `json:"company,omitempty" firestore:"company"`
	Bio                 string   `json:"bio,omitempty" firestore:"bio"`
	Email               string   `json:"email,omitempty" firestore:"email"`
	Phone               string   `json:"phone,omitempty" firestore:"phone"`
	Location            string   `json:"location,omitempty" firestore:"location"`
	PhotoURL            string   `json:"photoURL,omitempty" firestore:"photoURL"`
	Specializations     []string `json:"specializations" firestore:"specializations"`
	PlacementsCount     int      `json:"placementsCount" firestore:"placementsCount"`
	AverageResponseTime float64  `json:"averageResponseTime" firestore:"averageResponseTime"` // hours
	CommissionRate      float64  `json:"commissionRate,omitempty" firestore:"commissionRate"`

	SocialLinks     *SocialLinks    `json:"socialLinks,omitempty" firestore:"socialLinks"`
	PrivacySettings PrivacySettings `json:"privacySettings" firestore:"privacySettings"`
	Stats           ProfileStats    `json:"stats" firestore:"stats"`

	CreatedAt time.Time `json:"createdAt" firestore:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt" firestore:"updatedAt"`
}

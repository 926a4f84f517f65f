package entity

import (
	"time"
)

// Account is the basic record in users/{uid} created at sign-up. It is the
// fallback source when the extended profile is missing or incomplete.
type Account struct {
	UID         string    `json:"uid" firestore:"uid"`
	Email       string    `json:"email" firestore:"email"`
	Username    string    `json:"username" firestore:"username"`
	DisplayName string    `json:"displayName" firestore:"displayName"`
	PhotoURL    string    `json:"photoURL,omitempty" firestore:"photoURL"`
	Phone       string    `json:"phone,omitempty" firestore:"phone"`
	Bio         string    `json:"bio,omitempty" firestore:"bio"`
	Skills      []string  `json:"skills,omitempty" firestore:"skills"`
	Location    string    `json:"location,omitempty" firestore:"location"`
	CreatedAt   time.Time `json:"createdAt" firestore:"createdAt"`
}

// HandleMapping lives in usernames/{handle}.
type HandleMapping struct {
	Handle    string    `json:"handle" firestore:"handle"`
	UID       string    `json:"uid" firestore:"uid"`
	CreatedAt time.Time `json:"createdAt" firestore:"createdAt"`
}

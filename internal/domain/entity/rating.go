package entity

import (
	"time"
)

// Rating is an immutable review stored in profiles/{uid}/ratings/{id}. Rater
// name and photo are snapshots taken at write time.
type Rating struct {
	ID            string      `json:"id" firestore:"id"`
	ToUserID      string      `json:"toUserId" firestore:"toUserId"`
	FromUserID    string      `json:"fromUserId" firestore:"fromUserId"`
	FromUserName  string      `json:"fromUserName" firestore:"fromUserName"`
	FromUserPhoto string      `json:"fromUserPhoto,omitempty" firestore:"fromUserPhoto"`
	Rating        int         `json:"rating" firestore:"rating"` // 1-5
	Review        string      `json:"review,omitempty" firestore:"review"`
	ProjectID     string      `json:"projectId,omitempty" firestore:"projectId"`
	ProjectName   string      `json:"projectName,omitempty" firestore:"projectName"`
	Media         []MediaItem `json:"media,omitempty" firestore:"media"`
	CreatedAt     time.Time   `json:"createdAt" firestore:"createdAt"`
}

const (
	MinRating = 1
	MaxRating = 5
)

package entity

import (
	"time"
)

type Message struct {
	ID       string `json:"id" firestore:"id"`
	MatchID  string `json:"match_id" firestore:"matchId"`
	SenderID string `json:"sender_id" firestore:"senderId"`
	Content  string `json:"content" firestore:"content"`

	CreatedAt time.Time  `json:"created_at" firestore:"createdAt"`
	ReadAt    *time.Time `json:"read_at,omitempty" firestore:"readAt"`
}

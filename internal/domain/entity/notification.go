package entity

import (
	"time"
)

const (
	NotificationTypeMatchRequest = "match_request"
	NotificationTypeMatchUpdate  = "match_update"
	NotificationTypeMessage      = "message"
	NotificationTypeSystem       = "system"
)

type Notification struct {
	ID     string            `json:"id" firestore:"id"`
	UserID string            `json:"user_id" firestore:"userId"`
	Type   string            `json:"type" firestore:"type"`
	Title  string            `json:"title" firestore:"title"`
	Body   string            `json:"body" firestore:"body"`
	Data   map[string]string `json:"data,omitempty" firestore:"data,omitempty"`

	CreatedAt time.Time  `json:"created_at" firestore:"createdAt"`
	ReadAt    *time.Time `json:"read_at,omitempty" firestore:"readAt"`
}

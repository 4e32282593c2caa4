package entity

import (
	"strings"
	"time"
)

const (
	MatchStatusPending  = "pending"
	MatchStatusAccepted = "accepted"
	MatchStatusRejected = "rejected"
)

type MatchPreferences struct {
	Purpose       string     `json:"purpose" firestore:"purpose"`
	PreferredDate *time.Time `json:"preferred_date,omitempty" firestore:"preferredDate,omitempty"`
	Location      *Location  `json:"location,omitempty" firestore:"location,omitempty"`
}

type Match struct {
	ID               string            `json:"id" firestore:"id"`
	Dog1ID           string            `json:"dog1_id" firestore:"dog1Id"`
	Dog2ID           string            `json:"dog2_id" firestore:"dog2Id"`
	PairKey          string            `json:"-" firestore:"pairKey"`
	Status           string            `json:"status" firestore:"status"`
	MatchPreferences *MatchPreferences `json:"match_preferences,omitempty" firestore:"matchPreferences,omitempty"`

	CreatedAt time.Time `json:"created_at" firestore:"createdAt"`
	UpdatedAt time.Time `json:"updated_at" firestore:"updatedAt"`
}

// PairKey builds the canonical key for an unordered dog pair. Both orderings
// of the same two dogs produce the same key, which backs the one-match-per-pair
// constraint.
func PairKey(dog1ID, dog2ID string) string {
	if dog1ID > dog2ID {
		dog1ID, dog2ID = dog2ID, dog1ID
	}
	return strings.Join([]string{dog1ID, dog2ID}, "|")
}

// HasDog reports whether the given dog is one of the two sides of the match.
func (m *Match) HasDog(dogID string) bool {
	return m.Dog1ID == dogID || m.Dog2ID == dogID
}

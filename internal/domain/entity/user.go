package entity

import (
	"time"
)

type Preferences struct {
	Notifications bool    `json:"notifications" firestore:"notifications"`
	EmailUpdates  bool    `json:"email_updates" firestore:"emailUpdates"`
	Radius        float64 `json:"radius" firestore:"radius"`
}

type User struct {
	ID          string       `json:"id" firestore:"id"`
	Email       string       `json:"email" firestore:"email"`
	Name        string       `json:"name" firestore:"name"`
	PhotoURL    string       `json:"photo_url,omitempty" firestore:"photoURL,omitempty"`
	PhoneNumber string       `json:"phone_number,omitempty" firestore:"phoneNumber,omitempty"`
	Preferences *Preferences `json:"preferences,omitempty" firestore:"preferences,omitempty"`
	FCMToken    string       `json:"fcm_token,omitempty" firestore:"fcmToken,omitempty"`

	CreatedAt time.Time `json:"created_at" firestore:"createdAt"`
	UpdatedAt time.Time `json:"updated_at" firestore:"updatedAt"`
}

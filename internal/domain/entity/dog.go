package entity

import (
	"time"
)

type Location struct {
	Latitude  float64 `json:"latitude" firestore:"latitude"`
	Longitude float64 `json:"longitude" firestore:"longitude"`
	Address   string  `json:"address,omitempty" firestore:"address,omitempty"`
}

type Traits struct {
	Size         string `json:"size,omitempty" firestore:"size,omitempty"`
	Energy       string `json:"energy,omitempty" firestore:"energy,omitempty"`
	Friendliness string `json:"friendliness,omitempty" firestore:"friendliness,omitempty"`
}

type MedicalInfo struct {
	Vaccinated  bool       `json:"vaccinated" firestore:"vaccinated"`
	Neutered    bool       `json:"neutered" firestore:"neutered"`
	LastCheckup *time.Time `json:"last_checkup,omitempty" firestore:"lastCheckup,omitempty"`
}

type Dog struct {
	ID          string       `json:"id" firestore:"id"`
	OwnerID     string       `json:"owner_id" firestore:"ownerId"`
	Name        string       `json:"name" firestore:"name"`
	Breed       string       `json:"breed" firestore:"breed"`
	Age         int          `json:"age" firestore:"age"`
	Gender      string       `json:"gender" firestore:"gender"`
	Photos      []string     `json:"photos" firestore:"photos"`
	Description string       `json:"description,omitempty" firestore:"description,omitempty"`
	Location    Location     `json:"location" firestore:"location"`
	Traits      *Traits      `json:"traits,omitempty" firestore:"traits,omitempty"`
	MedicalInfo *MedicalInfo `json:"medical_info,omitempty" firestore:"medicalInfo,omitempty"`

	CreatedAt time.Time `json:"created_at" firestore:"createdAt"`
	UpdatedAt time.Time `json:"updated_at" firestore:"updatedAt"`
}

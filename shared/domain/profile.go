package domain

import "time"

// Profile is a reader's public identity. At most one per user.
type Profile struct {
	User        UserId    `json:"user" bson:"_id"`
	DisplayName string    `json:"display_name" bson:"display_name"`
	Bio         string    `json:"bio,omitempty" bson:"bio,omitempty"`
	Genres      []Genre   `json:"genres" bson:"genres"`
	CreatedAt   time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt   time.Time `json:"updated_at" bson:"updated_at"`
}

type ProfileCreationData struct {
	User        UserId
	DisplayName string
	Bio         string
	Genres      []Genre
}

// ProfileUpdate carries the fields to change; nil means "keep as is".
type ProfileUpdate struct {
	DisplayName *string
	Bio         *string
	Genres      *[]Genre
}

package models

import "time"

// User holds an account. IDs are opaque UUID strings, password hash is only
// set for accounts registered with email+password (Google accounts have none).
type User struct {
	ID           string    `json:"id" bson:"_id"`
	Email        string    `json:"email" bson:"email"`
	Name         string    `json:"name" bson:"name"`
	Picture      string    `json:"picture,omitempty" bson:"picture,omitempty"`
	PasswordHash string    `json:"-" bson:"passwordHash,omitempty"`
	IsPremium    bool      `json:"is_premium" bson:"isPremium"`
	CreatedAt    time.Time `json:"created_at" bson:"createdAt"`
}

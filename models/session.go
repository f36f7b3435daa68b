package models

import "time"

// Session is an opaque bearer token exchanged for a user identity.
type Session struct {
	Token     string    `json:"session_token" bson:"_id"`
	UserID    string    `json:"user_id" bson:"userID"`
	ExpiresAt time.Time `json:"expires_at" bson:"expiresAt"`
	CreatedAt time.Time `json:"created_at" bson:"createdAt"`
}

// Expired reports whether the session is past its expiry at the given instant.
func (s Session) Expired(now time.Time) bool {
	return now.After(s.ExpiresAt)
}

package invitations

import (
	"crypto/rand"
	"encoding/base64"
)

// slugBytes of randomness gives 64 bits per draw, enough that collisions are
// only ever resolved by the store's unique index, never anticipated here.
const slugBytes = 8

// GenerateSlug returns a fresh URL-safe slug. Draws are independent; a
// collision is handled by the caller drawing again, never by mutating the
// previous value.
func GenerateSlug() (string, error) {
	b := make([]byte, slugBytes)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}

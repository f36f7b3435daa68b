package models

import "time"

// Template holds an invitation design. Seeded catalog templates use
// human-readable IDs (classic-elegance, ...), user created ones use UUIDs.
type Template struct {
	ID              string    `json:"id" bson:"_id"`
	Name            string    `json:"name" bson:"name"`
	Category        string    `json:"category" bson:"category"`
	PreviewImageURL string    `json:"preview_image_url,omitempty" bson:"previewImageURL,omitempty"`
	HTMLContent     string    `json:"html_content" bson:"htmlContent"`
	CSSContent      string    `json:"css_content" bson:"cssContent"`
	IsPremium       bool      `json:"is_premium" bson:"isPremium"`
	CreatedBy       string    `json:"created_by,omitempty" bson:"createdBy,omitempty"`
	CreatedAt       time.Time `json:"created_at" bson:"createdAt"`
}

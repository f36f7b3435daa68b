package models

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// SubEvent is an optional ceremony item (mehndi, sangeet, reception, ...).
type SubEvent struct {
	Name     string `json:"name" bson:"name"`
	Time     string `json:"time" bson:"time"`
	Location string `json:"location" bson:"location"`
}

// InvitationData is the couple-supplied content rendered into the template.
type InvitationData struct {
	BrideName      string     `json:"bride_name" bson:"brideName"`
	GroomName      string     `json:"groom_name" bson:"groomName"`
	WeddingDate    string     `json:"wedding_date" bson:"weddingDate"`
	WeddingTime    string     `json:"wedding_time" bson:"weddingTime"`
	VenueName      string     `json:"venue_name" bson:"venueName"`
	VenueAddress   string     `json:"venue_address" bson:"venueAddress"`
	Events         []SubEvent `json:"events,omitempty" bson:"events,omitempty"`
	RSVPLink       string     `json:"rsvp_link,omitempty" bson:"rsvpLink,omitempty"`
	AdditionalInfo string     `json:"additional_info,omitempty" bson:"additionalInfo,omitempty"`
}

// CreateInvitationRequest is the POST /invitations payload.
type CreateInvitationRequest struct {
	TemplateID string         `json:"template_id"`
	Data       InvitationData `json:"invitation_data"`
}

// Invitation is a published wedding invitation. URLSlug is assigned once at
// creation and never changes; the QR code encodes the public page for it.
type Invitation struct {
	ID          string         `json:"id" bson:"_id"`
	UserID      string         `json:"user_id" bson:"userID"`
	TemplateID  string         `json:"template_id" bson:"templateID"`
	Data        InvitationData `json:"invitation_data" bson:"invitationData"`
	URLSlug     string         `json:"url_slug" bson:"urlSlug"`
	QRCode      string         `json:"qr_code,omitempty" bson:"qrCode,omitempty"`
	IsPublished bool           `json:"is_published" bson:"isPublished"`
	CreatedAt   time.Time      `json:"created_at" bson:"createdAt"`
	UpdatedAt   time.Time      `json:"updated_at" bson:"updatedAt"`
}

// ValidationError reports a rejected invitation payload.
type ValidationError struct {
	Field string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("missing required field: %s", e.Field)
}

// Validate checks the request for required content fields.
func (r CreateInvitationRequest) Validate() error {
	if strings.TrimSpace(r.TemplateID) == "" {
		return &ValidationError{Field: "template_id"}
	}
	required := []struct {
		name  string
		value string
	}{
		{"bride_name", r.Data.BrideName},
		{"groom_name", r.Data.GroomName},
		{"wedding_date", r.Data.WeddingDate},
		{"wedding_time", r.Data.WeddingTime},
		{"venue_name", r.Data.VenueName},
		{"venue_address", r.Data.VenueAddress},
	}
	for _, f := range required {
		if strings.TrimSpace(f.value) == "" {
			return &ValidationError{Field: f.name}
		}
	}
	return nil
}

// NewInvitation builds a published invitation from a validated request. The
// slug and QR code are filled in by the caller before persisting.
func NewInvitation(userID string, req CreateInvitationRequest) (Invitation, error) {
	if err := req.Validate(); err != nil {
		return Invitation{}, err
	}
	now := time.Now().UTC()
	return Invitation{
		ID:          uuid.New().String(),
		UserID:      userID,
		TemplateID:  req.TemplateID,
		Data:        req.Data,
		IsPublished: true,
		CreatedAt:   now,
		UpdatedAt:   now,
	}, nil
}

package invitations

import (
	"context"
	"errors"
	"strings"

	"go.uber.org/zap"

	"github.com/vowlink/wedding-invites-api/databases"
	"github.com/vowlink/wedding-invites-api/models"
)

// DefaultMaxAttempts bounds the slug retry loop. Collisions on 64-bit slugs
// are vanishingly rare, the cap exists so a broken unique index cannot spin
// the handler forever.
const DefaultMaxAttempts = 25

// Manager owns the invitation lifecycle: validated creation with a unique
// slug and QR code, owner-scoped reads, and the public slug lookup.
type Manager struct {
	Invitations databases.InvitationDatabase
	Templates   databases.TemplateDatabase
	BaseURL     string
	MaxAttempts int
}

// NewManager wires a manager with the default retry budget.
func NewManager(invitations databases.InvitationDatabase, templates databases.TemplateDatabase, baseURL string) *Manager {
	return &Manager{
		Invitations: invitations,
		Templates:   templates,
		BaseURL:     baseURL,
		MaxAttempts: DefaultMaxAttempts,
	}
}

// PublicURL returns the shareable page for a slug.
func (m *Manager) PublicURL(slug string) string {
	return strings.TrimRight(m.BaseURL, "/") + "/i/" + slug
}

// Create validates the request, checks the template, then allocates a unique
// slug and inserts exactly one document. The insert is the only visible side
// effect; every earlier failure leaves no trace. A duplicate-slug conflict
// from the store is retried with a fresh draw.
func (m *Manager) Create(ctx context.Context, userID string, req models.CreateInvitationRequest) (*models.Invitation, error) {
	invitation, err := models.NewInvitation(userID, req)
	if err != nil {
		return nil, err
	}

	if _, err := m.Templates.FindByID(ctx, req.TemplateID); err != nil {
		if errors.Is(err, databases.ErrNotFound) {
			return nil, ErrTemplateNotFound
		}
		return nil, err
	}

	maxAttempts := m.MaxAttempts
	if maxAttempts <= 0 {
		maxAttempts = DefaultMaxAttempts
	}

	for attempt := 0; attempt < maxAttempts; attempt++ {
		slug, err := GenerateSlug()
		if err != nil {
			return nil, err
		}

		// cheap pre-check, the unique index remains the authority
		if _, err := m.Invitations.FindBySlug(ctx, slug); err == nil {
			zap.S().Debugw("slug already taken, drawing again", "attempt", attempt)
			continue
		} else if !errors.Is(err, databases.ErrNotFound) {
			return nil, err
		}

		qr, err := EncodeQR(m.PublicURL(slug))
		if err != nil {
			return nil, err
		}

		invitation.URLSlug = slug
		invitation.QRCode = qr

		err = m.Invitations.InsertOne(ctx, invitation)
		if errors.Is(err, databases.ErrDuplicateSlug) {
			zap.S().Debugw("slug collided on insert, drawing again", "attempt", attempt)
			continue
		}
		if err != nil {
			return nil, err
		}
		return &invitation, nil
	}

	return nil, ErrSlugGeneration
}

// Get returns the invitation only to its owner. Missing and foreign
// invitations are reported identically.
func (m *Manager) Get(ctx context.Context, userID, invitationID string) (*models.Invitation, error) {
	invitation, err := m.Invitations.FindByID(ctx, invitationID)
	if errors.Is(err, databases.ErrNotFound) {
		return nil, ErrInvitationNotFound
	}
	if err != nil {
		return nil, err
	}
	if invitation.UserID != userID {
		return nil, ErrInvitationNotFound
	}
	return invitation, nil
}

// List returns the caller's invitations, never nil.
func (m *Manager) List(ctx context.Context, userID string) ([]models.Invitation, error) {
	invitations, err := m.Invitations.FindByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if invitations == nil {
		invitations = []models.Invitation{}
	}
	return invitations, nil
}

// GetPublic resolves a published invitation and its template for the
// unauthenticated public page. An invitation whose template has gone missing
// is treated as unavailable.
func (m *Manager) GetPublic(ctx context.Context, slug string) (*models.Invitation, *models.Template, error) {
	invitation, err := m.Invitations.FindPublishedBySlug(ctx, slug)
	if errors.Is(err, databases.ErrNotFound) {
		return nil, nil, ErrInvitationNotFound
	}
	if err != nil {
		return nil, nil, err
	}

	template, err := m.Templates.FindByID(ctx, invitation.TemplateID)
	if errors.Is(err, databases.ErrNotFound) {
		zap.S().Warnw("published invitation references a missing template",
			"invitationID", invitation.ID,
			"templateID", invitation.TemplateID)
		return nil, nil, ErrTemplateNotFound
	}
	if err != nil {
		return nil, nil, err
	}
	return invitation, template, nil
}

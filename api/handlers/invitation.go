package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"os"

	"github.com/gorilla/mux"
	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
	"go.uber.org/zap"

	"github.com/vowlink/wedding-invites-api/api"
	"github.com/vowlink/wedding-invites-api/config"
	"github.com/vowlink/wedding-invites-api/databases"
	"github.com/vowlink/wedding-invites-api/invitations"
	"github.com/vowlink/wedding-invites-api/models"
	"github.com/vowlink/wedding-invites-api/templates/html"
)

// Invitation exposes the invitation routes.
type Invitation struct {
	Manager *invitations.Manager
	UDB     databases.UserDatabase
}

// CreateInvitationHandler creates a published invitation with a unique slug
// and QR code and returns it with a 201.
func (i Invitation) CreateInvitationHandler(w http.ResponseWriter, r *http.Request) {
	userID, ok := api.UserIDFromContext(r.Context())
	if !ok {
		config.ErrorStatus("missing authenticated user", http.StatusUnauthorized, w, errors.New("no user in context"))
		return
	}

	var req models.CreateInvitationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		config.ErrorStatus("failed to unmarshal request body", http.StatusBadRequest, w, err)
		return
	}

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	invitation, err := i.Manager.Create(ctx, userID, req)
	if err != nil {
		var vErr *models.ValidationError
		var encErr *invitations.EncodingError
		switch {
		case errors.As(err, &vErr):
			config.ErrorStatus("invalid invitation payload", http.StatusBadRequest, w, err)
		case errors.Is(err, invitations.ErrTemplateNotFound):
			config.ErrorStatus("template not found", http.StatusNotFound, w, err)
		case errors.As(err, &encErr):
			config.ErrorStatus("failed to generate QR code", http.StatusInternalServerError, w, err)
		case errors.Is(err, invitations.ErrSlugGeneration):
			config.ErrorStatus("failed to allocate invitation link", http.StatusInternalServerError, w, err)
		default:
			config.ErrorStatus("failed to create invitation", http.StatusInternalServerError, w, err)
		}
		return
	}

	go i.sendShareEmail(*invitation)

	b, err := json.Marshal(invitation)
	if err != nil {
		config.ErrorStatus("failed to marshal response", http.StatusInternalServerError, w, err)
		return
	}
	w.WriteHeader(http.StatusCreated)
	w.Write(b)
}

// InvitationListHandler returns the caller's invitations, empty list included.
func (i Invitation) InvitationListHandler(w http.ResponseWriter, r *http.Request) {
	userID, ok := api.UserIDFromContext(r.Context())
	if !ok {
		config.ErrorStatus("missing authenticated user", http.StatusUnauthorized, w, errors.New("no user in context"))
		return
	}

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	list, err := i.Manager.List(ctx, userID)
	if err != nil {
		config.ErrorStatus("failed to get invitations", http.StatusInternalServerError, w, err)
		return
	}

	b, err := json.Marshal(list)
	if err != nil {
		config.ErrorStatus("failed to marshal response", http.StatusInternalServerError, w, err)
		return
	}
	w.Write(b)
}

// InvitationByIDHandler returns one invitation to its owner. A foreign
// invitation gets the same 404 a missing one does.
func (i Invitation) InvitationByIDHandler(w http.ResponseWriter, r *http.Request) {
	userID, ok := api.UserIDFromContext(r.Context())
	if !ok {
		config.ErrorStatus("missing authenticated user", http.StatusUnauthorized, w, errors.New("no user in context"))
		return
	}
	invitationID := mux.Vars(r)["invitation_id"]

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	invitation, err := i.Manager.Get(ctx, userID, invitationID)
	if err != nil {
		if errors.Is(err, invitations.ErrInvitationNotFound) {
			config.ErrorStatus("invitation not found", http.StatusNotFound, w, err)
			return
		}
		config.ErrorStatus("failed to get invitation", http.StatusInternalServerError, w, err)
		return
	}

	b, err := json.Marshal(invitation)
	if err != nil {
		config.ErrorStatus("failed to marshal response", http.StatusInternalServerError, w, err)
		return
	}
	w.Write(b)
}

// PublicInvitationHandler serves the unauthenticated public page data: the
// invitation plus its template, looked up by slug.
func (i Invitation) PublicInvitationHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	slug := mux.Vars(r)["url_slug"]

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	invitation, template, err := i.Manager.GetPublic(ctx, slug)
	if err != nil {
		if errors.Is(err, invitations.ErrInvitationNotFound) || errors.Is(err, invitations.ErrTemplateNotFound) {
			config.ErrorStatus("invitation not found", http.StatusNotFound, w, err)
			return
		}
		config.ErrorStatus("failed to get invitation", http.StatusInternalServerError, w, err)
		return
	}

	b, err := json.Marshal(map[string]interface{}{
		"invitation": invitation,
		"template":   template,
	})
	if err != nil {
		config.ErrorStatus("failed to marshal response", http.StatusInternalServerError, w, err)
		return
	}
	w.Write(b)
}

// sendShareEmail mails the owner their public link. Best effort, failures are
// logged and never surfaced to the create request.
func (i Invitation) sendShareEmail(invitation models.Invitation) {
	apiKey := os.Getenv("SENDGRID_API_KEY")
	if apiKey == "" {
		return
	}

	ctx, cancel := api.WithQueryTimeout(context.Background())
	defer cancel()

	user, err := i.UDB.FindByID(ctx, invitation.UserID)
	if err != nil {
		zap.S().With(err).Warn("share email skipped, owner lookup failed")
		return
	}

	publicURL := i.Manager.PublicURL(invitation.URLSlug)
	from := mail.NewEmail("vowlink", os.Getenv("SENDGRID_FROM_EMAIL"))
	to := mail.NewEmail(user.Name, user.Email)
	subject := "Your wedding invitation is live"
	plain := "Your invitation is published: " + publicURL
	body := html.RenderInvitationLiveEmail(invitation.Data.BrideName, invitation.Data.GroomName, publicURL)

	message := mail.NewSingleEmail(from, subject, to, plain, body)
	client := sendgrid.NewSendClient(apiKey)
	resp, err := client.Send(message)
	if err != nil {
		zap.S().With(err).Warn("failed to send share email")
		return
	}
	zap.S().Debugw("share email sent", "status", resp.StatusCode)
}

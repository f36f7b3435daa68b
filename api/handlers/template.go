package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"github.com/vowlink/wedding-invites-api/api"
	"github.com/vowlink/wedding-invites-api/config"
	"github.com/vowlink/wedding-invites-api/databases"
	"github.com/vowlink/wedding-invites-api/models"
)

// Template exposes the template catalog routes.
type Template struct {
	DB  databases.TemplateDatabase
	UDB databases.UserDatabase
}

type createTemplateRequest struct {
	Name        string `json:"name"`
	Category    string `json:"category"`
	HTMLContent string `json:"html_content"`
	CSSContent  string `json:"css_content"`
}

type generateTemplateRequest struct {
	StylePrompt    string `json:"style_prompt"`
	PrimaryColor   string `json:"primary_color"`
	SecondaryColor string `json:"secondary_color"`
	FontFamily     string `json:"font_family"`
}

// TemplateListHandler returns the whole catalog.
func (t Template) TemplateListHandler(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	templates, err := t.DB.FindAll(ctx)
	if err != nil {
		config.ErrorStatus("failed to get templates", http.StatusInternalServerError, w, err)
		return
	}

	b, err := json.Marshal(templates)
	if err != nil {
		config.ErrorStatus("failed to marshal response", http.StatusInternalServerError, w, err)
		return
	}
	w.Write(b)
}

// TemplateByIDHandler returns a single template by ID.
func (t Template) TemplateByIDHandler(w http.ResponseWriter, r *http.Request) {
	templateID := mux.Vars(r)["template_id"]

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	template, err := t.DB.FindByID(ctx, templateID)
	if err != nil {
		if errors.Is(err, databases.ErrNotFound) {
			config.ErrorStatus("template not found", http.StatusNotFound, w, err)
			return
		}
		config.ErrorStatus("failed to get template", http.StatusInternalServerError, w, err)
		return
	}

	b, err := json.Marshal(template)
	if err != nil {
		config.ErrorStatus("failed to marshal response", http.StatusInternalServerError, w, err)
		return
	}
	w.Write(b)
}

// TemplateCreateHandler stores a custom template. Premium accounts only.
func (t Template) TemplateCreateHandler(w http.ResponseWriter, r *http.Request) {
	user, ok := t.requirePremium(w, r)
	if !ok {
		return
	}

	var req createTemplateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		config.ErrorStatus("failed to unmarshal request body", http.StatusBadRequest, w, err)
		return
	}
	if strings.TrimSpace(req.Name) == "" || strings.TrimSpace(req.HTMLContent) == "" {
		config.ErrorStatus("name and html_content are required", http.StatusBadRequest, w, errors.New("missing fields"))
		return
	}

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	template := models.Template{
		ID:          uuid.New().String(),
		Name:        req.Name,
		Category:    req.Category,
		HTMLContent: req.HTMLContent,
		CSSContent:  req.CSSContent,
		IsPremium:   true,
		CreatedBy:   user.ID,
		CreatedAt:   time.Now().UTC(),
	}
	if err := t.DB.InsertOne(ctx, template); err != nil {
		config.ErrorStatus("failed to create template", http.StatusInternalServerError, w, err)
		return
	}

	b, err := json.Marshal(template)
	if err != nil {
		config.ErrorStatus("failed to marshal response", http.StatusInternalServerError, w, err)
		return
	}
	w.WriteHeader(http.StatusCreated)
	w.Write(b)
}

// GenerateTemplateHandler builds a styled template from a palette prompt.
// Premium accounts only.
func (t Template) GenerateTemplateHandler(w http.ResponseWriter, r *http.Request) {
	user, ok := t.requirePremium(w, r)
	if !ok {
		return
	}

	var req generateTemplateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		config.ErrorStatus("failed to unmarshal request body", http.StatusBadRequest, w, err)
		return
	}
	if req.PrimaryColor == "" {
		req.PrimaryColor = "#b39554"
	}
	if req.SecondaryColor == "" {
		req.SecondaryColor = "#fffdf7"
	}
	if req.FontFamily == "" {
		req.FontFamily = "'Playfair Display', serif"
	}

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	template := models.Template{
		ID:          uuid.New().String(),
		Name:        generatedTemplateName(req.StylePrompt),
		Category:    "generated",
		HTMLContent: generatedTemplateHTML(),
		CSSContent:  generatedTemplateCSS(req.PrimaryColor, req.SecondaryColor, req.FontFamily),
		IsPremium:   true,
		CreatedBy:   user.ID,
		CreatedAt:   time.Now().UTC(),
	}
	if err := t.DB.InsertOne(ctx, template); err != nil {
		config.ErrorStatus("failed to create template", http.StatusInternalServerError, w, err)
		return
	}

	b, err := json.Marshal(template)
	if err != nil {
		config.ErrorStatus("failed to marshal response", http.StatusInternalServerError, w, err)
		return
	}
	w.WriteHeader(http.StatusCreated)
	w.Write(b)
}

// InitTemplatesHandler seeds the default catalog, once. Admin only, wired
// behind the admin middleware.
func (t Template) InitTemplatesHandler(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	count, err := t.DB.CountDocuments(ctx)
	if err != nil {
		config.ErrorStatus("failed to count templates", http.StatusInternalServerError, w, err)
		return
	}
	if count > 0 {
		w.Write([]byte(fmt.Sprintf(`{"message": "templates already initialized", "count": %d}`, count)))
		return
	}

	seed := models.DefaultTemplates()
	if err := t.DB.InsertMany(ctx, seed); err != nil {
		config.ErrorStatus("failed to seed templates", http.StatusInternalServerError, w, err)
		return
	}
	zap.S().Infow("default templates seeded", "count", len(seed))
	w.WriteHeader(http.StatusCreated)
	w.Write([]byte(fmt.Sprintf(`{"message": "templates initialized", "count": %d}`, len(seed))))
}

func (t Template) requirePremium(w http.ResponseWriter, r *http.Request) (*models.User, bool) {
	userID, ok := api.UserIDFromContext(r.Context())
	if !ok {
		config.ErrorStatus("missing authenticated user", http.StatusUnauthorized, w, errors.New("no user in context"))
		return nil, false
	}

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	user, err := t.UDB.FindByID(ctx, userID)
	if err != nil {
		config.ErrorStatus("failed to get user", http.StatusInternalServerError, w, err)
		return nil, false
	}
	if !user.IsPremium {
		config.ErrorStatus("premium subscription required", http.StatusForbidden, w, errors.New("account is not premium"))
		return nil, false
	}
	return user, true
}

func generatedTemplateName(prompt string) string {
	prompt = strings.TrimSpace(prompt)
	if prompt == "" {
		return "Custom Design"
	}
	if len(prompt) > 40 {
		prompt = prompt[:40]
	}
	return strings.Title(prompt)
}

func generatedTemplateHTML() string {
	return `<div class="invitation generated">
  <p class="intro">Together with their families</p>
  <h1 class="names">{{bride_name}} &amp; {{groom_name}}</h1>
  <p class="datetime">{{wedding_date}} at {{wedding_time}}</p>
  <p class="venue">{{venue_name}}</p>
  <p class="address">{{venue_address}}</p>
  <div class="qr">{{qr_code}}</div>
</div>`
}

func generatedTemplateCSS(primary, secondary, font string) string {
	return fmt.Sprintf(`.invitation.generated { font-family: %s; background: %s; color: #333333; text-align: center; padding: 64px 48px; }
.invitation.generated .names { font-size: 40px; color: %s; margin: 24px 0; }
.invitation.generated .intro { letter-spacing: 3px; text-transform: uppercase; font-size: 14px; }
.invitation.generated .datetime { font-size: 18px; margin-top: 28px; }
.invitation.generated .qr img { width: 120px; margin-top: 32px; }`, font, secondary, primary)
}

package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/vowlink/wedding-invites-api/api"
	"github.com/vowlink/wedding-invites-api/config"
	"github.com/vowlink/wedding-invites-api/databases"
)

const adminTokenTTL = time.Hour

// Admin exposes the env-credentialed maintenance surface.
type Admin struct {
	UDB databases.UserDatabase
	IDB databases.InvitationDatabase
	TDB databases.TemplateDatabase
}

type adminLoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AdminLoginHandler checks the env-configured operator credentials and issues
// a short-lived admin JWT.
func (a Admin) AdminLoginHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	var req adminLoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		config.ErrorStatus("failed to unmarshal request body", http.StatusBadRequest, w, err)
		return
	}

	adminEmail := os.Getenv("ADMIN_EMAIL")
	adminHash := os.Getenv("ADMIN_PASSWORD_HASH")
	secret := os.Getenv("JWT_SECRET")
	if adminEmail == "" || adminHash == "" || secret == "" {
		config.ErrorStatus("admin login is not configured", http.StatusServiceUnavailable, w, errors.New("admin env missing"))
		return
	}

	if req.Email != adminEmail {
		config.ErrorStatus("invalid credentials", http.StatusUnauthorized, w, errors.New("bad admin login"))
		return
	}
	if err := bcrypt.CompareHashAndPassword([]byte(adminHash), []byte(req.Password)); err != nil {
		config.ErrorStatus("invalid credentials", http.StatusUnauthorized, w, errors.New("bad admin login"))
		return
	}

	now := time.Now().UTC()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":   adminEmail,
		"scope": "admin",
		"typ":   "access",
		"iat":   now.Unix(),
		"exp":   now.Add(adminTokenTTL).Unix(),
	})
	signed, err := token.SignedString([]byte(secret))
	if err != nil {
		config.ErrorStatus("failed to sign token", http.StatusInternalServerError, w, err)
		return
	}

	b, err := json.Marshal(map[string]string{
		"token":      signed,
		"expires_at": now.Add(adminTokenTTL).Format(time.RFC3339),
	})
	if err != nil {
		config.ErrorStatus("failed to marshal response", http.StatusInternalServerError, w, err)
		return
	}
	w.Write(b)
}

// AdminStatsHandler reports store counts for operators.
func (a Admin) AdminStatsHandler(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	users, err := a.UDB.CountDocuments(ctx)
	if err != nil {
		config.ErrorStatus("failed to count users", http.StatusInternalServerError, w, err)
		return
	}
	invitations, err := a.IDB.CountDocuments(ctx)
	if err != nil {
		config.ErrorStatus("failed to count invitations", http.StatusInternalServerError, w, err)
		return
	}
	templates, err := a.TDB.CountDocuments(ctx)
	if err != nil {
		config.ErrorStatus("failed to count templates", http.StatusInternalServerError, w, err)
		return
	}

	b, err := json.Marshal(map[string]int64{
		"users":       users,
		"invitations": invitations,
		"templates":   templates,
	})
	if err != nil {
		config.ErrorStatus("failed to marshal response", http.StatusInternalServerError, w, err)
		return
	}
	w.Write(b)
}

package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/vowlink/wedding-invites-api/api"
	"github.com/vowlink/wedding-invites-api/config"
	"github.com/vowlink/wedding-invites-api/databases"
	"github.com/vowlink/wedding-invites-api/models"
)

// Auth exposes the account routes: registration, Google login and the
// current-user lookup.
type Auth struct {
	UDB databases.UserDatabase
	SDB databases.SessionDatabase

	// SessionDataURL is the OAuth broker endpoint that exchanges a Google
	// session_id for the user's profile.
	SessionDataURL string
	Client         *http.Client
}

type registerRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
}

type googleAuthRequest struct {
	SessionID string `json:"session_id"`
}

type googleSessionData struct {
	ID           string `json:"id"`
	Email        string `json:"email"`
	Name         string `json:"name"`
	Picture      string `json:"picture"`
	SessionToken string `json:"session_token"`
}

// RegisterHandler creates a password account.
func (a Auth) RegisterHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	var req registerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		config.ErrorStatus("failed to unmarshal request body", http.StatusBadRequest, w, err)
		return
	}
	req.Email = strings.TrimSpace(strings.ToLower(req.Email))
	if req.Email == "" || !strings.Contains(req.Email, "@") {
		config.ErrorStatus("a valid email is required", http.StatusBadRequest, w, errors.New("invalid email"))
		return
	}
	if len(req.Password) < 8 {
		config.ErrorStatus("password must be at least 8 characters", http.StatusBadRequest, w, errors.New("password too short"))
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		config.ErrorStatus("failed to hash password", http.StatusInternalServerError, w, err)
		return
	}

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	user := models.User{
		ID:           uuid.New().String(),
		Email:        req.Email,
		Name:         req.Name,
		PasswordHash: string(hash),
		CreatedAt:    time.Now().UTC(),
	}
	if err := a.UDB.InsertOne(ctx, user); err != nil {
		if errors.Is(err, databases.ErrDuplicateEmail) {
			config.ErrorStatus("an account with this email already exists", http.StatusConflict, w, err)
			return
		}
		config.ErrorStatus("failed to create user", http.StatusInternalServerError, w, err)
		return
	}

	b, err := json.Marshal(user)
	if err != nil {
		config.ErrorStatus("failed to marshal response", http.StatusInternalServerError, w, err)
		return
	}
	w.WriteHeader(http.StatusCreated)
	w.Write(b)
}

// GoogleAuthHandler exchanges an OAuth session_id against the broker, upserts
// the account and mints a bearer session.
func (a Auth) GoogleAuthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	var req googleAuthRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.SessionID == "" {
		config.ErrorStatus("session_id is required", http.StatusBadRequest, w, err)
		return
	}

	data, err := a.fetchSessionData(r, req.SessionID)
	if err != nil {
		config.ErrorStatus("invalid oauth session", http.StatusUnauthorized, w, err)
		return
	}

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	user, err := a.UDB.FindByEmail(ctx, data.Email)
	if errors.Is(err, databases.ErrNotFound) {
		created := models.User{
			ID:        uuid.New().String(),
			Email:     data.Email,
			Name:      data.Name,
			Picture:   data.Picture,
			CreatedAt: time.Now().UTC(),
		}
		if err := a.UDB.InsertOne(ctx, created); err != nil {
			config.ErrorStatus("failed to create user", http.StatusInternalServerError, w, err)
			return
		}
		user = &created
	} else if err != nil {
		config.ErrorStatus("failed to get user by email", http.StatusInternalServerError, w, err)
		return
	}

	token := data.SessionToken
	if token == "" {
		token = uuid.New().String()
	}
	now := time.Now().UTC()
	session := models.Session{
		Token:     token,
		UserID:    user.ID,
		ExpiresAt: now.Add(api.SessionTTL),
		CreatedAt: now,
	}
	if err := a.SDB.InsertOne(ctx, session); err != nil {
		config.ErrorStatus("failed to persist session", http.StatusInternalServerError, w, err)
		return
	}
	api.AppendToken(token, user.Email, user.ID, r)

	b, err := json.Marshal(map[string]interface{}{
		"user":          user,
		"session_token": token,
		"expires_at":    session.ExpiresAt.Format(time.RFC3339),
	})
	if err != nil {
		config.ErrorStatus("failed to marshal response", http.StatusInternalServerError, w, err)
		return
	}
	w.Write(b)
}

// MeHandler returns the authenticated account.
func (a Auth) MeHandler(w http.ResponseWriter, r *http.Request) {
	userID, ok := api.UserIDFromContext(r.Context())
	if !ok {
		config.ErrorStatus("missing authenticated user", http.StatusUnauthorized, w, errors.New("no user in context"))
		return
	}

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	user, err := a.UDB.FindByID(ctx, userID)
	if err != nil {
		config.ErrorStatus("failed to get user", http.StatusNotFound, w, err)
		return
	}

	b, err := json.Marshal(user)
	if err != nil {
		config.ErrorStatus("failed to marshal response", http.StatusInternalServerError, w, err)
		return
	}
	w.Write(b)
}

func (a Auth) fetchSessionData(r *http.Request, sessionID string) (*googleSessionData, error) {
	url := a.SessionDataURL
	if url == "" {
		url = os.Getenv("OAUTH_SESSION_DATA_URL")
	}
	if url == "" {
		return nil, errors.New("oauth broker is not configured")
	}

	client := a.Client
	if client == nil {
		client = &http.Client{Timeout: 10 * time.Second}
	}

	req, err := http.NewRequestWithContext(r.Context(), http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("X-Session-ID", sessionID)

	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		zap.S().Warnw("oauth broker rejected session", "status", resp.StatusCode)
		return nil, errors.New("session data lookup failed")
	}

	var data googleSessionData
	if err := json.NewDecoder(resp.Body).Decode(&data); err != nil {
		return nil, err
	}
	if data.Email == "" {
		return nil, errors.New("session data missing email")
	}
	return &data, nil
}

package api

import (
	"context"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shaj13/go-guardian/auth"
	"github.com/shaj13/go-guardian/auth/strategies/basic"
	"github.com/shaj13/go-guardian/auth/strategies/bearer"
	"github.com/shaj13/go-guardian/store"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/vowlink/wedding-invites-api/databases"
	"github.com/vowlink/wedding-invites-api/models"
)

// SessionTTL is how long a bearer token stays valid.
const SessionTTL = 7 * 24 * time.Hour

// MiddlewareDB is a struct that holds the databases the auth layer needs
type MiddlewareDB struct {
	Users    databases.UserDatabase
	Sessions databases.SessionDatabase
}

var authenticator auth.Authenticator
var cache store.Cache

// Middleware adds some basic header authentication around accessing the routes
// and injects the authenticated user's ID into the request context.
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		user, err := authenticator.Authenticate(r)
		if err != nil {
			zap.S().Errorw("unauthorized",
				"url", r.URL)
			w.WriteHeader(http.StatusUnauthorized)
			w.Write([]byte(`{"error": "unauthorized"}`))
			return
		}
		zap.S().Debugf("User %s Authenticated\n", user.UserName())
		r = r.WithContext(WithUserID(r.Context(), user.ID()))
		next.ServeHTTP(w, r)
	})
}

// CreateToken mints a bearer token for a basic-auth'd user and persists the
// session so the token survives a process restart.
func (m MiddlewareDB) CreateToken(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	email, _, ok := r.BasicAuth()
	if !ok {
		http.Error(w, "basic auth failed", http.StatusUnauthorized)
		return
	}

	user, err := m.Users.FindByEmail(r.Context(), email)
	if err != nil {
		http.Error(w, "failed to get user by email", http.StatusUnauthorized)
		return
	}

	token := uuid.New().String()
	now := time.Now().UTC()
	err = m.Sessions.InsertOne(r.Context(), models.Session{
		Token:     token,
		UserID:    user.ID,
		ExpiresAt: now.Add(SessionTTL),
		CreatedAt: now,
	})
	if err != nil {
		http.Error(w, "failed to persist session", http.StatusInternalServerError)
		return
	}

	authUser := auth.NewDefaultUser(email, user.ID, nil, nil)
	tokenStrategy := authenticator.Strategy(bearer.CachedStrategyKey)
	auth.Append(tokenStrategy, token, authUser, r)

	response := map[string]string{
		"token":      token,
		"_id":        user.ID,
		"expires_at": now.Add(SessionTTL).Format(time.RFC3339),
	}

	responseBody, err := json.Marshal(response)
	if err != nil {
		http.Error(w, "failed to marshal response", http.StatusInternalServerError)
		return
	}

	w.Write(responseBody)
}

// SetupGoGuardian sets up the go-guardian middleware
func (m MiddlewareDB) SetupGoGuardian() {
	authenticator = auth.New()
	cache = store.NewFIFO(context.Background(), SessionTTL)
	basicStrategy := basic.New(m.ValidateUser, cache)
	tokenStrategy := bearer.New(m.AuthenticateToken, cache)

	authenticator.EnableStrategy(basic.StrategyKey, basicStrategy)
	authenticator.EnableStrategy(bearer.CachedStrategyKey, tokenStrategy)
}

// ValidateUser validates an email+password pair against the user database.
func (m MiddlewareDB) ValidateUser(ctx context.Context, r *http.Request, email, password string) (auth.Info, error) {
	usernameHash := sha256.Sum256([]byte(email))

	user, err := m.Users.FindByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("no matching email found")
	}
	if user.PasswordHash == "" {
		// social-login account, no password to check
		return nil, fmt.Errorf("invalid credentials")
	}

	expectedUsernameHash := sha256.Sum256([]byte(user.Email))
	usernameMatch := subtle.ConstantTimeCompare(usernameHash[:], expectedUsernameHash[:]) == 1

	err = bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password))
	if err != nil {
		return nil, fmt.Errorf("failed to compare password")
	}

	if usernameMatch {
		return auth.NewDefaultUser(email, user.ID, nil, nil), nil
	}
	return nil, fmt.Errorf("invalid credentials")
}

// AuthenticateToken resolves a bearer token through the session database on a
// cache miss, so tokens minted by any login path keep working after restarts.
func (m MiddlewareDB) AuthenticateToken(ctx context.Context, r *http.Request, token string) (auth.Info, error) {
	session, err := m.Sessions.FindByToken(ctx, token)
	if err != nil {
		return nil, fmt.Errorf("invalid session token")
	}
	if session.Expired(time.Now().UTC()) {
		_ = m.Sessions.DeleteByToken(ctx, token)
		return nil, fmt.Errorf("session expired")
	}

	user, err := m.Users.FindByID(ctx, session.UserID)
	if err != nil {
		return nil, fmt.Errorf("session user not found")
	}
	return auth.NewDefaultUser(user.Email, user.ID, nil, nil), nil
}

// AppendToken registers an externally minted token (e.g. the Google login
// path) with the bearer cache.
func AppendToken(token string, userEmail, userID string, r *http.Request) {
	authUser := auth.NewDefaultUser(userEmail, userID, nil, nil)
	tokenStrategy := authenticator.Strategy(bearer.CachedStrategyKey)
	auth.Append(tokenStrategy, token, authUser, r)
}

// RevokeToken revokes a token and deletes the persisted session
func (m MiddlewareDB) RevokeToken(w http.ResponseWriter, r *http.Request) {
	reqToken := r.Header.Get("Authorization")
	splitToken := strings.Split(reqToken, "Bearer ")
	if len(splitToken) < 2 {
		http.Error(w, "missing bearer token", http.StatusBadRequest)
		return
	}
	reqToken = splitToken[1]

	if err := m.Sessions.DeleteByToken(r.Context(), reqToken); err != nil {
		zap.S().With(err).Warn("failed to delete session on logout")
	}
	tokenStrategy := authenticator.Strategy(bearer.CachedStrategyKey)
	auth.Revoke(tokenStrategy, reqToken, r)
	body := fmt.Sprintf(`{"revoked token": "%s"}`, reqToken)
	w.Write([]byte(body))
}

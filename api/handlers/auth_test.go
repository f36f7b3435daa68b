package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/vowlink/wedding-invites-api/api"
	"github.com/vowlink/wedding-invites-api/api/handlers"
	"github.com/vowlink/wedding-invites-api/databases"
	"github.com/vowlink/wedding-invites-api/databases/mocks"
	"github.com/vowlink/wedding-invites-api/models"
)

func TestRegisterHandlerCreatesAccount(t *testing.T) {
	udb := mocks.NewUserDatabase(t)
	h := handlers.Auth{UDB: udb}

	udb.On("InsertOne", mock.Anything, mock.AnythingOfType("models.User")).Return(nil)

	body, _ := json.Marshal(map[string]string{
		"email":    "Couple@Example.com",
		"password": "correct-horse",
		"name":     "The Couple",
	})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/register", bytes.NewReader(body))
	rr := httptest.NewRecorder()
	h.RegisterHandler(rr, req)

	assert.Equal(t, http.StatusCreated, rr.Code)

	var got models.User
	assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
	assert.Equal(t, "couple@example.com", got.Email, "emails normalize to lower case")
	assert.NotEmpty(t, got.ID)
	assert.NotContains(t, rr.Body.String(), "passwordHash")
}

func TestRegisterHandlerShortPassword(t *testing.T) {
	udb := mocks.NewUserDatabase(t)
	h := handlers.Auth{UDB: udb}

	body, _ := json.Marshal(map[string]string{"email": "a@b.c", "password": "short"})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/register", bytes.NewReader(body))
	rr := httptest.NewRecorder()
	h.RegisterHandler(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	udb.AssertNotCalled(t, "InsertOne", mock.Anything, mock.Anything)
}

func TestRegisterHandlerDuplicateEmail(t *testing.T) {
	udb := mocks.NewUserDatabase(t)
	h := handlers.Auth{UDB: udb}

	udb.On("InsertOne", mock.Anything, mock.AnythingOfType("models.User")).Return(databases.ErrDuplicateEmail)

	body, _ := json.Marshal(map[string]string{"email": "a@b.c", "password": "correct-horse"})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/register", bytes.NewReader(body))
	rr := httptest.NewRecorder()
	h.RegisterHandler(rr, req)

	assert.Equal(t, http.StatusConflict, rr.Code)
}

func TestGoogleAuthHandlerUpsertsAndMintsSession(t *testing.T) {
	udb := mocks.NewUserDatabase(t)
	sdb := mocks.NewSessionDatabase(t)

	// the bearer cache must exist before tokens can be appended
	api.MiddlewareDB{Users: udb, Sessions: sdb}.SetupGoGuardian()

	broker := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "sess-abc", r.Header.Get("X-Session-ID"))
		json.NewEncoder(w).Encode(map[string]string{
			"id":            "google-1",
			"email":         "bride@example.com",
			"name":          "Bride",
			"picture":       "https://example.com/p.png",
			"session_token": "tok-123",
		})
	}))
	defer broker.Close()

	udb.On("FindByEmail", mock.Anything, "bride@example.com").Return(nil, databases.ErrNotFound)
	udb.On("InsertOne", mock.Anything, mock.AnythingOfType("models.User")).Return(nil)
	sdb.On("InsertOne", mock.Anything, mock.AnythingOfType("models.Session")).Return(nil)

	h := handlers.Auth{UDB: udb, SDB: sdb, SessionDataURL: broker.URL, Client: broker.Client()}

	body, _ := json.Marshal(map[string]string{"session_id": "sess-abc"})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/google", bytes.NewReader(body))
	rr := httptest.NewRecorder()
	h.GoogleAuthHandler(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)

	var got struct {
		User         models.User `json:"user"`
		SessionToken string      `json:"session_token"`
	}
	assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
	assert.Equal(t, "bride@example.com", got.User.Email)
	assert.Equal(t, "tok-123", got.SessionToken)
}

func TestGoogleAuthHandlerRejectedSession(t *testing.T) {
	udb := mocks.NewUserDatabase(t)
	sdb := mocks.NewSessionDatabase(t)

	broker := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer broker.Close()

	h := handlers.Auth{UDB: udb, SDB: sdb, SessionDataURL: broker.URL, Client: broker.Client()}

	body, _ := json.Marshal(map[string]string{"session_id": "bad"})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/google", bytes.NewReader(body))
	rr := httptest.NewRecorder()
	h.GoogleAuthHandler(rr, req)

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}

func TestMeHandler(t *testing.T) {
	udb := mocks.NewUserDatabase(t)
	h := handlers.Auth{UDB: udb}

	udb.On("FindByID", mock.Anything, "user-1").Return(&models.User{ID: "user-1", Email: "a@b.c"}, nil)

	req := authedRequest(http.MethodGet, "/api/v1/auth/me", nil, "user-1")
	rr := httptest.NewRecorder()
	h.MeHandler(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), `"a@b.c"`)
}

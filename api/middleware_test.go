package api_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"

	"github.com/vowlink/wedding-invites-api/api"
	"github.com/vowlink/wedding-invites-api/databases"
	"github.com/vowlink/wedding-invites-api/databases/mocks"
	"github.com/vowlink/wedding-invites-api/models"
)

func TestValidateUser(t *testing.T) {
	udb := mocks.NewUserDatabase(t)
	sdb := mocks.NewSessionDatabase(t)
	m := api.MiddlewareDB{Users: udb, Sessions: sdb}

	hash, err := bcrypt.GenerateFromPassword([]byte("correct-horse"), bcrypt.MinCost)
	assert.NoError(t, err)
	udb.On("FindByEmail", mock.Anything, "a@b.c").
		Return(&models.User{ID: "user-1", Email: "a@b.c", PasswordHash: string(hash)}, nil)

	info, err := m.ValidateUser(nil, nil, "a@b.c", "correct-horse")
	assert.NoError(t, err)
	assert.Equal(t, "user-1", info.ID())

	_, err = m.ValidateUser(nil, nil, "a@b.c", "wrong")
	assert.Error(t, err)
}

func TestValidateUserRejectsSocialAccounts(t *testing.T) {
	udb := mocks.NewUserDatabase(t)
	m := api.MiddlewareDB{Users: udb}

	udb.On("FindByEmail", mock.Anything, "google@b.c").
		Return(&models.User{ID: "user-2", Email: "google@b.c"}, nil)

	_, err := m.ValidateUser(nil, nil, "google@b.c", "anything")
	assert.Error(t, err)
}

func TestAuthenticateTokenExpired(t *testing.T) {
	udb := mocks.NewUserDatabase(t)
	sdb := mocks.NewSessionDatabase(t)
	m := api.MiddlewareDB{Users: udb, Sessions: sdb}

	sdb.On("FindByToken", mock.Anything, "stale").
		Return(&models.Session{Token: "stale", UserID: "user-1", ExpiresAt: time.Now().Add(-time.Hour)}, nil)
	sdb.On("DeleteByToken", mock.Anything, "stale").Return(nil)

	_, err := m.AuthenticateToken(nil, nil, "stale")
	assert.Error(t, err)
	sdb.AssertCalled(t, "DeleteByToken", mock.Anything, "stale")
}

func TestAuthenticateTokenResolvesUser(t *testing.T) {
	udb := mocks.NewUserDatabase(t)
	sdb := mocks.NewSessionDatabase(t)
	m := api.MiddlewareDB{Users: udb, Sessions: sdb}

	sdb.On("FindByToken", mock.Anything, "fresh").
		Return(&models.Session{Token: "fresh", UserID: "user-1", ExpiresAt: time.Now().Add(time.Hour)}, nil)
	udb.On("FindByID", mock.Anything, "user-1").
		Return(&models.User{ID: "user-1", Email: "a@b.c"}, nil)

	info, err := m.AuthenticateToken(nil, nil, "fresh")
	assert.NoError(t, err)
	assert.Equal(t, "user-1", info.ID())
	assert.Equal(t, "a@b.c", info.UserName())
}

func TestAuthenticateTokenUnknown(t *testing.T) {
	udb := mocks.NewUserDatabase(t)
	sdb := mocks.NewSessionDatabase(t)
	m := api.MiddlewareDB{Users: udb, Sessions: sdb}

	sdb.On("FindByToken", mock.Anything, "bogus").Return(nil, databases.ErrNotFound)

	_, err := m.AuthenticateToken(nil, nil, "bogus")
	assert.Error(t, err)
}

func TestAdminMiddleware(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})
	guarded := api.AdminMiddleware(next)

	t.Run("valid admin token passes", func(t *testing.T) {
		token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
			"sub":   "ops@vowlink.app",
			"scope": "admin",
			"exp":   time.Now().Add(time.Hour).Unix(),
		})
		signed, err := token.SignedString([]byte("test-secret"))
		assert.NoError(t, err)

		req := httptest.NewRequest(http.MethodGet, "/api/v1/admin/stats", nil)
		req.Header.Set("Authorization", "Bearer "+signed)
		rr := httptest.NewRecorder()
		guarded.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusNoContent, rr.Code)
	})

	t.Run("missing scope rejected", func(t *testing.T) {
		token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
			"sub": "ops@vowlink.app",
			"exp": time.Now().Add(time.Hour).Unix(),
		})
		signed, err := token.SignedString([]byte("test-secret"))
		assert.NoError(t, err)

		req := httptest.NewRequest(http.MethodGet, "/api/v1/admin/stats", nil)
		req.Header.Set("Authorization", "Bearer "+signed)
		rr := httptest.NewRecorder()
		guarded.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})

	t.Run("wrong key rejected", func(t *testing.T) {
		token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
			"sub":   "ops@vowlink.app",
			"scope": "admin",
			"exp":   time.Now().Add(time.Hour).Unix(),
		})
		signed, err := token.SignedString([]byte("other-secret"))
		assert.NoError(t, err)

		req := httptest.NewRequest(http.MethodGet, "/api/v1/admin/stats", nil)
		req.Header.Set("Authorization", "Bearer "+signed)
		rr := httptest.NewRecorder()
		guarded.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})

	t.Run("no token rejected", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/admin/stats", nil)
		rr := httptest.NewRecorder()
		guarded.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})
}

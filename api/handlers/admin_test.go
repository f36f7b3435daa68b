package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"

	"github.com/vowlink/wedding-invites-api/api/handlers"
	"github.com/vowlink/wedding-invites-api/databases/mocks"
)

func TestAdminLoginHandler(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("ops-password"), bcrypt.MinCost)
	assert.NoError(t, err)
	t.Setenv("ADMIN_EMAIL", "ops@vowlink.app")
	t.Setenv("ADMIN_PASSWORD_HASH", string(hash))
	t.Setenv("JWT_SECRET", "test-secret")

	h := handlers.Admin{}

	t.Run("valid credentials get a token", func(t *testing.T) {
		body, _ := json.Marshal(map[string]string{"email": "ops@vowlink.app", "password": "ops-password"})
		req := httptest.NewRequest(http.MethodPost, "/api/v1/admin/login", bytes.NewReader(body))
		rr := httptest.NewRecorder()
		h.AdminLoginHandler(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)

		var got map[string]string
		assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
		assert.NotEmpty(t, got["token"])
	})

	t.Run("wrong password rejected", func(t *testing.T) {
		body, _ := json.Marshal(map[string]string{"email": "ops@vowlink.app", "password": "nope"})
		req := httptest.NewRequest(http.MethodPost, "/api/v1/admin/login", bytes.NewReader(body))
		rr := httptest.NewRecorder()
		h.AdminLoginHandler(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})
}

func TestAdminStatsHandler(t *testing.T) {
	udb := mocks.NewUserDatabase(t)
	idb := mocks.NewInvitationDatabase(t)
	tdb := mocks.NewTemplateDatabase(t)
	h := handlers.Admin{UDB: udb, IDB: idb, TDB: tdb}

	udb.On("CountDocuments", mock.Anything).Return(int64(10), nil)
	idb.On("CountDocuments", mock.Anything).Return(int64(25), nil)
	tdb.On("CountDocuments", mock.Anything).Return(int64(4), nil)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/admin/stats", nil)
	rr := httptest.NewRecorder()
	h.AdminStatsHandler(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)

	var got map[string]int64
	assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
	assert.EqualValues(t, 25, got["invitations"])
}

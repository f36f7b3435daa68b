package handlers_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/vowlink/wedding-invites-api/api/handlers"
	"github.com/vowlink/wedding-invites-api/config"
	"github.com/vowlink/wedding-invites-api/databases"
	"github.com/vowlink/wedding-invites-api/databases/mocks"
	"github.com/vowlink/wedding-invites-api/models"
)

func testApp(t *testing.T) (*handlers.App, *mocks.InvitationDatabase, *mocks.TemplateDatabase) {
	idb := mocks.NewInvitationDatabase(t)
	tdb := mocks.NewTemplateDatabase(t)
	a := &handlers.App{
		Config:      config.Config{BaseURL: "https://vowlink.app"},
		Users:       mocks.NewUserDatabase(t),
		Sessions:    mocks.NewSessionDatabase(t),
		Templates:   tdb,
		Invitations: idb,
		Payments:    mocks.NewPaymentDatabase(t),
	}
	a.Router = a.New()
	return a, idb, tdb
}

func TestHealthCheckRoute(t *testing.T) {
	a, _, _ := testApp(t)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rr := httptest.NewRecorder()
	a.Router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, `{"alive":true}`, rr.Body.String())
}

func TestProtectedRouteRejectsAnonymous(t *testing.T) {
	a, _, _ := testApp(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/invitations", nil)
	rr := httptest.NewRecorder()
	a.Router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
	assert.Contains(t, rr.Body.String(), "unauthorized")
}

func TestPublicInvitationRouteIsOpen(t *testing.T) {
	a, idb, tdb := testApp(t)

	idb.On("FindPublishedBySlug", mock.Anything, "abc123XYZ-_").
		Return(&models.Invitation{ID: "inv-1", TemplateID: "classic-elegance", URLSlug: "abc123XYZ-_", IsPublished: true}, nil)
	tdb.On("FindByID", mock.Anything, "classic-elegance").Return(&models.Template{ID: "classic-elegance"}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/public/invitations/abc123XYZ-_", nil)
	rr := httptest.NewRecorder()
	a.Router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), `"inv-1"`)
}

func TestPublicInvitationRouteUnknownSlug(t *testing.T) {
	a, idb, _ := testApp(t)

	idb.On("FindPublishedBySlug", mock.Anything, "nope").Return(nil, databases.ErrNotFound)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/public/invitations/nope", nil)
	rr := httptest.NewRecorder()
	a.Router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestAdminRouteRequiresJWT(t *testing.T) {
	a, _, _ := testApp(t)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/init-templates", nil)
	rr := httptest.NewRecorder()
	a.Router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}

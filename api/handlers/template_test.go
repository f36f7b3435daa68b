package handlers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/vowlink/wedding-invites-api/api/handlers"
	"github.com/vowlink/wedding-invites-api/databases"
	"github.com/vowlink/wedding-invites-api/databases/mocks"
	"github.com/vowlink/wedding-invites-api/models"
)

func TestTemplateListHandler(t *testing.T) {
	tdb := mocks.NewTemplateDatabase(t)
	h := handlers.Template{DB: tdb}

	tdb.On("FindAll", mock.Anything).Return(models.DefaultTemplates(), nil)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/templates", nil)
	rr := httptest.NewRecorder()
	h.TemplateListHandler(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)

	var got []models.Template
	assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
	assert.Len(t, got, 4)
	assert.Equal(t, "classic-elegance", got[0].ID)
}

func TestTemplateByIDHandlerNotFound(t *testing.T) {
	tdb := mocks.NewTemplateDatabase(t)
	h := handlers.Template{DB: tdb}

	tdb.On("FindByID", mock.Anything, "nope").Return(nil, databases.ErrNotFound)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/templates/nope", nil)
	req = mux.SetURLVars(req, map[string]string{"template_id": "nope"})
	rr := httptest.NewRecorder()
	h.TemplateByIDHandler(rr, req)

	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestTemplateCreateHandlerRequiresPremium(t *testing.T) {
	tdb := mocks.NewTemplateDatabase(t)
	udb := mocks.NewUserDatabase(t)
	h := handlers.Template{DB: tdb, UDB: udb}

	udb.On("FindByID", mock.Anything, "user-1").Return(&models.User{ID: "user-1", IsPremium: false}, nil)

	body, _ := json.Marshal(map[string]string{"name": "My Design", "html_content": "<div/>"})
	req := authedRequest(http.MethodPost, "/api/v1/templates", body, "user-1")
	rr := httptest.NewRecorder()
	h.TemplateCreateHandler(rr, req)

	assert.Equal(t, http.StatusForbidden, rr.Code)
	assert.Contains(t, rr.Body.String(), "premium subscription required")
	tdb.AssertNotCalled(t, "InsertOne", mock.Anything, mock.Anything)
}

func TestTemplateCreateHandlerPremium(t *testing.T) {
	tdb := mocks.NewTemplateDatabase(t)
	udb := mocks.NewUserDatabase(t)
	h := handlers.Template{DB: tdb, UDB: udb}

	udb.On("FindByID", mock.Anything, "user-1").Return(&models.User{ID: "user-1", IsPremium: true}, nil)
	tdb.On("InsertOne", mock.Anything, mock.AnythingOfType("models.Template")).Return(nil)

	body, _ := json.Marshal(map[string]string{"name": "My Design", "html_content": "<div>{{bride_name}}</div>"})
	req := authedRequest(http.MethodPost, "/api/v1/templates", body, "user-1")
	rr := httptest.NewRecorder()
	h.TemplateCreateHandler(rr, req)

	assert.Equal(t, http.StatusCreated, rr.Code)

	var got models.Template
	assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
	assert.Equal(t, "user-1", got.CreatedBy)
	assert.True(t, got.IsPremium)
}

func TestGenerateTemplateHandlerAppliesPalette(t *testing.T) {
	tdb := mocks.NewTemplateDatabase(t)
	udb := mocks.NewUserDatabase(t)
	h := handlers.Template{DB: tdb, UDB: udb}

	udb.On("FindByID", mock.Anything, "user-1").Return(&models.User{ID: "user-1", IsPremium: true}, nil)
	tdb.On("InsertOne", mock.Anything, mock.AnythingOfType("models.Template")).Return(nil)

	body, _ := json.Marshal(map[string]string{
		"style_prompt":  "midnight garden",
		"primary_color": "#123456",
	})
	req := authedRequest(http.MethodPost, "/api/v1/templates/generate-ai", body, "user-1")
	rr := httptest.NewRecorder()
	h.GenerateTemplateHandler(rr, req)

	assert.Equal(t, http.StatusCreated, rr.Code)

	var got models.Template
	assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
	assert.Equal(t, "generated", got.Category)
	assert.Contains(t, got.CSSContent, "#123456")
	assert.Contains(t, got.HTMLContent, "{{qr_code}}")
}

func TestInitTemplatesHandlerSeedsOnce(t *testing.T) {
	tdb := mocks.NewTemplateDatabase(t)
	h := handlers.Template{DB: tdb}

	tdb.On("CountDocuments", mock.Anything).Return(int64(0), nil)
	tdb.On("InsertMany", mock.Anything, mock.AnythingOfType("[]models.Template")).Return(nil)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/init-templates", nil)
	rr := httptest.NewRecorder()
	h.InitTemplatesHandler(rr, req)

	assert.Equal(t, http.StatusCreated, rr.Code)
	assert.Contains(t, rr.Body.String(), "templates initialized")
}

func TestInitTemplatesHandlerIdempotent(t *testing.T) {
	tdb := mocks.NewTemplateDatabase(t)
	h := handlers.Template{DB: tdb}

	tdb.On("CountDocuments", mock.Anything).Return(int64(4), nil)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/init-templates", nil)
	rr := httptest.NewRecorder()
	h.InitTemplatesHandler(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "already initialized")
	tdb.AssertNotCalled(t, "InsertMany", mock.Anything, mock.Anything)
}

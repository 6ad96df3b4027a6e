package handlers_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	profileRepo "caredesk/database/repository/profile"
	"caredesk/handlers"
	"caredesk/middleware"
	"caredesk/models"
	"caredesk/services/access"
	"caredesk/services/profile"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubVerifier struct {
	principal models.Principal
}

func (s *stubVerifier) Verify(_ context.Context, _ string) (models.Principal, error) {
	return s.principal, nil
}

type memProfileRepo struct {
	profiles map[string]*models.Profile
}

func (m *memProfileRepo) GetByID(id string) (*models.Profile, error) {
	prof, ok := m.profiles[id]
	if !ok {
		return nil, profileRepo.ErrProfileNotFound
	}
	return prof, nil
}

func (m *memProfileRepo) GetAll() ([]models.Profile, error) {
	out := make([]models.Profile, 0, len(m.profiles))
	for _, p := range m.profiles {
		out = append(out, *p)
	}
	return out, nil
}

func (m *memProfileRepo) Create(prof *models.Profile) error {
	if _, exists := m.profiles[prof.ID]; exists {
		return profileRepo.ErrProfileExists
	}
	m.profiles[prof.ID] = prof
	return nil
}

func (m *memProfileRepo) UpdateRole(id string, role string) error {
	prof, ok := m.profiles[id]
	if !ok {
		return profileRepo.ErrProfileNotFound
	}
	prof.Role = role
	return nil
}

func newProfileRouter(principal models.Principal, repo *memProfileRepo) *gin.Engine {
	gin.SetMode(gin.TestMode)
	svc := &profile.DefaultProfileService{Repo: repo}
	resolver := &profile.DefaultRoleResolver{Repo: repo}
	handler := handlers.NewProfileHandler(svc)

	r := gin.New()
	api := r.Group("/api/profile")
	api.Use(middleware.AuthMiddleware(&stubVerifier{principal: principal}))
	api.Use(middleware.Authorize(resolver, nil))
	api.POST("", handler.CreateProfileHandler)
	api.GET("", handler.GetMyProfileHandler)
	return r
}

func TestCreateProfileNewUser(t *testing.T) {
	repo := &memProfileRepo{profiles: map[string]*models.Profile{}}
	r := newProfileRouter(models.Principal{ID: "u1", Email: "ada@example.com"}, repo)

	body := strings.NewReader(`{"firstName":"Ada","lastName":"L"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/profile", body)
	req.Header.Set("Authorization", "Bearer token")
	req.Header.Set("Content-Type", "application/json")
	res := httptest.NewRecorder()
	r.ServeHTTP(res, req)

	require.Equal(t, http.StatusCreated, res.Code)
	created := repo.profiles["u1"]
	require.NotNil(t, created)
	assert.Equal(t, string(access.RoleViewer), created.Role)
}

func TestCreateProfileConflict(t *testing.T) {
	repo := &memProfileRepo{profiles: map[string]*models.Profile{
		"u1": {ID: "u1", FirstName: "Ada", LastName: "L", Role: "viewer"},
	}}
	r := newProfileRouter(models.Principal{ID: "u1"}, repo)

	body := strings.NewReader(`{"firstName":"Eve","lastName":"M"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/profile", body)
	req.Header.Set("Authorization", "Bearer token")
	req.Header.Set("Content-Type", "application/json")
	res := httptest.NewRecorder()
	r.ServeHTTP(res, req)

	assert.Equal(t, http.StatusConflict, res.Code)
	assert.Equal(t, "Ada", repo.profiles["u1"].FirstName)
}

func TestGetMyProfileNeedsSetup(t *testing.T) {
	repo := &memProfileRepo{profiles: map[string]*models.Profile{}}
	r := newProfileRouter(models.Principal{ID: "new-user"}, repo)

	req := httptest.NewRequest(http.MethodGet, "/api/profile", nil)
	req.Header.Set("Authorization", "Bearer token")
	res := httptest.NewRecorder()
	r.ServeHTTP(res, req)

	assert.Equal(t, http.StatusOK, res.Code)
	assert.Contains(t, res.Body.String(), `"needsSetup":true`)
}

func TestGetMyProfileResolvedRole(t *testing.T) {
	repo := &memProfileRepo{profiles: map[string]*models.Profile{
		"u1": {ID: "u1", FirstName: "Ada", LastName: "L", Role: "therapist"},
	}}
	r := newProfileRouter(models.Principal{ID: "u1"}, repo)

	req := httptest.NewRequest(http.MethodGet, "/api/profile", nil)
	req.Header.Set("Authorization", "Bearer token")
	res := httptest.NewRecorder()
	r.ServeHTTP(res, req)

	assert.Equal(t, http.StatusOK, res.Code)
	assert.Contains(t, res.Body.String(), `"role":"therapist"`)
	assert.Contains(t, res.Body.String(), `"roleDisplayName":"Billing"`)
}

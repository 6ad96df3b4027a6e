package middleware_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"caredesk/middleware"
	"caredesk/models"
	"caredesk/services/access"
	"caredesk/services/profile"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubVerifier struct {
	principal models.Principal
	err       error
}

func (s *stubVerifier) Verify(_ context.Context, _ string) (models.Principal, error) {
	if s.err != nil {
		return models.Principal{}, s.err
	}
	return s.principal, nil
}

type stubResolver struct {
	resolution profile.Resolution
	err        error
}

func (s *stubResolver) Resolve(_ context.Context, _ string) (profile.Resolution, error) {
	if s.err != nil {
		return profile.Resolution{}, s.err
	}
	return s.resolution, nil
}

func newTestRouter(verifier *stubVerifier, resolver *stubResolver, audit *access.AuditTrail, required []access.Permission, handlerRan *bool) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/protected",
		middleware.AuthMiddleware(verifier),
		middleware.Authorize(resolver, audit, required...),
		func(c *gin.Context) {
			*handlerRan = true
			c.JSON(http.StatusOK, gin.H{"ok": true})
		})
	return r
}

func doRequest(r *gin.Engine, withToken bool) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if withToken {
		req.Header.Set("Authorization", "Bearer some-token")
	}
	res := httptest.NewRecorder()
	r.ServeHTTP(res, req)
	return res
}

func TestAuthorizeMissingHeader(t *testing.T) {
	handlerRan := false
	r := newTestRouter(&stubVerifier{}, &stubResolver{}, nil, nil, &handlerRan)

	res := doRequest(r, false)
	assert.Equal(t, http.StatusUnauthorized, res.Code)
	assert.Contains(t, res.Body.String(), "unauthenticated")
	assert.False(t, handlerRan)
}

func TestAuthorizeRejectedCredential(t *testing.T) {
	handlerRan := false
	verifier := &stubVerifier{err: access.ErrUnauthenticated}
	r := newTestRouter(verifier, &stubResolver{}, nil, nil, &handlerRan)

	res := doRequest(r, true)
	assert.Equal(t, http.StatusUnauthorized, res.Code)
	assert.False(t, handlerRan)
}

func TestAuthorizeInsufficientPermissions(t *testing.T) {
	// A therapist asking for manage_users must be stopped before the
	// handler runs, and the denial must land on the audit trail.
	mr := miniredis.RunT(t)
	audit := access.NewAuditTrail(redis.NewClient(&redis.Options{Addr: mr.Addr()}))

	handlerRan := false
	verifier := &stubVerifier{principal: models.Principal{ID: "u1", Email: "t@example.com"}}
	resolver := &stubResolver{resolution: profile.Resolution{Role: access.RoleTherapist}}
	r := newTestRouter(verifier, resolver, audit, []access.Permission{access.PermManageUsers}, &handlerRan)

	res := doRequest(r, true)
	assert.Equal(t, http.StatusForbidden, res.Code)
	assert.Contains(t, res.Body.String(), "insufficient_permissions")
	assert.False(t, handlerRan)

	events, err := audit.Recent(context.Background(), 10)
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, "u1", events[0].PrincipalID)
	assert.Equal(t, access.RoleTherapist, events[0].Role)
	assert.Equal(t, []access.Permission{access.PermManageUsers}, events[0].Permissions)
}

func TestAuthorizeGranted(t *testing.T) {
	handlerRan := false
	verifier := &stubVerifier{principal: models.Principal{ID: "u1"}}
	resolver := &stubResolver{resolution: profile.Resolution{Role: access.RoleAdmin}}
	r := newTestRouter(verifier, resolver, nil, []access.Permission{access.PermManageUsers}, &handlerRan)

	res := doRequest(r, true)
	assert.Equal(t, http.StatusOK, res.Code)
	assert.True(t, handlerRan)
}

func TestAuthorizeEmptyRequirementAdmitsAnyAuthenticated(t *testing.T) {
	// The self-service profile-creation endpoint relies on this: a brand-new
	// principal with no profile still gets through when nothing is required.
	handlerRan := false
	verifier := &stubVerifier{principal: models.Principal{ID: "new-user"}}
	resolver := &stubResolver{err: access.ErrProfileIncomplete}
	r := newTestRouter(verifier, resolver, nil, nil, &handlerRan)

	res := doRequest(r, true)
	assert.Equal(t, http.StatusOK, res.Code)
	assert.True(t, handlerRan)
}

func TestAuthorizeProfileIncompleteWithRequirements(t *testing.T) {
	handlerRan := false
	verifier := &stubVerifier{principal: models.Principal{ID: "new-user"}}
	resolver := &stubResolver{err: access.ErrProfileIncomplete}
	r := newTestRouter(verifier, resolver, nil, []access.Permission{access.PermViewClients}, &handlerRan)

	res := doRequest(r, true)
	assert.Equal(t, http.StatusForbidden, res.Code)
	assert.Contains(t, res.Body.String(), "profile_incomplete")
	assert.False(t, handlerRan)
}

func TestAuthorizeResolverFailureIsInternal(t *testing.T) {
	handlerRan := false
	verifier := &stubVerifier{principal: models.Principal{ID: "u1"}}
	resolver := &stubResolver{err: errors.New("boom")}
	r := newTestRouter(verifier, resolver, nil, []access.Permission{access.PermViewClients}, &handlerRan)

	res := doRequest(r, true)
	assert.Equal(t, http.StatusInternalServerError, res.Code)
	assert.Contains(t, res.Body.String(), "internal")
	assert.NotContains(t, res.Body.String(), "boom")
	assert.False(t, handlerRan)
}

func TestAuthorizeThreadsIdentityThroughRequestContext(t *testing.T) {
	gin.SetMode(gin.TestMode)
	verifier := &stubVerifier{principal: models.Principal{ID: "u1", Email: "a@example.com"}}
	resolver := &stubResolver{resolution: profile.Resolution{Role: access.RoleAssociate, NeedsSetup: true}}

	var got access.Identity
	var ok bool
	r := gin.New()
	r.GET("/protected",
		middleware.AuthMiddleware(verifier),
		middleware.Authorize(resolver, nil),
		func(c *gin.Context) {
			got, ok = access.IdentityFromContext(c.Request.Context())
			c.Status(http.StatusOK)
		})

	res := doRequest(r, true)
	require.Equal(t, http.StatusOK, res.Code)
	require.True(t, ok)
	assert.Equal(t, "u1", got.Principal.ID)
	assert.Equal(t, access.RoleAssociate, got.Role)
	assert.True(t, got.NeedsSetup)
}

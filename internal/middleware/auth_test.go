package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"hrms/backend/foundation/web"
	"hrms/backend/internal/auth"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newProtectedApp(t *testing.T, a *auth.Auth, role ...string) *web.App {
	t.Helper()

	app := web.NewApp()
	app.Get("/protected", func(c *web.Context) error {
		claims, err := auth.GetClaims(c.Ctx)
		if err != nil {
			return c.RespondError(err)
		}
		return c.Respond(map[string]interface{}{
			"data":   claims.UserId,
			"status": true,
		}, http.StatusOK)
	}, Authenticate(a, role...))

	return app
}

func TestAuthenticateMissingToken(t *testing.T) {
	a := auth.New("test-key", nil)
	app := newProtectedApp(t, a)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	app.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthenticateMalformedHeader(t *testing.T) {
	a := auth.New("test-key", nil)
	app := newProtectedApp(t, a)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Token abc")
	app.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthenticateBadToken(t *testing.T) {
	a := auth.New("test-key", nil)
	app := newProtectedApp(t, a)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer not-a-token")
	app.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthenticateWrongRoleIsForbidden(t *testing.T) {
	a := auth.New("test-key", nil)
	app := newProtectedApp(t, a, auth.RoleAdmin)

	access, _, err := a.GenerateTokens(5, auth.RoleEmployee)
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+access)
	app.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestAuthenticateAllowedRole(t *testing.T) {
	a := auth.New("test-key", nil)
	app := newProtectedApp(t, a, auth.RoleAdmin, auth.RoleManager)

	access, _, err := a.GenerateTokens(5, auth.RoleManager)
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+access)
	app.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"data":5`)
}

func TestAuthenticateNoRoleRestriction(t *testing.T) {
	a := auth.New("test-key", nil)
	app := newProtectedApp(t, a)

	access, _, err := a.GenerateTokens(9, auth.RoleEmployee)
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+access)
	app.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAuthenticateRefreshTokenRejected(t *testing.T) {
	a := auth.New("test-key", nil)
	app := newProtectedApp(t, a)

	_, refresh, err := a.GenerateTokens(9, auth.RoleEmployee)
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+refresh)
	app.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

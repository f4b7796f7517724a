package auth

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"hrms/backend/foundation/web"
	"hrms/backend/internal/auth"
	"hrms/backend/internal/entity"
	"hrms/backend/internal/middleware"
	"hrms/backend/internal/repository/postgres/user"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type userMock struct {
	registerReq *user.RegisterRequest

	account    entity.User
	accountErr error
}

func (m *userMock) GetByEmail(ctx context.Context, email string) (entity.User, error) {
	if m.accountErr != nil {
		return entity.User{}, m.accountErr
	}
	return m.account, nil
}

func (m *userMock) Register(ctx context.Context, request user.RegisterRequest) (entity.User, error) {
	m.registerReq = &request
	role := auth.RoleEmployee
	if request.Role != nil {
		role = *request.Role
	}
	return entity.User{Name: request.Name, Email: request.Email, Role: &role}, nil
}

func str(s string) *string { return &s }

func newApp(mock *userMock, a *auth.Auth) *web.App {
	controller := NewController(mock, a)

	app := web.NewApp()
	app.Post("/api/v1/auth/login", controller.Login)
	app.Post("/api/v1/auth/register", controller.Register)
	app.Post("/api/v1/auth/refresh", controller.RefreshToken)
	app.Post("/api/v1/auth/logout", controller.Logout)
	return app
}

func doJSON(app *web.App, method, target, body string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	app.ServeHTTP(rec, req)
	return rec
}

func testAccount(t *testing.T, password, role string) entity.User {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)

	hashStr := string(hash)
	active := true
	u := entity.User{
		Name:     str("Aziz"),
		Email:    str("aziz@hrms.local"),
		Password: &hashStr,
		Role:     &role,
		IsActive: &active,
	}
	u.ID = 7
	return u
}

func TestLoginSuccess(t *testing.T) {
	a := auth.New("test-key", nil)
	mock := &userMock{account: testAccount(t, "secret123", auth.RoleAdmin)}
	app := newApp(mock, a)

	rec := doJSON(app, http.MethodPost, "/api/v1/auth/login",
		`{"email":"aziz@hrms.local","password":"secret123"}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "access_token")
	assert.Contains(t, rec.Body.String(), "refresh_token")
	assert.NotContains(t, rec.Body.String(), "password")
}

func TestLoginWrongPassword(t *testing.T) {
	a := auth.New("test-key", nil)
	mock := &userMock{account: testAccount(t, "secret123", auth.RoleAdmin)}
	app := newApp(mock, a)

	rec := doJSON(app, http.MethodPost, "/api/v1/auth/login",
		`{"email":"aziz@hrms.local","password":"wrong"}`)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "invalid credentials")
}

func TestLoginUnknownEmail(t *testing.T) {
	a := auth.New("test-key", nil)
	mock := &userMock{accountErr: web.NewRequestError(assert.AnError, http.StatusUnauthorized)}
	app := newApp(mock, a)

	rec := doJSON(app, http.MethodPost, "/api/v1/auth/login",
		`{"email":"ghost@hrms.local","password":"secret123"}`)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestLoginDeactivatedAccount(t *testing.T) {
	a := auth.New("test-key", nil)
	account := testAccount(t, "secret123", auth.RoleAdmin)
	inactive := false
	account.IsActive = &inactive
	mock := &userMock{account: account}
	app := newApp(mock, a)

	rec := doJSON(app, http.MethodPost, "/api/v1/auth/login",
		`{"email":"aziz@hrms.local","password":"secret123"}`)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestLoginMissingFields(t *testing.T) {
	a := auth.New("test-key", nil)
	mock := &userMock{}
	app := newApp(mock, a)

	rec := doJSON(app, http.MethodPost, "/api/v1/auth/login", `{"email":"aziz@hrms.local"}`)

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

func TestRegisterDefaultsRole(t *testing.T) {
	a := auth.New("test-key", nil)
	mock := &userMock{}
	app := newApp(mock, a)

	rec := doJSON(app, http.MethodPost, "/api/v1/auth/register",
		`{"name":"Aziz","email":"aziz@hrms.local","password":"secret123"}`)

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), "access_token")
	assert.Contains(t, rec.Body.String(), auth.RoleEmployee)
	require.NotNil(t, mock.registerReq)
	assert.Nil(t, mock.registerReq.Role)
}

func TestRefreshTokenIssuesNewPair(t *testing.T) {
	a := auth.New("test-key", nil)
	mock := &userMock{}
	app := newApp(mock, a)

	_, refresh, err := a.GenerateTokens(7, auth.RoleManager)
	require.NoError(t, err)

	rec := doJSON(app, http.MethodPost, "/api/v1/auth/refresh",
		`{"refresh_token":"`+refresh+`"}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "access_token")
}

func TestRefreshRejectsAccessToken(t *testing.T) {
	a := auth.New("test-key", nil)
	mock := &userMock{}
	app := newApp(mock, a)

	access, _, err := a.GenerateTokens(7, auth.RoleManager)
	require.NoError(t, err)

	rec := doJSON(app, http.MethodPost, "/api/v1/auth/refresh",
		`{"refresh_token":"`+access+`"}`)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

// The refresh route sits behind Authenticate like every other
// token-bearing endpoint, so a request without a bearer header never
// reaches the handler.
func TestRefreshRequiresBearer(t *testing.T) {
	a := auth.New("test-key", nil)
	controller := NewController(&userMock{}, a)

	app := web.NewApp()
	app.Post("/api/v1/auth/refresh", controller.RefreshToken, middleware.Authenticate(a))

	access, refresh, err := a.GenerateTokens(7, auth.RoleManager)
	require.NoError(t, err)

	// No Authorization header: 401 even with a valid refresh token in the
	// body, and 401 (not 422) with no body at all.
	rec := doJSON(app, http.MethodPost, "/api/v1/auth/refresh",
		`{"refresh_token":"`+refresh+`"}`)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = doJSON(app, http.MethodPost, "/api/v1/auth/refresh", "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	// With the bearer header the handler runs and rotates the pair.
	authed := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/refresh",
		strings.NewReader(`{"refresh_token":"`+refresh+`"}`))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+access)
	app.ServeHTTP(authed, req)

	assert.Equal(t, http.StatusOK, authed.Code)
	assert.Contains(t, authed.Body.String(), "access_token")
}

func TestLogoutWithoutToken(t *testing.T) {
	a := auth.New("test-key", nil)
	mock := &userMock{}
	app := newApp(mock, a)

	rec := doJSON(app, http.MethodPost, "/api/v1/auth/logout", "")

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

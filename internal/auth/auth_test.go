package auth

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenRoundtrip(t *testing.T) {
	a := New("test-signing-key", nil)
	ctx := context.Background()

	access, refresh, err := a.GenerateTokens(7, RoleAdmin)
	require.NoError(t, err)
	require.NotEmpty(t, access)
	require.NotEmpty(t, refresh)

	claims, err := a.ValidateToken(ctx, access)
	require.NoError(t, err)
	assert.Equal(t, 7, claims.UserId)
	assert.Equal(t, RoleAdmin, claims.Role)
	assert.Equal(t, TokenAccess, claims.TokenType)
}

func TestRefreshTokenIsNotAccess(t *testing.T) {
	a := New("test-signing-key", nil)
	ctx := context.Background()

	_, refresh, err := a.GenerateTokens(7, RoleEmployee)
	require.NoError(t, err)

	_, err = a.ValidateToken(ctx, refresh)
	require.Error(t, err)

	claims, err := a.VerifyRefresh(ctx, refresh)
	require.NoError(t, err)
	assert.Equal(t, TokenRefresh, claims.TokenType)
}

func TestAccessTokenIsNotRefresh(t *testing.T) {
	a := New("test-signing-key", nil)
	ctx := context.Background()

	access, _, err := a.GenerateTokens(7, RoleEmployee)
	require.NoError(t, err)

	_, err = a.VerifyRefresh(ctx, access)
	require.Error(t, err)
}

func TestExpiredToken(t *testing.T) {
	a := New("test-signing-key", nil)
	a.AccessTTL = -time.Minute
	ctx := context.Background()

	access, _, err := a.GenerateTokens(7, RoleManager)
	require.NoError(t, err)

	_, err = a.ValidateToken(ctx, access)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "expired")
}

func TestWrongKeyRejected(t *testing.T) {
	a := New("test-signing-key", nil)
	other := New("another-key", nil)
	ctx := context.Background()

	access, _, err := a.GenerateTokens(7, RoleAdmin)
	require.NoError(t, err)

	_, err = other.ValidateToken(ctx, access)
	require.Error(t, err)
}

func TestAuthorized(t *testing.T) {
	claims := Claims{Role: RoleManager}

	assert.True(t, claims.Authorized(RoleAdmin, RoleManager))
	assert.False(t, claims.Authorized(RoleAdmin))
	assert.False(t, claims.Authorized())
}

func TestGetClaims(t *testing.T) {
	claims := Claims{UserId: 3, Role: RoleEmployee}
	ctx := context.WithValue(context.Background(), Key, claims)

	got, err := GetClaims(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, got.UserId)

	_, err = GetClaims(context.Background())
	require.Error(t, err)
}

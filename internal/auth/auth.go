// Package auth issues and verifies the bearer tokens protecting the API and
// owns the role names routes authorize against.
package auth

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"net/http"
	"time"

	"hrms/backend/foundation/web"

	"github.com/dgrijalva/jwt-go"
	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
)

const (
	RoleAdmin    = "Admin"
	RoleManager  = "Manager"
	RoleEmployee = "Employee"
)

// Roles lists every valid user role.
var Roles = []string{RoleAdmin, RoleManager, RoleEmployee}

const (
	TokenAccess  = "access"
	TokenRefresh = "refresh"
)

type ctxKey int

// Key is how claims are stored/retrieved on a request context.
const Key ctxKey = 1

type Claims struct {
	jwt.StandardClaims
	UserId    int    `json:"user_id"`
	Role      string `json:"role"`
	TokenType string `json:"token_type"`
}

// Authorized reports whether the claim's role is in the allowed set.
func (c Claims) Authorized(roles ...string) bool {
	for _, role := range roles {
		if c.Role == role {
			return true
		}
	}
	return false
}

// GetClaims pulls the authenticated claims off a request context.
func GetClaims(ctx context.Context) (Claims, error) {
	claims, ok := ctx.Value(Key).(Claims)
	if !ok {
		return Claims{}, web.NewRequestError(errors.New("claims missing from context"), http.StatusUnauthorized)
	}
	return claims, nil
}

// Auth signs, verifies and revokes tokens. Revoked tokens are remembered in
// redis until they would have expired anyway.
type Auth struct {
	key        []byte
	redis      *redis.Client
	AccessTTL  time.Duration
	RefreshTTL time.Duration
}

func New(key string, redisClient *redis.Client) *Auth {
	return &Auth{
		key:        []byte(key),
		redis:      redisClient,
		AccessTTL:  time.Hour,
		RefreshTTL: 7 * 24 * time.Hour,
	}
}

// GenerateTokens issues an access/refresh pair for the user.
func (a *Auth) GenerateTokens(userID int, role string) (string, string, error) {
	access, err := a.generate(TokenAccess, a.AccessTTL, userID, role)
	if err != nil {
		return "", "", errors.Wrap(err, "signing access token")
	}

	refresh, err := a.generate(TokenRefresh, a.RefreshTTL, userID, role)
	if err != nil {
		return "", "", errors.Wrap(err, "signing refresh token")
	}

	return access, refresh, nil
}

func (a *Auth) generate(tokenType string, ttl time.Duration, userID int, role string) (string, error) {
	now := time.Now()
	claims := Claims{
		StandardClaims: jwt.StandardClaims{
			IssuedAt:  now.Unix(),
			ExpiresAt: now.Add(ttl).Unix(),
		},
		UserId:    userID,
		Role:      role,
		TokenType: tokenType,
	}

	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(a.key)
}

// ValidateToken verifies an access token's signature, expiry and revocation
// state.
func (a *Auth) ValidateToken(ctx context.Context, tokenStr string) (Claims, error) {
	claims, err := a.parse(tokenStr)
	if err != nil {
		return Claims{}, err
	}

	if claims.TokenType != TokenAccess {
		return Claims{}, errors.New("token is not an access token")
	}

	if err := a.checkRevoked(ctx, tokenStr); err != nil {
		return Claims{}, err
	}

	return claims, nil
}

// VerifyRefresh verifies a refresh token the same way.
func (a *Auth) VerifyRefresh(ctx context.Context, tokenStr string) (Claims, error) {
	claims, err := a.parse(tokenStr)
	if err != nil {
		return Claims{}, err
	}

	if claims.TokenType != TokenRefresh {
		return Claims{}, errors.New("token is not a refresh token")
	}

	if err := a.checkRevoked(ctx, tokenStr); err != nil {
		return Claims{}, err
	}

	return claims, nil
}

// Revoke denylists a still-valid token for the remainder of its lifetime.
func (a *Auth) Revoke(ctx context.Context, tokenStr string) error {
	claims, err := a.parse(tokenStr)
	if err != nil {
		return err
	}

	if a.redis == nil {
		return nil
	}

	ttl := time.Until(time.Unix(claims.ExpiresAt, 0))
	if ttl <= 0 {
		return nil
	}

	if err := a.redis.Set(ctx, revokedKey(tokenStr), 1, ttl).Err(); err != nil {
		return errors.Wrap(err, "storing revoked token")
	}

	return nil
}

func (a *Auth) parse(tokenStr string) (Claims, error) {
	var claims Claims

	_, err := jwt.ParseWithClaims(tokenStr, &claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return a.key, nil
	})
	if err != nil {
		if vErr, ok := err.(*jwt.ValidationError); ok && vErr.Errors&jwt.ValidationErrorExpired != 0 {
			return Claims{}, errors.New("token expired")
		}
		return Claims{}, errors.Wrap(err, "parsing token")
	}

	return claims, nil
}

func (a *Auth) checkRevoked(ctx context.Context, tokenStr string) error {
	if a.redis == nil {
		return nil
	}

	n, err := a.redis.Exists(ctx, revokedKey(tokenStr)).Result()
	if err != nil {
		return errors.Wrap(err, "checking revoked token")
	}
	if n > 0 {
		return errors.New("token has been revoked")
	}

	return nil
}

func revokedKey(tokenStr string) string {
	sum := sha256.Sum256([]byte(tokenStr))
	return "auth:revoked:" + hex.EncodeToString(sum[:])
}

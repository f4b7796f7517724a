package auth

import (
	"net/http"
	"strings"

	"hrms/backend/foundation/web"
	"hrms/backend/internal/auth"
	"hrms/backend/internal/repository/postgres/user"

	"github.com/pkg/errors"
	"golang.org/x/crypto/bcrypt"
)

type Controller struct {
	user User
	auth *auth.Auth
}

func NewController(user User, auth *auth.Auth) *Controller {
	return &Controller{user: user, auth: auth}
}

func (uc Controller) Login(c *web.Context) error {
	var data user.SignInRequest

	err := c.BindFunc(&data, "Email", "Password")
	if err != nil {
		return c.RespondError(err)
	}

	detail, err := uc.user.GetByEmail(c.Ctx, data.Email)
	if err != nil {
		return c.RespondError(err)
	}

	if detail.Password == nil {
		return c.RespondError(web.NewRequestError(errors.New("invalid credentials"), http.StatusUnauthorized))
	}
	if err = bcrypt.CompareHashAndPassword([]byte(*detail.Password), []byte(data.Password)); err != nil {
		return c.RespondError(web.NewRequestError(errors.New("invalid credentials"), http.StatusUnauthorized))
	}
	if detail.IsActive != nil && !*detail.IsActive {
		return c.RespondError(web.NewRequestError(errors.New("account is deactivated"), http.StatusUnauthorized))
	}

	role := ""
	if detail.Role != nil {
		role = *detail.Role
	}

	accessToken, refreshToken, err := uc.auth.GenerateTokens(detail.ID, role)
	if err != nil {
		return c.RespondError(web.NewRequestError(errors.Wrap(err, "generating tokens"), http.StatusInternalServerError))
	}

	return c.Respond(map[string]interface{}{
		"data": map[string]interface{}{
			"access_token":  accessToken,
			"refresh_token": refreshToken,
			"token_type":    "Bearer",
			"user": map[string]interface{}{
				"id":    detail.ID,
				"name":  detail.Name,
				"email": detail.Email,
				"role":  detail.Role,
			},
		},
		"status": true,
	}, http.StatusOK)
}

// Register self-enrolls a new account. The role defaults to Employee when
// the request leaves it out.
func (uc Controller) Register(c *web.Context) error {
	var data user.RegisterRequest

	err := c.BindFunc(&data, "Name", "Email", "Password")
	if err != nil {
		return c.RespondError(err)
	}

	detail, err := uc.user.Register(c.Ctx, data)
	if err != nil {
		return c.RespondError(err)
	}

	role := auth.RoleEmployee
	if detail.Role != nil {
		role = *detail.Role
	}

	accessToken, refreshToken, err := uc.auth.GenerateTokens(detail.ID, role)
	if err != nil {
		return c.RespondError(web.NewRequestError(errors.Wrap(err, "generating tokens"), http.StatusInternalServerError))
	}

	return c.Respond(map[string]interface{}{
		"data": map[string]interface{}{
			"access_token":  accessToken,
			"refresh_token": refreshToken,
			"token_type":    "Bearer",
			"user": map[string]interface{}{
				"id":    detail.ID,
				"name":  detail.Name,
				"email": detail.Email,
				"role":  detail.Role,
			},
		},
		"status": true,
	}, http.StatusCreated)
}

// Logout revokes the presented access token so it stops working before its
// natural expiry.
func (uc Controller) Logout(c *web.Context) error {
	token := strings.TrimPrefix(c.GetHeader("Authorization"), "Bearer ")
	if token == "" {
		return c.RespondError(web.NewRequestError(errors.New("missing token"), http.StatusUnauthorized))
	}

	if err := uc.auth.Revoke(c.Ctx, token); err != nil {
		return c.RespondError(web.NewRequestError(err, http.StatusUnauthorized))
	}

	return c.Respond(map[string]interface{}{
		"data":   "logged out",
		"status": true,
	}, http.StatusOK)
}

func (uc Controller) RefreshToken(c *web.Context) error {
	var data user.RefreshTokenRequest

	err := c.BindFunc(&data, "RefreshToken")
	if err != nil {
		return c.RespondError(err)
	}

	claims, err := uc.auth.VerifyRefresh(c.Ctx, data.RefreshToken)
	if err != nil {
		return c.RespondError(web.NewRequestError(err, http.StatusUnauthorized))
	}

	// One-shot refresh tokens: the presented one stops working now.
	if err := uc.auth.Revoke(c.Ctx, data.RefreshToken); err != nil {
		return c.RespondError(web.NewRequestError(err, http.StatusUnauthorized))
	}

	accessToken, refreshToken, err := uc.auth.GenerateTokens(claims.UserId, claims.Role)
	if err != nil {
		return c.RespondError(web.NewRequestError(errors.Wrap(err, "generating new tokens"), http.StatusInternalServerError))
	}

	return c.Respond(map[string]interface{}{
		"data": map[string]interface{}{
			"access_token":  accessToken,
			"refresh_token": refreshToken,
			"token_type":    "Bearer",
		},
		"status": true,
	}, http.StatusOK)
}

package user

import (
	"time"

	"github.com/uptrace/bun"
)

type Filter struct {
	Limit  *int
	Offset *int
	Page   *int
	Search *string
}

type SignInRequest struct {
	Email    string `json:"email" form:"email"`
	Password string `json:"password" form:"password"`
}

type RegisterRequest struct {
	Name        *string `json:"name" form:"name"`
	Email       *string `json:"email" form:"email"`
	Password    *string `json:"password" form:"password"`
	Department  *string `json:"department" form:"department"`
	Designation *string `json:"designation" form:"designation"`
	Phone       *string `json:"phone" form:"phone"`
	Address     *string `json:"address" form:"address"`
	Role        *string `json:"role" form:"role"`
}

type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token" form:"refresh_token"`
}

type GetListResponse struct {
	ID          int     `json:"id"`
	Name        *string `json:"name"`
	Email       *string `json:"email"`
	Department  *string `json:"department"`
	Designation *string `json:"designation"`
	Phone       *string `json:"phone"`
	Address     *string `json:"address"`
	Role        *string `json:"role"`
	IsActive    *bool   `json:"is_active"`
}

type GetDetailByIdResponse struct {
	ID          int     `json:"id"`
	Name        *string `json:"name"`
	Email       *string `json:"email"`
	Department  *string `json:"department"`
	Designation *string `json:"designation"`
	Phone       *string `json:"phone"`
	Address     *string `json:"address"`
	Role        *string `json:"role"`
	IsActive    *bool   `json:"is_active"`
}

type CreateRequest struct {
	Name        *string `json:"name" form:"name"`
	Email       *string `json:"email" form:"email"`
	Password    *string `json:"password" form:"password"`
	Department  *string `json:"department" form:"department"`
	Designation *string `json:"designation" form:"designation"`
	Phone       *string `json:"phone" form:"phone"`
	Address     *string `json:"address" form:"address"`
	Role        *string `json:"role" form:"role"`
	IsActive    *bool   `json:"is_active" form:"is_active"`
}

type CreateResponse struct {
	bun.BaseModel `bun:"table:users"`

	ID          int       `json:"id" bun:"-"`
	Name        *string   `json:"name" bun:"name"`
	Email       *string   `json:"email" bun:"email"`
	Password    *string   `json:"-" bun:"password"`
	Department  *string   `json:"department" bun:"department"`
	Designation *string   `json:"designation" bun:"designation"`
	Phone       *string   `json:"phone" bun:"phone"`
	Address     *string   `json:"address" bun:"address"`
	Role        *string   `json:"role" bun:"role"`
	IsActive    *bool     `json:"is_active" bun:"is_active"`
	CreatedAt   time.Time `json:"created_at" bun:"created_at"`
}

type UpdateRequest struct {
	ID          int     `json:"id" form:"id"`
	Name        *string `json:"name" form:"name"`
	Email       *string `json:"email" form:"email"`
	Password    *string `json:"password" form:"password"`
	Department  *string `json:"department" form:"department"`
	Designation *string `json:"designation" form:"designation"`
	Phone       *string `json:"phone" form:"phone"`
	Address     *string `json:"address" form:"address"`
	Role        *string `json:"role" form:"role"`
	IsActive    *bool   `json:"is_active" form:"is_active"`
}

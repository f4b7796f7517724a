package entity

import (
	"github.com/uptrace/bun"
)

type User struct {
	bun.BaseModel `bun:"table:users"`

	BasicEntity
	Name        *string `json:"name"        bun:"name"`
	Email       *string `json:"email"       bun:"email"`
	Password    *string `json:"-"           bun:"password"`
	Department  *string `json:"department"  bun:"department"`
	Designation *string `json:"designation" bun:"designation"`
	Phone       *string `json:"phone"       bun:"phone"`
	Address     *string `json:"address"     bun:"address"`
	Role        *string `json:"role"        bun:"role"`
	IsActive    *bool   `json:"is_active"   bun:"is_active"`
}

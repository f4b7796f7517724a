package auth

import (
	"context"

	"hrms/backend/internal/entity"
	"hrms/backend/internal/repository/postgres/user"
)

type User interface {
	GetByEmail(ctx context.Context, email string) (entity.User, error)
	Register(ctx context.Context, request user.RegisterRequest) (entity.User, error)
}

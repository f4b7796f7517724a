package user

import (
	"context"

	"hrms/backend/internal/repository/postgres/user"
)

type User interface {
	GetList(ctx context.Context, filter user.Filter) ([]user.GetListResponse, int, error)
	GetDetailById(ctx context.Context, id int) (user.GetDetailByIdResponse, error)
	GetDetailByEmail(ctx context.Context, email string) (user.GetDetailByIdResponse, error)
	GetProfile(ctx context.Context) (user.GetDetailByIdResponse, error)
	Create(ctx context.Context, request user.CreateRequest) (user.CreateResponse, error)
	UpdateColumns(ctx context.Context, request user.UpdateRequest) error
	Delete(ctx context.Context, id int) error
}

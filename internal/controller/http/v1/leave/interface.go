package leave

import (
	"context"

	"hrms/backend/internal/repository/postgres/leave"
)

type Leave interface {
	GetList(ctx context.Context, filter leave.Filter) ([]leave.GetListResponse, int, error)
	GetListByUserId(ctx context.Context, userID int, status *string) ([]leave.GetListResponse, int, error)
	GetDetailById(ctx context.Context, id int) (leave.GetDetailByIdResponse, error)
	Create(ctx context.Context, request leave.CreateRequest) (leave.CreateResponse, error)
	UpdateColumns(ctx context.Context, request leave.UpdateRequest) error
	Delete(ctx context.Context, id int) error
}

package task

import (
	"context"

	"hrms/backend/internal/repository/postgres/task"
)

type Task interface {
	GetList(ctx context.Context, filter task.Filter) ([]task.GetListResponse, int, error)
	GetListByUserId(ctx context.Context, userID int) ([]task.GetListResponse, int, error)
	GetDetailById(ctx context.Context, id int) (task.GetDetailByIdResponse, error)
	Create(ctx context.Context, request task.CreateRequest) (task.CreateResponse, error)
	UpdateColumns(ctx context.Context, request task.UpdateRequest) error
	Delete(ctx context.Context, id int) error
}

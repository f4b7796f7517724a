package measurement

import (
	"context"

	"hrms/backend/internal/repository/postgres/measurement"
)

type Measurement interface {
	GetList(ctx context.Context, filter measurement.Filter) ([]measurement.GetListResponse, int, error)
	GetTrashedList(ctx context.Context, filter measurement.Filter) ([]measurement.GetListResponse, int, error)
	GetDetailById(ctx context.Context, id int) (measurement.GetDetailByIdResponse, error)
	Create(ctx context.Context, request measurement.CreateRequest) (measurement.CreateResponse, error)
	UpdateColumns(ctx context.Context, request measurement.UpdateRequest) error
	Delete(ctx context.Context, id int) error
	Restore(ctx context.Context, id int) error
	ForceDelete(ctx context.Context, id int) error
}

package leave

import (
	"context"
	"database/sql"
	"net/http"
	"time"

	"hrms/backend/foundation/web"
	"hrms/backend/internal/entity"
	"hrms/backend/internal/pkg/repository/postgresql"
	"hrms/backend/internal/repository/postgres"

	"github.com/pkg/errors"
)

// StatusPending is the state every new request starts in.
const (
	StatusPending  = "Pending"
	StatusApproved = "Approved"
	StatusRejected = "Rejected"
)

var statuses = []string{StatusPending, StatusApproved, StatusRejected}

type Repository struct {
	*postgresql.Database
}

func NewRepository(database *postgresql.Database) *Repository {
	return &Repository{Database: database}
}

func (r Repository) GetList(ctx context.Context, filter Filter) ([]GetListResponse, int, error) {
	_, err := r.CheckClaims(ctx)
	if err != nil {
		return nil, 0, err
	}

	whereQuery := `WHERE true`
	var args []interface{}

	if filter.Status != nil {
		if err := validateStatus(*filter.Status); err != nil {
			return nil, 0, err
		}
		whereQuery += ` AND l.status = ?`
		args = append(args, *filter.Status)
	}

	return r.list(ctx, whereQuery, args)
}

// GetListByUserId lists one user's leave requests, optionally narrowed to a
// single status.
func (r Repository) GetListByUserId(ctx context.Context, userID int, status *string) ([]GetListResponse, int, error) {
	_, err := r.CheckClaims(ctx)
	if err != nil {
		return nil, 0, err
	}

	whereQuery := `WHERE l.requested_by = ?`
	args := []interface{}{userID}

	if status != nil {
		if err := validateStatus(*status); err != nil {
			return nil, 0, err
		}
		whereQuery += ` AND l.status = ?`
		args = append(args, *status)
	}

	return r.list(ctx, whereQuery, args)
}

func (r Repository) list(ctx context.Context, whereQuery string, args []interface{}) ([]GetListResponse, int, error) {
	query := `
		SELECT
			l.id,
			l.start_date,
			l.end_date,
			l.reason,
			l.status,
			l.requested_by,
			u.name
		FROM leaves l
		LEFT JOIN users u ON u.id = l.requested_by
		` + whereQuery + `
		ORDER BY l.created_at desc`

	rows, err := r.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, 0, web.NewRequestError(errors.Wrap(err, "selecting leaves"), http.StatusInternalServerError)
	}
	defer rows.Close()

	var list []GetListResponse
	for rows.Next() {
		var detail GetListResponse
		if err = rows.Scan(
			&detail.ID,
			&detail.StartDate,
			&detail.EndDate,
			&detail.Reason,
			&detail.Status,
			&detail.RequestedBy,
			&detail.RequesterName,
		); err != nil {
			return nil, 0, web.NewRequestError(errors.Wrap(err, "scanning leave list"), http.StatusInternalServerError)
		}
		list = append(list, detail)
	}

	count := 0
	if err = r.QueryRowContext(ctx, `SELECT count(l.id) FROM leaves l `+whereQuery, args...).Scan(&count); err != nil {
		return nil, 0, web.NewRequestError(errors.Wrap(err, "counting leaves"), http.StatusInternalServerError)
	}

	return list, count, nil
}

func (r Repository) GetDetailById(ctx context.Context, id int) (GetDetailByIdResponse, error) {
	_, err := r.CheckClaims(ctx)
	if err != nil {
		return GetDetailByIdResponse{}, err
	}

	query := `
		SELECT
			l.id,
			l.start_date,
			l.end_date,
			l.reason,
			l.status,
			l.requested_by,
			u.name
		FROM leaves l
		LEFT JOIN users u ON u.id = l.requested_by
		WHERE l.id = ?`

	var detail GetDetailByIdResponse
	err = r.QueryRowContext(ctx, query, id).Scan(
		&detail.ID,
		&detail.StartDate,
		&detail.EndDate,
		&detail.Reason,
		&detail.Status,
		&detail.RequestedBy,
		&detail.RequesterName,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return GetDetailByIdResponse{}, web.NewRequestError(postgres.ErrNotFound, http.StatusNotFound)
	}
	if err != nil {
		return GetDetailByIdResponse{}, web.NewRequestError(errors.Wrap(err, "selecting leave detail"), http.StatusInternalServerError)
	}

	return detail, nil
}

// Create files a leave request for the authenticated user. Status always
// starts Pending and the date range must not run backwards.
func (r Repository) Create(ctx context.Context, request CreateRequest) (CreateResponse, error) {
	claims, err := r.CheckClaims(ctx)
	if err != nil {
		return CreateResponse{}, err
	}

	if err := r.ValidateStruct(&request, "StartDate", "EndDate", "Reason"); err != nil {
		return CreateResponse{}, err
	}
	if err := validateDateOrder(request.StartDate.Time, request.EndDate.Time); err != nil {
		return CreateResponse{}, err
	}

	response := CreateResponse{
		StartDate:   request.StartDate.Time,
		EndDate:     request.EndDate.Time,
		Reason:      request.Reason,
		Status:      StatusPending,
		RequestedBy: claims.UserId,
		CreatedAt:   time.Now(),
	}

	_, err = r.NewInsert().Model(&response).Returning("id").Exec(ctx, &response.ID)
	if err != nil {
		return CreateResponse{}, web.NewRequestError(errors.Wrap(err, "creating leave"), http.StatusInternalServerError)
	}

	return response, nil
}

func (r Repository) UpdateColumns(ctx context.Context, request UpdateRequest) error {
	_, err := r.CheckClaims(ctx)
	if err != nil {
		return err
	}

	if err := r.ValidateStruct(&request, "ID"); err != nil {
		return err
	}

	// Merge supplied dates with the stored ones so a one-sided update still
	// validates the full range.
	var storedStart, storedEnd time.Time
	err = r.QueryRowContext(ctx, `SELECT start_date, end_date FROM leaves WHERE id = ?`, request.ID).
		Scan(&storedStart, &storedEnd)
	if errors.Is(err, sql.ErrNoRows) {
		return web.NewRequestError(postgres.ErrNotFound, http.StatusNotFound)
	}
	if err != nil {
		return web.NewRequestError(errors.Wrap(err, "selecting leave dates"), http.StatusInternalServerError)
	}

	start, end := storedStart, storedEnd
	if request.StartDate != nil {
		start = request.StartDate.Time
	}
	if request.EndDate != nil {
		end = request.EndDate.Time
	}
	if err := validateDateOrder(start, end); err != nil {
		return err
	}

	q := r.NewUpdate().Model((*entity.Leave)(nil)).Where("id = ?", request.ID)

	if request.StartDate != nil {
		q.Set("start_date = ?", request.StartDate.Time)
	}
	if request.EndDate != nil {
		q.Set("end_date = ?", request.EndDate.Time)
	}
	if request.Reason != nil {
		q.Set("reason = ?", request.Reason)
	}
	if request.Status != nil {
		if err := validateStatus(*request.Status); err != nil {
			return err
		}
		q.Set("status = ?", request.Status)
	}
	q.Set("updated_at = ?", time.Now())

	if _, err = q.Exec(ctx); err != nil {
		return web.NewRequestError(errors.Wrap(err, "updating leave"), http.StatusInternalServerError)
	}

	return nil
}

func (r Repository) Delete(ctx context.Context, id int) error {
	return r.DeleteRow(ctx, "leaves", id)
}

func validateStatus(status string) error {
	for _, known := range statuses {
		if status == known {
			return nil
		}
	}
	return web.NewValidationError(errors.New("invalid status"), map[string]string{"status": "must be one of Pending, Approved, Rejected"})
}

func validateDateOrder(start, end time.Time) error {
	if end.Before(start) {
		return web.NewValidationError(errors.New("invalid date range"), map[string]string{"end_date": "must not be before start_date"})
	}
	return nil
}

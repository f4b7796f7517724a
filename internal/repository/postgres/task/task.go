package task

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

var (
	priorities = []string{"Low", "Medium", "High"}
	statuses   = []string{"Pending", "In Progress", "Completed"}
)

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

	if filter.Search != nil {
		search := "%" + *filter.Search + "%"
		whereQuery += ` AND (t.title ILIKE ? OR t.description ILIKE ?)`
		args = append(args, search, search)
	}
	if filter.Status != nil {
		if err := validateStatus(*filter.Status); err != nil {
			return nil, 0, err
		}
		whereQuery += ` AND t.status = ?`
		args = append(args, *filter.Status)
	}

	pageQuery := ``
	var pageArgs []interface{}
	if filter.Page != nil && filter.Limit != nil {
		offset := (*filter.Page - 1) * (*filter.Limit)
		filter.Offset = &offset
	}
	if filter.Limit != nil {
		pageQuery += ` LIMIT ?`
		pageArgs = append(pageArgs, *filter.Limit)
	}
	if filter.Offset != nil {
		pageQuery += ` OFFSET ?`
		pageArgs = append(pageArgs, *filter.Offset)
	}

	return r.list(ctx, whereQuery, args, pageQuery, pageArgs)
}

// GetListByUserId lists the tasks assigned to one user.
func (r Repository) GetListByUserId(ctx context.Context, userID int) ([]GetListResponse, int, error) {
	_, err := r.CheckClaims(ctx)
	if err != nil {
		return nil, 0, err
	}

	return r.list(ctx, `WHERE t.assigned_to = ?`, []interface{}{userID}, ``, nil)
}

// list runs the joined select. The count query reuses the where clause and
// its args only, so pagination never skews the total.
func (r Repository) list(ctx context.Context, whereQuery string, whereArgs []interface{}, pageQuery string, pageArgs []interface{}) ([]GetListResponse, int, error) {
	query := `
		SELECT
			t.id,
			t.title,
			t.description,
			t.priority,
			t.status,
			t.assigned_to,
			u.name
		FROM tasks t
		LEFT JOIN users u ON u.id = t.assigned_to
		` + whereQuery + `
		ORDER BY t.created_at desc` + pageQuery

	rows, err := r.QueryContext(ctx, query, append(whereArgs, pageArgs...)...)
	if err != nil {
		return nil, 0, web.NewRequestError(errors.Wrap(err, "selecting tasks"), http.StatusInternalServerError)
	}
	defer rows.Close()

	var list []GetListResponse
	for rows.Next() {
		var detail GetListResponse
		if err = rows.Scan(
			&detail.ID,
			&detail.Title,
			&detail.Description,
			&detail.Priority,
			&detail.Status,
			&detail.AssignedTo,
			&detail.AssigneeName,
		); err != nil {
			return nil, 0, web.NewRequestError(errors.Wrap(err, "scanning task list"), http.StatusInternalServerError)
		}
		list = append(list, detail)
	}

	count := 0
	if err = r.QueryRowContext(ctx, `SELECT count(t.id) FROM tasks t `+whereQuery, whereArgs...).Scan(&count); err != nil {
		return nil, 0, web.NewRequestError(errors.Wrap(err, "counting tasks"), http.StatusInternalServerError)
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
			t.id,
			t.title,
			t.description,
			t.priority,
			t.status,
			t.assigned_to,
			u.name
		FROM tasks t
		LEFT JOIN users u ON u.id = t.assigned_to
		WHERE t.id = ?`

	var detail GetDetailByIdResponse
	err = r.QueryRowContext(ctx, query, id).Scan(
		&detail.ID,
		&detail.Title,
		&detail.Description,
		&detail.Priority,
		&detail.Status,
		&detail.AssignedTo,
		&detail.AssigneeName,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return GetDetailByIdResponse{}, web.NewRequestError(postgres.ErrNotFound, http.StatusNotFound)
	}
	if err != nil {
		return GetDetailByIdResponse{}, web.NewRequestError(errors.Wrap(err, "selecting task detail"), http.StatusInternalServerError)
	}

	return detail, nil
}

func (r Repository) Create(ctx context.Context, request CreateRequest) (CreateResponse, error) {
	_, err := r.CheckClaims(ctx)
	if err != nil {
		return CreateResponse{}, err
	}

	if err := r.ValidateStruct(&request, "Title", "AssignedTo"); err != nil {
		return CreateResponse{}, err
	}
	if request.Priority != nil {
		if err := validatePriority(*request.Priority); err != nil {
			return CreateResponse{}, err
		}
	}
	if request.Status != nil {
		if err := validateStatus(*request.Status); err != nil {
			return CreateResponse{}, err
		}
	}
	if err := r.checkAssignee(ctx, *request.AssignedTo); err != nil {
		return CreateResponse{}, err
	}

	priority := "Medium"
	if request.Priority != nil {
		priority = *request.Priority
	}
	status := "Pending"
	if request.Status != nil {
		status = *request.Status
	}

	response := CreateResponse{
		Title:       request.Title,
		Description: request.Description,
		Priority:    &priority,
		Status:      &status,
		AssignedTo:  request.AssignedTo,
		CreatedAt:   time.Now(),
	}

	_, err = r.NewInsert().Model(&response).Returning("id").Exec(ctx, &response.ID)
	if err != nil {
		return CreateResponse{}, web.NewRequestError(errors.Wrap(err, "creating task"), http.StatusInternalServerError)
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
	if err := r.exists(ctx, request.ID); err != nil {
		return err
	}

	q := r.NewUpdate().Model((*entity.Task)(nil)).Where("id = ?", request.ID)

	if request.Title != nil {
		q.Set("title = ?", request.Title)
	}
	if request.Description != nil {
		q.Set("description = ?", request.Description)
	}
	if request.Priority != nil {
		if err := validatePriority(*request.Priority); err != nil {
			return err
		}
		q.Set("priority = ?", request.Priority)
	}
	if request.Status != nil {
		if err := validateStatus(*request.Status); err != nil {
			return err
		}
		q.Set("status = ?", request.Status)
	}
	if request.AssignedTo != nil {
		if err := r.checkAssignee(ctx, *request.AssignedTo); err != nil {
			return err
		}
		q.Set("assigned_to = ?", request.AssignedTo)
	}
	q.Set("updated_at = ?", time.Now())

	if _, err = q.Exec(ctx); err != nil {
		return web.NewRequestError(errors.Wrap(err, "updating task"), http.StatusInternalServerError)
	}

	return nil
}

func (r Repository) Delete(ctx context.Context, id int) error {
	return r.DeleteRow(ctx, "tasks", id)
}

func (r Repository) exists(ctx context.Context, id int) error {
	var found bool
	if err := r.QueryRowContext(ctx,
		`SELECT EXISTS (SELECT id FROM tasks WHERE id = ?)`, id).Scan(&found); err != nil {
		return web.NewRequestError(errors.Wrap(err, "task id check"), http.StatusInternalServerError)
	}
	if !found {
		return web.NewRequestError(postgres.ErrNotFound, http.StatusNotFound)
	}
	return nil
}

// checkAssignee enforces that assigned_to points at a real user.
func (r Repository) checkAssignee(ctx context.Context, userID int) error {
	var found bool
	if err := r.QueryRowContext(ctx,
		`SELECT EXISTS (SELECT id FROM users WHERE id = ?)`, userID).Scan(&found); err != nil {
		return web.NewRequestError(errors.Wrap(err, "assignee check"), http.StatusInternalServerError)
	}
	if !found {
		return web.NewValidationError(errors.New("assignee does not exist"), map[string]string{"assigned_to": "must reference an existing user"})
	}
	return nil
}

func validatePriority(priority string) error {
	for _, known := range priorities {
		if priority == known {
			return nil
		}
	}
	return web.NewValidationError(errors.New("invalid priority"), map[string]string{"priority": "must be one of Low, Medium, High"})
}

func validateStatus(status string) error {
	for _, known := range statuses {
		if status == known {
			return nil
		}
	}
	return web.NewValidationError(errors.New("invalid status"), map[string]string{"status": "must be one of Pending, In Progress, Completed"})
}

// Package measurement persists customer garment measurements. Rows are soft
// deleted: delete stamps deleted_at, trashed rows stay queryable through the
// trashed listing until restored or force-deleted.
package measurement

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

const selectColumns = `
		m.id,
		m.name,
		m.code,
		m.phone,
		m.address,
		m.kameezlength,
		m.teera,
		m.baazo,
		m.chest,
		m.neck,
		m.daman,
		m.kera,
		m.shalwar,
		m.pancha,
		m.pocket,
		m.note,
		m.created_by,
		cu.name,
		m.updated_by,
		uu.name,
		m.created_at,
		m.deleted_at`

const fromClause = `
	FROM customer_measurements m
	LEFT JOIN users cu ON cu.id = m.created_by
	LEFT JOIN users uu ON uu.id = m.updated_by`

type Repository struct {
	*postgresql.Database
}

func NewRepository(database *postgresql.Database) *Repository {
	return &Repository{Database: database}
}

func (r Repository) GetList(ctx context.Context, filter Filter) ([]GetListResponse, int, error) {
	return r.paged(ctx, filter, `WHERE m.deleted_at IS NULL`, `ORDER BY m.created_at desc`)
}

// GetTrashedList returns only soft-deleted rows, most recently deleted first.
func (r Repository) GetTrashedList(ctx context.Context, filter Filter) ([]GetListResponse, int, error) {
	return r.paged(ctx, filter, `WHERE m.deleted_at IS NOT NULL`, `ORDER BY m.deleted_at desc`)
}

func (r Repository) paged(ctx context.Context, filter Filter, whereQuery, orderQuery string) ([]GetListResponse, int, error) {
	_, err := r.CheckClaims(ctx)
	if err != nil {
		return nil, 0, err
	}

	var args []interface{}
	if filter.Search != nil {
		search := "%" + *filter.Search + "%"
		whereQuery += ` AND (m.name ILIKE ? OR m.code ILIKE ? OR m.phone ILIKE ?)`
		args = append(args, search, search, search)
	}

	count := 0
	if err = r.QueryRowContext(ctx, `SELECT count(m.id) FROM customer_measurements m `+whereQuery, args...).Scan(&count); err != nil {
		return nil, 0, web.NewRequestError(errors.Wrap(err, "counting measurements"), http.StatusInternalServerError)
	}

	page, perPage := 1, 15
	if filter.Page != nil && *filter.Page > 0 {
		page = *filter.Page
	}
	if filter.PerPage != nil && *filter.PerPage > 0 {
		perPage = *filter.PerPage
	}

	query := `SELECT ` + selectColumns + fromClause + `
		` + whereQuery + `
		` + orderQuery + `
		LIMIT ? OFFSET ?`
	args = append(args, perPage, (page-1)*perPage)

	rows, err := r.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, 0, web.NewRequestError(errors.Wrap(err, "selecting measurements"), http.StatusInternalServerError)
	}
	defer rows.Close()

	var list []GetListResponse
	for rows.Next() {
		var detail GetListResponse
		if err = rows.Scan(
			&detail.ID,
			&detail.Name,
			&detail.Code,
			&detail.Phone,
			&detail.Address,
			&detail.KameezLength,
			&detail.Teera,
			&detail.Baazo,
			&detail.Chest,
			&detail.Neck,
			&detail.Daman,
			&detail.Kera,
			&detail.Shalwar,
			&detail.Pancha,
			&detail.Pocket,
			&detail.Note,
			&detail.CreatedBy,
			&detail.CreatorName,
			&detail.UpdatedBy,
			&detail.UpdaterName,
			&detail.CreatedAt,
			&detail.DeletedAt,
		); err != nil {
			return nil, 0, web.NewRequestError(errors.Wrap(err, "scanning measurement list"), http.StatusInternalServerError)
		}
		list = append(list, detail)
	}

	return list, count, nil
}

func (r Repository) GetDetailById(ctx context.Context, id int) (GetDetailByIdResponse, error) {
	_, err := r.CheckClaims(ctx)
	if err != nil {
		return GetDetailByIdResponse{}, err
	}

	query := `SELECT ` + selectColumns + fromClause + `
		WHERE m.deleted_at IS NULL AND m.id = ?`

	var detail GetDetailByIdResponse
	var createdAt, deletedAt *time.Time
	err = r.QueryRowContext(ctx, query, id).Scan(
		&detail.ID,
		&detail.Name,
		&detail.Code,
		&detail.Phone,
		&detail.Address,
		&detail.KameezLength,
		&detail.Teera,
		&detail.Baazo,
		&detail.Chest,
		&detail.Neck,
		&detail.Daman,
		&detail.Kera,
		&detail.Shalwar,
		&detail.Pancha,
		&detail.Pocket,
		&detail.Note,
		&detail.CreatedBy,
		&detail.CreatorName,
		&detail.UpdatedBy,
		&detail.UpdaterName,
		&createdAt,
		&deletedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return GetDetailByIdResponse{}, web.NewRequestError(postgres.ErrNotFound, http.StatusNotFound)
	}
	if err != nil {
		return GetDetailByIdResponse{}, web.NewRequestError(errors.Wrap(err, "selecting measurement detail"), http.StatusInternalServerError)
	}

	return detail, nil
}

func (r Repository) Create(ctx context.Context, request CreateRequest) (CreateResponse, error) {
	claims, err := r.CheckClaims(ctx)
	if err != nil {
		return CreateResponse{}, err
	}

	if err := r.ValidateStruct(&request, "Name", "Code", "Phone"); err != nil {
		return CreateResponse{}, err
	}
	if err := r.checkCodeFree(ctx, *request.Code, 0); err != nil {
		return CreateResponse{}, err
	}

	response := CreateResponse{
		Name:         request.Name,
		Code:         request.Code,
		Phone:        request.Phone,
		Address:      request.Address,
		KameezLength: request.KameezLength,
		Teera:        request.Teera,
		Baazo:        request.Baazo,
		Chest:        request.Chest,
		Neck:         request.Neck,
		Daman:        request.Daman,
		Kera:         request.Kera,
		Shalwar:      request.Shalwar,
		Pancha:       request.Pancha,
		Pocket:       request.Pocket,
		Note:         request.Note,
		CreatedBy:    claims.UserId,
		CreatedAt:    time.Now(),
	}

	_, err = r.NewInsert().Model(&response).Returning("id").Exec(ctx, &response.ID)
	if err != nil {
		return CreateResponse{}, web.NewRequestError(errors.Wrap(err, "creating measurement"), http.StatusInternalServerError)
	}

	return response, nil
}

func (r Repository) UpdateColumns(ctx context.Context, request UpdateRequest) error {
	claims, err := r.CheckClaims(ctx)
	if err != nil {
		return err
	}

	if err := r.ValidateStruct(&request, "ID"); err != nil {
		return err
	}
	if err := r.mustBeLive(ctx, request.ID); err != nil {
		return err
	}
	if request.Code != nil {
		if err := r.checkCodeFree(ctx, *request.Code, request.ID); err != nil {
			return err
		}
	}

	q := r.NewUpdate().Model((*entity.CustomerMeasurement)(nil)).Where("deleted_at IS NULL AND id = ?", request.ID)

	if request.Name != nil {
		q.Set("name = ?", request.Name)
	}
	if request.Code != nil {
		q.Set("code = ?", request.Code)
	}
	if request.Phone != nil {
		q.Set("phone = ?", request.Phone)
	}
	if request.Address != nil {
		q.Set("address = ?", request.Address)
	}
	if request.KameezLength != nil {
		q.Set("kameezlength = ?", request.KameezLength)
	}
	if request.Teera != nil {
		q.Set("teera = ?", request.Teera)
	}
	if request.Baazo != nil {
		q.Set("baazo = ?", request.Baazo)
	}
	if request.Chest != nil {
		q.Set("chest = ?", request.Chest)
	}
	if request.Neck != nil {
		q.Set("neck = ?", request.Neck)
	}
	if request.Daman != nil {
		q.Set("daman = ?", request.Daman)
	}
	if request.Kera != nil {
		q.Set("kera = ?", request.Kera)
	}
	if request.Shalwar != nil {
		q.Set("shalwar = ?", request.Shalwar)
	}
	if request.Pancha != nil {
		q.Set("pancha = ?", request.Pancha)
	}
	if request.Pocket != nil {
		q.Set("pocket = ?", request.Pocket)
	}
	if request.Note != nil {
		q.Set("note = ?", request.Note)
	}
	q.Set("updated_at = ?", time.Now())
	q.Set("updated_by = ?", claims.UserId)

	if _, err = q.Exec(ctx); err != nil {
		return web.NewRequestError(errors.Wrap(err, "updating measurement"), http.StatusInternalServerError)
	}

	return nil
}

// Delete soft-deletes a live row.
func (r Repository) Delete(ctx context.Context, id int) error {
	claims, err := r.CheckClaims(ctx)
	if err != nil {
		return err
	}

	result, err := r.NewUpdate().Model((*entity.CustomerMeasurement)(nil)).
		Where("deleted_at IS NULL AND id = ?", id).
		Set("deleted_at = ?", time.Now()).
		Set("updated_by = ?", claims.UserId).
		Exec(ctx)
	if err != nil {
		return web.NewRequestError(errors.Wrap(err, "soft deleting measurement"), http.StatusInternalServerError)
	}

	return requireAffected(result, "measurement")
}

// Restore clears the deletion stamp of a trashed row.
func (r Repository) Restore(ctx context.Context, id int) error {
	claims, err := r.CheckClaims(ctx)
	if err != nil {
		return err
	}

	result, err := r.NewUpdate().Model((*entity.CustomerMeasurement)(nil)).
		Where("deleted_at IS NOT NULL AND id = ?", id).
		Set("deleted_at = NULL").
		Set("updated_at = ?", time.Now()).
		Set("updated_by = ?", claims.UserId).
		Exec(ctx)
	if err != nil {
		return web.NewRequestError(errors.Wrap(err, "restoring measurement"), http.StatusInternalServerError)
	}

	return requireAffected(result, "measurement")
}

// ForceDelete permanently removes an already-trashed row. Live rows are not
// eligible; they must be soft-deleted first.
func (r Repository) ForceDelete(ctx context.Context, id int) error {
	_, err := r.CheckClaims(ctx)
	if err != nil {
		return err
	}

	result, err := r.NewDelete().Model((*entity.CustomerMeasurement)(nil)).
		Where("deleted_at IS NOT NULL AND id = ?", id).
		Exec(ctx)
	if err != nil {
		return web.NewRequestError(errors.Wrap(err, "force deleting measurement"), http.StatusInternalServerError)
	}

	return requireAffected(result, "measurement")
}

func (r Repository) mustBeLive(ctx context.Context, id int) error {
	var found bool
	if err := r.QueryRowContext(ctx,
		`SELECT EXISTS (SELECT id FROM customer_measurements WHERE id = ? AND deleted_at IS NULL)`, id).Scan(&found); err != nil {
		return web.NewRequestError(errors.Wrap(err, "measurement id check"), http.StatusInternalServerError)
	}
	if !found {
		return web.NewRequestError(postgres.ErrNotFound, http.StatusNotFound)
	}
	return nil
}

// checkCodeFree enforces code uniqueness among live rows only; a trashed row
// may keep a code that a new row reuses.
func (r Repository) checkCodeFree(ctx context.Context, code string, excludeID int) error {
	var used bool
	if err := r.QueryRowContext(ctx,
		`SELECT EXISTS (SELECT id FROM customer_measurements WHERE code = ? AND deleted_at IS NULL AND id != ?)`,
		code, excludeID).Scan(&used); err != nil {
		return web.NewRequestError(errors.Wrap(err, "measurement code check"), http.StatusInternalServerError)
	}
	if used {
		return web.NewValidationError(errors.New("customer code already exists"), map[string]string{"code": "this customer code already exists"})
	}
	return nil
}

func requireAffected(result sql.Result, name string) error {
	rows, err := result.RowsAffected()
	if err != nil {
		return web.NewRequestError(errors.Wrap(err, "reading rows affected"), http.StatusInternalServerError)
	}
	if rows == 0 {
		return web.NewRequestError(postgres.ErrNotFound, http.StatusNotFound)
	}
	return nil
}

package user

import (
	"context"
	"database/sql"
	"net/http"
	"regexp"
	"time"

	"hrms/backend/foundation/web"
	"hrms/backend/internal/auth"
	"hrms/backend/internal/entity"
	"hrms/backend/internal/pkg/repository/postgresql"
	"hrms/backend/internal/repository/postgres"

	"github.com/pkg/errors"
	"golang.org/x/crypto/bcrypt"
)

var emailRegex = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

type Repository struct {
	*postgresql.Database
}

func NewRepository(database *postgresql.Database) *Repository {
	return &Repository{Database: database}
}

// GetByEmail is the credential lookup used by sign-in; the caller compares
// the bcrypt hash.
func (r Repository) GetByEmail(ctx context.Context, email string) (entity.User, error) {
	var detail entity.User

	err := r.NewSelect().Model(&detail).Where("email = ?", email).Scan(ctx)
	if err != nil {
		return entity.User{}, web.NewRequestError(errors.New("invalid credentials"), http.StatusUnauthorized)
	}

	return detail, nil
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
		whereQuery += ` AND (name ILIKE ? OR email ILIKE ? OR department ILIKE ?)`
		args = append(args, search, search, search)
	}

	query := `
		SELECT
			id,
			name,
			email,
			department,
			designation,
			phone,
			address,
			role,
			is_active
		FROM users
		` + whereQuery + `
		ORDER BY created_at desc`

	if filter.Page != nil && filter.Limit != nil {
		offset := (*filter.Page - 1) * (*filter.Limit)
		filter.Offset = &offset
	}
	if filter.Limit != nil {
		query += ` LIMIT ?`
		args = append(args, *filter.Limit)
	}
	if filter.Offset != nil {
		query += ` OFFSET ?`
		args = append(args, *filter.Offset)
	}

	rows, err := r.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, 0, web.NewRequestError(errors.Wrap(err, "selecting users"), http.StatusInternalServerError)
	}
	defer rows.Close()

	var list []GetListResponse
	for rows.Next() {
		var detail GetListResponse
		if err = rows.Scan(
			&detail.ID,
			&detail.Name,
			&detail.Email,
			&detail.Department,
			&detail.Designation,
			&detail.Phone,
			&detail.Address,
			&detail.Role,
			&detail.IsActive,
		); err != nil {
			return nil, 0, web.NewRequestError(errors.Wrap(err, "scanning user list"), http.StatusInternalServerError)
		}
		list = append(list, detail)
	}

	countQuery := `SELECT count(id) FROM users ` + whereQuery
	count := 0
	countArgs := args
	if filter.Offset != nil {
		countArgs = countArgs[:len(countArgs)-1]
	}
	if filter.Limit != nil {
		countArgs = countArgs[:len(countArgs)-1]
	}
	if err = r.QueryRowContext(ctx, countQuery, countArgs...).Scan(&count); err != nil {
		return nil, 0, web.NewRequestError(errors.Wrap(err, "counting users"), http.StatusInternalServerError)
	}

	return list, count, nil
}

func (r Repository) GetDetailById(ctx context.Context, id int) (GetDetailByIdResponse, error) {
	_, err := r.CheckClaims(ctx)
	if err != nil {
		return GetDetailByIdResponse{}, err
	}

	return r.detail(ctx, id)
}

// GetProfile returns the authenticated user's own record.
func (r Repository) GetProfile(ctx context.Context) (GetDetailByIdResponse, error) {
	claims, err := r.CheckClaims(ctx)
	if err != nil {
		return GetDetailByIdResponse{}, err
	}

	return r.detail(ctx, claims.UserId)
}

// GetDetailByEmail looks a user up by email address.
func (r Repository) GetDetailByEmail(ctx context.Context, email string) (GetDetailByIdResponse, error) {
	_, err := r.CheckClaims(ctx)
	if err != nil {
		return GetDetailByIdResponse{}, err
	}

	query := `
		SELECT
			id,
			name,
			email,
			department,
			designation,
			phone,
			address,
			role,
			is_active
		FROM users
		WHERE email = ?`

	var detail GetDetailByIdResponse
	err = r.QueryRowContext(ctx, query, email).Scan(
		&detail.ID,
		&detail.Name,
		&detail.Email,
		&detail.Department,
		&detail.Designation,
		&detail.Phone,
		&detail.Address,
		&detail.Role,
		&detail.IsActive,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return GetDetailByIdResponse{}, web.NewRequestError(postgres.ErrNotFound, http.StatusNotFound)
	}
	if err != nil {
		return GetDetailByIdResponse{}, web.NewRequestError(errors.Wrap(err, "selecting user by email"), http.StatusInternalServerError)
	}

	return detail, nil
}

func (r Repository) detail(ctx context.Context, id int) (GetDetailByIdResponse, error) {
	query := `
		SELECT
			id,
			name,
			email,
			department,
			designation,
			phone,
			address,
			role,
			is_active
		FROM users
		WHERE id = ?`

	var detail GetDetailByIdResponse
	err := r.QueryRowContext(ctx, query, id).Scan(
		&detail.ID,
		&detail.Name,
		&detail.Email,
		&detail.Department,
		&detail.Designation,
		&detail.Phone,
		&detail.Address,
		&detail.Role,
		&detail.IsActive,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return GetDetailByIdResponse{}, web.NewRequestError(postgres.ErrNotFound, http.StatusNotFound)
	}
	if err != nil {
		return GetDetailByIdResponse{}, web.NewRequestError(errors.Wrap(err, "selecting user detail"), http.StatusInternalServerError)
	}

	return detail, nil
}

func (r Repository) Create(ctx context.Context, request CreateRequest) (CreateResponse, error) {
	_, err := r.CheckClaims(ctx)
	if err != nil {
		return CreateResponse{}, err
	}

	if err := r.ValidateStruct(&request, "Name", "Email", "Password", "Department", "Designation", "Role"); err != nil {
		return CreateResponse{}, err
	}
	if err := validateEmail(*request.Email); err != nil {
		return CreateResponse{}, err
	}
	if err := validateRole(*request.Role); err != nil {
		return CreateResponse{}, err
	}
	if err := r.checkEmailFree(ctx, *request.Email, 0); err != nil {
		return CreateResponse{}, err
	}

	hash, err := hashPassword(*request.Password)
	if err != nil {
		return CreateResponse{}, err
	}

	active := true
	if request.IsActive != nil {
		active = *request.IsActive
	}

	response := CreateResponse{
		Name:        request.Name,
		Email:       request.Email,
		Password:    &hash,
		Department:  request.Department,
		Designation: request.Designation,
		Phone:       request.Phone,
		Address:     request.Address,
		Role:        request.Role,
		IsActive:    &active,
		CreatedAt:   time.Now(),
	}

	_, err = r.NewInsert().Model(&response).Returning("id").Exec(ctx, &response.ID)
	if err != nil {
		return CreateResponse{}, web.NewRequestError(errors.Wrap(err, "creating user"), http.StatusInternalServerError)
	}

	return response, nil
}

// Register creates an account from the public register endpoint. The role
// defaults to Employee when the request does not name one.
func (r Repository) Register(ctx context.Context, request RegisterRequest) (entity.User, error) {
	if err := r.ValidateStruct(&request, "Name", "Email", "Password"); err != nil {
		return entity.User{}, err
	}
	if err := validateEmail(*request.Email); err != nil {
		return entity.User{}, err
	}
	if err := r.checkEmailFree(ctx, *request.Email, 0); err != nil {
		return entity.User{}, err
	}

	hash, err := hashPassword(*request.Password)
	if err != nil {
		return entity.User{}, err
	}

	role := auth.RoleEmployee
	if request.Role != nil {
		if err := validateRole(*request.Role); err != nil {
			return entity.User{}, err
		}
		role = *request.Role
	}
	active := true
	now := time.Now()

	detail := entity.User{
		Name:        request.Name,
		Email:       request.Email,
		Password:    &hash,
		Department:  request.Department,
		Designation: request.Designation,
		Phone:       request.Phone,
		Address:     request.Address,
		Role:        &role,
		IsActive:    &active,
	}
	detail.CreatedAt = &now

	_, err = r.NewInsert().Model(&detail).Returning("id").Exec(ctx, &detail.ID)
	if err != nil {
		return entity.User{}, web.NewRequestError(errors.Wrap(err, "registering user"), http.StatusInternalServerError)
	}

	return detail, nil
}

// UpdateColumns applies a partial update; absent fields keep their stored
// value. A role value here replaces the old grant in the same statement.
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

	q := r.NewUpdate().Table("users").Where("id = ?", request.ID)

	if request.Name != nil {
		q.Set("name = ?", request.Name)
	}
	if request.Email != nil {
		if err := validateEmail(*request.Email); err != nil {
			return err
		}
		if err := r.checkEmailFree(ctx, *request.Email, request.ID); err != nil {
			return err
		}
		q.Set("email = ?", request.Email)
	}
	if request.Password != nil {
		hash, err := hashPassword(*request.Password)
		if err != nil {
			return err
		}
		q.Set("password = ?", hash)
	}
	if request.Department != nil {
		q.Set("department = ?", request.Department)
	}
	if request.Designation != nil {
		q.Set("designation = ?", request.Designation)
	}
	if request.Phone != nil {
		q.Set("phone = ?", request.Phone)
	}
	if request.Address != nil {
		q.Set("address = ?", request.Address)
	}
	if request.Role != nil {
		if err := validateRole(*request.Role); err != nil {
			return err
		}
		q.Set("role = ?", request.Role)
	}
	if request.IsActive != nil {
		q.Set("is_active = ?", request.IsActive)
	}
	q.Set("updated_at = ?", time.Now())

	if _, err = q.Exec(ctx); err != nil {
		return web.NewRequestError(errors.Wrap(err, "updating user"), http.StatusInternalServerError)
	}

	return nil
}

func (r Repository) Delete(ctx context.Context, id int) error {
	return r.DeleteRow(ctx, "users", id)
}

func (r Repository) exists(ctx context.Context, id int) error {
	var found bool
	if err := r.QueryRowContext(ctx,
		`SELECT EXISTS (SELECT id FROM users WHERE id = ?)`, id).Scan(&found); err != nil {
		return web.NewRequestError(errors.Wrap(err, "user id check"), http.StatusInternalServerError)
	}
	if !found {
		return web.NewRequestError(postgres.ErrNotFound, http.StatusNotFound)
	}
	return nil
}

func (r Repository) checkEmailFree(ctx context.Context, email string, excludeID int) error {
	var used bool
	if err := r.QueryRowContext(ctx,
		`SELECT EXISTS (SELECT id FROM users WHERE email = ? AND id != ?)`, email, excludeID).Scan(&used); err != nil {
		return web.NewRequestError(errors.Wrap(err, "user email check"), http.StatusInternalServerError)
	}
	if used {
		return web.NewValidationError(errors.New("email is already taken"), map[string]string{"email": "already taken"})
	}
	return nil
}

func validateEmail(email string) error {
	if !emailRegex.MatchString(email) {
		return web.NewValidationError(errors.New("invalid email"), map[string]string{"email": "must be a valid email address"})
	}
	return nil
}

func validateRole(role string) error {
	for _, known := range auth.Roles {
		if role == known {
			return nil
		}
	}
	return web.NewValidationError(errors.New("invalid role"), map[string]string{"role": "must be one of Admin, Manager, Employee"})
}

func hashPassword(password string) (string, error) {
	if len(password) < 6 {
		return "", web.NewValidationError(errors.New("password too short"), map[string]string{"password": "must be at least 6 characters"})
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", web.NewRequestError(errors.Wrap(err, "hashing password"), http.StatusInternalServerError)
	}
	return string(hash), nil
}

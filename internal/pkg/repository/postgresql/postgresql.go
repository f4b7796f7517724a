// Package postgresql owns the bun database handle plus the helpers shared by
// every repository: claims lookup, required-field validation and row deletes.
package postgresql

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"reflect"

	"hrms/backend/foundation/web"
	"hrms/backend/internal/auth"

	"github.com/pkg/errors"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/pgdialect"
	"github.com/uptrace/bun/driver/pgdriver"
	"github.com/uptrace/bun/extra/bundebug"
)

type Database struct {
	*bun.DB
}

// NewDB connects to postgres. With debug set, every query is echoed.
func NewDB(username, password, host, port, dbname string, disableTLS, debug bool) *Database {
	connector := pgdriver.NewConnector(
		pgdriver.WithAddr(fmt.Sprintf("%s:%s", host, port)),
		pgdriver.WithUser(username),
		pgdriver.WithPassword(password),
		pgdriver.WithDatabase(dbname),
		pgdriver.WithInsecure(disableTLS),
	)

	sqlDB := sql.OpenDB(connector)
	db := bun.NewDB(sqlDB, pgdialect.New())
	db.AddQueryHook(bundebug.NewQueryHook(bundebug.WithVerbose(debug)))

	return &Database{DB: db}
}

// CheckClaims returns the authenticated claims carried on the context. Repos
// use it to fill audit columns and to refuse anonymous calls.
func (d Database) CheckClaims(ctx context.Context) (auth.Claims, error) {
	return auth.GetClaims(ctx)
}

// ValidateStruct checks that the named fields of a request struct are
// present: pointer fields must be non-nil, value fields non-zero. Failures
// come back as a single 422 with per-field detail.
func (d Database) ValidateStruct(s interface{}, requiredFields ...string) error {
	rv := reflect.ValueOf(s)
	if rv.Kind() == reflect.Ptr {
		rv = rv.Elem()
	}

	fields := map[string]string{}
	for _, name := range requiredFields {
		field := rv.FieldByName(name)
		if !field.IsValid() {
			continue
		}
		if field.Kind() == reflect.Ptr {
			if field.IsNil() {
				fields[name] = "required field"
			}
			continue
		}
		if field.IsZero() {
			fields[name] = "required field"
		}
	}

	if len(fields) > 0 {
		return web.NewValidationError(errors.New("required fields are missing"), fields)
	}

	return nil
}

// DeleteRow removes a row permanently. Missing rows are a 404.
func (d Database) DeleteRow(ctx context.Context, table string, id int) error {
	if _, err := d.CheckClaims(ctx); err != nil {
		return err
	}

	result, err := d.NewDelete().Table(table).Where("id = ?", id).Exec(ctx)
	if err != nil {
		return web.NewRequestError(errors.Wrapf(err, "deleting %s row", table), http.StatusInternalServerError)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return web.NewRequestError(errors.Wrap(err, "reading rows affected"), http.StatusInternalServerError)
	}
	if rows == 0 {
		return web.NewRequestError(errors.Errorf("%s not found", table), http.StatusNotFound)
	}

	return nil
}

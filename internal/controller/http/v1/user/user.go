package user

import (
	"net/http"
	"reflect"

	"hrms/backend/foundation/web"
	"hrms/backend/internal/repository/postgres/user"
	"hrms/backend/internal/service"

	"github.com/pkg/errors"
)

type Controller struct {
	user User
}

func NewController(user User) *Controller {
	return &Controller{user}
}

func (uc Controller) GetList(c *web.Context) error {
	var filter user.Filter

	if limit, ok := c.GetQueryFunc(reflect.Int, "limit").(*int); ok {
		filter.Limit = limit
	}
	if offset, ok := c.GetQueryFunc(reflect.Int, "offset").(*int); ok {
		filter.Offset = offset
	}
	if page, ok := c.GetQueryFunc(reflect.Int, "page").(*int); ok {
		filter.Page = page
	}
	if search, ok := c.GetQueryFunc(reflect.String, "search").(*string); ok {
		filter.Search = search
	}

	if err := c.ValidQuery(); err != nil {
		return c.RespondError(err)
	}

	list, count, err := uc.user.GetList(c.Ctx, filter)
	if err != nil {
		return c.RespondError(err)
	}

	return c.Respond(map[string]interface{}{
		"data": map[string]interface{}{
			"results": list,
			"count":   count,
		},
		"status": true,
	}, http.StatusOK)
}

func (uc Controller) GetDetailById(c *web.Context) error {
	id := c.GetParam(reflect.Int, "id").(int)

	if err := c.ValidParam(); err != nil {
		return c.RespondError(err)
	}

	response, err := uc.user.GetDetailById(c.Ctx, id)
	if err != nil {
		return c.RespondError(err)
	}

	return c.Respond(map[string]interface{}{
		"data":   response,
		"status": true,
	}, http.StatusOK)
}

func (uc Controller) GetDetailByEmail(c *web.Context) error {
	email := c.GetParam(reflect.String, "email").(string)

	if err := c.ValidParam(); err != nil {
		return c.RespondError(err)
	}

	response, err := uc.user.GetDetailByEmail(c.Ctx, email)
	if err != nil {
		return c.RespondError(err)
	}

	return c.Respond(map[string]interface{}{
		"data":   response,
		"status": true,
	}, http.StatusOK)
}

// GetProfile returns the record of whoever the token belongs to.
func (uc Controller) GetProfile(c *web.Context) error {
	response, err := uc.user.GetProfile(c.Ctx)
	if err != nil {
		return c.RespondError(err)
	}

	return c.Respond(map[string]interface{}{
		"data":   response,
		"status": true,
	}, http.StatusOK)
}

func (uc Controller) Create(c *web.Context) error {
	var request user.CreateRequest

	if err := c.BindFunc(&request, "Name", "Email", "Password", "Department", "Designation", "Role"); err != nil {
		return c.RespondError(err)
	}

	response, err := uc.user.Create(c.Ctx, request)
	if err != nil {
		return c.RespondError(err)
	}

	return c.Respond(map[string]interface{}{
		"data":   response,
		"status": true,
	}, http.StatusCreated)
}

func (uc Controller) UpdateColumns(c *web.Context) error {
	id := c.GetParam(reflect.Int, "id").(int)

	if err := c.ValidParam(); err != nil {
		return c.RespondError(err)
	}

	var request user.UpdateRequest

	if err := c.BindFunc(&request); err != nil {
		return c.RespondError(err)
	}

	request.ID = id

	err := uc.user.UpdateColumns(c.Ctx, request)
	if err != nil {
		return c.RespondError(err)
	}

	return c.Respond(map[string]interface{}{
		"data":   "ok!",
		"status": true,
	}, http.StatusOK)
}

func (uc Controller) Delete(c *web.Context) error {
	id := c.GetParam(reflect.Int, "id").(int)

	if err := c.ValidParam(); err != nil {
		return c.RespondError(err)
	}

	err := uc.user.Delete(c.Ctx, id)
	if err != nil {
		return c.RespondError(err)
	}

	return c.Respond(map[string]interface{}{
		"data":   "ok!",
		"status": true,
	}, http.StatusOK)
}

// ExportEmployee streams the full roster as an xlsx download.
func (uc Controller) ExportEmployee(c *web.Context) error {
	list, _, err := uc.user.GetList(c.Ctx, user.Filter{})
	if err != nil {
		return c.RespondError(err)
	}

	rows := make([]service.EmployeeRow, 0, len(list))
	for _, u := range list {
		row := service.EmployeeRow{}
		if u.Name != nil {
			row.Name = *u.Name
		}
		if u.Email != nil {
			row.Email = *u.Email
		}
		if u.Department != nil {
			row.Department = *u.Department
		}
		if u.Designation != nil {
			row.Designation = *u.Designation
		}
		if u.Phone != nil {
			row.Phone = *u.Phone
		}
		if u.Role != nil {
			row.Role = *u.Role
		}
		if u.IsActive != nil {
			row.Active = *u.IsActive
		}
		rows = append(rows, row)
	}

	buf, err := service.EmployeesExcel(rows)
	if err != nil {
		return c.RespondError(web.NewRequestError(errors.Wrap(err, "exporting employees"), http.StatusInternalServerError))
	}

	c.Header("Content-Disposition", `attachment; filename="employees.xlsx"`)
	c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", buf.Bytes())
	return nil
}

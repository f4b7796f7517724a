package leave

import (
	"net/http"
	"reflect"

	"hrms/backend/foundation/web"
	"hrms/backend/internal/repository/postgres/leave"

	"github.com/pkg/errors"
)

type Controller struct {
	leave Leave
}

func NewController(leave Leave) *Controller {
	return &Controller{leave}
}

func (uc Controller) GetList(c *web.Context) error {
	var filter leave.Filter

	if status, ok := c.GetQueryFunc(reflect.String, "status").(*string); ok {
		filter.Status = status
	}

	if err := c.ValidQuery(); err != nil {
		return c.RespondError(err)
	}

	list, count, err := uc.leave.GetList(c.Ctx, filter)
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

// statusSegments maps the optional trailing path segment onto stored status
// values.
var statusSegments = map[string]string{
	"pending":  leave.StatusPending,
	"approved": leave.StatusApproved,
	"rejected": leave.StatusRejected,
}

// GetListByUserId lists one user's requests, optionally narrowed by a
// pending/approved/rejected path segment.
func (uc Controller) GetListByUserId(c *web.Context) error {
	id := c.GetParam(reflect.Int, "id").(int)

	if err := c.ValidParam(); err != nil {
		return c.RespondError(err)
	}

	var status *string
	if segment := c.Param("status"); segment != "" {
		mapped, ok := statusSegments[segment]
		if !ok {
			return c.RespondError(web.NewRequestError(errors.New("not found"), http.StatusNotFound))
		}
		status = &mapped
	}

	list, count, err := uc.leave.GetListByUserId(c.Ctx, id, status)
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

	response, err := uc.leave.GetDetailById(c.Ctx, id)
	if err != nil {
		return c.RespondError(err)
	}

	return c.Respond(map[string]interface{}{
		"data":   response,
		"status": true,
	}, http.StatusOK)
}

func (uc Controller) Create(c *web.Context) error {
	var request leave.CreateRequest

	if err := c.BindFunc(&request, "StartDate", "EndDate", "Reason"); err != nil {
		return c.RespondError(err)
	}

	response, err := uc.leave.Create(c.Ctx, request)
	if err != nil {
		return c.RespondError(err)
	}

	return c.Respond(map[string]interface{}{
		"data":   response,
		"status": true,
	}, http.StatusCreated)
}

// UpdateColumns is also how managers approve or reject, by setting status.
func (uc Controller) UpdateColumns(c *web.Context) error {
	id := c.GetParam(reflect.Int, "id").(int)

	if err := c.ValidParam(); err != nil {
		return c.RespondError(err)
	}

	var request leave.UpdateRequest

	if err := c.BindFunc(&request); err != nil {
		return c.RespondError(err)
	}

	request.ID = id

	err := uc.leave.UpdateColumns(c.Ctx, request)
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

	err := uc.leave.Delete(c.Ctx, id)
	if err != nil {
		return c.RespondError(err)
	}

	return c.Respond(map[string]interface{}{
		"data":   "ok!",
		"status": true,
	}, http.StatusOK)
}

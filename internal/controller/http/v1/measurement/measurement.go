package measurement

import (
	"context"
	"net/http"
	"reflect"

	"hrms/backend/foundation/web"
	"hrms/backend/internal/repository/postgres/measurement"
	"hrms/backend/internal/service"

	"github.com/pkg/errors"
)

type Controller struct {
	measurement Measurement
	baseURL     string
}

func NewController(measurement Measurement, baseURL string) *Controller {
	return &Controller{measurement: measurement, baseURL: baseURL}
}

func (uc Controller) GetList(c *web.Context) error {
	return uc.listPage(c, uc.measurement.GetList, "/api/v1/customer-measurement/list")
}

// GetTrashedList pages through soft-deleted rows only.
func (uc Controller) GetTrashedList(c *web.Context) error {
	return uc.listPage(c, uc.measurement.GetTrashedList, "/api/v1/customer-measurement/trashed")
}

type listFunc func(ctx context.Context, filter measurement.Filter) ([]measurement.GetListResponse, int, error)

func (uc Controller) listPage(c *web.Context, fetch listFunc, basePath string) error {
	var filter measurement.Filter

	if page, ok := c.GetQueryFunc(reflect.Int, "page").(*int); ok {
		filter.Page = page
	}
	if perPage, ok := c.GetQueryFunc(reflect.Int, "per_page").(*int); ok {
		filter.PerPage = perPage
	}
	if search, ok := c.GetQueryFunc(reflect.String, "search").(*string); ok {
		filter.Search = search
	}

	if err := c.ValidQuery(); err != nil {
		return c.RespondError(err)
	}

	list, count, err := fetch(c.Ctx, filter)
	if err != nil {
		return c.RespondError(err)
	}

	page, perPage := 1, 15
	if filter.Page != nil {
		page = *filter.Page
	}
	if filter.PerPage != nil {
		perPage = *filter.PerPage
	}

	links, meta := web.Paginate(uc.baseURL+basePath, page, perPage, count)

	return c.Respond(map[string]interface{}{
		"data":   list,
		"links":  links,
		"meta":   meta,
		"status": true,
	}, http.StatusOK)
}

func (uc Controller) GetDetailById(c *web.Context) error {
	id := c.GetParam(reflect.Int, "id").(int)

	if err := c.ValidParam(); err != nil {
		return c.RespondError(err)
	}

	response, err := uc.measurement.GetDetailById(c.Ctx, id)
	if err != nil {
		return c.RespondError(err)
	}

	return c.Respond(map[string]interface{}{
		"data":   response,
		"status": true,
	}, http.StatusOK)
}

func (uc Controller) Create(c *web.Context) error {
	var request measurement.CreateRequest

	if err := c.BindFunc(&request, "Name", "Code", "Phone"); err != nil {
		return c.RespondError(err)
	}

	response, err := uc.measurement.Create(c.Ctx, request)
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

	var request measurement.UpdateRequest

	if err := c.BindFunc(&request); err != nil {
		return c.RespondError(err)
	}

	request.ID = id

	err := uc.measurement.UpdateColumns(c.Ctx, request)
	if err != nil {
		return c.RespondError(err)
	}

	return c.Respond(map[string]interface{}{
		"data":   "ok!",
		"status": true,
	}, http.StatusOK)
}

// Delete soft-deletes; the row stays recoverable through Restore.
func (uc Controller) Delete(c *web.Context) error {
	id := c.GetParam(reflect.Int, "id").(int)

	if err := c.ValidParam(); err != nil {
		return c.RespondError(err)
	}

	err := uc.measurement.Delete(c.Ctx, id)
	if err != nil {
		return c.RespondError(err)
	}

	return c.Respond(map[string]interface{}{
		"data":   "ok!",
		"status": true,
	}, http.StatusOK)
}

func (uc Controller) Restore(c *web.Context) error {
	id := c.GetParam(reflect.Int, "id").(int)

	if err := c.ValidParam(); err != nil {
		return c.RespondError(err)
	}

	err := uc.measurement.Restore(c.Ctx, id)
	if err != nil {
		return c.RespondError(err)
	}

	return c.Respond(map[string]interface{}{
		"data":   "ok!",
		"status": true,
	}, http.StatusOK)
}

// ForceDelete permanently removes an already trashed row.
func (uc Controller) ForceDelete(c *web.Context) error {
	id := c.GetParam(reflect.Int, "id").(int)

	if err := c.ValidParam(); err != nil {
		return c.RespondError(err)
	}

	err := uc.measurement.ForceDelete(c.Ctx, id)
	if err != nil {
		return c.RespondError(err)
	}

	return c.Respond(map[string]interface{}{
		"data":   "ok!",
		"status": true,
	}, http.StatusOK)
}

// SlipPDF streams a printable measurement slip for one customer.
func (uc Controller) SlipPDF(c *web.Context) error {
	id := c.GetParam(reflect.Int, "id").(int)

	if err := c.ValidParam(); err != nil {
		return c.RespondError(err)
	}

	detail, err := uc.measurement.GetDetailById(c.Ctx, id)
	if err != nil {
		return c.RespondError(err)
	}

	slip := service.MeasurementSlip{
		Name:    deref(detail.Name),
		Code:    deref(detail.Code),
		Phone:   deref(detail.Phone),
		Address: deref(detail.Address),
		Note:    deref(detail.Note),
		Values: []service.MeasurementValue{
			{Label: "Kameez Length", Value: deref(detail.KameezLength)},
			{Label: "Teera", Value: deref(detail.Teera)},
			{Label: "Baazo", Value: deref(detail.Baazo)},
			{Label: "Chest", Value: deref(detail.Chest)},
			{Label: "Neck", Value: deref(detail.Neck)},
			{Label: "Daman", Value: deref(detail.Daman)},
			{Label: "Kera", Value: deref(detail.Kera)},
			{Label: "Shalwar", Value: deref(detail.Shalwar)},
			{Label: "Pancha", Value: deref(detail.Pancha)},
			{Label: "Pocket", Value: deref(detail.Pocket)},
		},
	}

	buf, err := service.MeasurementSlipPDF(slip)
	if err != nil {
		return c.RespondError(web.NewRequestError(errors.Wrap(err, "rendering slip"), http.StatusInternalServerError))
	}

	c.Header("Content-Disposition", `attachment; filename="measurement-slip.pdf"`)
	c.Data(http.StatusOK, "application/pdf", buf.Bytes())
	return nil
}

// CodeQR returns the customer code as a PNG QR image. Size defaults to 256px.
func (uc Controller) CodeQR(c *web.Context) error {
	id := c.GetParam(reflect.Int, "id").(int)

	size := 256
	if s, ok := c.GetQueryFunc(reflect.Int, "size").(*int); ok && s != nil {
		size = *s
	}

	if err := c.ValidParam(); err != nil {
		return c.RespondError(err)
	}
	if err := c.ValidQuery(); err != nil {
		return c.RespondError(err)
	}

	detail, err := uc.measurement.GetDetailById(c.Ctx, id)
	if err != nil {
		return c.RespondError(err)
	}

	data, err := service.CodeQRPNG(deref(detail.Code), size)
	if err != nil {
		return c.RespondError(web.NewRequestError(errors.Wrap(err, "rendering qr"), http.StatusInternalServerError))
	}

	c.Data(http.StatusOK, "image/png", data)
	return nil
}

// LabelSheet prints QR labels for live customers, optionally narrowed by
// search, capped at one batch of 500.
func (uc Controller) LabelSheet(c *web.Context) error {
	var filter measurement.Filter

	if search, ok := c.GetQueryFunc(reflect.String, "search").(*string); ok {
		filter.Search = search
	}

	if err := c.ValidQuery(); err != nil {
		return c.RespondError(err)
	}

	batch := 500
	filter.PerPage = &batch

	list, _, err := uc.measurement.GetList(c.Ctx, filter)
	if err != nil {
		return c.RespondError(err)
	}

	items := make([]service.LabelItem, 0, len(list))
	for _, m := range list {
		items = append(items, service.LabelItem{
			Name: deref(m.Name),
			Code: deref(m.Code),
		})
	}

	buf, err := service.LabelSheetPDF(items)
	if err != nil {
		return c.RespondError(web.NewRequestError(errors.Wrap(err, "rendering labels"), http.StatusInternalServerError))
	}

	c.Header("Content-Disposition", `attachment; filename="measurement-labels.pdf"`)
	c.Data(http.StatusOK, "application/pdf", buf.Bytes())
	return nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

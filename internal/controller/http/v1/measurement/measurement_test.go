package measurement

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"hrms/backend/foundation/web"
	"hrms/backend/internal/repository/postgres/measurement"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type measurementMock struct {
	listFilter    *measurement.Filter
	trashedFilter *measurement.Filter
	createReq     *measurement.CreateRequest
	updateReq     *measurement.UpdateRequest
	deletedID     int
	restoredID    int
	forcedID      int

	listRows    []measurement.GetListResponse
	listCount   int
	trashedRows []measurement.GetListResponse
	detail      measurement.GetDetailByIdResponse
	createErr   error
	detailErr   error
}

func (m *measurementMock) GetList(ctx context.Context, filter measurement.Filter) ([]measurement.GetListResponse, int, error) {
	m.listFilter = &filter
	return m.listRows, m.listCount, nil
}

func (m *measurementMock) GetTrashedList(ctx context.Context, filter measurement.Filter) ([]measurement.GetListResponse, int, error) {
	m.trashedFilter = &filter
	return m.trashedRows, len(m.trashedRows), nil
}

func (m *measurementMock) GetDetailById(ctx context.Context, id int) (measurement.GetDetailByIdResponse, error) {
	if m.detailErr != nil {
		return measurement.GetDetailByIdResponse{}, m.detailErr
	}
	return m.detail, nil
}

func (m *measurementMock) Create(ctx context.Context, request measurement.CreateRequest) (measurement.CreateResponse, error) {
	m.createReq = &request
	if m.createErr != nil {
		return measurement.CreateResponse{}, m.createErr
	}
	return measurement.CreateResponse{ID: 1, Name: request.Name, Code: request.Code, Phone: request.Phone}, nil
}

func (m *measurementMock) UpdateColumns(ctx context.Context, request measurement.UpdateRequest) error {
	m.updateReq = &request
	return nil
}

func (m *measurementMock) Delete(ctx context.Context, id int) error {
	m.deletedID = id
	return nil
}

func (m *measurementMock) Restore(ctx context.Context, id int) error {
	m.restoredID = id
	return nil
}

func (m *measurementMock) ForceDelete(ctx context.Context, id int) error {
	m.forcedID = id
	return nil
}

func str(s string) *string { return &s }

func newApp(mock *measurementMock) *web.App {
	controller := NewController(mock, "http://localhost:8080")

	app := web.NewApp()
	app.Get("/api/v1/customer-measurement/list", controller.GetList)
	app.Get("/api/v1/customer-measurement/trashed", controller.GetTrashedList)
	app.Get("/api/v1/customer-measurement/:id", controller.GetDetailById)
	app.Get("/api/v1/customer-measurement/:id/pdf", controller.SlipPDF)
	app.Get("/api/v1/customer-measurement/:id/qrcode", controller.CodeQR)
	app.Get("/api/v1/customer-measurement/labels", controller.LabelSheet)
	app.Post("/api/v1/customer-measurement/create", controller.Create)
	app.Post("/api/v1/customer-measurement/:id/restore", controller.Restore)
	app.Patch("/api/v1/customer-measurement/:id", controller.UpdateColumns)
	app.Delete("/api/v1/customer-measurement/:id", controller.Delete)
	app.Delete("/api/v1/customer-measurement/:id/force", controller.ForceDelete)
	return app
}

func doJSON(app *web.App, method, target, body string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	app.ServeHTTP(rec, req)
	return rec
}

func TestGetListEnvelope(t *testing.T) {
	mock := &measurementMock{
		listRows: []measurement.GetListResponse{
			{ID: 1, Name: str("Karim"), Code: str("CM-0001")},
			{ID: 2, Name: str("Aziz"), Code: str("CM-0002")},
		},
		listCount: 31,
	}
	app := newApp(mock)

	rec := doJSON(app, http.MethodGet, "/api/v1/customer-measurement/list?page=2&per_page=15&search=CM", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"total":31`)
	assert.Contains(t, rec.Body.String(), `"current_page":2`)
	assert.Contains(t, rec.Body.String(), `"last_page":3`)
	assert.Contains(t, rec.Body.String(), `"links"`)
	assert.Contains(t, rec.Body.String(), "page=1")

	require.NotNil(t, mock.listFilter)
	require.NotNil(t, mock.listFilter.Page)
	assert.Equal(t, 2, *mock.listFilter.Page)
	require.NotNil(t, mock.listFilter.Search)
	assert.Equal(t, "CM", *mock.listFilter.Search)
}

func TestCreateDuplicateCode(t *testing.T) {
	mock := &measurementMock{
		createErr: web.NewValidationError(errors.New("duplicate code"), map[string]string{"code": "this customer code already exists"}),
	}
	app := newApp(mock)

	rec := doJSON(app, http.MethodPost, "/api/v1/customer-measurement/create",
		`{"name":"Karim","code":"CM-0001","phone":"998931112233"}`)

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Contains(t, rec.Body.String(), "this customer code already exists")
	assert.Contains(t, rec.Body.String(), `"status":false`)
}

func TestCreateMissingRequired(t *testing.T) {
	mock := &measurementMock{}
	app := newApp(mock)

	rec := doJSON(app, http.MethodPost, "/api/v1/customer-measurement/create", `{"name":"Karim"}`)

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Nil(t, mock.createReq)
}

func TestCreateSuccess(t *testing.T) {
	mock := &measurementMock{}
	app := newApp(mock)

	rec := doJSON(app, http.MethodPost, "/api/v1/customer-measurement/create",
		`{"name":"Karim","code":"CM-0001","phone":"998931112233","chest":"40"}`)

	assert.Equal(t, http.StatusCreated, rec.Code)
	require.NotNil(t, mock.createReq)
	assert.Equal(t, "CM-0001", *mock.createReq.Code)
	assert.Equal(t, "40", *mock.createReq.Chest)
}

func TestSoftDeleteThenRestore(t *testing.T) {
	mock := &measurementMock{}
	app := newApp(mock)

	rec := doJSON(app, http.MethodDelete, "/api/v1/customer-measurement/9", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 9, mock.deletedID)

	rec = doJSON(app, http.MethodPost, "/api/v1/customer-measurement/9/restore", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 9, mock.restoredID)

	rec = doJSON(app, http.MethodDelete, "/api/v1/customer-measurement/9/force", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 9, mock.forcedID)
}

func TestUpdatePassesOnlySuppliedFields(t *testing.T) {
	mock := &measurementMock{}
	app := newApp(mock)

	rec := doJSON(app, http.MethodPatch, "/api/v1/customer-measurement/4", `{"chest":"42"}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, mock.updateReq)
	assert.Equal(t, 4, mock.updateReq.ID)
	require.NotNil(t, mock.updateReq.Chest)
	assert.Equal(t, "42", *mock.updateReq.Chest)
	assert.Nil(t, mock.updateReq.Name)
	assert.Nil(t, mock.updateReq.Code)
}

func TestDetailNotFound(t *testing.T) {
	mock := &measurementMock{
		detailErr: web.NewRequestError(errors.New("not found"), http.StatusNotFound),
	}
	app := newApp(mock)

	rec := doJSON(app, http.MethodGet, "/api/v1/customer-measurement/77", "")

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestSlipPDF(t *testing.T) {
	mock := &measurementMock{
		detail: measurement.GetDetailByIdResponse{
			ID:    3,
			Name:  str("Karim"),
			Code:  str("CM-0003"),
			Phone: str("998931112233"),
			Chest: str("40"),
		},
	}
	app := newApp(mock)

	rec := doJSON(app, http.MethodGet, "/api/v1/customer-measurement/3/pdf", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/pdf", rec.Header().Get("Content-Type"))
	assert.True(t, strings.HasPrefix(rec.Body.String(), "%PDF"))
}

func TestCodeQR(t *testing.T) {
	mock := &measurementMock{
		detail: measurement.GetDetailByIdResponse{ID: 3, Code: str("CM-0003")},
	}
	app := newApp(mock)

	rec := doJSON(app, http.MethodGet, "/api/v1/customer-measurement/3/qrcode?size=128", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/png", rec.Header().Get("Content-Type"))
	assert.True(t, strings.HasPrefix(rec.Body.String(), "\x89PNG"))
}

func TestLabelSheet(t *testing.T) {
	mock := &measurementMock{
		listRows: []measurement.GetListResponse{
			{ID: 1, Name: str("Karim"), Code: str("CM-0001")},
		},
		listCount: 1,
	}
	app := newApp(mock)

	rec := doJSON(app, http.MethodGet, "/api/v1/customer-measurement/labels", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/pdf", rec.Header().Get("Content-Type"))
	assert.True(t, strings.HasPrefix(rec.Body.String(), "%PDF"))

	require.NotNil(t, mock.listFilter)
	require.NotNil(t, mock.listFilter.PerPage)
	assert.Equal(t, 500, *mock.listFilter.PerPage)
}

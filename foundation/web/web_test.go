package web

import (
	"net/http"
	"net/http/httptest"
	"reflect"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newTestContext(t *testing.T, method, target, body string) (*Context, *httptest.ResponseRecorder) {
	t.Helper()

	rec := httptest.NewRecorder()
	ginCtx, _ := gin.CreateTestContext(rec)

	var reader *strings.Reader
	if body != "" {
		reader = strings.NewReader(body)
	} else {
		reader = strings.NewReader("")
	}

	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	ginCtx.Request = req

	return &Context{Context: ginCtx, Ctx: req.Context()}, rec
}

func TestBindFuncMissingRequiredField(t *testing.T) {
	c, _ := newTestContext(t, http.MethodPost, "/", `{"name":"Aziz"}`)

	var request struct {
		Name  *string `json:"name"`
		Email *string `json:"email"`
	}

	err := c.BindFunc(&request, "Name", "Email")
	require.Error(t, err)

	webErr, ok := IsRequestError(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusUnprocessableEntity, webErr.Status)
	assert.Equal(t, "required field", webErr.Fields["Email"])
	assert.NotContains(t, webErr.Fields, "Name")
}

func TestBindFuncAllFieldsPresent(t *testing.T) {
	c, _ := newTestContext(t, http.MethodPost, "/", `{"name":"Aziz","email":"a@b.co"}`)

	var request struct {
		Name  *string `json:"name"`
		Email *string `json:"email"`
	}

	err := c.BindFunc(&request, "Name", "Email")
	require.NoError(t, err)
	assert.Equal(t, "Aziz", *request.Name)
}

func TestBindFuncBadJSON(t *testing.T) {
	c, _ := newTestContext(t, http.MethodPost, "/", `{"name":`)

	var request struct {
		Name *string `json:"name"`
	}

	err := c.BindFunc(&request)
	require.Error(t, err)

	webErr, ok := IsRequestError(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusUnprocessableEntity, webErr.Status)
}

func TestGetParamInt(t *testing.T) {
	c, _ := newTestContext(t, http.MethodGet, "/", "")
	c.Params = gin.Params{{Key: "id", Value: "42"}}

	id := c.GetParam(reflect.Int, "id").(int)
	require.NoError(t, c.ValidParam())
	assert.Equal(t, 42, id)
}

func TestGetParamIntInvalid(t *testing.T) {
	c, _ := newTestContext(t, http.MethodGet, "/", "")
	c.Params = gin.Params{{Key: "id", Value: "abc"}}

	_ = c.GetParam(reflect.Int, "id").(int)
	err := c.ValidParam()
	require.Error(t, err)

	webErr, ok := IsRequestError(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusUnprocessableEntity, webErr.Status)
	assert.Equal(t, "must be an integer", webErr.Fields["id"])
}

func TestGetQueryFunc(t *testing.T) {
	c, _ := newTestContext(t, http.MethodGet, "/?limit=10&search=jo&active=true", "")

	limit, ok := c.GetQueryFunc(reflect.Int, "limit").(*int)
	require.True(t, ok)
	require.NotNil(t, limit)
	assert.Equal(t, 10, *limit)

	search, ok := c.GetQueryFunc(reflect.String, "search").(*string)
	require.True(t, ok)
	require.NotNil(t, search)
	assert.Equal(t, "jo", *search)

	active, ok := c.GetQueryFunc(reflect.Bool, "active").(*bool)
	require.True(t, ok)
	require.NotNil(t, active)
	assert.True(t, *active)

	require.NoError(t, c.ValidQuery())
}

func TestGetQueryFuncAbsentIsNil(t *testing.T) {
	c, _ := newTestContext(t, http.MethodGet, "/", "")

	limit := c.GetQueryFunc(reflect.Int, "limit").(*int)
	assert.Nil(t, limit)

	search := c.GetQueryFunc(reflect.String, "search").(*string)
	assert.Nil(t, search)

	require.NoError(t, c.ValidQuery())
}

func TestGetQueryFuncInvalidInt(t *testing.T) {
	c, _ := newTestContext(t, http.MethodGet, "/?limit=many", "")

	limit := c.GetQueryFunc(reflect.Int, "limit").(*int)
	assert.Nil(t, limit)

	err := c.ValidQuery()
	require.Error(t, err)

	webErr, ok := IsRequestError(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusUnprocessableEntity, webErr.Status)
}

func TestRespondErrorKnownStatus(t *testing.T) {
	c, rec := newTestContext(t, http.MethodGet, "/", "")

	err := c.RespondError(NewRequestError(errors.New("not found"), http.StatusNotFound))
	require.Error(t, err)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"error":"not found","status":false}`, rec.Body.String())
}

func TestRespondErrorWrappedCause(t *testing.T) {
	c, rec := newTestContext(t, http.MethodGet, "/", "")

	cause := NewRequestError(errors.New("no permission"), http.StatusForbidden)
	err := c.RespondError(errors.Wrap(cause, "checking role"))
	require.Error(t, err)

	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestRespondErrorUnknownIs500(t *testing.T) {
	c, rec := newTestContext(t, http.MethodGet, "/", "")

	_ = c.RespondError(errors.New("boom"))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.NotContains(t, rec.Body.String(), "boom")
}

func TestRespondErrorValidationFields(t *testing.T) {
	c, rec := newTestContext(t, http.MethodGet, "/", "")

	_ = c.RespondError(NewValidationError(errors.New("invalid email"), map[string]string{"email": "must be a valid email address"}))

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Contains(t, rec.Body.String(), `"fields"`)
	assert.Contains(t, rec.Body.String(), "must be a valid email address")
}

func TestPaginate(t *testing.T) {
	links, meta := Paginate("/api/v1/customer-measurement/list", 2, 15, 50)

	assert.Equal(t, "/api/v1/customer-measurement/list?page=1&per_page=15", links.First)
	assert.Equal(t, "/api/v1/customer-measurement/list?page=4&per_page=15", links.Last)
	require.NotNil(t, links.Prev)
	assert.Equal(t, "/api/v1/customer-measurement/list?page=1&per_page=15", *links.Prev)
	require.NotNil(t, links.Next)
	assert.Equal(t, "/api/v1/customer-measurement/list?page=3&per_page=15", *links.Next)

	assert.Equal(t, 2, meta.CurrentPage)
	assert.Equal(t, 15, meta.PerPage)
	assert.Equal(t, 4, meta.LastPage)
	assert.Equal(t, 50, meta.Total)
}

func TestPaginateSinglePage(t *testing.T) {
	links, meta := Paginate("/base", 1, 15, 7)

	assert.Nil(t, links.Prev)
	assert.Nil(t, links.Next)
	assert.Equal(t, 1, meta.LastPage)
}

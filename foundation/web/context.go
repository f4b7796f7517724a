package web

import (
	"context"
	"net/http"
	"reflect"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
)

// Context carries the gin context plus the request context used by the
// repository layer (claims travel on Ctx, not on gin's keys).
type Context struct {
	*gin.Context
	Ctx context.Context

	paramErrors map[string]string
	queryErrors map[string]string
}

// BindFunc decodes the request body into v and verifies the named fields
// were supplied. Fields are matched by struct field name; a nil pointer or
// zero string/int counts as missing.
func (c *Context) BindFunc(v interface{}, requiredFields ...string) error {
	if err := c.ShouldBind(v); err != nil {
		return NewRequestError(errors.Wrap(err, "parsing request body"), http.StatusUnprocessableEntity)
	}

	fields := map[string]string{}
	rv := reflect.ValueOf(v).Elem()
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
		return NewValidationError(errors.New("required fields are missing"), fields)
	}

	return nil
}

// GetParam parses a path parameter as the given kind. Errors are collected
// and reported by ValidParam so call sites stay linear.
func (c *Context) GetParam(kind reflect.Kind, name string) interface{} {
	value := c.Param(name)

	switch kind {
	case reflect.Int:
		v, err := strconv.Atoi(value)
		if err != nil {
			c.addParamError(name, "must be an integer")
			return 0
		}
		return v
	default:
		if value == "" {
			c.addParamError(name, "required parameter")
		}
		return value
	}
}

func (c *Context) ValidParam() error {
	if len(c.paramErrors) > 0 {
		return NewValidationError(errors.New("invalid path parameters"), c.paramErrors)
	}
	return nil
}

// GetQueryFunc parses an optional query parameter, returning a typed pointer
// that is nil when the parameter is absent.
func (c *Context) GetQueryFunc(kind reflect.Kind, name string) interface{} {
	value, ok := c.GetQuery(name)

	switch kind {
	case reflect.Int:
		if !ok {
			return (*int)(nil)
		}
		v, err := strconv.Atoi(value)
		if err != nil {
			c.addQueryError(name, "must be an integer")
			return (*int)(nil)
		}
		return &v
	case reflect.Bool:
		if !ok {
			return (*bool)(nil)
		}
		v, err := strconv.ParseBool(value)
		if err != nil {
			c.addQueryError(name, "must be a boolean")
			return (*bool)(nil)
		}
		return &v
	default:
		if !ok {
			return (*string)(nil)
		}
		return &value
	}
}

func (c *Context) ValidQuery() error {
	if len(c.queryErrors) > 0 {
		return NewValidationError(errors.New("invalid query parameters"), c.queryErrors)
	}
	return nil
}

func (c *Context) Respond(data interface{}, status int) error {
	c.JSON(status, data)
	return nil
}

// RespondError writes the JSON error body matching err and returns err so
// the middleware chain still sees the failure.
func (c *Context) RespondError(err error) error {
	if webErr, ok := IsRequestError(errors.Cause(err)); ok {
		body := gin.H{
			"error":  webErr.Err.Error(),
			"status": false,
		}
		if len(webErr.Fields) > 0 {
			body["fields"] = webErr.Fields
		}
		c.JSON(webErr.Status, body)
		return err
	}

	c.JSON(http.StatusInternalServerError, gin.H{
		"error":  http.StatusText(http.StatusInternalServerError),
		"status": false,
	})
	return err
}

func (c *Context) addParamError(name, message string) {
	if c.paramErrors == nil {
		c.paramErrors = map[string]string{}
	}
	c.paramErrors[name] = message
}

func (c *Context) addQueryError(name, message string) {
	if c.queryErrors == nil {
		c.queryErrors = map[string]string{}
	}
	c.queryErrors[name] = message
}

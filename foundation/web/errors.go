package web

import "net/http"

// Error carries an HTTP status (and optional per-field detail) with a cause
// so the boundary can translate failures into a JSON body.
type Error struct {
	Err    error
	Status int
	Fields map[string]string
}

func (e *Error) Error() string {
	return e.Err.Error()
}

// NewRequestError is used for known request failures: not found, bad
// credentials, disallowed role and the like.
func NewRequestError(err error, status int) error {
	return &Error{Err: err, Status: status}
}

// NewValidationError reports per-field validation failures as a 422.
func NewValidationError(err error, fields map[string]string) error {
	return &Error{Err: err, Status: http.StatusUnprocessableEntity, Fields: fields}
}

// IsRequestError extracts the boundary error if err is one.
func IsRequestError(err error) (*Error, bool) {
	webErr, ok := err.(*Error)
	return webErr, ok
}

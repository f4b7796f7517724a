package postgres

import "github.com/pkg/errors"

// ErrNotFound is returned when a referenced id has no matching row.
var ErrNotFound = errors.New("not found")

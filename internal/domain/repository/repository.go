package repository

import "errors"

// ErrNotFound is returned when an id resolves to no row, or an update/delete
// affected nothing.
var ErrNotFound = errors.New("not found")

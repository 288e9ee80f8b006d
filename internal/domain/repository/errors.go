package repository

import "errors"

var (
	// ErrNotFound is returned by repositories when a record does not exist.
	ErrNotFound = errors.New("not found")
	// ErrDuplicate is returned when a unique constraint rejects a create.
	ErrDuplicate = errors.New("duplicate record")
)

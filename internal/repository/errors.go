package repository

import "errors"

var (
	ErrNotFound = errors.New("record not found")
	// ErrInvalidReference is returned when a todo points at a category that
	// does not exist.
	ErrInvalidReference = errors.New("invalid reference")
)

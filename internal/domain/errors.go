package domain

import "errors"

var (
	// ErrNotFound indicates the requested entity was not found.
	ErrNotFound = errors.New("not found")
	// ErrAlreadyExists indicates a uniqueness violation (e.g. duplicate
	// subscription email).
	ErrAlreadyExists = errors.New("already exists")
)

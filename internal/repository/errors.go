package repository

import "errors"

var (
	ErrNotFound = errors.New("not found")
	// ErrCorruptSnapshot marks a stored blob that is not valid progress JSON.
	ErrCorruptSnapshot = errors.New("corrupt snapshot")
)

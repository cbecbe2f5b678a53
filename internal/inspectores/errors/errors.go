package errors

import "errors"

var (
	ErrNotFound  = errors.New("usuario not found")
	ErrInvalidID = errors.New("invalid usuario id")
	ErrDuplicate = errors.New("usuario already exists")
)

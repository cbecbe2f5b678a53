package errors

import "errors"

var (
	ErrNotFound  = errors.New("boleta not found")
	ErrInvalidID = errors.New("invalid boleta id")
)

package errors

import "errors"

var (
	ErrNotFound          = errors.New("not found")
	ErrIllegalTransition = errors.New("illegal status transition")
	ErrInvalidStatus     = errors.New("invalid refund status")
	ErrInvalidAmount     = errors.New("invalid amount")
	ErrInvalidAccessKey  = errors.New("invalid access key")
)

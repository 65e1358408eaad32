package domain

import "errors"

var (
	ErrNotFound           = errors.New("not found")
	ErrInvalidArgument    = errors.New("invalid argument")
	ErrIllegalTransition  = errors.New("illegal status transition")
	ErrBackendUnavailable = errors.New("backend unavailable")
)

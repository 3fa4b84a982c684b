package client

import "errors"

var (
	ErrUnavailable        = errors.New("server unavailable")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrAlreadyExists      = errors.New("already exists")
	ErrNotFound           = errors.New("not found")
	ErrInvalidArgument    = errors.New("invalid argument")
)

// Package common defines shared constants and sentinel errors used across
// client and server layers. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound = errors.New("not found")
	ErrorStore    = errors.New("db error")

	// Credential errors.
	ErrorDuplicateEmail = errors.New("email already exists")
	ErrorHashing        = errors.New("password hashing error")

	// Service-level errors.
	ErrorInternal   = errors.New("internal error")
	ErrorValidation = errors.New("validation error")
)

package types

import "github.com/m-mizutani/goerr/v2"

var (
	// ErrNotFound is returned when a requested entity, repository path,
	// branch or file does not exist.
	ErrNotFound = goerr.New("not found")

	// ErrForbidden is returned when the caller is not allowed to access
	// the requested resource.
	ErrForbidden = goerr.New("forbidden")

	// ErrValidationFailed is returned when request parameters are rejected
	// before any delegated call is made.
	ErrValidationFailed = goerr.New("validation failed")

	// ErrInvalidOption is returned for invalid configuration values.
	ErrInvalidOption = goerr.New("invalid option")
)

package service

import "errors"

// Domain errors surfaced by the core services. Handlers translate these to
// API error codes; store errors from the repository layer pass through
// untouched so nothing is swallowed.
var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidInput       = errors.New("invalid input")
	ErrForbidden          = errors.New("forbidden")
	ErrNoLinkedChild      = errors.New("no child linked to this parent")
)

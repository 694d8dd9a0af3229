package domain

import "errors"

// ErrNotFound is returned by repo and service functions when the requested
// resource does not exist in the database.
// Handlers should map this to HTTP 404.
var ErrNotFound = errors.New("not found")

// ErrValidation is returned by service functions when input fails business
// rule validation (e.g. end time not after start time).
// Handlers should map this to HTTP 422 Unprocessable Entity.
var ErrValidation = errors.New("validation error")

// ErrImageTooLarge is returned when an inline image blob exceeds
// MaxImageBytes. It blocks only the one attach that triggered it.
// Handlers should map this to HTTP 413 Request Entity Too Large.
var ErrImageTooLarge = errors.New("image exceeds size limit")

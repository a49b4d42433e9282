package domain

import "errors"

// ErrNotFound is returned by store and service functions when the requested
// resource does not exist in the document.
// Handlers map this to HTTP 404.
var ErrNotFound = errors.New("not found")

// ErrValidation is returned by service functions when input fails business
// rule validation (e.g. missing required field, unknown booking status).
// Handlers map this to HTTP 400.
var ErrValidation = errors.New("validation error")

// ErrUnauthorized is returned when a caller cannot be identified: missing or
// malformed bearer token, expired token, or bad login credentials.
// Handlers map this to HTTP 401.
var ErrUnauthorized = errors.New("unauthorized")

// ErrForbidden is returned when an authenticated caller is denied by the
// authorization policy (not owner, not collaborator, not admin, ...).
// Handlers map this to HTTP 403.
var ErrForbidden = errors.New("forbidden")

// ErrConflict is returned when a uniqueness rule is violated, such as a
// duplicate username or email at registration.
// Handlers map this to HTTP 409.
var ErrConflict = errors.New("conflict")

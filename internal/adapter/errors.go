package adapter

import "errors"

// Sentinels for non-2xx server responses.
var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrConflict            = errors.New("conflict")
	ErrInternalServerError = errors.New("internal server error")

	// ErrNotLoggedIn is returned by admin calls made before Login.
	ErrNotLoggedIn = errors.New("not logged in")
)

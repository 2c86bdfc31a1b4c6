package adapter

import "errors"

var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrNotFound            = errors.New("not found")
	ErrConflict            = errors.New("conflict")
	ErrInternalServerError = errors.New("internal server error")
	ErrBadGateway          = errors.New("bad gateway")

	// ErrNotAuthenticated is returned without a request when no token is set.
	ErrNotAuthenticated = errors.New("not signed in")

	ErrInvalidAddress = errors.New("invalid server address")
)

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors used by the handlers and the authentication middleware.
// Callers can match against them with [errors.Is].
var (
	// ErrEmptyAuthorizationHeader is returned by the auth middleware when the
	// incoming request does not include an "Authorization" header at all.
	ErrEmptyAuthorizationHeader = errors.New("empty `Authorization` header")

	// ErrInvalidAuthorizationHeader is returned when the "Authorization"
	// header is not of the form "Bearer <token>".
	ErrInvalidAuthorizationHeader = errors.New("invalid `Authorization` header")

	ErrNoUserInContext     = errors.New("no authenticated user in request context")
	ErrInvalidJSON         = errors.New("invalid JSON was passed")
	ErrInvalidQueryParam   = errors.New("invalid query parameter")
	ErrInvalidDispatchKey  = errors.New("invalid dispatch key")
	ErrInvalidDispatchTime = errors.New("invalid `now` parameter, expected RFC3339")
)

package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")
	ErrInvalidCredentials  = errors.New("invalid email or password")
	ErrInvalidID           = errors.New("invalid id")
	ErrNothingToUpdate     = errors.New("at least one field must be provided for update")

	ErrTokenCreationFailed     = errors.New("token creation failed")
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")
	ErrHashingPassword         = errors.New("password hashing failed")

	ErrVersionIsNotSpecified = errors.New("app version is not specified")

	ErrRenderingEmail = errors.New("failed to render reminder email")
)

package config

import "errors"

// Validation errors returned when a configuration group is incomplete.
var (
	ErrInvalidAdapterConfigs  = errors.New("invalid adapter configuration")
	ErrInvalidStorageConfigs  = errors.New("invalid storage configuration")
	ErrInvalidAppConfigs      = errors.New("invalid app configuration")
	ErrInvalidServerConfigs   = errors.New("invalid server configuration")
	ErrInvalidWorkerConfigs   = errors.New("invalid worker configuration")
	ErrInvalidReminderConfigs = errors.New("invalid reminder configuration")
	ErrInvalidSpeechConfigs   = errors.New("invalid speech configuration")
)

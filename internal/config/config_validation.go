// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"fmt"
	"net/url"
)

// validate checks the invariants shared by both binaries.
func (cfg *StructuredConfig) validate() error {
	var errs []error

	switch cfg.Storage.DB.Driver {
	case "", DriverPostgres, DriverSQLite:
	default:
		errs = append(errs, fmt.Errorf("%w: unknown driver %q", ErrInvalidStorageConfigs, cfg.Storage.DB.Driver))
	}

	if cfg.Reminders.Window < 0 {
		errs = append(errs, fmt.Errorf("%w: negative window", ErrInvalidReminderConfigs))
	}

	if cfg.Workers.ReminderInterval < 0 {
		errs = append(errs, fmt.Errorf("%w: negative reminder interval", ErrInvalidWorkerConfigs))
	}

	return errors.Join(errs...)
}

// validateServer adds the checks cmd/server needs on top of validate.
func (cfg *StructuredConfig) validateServer() error {
	if cfg.Storage.DB.DSN == "" {
		return fmt.Errorf("%w: empty DSN", ErrInvalidStorageConfigs)
	}

	if cfg.App.TokenSignKey == "" || cfg.App.TokenIssuer == "" || cfg.App.TokenDuration <= 0 {
		return fmt.Errorf("%w: token settings are required", ErrInvalidAppConfigs)
	}

	if cfg.Server.HTTPAddress == "" || cfg.Server.RequestTimeout <= 0 {
		return ErrInvalidServerConfigs
	}

	if cfg.Workers.ReminderInterval > 0 && cfg.Reminders.Window <= 0 {
		return fmt.Errorf("%w: reminder worker needs a positive window", ErrInvalidReminderConfigs)
	}

	return nil
}

func (cfg *ClientConfig) validate() error {
	if cfg.Adapter.HTTPAddress == "" || cfg.Adapter.RequestTimeout <= 0 {
		return ErrInvalidAdapterConfigs
	}

	u, err := url.Parse(cfg.Adapter.HTTPAddress)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("%w: adapter address must be an absolute URL", ErrInvalidAdapterConfigs)
	}

	if cfg.Speech.Language == "" {
		return ErrInvalidSpeechConfigs
	}

	return nil
}

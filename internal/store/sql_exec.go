package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/voice-notes/internal/logger"
)

// writeError maps a failed INSERT/UPDATE to a domain error.
func (db *DB) writeError(err error) error {
	switch db.classify(err) {
	case ForeignKeyViolation:
		return ErrProfileNotFound
	case CheckViolation:
		return fmt.Errorf("%w: %w", ErrConstraintViolation, err)
	case UniqueViolation:
		return fmt.Errorf("%w: duplicate id: %w", ErrConstraintViolation, err)
	}
	return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
}

// execAffectingOne runs a DML statement and returns notFound unless exactly
// one row changed.
func (db *DB) execAffectingOne(ctx context.Context, fn, query string, args []any, notFound error) error {
	log := logger.FromContext(ctx)

	result, err := db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", fn).Msg("failed to execute statement")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		log.Err(err).Str("func", fn).Msg("failed to read affected rows")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected != 1 {
		return notFound
	}

	return nil
}

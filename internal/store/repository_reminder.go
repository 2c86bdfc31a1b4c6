package store

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/voice-notes/internal/logger"
	"github.com/MKhiriev/voice-notes/models"
)

// reminderRepository reads due reminders and claims them.
type reminderRepository struct {
	*DB
	logger *logger.Logger
}

func NewReminderRepository(db *DB, logger *logger.Logger) ReminderRepository {
	logger.Debug().Msg("creating reminder repository")
	return &reminderRepository{
		DB:     db,
		logger: logger,
	}
}

func (r *reminderRepository) SelectDue(ctx context.Context, from, to time.Time) ([]models.DueReminder, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectDueQuery(r.builder(), from, to)
	if err != nil {
		log.Err(err).Str("func", "*reminderRepository.SelectDue").Msg("failed to build query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "*reminderRepository.SelectDue").
			Time("from", from).
			Time("to", to).
			Msg("failed to select due reminders")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	due := make([]models.DueReminder, 0, 16)
	for rows.Next() {
		var email string
		todo, scanErr := scanTodo(rows, &email)
		if scanErr != nil {
			log.Err(scanErr).Str("func", "*reminderRepository.SelectDue").Msg("failed to scan reminder row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		due = append(due, models.DueReminder{Todo: todo, OwnerEmail: email})
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).Str("func", "*reminderRepository.SelectDue").Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return due, nil
}

// ClaimAndEnqueue flips reminder_sent false->true and inserts the email in
// one transaction. When the update touches no row the transaction is rolled
// back and claimed is false.
func (r *reminderRepository) ClaimAndEnqueue(ctx context.Context, todoID string, email models.Email) (bool, error) {
	log := logger.FromContext(ctx)

	claimQuery, claimArgs, err := buildClaimReminderQuery(r.builder(), todoID)
	if err != nil {
		return false, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	insertQuery, insertArgs, err := buildInsertEmailQuery(r.builder(), email)
	if err != nil {
		return false, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	tx, err := r.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "*reminderRepository.ClaimAndEnqueue").Msg("failed to begin transaction")
		return false, fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	result, err := tx.ExecContext(ctx, claimQuery, claimArgs...)
	if err != nil {
		log.Err(err).
			Str("func", "*reminderRepository.ClaimAndEnqueue").
			Str("todo_id", todoID).
			Msg("failed to claim reminder")
		return false, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected != 1 {
		log.Debug().
			Str("func", "*reminderRepository.ClaimAndEnqueue").
			Str("todo_id", todoID).
			Msg("reminder already claimed")
		return false, nil
	}

	if _, err = tx.ExecContext(ctx, insertQuery, insertArgs...); err != nil {
		log.Err(err).
			Str("func", "*reminderRepository.ClaimAndEnqueue").
			Str("todo_id", todoID).
			Msg("failed to enqueue email")
		return false, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	if err = tx.Commit(); err != nil {
		log.Err(err).Str("func", "*reminderRepository.ClaimAndEnqueue").Msg("failed to commit transaction")
		return false, fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	return true, nil
}

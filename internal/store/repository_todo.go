package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/voice-notes/internal/logger"
	"github.com/MKhiriev/voice-notes/models"
)

// todoRepository stores todos in the "todos" table.
type todoRepository struct {
	*DB
	logger *logger.Logger
}

func NewTodoRepository(db *DB, logger *logger.Logger) TodoRepository {
	logger.Debug().Msg("creating todo repository")
	return &todoRepository{
		DB:     db,
		logger: logger,
	}
}

func (r *todoRepository) CreateTodo(ctx context.Context, todo models.Todo) (models.Todo, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildInsertTodoQuery(r.builder(), todo)
	if err != nil {
		log.Err(err).Str("func", "*todoRepository.CreateTodo").Msg("failed to build query")
		return models.Todo{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	created, err := scanTodo(r.QueryRowContext(ctx, query, args...))
	if err != nil {
		log.Err(err).
			Str("func", "*todoRepository.CreateTodo").
			Str("user_id", todo.UserID).
			Msg("failed to insert todo")
		return models.Todo{}, r.writeError(err)
	}

	return created, nil
}

func (r *todoRepository) GetTodo(ctx context.Context, userID, todoID string) (models.Todo, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildGetTodoQuery(r.builder(), userID, todoID)
	if err != nil {
		log.Err(err).Str("func", "*todoRepository.GetTodo").Msg("failed to build query")
		return models.Todo{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	todo, err := scanTodo(r.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Todo{}, ErrTodoNotFound
	}
	if err != nil {
		log.Err(err).
			Str("func", "*todoRepository.GetTodo").
			Str("user_id", userID).
			Str("todo_id", todoID).
			Msg("failed to get todo")
		return models.Todo{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return todo, nil
}

// ListTodos returns the user's todos newest first, narrowed by completion
// and priority. filter.Search is ignored here.
func (r *todoRepository) ListTodos(ctx context.Context, userID string, filter models.TodoFilter) ([]models.Todo, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListTodosQuery(r.builder(), userID, filter)
	if err != nil {
		log.Err(err).Str("func", "*todoRepository.ListTodos").Msg("failed to build query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "*todoRepository.ListTodos").
			Str("user_id", userID).
			Msg("failed to execute query for listing todos")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	todos := make([]models.Todo, 0, 32)
	for rows.Next() {
		todo, scanErr := scanTodo(rows)
		if scanErr != nil {
			log.Err(scanErr).
				Str("func", "*todoRepository.ListTodos").
				Str("user_id", userID).
				Msg("failed to scan todo row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		todos = append(todos, todo)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).
			Str("func", "*todoRepository.ListTodos").
			Str("user_id", userID).
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return todos, nil
}

// UpdateTodo applies a partial update. Changing or clearing the reminder
// date resets reminder_sent so the new reminder fires.
func (r *todoRepository) UpdateTodo(ctx context.Context, userID, todoID string, update models.TodoUpdate) (models.Todo, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildUpdateTodoQuery(r.builder(), userID, todoID, update)
	if err != nil {
		log.Err(err).Str("func", "*todoRepository.UpdateTodo").Msg("failed to build query")
		return models.Todo{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.returningTodo(ctx, "*todoRepository.UpdateTodo", query, args)
}

// ToggleComplete flips is_completed in a single statement.
func (r *todoRepository) ToggleComplete(ctx context.Context, userID, todoID string) (models.Todo, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildToggleCompleteQuery(r.builder(), userID, todoID)
	if err != nil {
		log.Err(err).Str("func", "*todoRepository.ToggleComplete").Msg("failed to build query")
		return models.Todo{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.returningTodo(ctx, "*todoRepository.ToggleComplete", query, args)
}

func (r *todoRepository) DeleteTodo(ctx context.Context, userID, todoID string) error {
	log := logger.FromContext(ctx)

	query, args, err := buildDeleteTodoQuery(r.builder(), userID, todoID)
	if err != nil {
		log.Err(err).Str("func", "*todoRepository.DeleteTodo").Msg("failed to build query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.execAffectingOne(ctx, "*todoRepository.DeleteTodo", query, args, ErrTodoNotFound)
}

func (r *todoRepository) returningTodo(ctx context.Context, fn, query string, args []any) (models.Todo, error) {
	todo, err := scanTodo(r.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Todo{}, ErrTodoNotFound
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", fn).Msg("failed to update todo")
		return models.Todo{}, r.writeError(err)
	}
	return todo, nil
}

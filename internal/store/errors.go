package store

import "errors"

// Domain errors. Callers match them with [errors.Is].
var (
	// ErrEmailAlreadyExists is returned when registering an email that is taken.
	ErrEmailAlreadyExists = errors.New("email already exists")

	// ErrProfileNotFound is returned when no profile matches the lookup, or a
	// note/todo references a profile that does not exist.
	ErrProfileNotFound = errors.New("profile was not found")

	// ErrNoteNotFound is returned when the note does not exist or belongs to
	// another user.
	ErrNoteNotFound = errors.New("note was not found")

	// ErrTodoNotFound is returned when the todo does not exist or belongs to
	// another user.
	ErrTodoNotFound = errors.New("todo was not found")

	// ErrConstraintViolation is returned when a row breaks a CHECK or NOT NULL
	// constraint (empty content, unknown category, ...).
	ErrConstraintViolation = errors.New("constraint violation")

	// ErrUnsupportedDriver is returned by NewConnect for an unknown driver.
	ErrUnsupportedDriver = errors.New("unsupported database driver")
)

// Low-level failures, wrapped together with the driver error.
var (
	ErrBuildingSQLQuery     = errors.New("error building sql query")
	ErrExecutingQuery       = errors.New("error executing sql query")
	ErrBeginningTransaction = errors.New("failed to begin transaction")
	ErrCommitingTransaction = errors.New("failed to commit transaction")
	ErrExecutingStatement   = errors.New("failed to execute statement")
	ErrScanningRow          = errors.New("failed to scan row")
	ErrScanningRows         = errors.New("failed to scan rows")
	ErrEncodingColumn       = errors.New("failed to encode column")
)

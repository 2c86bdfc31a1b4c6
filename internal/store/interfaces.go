package store

import (
	"context"
	"time"

	"github.com/MKhiriev/voice-notes/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// ErrorClassificator maps driver errors to an [ErrorClassification].
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}

// ProfileRepository stores accounts.
type ProfileRepository interface {
	CreateProfile(ctx context.Context, profile models.Profile) (models.Profile, error)
	FindProfileByEmail(ctx context.Context, email string) (models.Profile, error)
}

// NoteRepository stores notes. Every method is scoped by the owner id.
type NoteRepository interface {
	CreateNote(ctx context.Context, note models.Note) (models.Note, error)
	GetNote(ctx context.Context, userID, noteID string) (models.Note, error)
	ListNotes(ctx context.Context, userID string, filter models.NoteFilter) ([]models.Note, error)
	UpdateNote(ctx context.Context, userID, noteID string, update models.NoteUpdate) (models.Note, error)
	ToggleArchive(ctx context.Context, userID, noteID string) (models.Note, error)
	DeleteNote(ctx context.Context, userID, noteID string) error
}

// TodoRepository stores todos. Every method is scoped by the owner id.
type TodoRepository interface {
	CreateTodo(ctx context.Context, todo models.Todo) (models.Todo, error)
	GetTodo(ctx context.Context, userID, todoID string) (models.Todo, error)
	ListTodos(ctx context.Context, userID string, filter models.TodoFilter) ([]models.Todo, error)
	UpdateTodo(ctx context.Context, userID, todoID string, update models.TodoUpdate) (models.Todo, error)
	ToggleComplete(ctx context.Context, userID, todoID string) (models.Todo, error)
	DeleteTodo(ctx context.Context, userID, todoID string) error
}

// ReminderRepository backs the reminder dispatcher.
type ReminderRepository interface {
	// SelectDue returns unsent reminders with from <= reminder_date <= to,
	// joined with the owner's email, earliest first.
	SelectDue(ctx context.Context, from, to time.Time) ([]models.DueReminder, error)

	// ClaimAndEnqueue marks the todo's reminder sent only if it was not sent
	// yet and, in the same transaction, inserts email into the outbox.
	// claimed is false when another run got there first.
	ClaimAndEnqueue(ctx context.Context, todoID string, email models.Email) (claimed bool, err error)
}

package views

//go:generate mockgen -source=interfaces.go -destination=../mock/views_mock.go -package=mock

import (
	"context"

	"github.com/MKhiriev/voice-notes/models"
)

// NoteBackend persists notes for the signed-in user.
type NoteBackend interface {
	ListNotes(ctx context.Context) ([]models.Note, error)
	CreateNote(ctx context.Context, draft models.NoteDraft) (models.Note, error)
	UpdateNote(ctx context.Context, noteID string, update models.NoteUpdate) (models.Note, error)
	ToggleArchive(ctx context.Context, noteID string) (models.Note, error)
	DeleteNote(ctx context.Context, noteID string) error
}

// TodoBackend persists todos for the signed-in user.
type TodoBackend interface {
	ListTodos(ctx context.Context) ([]models.Todo, error)
	CreateTodo(ctx context.Context, draft models.TodoDraft) (models.Todo, error)
	UpdateTodo(ctx context.Context, todoID string, update models.TodoUpdate) (models.Todo, error)
	ToggleComplete(ctx context.Context, todoID string) (models.Todo, error)
	DeleteTodo(ctx context.Context, todoID string) error
}

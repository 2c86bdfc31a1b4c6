package service

import (
	"context"
	"time"

	"github.com/MKhiriev/voice-notes/models"
)

type AuthService interface {
	Register(ctx context.Context, credentials models.Credentials) (models.Profile, error)
	Login(ctx context.Context, credentials models.Credentials) (models.Profile, error)
	CreateToken(ctx context.Context, profile models.Profile) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

// NoteService manages the notes of one user. userID always comes from the
// authenticated request, never from the payload.
type NoteService interface {
	CreateNote(ctx context.Context, userID string, draft models.NoteDraft) (models.Note, error)
	GetNote(ctx context.Context, userID, noteID string) (models.Note, error)
	ListNotes(ctx context.Context, userID string, filter models.NoteFilter) ([]models.Note, error)
	UpdateNote(ctx context.Context, userID, noteID string, update models.NoteUpdate) (models.Note, error)
	ToggleArchive(ctx context.Context, userID, noteID string) (models.Note, error)
	DeleteNote(ctx context.Context, userID, noteID string) error
}

// TodoService manages the todos of one user.
type TodoService interface {
	CreateTodo(ctx context.Context, userID string, draft models.TodoDraft) (models.Todo, error)
	GetTodo(ctx context.Context, userID, todoID string) (models.Todo, error)
	ListTodos(ctx context.Context, userID string, filter models.TodoFilter, sortBy models.TodoSortKey) ([]models.Todo, error)
	UpdateTodo(ctx context.Context, userID, todoID string, update models.TodoUpdate) (models.Todo, error)
	ToggleComplete(ctx context.Context, userID, todoID string) (models.Todo, error)
	DeleteTodo(ctx context.Context, userID, todoID string) error
}

// ReminderService turns due reminders into outbox emails.
type ReminderService interface {
	Dispatch(ctx context.Context, now time.Time) (models.DispatchResult, error)
}

type AppInfoService interface {
	GetAppInfo(ctx context.Context) models.AppBuildInfo
}

// NoteServiceWrapper defines middleware composition for NoteService.
// Implementations wrap an existing NoteService to add behavior such as
// validating.
type NoteServiceWrapper interface {
	Wrap(NoteService) NoteService
}

// TodoServiceWrapper defines middleware composition for TodoService.
type TodoServiceWrapper interface {
	Wrap(TodoService) TodoService
}

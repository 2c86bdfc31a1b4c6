// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter talks to the voice-notes REST API on behalf of the
// terminal client.
//
// Non-2xx responses are mapped by mapHTTPError to the sentinel errors in
// errors.go, so callers can branch with [errors.Is] (e.g. [ErrConflict] for
// 409, [ErrUnauthorized] for 401).
package adapter

import (
	"context"

	"github.com/MKhiriev/voice-notes/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/adapter_mock.go -package=mock

// ServerAdapter is the client's view of the server. Apart from Register,
// Login and ServerVersion every call needs the token set by a successful
// Register or Login.
type ServerAdapter interface {
	SetToken(token string)
	Token() string

	// Register creates an account and stores the returned token.
	Register(ctx context.Context, credentials models.Credentials) (models.AuthResponse, error)

	// Login authenticates and stores the returned token.
	Login(ctx context.Context, credentials models.Credentials) (models.AuthResponse, error)

	ServerVersion(ctx context.Context) (models.AppBuildInfo, error)

	ListNotes(ctx context.Context) ([]models.Note, error)
	CreateNote(ctx context.Context, draft models.NoteDraft) (models.Note, error)
	UpdateNote(ctx context.Context, noteID string, update models.NoteUpdate) (models.Note, error)
	ToggleArchive(ctx context.Context, noteID string) (models.Note, error)
	DeleteNote(ctx context.Context, noteID string) error

	ListTodos(ctx context.Context) ([]models.Todo, error)
	CreateTodo(ctx context.Context, draft models.TodoDraft) (models.Todo, error)
	UpdateTodo(ctx context.Context, todoID string, update models.TodoUpdate) (models.Todo, error)
	ToggleComplete(ctx context.Context, todoID string) (models.Todo, error)
	DeleteTodo(ctx context.Context, todoID string) error
}

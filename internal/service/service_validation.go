package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/voice-notes/internal/utils"
	"github.com/MKhiriev/voice-notes/internal/validators"
	"github.com/MKhiriev/voice-notes/models"
)

// NoteValidationService rejects malformed ids and payloads before they
// reach the wrapped NoteService.
type NoteValidationService struct {
	inner     NoteService
	validator validators.Validator
}

func NewNoteValidationService(validator validators.Validator) NoteServiceWrapper {
	return &NoteValidationService{validator: validator}
}

func (v *NoteValidationService) Wrap(inner NoteService) NoteService {
	v.inner = inner
	return v
}

func (v *NoteValidationService) CreateNote(ctx context.Context, userID string, draft models.NoteDraft) (models.Note, error) {
	if err := v.validator.Validate(ctx, draft); err != nil {
		return models.Note{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}
	return v.inner.CreateNote(ctx, userID, draft)
}

func (v *NoteValidationService) GetNote(ctx context.Context, userID, noteID string) (models.Note, error) {
	if err := checkID(noteID); err != nil {
		return models.Note{}, err
	}
	return v.inner.GetNote(ctx, userID, noteID)
}

func (v *NoteValidationService) ListNotes(ctx context.Context, userID string, filter models.NoteFilter) ([]models.Note, error) {
	if !filter.Category.IsValid() {
		return nil, fmt.Errorf("%w: unknown category %q", ErrInvalidDataProvided, filter.Category)
	}
	return v.inner.ListNotes(ctx, userID, filter)
}

func (v *NoteValidationService) UpdateNote(ctx context.Context, userID, noteID string, update models.NoteUpdate) (models.Note, error) {
	if err := checkID(noteID); err != nil {
		return models.Note{}, err
	}
	if update.IsEmpty() {
		return models.Note{}, ErrNothingToUpdate
	}
	if err := v.validator.Validate(ctx, update); err != nil {
		return models.Note{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}
	return v.inner.UpdateNote(ctx, userID, noteID, update)
}

func (v *NoteValidationService) ToggleArchive(ctx context.Context, userID, noteID string) (models.Note, error) {
	if err := checkID(noteID); err != nil {
		return models.Note{}, err
	}
	return v.inner.ToggleArchive(ctx, userID, noteID)
}

func (v *NoteValidationService) DeleteNote(ctx context.Context, userID, noteID string) error {
	if err := checkID(noteID); err != nil {
		return err
	}
	return v.inner.DeleteNote(ctx, userID, noteID)
}

// TodoValidationService is the TodoService counterpart of
// NoteValidationService.
type TodoValidationService struct {
	inner     TodoService
	validator validators.Validator
}

func NewTodoValidationService(validator validators.Validator) TodoServiceWrapper {
	return &TodoValidationService{validator: validator}
}

func (v *TodoValidationService) Wrap(inner TodoService) TodoService {
	v.inner = inner
	return v
}

func (v *TodoValidationService) CreateTodo(ctx context.Context, userID string, draft models.TodoDraft) (models.Todo, error) {
	if err := v.validator.Validate(ctx, draft); err != nil {
		return models.Todo{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}
	return v.inner.CreateTodo(ctx, userID, draft)
}

func (v *TodoValidationService) GetTodo(ctx context.Context, userID, todoID string) (models.Todo, error) {
	if err := checkID(todoID); err != nil {
		return models.Todo{}, err
	}
	return v.inner.GetTodo(ctx, userID, todoID)
}

func (v *TodoValidationService) ListTodos(ctx context.Context, userID string, filter models.TodoFilter, sortBy models.TodoSortKey) ([]models.Todo, error) {
	if filter.Priority != "" && !filter.Priority.IsValid() {
		return nil, fmt.Errorf("%w: unknown priority %q", ErrInvalidDataProvided, filter.Priority)
	}
	if sortBy != "" && !sortBy.IsValid() {
		return nil, fmt.Errorf("%w: unknown sort key %q", ErrInvalidDataProvided, sortBy)
	}
	return v.inner.ListTodos(ctx, userID, filter, sortBy)
}

func (v *TodoValidationService) UpdateTodo(ctx context.Context, userID, todoID string, update models.TodoUpdate) (models.Todo, error) {
	if err := checkID(todoID); err != nil {
		return models.Todo{}, err
	}
	if update.IsEmpty() {
		return models.Todo{}, ErrNothingToUpdate
	}
	if err := v.validator.Validate(ctx, update); err != nil {
		return models.Todo{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}
	return v.inner.UpdateTodo(ctx, userID, todoID, update)
}

func (v *TodoValidationService) ToggleComplete(ctx context.Context, userID, todoID string) (models.Todo, error) {
	if err := checkID(todoID); err != nil {
		return models.Todo{}, err
	}
	return v.inner.ToggleComplete(ctx, userID, todoID)
}

func (v *TodoValidationService) DeleteTodo(ctx context.Context, userID, todoID string) error {
	if err := checkID(todoID); err != nil {
		return err
	}
	return v.inner.DeleteTodo(ctx, userID, todoID)
}

func checkID(id string) error {
	if !utils.IsUUID(id) {
		return fmt.Errorf("%w: %q", ErrInvalidID, id)
	}
	return nil
}

package service

import (
	"context"
	"strings"
	"time"

	"github.com/MKhiriev/voice-notes/internal/logger"
	"github.com/MKhiriev/voice-notes/internal/store"
	"github.com/MKhiriev/voice-notes/internal/utils"
	"github.com/MKhiriev/voice-notes/internal/views"
	"github.com/MKhiriev/voice-notes/models"
)

type todoService struct {
	todoRepository store.TodoRepository
	ids            *utils.UUIDGenerator
	now            func() time.Time

	logger *logger.Logger
}

func NewTodoService(todoRepository store.TodoRepository, logger *logger.Logger) TodoService {
	return &todoService{
		todoRepository: todoRepository,
		ids:            utils.NewUUIDGenerator(),
		now:            time.Now,
		logger:         logger,
	}
}

// CreateTodo defaults the priority to medium. A new todo is never completed
// and its reminder is never sent.
func (s *todoService) CreateTodo(ctx context.Context, userID string, draft models.TodoDraft) (models.Todo, error) {
	priority := draft.Priority
	if priority == "" {
		priority = models.PriorityMedium
	}

	return s.todoRepository.CreateTodo(ctx, models.Todo{
		ID:           s.ids.Generate(),
		UserID:       userID,
		Title:        strings.TrimSpace(draft.Title),
		Description:  draft.Description,
		Priority:     priority,
		DueDate:      draft.DueDate,
		ReminderDate: draft.ReminderDate,
		CreatedAt:    s.now().UTC(),
	})
}

func (s *todoService) GetTodo(ctx context.Context, userID, todoID string) (models.Todo, error) {
	return s.todoRepository.GetTodo(ctx, userID, todoID)
}

// ListTodos applies the text search after the database filters and orders
// the result by sortBy. An empty sortBy keeps newest first.
func (s *todoService) ListTodos(ctx context.Context, userID string, filter models.TodoFilter, sortBy models.TodoSortKey) ([]models.Todo, error) {
	todos, err := s.todoRepository.ListTodos(ctx, userID, filter)
	if err != nil {
		return nil, err
	}

	return views.SortTodos(views.FilterTodos(todos, filter), sortBy), nil
}

func (s *todoService) UpdateTodo(ctx context.Context, userID, todoID string, update models.TodoUpdate) (models.Todo, error) {
	if update.Title != nil {
		title := strings.TrimSpace(*update.Title)
		update.Title = &title
	}
	return s.todoRepository.UpdateTodo(ctx, userID, todoID, update)
}

func (s *todoService) ToggleComplete(ctx context.Context, userID, todoID string) (models.Todo, error) {
	return s.todoRepository.ToggleComplete(ctx, userID, todoID)
}

func (s *todoService) DeleteTodo(ctx context.Context, userID, todoID string) error {
	return s.todoRepository.DeleteTodo(ctx, userID, todoID)
}

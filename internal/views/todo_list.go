package views

import (
	"context"
	"slices"
	"strings"
	"sync"

	"github.com/MKhiriev/voice-notes/models"
)

// TodoList holds the fetched todos of one user, the active filter and the
// selected ordering. It follows the same backend-first rule as NoteList.
type TodoList struct {
	backend TodoBackend

	mu     sync.RWMutex
	todos  []models.Todo
	filter models.TodoFilter
	sortBy models.TodoSortKey
}

// NewTodoList starts ordered by due date.
func NewTodoList(backend TodoBackend) *TodoList {
	return &TodoList{
		backend: backend,
		sortBy:  models.SortByDueDate,
	}
}

func (l *TodoList) Load(ctx context.Context) error {
	todos, err := l.backend.ListTodos(ctx)
	if err != nil {
		return err
	}

	l.mu.Lock()
	l.todos = todos
	l.mu.Unlock()
	return nil
}

// Create rejects a blank title without calling the backend. Priority
// defaults to medium.
func (l *TodoList) Create(ctx context.Context, draft models.TodoDraft) (models.Todo, error) {
	if strings.TrimSpace(draft.Title) == "" {
		return models.Todo{}, ErrEmptyTitle
	}
	if draft.Priority == "" {
		draft.Priority = models.PriorityMedium
	}

	todo, err := l.backend.CreateTodo(ctx, draft)
	if err != nil {
		return models.Todo{}, err
	}

	l.mu.Lock()
	l.todos = slices.Insert(l.todos, 0, todo)
	l.mu.Unlock()
	return todo, nil
}

func (l *TodoList) Update(ctx context.Context, todoID string, update models.TodoUpdate) (models.Todo, error) {
	if update.Title != nil && strings.TrimSpace(*update.Title) == "" {
		return models.Todo{}, ErrEmptyTitle
	}

	todo, err := l.backend.UpdateTodo(ctx, todoID, update)
	if err != nil {
		return models.Todo{}, err
	}

	l.replace(todo)
	return todo, nil
}

func (l *TodoList) ToggleComplete(ctx context.Context, todoID string) (models.Todo, error) {
	todo, err := l.backend.ToggleComplete(ctx, todoID)
	if err != nil {
		return models.Todo{}, err
	}

	l.replace(todo)
	return todo, nil
}

func (l *TodoList) Delete(ctx context.Context, todoID string) error {
	if err := l.backend.DeleteTodo(ctx, todoID); err != nil {
		return err
	}

	l.mu.Lock()
	l.todos = slices.DeleteFunc(l.todos, func(t models.Todo) bool { return t.ID == todoID })
	l.mu.Unlock()
	return nil
}

func (l *TodoList) SetFilter(f models.TodoFilter) {
	l.mu.Lock()
	l.filter = f
	l.mu.Unlock()
}

func (l *TodoList) Filter() models.TodoFilter {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.filter
}

// SetSort ignores unknown keys.
func (l *TodoList) SetSort(key models.TodoSortKey) {
	if !key.IsValid() {
		return
	}
	l.mu.Lock()
	l.sortBy = key
	l.mu.Unlock()
}

func (l *TodoList) Sort() models.TodoSortKey {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.sortBy
}

// NextSort advances to the following ordering in models.TodoSortKeys and
// returns it.
func (l *TodoList) NextSort() models.TodoSortKey {
	l.mu.Lock()
	defer l.mu.Unlock()

	i := slices.Index(models.TodoSortKeys, l.sortBy)
	l.sortBy = models.TodoSortKeys[(i+1)%len(models.TodoSortKeys)]
	return l.sortBy
}

func (l *TodoList) All() []models.Todo {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return slices.Clone(l.todos)
}

// Visible is the loaded set narrowed by the filter and ordered by the
// selected key.
func (l *TodoList) Visible() []models.Todo {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return SortTodos(FilterTodos(l.todos, l.filter), l.sortBy)
}

func (l *TodoList) replace(todo models.Todo) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if i := slices.IndexFunc(l.todos, func(t models.Todo) bool { return t.ID == todo.ID }); i >= 0 {
		l.todos[i] = todo
	}
}

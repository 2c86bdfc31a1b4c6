package tui

import (
	"context"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/voice-notes/internal/mock"
	"github.com/MKhiriev/voice-notes/internal/views"
	"github.com/MKhiriev/voice-notes/models"
)

func localTime(s string) *time.Time {
	t, err := time.ParseInLocation(dateLayout, s, time.Local)
	if err != nil {
		panic(err)
	}
	return &t
}

func testTodos() []models.Todo {
	return []models.Todo{
		{ID: "t1", Title: "Pay rent", Priority: models.PriorityHigh, DueDate: localTime("2026-05-03 10:00"), CreatedAt: testCreated},
		{ID: "t2", Title: "Water plants", Priority: models.PriorityLow, CreatedAt: testCreated.Add(time.Hour)},
		{ID: "t3", Title: "File taxes", Priority: models.PriorityMedium, DueDate: localTime("2026-04-20 09:00"), IsCompleted: true, CreatedAt: testCreated.Add(2 * time.Hour)},
	}
}

func newTestTodosScreen(t *testing.T) (*todosScreen, *mock.MockTodoBackend) {
	t.Helper()
	backend := mock.NewMockTodoBackend(gomock.NewController(t))
	s := newTodosScreen(context.Background(), views.NewTodoList(backend))

	backend.EXPECT().ListTodos(gomock.Any()).Return(testTodos(), nil)
	s.update(runOne[todosLoadedMsg](t, s.init()))
	return s, backend
}

func visibleTodoIDs(s *todosScreen) []string {
	var ids []string
	for _, todo := range s.list.Visible() {
		ids = append(ids, todo.ID)
	}
	return ids
}

// ─── list ───────────────────────────────────────────────────────────────────

func TestTodosScreen_LoadSortsByDueDate(t *testing.T) {
	s, _ := newTestTodosScreen(t)

	assert.Equal(t, []string{"t3", "t1", "t2"}, visibleTodoIDs(s))

	view := s.view()
	assert.Contains(t, view, "Sort: due date")
	assert.Contains(t, view, "[x]")
	assert.Contains(t, view, "2026-05-03 10:00")
}

func TestTodosScreen_SortCycle(t *testing.T) {
	s, _ := newTestTodosScreen(t)

	s.update(keyRunes("s"))
	assert.Equal(t, "Sorted by priority", s.status)
	assert.Equal(t, []string{"t1", "t3", "t2"}, visibleTodoIDs(s))

	s.update(keyRunes("s"))
	assert.Equal(t, models.SortByCreatedAt, s.list.Sort())
	assert.Equal(t, []string{"t3", "t2", "t1"}, visibleTodoIDs(s))
}

func TestTodosScreen_Filters(t *testing.T) {
	s, _ := newTestTodosScreen(t)

	s.update(keyRunes("f"))
	assert.Equal(t, []string{"t1", "t2"}, visibleTodoIDs(s))
	assert.Contains(t, s.view(), "Showing: open")

	s.update(keyRunes("f"))
	assert.Equal(t, []string{"t3"}, visibleTodoIDs(s))

	s.update(keyRunes("f"))
	s.update(keyRunes("p"))
	assert.Equal(t, []string{"t1"}, visibleTodoIDs(s))
	assert.Contains(t, s.view(), "Priority: high")
}

func TestTodosScreen_Search(t *testing.T) {
	s, _ := newTestTodosScreen(t)

	s.update(keyRunes("/"))
	typeText(s.update, "rent")
	s.update(keyType(tea.KeyEnter))

	assert.Equal(t, []string{"t1"}, visibleTodoIDs(s))
	assert.False(t, s.capturing())
}

func TestTodosScreen_ToggleComplete(t *testing.T) {
	s, backend := newTestTodosScreen(t)
	s.update(keyType(tea.KeyDown))

	done := testTodos()[0]
	done.IsCompleted = true
	backend.EXPECT().ToggleComplete(gomock.Any(), "t1").Return(done, nil)

	s.update(runOne[todoToggledMsg](t, s.update(keyType(tea.KeySpace))))
	assert.Equal(t, "Marked done", s.status)

	backend.EXPECT().ToggleComplete(gomock.Any(), "t1").Return(testTodos()[0], nil)
	s.update(runOne[todoToggledMsg](t, s.update(keyType(tea.KeyEnter))))
	assert.Equal(t, "Marked open", s.status)
}

func TestTodosScreen_Delete(t *testing.T) {
	s, backend := newTestTodosScreen(t)

	s.update(keyRunes("d"))
	assert.Contains(t, s.view(), `Delete "File taxes"?`)

	backend.EXPECT().DeleteTodo(gomock.Any(), "t3").Return(nil)
	s.update(runOne[todoDeletedMsg](t, s.update(keyRunes("y"))))

	assert.Equal(t, "Todo deleted", s.status)
	assert.Equal(t, []string{"t1", "t2"}, visibleTodoIDs(s))
}

// ─── form ───────────────────────────────────────────────────────────────────

func TestTodosScreen_CreateWithDates(t *testing.T) {
	s, backend := newTestTodosScreen(t)

	s.update(keyRunes("n"))
	require.NotNil(t, s.form)
	typeText(s.update, "Book flights")
	s.update(keyType(tea.KeyTab))
	s.update(keyType(tea.KeyTab))
	typeText(s.update, "2026-06-01 18:00")
	s.update(keyType(tea.KeyTab))
	typeText(s.update, "2026-06-01")
	s.update(keyType(tea.KeyCtrlT))

	backend.EXPECT().CreateTodo(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, d models.TodoDraft) (models.Todo, error) {
			assert.Equal(t, "Book flights", d.Title)
			assert.Equal(t, models.PriorityHigh, d.Priority)
			require.NotNil(t, d.DueDate)
			assert.True(t, localTime("2026-06-01 18:00").Equal(*d.DueDate))
			require.NotNil(t, d.ReminderDate)
			assert.True(t, localTime("2026-06-01 00:00").Equal(*d.ReminderDate))
			return models.Todo{ID: "t9", Title: d.Title, Priority: d.Priority, DueDate: d.DueDate, CreatedAt: testCreated}, nil
		},
	)

	s.update(runOne[todoSavedMsg](t, s.update(keyType(tea.KeyEnter))))

	assert.Nil(t, s.form)
	assert.Equal(t, "Todo added", s.status)
	assert.Contains(t, visibleTodoIDs(s), "t9")
}

func TestTodosScreen_BadDateStaysInForm(t *testing.T) {
	s, _ := newTestTodosScreen(t)

	s.update(keyRunes("n"))
	typeText(s.update, "Book flights")
	s.update(keyType(tea.KeyTab))
	s.update(keyType(tea.KeyTab))
	typeText(s.update, "next friday")

	assert.Nil(t, s.update(keyType(tea.KeyCtrlS)))
	require.NotNil(t, s.form)
	assert.Equal(t, errInvalidDate.Error(), s.form.errMsg)
}

func TestTodosScreen_EditSendsOnlyChangedDates(t *testing.T) {
	s, backend := newTestTodosScreen(t)
	s.update(keyType(tea.KeyDown))

	s.update(keyRunes("e"))
	require.NotNil(t, s.form)
	assert.Equal(t, "Pay rent", s.form.value(todoFieldTitle))
	assert.Equal(t, "2026-05-03 10:00", s.form.value(todoFieldDue))
	assert.Equal(t, models.PriorityHigh, s.form.selectedPriority())

	typeText(s.update, " now")

	backend.EXPECT().UpdateTodo(gomock.Any(), "t1", gomock.Any()).DoAndReturn(
		func(_ context.Context, _ string, u models.TodoUpdate) (models.Todo, error) {
			require.NotNil(t, u.Title)
			assert.Equal(t, "Pay rent now", *u.Title)
			assert.Nil(t, u.DueDate)
			assert.False(t, u.ClearDueDate)
			assert.Nil(t, u.ReminderDate)
			assert.False(t, u.ClearReminder)

			todo := testTodos()[0]
			todo.Title = *u.Title
			return todo, nil
		},
	)

	s.update(runOne[todoSavedMsg](t, s.update(keyType(tea.KeyCtrlS))))
	assert.Equal(t, "Todo updated", s.status)
}

func TestTodoForm_ClearingDueDate(t *testing.T) {
	todo := testTodos()[0]
	f := newTodoForm(&todo)
	f.inputs[todoFieldDue].SetValue("")

	u, err := f.update()
	require.NoError(t, err)
	assert.True(t, u.ClearDueDate)
	assert.Nil(t, u.DueDate)
	assert.False(t, u.ClearReminder)
}

func TestNextCompletedFilter(t *testing.T) {
	open := nextCompletedFilter(nil)
	require.NotNil(t, open)
	assert.False(t, *open)

	done := nextCompletedFilter(open)
	require.NotNil(t, done)
	assert.True(t, *done)

	assert.Nil(t, nextCompletedFilter(done))
}

func TestNextPriorityFilter(t *testing.T) {
	p := models.Priority("")
	var seen []models.Priority
	for range 4 {
		p = nextPriorityFilter(p)
		seen = append(seen, p)
	}
	assert.Equal(t, []models.Priority{models.PriorityHigh, models.PriorityMedium, models.PriorityLow, ""}, seen)
}

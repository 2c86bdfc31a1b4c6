package store

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/voice-notes/internal/logger"
	"github.com/MKhiriev/voice-notes/models"
)

func newTestTodoRepo(t *testing.T) (TodoRepository, sqlmock.Sqlmock) {
	db, mock := newTestDB(t)
	return NewTodoRepository(db, logger.Nop()), mock
}

func todoRow(rows *sqlmock.Rows, todo models.Todo) *sqlmock.Rows {
	var description any
	if todo.Description != "" {
		description = todo.Description
	}
	return rows.AddRow(
		todo.ID, todo.UserID, todo.Title, description, todo.IsCompleted, string(todo.Priority),
		nullTimeValue(todo.DueDate), nullTimeValue(todo.ReminderDate), todo.ReminderSent, todo.CreatedAt,
	)
}

func TestCreateTodo_Success(t *testing.T) {
	repo, mock := newTestTodoRepo(t)
	due := testNow.Add(24 * time.Hour)
	todo := models.Todo{
		ID:        testTodoID,
		UserID:    testUserID,
		Title:     "file taxes",
		Priority:  models.PriorityHigh,
		DueDate:   &due,
		CreatedAt: testNow,
	}

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO todos")).
		WithArgs(todo.ID, todo.UserID, todo.Title, nil, false, "high", due, nil, false, testNow).
		WillReturnRows(todoRow(todoRows(), todo))

	created, err := repo.CreateTodo(context.Background(), todo)

	require.NoError(t, err)
	assert.Equal(t, todo.Title, created.Title)
	require.NotNil(t, created.DueDate)
	assert.True(t, due.Equal(*created.DueDate))
	assert.Nil(t, created.ReminderDate)
}

func TestUpdateTodo_NewReminderRearms(t *testing.T) {
	repo, mock := newTestTodoRepo(t)
	at := testNow.Add(time.Hour)

	mock.ExpectQuery(regexp.QuoteMeta("UPDATE todos SET reminder_date = $1, reminder_sent = $2 WHERE id = $3 AND user_id = $4")).
		WithArgs(at, false, testTodoID, testUserID).
		WillReturnRows(todoRow(todoRows(), models.Todo{
			ID: testTodoID, UserID: testUserID, Title: "t", Priority: models.PriorityMedium,
			ReminderDate: &at, CreatedAt: testNow,
		}))

	todo, err := repo.UpdateTodo(context.Background(), testUserID, testTodoID, models.TodoUpdate{ReminderDate: &at})

	require.NoError(t, err)
	assert.False(t, todo.ReminderSent)
}

func TestToggleComplete_NotFound(t *testing.T) {
	repo, mock := newTestTodoRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta("UPDATE todos SET is_completed = NOT is_completed")).
		WithArgs(testTodoID, testUserID).
		WillReturnRows(todoRows())

	_, err := repo.ToggleComplete(context.Background(), testUserID, testTodoID)
	assert.ErrorIs(t, err, ErrTodoNotFound)
}

func TestListTodos_Filters(t *testing.T) {
	repo, mock := newTestTodoRepo(t)
	open := false

	mock.ExpectQuery(regexp.QuoteMeta("FROM todos WHERE user_id = $1 AND is_completed = $2")).
		WithArgs(testUserID, false).
		WillReturnRows(todoRow(todoRows(), models.Todo{
			ID: "t1", UserID: testUserID, Title: "a", Priority: models.PriorityLow, CreatedAt: testNow,
		}))

	todos, err := repo.ListTodos(context.Background(), testUserID, models.TodoFilter{Completed: &open})

	require.NoError(t, err)
	require.Len(t, todos, 1)
	assert.Equal(t, models.PriorityLow, todos[0].Priority)
}

func TestDeleteTodo_Missing(t *testing.T) {
	repo, mock := newTestTodoRepo(t)

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM todos")).
		WithArgs(testTodoID, testUserID).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.DeleteTodo(context.Background(), testUserID, testTodoID)
	assert.ErrorIs(t, err, ErrTodoNotFound)
}

func TestGetTodo_Found(t *testing.T) {
	repo, mock := newTestTodoRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta("FROM todos WHERE id = $1 AND user_id = $2")).
		WithArgs(testTodoID, testUserID).
		WillReturnRows(todoRow(todoRows(), models.Todo{
			ID: testTodoID, UserID: testUserID, Title: "t", Description: "d", Priority: models.PriorityMedium, CreatedAt: testNow,
		}))

	todo, err := repo.GetTodo(context.Background(), testUserID, testTodoID)

	require.NoError(t, err)
	assert.Equal(t, "d", todo.Description)
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/voice-notes/models"
)

const (
	profilesTable = "profiles"
	notesTable    = "notes"
	todosTable    = "todos"
	emailsTable   = "emails"
)

var (
	profileColumns = []string{"id", "email", "password_hash", "created_at"}

	noteColumns = []string{
		"id",
		"user_id",
		"content",
		"category",
		"tags",
		"is_archived",
		"audio_url",
		"formatted_content",
		"created_at",
	}

	todoColumns = []string{
		"id",
		"user_id",
		"title",
		"description",
		"is_completed",
		"priority",
		"due_date",
		"reminder_date",
		"reminder_sent",
		"created_at",
	}

	returningNote = "RETURNING " + joinColumns(noteColumns)
	returningTodo = "RETURNING " + joinColumns(todoColumns)
)

func joinColumns(cols []string) string {
	return strings.Join(cols, ", ")
}

// ── notes ─────────────────────────────────────────────────────────────────────

func buildInsertNoteQuery(b sq.StatementBuilderType, note models.Note) (string, []any, error) {
	tags, err := encodeTags(note.Tags)
	if err != nil {
		return "", nil, err
	}

	return b.Insert(notesTable).
		Columns(noteColumns...).
		Values(
			note.ID,
			note.UserID,
			note.Content,
			nullString(string(note.Category)),
			tags,
			note.IsArchived,
			nullString(note.AudioURL),
			nullString(note.FormattedContent),
			note.CreatedAt.UTC(),
		).
		Suffix(returningNote).
		ToSql()
}

func buildGetNoteQuery(b sq.StatementBuilderType, userID, noteID string) (string, []any, error) {
	return b.Select(noteColumns...).
		From(notesTable).
		Where(sq.Eq{"id": noteID, "user_id": userID}).
		ToSql()
}

// buildListNotesQuery narrows by owner, category and archived state in SQL.
// Text search is left to the caller.
func buildListNotesQuery(b sq.StatementBuilderType, userID string, filter models.NoteFilter) (string, []any, error) {
	query := b.Select(noteColumns...).
		From(notesTable).
		Where(sq.Eq{"user_id": userID})

	if filter.Category != "" {
		query = query.Where(sq.Eq{"category": string(filter.Category)})
	}
	if filter.Archived != nil {
		query = query.Where(sq.Eq{"is_archived": *filter.Archived})
	}

	return query.OrderBy("created_at DESC", "id DESC").ToSql()
}

func buildUpdateNoteQuery(b sq.StatementBuilderType, userID, noteID string, update models.NoteUpdate) (string, []any, error) {
	set := make(map[string]any, 6)

	if update.Content != nil {
		set["content"] = *update.Content
	}
	if update.Category != nil {
		set["category"] = nullString(string(*update.Category))
	}
	if update.Tags != nil {
		tags, err := encodeTags(*update.Tags)
		if err != nil {
			return "", nil, err
		}
		set["tags"] = tags
	}
	if update.IsArchived != nil {
		set["is_archived"] = *update.IsArchived
	}
	if update.AudioURL != nil {
		set["audio_url"] = nullString(*update.AudioURL)
	}
	if update.FormattedContent != nil {
		set["formatted_content"] = nullString(*update.FormattedContent)
	}

	if len(set) == 0 {
		return "", nil, fmt.Errorf("%w: empty note update", ErrBuildingSQLQuery)
	}

	return b.Update(notesTable).
		SetMap(set).
		Where(sq.Eq{"id": noteID, "user_id": userID}).
		Suffix(returningNote).
		ToSql()
}

func buildToggleArchiveQuery(b sq.StatementBuilderType, userID, noteID string) (string, []any, error) {
	return b.Update(notesTable).
		Set("is_archived", sq.Expr("NOT is_archived")).
		Where(sq.Eq{"id": noteID, "user_id": userID}).
		Suffix(returningNote).
		ToSql()
}

func buildDeleteNoteQuery(b sq.StatementBuilderType, userID, noteID string) (string, []any, error) {
	return b.Delete(notesTable).
		Where(sq.Eq{"id": noteID, "user_id": userID}).
		ToSql()
}

// ── todos ─────────────────────────────────────────────────────────────────────

func buildInsertTodoQuery(b sq.StatementBuilderType, todo models.Todo) (string, []any, error) {
	return b.Insert(todosTable).
		Columns(todoColumns...).
		Values(
			todo.ID,
			todo.UserID,
			todo.Title,
			nullString(todo.Description),
			todo.IsCompleted,
			string(todo.Priority),
			nullTime(todo.DueDate),
			nullTime(todo.ReminderDate),
			todo.ReminderSent,
			todo.CreatedAt.UTC(),
		).
		Suffix(returningTodo).
		ToSql()
}

func buildGetTodoQuery(b sq.StatementBuilderType, userID, todoID string) (string, []any, error) {
	return b.Select(todoColumns...).
		From(todosTable).
		Where(sq.Eq{"id": todoID, "user_id": userID}).
		ToSql()
}

// buildListTodosQuery narrows by owner, completion and priority in SQL.
// Text search and user-selected ordering are left to the caller.
func buildListTodosQuery(b sq.StatementBuilderType, userID string, filter models.TodoFilter) (string, []any, error) {
	query := b.Select(todoColumns...).
		From(todosTable).
		Where(sq.Eq{"user_id": userID})

	if filter.Completed != nil {
		query = query.Where(sq.Eq{"is_completed": *filter.Completed})
	}
	if filter.Priority != "" {
		query = query.Where(sq.Eq{"priority": string(filter.Priority)})
	}

	return query.OrderBy("created_at DESC", "id DESC").ToSql()
}

// buildUpdateTodoQuery re-arms the reminder whenever its timestamp changes.
func buildUpdateTodoQuery(b sq.StatementBuilderType, userID, todoID string, update models.TodoUpdate) (string, []any, error) {
	set := make(map[string]any, 8)

	if update.Title != nil {
		set["title"] = *update.Title
	}
	if update.Description != nil {
		set["description"] = nullString(*update.Description)
	}
	if update.IsCompleted != nil {
		set["is_completed"] = *update.IsCompleted
	}
	if update.Priority != nil {
		set["priority"] = string(*update.Priority)
	}

	switch {
	case update.ClearDueDate:
		set["due_date"] = nil
	case update.DueDate != nil:
		set["due_date"] = update.DueDate.UTC()
	}

	switch {
	case update.ClearReminder:
		set["reminder_date"] = nil
	case update.ReminderDate != nil:
		set["reminder_date"] = update.ReminderDate.UTC()
	}
	if update.TouchesReminder() {
		set["reminder_sent"] = false
	}

	if len(set) == 0 {
		return "", nil, fmt.Errorf("%w: empty todo update", ErrBuildingSQLQuery)
	}

	return b.Update(todosTable).
		SetMap(set).
		Where(sq.Eq{"id": todoID, "user_id": userID}).
		Suffix(returningTodo).
		ToSql()
}

func buildToggleCompleteQuery(b sq.StatementBuilderType, userID, todoID string) (string, []any, error) {
	return b.Update(todosTable).
		Set("is_completed", sq.Expr("NOT is_completed")).
		Where(sq.Eq{"id": todoID, "user_id": userID}).
		Suffix(returningTodo).
		ToSql()
}

func buildDeleteTodoQuery(b sq.StatementBuilderType, userID, todoID string) (string, []any, error) {
	return b.Delete(todosTable).
		Where(sq.Eq{"id": todoID, "user_id": userID}).
		ToSql()
}

// ── reminders ─────────────────────────────────────────────────────────────────

func buildSelectDueQuery(b sq.StatementBuilderType, from, to time.Time) (string, []any, error) {
	cols := make([]string, 0, len(todoColumns)+1)
	for _, c := range todoColumns {
		cols = append(cols, "t."+c)
	}
	cols = append(cols, "p.email")

	return b.Select(cols...).
		From(todosTable + " t").
		Join(profilesTable + " p ON p.id = t.user_id").
		Where(sq.Eq{"t.reminder_sent": false}).
		Where(sq.GtOrEq{"t.reminder_date": from.UTC()}).
		Where(sq.LtOrEq{"t.reminder_date": to.UTC()}).
		OrderBy("t.reminder_date ASC", "t.id ASC").
		ToSql()
}

// buildClaimReminderQuery is the conditional update that makes overlapping
// dispatcher runs safe: only the run that flips the flag sees one row.
func buildClaimReminderQuery(b sq.StatementBuilderType, todoID string) (string, []any, error) {
	return b.Update(todosTable).
		Set("reminder_sent", true).
		Where(sq.Eq{"id": todoID, "reminder_sent": false}).
		ToSql()
}

func buildInsertEmailQuery(b sq.StatementBuilderType, email models.Email) (string, []any, error) {
	return b.Insert(emailsTable).
		Columns("id", `"to"`, "subject", "html", "created_at").
		Values(email.ID, email.To, email.Subject, email.HTML, email.CreatedAt.UTC()).
		ToSql()
}

// ── profiles ──────────────────────────────────────────────────────────────────

func buildInsertProfileQuery(b sq.StatementBuilderType, profile models.Profile) (string, []any, error) {
	return b.Insert(profilesTable).
		Columns(profileColumns...).
		Values(profile.ID, profile.Email, profile.PasswordHash, profile.CreatedAt.UTC()).
		Suffix("RETURNING " + joinColumns(profileColumns)).
		ToSql()
}

func buildFindProfileByEmailQuery(b sq.StatementBuilderType, email string) (string, []any, error) {
	return b.Select(profileColumns...).
		From(profilesTable).
		Where(sq.Eq{"email": email}).
		ToSql()
}

// ── column helpers ────────────────────────────────────────────────────────────

// rowScanner is satisfied by *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanNote(row rowScanner) (models.Note, error) {
	var (
		note             models.Note
		category         sql.NullString
		tags             string
		audioURL         sql.NullString
		formattedContent sql.NullString
	)

	err := row.Scan(
		&note.ID,
		&note.UserID,
		&note.Content,
		&category,
		&tags,
		&note.IsArchived,
		&audioURL,
		&formattedContent,
		&note.CreatedAt,
	)
	if err != nil {
		return models.Note{}, err
	}

	note.Category = models.Category(category.String)
	note.AudioURL = audioURL.String
	note.FormattedContent = formattedContent.String
	if note.Tags, err = decodeTags(tags); err != nil {
		return models.Note{}, err
	}

	return note, nil
}

func scanTodo(row rowScanner, extra ...any) (models.Todo, error) {
	var (
		todo         models.Todo
		description  sql.NullString
		priority     string
		dueDate      sql.NullTime
		reminderDate sql.NullTime
	)

	dest := []any{
		&todo.ID,
		&todo.UserID,
		&todo.Title,
		&description,
		&todo.IsCompleted,
		&priority,
		&dueDate,
		&reminderDate,
		&todo.ReminderSent,
		&todo.CreatedAt,
	}
	if err := row.Scan(append(dest, extra...)...); err != nil {
		return models.Todo{}, err
	}

	todo.Description = description.String
	todo.Priority = models.Priority(priority)
	todo.DueDate = timePtr(dueDate)
	todo.ReminderDate = timePtr(reminderDate)

	return todo, nil
}

func scanProfile(row rowScanner) (models.Profile, error) {
	var p models.Profile
	err := row.Scan(&p.ID, &p.Email, &p.PasswordHash, &p.CreatedAt)
	return p, err
}

// Tags are stored as a JSON array in a TEXT column so both drivers share
// the schema.
func encodeTags(tags []string) (string, error) {
	tags = models.NormalizeTags(tags)
	if tags == nil {
		return "[]", nil
	}

	data, err := json.Marshal(tags)
	if err != nil {
		return "", fmt.Errorf("%w: tags: %w", ErrEncodingColumn, err)
	}
	return string(data), nil
}

func decodeTags(raw string) ([]string, error) {
	if raw == "" {
		return nil, nil
	}

	var tags []string
	if err := json.Unmarshal([]byte(raw), &tags); err != nil {
		return nil, fmt.Errorf("%w: tags: %w", ErrScanningRow, err)
	}
	if len(tags) == 0 {
		return nil, nil
	}
	return tags, nil
}

func nullString(s string) any {
	if s == "" {
		return nil
	}
	return s
}

func nullTime(t *time.Time) any {
	if t == nil {
		return nil
	}
	return t.UTC()
}

func timePtr(t sql.NullTime) *time.Time {
	if !t.Valid {
		return nil
	}
	v := t.Time
	return &v
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgerrcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/voice-notes/internal/logger"
	"github.com/MKhiriev/voice-notes/models"
)

func newTestNoteRepo(t *testing.T) (NoteRepository, sqlmock.Sqlmock) {
	db, mock := newTestDB(t)
	return NewNoteRepository(db, logger.Nop()), mock
}

func sampleNote() models.Note {
	return models.Note{
		ID:        testNoteID,
		UserID:    testUserID,
		Content:   "call the dentist",
		Category:  models.CategoryPersonal,
		Tags:      []string{"health", "calls"},
		CreatedAt: testNow,
	}
}

// ─────────────────────────────────────────────────────────────────────────────
// CreateNote
// ─────────────────────────────────────────────────────────────────────────────

func TestCreateNote_Success(t *testing.T) {
	repo, mock := newTestNoteRepo(t)
	note := sampleNote()

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO notes")).
		WithArgs(note.ID, note.UserID, note.Content, "personal", `["health","calls"]`, false, nil, nil, testNow).
		WillReturnRows(noteRows().AddRow(
			note.ID, note.UserID, note.Content, "personal", `["health","calls"]`, false, nil, nil, testNow,
		))

	created, err := repo.CreateNote(context.Background(), note)

	require.NoError(t, err)
	assert.Equal(t, note, created)
}

func TestCreateNote_UnknownOwner(t *testing.T) {
	repo, mock := newTestNoteRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO notes")).
		WillReturnError(pgError(pgerrcode.ForeignKeyViolation))

	_, err := repo.CreateNote(context.Background(), sampleNote())
	assert.ErrorIs(t, err, ErrProfileNotFound)
}

func TestCreateNote_CheckViolation(t *testing.T) {
	repo, mock := newTestNoteRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO notes")).
		WillReturnError(pgError(pgerrcode.CheckViolation))

	_, err := repo.CreateNote(context.Background(), sampleNote())
	assert.ErrorIs(t, err, ErrConstraintViolation)
}

// ─────────────────────────────────────────────────────────────────────────────
// GetNote / ListNotes
// ─────────────────────────────────────────────────────────────────────────────

func TestGetNote_NotFound(t *testing.T) {
	repo, mock := newTestNoteRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, user_id, content")).
		WithArgs(testNoteID, testUserID).
		WillReturnRows(noteRows())

	_, err := repo.GetNote(context.Background(), testUserID, testNoteID)
	assert.ErrorIs(t, err, ErrNoteNotFound)
}

func TestGetNote_NullableColumns(t *testing.T) {
	repo, mock := newTestNoteRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta("FROM notes")).
		WillReturnRows(noteRows().AddRow(testNoteID, testUserID, "x", nil, "[]", true, nil, nil, testNow))

	note, err := repo.GetNote(context.Background(), testUserID, testNoteID)

	require.NoError(t, err)
	assert.Empty(t, note.Category)
	assert.Nil(t, note.Tags)
	assert.True(t, note.IsArchived)
}

func TestListNotes_Success(t *testing.T) {
	repo, mock := newTestNoteRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta("FROM notes WHERE user_id = $1 ORDER BY created_at DESC")).
		WithArgs(testUserID).
		WillReturnRows(noteRows().
			AddRow("n2", testUserID, "second", "work", `["a"]`, false, "https://audio/2", nil, testNow).
			AddRow("n1", testUserID, "first", nil, "[]", false, nil, "<p>first</p>", testNow.Add(-1)))

	notes, err := repo.ListNotes(context.Background(), testUserID, models.NoteFilter{})

	require.NoError(t, err)
	require.Len(t, notes, 2)
	assert.Equal(t, "n2", notes[0].ID)
	assert.Equal(t, "https://audio/2", notes[0].AudioURL)
	assert.Equal(t, "<p>first</p>", notes[1].FormattedContent)
}

func TestListNotes_QueryError(t *testing.T) {
	repo, mock := newTestNoteRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta("FROM notes")).WillReturnError(errors.New("conn reset"))

	_, err := repo.ListNotes(context.Background(), testUserID, models.NoteFilter{})
	assert.ErrorIs(t, err, ErrExecutingQuery)
}

func TestListNotes_BadTagsColumn(t *testing.T) {
	repo, mock := newTestNoteRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta("FROM notes")).
		WillReturnRows(noteRows().AddRow("n1", testUserID, "x", nil, "not json", false, nil, nil, testNow))

	_, err := repo.ListNotes(context.Background(), testUserID, models.NoteFilter{})
	assert.ErrorIs(t, err, ErrScanningRow)
}

// ─────────────────────────────────────────────────────────────────────────────
// ToggleArchive / UpdateNote / DeleteNote
// ─────────────────────────────────────────────────────────────────────────────

func TestToggleArchive_ReturnsFlippedRow(t *testing.T) {
	repo, mock := newTestNoteRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta("UPDATE notes SET is_archived = NOT is_archived WHERE id = $1 AND user_id = $2")).
		WithArgs(testNoteID, testUserID).
		WillReturnRows(noteRows().AddRow(testNoteID, testUserID, "x", nil, "[]", true, nil, nil, testNow))

	note, err := repo.ToggleArchive(context.Background(), testUserID, testNoteID)

	require.NoError(t, err)
	assert.True(t, note.IsArchived)
}

func TestToggleArchive_ForeignNote(t *testing.T) {
	repo, mock := newTestNoteRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta("UPDATE notes")).WillReturnRows(noteRows())

	_, err := repo.ToggleArchive(context.Background(), "someone-else", testNoteID)
	assert.ErrorIs(t, err, ErrNoteNotFound)
}

func TestUpdateNote_EmptyUpdate(t *testing.T) {
	repo, _ := newTestNoteRepo(t)

	_, err := repo.UpdateNote(context.Background(), testUserID, testNoteID, models.NoteUpdate{})
	assert.ErrorIs(t, err, ErrBuildingSQLQuery)
}

func TestDeleteNote(t *testing.T) {
	tests := []struct {
		name     string
		affected int64
		wantErr  error
	}{
		{name: "deleted", affected: 1},
		{name: "missing", affected: 0, wantErr: ErrNoteNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock := newTestNoteRepo(t)

			mock.ExpectExec(regexp.QuoteMeta("DELETE FROM notes WHERE id = $1 AND user_id = $2")).
				WithArgs(testNoteID, testUserID).
				WillReturnResult(sqlmock.NewResult(0, tt.affected))

			err := repo.DeleteNote(context.Background(), testUserID, testNoteID)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}

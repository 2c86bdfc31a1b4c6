// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package views

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/voice-notes/internal/mock"
	"github.com/MKhiriev/voice-notes/models"
)

func newTestNoteList(t *testing.T) (*NoteList, *mock.MockNoteBackend) {
	t.Helper()
	backend := mock.NewMockNoteBackend(gomock.NewController(t))
	return NewNoteList(backend), backend
}

func loadedNoteList(t *testing.T) (*NoteList, *mock.MockNoteBackend) {
	t.Helper()
	l, backend := newTestNoteList(t)
	backend.EXPECT().ListNotes(gomock.Any()).Return(sampleNotes(), nil)
	require.NoError(t, l.Load(context.Background()))
	return l, backend
}

func TestNoteList_Load(t *testing.T) {
	l, _ := loadedNoteList(t)
	assert.Equal(t, []string{"n2", "n3", "n1", "n4"}, noteIDs(l.All()))
}

func TestNoteList_LoadErrorKeepsState(t *testing.T) {
	l, backend := loadedNoteList(t)
	backend.EXPECT().ListNotes(gomock.Any()).Return(nil, errors.New("offline"))

	require.Error(t, l.Load(context.Background()))
	assert.Len(t, l.All(), 4)
}

func TestNoteList_Create(t *testing.T) {
	l, backend := loadedNoteList(t)

	backend.EXPECT().CreateNote(gomock.Any(), models.NoteDraft{
		Content: "new",
		Tags:    []string{"a", "b"},
	}).Return(models.Note{ID: "n9", Content: "new"}, nil)

	note, err := l.Create(context.Background(), models.NoteDraft{Content: "new", Tags: []string{" a", "b", "a", ""}})
	require.NoError(t, err)
	assert.Equal(t, "n9", note.ID)
	assert.Equal(t, "n9", l.All()[0].ID)
}

func TestNoteList_CreateRejectsBlank(t *testing.T) {
	l, _ := newTestNoteList(t)

	_, err := l.Create(context.Background(), models.NoteDraft{Content: " \n\t"})
	require.ErrorIs(t, err, ErrEmptyContent)
	assert.Empty(t, l.All())
}

func TestNoteList_CreateBackendErrorLeavesListAlone(t *testing.T) {
	l, backend := loadedNoteList(t)
	backend.EXPECT().CreateNote(gomock.Any(), gomock.Any()).Return(models.Note{}, errors.New("boom"))

	_, err := l.Create(context.Background(), models.NoteDraft{Content: "x"})
	require.Error(t, err)
	assert.Len(t, l.All(), 4)
}

func TestNoteList_UpdateReplacesInPlace(t *testing.T) {
	l, backend := loadedNoteList(t)
	content := "Buy bread and milk"

	backend.EXPECT().UpdateNote(gomock.Any(), "n2", models.NoteUpdate{Content: &content}).
		Return(models.Note{ID: "n2", Content: content, CreatedAt: at(3)}, nil)

	_, err := l.Update(context.Background(), "n2", models.NoteUpdate{Content: &content})
	require.NoError(t, err)

	all := l.All()
	assert.Equal(t, "n2", all[0].ID)
	assert.Equal(t, content, all[0].Content)
}

func TestNoteList_UpdateRejectsBlankContent(t *testing.T) {
	l, _ := newTestNoteList(t)
	blank := "  "

	_, err := l.Update(context.Background(), "n1", models.NoteUpdate{Content: &blank})
	require.ErrorIs(t, err, ErrEmptyContent)
}

func TestNoteList_ToggleArchiveAndVisible(t *testing.T) {
	l, backend := loadedNoteList(t)
	l.SetFilter(models.NoteFilter{Archived: ptr(false)})
	assert.Equal(t, []string{"n2", "n1", "n4"}, noteIDs(l.Visible()))

	backend.EXPECT().ToggleArchive(gomock.Any(), "n1").
		Return(models.Note{ID: "n1", IsArchived: true, CreatedAt: at(1)}, nil)

	_, err := l.ToggleArchive(context.Background(), "n1")
	require.NoError(t, err)
	assert.Equal(t, []string{"n2", "n4"}, noteIDs(l.Visible()))
	assert.Equal(t, models.NoteFilter{Archived: ptr(false)}, l.Filter())
}

func TestNoteList_DeleteRemovesOnlyThatNote(t *testing.T) {
	l, backend := loadedNoteList(t)
	backend.EXPECT().DeleteNote(gomock.Any(), "n3").Return(nil)

	require.NoError(t, l.Delete(context.Background(), "n3"))
	assert.Equal(t, []string{"n2", "n1", "n4"}, noteIDs(l.All()))
}

func TestNoteList_DeleteError(t *testing.T) {
	l, backend := loadedNoteList(t)
	backend.EXPECT().DeleteNote(gomock.Any(), "n3").Return(errors.New("forbidden"))

	require.Error(t, l.Delete(context.Background(), "n3"))
	assert.Len(t, l.All(), 4)
}

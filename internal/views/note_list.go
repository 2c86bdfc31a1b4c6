package views

import (
	"context"
	"slices"
	"strings"
	"sync"

	"github.com/MKhiriev/voice-notes/models"
)

// NoteList holds the fetched notes of one user and the active filter.
//
// Every mutation goes to the backend first; local state changes only after
// the backend succeeded, from the note it returned.
type NoteList struct {
	backend NoteBackend

	mu     sync.RWMutex
	notes  []models.Note
	filter models.NoteFilter
}

func NewNoteList(backend NoteBackend) *NoteList {
	return &NoteList{backend: backend}
}

// Load replaces the local set with the backend's.
func (l *NoteList) Load(ctx context.Context) error {
	notes, err := l.backend.ListNotes(ctx)
	if err != nil {
		return err
	}

	l.mu.Lock()
	l.notes = SortNotes(notes)
	l.mu.Unlock()
	return nil
}

// Create rejects blank content without calling the backend. The created
// note is placed first.
func (l *NoteList) Create(ctx context.Context, draft models.NoteDraft) (models.Note, error) {
	if strings.TrimSpace(draft.Content) == "" {
		return models.Note{}, ErrEmptyContent
	}
	draft.Tags = models.NormalizeTags(draft.Tags)

	note, err := l.backend.CreateNote(ctx, draft)
	if err != nil {
		return models.Note{}, err
	}

	l.mu.Lock()
	l.notes = slices.Insert(l.notes, 0, note)
	l.mu.Unlock()
	return note, nil
}

func (l *NoteList) Update(ctx context.Context, noteID string, update models.NoteUpdate) (models.Note, error) {
	if update.Content != nil && strings.TrimSpace(*update.Content) == "" {
		return models.Note{}, ErrEmptyContent
	}

	note, err := l.backend.UpdateNote(ctx, noteID, update)
	if err != nil {
		return models.Note{}, err
	}

	l.replace(note)
	return note, nil
}

func (l *NoteList) ToggleArchive(ctx context.Context, noteID string) (models.Note, error) {
	note, err := l.backend.ToggleArchive(ctx, noteID)
	if err != nil {
		return models.Note{}, err
	}

	l.replace(note)
	return note, nil
}

// Delete removes exactly the note with noteID.
func (l *NoteList) Delete(ctx context.Context, noteID string) error {
	if err := l.backend.DeleteNote(ctx, noteID); err != nil {
		return err
	}

	l.mu.Lock()
	l.notes = slices.DeleteFunc(l.notes, func(n models.Note) bool { return n.ID == noteID })
	l.mu.Unlock()
	return nil
}

func (l *NoteList) SetFilter(f models.NoteFilter) {
	l.mu.Lock()
	l.filter = f
	l.mu.Unlock()
}

func (l *NoteList) Filter() models.NoteFilter {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.filter
}

// All returns a copy of every loaded note.
func (l *NoteList) All() []models.Note {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return slices.Clone(l.notes)
}

// Visible is the loaded set narrowed by the current filter.
func (l *NoteList) Visible() []models.Note {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return FilterNotes(l.notes, l.filter)
}

func (l *NoteList) replace(note models.Note) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if i := slices.IndexFunc(l.notes, func(n models.Note) bool { return n.ID == note.ID }); i >= 0 {
		l.notes[i] = note
	}
}

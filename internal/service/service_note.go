package service

import (
	"context"
	"time"

	"github.com/MKhiriev/voice-notes/internal/logger"
	"github.com/MKhiriev/voice-notes/internal/store"
	"github.com/MKhiriev/voice-notes/internal/utils"
	"github.com/MKhiriev/voice-notes/internal/views"
	"github.com/MKhiriev/voice-notes/models"
)

type noteService struct {
	noteRepository store.NoteRepository
	ids            *utils.UUIDGenerator
	now            func() time.Time

	logger *logger.Logger
}

func NewNoteService(noteRepository store.NoteRepository, logger *logger.Logger) NoteService {
	return &noteService{
		noteRepository: noteRepository,
		ids:            utils.NewUUIDGenerator(),
		now:            time.Now,
		logger:         logger,
	}
}

// CreateNote assigns the id and creation time and normalises tags.
func (s *noteService) CreateNote(ctx context.Context, userID string, draft models.NoteDraft) (models.Note, error) {
	return s.noteRepository.CreateNote(ctx, models.Note{
		ID:               s.ids.Generate(),
		UserID:           userID,
		Content:          draft.Content,
		Category:         draft.Category,
		Tags:             models.NormalizeTags(draft.Tags),
		AudioURL:         draft.AudioURL,
		FormattedContent: draft.FormattedContent,
		CreatedAt:        s.now().UTC(),
	})
}

func (s *noteService) GetNote(ctx context.Context, userID, noteID string) (models.Note, error) {
	return s.noteRepository.GetNote(ctx, userID, noteID)
}

// ListNotes lets the database narrow by category and archived state and
// applies the text search afterwards, newest first.
func (s *noteService) ListNotes(ctx context.Context, userID string, filter models.NoteFilter) ([]models.Note, error) {
	notes, err := s.noteRepository.ListNotes(ctx, userID, filter)
	if err != nil {
		return nil, err
	}

	return views.FilterNotes(notes, filter), nil
}

func (s *noteService) UpdateNote(ctx context.Context, userID, noteID string, update models.NoteUpdate) (models.Note, error) {
	if update.Tags != nil {
		tags := models.NormalizeTags(*update.Tags)
		update.Tags = &tags
	}
	return s.noteRepository.UpdateNote(ctx, userID, noteID, update)
}

func (s *noteService) ToggleArchive(ctx context.Context, userID, noteID string) (models.Note, error) {
	return s.noteRepository.ToggleArchive(ctx, userID, noteID)
}

func (s *noteService) DeleteNote(ctx context.Context, userID, noteID string) error {
	return s.noteRepository.DeleteNote(ctx, userID, noteID)
}

package store

import "github.com/MKhiriev/voice-notes/internal/logger"

// Repositories bundles every repository over one connection.
type Repositories struct {
	ProfileRepository  ProfileRepository
	NoteRepository     NoteRepository
	TodoRepository     TodoRepository
	ReminderRepository ReminderRepository
}

func NewRepositories(db *DB, log *logger.Logger) *Repositories {
	return &Repositories{
		ProfileRepository:  NewProfileRepository(db, log),
		NoteRepository:     NewNoteRepository(db, log),
		TodoRepository:     NewTodoRepository(db, log),
		ReminderRepository: NewReminderRepository(db, log),
	}
}

package service

import (
	"github.com/MKhiriev/voice-notes/internal/config"
	"github.com/MKhiriev/voice-notes/internal/logger"
	"github.com/MKhiriev/voice-notes/internal/store"
	"github.com/MKhiriev/voice-notes/internal/validators"
	"github.com/MKhiriev/voice-notes/models"
)

type Services struct {
	AuthService     AuthService
	NoteService     NoteService
	TodoService     TodoService
	ReminderService ReminderService
	AppInfoService  AppInfoService
}

// NewServices wires every service over repositories. Note and todo services
// are wrapped with input validation.
func NewServices(repositories *store.Repositories, cfg *config.StructuredConfig, buildInfo models.AppBuildInfo, logger *logger.Logger) (*Services, error) {
	appInfoService, err := NewAppInfoService(buildInfo, logger)
	if err != nil {
		return nil, err
	}

	validator := validators.NewStructValidator()

	return &Services{
		AuthService:     NewAuthService(repositories.ProfileRepository, cfg.App, logger),
		NoteService:     NewNoteValidationService(validator).Wrap(NewNoteService(repositories.NoteRepository, logger)),
		TodoService:     NewTodoValidationService(validator).Wrap(NewTodoService(repositories.TodoRepository, logger)),
		ReminderService: NewReminderService(repositories.ReminderRepository, cfg.Reminders, logger),
		AppInfoService:  appInfoService,
	}, nil
}

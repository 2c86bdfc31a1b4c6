package service

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"time"

	"github.com/MKhiriev/voice-notes/internal/config"
	"github.com/MKhiriev/voice-notes/internal/logger"
	"github.com/MKhiriev/voice-notes/internal/store"
	"github.com/MKhiriev/voice-notes/internal/utils"
	"github.com/MKhiriev/voice-notes/models"
)

// DueDateLayout formats the due date in reminder emails.
const DueDateLayout = "Jan 2, 2006 15:04 MST"

var reminderTemplate = template.Must(template.New("reminder").Parse(
	`<h1>Reminder for your todo: {{.Title}}</h1>` +
		`<p>{{.Description}}</p>` +
		`<p>Due date: {{.DueDate}}</p>` +
		`<p>Priority: {{.Priority}}</p>`,
))

type reminderView struct {
	Title       string
	Description string
	DueDate     string
	Priority    models.Priority
}

type reminderService struct {
	reminderRepository store.ReminderRepository
	ids                *utils.UUIDGenerator
	window             time.Duration

	logger *logger.Logger
}

func NewReminderService(reminderRepository store.ReminderRepository, cfg config.Reminders, logger *logger.Logger) ReminderService {
	window := cfg.Window
	if window <= 0 {
		window = config.DefaultReminderWindow
	}

	return &reminderService{
		reminderRepository: reminderRepository,
		ids:                utils.NewUUIDGenerator(),
		window:             window,
		logger:             logger,
	}
}

// Dispatch enqueues one email per unsent reminder in [now, now+window].
//
// Items are processed one after another. The first failure aborts the run
// and is returned together with the counts so far; emails already enqueued
// stay enqueued. Todos claimed by an overlapping run are counted as skipped.
func (s *reminderService) Dispatch(ctx context.Context, now time.Time) (models.DispatchResult, error) {
	log := logger.FromContext(ctx)
	var result models.DispatchResult

	due, err := s.reminderRepository.SelectDue(ctx, now, now.Add(s.window))
	if err != nil {
		log.Err(err).Str("func", "*reminderService.Dispatch").Msg("failed to select due reminders")
		return result, err
	}
	result.Selected = len(due)

	for _, reminder := range due {
		email, err := s.composeEmail(reminder, now)
		if err != nil {
			return result, err
		}

		claimed, err := s.reminderRepository.ClaimAndEnqueue(ctx, reminder.Todo.ID, email)
		if err != nil {
			log.Err(err).
				Str("func", "*reminderService.Dispatch").
				Str("todo_id", reminder.Todo.ID).
				Msg("failed to claim reminder")
			return result, err
		}
		if !claimed {
			result.Skipped++
			continue
		}
		result.Processed++
	}

	log.Info().
		Int("selected", result.Selected).
		Int("processed", result.Processed).
		Int("skipped", result.Skipped).
		Msg("reminder dispatch finished")

	return result, nil
}

func (s *reminderService) composeEmail(reminder models.DueReminder, now time.Time) (models.Email, error) {
	html, err := RenderReminder(reminder.Todo)
	if err != nil {
		return models.Email{}, err
	}

	return models.Email{
		ID:        s.ids.Generate(),
		To:        reminder.OwnerEmail,
		Subject:   "Reminder: " + reminder.Todo.Title,
		HTML:      html,
		CreatedAt: now.UTC(),
	}, nil
}

// RenderReminder builds the HTML body of a reminder email. Every value is
// HTML-escaped.
func RenderReminder(todo models.Todo) (string, error) {
	view := reminderView{
		Title:       todo.Title,
		Description: todo.Description,
		DueDate:     "No due date",
		Priority:    todo.Priority,
	}
	if todo.DueDate != nil {
		view.DueDate = todo.DueDate.UTC().Format(DueDateLayout)
	}

	var buf bytes.Buffer
	if err := reminderTemplate.Execute(&buf, view); err != nil {
		return "", fmt.Errorf("%w: %w", ErrRenderingEmail, err)
	}
	return buf.String(), nil
}

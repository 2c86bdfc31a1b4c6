package tui

import (
	"slices"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/voice-notes/models"
)

const (
	todoFieldTitle = iota
	todoFieldDescription
	todoFieldDue
	todoFieldReminder
)

// todoForm creates or edits a todo. Dates are typed as "YYYY-MM-DD HH:MM"
// in local time; clearing a date field removes the date.
type todoForm struct {
	todoID   string
	inputs   []textinput.Model
	focus    int
	priority int

	// originals of the date fields, so an edit only sends what changed
	origDue      string
	origReminder string

	errMsg string
}

func newTodoForm(todo *models.Todo) *todoForm {
	placeholders := []string{"title", "description", "due: 2026-05-01 14:30", "remind at: 2026-05-01 09:00"}
	inputs := make([]textinput.Model, len(placeholders))
	for i, p := range placeholders {
		inputs[i] = textinput.New()
		inputs[i].Placeholder = p
		inputs[i].Width = 40
	}
	inputs[todoFieldTitle].CharLimit = 512
	inputs[todoFieldTitle].Focus()

	f := &todoForm{
		inputs:   inputs,
		priority: slices.Index(models.Priorities, models.PriorityMedium),
	}

	if todo != nil {
		f.todoID = todo.ID
		f.inputs[todoFieldTitle].SetValue(todo.Title)
		f.inputs[todoFieldDescription].SetValue(todo.Description)
		if todo.DueDate != nil {
			f.origDue = formatDate(todo.DueDate)
			f.inputs[todoFieldDue].SetValue(f.origDue)
		}
		if todo.ReminderDate != nil {
			f.origReminder = formatDate(todo.ReminderDate)
			f.inputs[todoFieldReminder].SetValue(f.origReminder)
		}
		if i := slices.Index(models.Priorities, todo.Priority); i >= 0 {
			f.priority = i
		}
	}

	return f
}

func (f *todoForm) editing() bool { return f.todoID != "" }

func (f *todoForm) selectedPriority() models.Priority {
	return models.Priorities[f.priority]
}

func (f *todoForm) cyclePriority() {
	f.priority = (f.priority + 1) % len(models.Priorities)
}

func (f *todoForm) value(field int) string {
	return strings.TrimSpace(f.inputs[field].Value())
}

func (f *todoForm) draft() (models.TodoDraft, error) {
	due, err := parseDate(f.value(todoFieldDue))
	if err != nil {
		return models.TodoDraft{}, err
	}
	reminder, err := parseDate(f.value(todoFieldReminder))
	if err != nil {
		return models.TodoDraft{}, err
	}

	return models.TodoDraft{
		Title:        f.value(todoFieldTitle),
		Description:  f.value(todoFieldDescription),
		Priority:     f.selectedPriority(),
		DueDate:      due,
		ReminderDate: reminder,
	}, nil
}

func (f *todoForm) update() (models.TodoUpdate, error) {
	d, err := f.draft()
	if err != nil {
		return models.TodoUpdate{}, err
	}

	u := models.TodoUpdate{
		Title:       &d.Title,
		Description: &d.Description,
		Priority:    &d.Priority,
	}

	if due := f.value(todoFieldDue); due != f.origDue {
		u.DueDate = d.DueDate
		u.ClearDueDate = d.DueDate == nil
	}
	if reminder := f.value(todoFieldReminder); reminder != f.origReminder {
		u.ReminderDate = d.ReminderDate
		u.ClearReminder = d.ReminderDate == nil
	}

	return u, nil
}

func (f *todoForm) updateInput(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	f.inputs[f.focus], cmd = f.inputs[f.focus].Update(msg)
	return cmd
}

func (f *todoForm) view() string {
	var b strings.Builder

	labels := []string{"Title       │ [", "Description │ [", "Due         │ [", "Reminder    │ ["}
	for i, label := range labels {
		b.WriteString(label)
		b.WriteString(f.inputs[i].View())
		b.WriteString("]\n")
	}
	b.WriteString("Priority    │ ")
	b.WriteString(string(f.selectedPriority()))
	b.WriteString("\n")

	renderFeedback(&b, "", f.errMsg)
	return strings.TrimRight(b.String(), "\n")
}

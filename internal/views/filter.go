package views

import (
	"cmp"
	"slices"
	"strings"

	"github.com/MKhiriev/voice-notes/models"
)

// FilterNotes returns the notes satisfying every active predicate of f.
func FilterNotes(notes []models.Note, f models.NoteFilter) []models.Note {
	query := strings.ToLower(strings.TrimSpace(f.Search))

	out := make([]models.Note, 0, len(notes))
	for _, n := range notes {
		if f.Category != "" && n.Category != f.Category {
			continue
		}
		if f.Archived != nil && n.IsArchived != *f.Archived {
			continue
		}
		if query != "" && !noteMatches(n, query) {
			continue
		}
		out = append(out, n)
	}
	return out
}

func noteMatches(n models.Note, query string) bool {
	if strings.Contains(strings.ToLower(n.Content), query) {
		return true
	}
	return slices.ContainsFunc(n.Tags, func(tag string) bool {
		return strings.Contains(strings.ToLower(tag), query)
	})
}

// FilterTodos returns the todos satisfying every active predicate of f.
func FilterTodos(todos []models.Todo, f models.TodoFilter) []models.Todo {
	query := strings.ToLower(strings.TrimSpace(f.Search))

	out := make([]models.Todo, 0, len(todos))
	for _, t := range todos {
		if f.Completed != nil && t.IsCompleted != *f.Completed {
			continue
		}
		if f.Priority != "" && t.Priority != f.Priority {
			continue
		}
		if query != "" &&
			!strings.Contains(strings.ToLower(t.Title), query) &&
			!strings.Contains(strings.ToLower(t.Description), query) {
			continue
		}
		out = append(out, t)
	}
	return out
}

// SortNotes orders notes newest first.
func SortNotes(notes []models.Note) []models.Note {
	out := slices.Clone(notes)
	slices.SortStableFunc(out, func(a, b models.Note) int {
		return b.CreatedAt.Compare(a.CreatedAt)
	})
	return out
}

// SortTodos returns a sorted copy of todos. Unknown keys keep the input order.
//
// SortByDueDate puts todos without a due date after every dated one.
func SortTodos(todos []models.Todo, key models.TodoSortKey) []models.Todo {
	out := slices.Clone(todos)

	switch key {
	case models.SortByPriority:
		slices.SortStableFunc(out, func(a, b models.Todo) int {
			return cmp.Compare(b.Priority.Rank(), a.Priority.Rank())
		})
	case models.SortByDueDate:
		slices.SortStableFunc(out, compareDueDate)
	case models.SortByCreatedAt:
		slices.SortStableFunc(out, func(a, b models.Todo) int {
			return b.CreatedAt.Compare(a.CreatedAt)
		})
	}

	return out
}

func compareDueDate(a, b models.Todo) int {
	switch {
	case a.DueDate == nil && b.DueDate == nil:
		return 0
	case a.DueDate == nil:
		return 1
	case b.DueDate == nil:
		return -1
	default:
		return a.DueDate.Compare(*b.DueDate)
	}
}

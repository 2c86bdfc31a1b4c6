package views

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/MKhiriev/voice-notes/models"
)

var baseTime = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func at(hours int) time.Time { return baseTime.Add(time.Duration(hours) * time.Hour) }

func ptr[T any](v T) *T { return &v }

func noteIDs(notes []models.Note) []string {
	ids := make([]string, len(notes))
	for i, n := range notes {
		ids[i] = n.ID
	}
	return ids
}

func todoIDs(todos []models.Todo) []string {
	ids := make([]string, len(todos))
	for i, t := range todos {
		ids[i] = t.ID
	}
	return ids
}

func sampleNotes() []models.Note {
	return []models.Note{
		{ID: "n1", Content: "Quarterly planning with Bob", Category: models.CategoryWork, Tags: []string{"Q3"}, CreatedAt: at(1)},
		{ID: "n2", Content: "Buy bread", Category: models.CategoryPersonal, Tags: []string{"shopping"}, CreatedAt: at(3)},
		{ID: "n3", Content: "App idea: voice diary", Category: models.CategoryIdeas, IsArchived: true, CreatedAt: at(2)},
		{ID: "n4", Content: "Untagged thought", CreatedAt: at(0)},
	}
}

func sampleTodos() []models.Todo {
	return []models.Todo{
		{ID: "t1", Title: "Write report", Description: "for the board", Priority: models.PriorityMedium, DueDate: ptr(at(48)), CreatedAt: at(1)},
		{ID: "t2", Title: "Call plumber", Priority: models.PriorityHigh, CreatedAt: at(2)},
		{ID: "t3", Title: "Water plants", Priority: models.PriorityLow, IsCompleted: true, DueDate: ptr(at(24)), CreatedAt: at(3)},
		{ID: "t4", Title: "Book flights", Description: "REPORT receipts", Priority: models.PriorityHigh, DueDate: ptr(at(72)), CreatedAt: at(0)},
	}
}

// ─── notes ──────────────────────────────────────────────────────────────────

func TestFilterNotes(t *testing.T) {
	tests := []struct {
		name   string
		filter models.NoteFilter
		want   []string
	}{
		{name: "zero filter keeps all", want: []string{"n1", "n2", "n3", "n4"}},
		{name: "category", filter: models.NoteFilter{Category: models.CategoryWork}, want: []string{"n1"}},
		{name: "search content case-insensitive", filter: models.NoteFilter{Search: "BREAD"}, want: []string{"n2"}},
		{name: "search matches tag", filter: models.NoteFilter{Search: "q3"}, want: []string{"n1"}},
		{name: "search is trimmed", filter: models.NoteFilter{Search: "  idea "}, want: []string{"n3"}},
		{name: "archived only", filter: models.NoteFilter{Archived: ptr(true)}, want: []string{"n3"}},
		{name: "active only", filter: models.NoteFilter{Archived: ptr(false)}, want: []string{"n1", "n2", "n4"}},
		{
			name:   "predicates combine",
			filter: models.NoteFilter{Category: models.CategoryIdeas, Archived: ptr(false)},
			want:   []string{},
		},
		{name: "no match", filter: models.NoteFilter{Search: "zebra"}, want: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := sampleNotes()
			got := FilterNotes(in, tt.filter)
			assert.Equal(t, tt.want, noteIDs(got))
			assert.Equal(t, sampleNotes(), in, "input must not change")
		})
	}
}

func TestSortNotes_NewestFirst(t *testing.T) {
	in := sampleNotes()
	assert.Equal(t, []string{"n2", "n3", "n1", "n4"}, noteIDs(SortNotes(in)))
	assert.Equal(t, []string{"n1", "n2", "n3", "n4"}, noteIDs(in))
}

// ─── todos ──────────────────────────────────────────────────────────────────

func TestFilterTodos(t *testing.T) {
	tests := []struct {
		name   string
		filter models.TodoFilter
		want   []string
	}{
		{name: "zero filter keeps all", want: []string{"t1", "t2", "t3", "t4"}},
		{name: "completed", filter: models.TodoFilter{Completed: ptr(true)}, want: []string{"t3"}},
		{name: "open", filter: models.TodoFilter{Completed: ptr(false)}, want: []string{"t1", "t2", "t4"}},
		{name: "priority", filter: models.TodoFilter{Priority: models.PriorityHigh}, want: []string{"t2", "t4"}},
		{name: "search title and description", filter: models.TodoFilter{Search: "report"}, want: []string{"t1", "t4"}},
		{
			name:   "predicates combine",
			filter: models.TodoFilter{Search: "report", Priority: models.PriorityMedium},
			want:   []string{"t1"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, todoIDs(FilterTodos(sampleTodos(), tt.filter)))
		})
	}
}

func TestSortTodos(t *testing.T) {
	tests := []struct {
		key  models.TodoSortKey
		want []string
	}{
		{key: models.SortByDueDate, want: []string{"t3", "t1", "t4", "t2"}},
		{key: models.SortByPriority, want: []string{"t2", "t4", "t1", "t3"}},
		{key: models.SortByCreatedAt, want: []string{"t3", "t2", "t1", "t4"}},
		{key: "title", want: []string{"t1", "t2", "t3", "t4"}},
	}

	for _, tt := range tests {
		t.Run(string(tt.key), func(t *testing.T) {
			in := sampleTodos()
			assert.Equal(t, tt.want, todoIDs(SortTodos(in, tt.key)))
			assert.Equal(t, []string{"t1", "t2", "t3", "t4"}, todoIDs(in))
		})
	}
}

func TestSortTodos_UndatedKeepRelativeOrder(t *testing.T) {
	in := []models.Todo{
		{ID: "a"},
		{ID: "b", DueDate: ptr(at(5))},
		{ID: "c"},
	}
	assert.Equal(t, []string{"b", "a", "c"}, todoIDs(SortTodos(in, models.SortByDueDate)))
}

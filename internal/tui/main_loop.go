package tui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/voice-notes/internal/views"
)

type tab int

const (
	tabNotes tab = iota
	tabTodos
)

// mainLoopModel is the signed-in application: a notes tab and a todos tab.
type mainLoopModel struct {
	email string

	active tab
	notes  *notesScreen
	todos  *todosScreen

	logout bool
}

func newMainLoopModel(ctx context.Context, email string, notes *views.NoteList, todos *views.TodoList, dictation Dictation) mainLoopModel {
	return mainLoopModel{
		email: email,
		notes: newNotesScreen(ctx, notes, dictation),
		todos: newTodosScreen(ctx, todos),
	}
}

func (m mainLoopModel) Init() tea.Cmd {
	return tea.Batch(m.notes.init(), m.todos.init())
}

func (m mainLoopModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, tea.Batch(m.notes.update(msg), m.todos.update(msg))
	}

	if keyMsg.String() == "ctrl+c" {
		return m, tea.Sequence(m.notes.shutdown(), tea.Quit)
	}

	if !m.capturing() {
		switch {
		case key.Matches(keyMsg, keys.quit):
			return m, tea.Sequence(m.notes.shutdown(), tea.Quit)
		case key.Matches(keyMsg, keys.logout):
			m.logout = true
			return m, tea.Sequence(m.notes.shutdown(), tea.Quit)
		case key.Matches(keyMsg, keys.tab):
			if m.active == tabNotes {
				m.active = tabTodos
			} else {
				m.active = tabNotes
			}
			return m, nil
		}
	}

	if m.active == tabTodos {
		return m, m.todos.update(msg)
	}
	return m, m.notes.update(msg)
}

func (m mainLoopModel) capturing() bool {
	if m.active == tabTodos {
		return m.todos.capturing()
	}
	return m.notes.capturing()
}

func (m mainLoopModel) View() string {
	var body, hotKeys string
	if m.active == tabTodos {
		body = m.todos.view()
		hotKeys = "n: new │ e: edit │ space: done │ d: delete │ /: search │ f: status │ p: priority │ s: sort │ r: reload"
	} else {
		body = m.notes.view()
		hotKeys = "n: new │ e: edit │ x: archive │ d: delete │ y: copy │ /: search │ c: category │ a: archived │ r: reload"
	}
	if !m.capturing() {
		hotKeys += "\ntab: switch │ L: sign out │ q: quit"
	}

	return renderPage(m.header(), body, hotKeys)
}

func (m mainLoopModel) header() string {
	tabs := []string{"Notes", "Todos"}
	for i := range tabs {
		if tab(i) == m.active {
			tabs[i] = "[" + tabs[i] + "]"
		} else {
			tabs[i] = " " + tabs[i] + " "
		}
	}
	return "VOICE NOTES  " + strings.Join(tabs, " ") + "  " + m.email
}

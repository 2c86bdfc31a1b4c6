package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/voice-notes/models"
)

// NavigateTo switches the active page of [RootModel]. Payload, when set, is
// delivered to the new page as its first message.
type NavigateTo struct {
	Page    string
	Payload tea.Msg
}

// AuthResult ends the login flow when Err is nil.
type AuthResult struct {
	Response models.AuthResponse
	Err      error
}

type serverVersionMsg struct {
	info models.AppBuildInfo
	err  error
}

type notesLoadedMsg struct{ err error }

type noteSavedMsg struct {
	note    models.Note
	created bool
	err     error
}

type noteArchivedMsg struct {
	note models.Note
	err  error
}

type noteDeletedMsg struct{ err error }

type todosLoadedMsg struct{ err error }

type todoSavedMsg struct {
	todo    models.Todo
	created bool
	err     error
}

type todoToggledMsg struct {
	todo models.Todo
	err  error
}

type todoDeletedMsg struct{ err error }

type dictationStartedMsg struct {
	feed *dictationFeed
	err  error
}

type transcriptMsg struct {
	feed *dictationFeed
	text string
}

type dictationStoppedMsg struct {
	feed *dictationFeed
	// text is the last transcript not yet delivered, if any.
	text string
	err  error
}

package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/voice-notes/internal/logger"
	"github.com/MKhiriev/voice-notes/internal/views"
	"github.com/MKhiriev/voice-notes/models"
)

// TUI runs the two Bubble Tea programs of the client: the sign-in flow and
// the signed-in main loop.
type TUI struct {
	auth      AuthClient
	notes     *views.NoteList
	todos     *views.TodoList
	dictation Dictation
	buildInfo models.AppBuildInfo
	options   []tea.ProgramOption

	logger *logger.Logger
}

// New builds the TUI. dictation may be nil, in which case the note form
// says dictation is not configured.
func New(auth AuthClient, notes *views.NoteList, todos *views.TodoList, dictation Dictation, buildInfo models.AppBuildInfo, logger *logger.Logger) *TUI {
	return &TUI{
		auth:      auth,
		notes:     notes,
		todos:     todos,
		dictation: dictation,
		buildInfo: buildInfo,
		options:   []tea.ProgramOption{tea.WithAltScreen()},
		logger:    logger,
	}
}

// LoginFlow shows the menu, sign-in and sign-up pages until the user is
// authenticated. status is shown above the menu. ErrUserQuit is returned
// on ctrl+c.
func (t *TUI) LoginFlow(ctx context.Context, status string) (models.AuthResponse, error) {
	pages := map[string]tea.Model{
		pageMenu:     NewMenuModel(status),
		pageLogin:    NewLoginModel(ctx, t.auth),
		pageRegister: NewRegisterModel(ctx, t.auth),
	}

	root := NewRootModel(ctx, t.auth, pages, pageMenu, t.buildInfo)
	finalModel, err := tea.NewProgram(root, t.programOptions(ctx)...).Run()
	if err != nil {
		return models.AuthResponse{}, err
	}

	result, ok := finalModel.(RootModel)
	if !ok {
		return models.AuthResponse{}, tea.ErrProgramKilled
	}
	if result.quitByUser {
		return models.AuthResponse{}, ErrUserQuit
	}

	t.logger.Info().Str("user_id", result.result.UserID).Msg("signed in")
	return result.result, nil
}

// MainLoop runs the notes and todos screens. logout is true when the user
// signed out rather than quit.
func (t *TUI) MainLoop(ctx context.Context, email string) (logout bool, err error) {
	model := newMainLoopModel(ctx, email, t.notes, t.todos, t.dictation)
	finalModel, err := tea.NewProgram(model, t.programOptions(ctx)...).Run()
	if err != nil {
		return false, err
	}

	result, ok := finalModel.(mainLoopModel)
	if !ok {
		return false, tea.ErrProgramKilled
	}
	return result.logout, nil
}

func (t *TUI) programOptions(ctx context.Context) []tea.ProgramOption {
	return append([]tea.ProgramOption{tea.WithContext(ctx)}, t.options...)
}

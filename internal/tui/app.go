package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/voice-notes/models"
)

// Page names understood by [RootModel].
const (
	pageMenu     = "menu"
	pageLogin    = "login"
	pageRegister = "register"
)

// RootModel routes the sign-in pages:
//  1. keeps the active page
//  2. handles the global ctrl+c quit and the "v" about window
//  3. handles NavigateTo messages
//  4. finishes on a successful AuthResult
type RootModel struct {
	ctx     context.Context
	auth    AuthClient
	pages   map[string]tea.Model
	current tea.Model

	quitByUser bool
	result     models.AuthResponse

	buildInfo     models.AppBuildInfo
	serverInfo    *models.AppBuildInfo
	serverErr     string
	showBuildInfo bool
}

func NewRootModel(ctx context.Context, auth AuthClient, pages map[string]tea.Model, startPage string, buildInfo models.AppBuildInfo) RootModel {
	return RootModel{
		ctx:       ctx,
		auth:      auth,
		pages:     pages,
		current:   pages[startPage],
		buildInfo: buildInfo,
	}
}

func (r RootModel) Init() tea.Cmd {
	if r.current == nil {
		return nil
	}
	return r.current.Init()
}

func (r RootModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "ctrl+c":
			r.quitByUser = true
			return r, tea.Quit
		case "v":
			if r.isMenuPage() && !r.showBuildInfo {
				r.showBuildInfo = true
				return r, r.cmdServerVersion()
			}
		case "esc":
			if r.showBuildInfo {
				r.showBuildInfo = false
				return r, nil
			}
		}

		if r.showBuildInfo {
			return r, nil
		}
	}

	switch msg := msg.(type) {
	case NavigateTo:
		next, exists := r.pages[msg.Page]
		if !exists {
			return r, nil
		}

		r.showBuildInfo = false
		r.current = next

		if msg.Payload != nil {
			payload := msg.Payload
			return r, tea.Batch(r.current.Init(), func() tea.Msg { return payload })
		}
		return r, r.current.Init()

	case serverVersionMsg:
		if msg.err != nil {
			r.serverErr = humanizeError(msg.err)
			return r, nil
		}
		info := msg.info
		r.serverInfo = &info
		r.serverErr = ""
		return r, nil

	case AuthResult:
		if msg.Err == nil {
			r.result = msg.Response
			return r, tea.Quit
		}
	}

	if r.current == nil {
		return r, nil
	}

	updated, cmd := r.current.Update(msg)
	r.current = updated
	return r, cmd
}

func (r RootModel) View() string {
	if r.showBuildInfo {
		return renderBuildInfoWindow(r.buildInfo, r.serverInfo, r.serverErr)
	}
	if r.current == nil {
		return renderPage("VOICE NOTES", "", "")
	}
	return r.current.View()
}

func (r RootModel) isMenuPage() bool {
	_, ok := r.current.(*MenuModel)
	return ok
}

func (r RootModel) cmdServerVersion() tea.Cmd {
	ctx, auth := r.ctx, r.auth
	return func() tea.Msg {
		info, err := auth.ServerVersion(ctx)
		return serverVersionMsg{info: info, err: err}
	}
}

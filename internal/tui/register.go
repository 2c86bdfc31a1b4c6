package tui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/voice-notes/models"
)

const (
	minPasswordLength = 8
	maxPasswordLength = 72
)

// RegisterModel is the sign-up page. The server signs the new account in
// right away, so success ends the flow the same way a login does.
type RegisterModel struct {
	ctx  context.Context
	auth AuthClient

	inputs     []textinput.Model
	focus      int
	submitting bool
	errMsg     string
}

func NewRegisterModel(ctx context.Context, auth AuthClient) *RegisterModel {
	return &RegisterModel{
		ctx:  ctx,
		auth: auth,
		inputs: []textinput.Model{
			newEmailInput(),
			newPasswordInput("password"),
			newPasswordInput("repeat password"),
		},
	}
}

func (m *RegisterModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *RegisterModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if result, ok := msg.(AuthResult); ok {
		m.submitting = false
		if result.Err != nil {
			m.errMsg = humanizeError(result.Err)
		}
		return m, nil
	}

	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, keys.esc):
			m.submitting = false
			m.errMsg = ""
			return m, func() tea.Msg { return NavigateTo{Page: pageMenu} }
		case key.Matches(keyMsg, keys.tab):
			m.focus = moveFocus(m.inputs, m.focus, 1)
			return m, nil
		case key.Matches(keyMsg, keys.backtab):
			m.focus = moveFocus(m.inputs, m.focus, -1)
			return m, nil
		case key.Matches(keyMsg, keys.enter):
			if m.submitting {
				return m, nil
			}

			credentials, errMsg := m.credentials()
			if errMsg != "" {
				m.errMsg = errMsg
				return m, nil
			}

			m.errMsg = ""
			m.submitting = true
			return m, cmdAuthenticate(m.ctx, m.auth.Register, credentials)
		}
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

// credentials mirrors the server's rules so obvious mistakes never leave
// the terminal.
func (m *RegisterModel) credentials() (models.Credentials, string) {
	email := strings.TrimSpace(m.inputs[0].Value())
	password := m.inputs[1].Value()
	repeat := m.inputs[2].Value()

	switch {
	case email == "" || password == "":
		return models.Credentials{}, "Email and password are required"
	case !strings.Contains(email, "@"):
		return models.Credentials{}, "Email address is not valid"
	case len(password) < minPasswordLength:
		return models.Credentials{}, "Password must be at least 8 characters"
	case len(password) > maxPasswordLength:
		return models.Credentials{}, "Password must be at most 72 characters"
	case password != repeat:
		return models.Credentials{}, "Passwords do not match"
	}

	return models.Credentials{Email: email, Password: password}, ""
}

func (m *RegisterModel) View() string {
	var b strings.Builder
	b.WriteString("Field     │ Value\n")
	b.WriteString("──────────┼────────────────────────────────────────────\n")

	labels := []string{"Email     │ [", "Password  │ [", "Repeat    │ ["}
	for i, label := range labels {
		b.WriteString(label)
		b.WriteString(m.inputs[i].View())
		b.WriteString("]\n")
	}

	if m.submitting {
		b.WriteString("\n[Creating account...]\n")
	} else {
		b.WriteString("\n[Create account]\n")
	}
	renderFeedback(&b, "", m.errMsg)

	return renderPage("CREATE ACCOUNT", strings.TrimRight(b.String(), "\n"), "esc: back │ tab: next field │ enter: submit")
}

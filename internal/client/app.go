package client

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/voice-notes/internal/adapter"
	"github.com/MKhiriev/voice-notes/internal/config"
	"github.com/MKhiriev/voice-notes/internal/logger"
	"github.com/MKhiriev/voice-notes/internal/speech"
	"github.com/MKhiriev/voice-notes/internal/tui"
	"github.com/MKhiriev/voice-notes/internal/views"
	"github.com/MKhiriev/voice-notes/models"
)

// UI is the part of the terminal interface the App drives.
type UI interface {
	LoginFlow(ctx context.Context, status string) (models.AuthResponse, error)
	MainLoop(ctx context.Context, email string) (logout bool, err error)
}

type App struct {
	adapter adapter.ServerAdapter
	ui      UI

	logger *logger.Logger
}

// NewApp wires the REST adapter, the list views, the dictation session and
// the TUI.
func NewApp(cfg *config.ClientConfig, buildInfo models.AppBuildInfo, logger *logger.Logger) (*App, error) {
	serverAdapter, err := adapter.NewHTTPServerAdapter(cfg.Adapter, logger)
	if err != nil {
		return nil, fmt.Errorf("create server adapter: %w", err)
	}

	env := speech.NewEnvironment(cfg.Speech, cfg.Adapter.HTTPAddress)
	dictation := speech.NewSession(
		env,
		cfg.Speech.Language,
		speech.NewDeviceMicrophone(env.Device),
		speech.NewCommandRecognizer(cfg.Speech),
		logger,
	)
	logger.Info().Str("capability", speech.CheckCapability(env).String()).Msg("dictation probed")

	ui := tui.New(
		serverAdapter,
		views.NewNoteList(serverAdapter),
		views.NewTodoList(serverAdapter),
		dictation,
		buildInfo,
		logger,
	)

	return newApp(serverAdapter, ui, logger), nil
}

func newApp(serverAdapter adapter.ServerAdapter, ui UI, logger *logger.Logger) *App {
	return &App{
		adapter: serverAdapter,
		ui:      ui,
		logger:  logger,
	}
}

// Run blocks until the user quits or the process is interrupted.
func (a *App) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return a.run(ctx)
}

func (a *App) run(ctx context.Context) error {
	status := ""
	for {
		auth, err := a.ui.LoginFlow(ctx, status)
		if errors.Is(err, tui.ErrUserQuit) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("login flow: %w", err)
		}

		logout, err := a.ui.MainLoop(ctx, auth.Email)
		if err != nil {
			return fmt.Errorf("main loop: %w", err)
		}
		if !logout {
			return nil
		}

		a.adapter.SetToken("")
		a.logger.Info().Str("user_id", auth.UserID).Msg("signed out")
		status = "Signed out."
	}
}

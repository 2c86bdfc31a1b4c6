package tui

import (
	"context"

	"github.com/MKhiriev/voice-notes/models"
)

// AuthClient signs the user in and reports the server build.
type AuthClient interface {
	Register(ctx context.Context, credentials models.Credentials) (models.AuthResponse, error)
	Login(ctx context.Context, credentials models.Credentials) (models.AuthResponse, error)
	ServerVersion(ctx context.Context) (models.AppBuildInfo, error)
}

// Dictation is the microphone control of the note form.
type Dictation interface {
	Start(ctx context.Context, onTranscript func(string), onStop func(error)) error
	Stop()
	Retry()
	Disabled() error
	Recording() bool
}

package speech

import (
	"errors"
	"fmt"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/MKhiriev/voice-notes/internal/config"
)

func TestIsSecureEndpoint(t *testing.T) {
	tests := []struct {
		raw  string
		want bool
	}{
		{"https://notes.example.com", true},
		{"HTTPS://notes.example.com:8443/api", true},
		{"http://localhost:8080", true},
		{"http://LOCALHOST", true},
		{"http://127.0.0.1:8080", true},
		{"http://[::1]:8080", true},
		{"http://notes.example.com", false},
		{"http://10.0.0.5:8080", false},
		{"ftp://localhost", false},
		{"localhost:8080", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			assert.Equal(t, tt.want, IsSecureEndpoint(tt.raw))
		})
	}
}

func TestCheckCapability(t *testing.T) {
	device := t.TempDir()

	tests := []struct {
		name string
		env  Environment
		want Capability
	}{
		{
			name: "available",
			env:  Environment{ServerURL: "http://localhost:8080", Device: device, Command: "sh"},
			want: Available,
		},
		{
			name: "insecure endpoint wins over everything",
			env:  Environment{ServerURL: "http://notes.example.com", Device: "", Command: ""},
			want: InsecureContext,
		},
		{
			name: "missing device",
			env:  Environment{ServerURL: "https://notes.example.com", Device: filepath.Join(device, "nope"), Command: "sh"},
			want: MicrophoneUnavailable,
		},
		{
			name: "empty device",
			env:  Environment{ServerURL: "https://notes.example.com", Command: "sh"},
			want: MicrophoneUnavailable,
		},
		{
			name: "no command configured",
			env:  Environment{ServerURL: "https://notes.example.com", Device: device},
			want: RecognitionUnsupported,
		},
		{
			name: "command not installed",
			env:  Environment{ServerURL: "https://notes.example.com", Device: device, Command: "voice-notes-no-such-recognizer"},
			want: RecognitionUnsupported,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CheckCapability(tt.env))
		})
	}
}

func TestCapability_MessagesAreDistinct(t *testing.T) {
	all := []Capability{Available, InsecureContext, MicrophoneUnavailable, RecognitionUnsupported, PermissionDenied}

	seen := make(map[string]Capability)
	for _, c := range all {
		msg := c.Message()
		assert.NotEmpty(t, msg)
		if prev, ok := seen[msg]; ok {
			t.Errorf("%s and %s share message %q", prev, c, msg)
		}
		seen[msg] = c
	}
}

func TestCapability_ErrRoundTrip(t *testing.T) {
	assert.NoError(t, Available.Err())

	for _, c := range []Capability{InsecureContext, MicrophoneUnavailable, RecognitionUnsupported, PermissionDenied} {
		wrapped := fmt.Errorf("acquire: %w", c.Err())
		assert.Equal(t, c, CapabilityOf(wrapped), c.String())
	}

	assert.Equal(t, Available, CapabilityOf(errors.New("network down")))
	assert.Equal(t, Available, CapabilityOf(nil))
}

func TestNewEnvironment(t *testing.T) {
	env := NewEnvironment(config.Speech{Command: "whisper-stream"}, "http://localhost:8080")

	assert.Equal(t, Environment{
		ServerURL: "http://localhost:8080",
		Device:    config.DefaultSpeechDevice,
		Command:   "whisper-stream",
	}, env)
}

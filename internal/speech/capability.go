package speech

import (
	"errors"
	"io/fs"
	"net"
	"net/url"
	"os"
	"os/exec"
	"strings"

	"github.com/MKhiriev/voice-notes/internal/config"
)

// Capability is the result of probing whether dictation can run.
type Capability int

const (
	Available Capability = iota
	InsecureContext
	MicrophoneUnavailable
	RecognitionUnsupported
	PermissionDenied
)

func (c Capability) String() string {
	switch c {
	case Available:
		return "available"
	case InsecureContext:
		return "insecure_context"
	case MicrophoneUnavailable:
		return "microphone_unavailable"
	case RecognitionUnsupported:
		return "recognition_unsupported"
	case PermissionDenied:
		return "permission_denied"
	default:
		return "unknown"
	}
}

// Message is the text shown to the user next to the dictation control.
func (c Capability) Message() string {
	switch c {
	case Available:
		return "Dictation is ready."
	case InsecureContext:
		return "Media recording requires a secure context (HTTPS or localhost)."
	case MicrophoneUnavailable:
		return "Audio recording is not supported: no capture device was found."
	case RecognitionUnsupported:
		return "Speech recognition is not supported. Install a speech-to-text command and set SPEECH_COMMAND."
	case PermissionDenied:
		return "Microphone access was denied. Check the permissions of the audio device."
	default:
		return "Error accessing microphone."
	}
}

// Err returns the sentinel error matching c, nil for Available.
func (c Capability) Err() error {
	switch c {
	case Available:
		return nil
	case InsecureContext:
		return ErrInsecureContext
	case MicrophoneUnavailable:
		return ErrMicrophoneUnavailable
	case RecognitionUnsupported:
		return ErrRecognitionUnsupported
	case PermissionDenied:
		return ErrPermissionDenied
	default:
		return ErrMicrophoneUnavailable
	}
}

// CapabilityOf maps an error returned by a Session back to a Capability.
// Errors that do not disable dictation map to Available.
func CapabilityOf(err error) Capability {
	switch {
	case err == nil:
		return Available
	case errors.Is(err, ErrInsecureContext):
		return InsecureContext
	case errors.Is(err, ErrMicrophoneUnavailable):
		return MicrophoneUnavailable
	case errors.Is(err, ErrRecognitionUnsupported):
		return RecognitionUnsupported
	case errors.Is(err, ErrPermissionDenied):
		return PermissionDenied
	default:
		return Available
	}
}

// Environment describes where dictation would run.
type Environment struct {
	// ServerURL is the API base URL the transcript will be sent to.
	ServerURL string

	// Device is the capture device path, e.g. /dev/snd.
	Device string

	// Command is the recognizer executable, looked up in PATH.
	Command string
}

func NewEnvironment(cfg config.Speech, serverURL string) Environment {
	device := cfg.Device
	if device == "" {
		device = config.DefaultSpeechDevice
	}

	return Environment{
		ServerURL: serverURL,
		Device:    device,
		Command:   cfg.Command,
	}
}

// CheckCapability probes env in the order a user would fix things: secure
// endpoint, capture device, then the recognizer.
func CheckCapability(env Environment) Capability {
	if !IsSecureEndpoint(env.ServerURL) {
		return InsecureContext
	}

	if c := checkDevice(env.Device); c != Available {
		return c
	}

	if strings.TrimSpace(env.Command) == "" {
		return RecognitionUnsupported
	}
	if _, err := exec.LookPath(env.Command); err != nil {
		return RecognitionUnsupported
	}

	return Available
}

func checkDevice(path string) Capability {
	if path == "" {
		return MicrophoneUnavailable
	}

	_, err := os.Stat(path)
	switch {
	case err == nil:
		return Available
	case errors.Is(err, fs.ErrPermission):
		return PermissionDenied
	default:
		return MicrophoneUnavailable
	}
}

// IsSecureEndpoint reports whether raw is an https URL or points at a
// loopback host.
func IsSecureEndpoint(raw string) bool {
	u, err := url.Parse(strings.TrimSpace(raw))
	if err != nil || u.Host == "" {
		return false
	}

	switch strings.ToLower(u.Scheme) {
	case "https":
		return true
	case "http":
		host := u.Hostname()
		if strings.EqualFold(host, "localhost") {
			return true
		}
		ip := net.ParseIP(host)
		return ip != nil && ip.IsLoopback()
	default:
		return false
	}
}

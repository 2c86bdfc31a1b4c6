package speech

import (
	"context"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/speech_mock.go -package=mock

// Microphone grants exclusive access to a capture device.
type Microphone interface {
	// Acquire returns ErrPermissionDenied or ErrMicrophoneUnavailable when
	// access cannot be granted.
	Acquire(ctx context.Context) error
	Release() error
}

// Recognizer converts captured audio into text.
type Recognizer interface {
	// Recognize blocks until ctx is done or the stream ends. emit receives
	// every interim result in delivery order; each one is the full
	// transcript so far.
	Recognize(ctx context.Context, language string, emit func(transcript string)) error
}

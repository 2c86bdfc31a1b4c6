package speech

import "errors"

var (
	ErrInsecureContext        = errors.New("media recording requires a secure context (HTTPS or localhost)")
	ErrMicrophoneUnavailable  = errors.New("no audio capture device is available")
	ErrRecognitionUnsupported = errors.New("speech recognition is not supported: no recognizer command is configured or installed")
	ErrPermissionDenied       = errors.New("microphone access was denied")
	ErrRecognition            = errors.New("speech recognition error")

	ErrSessionDisabled  = errors.New("dictation is disabled, retry to enable it again")
	ErrAlreadyRecording = errors.New("dictation is already running")
)

package speech

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/MKhiriev/voice-notes/internal/config"
	"github.com/MKhiriev/voice-notes/internal/logger"
)

// Session is one dictation control: it can be started, stopped and, after a
// capability failure, retried. Transcripts from a single recording are
// delivered from one goroutine, in order.
type Session struct {
	microphone Microphone
	recognizer Recognizer
	language   string
	check      func() Capability

	mu         sync.Mutex
	recording  bool
	disabled   error
	transcript string
	cancel     context.CancelFunc
	done       chan struct{}

	logger *logger.Logger
}

func NewSession(env Environment, language string, microphone Microphone, recognizer Recognizer, logger *logger.Logger) *Session {
	if language == "" {
		language = config.DefaultSpeechLanguage
	}

	return &Session{
		microphone: microphone,
		recognizer: recognizer,
		language:   language,
		check:      func() Capability { return CheckCapability(env) },
		logger:     logger,
	}
}

// Start acquires the microphone and begins recognition. onTranscript gets
// every interim transcript; onStop is called once when recording ends, with
// nil after Stop and the recognizer error otherwise. Neither callback may
// call Stop.
//
// A capability failure disables the session and is returned as is, so
// errors.Is works against ErrPermissionDenied and friends.
func (s *Session) Start(ctx context.Context, onTranscript func(string), onStop func(error)) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.disabled != nil {
		return fmt.Errorf("%w: %w", ErrSessionDisabled, s.disabled)
	}
	if s.recording {
		return ErrAlreadyRecording
	}

	if c := s.check(); c != Available {
		return s.disable(c.Err())
	}

	if err := s.microphone.Acquire(ctx); err != nil {
		if CapabilityOf(err) != Available {
			return s.disable(err)
		}
		return err
	}

	runCtx, cancel := context.WithCancel(ctx)
	s.recording = true
	s.transcript = ""
	s.cancel = cancel
	s.done = make(chan struct{})

	go s.run(runCtx, s.done, onTranscript, onStop)

	s.logger.Info().Str("language", s.language).Msg("dictation started")
	return nil
}

// Stop halts recognition and releases the microphone. It blocks until the
// recognizer has returned and is safe to call any number of times.
func (s *Session) Stop() {
	s.mu.Lock()
	if !s.recording {
		s.mu.Unlock()
		return
	}
	cancel, done := s.cancel, s.done
	s.mu.Unlock()

	cancel()
	<-done
}

// Retry re-enables a session disabled by a capability failure.
func (s *Session) Retry() {
	s.mu.Lock()
	s.disabled = nil
	s.mu.Unlock()
}

// Disabled returns the error that disabled the session, nil when enabled.
func (s *Session) Disabled() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.disabled
}

func (s *Session) Recording() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.recording
}

// Transcript is the latest transcript of the current or last recording.
func (s *Session) Transcript() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.transcript
}

func (s *Session) run(ctx context.Context, done chan struct{}, onTranscript func(string), onStop func(error)) {
	defer close(done)

	err := s.recognizer.Recognize(ctx, s.language, func(transcript string) {
		if ctx.Err() != nil {
			return
		}
		s.mu.Lock()
		s.transcript = transcript
		s.mu.Unlock()

		if onTranscript != nil {
			onTranscript(transcript)
		}
	})

	switch {
	case ctx.Err() != nil:
		err = nil
	case errors.Is(err, ErrRecognitionUnsupported):
	case err != nil:
		err = fmt.Errorf("%w: %w", ErrRecognition, err)
	}

	s.finish(err)
	if onStop != nil {
		onStop(err)
	}
}

func (s *Session) finish(err error) {
	if releaseErr := s.microphone.Release(); releaseErr != nil {
		s.logger.Err(releaseErr).Str("func", "*Session.finish").Msg("failed to release microphone")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.cancel()
	s.recording = false
	if errors.Is(err, ErrRecognitionUnsupported) {
		s.disabled = err
	}

	if err != nil {
		s.logger.Err(err).Str("func", "*Session.finish").Msg("dictation stopped by recognizer")
		return
	}
	s.logger.Info().Msg("dictation stopped")
}

// disable must be called with s.mu held.
func (s *Session) disable(err error) error {
	s.disabled = err
	s.logger.Warn().Err(err).Str("capability", CapabilityOf(err).String()).Msg("dictation disabled")
	return err
}

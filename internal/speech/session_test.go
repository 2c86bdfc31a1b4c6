// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package speech

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/voice-notes/internal/logger"
	"github.com/MKhiriev/voice-notes/internal/mock"
)

func newTestSession(t *testing.T) (*Session, *mock.MockMicrophone, *mock.MockRecognizer) {
	t.Helper()
	ctrl := gomock.NewController(t)
	mic := mock.NewMockMicrophone(ctrl)
	rec := mock.NewMockRecognizer(ctrl)

	s := NewSession(Environment{}, "", mic, rec, logger.Nop())
	s.check = func() Capability { return Available }
	return s, mic, rec
}

type transcriptSink struct {
	mu      sync.Mutex
	got     []string
	stopped chan error
}

func newSink() *transcriptSink {
	return &transcriptSink{stopped: make(chan error, 1)}
}

func (s *transcriptSink) onTranscript(t string) {
	s.mu.Lock()
	s.got = append(s.got, t)
	s.mu.Unlock()
}

func (s *transcriptSink) onStop(err error) { s.stopped <- err }

func (s *transcriptSink) transcripts() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.got...)
}

func (s *transcriptSink) wait(t *testing.T) error {
	t.Helper()
	select {
	case err := <-s.stopped:
		return err
	case <-time.After(2 * time.Second):
		t.Fatal("session did not stop")
		return nil
	}
}

// ─── start / stop ───────────────────────────────────────────────────────────

func TestSession_StreamsCumulativeTranscripts(t *testing.T) {
	s, mic, rec := newTestSession(t)
	sink := newSink()

	mic.EXPECT().Acquire(gomock.Any()).Return(nil)
	rec.EXPECT().Recognize(gomock.Any(), "en-US", gomock.Any()).DoAndReturn(
		func(_ context.Context, _ string, emit func(string)) error {
			emit("remind")
			emit("remind me")
			emit("remind me to call Ann")
			return nil
		})
	mic.EXPECT().Release().Return(nil)

	require.NoError(t, s.Start(context.Background(), sink.onTranscript, sink.onStop))

	assert.NoError(t, sink.wait(t))
	assert.Equal(t, []string{"remind", "remind me", "remind me to call Ann"}, sink.transcripts())
	assert.Equal(t, "remind me to call Ann", s.Transcript())
	assert.False(t, s.Recording())
}

func TestSession_StopIsIdempotent(t *testing.T) {
	s, mic, rec := newTestSession(t)
	sink := newSink()
	started := make(chan struct{})

	mic.EXPECT().Acquire(gomock.Any()).Return(nil)
	rec.EXPECT().Recognize(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, _ string, emit func(string)) error {
			emit("hello")
			close(started)
			<-ctx.Done()
			emit("dropped after stop")
			return ctx.Err()
		})
	mic.EXPECT().Release().Return(nil).Times(1)

	require.NoError(t, s.Start(context.Background(), sink.onTranscript, sink.onStop))
	<-started
	assert.True(t, s.Recording())

	s.Stop()
	s.Stop()

	assert.NoError(t, sink.wait(t))
	assert.False(t, s.Recording())
	assert.Equal(t, []string{"hello"}, sink.transcripts())
	assert.Equal(t, "hello", s.Transcript())
}

func TestSession_StopWhenIdle(t *testing.T) {
	s, _, _ := newTestSession(t)
	s.Stop()
	assert.False(t, s.Recording())
}

func TestSession_AlreadyRecording(t *testing.T) {
	s, mic, rec := newTestSession(t)
	sink := newSink()

	mic.EXPECT().Acquire(gomock.Any()).Return(nil)
	rec.EXPECT().Recognize(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, _ string, _ func(string)) error {
			<-ctx.Done()
			return nil
		})
	mic.EXPECT().Release().Return(nil)

	require.NoError(t, s.Start(context.Background(), nil, sink.onStop))
	assert.ErrorIs(t, s.Start(context.Background(), nil, nil), ErrAlreadyRecording)

	s.Stop()
	assert.NoError(t, sink.wait(t))
}

func TestSession_NewRecordingResetsTranscript(t *testing.T) {
	s, mic, rec := newTestSession(t)

	mic.EXPECT().Acquire(gomock.Any()).Return(nil).Times(2)
	mic.EXPECT().Release().Return(nil).Times(2)
	gomock.InOrder(
		rec.EXPECT().Recognize(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, _ string, emit func(string)) error {
				emit("first take")
				return nil
			}),
		rec.EXPECT().Recognize(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil),
	)

	sink := newSink()
	require.NoError(t, s.Start(context.Background(), nil, sink.onStop))
	require.NoError(t, sink.wait(t))
	assert.Equal(t, "first take", s.Transcript())

	require.NoError(t, s.Start(context.Background(), nil, sink.onStop))
	require.NoError(t, sink.wait(t))
	assert.Empty(t, s.Transcript())
}

// ─── failures ───────────────────────────────────────────────────────────────

func TestSession_RecognizerErrorStopsSession(t *testing.T) {
	s, mic, rec := newTestSession(t)
	sink := newSink()
	boom := errors.New("network")

	mic.EXPECT().Acquire(gomock.Any()).Return(nil)
	rec.EXPECT().Recognize(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, _ string, emit func(string)) error {
			emit("half a sen")
			return boom
		})
	mic.EXPECT().Release().Return(nil)

	require.NoError(t, s.Start(context.Background(), sink.onTranscript, sink.onStop))

	err := sink.wait(t)
	require.ErrorIs(t, err, ErrRecognition)
	require.ErrorIs(t, err, boom)
	assert.False(t, s.Recording())
	assert.NoError(t, s.Disabled(), "a recognizer error does not disable dictation")
	assert.Equal(t, "half a sen", s.Transcript())
}

func TestSession_PermissionDeniedDisablesUntilRetry(t *testing.T) {
	s, mic, rec := newTestSession(t)

	mic.EXPECT().Acquire(gomock.Any()).Return(fmt.Errorf("%w: /dev/snd", ErrPermissionDenied))

	err := s.Start(context.Background(), nil, nil)
	require.ErrorIs(t, err, ErrPermissionDenied)
	assert.Equal(t, PermissionDenied, CapabilityOf(s.Disabled()))

	// disabled: the microphone is not asked again
	err = s.Start(context.Background(), nil, nil)
	require.ErrorIs(t, err, ErrSessionDisabled)
	require.ErrorIs(t, err, ErrPermissionDenied)

	s.Retry()
	require.NoError(t, s.Disabled())

	sink := newSink()
	mic.EXPECT().Acquire(gomock.Any()).Return(nil)
	rec.EXPECT().Recognize(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
	mic.EXPECT().Release().Return(nil)

	require.NoError(t, s.Start(context.Background(), nil, sink.onStop))
	assert.NoError(t, sink.wait(t))
}

func TestSession_CapabilityCheckDisables(t *testing.T) {
	s, _, _ := newTestSession(t)
	s.check = func() Capability { return InsecureContext }

	err := s.Start(context.Background(), nil, nil)
	require.ErrorIs(t, err, ErrInsecureContext)
	assert.ErrorIs(t, s.Disabled(), ErrInsecureContext)
}

func TestSession_TransientAcquireErrorDoesNotDisable(t *testing.T) {
	s, mic, _ := newTestSession(t)

	mic.EXPECT().Acquire(gomock.Any()).Return(context.DeadlineExceeded)

	err := s.Start(context.Background(), nil, nil)
	require.ErrorIs(t, err, context.DeadlineExceeded)
	assert.NoError(t, s.Disabled())
	assert.False(t, s.Recording())
}

func TestSession_UnsupportedRecognizerDisables(t *testing.T) {
	s, mic, rec := newTestSession(t)
	sink := newSink()

	mic.EXPECT().Acquire(gomock.Any()).Return(nil)
	rec.EXPECT().Recognize(gomock.Any(), gomock.Any(), gomock.Any()).Return(ErrRecognitionUnsupported)
	mic.EXPECT().Release().Return(nil)

	require.NoError(t, s.Start(context.Background(), nil, sink.onStop))

	require.ErrorIs(t, sink.wait(t), ErrRecognitionUnsupported)
	assert.Equal(t, RecognitionUnsupported, CapabilityOf(s.Disabled()))
}

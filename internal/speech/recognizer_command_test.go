package speech

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/voice-notes/internal/config"
)

func shRecognizer(script string) *CommandRecognizer {
	return NewCommandRecognizer(config.Speech{Command: "sh", Args: []string{"-c", script}})
}

func TestCommandRecognizer_EmitsEveryLineInOrder(t *testing.T) {
	r := shRecognizer(`printf 'buy\n\nbuy milk\r\nbuy milk tomorrow\n'`)

	var got []string
	err := r.Recognize(context.Background(), "en-US", func(s string) { got = append(got, s) })

	require.NoError(t, err)
	assert.Equal(t, []string{"buy", "buy milk", "buy milk tomorrow"}, got)
}

func TestCommandRecognizer_PassesLanguage(t *testing.T) {
	r := shRecognizer(`echo "$SPEECH_LANGUAGE {language}"`)

	var got []string
	err := r.Recognize(context.Background(), "de-DE", func(s string) { got = append(got, s) })

	require.NoError(t, err)
	assert.Equal(t, []string{"de-DE de-DE"}, got)
}

func TestCommandRecognizer_FailureCarriesStderr(t *testing.T) {
	r := shRecognizer(`echo partial; echo "loading model" >&2; echo "no-speech" >&2; exit 3`)

	var got []string
	err := r.Recognize(context.Background(), "en-US", func(s string) { got = append(got, s) })

	require.Error(t, err)
	assert.Contains(t, err.Error(), "no-speech")
	assert.NotContains(t, err.Error(), "loading model")
	assert.Equal(t, []string{"partial"}, got)
}

func TestCommandRecognizer_Unsupported(t *testing.T) {
	t.Run("empty command", func(t *testing.T) {
		r := NewCommandRecognizer(config.Speech{})
		err := r.Recognize(context.Background(), "en-US", func(string) {})
		require.ErrorIs(t, err, ErrRecognitionUnsupported)
	})

	t.Run("not installed", func(t *testing.T) {
		r := NewCommandRecognizer(config.Speech{Command: "voice-notes-no-such-recognizer"})
		err := r.Recognize(context.Background(), "en-US", func(string) {})
		require.ErrorIs(t, err, ErrRecognitionUnsupported)
	})
}

func TestCommandRecognizer_CancelIsNotAnError(t *testing.T) {
	r := shRecognizer(`echo hello; exec sleep 10`)

	ctx, cancel := context.WithCancel(context.Background())
	first := make(chan struct{})
	done := make(chan error, 1)

	go func() {
		done <- r.Recognize(ctx, "en-US", func(string) { close(first) })
	}()

	select {
	case <-first:
	case <-time.After(5 * time.Second):
		t.Fatal("no transcript before cancel")
	}
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("recognizer did not stop")
	}
}

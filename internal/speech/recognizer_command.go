package speech

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"
	"time"

	"github.com/MKhiriev/voice-notes/internal/config"
)

// languagePlaceholder in an argument is replaced with the session language.
const languagePlaceholder = "{language}"

const languageEnv = "SPEECH_LANGUAGE"

// CommandRecognizer runs an external speech-to-text program. The program
// must print the cumulative transcript, one line per interim result, and
// exit non-zero on failure.
type CommandRecognizer struct {
	command string
	args    []string
}

func NewCommandRecognizer(cfg config.Speech) *CommandRecognizer {
	return &CommandRecognizer{
		command: cfg.Command,
		args:    cfg.Args,
	}
}

func (r *CommandRecognizer) Recognize(ctx context.Context, language string, emit func(transcript string)) error {
	if strings.TrimSpace(r.command) == "" {
		return ErrRecognitionUnsupported
	}

	args := make([]string, len(r.args))
	for i, a := range r.args {
		args[i] = strings.ReplaceAll(a, languagePlaceholder, language)
	}

	cmd := exec.CommandContext(ctx, r.command, args...)
	cmd.Env = append(os.Environ(), languageEnv+"="+language)
	cmd.WaitDelay = time.Second

	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return err
	}
	if err = cmd.Start(); err != nil {
		if errors.Is(err, exec.ErrNotFound) {
			return fmt.Errorf("%w: %w", ErrRecognitionUnsupported, err)
		}
		return err
	}

	scanner := bufio.NewScanner(stdout)
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		emit(line)
	}
	scanErr := scanner.Err()

	err = cmd.Wait()
	if ctx.Err() != nil {
		return nil
	}
	if err != nil {
		if msg := lastLine(stderr.String()); msg != "" {
			return fmt.Errorf("%w: %s", err, msg)
		}
		return err
	}
	return scanErr
}

func lastLine(s string) string {
	s = strings.TrimSpace(s)
	if i := strings.LastIndexByte(s, '\n'); i >= 0 {
		return strings.TrimSpace(s[i+1:])
	}
	return s
}

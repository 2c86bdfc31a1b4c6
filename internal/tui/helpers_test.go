package tui

import (
	"context"
	"sync"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/voice-notes/models"
)

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func keyType(k tea.KeyType) tea.KeyMsg {
	return tea.KeyMsg{Type: k}
}

// typeText sends s one rune at a time, the way a terminal does.
func typeText(update func(tea.Msg) tea.Cmd, s string) {
	for _, r := range s {
		update(keyRunes(string(r)))
	}
}

// run executes cmd and flattens batches. nil commands and nil messages are
// dropped.
func run(t *testing.T, cmd tea.Cmd) []tea.Msg {
	t.Helper()
	if cmd == nil {
		return nil
	}

	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		var out []tea.Msg
		for _, c := range batch {
			out = append(out, run(t, c)...)
		}
		return out
	}
	if msg == nil {
		return nil
	}
	return []tea.Msg{msg}
}

// runOne executes cmd and returns the only message of type T it produced.
func runOne[T any](t *testing.T, cmd tea.Cmd) T {
	t.Helper()
	var found []T
	for _, msg := range run(t, cmd) {
		if m, ok := msg.(T); ok {
			found = append(found, m)
		}
	}
	if len(found) != 1 {
		t.Fatalf("want exactly one %T, got %d", *new(T), len(found))
	}
	return found[0]
}

// ─── fakes ──────────────────────────────────────────────────────────────────

type fakeAuth struct {
	mu          sync.Mutex
	credentials []models.Credentials
	resp        models.AuthResponse
	err         error
	version     models.AppBuildInfo
	versionErr  error
}

func (f *fakeAuth) record(c models.Credentials) (models.AuthResponse, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.credentials = append(f.credentials, c)
	return f.resp, f.err
}

func (f *fakeAuth) Register(_ context.Context, c models.Credentials) (models.AuthResponse, error) {
	return f.record(c)
}

func (f *fakeAuth) Login(_ context.Context, c models.Credentials) (models.AuthResponse, error) {
	return f.record(c)
}

func (f *fakeAuth) ServerVersion(context.Context) (models.AppBuildInfo, error) {
	return f.version, f.versionErr
}

type fakeDictation struct {
	mu           sync.Mutex
	startErr     error
	disabled     error
	recording    bool
	retries      int
	stops        int
	onTranscript func(string)
	onStop       func(error)
}

func (f *fakeDictation) Start(_ context.Context, onTranscript func(string), onStop func(error)) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.startErr != nil {
		f.disabled = f.startErr
		return f.startErr
	}
	f.recording = true
	f.onTranscript = onTranscript
	f.onStop = onStop
	return nil
}

func (f *fakeDictation) Stop() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.stops++
	if !f.recording {
		return
	}
	f.recording = false
	f.onStop(nil)
}

func (f *fakeDictation) Retry() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.retries++
	f.disabled = nil
}

func (f *fakeDictation) Disabled() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.disabled
}

func (f *fakeDictation) Recording() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.recording
}

// fail ends the recording the way a recognizer error does.
func (f *fakeDictation) fail(err error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.recording = false
	f.onStop(err)
}

package speech

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"sync"
)

// DeviceMicrophone holds an open handle on a capture device path for as long
// as it is acquired. It does not read audio itself; the recognizer command
// captures from the same device.
type DeviceMicrophone struct {
	path string

	mu     sync.Mutex
	handle *os.File
}

func NewDeviceMicrophone(path string) *DeviceMicrophone {
	return &DeviceMicrophone{path: path}
}

func (m *DeviceMicrophone) Acquire(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if m.handle != nil {
		return nil
	}

	f, err := os.Open(m.path)
	switch {
	case err == nil:
		m.handle = f
		return nil
	case errors.Is(err, fs.ErrPermission):
		return fmt.Errorf("%w: %s", ErrPermissionDenied, m.path)
	default:
		return fmt.Errorf("%w: %w", ErrMicrophoneUnavailable, err)
	}
}

// Release is a no-op when the device is not held.
func (m *DeviceMicrophone) Release() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.handle == nil {
		return nil
	}
	err := m.handle.Close()
	m.handle = nil
	return err
}

// Held reports whether the device is currently acquired.
func (m *DeviceMicrophone) Held() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.handle != nil
}

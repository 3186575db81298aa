package source

import (
	"bytes"
	"context"
	"io"
	"os"
	"sync"
)

// ErrNotFound is returned when a named input does not exist.
//
// Implementations should return an error that satisfies
// `errors.Is(err, ErrNotFound)`. The default maps to `os.ErrNotExist`.
var ErrNotFound = os.ErrNotExist

// Opener opens named inputs for reading. Implementations must return handles
// that yield plain (decompressed) text.
type Opener interface {
	// Open opens the named input for reading.
	Open(ctx context.Context, name string) (io.ReadCloser, error)
}

// Memory is an in-memory Opener implementation for testing.
// Thread-safe for concurrent reads and writes.
type Memory struct {
	mu    sync.RWMutex
	files map[string][]byte
}

// NewMemory creates a new in-memory source.
func NewMemory() *Memory {
	return &Memory{files: make(map[string][]byte)}
}

// Put stores content under name, replacing any previous content.
func (m *Memory) Put(name string, content []byte) {
	m.mu.Lock()
	defer m.mu.Unlock()

	copied := make([]byte, len(content))
	copy(copied, content)
	m.files[name] = copied
}

// Open opens a stored input for reading.
func (m *Memory) Open(_ context.Context, name string) (io.ReadCloser, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	data, ok := m.files[name]
	if !ok {
		return nil, ErrNotFound
	}

	// Copy to prevent mutation while a reader is open.
	copied := make([]byte, len(data))
	copy(copied, data)

	return io.NopCloser(bytes.NewReader(copied)), nil
}

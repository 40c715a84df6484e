// pkg/storeclient/mirror.go
package storeclient

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// Mirror is a key→JSON store backed by one file per key. Containers
// read it once at construction and write through synchronously on every
// mutation, so a restarted process picks up exactly what the last
// mutation left behind.
type Mirror struct {
	mu  sync.Mutex
	dir string
}

func NewMirror(dir string) (*Mirror, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create mirror directory: %w", err)
	}
	return &Mirror{dir: dir}, nil
}

func (m *Mirror) path(key string) string {
	return filepath.Join(m.dir, key+".json")
}

// Load reads the value stored under key into v. A missing or corrupt
// value reports absent rather than failing: persisted state is a cache,
// never a source of errors.
func (m *Mirror) Load(key string, v interface{}) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	data, err := os.ReadFile(m.path(key))
	if err != nil {
		return false
	}
	if err := json.Unmarshal(data, v); err != nil {
		return false
	}
	return true
}

func (m *Mirror) Store(key string, v interface{}) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", key, err)
	}
	if err := os.WriteFile(m.path(key), data, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", key, err)
	}
	return nil
}

// Delete removes the key entirely. Deleting an absent key is not an
// error.
func (m *Mirror) Delete(key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	err := os.Remove(m.path(key))
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("failed to delete %s: %w", key, err)
	}
	return nil
}

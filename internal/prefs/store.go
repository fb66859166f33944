// Package prefs persists small user preferences, currently only the theme.
package prefs

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	perrors "github.com/zhubert/replywriter/internal/errors"
)

// KV is a string key-value store.
type KV interface {
	// Get returns the value for key and whether it was present.
	Get(key string) (string, bool, error)
	Set(key, value string) error
}

// FileStore keeps preferences as a flat JSON object on disk. Every access
// takes a lock on a sibling ".lock" file so several replywriter processes can
// share one preferences file.
type FileStore struct {
	path        string
	lockTimeout time.Duration
}

// NewFileStore returns a store backed by the JSON file at path. The file and
// its directory are created on first write.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path, lockTimeout: DefaultLockTimeout}
}

// WithLockTimeout overrides DefaultLockTimeout.
func (s *FileStore) WithLockTimeout(d time.Duration) *FileStore {
	s.lockTimeout = d
	return s
}

// Path returns the backing file path.
func (s *FileStore) Path() string {
	return s.path
}

// Get implements KV.
func (s *FileStore) Get(key string) (string, bool, error) {
	var (
		value string
		ok    bool
	)
	// Nothing was ever saved; the lock file could not be created either
	if _, err := os.Stat(filepath.Dir(s.path)); errors.Is(err, os.ErrNotExist) {
		return "", false, nil
	}
	err := withReadLock(s.path, s.lockTimeout, func() error {
		values, err := s.load()
		if err != nil {
			return err
		}
		value, ok = values[key]
		return nil
	})
	if err != nil {
		return "", false, perrors.PrefsReadFailed(s.path, err)
	}
	return value, ok, nil
}

// Set implements KV. Other keys already in the file are preserved.
func (s *FileStore) Set(key, value string) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return perrors.PrefsWriteFailed(s.path, err)
	}
	err := withLock(s.path, s.lockTimeout, func() error {
		values, err := s.load()
		if err != nil {
			return err
		}
		values[key] = value
		return s.save(values)
	})
	if err != nil {
		return perrors.PrefsWriteFailed(s.path, err)
	}
	return nil
}

// load reads the file; callers must hold the lock. A missing file is empty.
func (s *FileStore) load() (map[string]string, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return map[string]string{}, nil
	}
	if err != nil {
		return nil, err
	}
	values := map[string]string{}
	if len(data) == 0 {
		return values, nil
	}
	if err := json.Unmarshal(data, &values); err != nil {
		return nil, fmt.Errorf("decode %s: %w", s.path, err)
	}
	return values, nil
}

// save writes to a temp file then renames it into place; callers must hold the lock.
func (s *FileStore) save(values map[string]string) error {
	data, err := json.MarshalIndent(values, "", "  ")
	if err != nil {
		return err
	}
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, append(data, '\n'), 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, s.path)
}

// MemoryStore is an in-process KV, used in tests and when no preferences
// file is wanted.
type MemoryStore struct {
	mu     sync.RWMutex
	values map[string]string
	// SetErr, when non-nil, is returned by every Set.
	SetErr error
}

// NewMemoryStore returns an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{values: map[string]string{}}
}

// Get implements KV.
func (m *MemoryStore) Get(key string) (string, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.values[key]
	return v, ok, nil
}

// Set implements KV.
func (m *MemoryStore) Set(key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.SetErr != nil {
		return m.SetErr
	}
	m.values[key] = value
	return nil
}

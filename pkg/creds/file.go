package creds

import (
	"context"
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// FileStore implements Store using a single JSON file. It is the
// fallback backend for environments without a usable keyring (headless
// Linux, CI). The file is written with 0600 permissions.
type FileStore struct {
	path string
	now  func() time.Time
	mu   sync.Mutex
}

// NewFileStore creates a FileStore backed by the given file path. The
// parent directory is created on first write.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path, now: time.Now}
}

// DefaultCredentialsPath returns the standard location of the
// credentials file under the user config dir.
func DefaultCredentialsPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "fintrack", "credentials.json"), nil
}

func (s *FileStore) load() (map[string]json.RawMessage, error) {
	raw, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return map[string]json.RawMessage{}, nil
		}
		return nil, err
	}
	entries := map[string]json.RawMessage{}
	if err := json.Unmarshal(raw, &entries); err != nil {
		// Corrupt file; start over rather than wedging every credential op.
		return map[string]json.RawMessage{}, nil
	}
	return entries, nil
}

func (s *FileStore) save(entries map[string]json.RawMessage) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return err
	}
	raw, err := json.Marshal(entries)
	if err != nil {
		return err
	}
	return os.WriteFile(s.path, raw, 0o600)
}

// Set stores a value in the credentials file.
func (s *FileStore) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	entries, err := s.load()
	if err != nil {
		return err
	}
	sealed, err := sealEnvelope(value, ttl, s.now())
	if err != nil {
		return err
	}
	entries[key] = sealed
	return s.save(entries)
}

// Get retrieves a value from the credentials file.
func (s *FileStore) Get(ctx context.Context, key string) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entries, err := s.load()
	if err != nil {
		return nil, err
	}
	raw, ok := entries[key]
	if !ok {
		return nil, ErrNotFound
	}
	value, err := openEnvelope(raw, s.now())
	if errors.Is(err, ErrNotFound) {
		delete(entries, key)
		_ = s.save(entries)
	}
	return value, err
}

// Delete removes a key from the credentials file.
func (s *FileStore) Delete(ctx context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	entries, err := s.load()
	if err != nil {
		return err
	}
	if _, ok := entries[key]; !ok {
		return nil
	}
	delete(entries, key)
	return s.save(entries)
}

// Close is a no-op; every operation opens and closes the file.
func (s *FileStore) Close() error { return nil }

// Ensure FileStore implements Store.
var _ Store = (*FileStore)(nil)

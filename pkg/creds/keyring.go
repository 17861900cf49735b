package creds

import (
	"context"
	"errors"
	"time"

	"github.com/zalando/go-keyring"
)

// KeyringStore implements Store using the OS keyring (Keychain on macOS,
// Secret Service on Linux, Credential Manager on Windows).
type KeyringStore struct {
	service string
	now     func() time.Time
}

// NewKeyringStore creates a KeyringStore that files entries under the
// given keyring service name.
func NewKeyringStore(service string) *KeyringStore {
	return &KeyringStore{service: service, now: time.Now}
}

// Set stores a value in the keyring. TTL is recorded in the envelope and
// enforced on read, since keyrings have no native expiry.
func (s *KeyringStore) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	sealed, err := sealEnvelope(value, ttl, s.now())
	if err != nil {
		return err
	}
	return keyring.Set(s.service, key, string(sealed))
}

// Get retrieves a value from the keyring.
func (s *KeyringStore) Get(ctx context.Context, key string) ([]byte, error) {
	raw, err := keyring.Get(s.service, key)
	if err != nil {
		if errors.Is(err, keyring.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	value, err := openEnvelope([]byte(raw), s.now())
	if errors.Is(err, ErrNotFound) {
		// Expired; drop the stale entry so the next read is clean.
		_ = keyring.Delete(s.service, key)
	}
	return value, err
}

// Delete removes a key from the keyring.
func (s *KeyringStore) Delete(ctx context.Context, key string) error {
	err := keyring.Delete(s.service, key)
	if errors.Is(err, keyring.ErrNotFound) {
		return nil
	}
	return err
}

// Close is a no-op; the keyring holds no connection.
func (s *KeyringStore) Close() error { return nil }

// Ensure KeyringStore implements Store.
var _ Store = (*KeyringStore)(nil)

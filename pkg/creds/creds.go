// Package creds provides a credential storage abstraction for the token
// pair. This allows swapping backends (OS keyring, config-dir file,
// in-memory, etc.) and composing them into a redundant chain without
// changing the SDK implementation.
package creds

import (
	"context"
	"encoding/json"
	"time"
)

// Store defines a minimal key-value interface for credential storage.
// Keys are strings, values are byte slices. All operations support TTL.
type Store interface {
	// Set stores a value with the given key and TTL.
	// If TTL is 0, the entry does not expire.
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error

	// Get retrieves a value by key. Returns ErrNotFound if the key doesn't
	// exist or its TTL has elapsed.
	Get(ctx context.Context, key string) ([]byte, error)

	// Delete removes a key. Returns nil if the key doesn't exist.
	Delete(ctx context.Context, key string) error

	// Close releases any resources held by the store.
	Close() error
}

// envelope wraps a stored value with its expiry so TTLs survive backends
// that have no native expiration (keyring, plain files).
type envelope struct {
	Value     []byte     `json:"value"`
	ExpiresAt *time.Time `json:"expires_at,omitempty"`
}

func sealEnvelope(value []byte, ttl time.Duration, now time.Time) ([]byte, error) {
	env := envelope{Value: value}
	if ttl > 0 {
		exp := now.Add(ttl)
		env.ExpiresAt = &exp
	}
	return json.Marshal(env)
}

// openEnvelope unmarshals a stored envelope. Expired entries report
// ErrNotFound so callers treat them exactly like absent ones.
func openEnvelope(raw []byte, now time.Time) ([]byte, error) {
	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		// Not an envelope; likely written by an older layout. Treat the raw
		// bytes as the value rather than failing the read.
		return raw, nil
	}
	if env.ExpiresAt != nil && now.After(*env.ExpiresAt) {
		return nil, ErrNotFound
	}
	return env.Value, nil
}

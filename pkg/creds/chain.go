package creds

import (
	"context"
	"errors"
	"time"
)

// Chain composes multiple stores into one redundant store. Reads return
// the first hit in backend order; writes go to every backend; deletes
// remove the key from every backend. Storage is best effort: a write
// succeeds as long as at least one backend accepts it, so a locked
// keyring degrades to the file fallback instead of failing the caller.
type Chain struct {
	backends []Store
}

// NewChain creates a Chain over the given backends, ordered from primary
// to last fallback.
func NewChain(backends ...Store) *Chain {
	return &Chain{backends: backends}
}

// Set writes the value to every backend.
func (c *Chain) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	var errs []error
	stored := false
	for _, b := range c.backends {
		if err := b.Set(ctx, key, value, ttl); err != nil {
			errs = append(errs, err)
			continue
		}
		stored = true
	}
	if !stored {
		return errors.Join(errs...)
	}
	return nil
}

// Get returns the value from the first backend that holds the key.
func (c *Chain) Get(ctx context.Context, key string) ([]byte, error) {
	for _, b := range c.backends {
		value, err := b.Get(ctx, key)
		if err == nil {
			return value, nil
		}
		// Missing or unreadable; fall through to the next backend.
	}
	return nil, ErrNotFound
}

// Delete removes the key from every backend.
func (c *Chain) Delete(ctx context.Context, key string) error {
	var errs []error
	for _, b := range c.backends {
		if err := b.Delete(ctx, key); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// Close closes every backend.
func (c *Chain) Close() error {
	var errs []error
	for _, b := range c.backends {
		if err := b.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// Ensure Chain implements Store.
var _ Store = (*Chain)(nil)

package fsdk

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/fintracklabs/fintrack/pkg/creds"
)

const (
	// KeyringService is the service name used for OS keyring entries.
	KeyringService = "fintrack"

	accessTokenKey  = "fintrack_access_token"
	refreshTokenKey = "fintrack_refresh_token"

	// AccessTokenTTL mirrors the backend's access token lifetime.
	AccessTokenTTL = time.Hour
	// RefreshTokenTTL mirrors the backend's refresh token lifetime.
	RefreshTokenTTL = 7 * 24 * time.Hour
)

// TokenStore persists the session token pair. Entries are scoped by
// backend base URL so switching instances does not leak sessions.
type TokenStore struct {
	store creds.Store
	scope string
}

// NewTokenStore wraps the given credential store. The baseURL becomes
// part of every key so each backend gets its own pair.
func NewTokenStore(store creds.Store, baseURL string) *TokenStore {
	return &TokenStore{store: store, scope: normalizeScope(baseURL)}
}

// DefaultTokenStore builds the standard two-backend store: OS keyring
// first, file fallback for headless machines without a keyring daemon.
func DefaultTokenStore(baseURL string) (*TokenStore, error) {
	path, err := creds.DefaultCredentialsPath()
	if err != nil {
		return nil, fmt.Errorf("resolving credentials path: %w", err)
	}
	chain := creds.NewChain(
		creds.NewKeyringStore(KeyringService),
		creds.NewFileStore(path),
	)
	return NewTokenStore(chain, baseURL), nil
}

// AccessToken returns the stored access token, or "" if none is stored.
func (t *TokenStore) AccessToken(ctx context.Context) (string, error) {
	return t.get(ctx, accessTokenKey)
}

// RefreshToken returns the stored refresh token, or "" if none is stored.
func (t *TokenStore) RefreshToken(ctx context.Context) (string, error) {
	return t.get(ctx, refreshTokenKey)
}

// Tokens loads the full pair. A missing entry comes back as "".
func (t *TokenStore) Tokens(ctx context.Context) (access, refresh string, err error) {
	access, err = t.AccessToken(ctx)
	if err != nil {
		return "", "", err
	}
	refresh, err = t.RefreshToken(ctx)
	if err != nil {
		return "", "", err
	}
	return access, refresh, nil
}

// SetTokens stores a new pair, replacing whatever was there before.
func (t *TokenStore) SetTokens(ctx context.Context, access, refresh string) error {
	if err := t.store.Set(ctx, t.key(accessTokenKey), []byte(access), AccessTokenTTL); err != nil {
		return fmt.Errorf("storing access token: %w", err)
	}
	if err := t.store.Set(ctx, t.key(refreshTokenKey), []byte(refresh), RefreshTokenTTL); err != nil {
		return fmt.Errorf("storing refresh token: %w", err)
	}
	return nil
}

// Clear removes both tokens. Missing entries are not an error.
func (t *TokenStore) Clear(ctx context.Context) error {
	var errs []error
	for _, name := range []string{accessTokenKey, refreshTokenKey} {
		if err := t.store.Delete(ctx, t.key(name)); err != nil && !errors.Is(err, creds.ErrNotFound) {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// Close releases the underlying store.
func (t *TokenStore) Close() error {
	return t.store.Close()
}

func (t *TokenStore) get(ctx context.Context, name string) (string, error) {
	value, err := t.store.Get(ctx, t.key(name))
	if errors.Is(err, creds.ErrNotFound) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return string(value), nil
}

func (t *TokenStore) key(name string) string {
	return name + "@" + t.scope
}

// normalizeScope turns a base URL into a stable key suffix. Scheme and
// port stay in so http://localhost:8000 and https://app.example.com
// never collide.
func normalizeScope(baseURL string) string {
	s := strings.ToLower(strings.TrimRight(baseURL, "/"))
	replacer := strings.NewReplacer("://", "_", "/", "_", ":", "_")
	return replacer.Replace(s)
}

package fsdk

import (
	"context"

	"github.com/fintracklabs/fintrack/pkg/fsdk/ferr"
)

// CurrentUser fetches the authenticated user's profile.
func (s *Sdk) CurrentUser(ctx context.Context) (*User, error) {
	var user User
	if err := s.get(ctx, mePath, nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// Bootstrap restores the session at startup. With no stored tokens it
// returns (nil, nil) without touching the network. Otherwise it fetches
// the current user, letting the usual refresh-and-retry run if the
// access token has gone stale. A pair the backend no longer accepts is
// purged and reported as no session; other failures propagate.
func (s *Sdk) Bootstrap(ctx context.Context) (*User, error) {
	access, refresh := s.currentTokens()
	if access == "" && refresh == "" {
		return nil, nil
	}

	user, err := s.CurrentUser(ctx)
	if err != nil {
		if ferr.IsCode(err, ferr.CodeSessionExpired) || ferr.IsCode(err, ferr.CodeUnauthorized) {
			s.clearSession(ctx)
			return nil, nil
		}
		return nil, err
	}
	return user, nil
}

package fsdk

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// SessionClaims is the subset of the access token payload the client
// cares about. The token is parsed without signature verification;
// the backend is the only party that validates signatures.
type SessionClaims struct {
	Subject   string
	Email     string
	Role      string
	IssuedAt  time.Time
	ExpiresAt time.Time
}

// ParseSessionClaims decodes the claims of a JWT access token without
// verifying its signature.
func ParseSessionClaims(token string) (*SessionClaims, error) {
	parser := jwt.NewParser()
	claims := jwt.MapClaims{}
	if _, _, err := parser.ParseUnverified(token, claims); err != nil {
		return nil, fmt.Errorf("parsing access token: %w", err)
	}

	sc := &SessionClaims{}
	if sub, err := claims.GetSubject(); err == nil {
		sc.Subject = sub
	}
	if email, ok := claims["email"].(string); ok {
		sc.Email = email
	}
	if role, ok := claims["role"].(string); ok {
		sc.Role = role
	}
	if iat, err := claims.GetIssuedAt(); err == nil && iat != nil {
		sc.IssuedAt = iat.Time
	}
	if exp, err := claims.GetExpirationTime(); err == nil && exp != nil {
		sc.ExpiresAt = exp.Time
	}
	return sc, nil
}

// TokenExpired reports whether the token's exp claim is within skew of
// now. Tokens without an exp claim are treated as expired so a refresh
// gets a chance to replace them.
func TokenExpired(token string, skew time.Duration) bool {
	sc, err := ParseSessionClaims(token)
	if err != nil {
		return true
	}
	if sc.ExpiresAt.IsZero() {
		return true
	}
	return time.Now().Add(skew).After(sc.ExpiresAt)
}

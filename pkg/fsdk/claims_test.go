package fsdk

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func signedToken(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte("test-secret"))
	if err != nil {
		t.Fatalf("failed to sign token: %v", err)
	}
	return signed
}

func TestParseSessionClaims(t *testing.T) {
	exp := time.Now().Add(time.Hour).Truncate(time.Second)
	iat := time.Now().Truncate(time.Second)
	tokenStr := signedToken(t, jwt.MapClaims{
		"sub":   "42",
		"email": "owner@example.com",
		"role":  "admin",
		"iat":   float64(iat.Unix()),
		"exp":   float64(exp.Unix()),
	})

	sc, err := ParseSessionClaims(tokenStr)
	if err != nil {
		t.Fatalf("ParseSessionClaims error: %v", err)
	}
	if sc.Subject != "42" {
		t.Errorf("expected sub 42, got %s", sc.Subject)
	}
	if sc.Email != "owner@example.com" || sc.Role != "admin" {
		t.Errorf("unexpected identity fields: %+v", sc)
	}
	if !sc.ExpiresAt.Equal(exp) {
		t.Errorf("expected exp %v, got %v", exp, sc.ExpiresAt)
	}
	if !sc.IssuedAt.Equal(iat) {
		t.Errorf("expected iat %v, got %v", iat, sc.IssuedAt)
	}
}

func TestParseSessionClaims_Garbage(t *testing.T) {
	if _, err := ParseSessionClaims("not-a-token"); err == nil {
		t.Fatal("expected an error for a malformed token")
	}
}

func TestTokenExpired(t *testing.T) {
	future := signedToken(t, jwt.MapClaims{
		"sub": "1",
		"exp": float64(time.Now().Add(time.Hour).Unix()),
	})
	past := signedToken(t, jwt.MapClaims{
		"sub": "1",
		"exp": float64(time.Now().Add(-time.Minute).Unix()),
	})
	noExp := signedToken(t, jwt.MapClaims{"sub": "1"})

	if TokenExpired(future, 30*time.Second) {
		t.Error("expected a token valid for an hour to not be expired")
	}
	if !TokenExpired(past, 30*time.Second) {
		t.Error("expected a past-exp token to be expired")
	}
	if !TokenExpired(noExp, 0) {
		t.Error("expected a token without exp to count as expired")
	}
	if !TokenExpired("garbage", 0) {
		t.Error("expected an unparseable token to count as expired")
	}
	// Skew pushes a token expiring in 10s over the line.
	soon := signedToken(t, jwt.MapClaims{
		"sub": "1",
		"exp": float64(time.Now().Add(10 * time.Second).Unix()),
	})
	if !TokenExpired(soon, 30*time.Second) {
		t.Error("expected skew to mark a nearly-expired token as expired")
	}
}

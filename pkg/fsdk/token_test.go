package fsdk

import (
	"context"
	"testing"

	"github.com/fintracklabs/fintrack/pkg/creds"
)

func TestTokenStore_RoundTrip(t *testing.T) {
	ctx := context.Background()
	ts := NewTokenStore(creds.NewMemoryStore(), "http://localhost:8000")

	access, refresh, err := ts.Tokens(ctx)
	if err != nil {
		t.Fatalf("Tokens failed: %v", err)
	}
	if access != "" || refresh != "" {
		t.Fatalf("Expected empty store, got %q / %q", access, refresh)
	}

	if err := ts.SetTokens(ctx, "a1", "r1"); err != nil {
		t.Fatalf("SetTokens failed: %v", err)
	}
	access, refresh, _ = ts.Tokens(ctx)
	if access != "a1" || refresh != "r1" {
		t.Errorf("Expected a1/r1, got %q / %q", access, refresh)
	}

	// Overwrite replaces the pair.
	if err := ts.SetTokens(ctx, "a2", "r2"); err != nil {
		t.Fatalf("SetTokens failed: %v", err)
	}
	access, refresh, _ = ts.Tokens(ctx)
	if access != "a2" || refresh != "r2" {
		t.Errorf("Expected a2/r2, got %q / %q", access, refresh)
	}

	if err := ts.Clear(ctx); err != nil {
		t.Fatalf("Clear failed: %v", err)
	}
	access, refresh, _ = ts.Tokens(ctx)
	if access != "" || refresh != "" {
		t.Errorf("Expected cleared store, got %q / %q", access, refresh)
	}

	// Clearing an already-empty store is fine.
	if err := ts.Clear(ctx); err != nil {
		t.Errorf("Clear on empty store failed: %v", err)
	}
}

func TestTokenStore_ScopedByBaseURL(t *testing.T) {
	ctx := context.Background()
	backend := creds.NewMemoryStore()

	prod := NewTokenStore(backend, "https://app.example.com")
	local := NewTokenStore(backend, "http://localhost:8000")

	if err := prod.SetTokens(ctx, "prod-access", "prod-refresh"); err != nil {
		t.Fatalf("SetTokens failed: %v", err)
	}

	access, _, _ := local.Tokens(ctx)
	if access != "" {
		t.Errorf("Expected localhost scope empty, got %q", access)
	}

	// Trailing slash resolves to the same scope.
	slashed := NewTokenStore(backend, "https://app.example.com/")
	access, refresh, _ := slashed.Tokens(ctx)
	if access != "prod-access" || refresh != "prod-refresh" {
		t.Errorf("Expected trailing slash to share the scope, got %q / %q", access, refresh)
	}
}

func TestNormalizeScope(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"http://localhost:8000", "http_localhost_8000"},
		{"http://localhost:8000/", "http_localhost_8000"},
		{"HTTPS://App.Example.Com", "https_app.example.com"},
		{"https://api.example.com/v2", "https_api.example.com_v2"},
	}
	for _, tt := range tests {
		if got := normalizeScope(tt.in); got != tt.want {
			t.Errorf("normalizeScope(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

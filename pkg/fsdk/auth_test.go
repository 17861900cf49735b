package fsdk

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/fintracklabs/fintrack/pkg/fsdk/ferr"
)

func TestLogin_StoresPair(t *testing.T) {
	var gotAuth, gotEmail string
	mux := http.NewServeMux()
	mux.HandleFunc("/api/auth/login", func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		var req LoginRequest
		json.NewDecoder(r.Body).Decode(&req)
		gotEmail = req.Email
		writeJSON(w, http.StatusOK, `{"access_token":"new-access","refresh_token":"new-refresh","token_type":"bearer"}`)
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	sdk := newTestSdk(t, srv.URL)
	ctx := context.Background()
	// A leftover stale session must not leak into the login request.
	if err := sdk.setSession(ctx, "stale-access", "stale-refresh"); err != nil {
		t.Fatalf("setSession failed: %v", err)
	}

	pair, err := sdk.Login(ctx, "owner@example.com", "hunter2")
	if err != nil {
		t.Fatalf("Login failed: %v", err)
	}
	if gotAuth != "" {
		t.Errorf("Expected login without bearer token, got %q", gotAuth)
	}
	if gotEmail != "owner@example.com" {
		t.Errorf("Expected email forwarded, got %q", gotEmail)
	}
	if pair.AccessToken != "new-access" {
		t.Errorf("Unexpected pair: %+v", pair)
	}

	access, refresh, _ := sdk.tokens.Tokens(ctx)
	if access != "new-access" || refresh != "new-refresh" {
		t.Errorf("Expected pair persisted, got %q / %q", access, refresh)
	}
	if sdk.CurrentAccessToken() != "new-access" {
		t.Errorf("Expected in-memory session updated")
	}
}

func TestLogin_BadCredentialsDoesNotRefresh(t *testing.T) {
	var refreshCalls int32
	mux := http.NewServeMux()
	mux.HandleFunc("/api/auth/login", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusUnauthorized, `{"detail":"Incorrect email or password"}`)
	})
	mux.HandleFunc("/api/auth/refresh", func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&refreshCalls, 1)
		writeJSON(w, http.StatusOK, `{"access_token":"a","refresh_token":"b"}`)
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	sdk := newTestSdk(t, srv.URL)
	ctx := context.Background()
	if err := sdk.setSession(ctx, "old-access", "old-refresh"); err != nil {
		t.Fatalf("setSession failed: %v", err)
	}

	_, err := sdk.Login(ctx, "owner@example.com", "wrong")
	if err == nil {
		t.Fatal("Expected an error")
	}
	if n := atomic.LoadInt32(&refreshCalls); n != 0 {
		t.Errorf("Bad credentials must not trigger a refresh, got %d calls", n)
	}
	// The old session stays untouched on a failed login.
	if sdk.CurrentAccessToken() != "old-access" {
		t.Errorf("Expected old session kept, got %q", sdk.CurrentAccessToken())
	}
}

func TestRegister_SignsIn(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/auth/register", func(w http.ResponseWriter, r *http.Request) {
		var req RegisterRequest
		json.NewDecoder(r.Body).Decode(&req)
		if req.CompanyName != "Acme Bakery" {
			t.Errorf("Expected company_name forwarded, got %q", req.CompanyName)
		}
		writeJSON(w, http.StatusCreated, `{"access_token":"reg-access","refresh_token":"reg-refresh"}`)
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	sdk := newTestSdk(t, srv.URL)
	pair, err := sdk.Register(context.Background(), RegisterRequest{
		Email:       "owner@example.com",
		Password:    "Secret123!",
		FullName:    "Dana Smit",
		CompanyName: "Acme Bakery",
	})
	if err != nil {
		t.Fatalf("Register failed: %v", err)
	}
	if pair.AccessToken != "reg-access" {
		t.Errorf("Unexpected pair: %+v", pair)
	}
	if sdk.CurrentAccessToken() != "reg-access" {
		t.Errorf("Expected fresh registration signed in")
	}
}

func TestRegister_RejectsShortPasswordBeforeNetwork(t *testing.T) {
	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
	}))
	defer srv.Close()

	sdk := newTestSdk(t, srv.URL)
	_, err := sdk.Register(context.Background(), RegisterRequest{
		Email:    "owner@example.com",
		Password: "short",
		FullName: "Dana Smit",
	})
	if !ferr.IsCode(err, ferr.CodeValidation) {
		t.Fatalf("Expected validation error, got %v", err)
	}
	if n := atomic.LoadInt32(&calls); n != 0 {
		t.Errorf("Expected invalid input to never reach the server, got %d calls", n)
	}
}

func TestLogout_ClearsSessionEvenWhenServerUnreachable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	sdk := newTestSdk(t, srv.URL)
	ctx := context.Background()
	if err := sdk.setSession(ctx, "access", "refresh"); err != nil {
		t.Fatalf("setSession failed: %v", err)
	}

	if err := sdk.Logout(ctx); err != nil {
		t.Fatalf("Logout failed: %v", err)
	}
	access, refresh, _ := sdk.tokens.Tokens(ctx)
	if access != "" || refresh != "" {
		t.Errorf("Expected local session cleared, got %q / %q", access, refresh)
	}
}

func TestLogout_RevokesRefreshToken(t *testing.T) {
	var revoked string
	mux := http.NewServeMux()
	mux.HandleFunc("/api/auth/logout", func(w http.ResponseWriter, r *http.Request) {
		var req logoutRequest
		json.NewDecoder(r.Body).Decode(&req)
		revoked = req.RefreshToken
		w.WriteHeader(http.StatusNoContent)
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	sdk := newTestSdk(t, srv.URL)
	ctx := context.Background()
	if err := sdk.setSession(ctx, "access", "refresh-to-revoke"); err != nil {
		t.Fatalf("setSession failed: %v", err)
	}

	if err := sdk.Logout(ctx); err != nil {
		t.Fatalf("Logout failed: %v", err)
	}
	if revoked != "refresh-to-revoke" {
		t.Errorf("Expected refresh token sent for revocation, got %q", revoked)
	}
}

func TestChangePassword(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/auth/change-password", func(w http.ResponseWriter, r *http.Request) {
		var req changePasswordRequest
		json.NewDecoder(r.Body).Decode(&req)
		if req.CurrentPassword != "old-secret" || req.NewPassword != "new-secret-9" {
			t.Errorf("Unexpected payload: %+v", req)
		}
		w.WriteHeader(http.StatusNoContent)
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	sdk := newTestSdk(t, srv.URL)
	ctx := context.Background()
	if err := sdk.setSession(ctx, "access", "refresh"); err != nil {
		t.Fatalf("setSession failed: %v", err)
	}
	if err := sdk.ChangePassword(ctx, "old-secret", "new-secret-9"); err != nil {
		t.Fatalf("ChangePassword failed: %v", err)
	}
}

func TestBootstrap_NoTokensSkipsNetwork(t *testing.T) {
	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		writeJSON(w, http.StatusOK, `{}`)
	}))
	defer srv.Close()

	sdk := newTestSdk(t, srv.URL)
	user, err := sdk.Bootstrap(context.Background())
	if err != nil {
		t.Fatalf("Bootstrap failed: %v", err)
	}
	if user != nil {
		t.Errorf("Expected no session, got %+v", user)
	}
	if n := atomic.LoadInt32(&calls); n != 0 {
		t.Errorf("Expected no network traffic, got %d calls", n)
	}
}

func TestBootstrap_RestoresSession(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/auth/me", func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer access" {
			writeJSON(w, http.StatusUnauthorized, `{"detail":"not authenticated"}`)
			return
		}
		writeJSON(w, http.StatusOK, `{"id":1,"email":"owner@example.com","full_name":"Dana Smit","role":"admin","is_active":true}`)
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	sdk := newTestSdk(t, srv.URL)
	ctx := context.Background()
	if err := sdk.setSession(ctx, "access", "refresh"); err != nil {
		t.Fatalf("setSession failed: %v", err)
	}

	user, err := sdk.Bootstrap(ctx)
	if err != nil {
		t.Fatalf("Bootstrap failed: %v", err)
	}
	if user == nil || user.Email != "owner@example.com" {
		t.Fatalf("Expected restored user, got %+v", user)
	}
}

func TestBootstrap_DeadSessionPurges(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/auth/me", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusUnauthorized, `{"detail":"token expired"}`)
	})
	mux.HandleFunc("/api/auth/refresh", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusUnauthorized, `{"detail":"refresh token revoked"}`)
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	sdk := newTestSdk(t, srv.URL)
	ctx := context.Background()
	if err := sdk.setSession(ctx, "stale-access", "stale-refresh"); err != nil {
		t.Fatalf("setSession failed: %v", err)
	}

	user, err := sdk.Bootstrap(ctx)
	if err != nil {
		t.Fatalf("Expected a dead session reported as no session, got %v", err)
	}
	if user != nil {
		t.Errorf("Expected nil user, got %+v", user)
	}
	access, refresh, _ := sdk.tokens.Tokens(ctx)
	if access != "" || refresh != "" {
		t.Errorf("Expected stored pair purged, got %q / %q", access, refresh)
	}
}

package fsdk

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/gorilla/websocket"
)

var testUpgrader = websocket.Upgrader{}

func waitEvent(t *testing.T, events <-chan Event) Event {
	t.Helper()
	select {
	case ev, ok := <-events:
		if !ok {
			t.Fatal("event channel closed early")
		}
		return ev
	case <-time.After(3 * time.Second):
		t.Fatal("timed out waiting for an event")
	}
	return Event{}
}

func TestRealtime_ReceivesEvents(t *testing.T) {
	var gotAuth, gotPath string
	mux := http.NewServeMux()
	mux.HandleFunc("/automation/ws/", func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotPath = r.URL.Path
		conn, err := testUpgrader.Upgrade(w, r, nil)
		if err != nil {
			return
		}
		defer conn.Close()
		conn.WriteJSON(Event{Type: EventConnected})
		conn.WriteJSON(Event{
			Type: EventDashboardUpdate,
			Data: json.RawMessage(`{"revenue":1200.5,"expenses":300,"net_income":900.5}`),
		})
		// Hold the connection until the client goes away.
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	sdk := newTestSdk(t, srv.URL)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	if err := sdk.setSession(ctx, "ws-access", "ws-refresh"); err != nil {
		t.Fatalf("setSession failed: %v", err)
	}

	client := sdk.Realtime(RealtimeOptions{ReconnectDelay: 50 * time.Millisecond})
	done := make(chan struct{})
	go func() {
		defer close(done)
		client.Run(ctx)
	}()

	first := waitEvent(t, client.Events())
	if first.Type != EventConnected {
		t.Errorf("Expected connected event first, got %q", first.Type)
	}

	second := waitEvent(t, client.Events())
	if second.Type != EventDashboardUpdate {
		t.Fatalf("Expected dashboard_update, got %q", second.Type)
	}
	metrics, err := second.Dashboard()
	if err != nil {
		t.Fatalf("Dashboard decode failed: %v", err)
	}
	if metrics.Revenue != 1200.5 || metrics.NetIncome != 900.5 {
		t.Errorf("Unexpected metrics: %+v", metrics)
	}

	if gotAuth != "Bearer ws-access" {
		t.Errorf("Expected bearer token on the upgrade request, got %q", gotAuth)
	}
	if !strings.HasSuffix(gotPath, "/"+client.ClientID()) {
		t.Errorf("Expected client id in path, got %q", gotPath)
	}

	cancel()
	select {
	case <-done:
	case <-time.After(3 * time.Second):
		t.Fatal("Run did not return after cancel")
	}
	// Channel closes once Run returns; drain whatever was buffered.
	for range client.Events() {
	}
}

func TestRealtime_ReconnectsAfterDrop(t *testing.T) {
	var conns int32
	mux := http.NewServeMux()
	mux.HandleFunc("/automation/ws/", func(w http.ResponseWriter, r *http.Request) {
		n := atomic.AddInt32(&conns, 1)
		conn, err := testUpgrader.Upgrade(w, r, nil)
		if err != nil {
			return
		}
		defer conn.Close()
		conn.WriteJSON(Event{Type: EventConnected})
		if n == 1 {
			// Drop the first connection immediately.
			return
		}
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	sdk := newTestSdk(t, srv.URL)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	client := sdk.Realtime(RealtimeOptions{ReconnectDelay: 20 * time.Millisecond})
	go client.Run(ctx)

	first := waitEvent(t, client.Events())
	second := waitEvent(t, client.Events())
	if first.Type != EventConnected || second.Type != EventConnected {
		t.Errorf("Expected connected events across reconnect, got %q then %q", first.Type, second.Type)
	}
	if n := atomic.LoadInt32(&conns); n < 2 {
		t.Errorf("Expected at least 2 connections, got %d", n)
	}
}

func TestRealtime_StableClientID(t *testing.T) {
	sdk := newTestSdk(t, "http://localhost:8000")

	fixed := sdk.Realtime(RealtimeOptions{ClientID: "dashboard-1"})
	if fixed.ClientID() != "dashboard-1" {
		t.Errorf("Expected explicit client id kept, got %q", fixed.ClientID())
	}

	generated := sdk.Realtime(RealtimeOptions{})
	if generated.ClientID() == "" {
		t.Error("Expected a generated client id")
	}
}

func TestRealtime_StreamURL(t *testing.T) {
	tests := []struct {
		base string
		want string
	}{
		{"http://localhost:8000", "ws://localhost:8000/automation/ws/c1"},
		{"https://app.example.com", "wss://app.example.com/automation/ws/c1"},
	}
	for _, tt := range tests {
		sdk := newTestSdk(t, tt.base)
		client := sdk.Realtime(RealtimeOptions{ClientID: "c1"})
		if got := client.streamURL(); got != tt.want {
			t.Errorf("streamURL(%s) = %q, want %q", tt.base, got, tt.want)
		}
	}
}

func TestEventDecode_UnknownPayload(t *testing.T) {
	ev := Event{Type: EventAlert, Data: json.RawMessage(`{"level":"warning","message":"budget 80% spent"}`)}
	alert, err := ev.Alert()
	if err != nil {
		t.Fatalf("Alert decode failed: %v", err)
	}
	if alert.Level != "warning" || alert.Message == "" {
		t.Errorf("Unexpected alert: %+v", alert)
	}

	// Empty payload decodes to a zero value instead of failing.
	empty := Event{Type: EventHeartbeat}
	if _, err := empty.Alert(); err != nil {
		t.Errorf("Expected empty payload to decode, got %v", err)
	}
}

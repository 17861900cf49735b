package fsdk

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

// Live event types pushed over the dashboard stream.
const (
	EventConnected       = "connected"
	EventDashboardUpdate = "dashboard_update"
	EventMetricUpdate    = "metric_update"
	EventAlert           = "alert"
	EventNewTransaction  = "new_transaction"
	EventReportComplete  = "report_complete"
	EventHeartbeat       = "heartbeat"
)

// Event is the envelope for every message on the stream. Data holds the
// type-specific payload; the typed accessors decode it.
type Event struct {
	Type      string          `json:"type"`
	Data      json.RawMessage `json:"data,omitempty"`
	Timestamp time.Time       `json:"timestamp"`
}

type DashboardMetrics struct {
	Revenue             float64 `json:"revenue"`
	Expenses            float64 `json:"expenses"`
	NetIncome           float64 `json:"net_income"`
	CashBalance         float64 `json:"cash_balance"`
	OutstandingInvoices float64 `json:"outstanding_invoices"`
	OverdueInvoices     int     `json:"overdue_invoices"`
}

type MetricUpdate struct {
	Name  string  `json:"name"`
	Value float64 `json:"value"`
}

type AlertEvent struct {
	Level   string `json:"level"`
	Message string `json:"message"`
}

type TransactionEvent struct {
	Description string  `json:"description"`
	Amount      float64 `json:"amount"`
	Kind        string  `json:"kind"`
}

type ReportCompleteEvent struct {
	ReportID    int64  `json:"report_id"`
	ReportType  string `json:"report_type"`
	DownloadURL string `json:"download_url,omitempty"`
}

func (e Event) Dashboard() (*DashboardMetrics, error)      { return decodeEvent[DashboardMetrics](e) }
func (e Event) Metric() (*MetricUpdate, error)             { return decodeEvent[MetricUpdate](e) }
func (e Event) Alert() (*AlertEvent, error)                { return decodeEvent[AlertEvent](e) }
func (e Event) Transaction() (*TransactionEvent, error)    { return decodeEvent[TransactionEvent](e) }
func (e Event) ReportComplete() (*ReportCompleteEvent, error) {
	return decodeEvent[ReportCompleteEvent](e)
}

func decodeEvent[T any](e Event) (*T, error) {
	var payload T
	if len(e.Data) == 0 {
		return &payload, nil
	}
	if err := json.Unmarshal(e.Data, &payload); err != nil {
		return nil, fmt.Errorf("decoding %s event: %w", e.Type, err)
	}
	return &payload, nil
}

// RealtimeOptions tunes the live stream client. Zero values get
// sensible defaults.
type RealtimeOptions struct {
	// ClientID identifies this consumer to the stream endpoint. A
	// random UUID is generated when empty.
	ClientID string
	// ReconnectDelay is the fixed wait between reconnect attempts.
	// Defaults to 3 seconds.
	ReconnectDelay time.Duration
}

// RealtimeClient consumes the dashboard event stream with automatic
// reconnect. Events arrive on Events(); Run blocks until the context
// is canceled.
type RealtimeClient struct {
	sdk       *Sdk
	clientID  string
	reconnect time.Duration
	events    chan Event
}

// Realtime builds a stream client. Call Run to start it.
func (s *Sdk) Realtime(opts RealtimeOptions) *RealtimeClient {
	if opts.ClientID == "" {
		opts.ClientID = uuid.NewString()
	}
	if opts.ReconnectDelay <= 0 {
		opts.ReconnectDelay = 3 * time.Second
	}
	return &RealtimeClient{
		sdk:       s,
		clientID:  opts.ClientID,
		reconnect: opts.ReconnectDelay,
		events:    make(chan Event, 16),
	}
}

// Events is the stream of decoded envelopes. The channel closes when
// Run returns.
func (c *RealtimeClient) Events() <-chan Event {
	return c.events
}

// ClientID returns the consumer id used on the wire.
func (c *RealtimeClient) ClientID() string {
	return c.clientID
}

// Run connects and keeps the stream alive, reconnecting after a fixed
// delay whenever the connection drops. Returns when ctx is canceled.
func (c *RealtimeClient) Run(ctx context.Context) error {
	defer close(c.events)
	for {
		c.consume(ctx)
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(c.reconnect):
		}
	}
}

// consume runs a single connection until it fails or ctx ends. Dial and
// read errors are swallowed; the caller reconnects.
func (c *RealtimeClient) consume(ctx context.Context) {
	header := http.Header{}
	if access := c.sdk.CurrentAccessToken(); access != "" {
		header.Set("Authorization", "Bearer "+access)
	}

	conn, resp, err := websocket.DefaultDialer.DialContext(ctx, c.streamURL(), header)
	if err != nil {
		if resp != nil {
			resp.Body.Close()
		}
		return
	}
	defer conn.Close()

	// Unblock the read loop when the context ends.
	done := make(chan struct{})
	defer close(done)
	go func() {
		select {
		case <-ctx.Done():
			deadline := time.Now().Add(time.Second)
			_ = conn.WriteControl(websocket.CloseMessage,
				websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""), deadline)
			conn.Close()
		case <-done:
		}
	}()

	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			return
		}
		var event Event
		if err := json.Unmarshal(data, &event); err != nil {
			continue
		}
		select {
		case c.events <- event:
		case <-ctx.Done():
			return
		}
	}
}

func (c *RealtimeClient) streamURL() string {
	base := c.sdk.BaseURL
	switch {
	case strings.HasPrefix(base, "https://"):
		base = "wss://" + strings.TrimPrefix(base, "https://")
	case strings.HasPrefix(base, "http://"):
		base = "ws://" + strings.TrimPrefix(base, "http://")
	}
	return fmt.Sprintf("%s/automation/ws/%s", base, c.clientID)
}

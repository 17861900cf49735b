package fsdk

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"strings"
	"sync"

	"github.com/fintracklabs/fintrack/pkg/fsdk/ferr"
)

// Sdk is the FinTrack API client with auth baked in. It attaches the
// stored bearer token to every call, refreshes the session once on a
// 401 and retries, and surfaces everything else as a typed error so
// CLI commands don't need to wire keyring + http + headers themselves.
type Sdk struct {
	BaseURL    string
	HTTPClient *http.Client

	Invoices   *InvoicesService
	Customers  *CustomersService
	Payments   *PaymentsService
	Receipts   *ReceiptsService
	Budgets    *BudgetsService
	Reports    *ReportsService
	Insights   *InsightsService
	Admin      *AdminService
	Automation *AutomationService

	tokens *TokenStore

	mu      sync.Mutex // guards access/refresh
	access  string
	refresh string

	refreshMu sync.Mutex // serializes session refresh
}

// skipAuthKey skips token attachment when present in the context so the
// refresh call itself can execute without recursive token checks.
type skipAuthKey struct{}

// requestState tracks where a call is in its retry lifecycle. A call
// moves first attempt -> refreshing -> retried on a 401, or to expired
// when the refresh fails. Retried and expired are terminal: a second
// 401 surfaces as-is instead of looping.
type requestState int

const (
	stateFirstAttempt requestState = iota
	stateRefreshing
	stateRetried
	stateExpired
)

// New builds an SDK from config. Tokens are loaded from the default
// store (OS keyring with file fallback) scoped to the configured base URL.
func New(cfg *Config) (*Sdk, error) {
	// Read through viper so values bound after load (CLI flags) win over
	// the unmarshaled snapshot.
	baseURL := cfg.GetString(BaseUrlKey)
	if baseURL == "" {
		baseURL = cfg.BaseURL
	}
	baseURL = strings.TrimRight(baseURL, "/")
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	tokens, err := DefaultTokenStore(baseURL)
	if err != nil {
		return nil, err
	}
	return NewWithStore(baseURL, tokens)
}

// NewWithStore builds an SDK over an explicit token store. Tests use
// this with an in-memory store.
func NewWithStore(baseURL string, tokens *TokenStore) (*Sdk, error) {
	access, refresh, err := tokens.Tokens(context.Background())
	if err != nil {
		return nil, fmt.Errorf("loading stored tokens: %w", err)
	}

	s := &Sdk{
		BaseURL:    strings.TrimRight(baseURL, "/"),
		HTTPClient: &http.Client{},
		tokens:     tokens,
		access:     access,
		refresh:    refresh,
	}
	s.Invoices = &InvoicesService{sdk: s}
	s.Customers = &CustomersService{sdk: s}
	s.Payments = &PaymentsService{sdk: s}
	s.Receipts = &ReceiptsService{sdk: s}
	s.Budgets = &BudgetsService{sdk: s}
	s.Reports = &ReportsService{sdk: s}
	s.Insights = &InsightsService{sdk: s}
	s.Admin = &AdminService{sdk: s}
	s.Automation = &AutomationService{sdk: s}
	return s, nil
}

// CurrentAccessToken returns the in-memory access token, or "" when the
// session is anonymous.
func (s *Sdk) CurrentAccessToken() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.access
}

// AccessClaims parses the current access token's claims without
// verifying the signature. Returns an error when no session exists.
func (s *Sdk) AccessClaims() (*SessionClaims, error) {
	token := s.CurrentAccessToken()
	if token == "" {
		return nil, ferr.New(ferr.CodeUnauthorized, errors.New("no active session"))
	}
	return ParseSessionClaims(token)
}

func (s *Sdk) currentTokens() (access, refresh string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.access, s.refresh
}

func (s *Sdk) setSession(ctx context.Context, access, refresh string) error {
	s.mu.Lock()
	s.access = access
	s.refresh = refresh
	s.mu.Unlock()
	return s.tokens.SetTokens(ctx, access, refresh)
}

func (s *Sdk) clearSession(ctx context.Context) {
	s.mu.Lock()
	s.access = ""
	s.refresh = ""
	s.mu.Unlock()
	_ = s.tokens.Clear(ctx)
}

// get issues an authenticated GET and decodes the JSON response into out.
func (s *Sdk) get(ctx context.Context, path string, query url.Values, out any) error {
	return s.do(ctx, http.MethodGet, path, query, nil, out)
}

func (s *Sdk) post(ctx context.Context, path string, in, out any) error {
	return s.do(ctx, http.MethodPost, path, nil, in, out)
}

func (s *Sdk) put(ctx context.Context, path string, in, out any) error {
	return s.do(ctx, http.MethodPut, path, nil, in, out)
}

func (s *Sdk) delete(ctx context.Context, path string) error {
	return s.do(ctx, http.MethodDelete, path, nil, nil, nil)
}

// do runs one API call through the session state machine:
//
//	first attempt --401--> refreshing --ok--> retried
//	                          \--fail--> expired
//
// The refresh-and-retry happens at most once per call. A 401 on a call
// that carried no access token surfaces directly; the refresh endpoint
// is never hit for anonymous calls.
func (s *Sdk) do(ctx context.Context, method, path string, query url.Values, in, out any) error {
	body, err := encodeBody(in)
	if err != nil {
		return err
	}

	var (
		staleAccess string
		refreshErr  error
	)
	state := stateFirstAttempt
	for {
		switch state {
		case stateFirstAttempt, stateRetried:
			attach := ctx.Value(skipAuthKey{}) == nil
			access := ""
			if attach {
				access, _ = s.currentTokens()
			}
			status, respBody, err := s.send(ctx, method, path, query, body, access)
			if err != nil {
				return err
			}
			if status >= 200 && status < 300 {
				return decodeBody(respBody, out)
			}
			if status == http.StatusUnauthorized && access != "" && state == stateFirstAttempt {
				staleAccess = access
				state = stateRefreshing
				continue
			}
			return httpError(status, respBody)

		case stateRefreshing:
			if err := s.refreshSession(ctx, staleAccess); err != nil {
				refreshErr = err
				state = stateExpired
				continue
			}
			state = stateRetried

		case stateExpired:
			s.clearSession(ctx)
			return ferr.New(ferr.CodeSessionExpired, refreshErr)
		}
	}
}

// refreshSession exchanges the stored refresh token for a new pair.
// The mutex makes concurrent 401s collapse into a single refresh: the
// first caller rotates the pair, later callers see the rotation and
// return immediately.
func (s *Sdk) refreshSession(ctx context.Context, staleAccess string) error {
	s.refreshMu.Lock()
	defer s.refreshMu.Unlock()

	access, refresh := s.currentTokens()
	if access != "" && access != staleAccess {
		// Another call already rotated the pair while we waited.
		return nil
	}
	if refresh == "" {
		return ferr.New(ferr.CodeUnauthorized, errors.New("missing refresh token"))
	}

	ctx = context.WithValue(ctx, skipAuthKey{}, true)
	var pair TokenPair
	if err := s.post(ctx, refreshPath, refreshRequest{RefreshToken: refresh}, &pair); err != nil {
		return ferr.New(ferr.CodeRefreshFailed, err)
	}
	if pair.AccessToken == "" || pair.RefreshToken == "" {
		return ferr.New(ferr.CodeRefreshFailed, errors.New("refresh response missing tokens"))
	}
	if err := s.setSession(ctx, pair.AccessToken, pair.RefreshToken); err != nil {
		return ferr.New(ferr.CodeUnknown, err)
	}
	return nil
}

// encodeBody prepares a replayable request body. Replayable matters:
// the same body is sent again on the post-refresh retry.
func encodeBody(in any) (*requestBody, error) {
	if in == nil {
		return nil, nil
	}
	if upload, ok := in.(*FileUpload); ok {
		return &requestBody{upload: upload}, nil
	}
	buf, err := json.Marshal(in)
	if err != nil {
		return nil, ferr.New(ferr.CodeUnknown, fmt.Errorf("encoding request: %w", err))
	}
	return &requestBody{json: buf}, nil
}

type requestBody struct {
	json   []byte
	upload *FileUpload
}

func (b *requestBody) build() (io.Reader, string, error) {
	if b == nil {
		return nil, "", nil
	}
	if b.upload != nil {
		return b.upload.encode()
	}
	return bytes.NewReader(b.json), "application/json", nil
}

// FileUpload is a multipart request body. Data is held in memory so the
// body can be rebuilt if the call is retried after a token refresh.
type FileUpload struct {
	Field    string
	Filename string
	Data     []byte
	Extra    map[string]string
}

func (u *FileUpload) encode() (io.Reader, string, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	part, err := w.CreateFormFile(u.Field, u.Filename)
	if err != nil {
		return nil, "", ferr.New(ferr.CodeUnknown, err)
	}
	if _, err := part.Write(u.Data); err != nil {
		return nil, "", ferr.New(ferr.CodeUnknown, err)
	}
	for key, value := range u.Extra {
		if err := w.WriteField(key, value); err != nil {
			return nil, "", ferr.New(ferr.CodeUnknown, err)
		}
	}
	if err := w.Close(); err != nil {
		return nil, "", ferr.New(ferr.CodeUnknown, err)
	}
	return &buf, w.FormDataContentType(), nil
}

func (s *Sdk) send(ctx context.Context, method, path string, query url.Values, body *requestBody, access string) (int, []byte, error) {
	endpoint := s.BaseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	reader, contentType, err := body.build()
	if err != nil {
		return 0, nil, err
	}
	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return 0, nil, ferr.New(ferr.CodeUnknown, err)
	}
	req.Header.Set("Accept", "application/json")
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	if access != "" {
		req.Header.Set("Authorization", "Bearer "+access)
	}

	resp, err := s.HTTPClient.Do(req)
	if err != nil {
		return 0, nil, ferr.New(ferr.CodeNetwork, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return 0, nil, ferr.New(ferr.CodeNetwork, fmt.Errorf("reading response: %w", err))
	}
	return resp.StatusCode, data, nil
}

func decodeBody(data []byte, out any) error {
	if out == nil || len(data) == 0 {
		return nil
	}
	// File endpoints decode into a raw byte slice instead of JSON.
	if raw, ok := out.(*[]byte); ok {
		*raw = data
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return ferr.New(ferr.CodeUnknown, fmt.Errorf("decoding response: %w", err))
	}
	return nil
}

// httpError turns a non-2xx response into a typed error carrying the
// status and the backend's detail message.
func httpError(status int, body []byte) error {
	code := ferr.CodeHTTP
	switch status {
	case http.StatusUnauthorized:
		code = ferr.CodeUnauthorized
	case http.StatusUnprocessableEntity:
		code = ferr.CodeValidation
	}
	return ferr.NewHTTP(code, status, parseDetail(body))
}

// parseDetail extracts the backend's {"detail": ...} message. Detail is
// usually a string but can be a structured validation list; anything
// non-string is passed through as compact JSON.
func parseDetail(body []byte) string {
	var envelope struct {
		Detail json.RawMessage `json:"detail"`
	}
	if err := json.Unmarshal(body, &envelope); err == nil && len(envelope.Detail) > 0 {
		var msg string
		if json.Unmarshal(envelope.Detail, &msg) == nil {
			return msg
		}
		return string(envelope.Detail)
	}
	msg := strings.TrimSpace(string(body))
	const maxDetail = 512
	if len(msg) > maxDetail {
		msg = msg[:maxDetail]
	}
	return msg
}

package fsdk

import (
	"fmt"
	"net/url"
	"strconv"
	"time"
)

// Date is a calendar day without a time component, wired to the
// backend's "2006-01-02" JSON encoding.
type Date struct {
	time.Time
}

const dateLayout = "2006-01-02"

// NewDate builds a Date at midnight UTC.
func NewDate(year int, month time.Month, day int) Date {
	return Date{Time: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// ParseDate parses a "2006-01-02" string.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return Date{}, fmt.Errorf("parsing date %q: %w", s, err)
	}
	return Date{Time: t}, nil
}

func (d Date) String() string {
	if d.IsZero() {
		return ""
	}
	return d.Format(dateLayout)
}

func (d Date) MarshalJSON() ([]byte, error) {
	if d.IsZero() {
		return []byte("null"), nil
	}
	return []byte(strconv.Quote(d.Format(dateLayout))), nil
}

func (d *Date) UnmarshalJSON(data []byte) error {
	s, err := strconv.Unquote(string(data))
	if err != nil {
		if string(data) == "null" {
			*d = Date{}
			return nil
		}
		return fmt.Errorf("invalid date %s", data)
	}
	if s == "" {
		*d = Date{}
		return nil
	}
	parsed, err := ParseDate(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// TokenPair is the session credential set issued on login, registration
// and refresh.
type TokenPair struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	TokenType    string `json:"token_type,omitempty"`
	ExpiresIn    int64  `json:"expires_in,omitempty"`
}

// User roles.
const (
	RoleAdmin      = "admin"
	RoleAccountant = "accountant"
	RoleViewer     = "viewer"
)

type User struct {
	ID          int64     `json:"id"`
	Email       string    `json:"email"`
	FullName    string    `json:"full_name"`
	CompanyName string    `json:"company_name,omitempty"`
	Role        string    `json:"role"`
	IsActive    bool      `json:"is_active"`
	IsVerified  bool      `json:"is_verified"`
	CreatedAt   time.Time `json:"created_at"`
}

// Invoice statuses.
const (
	InvoiceStatusDraft     = "draft"
	InvoiceStatusSent      = "sent"
	InvoiceStatusPaid      = "paid"
	InvoiceStatusOverdue   = "overdue"
	InvoiceStatusCancelled = "cancelled"
)

type InvoiceItem struct {
	Description string  `json:"description"`
	Quantity    float64 `json:"quantity"`
	UnitPrice   float64 `json:"unit_price"`
	VATRate     float64 `json:"vat_rate"`
	Total       float64 `json:"total,omitempty"`
}

type Invoice struct {
	ID            int64         `json:"id"`
	InvoiceNumber string        `json:"invoice_number"`
	CustomerID    int64         `json:"customer_id"`
	CustomerName  string        `json:"customer_name,omitempty"`
	Status        string        `json:"status"`
	IssueDate     Date          `json:"issue_date"`
	DueDate       Date          `json:"due_date"`
	Currency      string        `json:"currency"`
	Subtotal      float64       `json:"subtotal"`
	VATAmount     float64       `json:"vat_amount"`
	Total         float64       `json:"total"`
	AmountPaid    float64       `json:"amount_paid"`
	Notes         string        `json:"notes,omitempty"`
	Items         []InvoiceItem `json:"items,omitempty"`
	CreatedAt     time.Time     `json:"created_at"`
}

type Customer struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email,omitempty"`
	Phone     string    `json:"phone,omitempty"`
	Address   string    `json:"address,omitempty"`
	VATNumber string    `json:"vat_number,omitempty"`
	Balance   float64   `json:"balance"`
	CreatedAt time.Time `json:"created_at"`
}

type StatementLine struct {
	Date      Date    `json:"date"`
	Kind      string  `json:"type"`
	Reference string  `json:"reference"`
	Amount    float64 `json:"amount"`
	Balance   float64 `json:"balance"`
}

type CustomerStatement struct {
	Customer       Customer        `json:"customer"`
	FromDate       Date            `json:"from_date"`
	ToDate         Date            `json:"to_date"`
	OpeningBalance float64         `json:"opening_balance"`
	ClosingBalance float64         `json:"closing_balance"`
	Lines          []StatementLine `json:"lines"`
}

// Payment methods.
const (
	PaymentMethodBankTransfer = "bank_transfer"
	PaymentMethodCard         = "card"
	PaymentMethodCash         = "cash"
	PaymentMethodDirectDebit  = "direct_debit"
)

type Payment struct {
	ID          int64     `json:"id"`
	InvoiceID   *int64    `json:"invoice_id,omitempty"`
	CustomerID  *int64    `json:"customer_id,omitempty"`
	Amount      float64   `json:"amount"`
	Method      string    `json:"method"`
	Reference   string    `json:"reference,omitempty"`
	PaymentDate Date      `json:"payment_date"`
	// MatchConfidence is set by the backend's matcher when a payment
	// was linked to an invoice automatically.
	MatchConfidence *float64  `json:"match_confidence,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
}

// Receipt processing statuses.
const (
	ReceiptStatusPending   = "pending"
	ReceiptStatusProcessed = "processed"
	ReceiptStatusFailed    = "failed"
)

type Receipt struct {
	ID          int64     `json:"id"`
	Filename    string    `json:"filename"`
	Vendor      string    `json:"vendor,omitempty"`
	Amount      float64   `json:"amount,omitempty"`
	Currency    string    `json:"currency,omitempty"`
	Category    string    `json:"category,omitempty"`
	ReceiptDate Date      `json:"receipt_date"`
	Status      string    `json:"status"`
	FileURL     string    `json:"file_url,omitempty"`
	UploadedAt  time.Time `json:"uploaded_at"`
}

// Budget periods.
const (
	BudgetPeriodMonthly   = "monthly"
	BudgetPeriodQuarterly = "quarterly"
	BudgetPeriodYearly    = "yearly"
)

type Budget struct {
	ID        int64   `json:"id"`
	Name      string  `json:"name"`
	Category  string  `json:"category"`
	Period    string  `json:"period"`
	Amount    float64 `json:"amount"`
	Spent     float64 `json:"spent"`
	Remaining float64 `json:"remaining"`
	StartDate Date    `json:"start_date"`
	EndDate   Date    `json:"end_date"`
}

// Report types and statuses.
const (
	ReportProfitLoss = "profit_loss"
	ReportCashFlow   = "cash_flow"
	ReportAging      = "aging"
	ReportTaxSummary = "tax_summary"

	ReportStatusPending    = "pending"
	ReportStatusProcessing = "processing"
	ReportStatusCompleted  = "completed"
	ReportStatusFailed     = "failed"
)

type Report struct {
	ID          int64              `json:"id"`
	Type        string             `json:"report_type"`
	PeriodStart Date               `json:"period_start"`
	PeriodEnd   Date               `json:"period_end"`
	Status      string             `json:"status"`
	DownloadURL string             `json:"download_url,omitempty"`
	Summary     map[string]float64 `json:"summary,omitempty"`
	CreatedAt   time.Time          `json:"created_at"`
	CompletedAt *time.Time         `json:"completed_at,omitempty"`
}

// Insight severities.
const (
	SeverityInfo     = "info"
	SeverityWarning  = "warning"
	SeverityCritical = "critical"
)

type Insight struct {
	ID        int64     `json:"id"`
	Category  string    `json:"category"`
	Severity  string    `json:"severity"`
	Title     string    `json:"title"`
	Body      string    `json:"body"`
	CreatedAt time.Time `json:"created_at"`
}

type InsightSummary struct {
	Period      string             `json:"period"`
	Highlights  []string           `json:"highlights"`
	Metrics     map[string]float64 `json:"metrics,omitempty"`
	GeneratedAt time.Time          `json:"generated_at"`
}

type AutomationStatus struct {
	SchedulerRunning bool       `json:"scheduler_running"`
	ActiveSchedules  int        `json:"active_schedules"`
	LastRunAt        *time.Time `json:"last_run_at,omitempty"`
	EmailsSentToday  int        `json:"emails_sent_today"`
}

type Schedule struct {
	ID         int64      `json:"id"`
	Name       string     `json:"name"`
	ReportType string     `json:"report_type"`
	Cron       string     `json:"cron"`
	Recipients []string   `json:"recipients"`
	Enabled    bool       `json:"enabled"`
	LastRunAt  *time.Time `json:"last_run_at,omitempty"`
	NextRunAt  *time.Time `json:"next_run_at,omitempty"`
}

type EmailLogEntry struct {
	ID        int64     `json:"id"`
	Recipient string    `json:"recipient"`
	Subject   string    `json:"subject"`
	Status    string    `json:"status"`
	SentAt    time.Time `json:"sent_at"`
}

// ListOptions is shared pagination input for list calls. Zero values
// mean "backend default".
type ListOptions struct {
	Skip  int
	Limit int
}

func (o ListOptions) values() url.Values {
	q := url.Values{}
	if o.Skip > 0 {
		q.Set("skip", strconv.Itoa(o.Skip))
	}
	if o.Limit > 0 {
		q.Set("limit", strconv.Itoa(o.Limit))
	}
	return q
}

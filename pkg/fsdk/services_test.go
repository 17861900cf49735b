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

func TestInvoices_ListFilters(t *testing.T) {
	var gotQuery string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.RawQuery
		writeJSON(w, http.StatusOK, `[]`)
	}))
	defer srv.Close()

	sdk := newTestSdk(t, srv.URL)
	_, err := sdk.Invoices.List(context.Background(), InvoiceListOptions{
		ListOptions: ListOptions{Skip: 20, Limit: 10},
		Status:      InvoiceStatusOverdue,
		CustomerID:  7,
	})
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	want := "customer_id=7&limit=10&skip=20&status=overdue"
	if gotQuery != want {
		t.Errorf("Expected query %q, got %q", want, gotQuery)
	}
}

func TestInvoices_CreateValidatesBeforeNetwork(t *testing.T) {
	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		writeJSON(w, http.StatusOK, `{}`)
	}))
	defer srv.Close()

	sdk := newTestSdk(t, srv.URL)
	ctx := context.Background()

	tests := []struct {
		name string
		req  CreateInvoiceRequest
	}{
		{"missing customer", CreateInvoiceRequest{Items: []InvoiceItem{{Description: "x", Quantity: 1}}}},
		{"no items", CreateInvoiceRequest{CustomerID: 1}},
		{"zero quantity", CreateInvoiceRequest{CustomerID: 1, Items: []InvoiceItem{{Description: "x"}}}},
		{"due before issue", CreateInvoiceRequest{
			CustomerID: 1,
			IssueDate:  NewDate(2026, 8, 10),
			DueDate:    NewDate(2026, 8, 1),
			Items:      []InvoiceItem{{Description: "x", Quantity: 1, UnitPrice: 10}},
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := sdk.Invoices.Create(ctx, tt.req)
			if !ferr.IsCode(err, ferr.CodeValidation) {
				t.Fatalf("Expected a validation error, got %v", err)
			}
			if status := ferr.StatusOf(err); status != 0 {
				t.Errorf("Expected no HTTP status on client-side validation, got %d", status)
			}
		})
	}
	if n := atomic.LoadInt32(&calls); n != 0 {
		t.Errorf("Expected invalid input to never reach the network, got %d calls", n)
	}
}

func TestCustomers_Statement(t *testing.T) {
	var gotPath, gotQuery string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQuery = r.URL.RawQuery
		writeJSON(w, http.StatusOK, `{
			"customer": {"id": 7, "name": "Acme Bakery"},
			"from_date": "2026-01-01",
			"to_date": "2026-03-31",
			"opening_balance": 100,
			"closing_balance": 40,
			"lines": [
				{"date": "2026-02-01", "type": "invoice", "reference": "INV-010", "amount": 60, "balance": 160},
				{"date": "2026-02-20", "type": "payment", "reference": "PAY-055", "amount": -120, "balance": 40}
			]
		}`)
	}))
	defer srv.Close()

	sdk := newTestSdk(t, srv.URL)
	statement, err := sdk.Customers.Statement(context.Background(), 7,
		NewDate(2026, 1, 1), NewDate(2026, 3, 31))
	if err != nil {
		t.Fatalf("Statement failed: %v", err)
	}

	if gotPath != "/api/customers/7/statement" {
		t.Errorf("Unexpected path %q", gotPath)
	}
	if gotQuery != "from_date=2026-01-01&to_date=2026-03-31" {
		t.Errorf("Unexpected query %q", gotQuery)
	}
	if statement.Customer.Name != "Acme Bakery" {
		t.Errorf("Unexpected customer: %+v", statement.Customer)
	}
	if len(statement.Lines) != 2 || statement.Lines[1].Kind != "payment" {
		t.Errorf("Unexpected lines: %+v", statement.Lines)
	}
	if statement.Lines[0].Date.String() != "2026-02-01" {
		t.Errorf("Expected parsed line date, got %s", statement.Lines[0].Date)
	}
}

func TestPayments_Unmatched(t *testing.T) {
	var gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		writeJSON(w, http.StatusOK, `[{"id":3,"amount":55.5,"method":"bank_transfer","payment_date":"2026-08-01"}]`)
	}))
	defer srv.Close()

	sdk := newTestSdk(t, srv.URL)
	payments, err := sdk.Payments.Unmatched(context.Background())
	if err != nil {
		t.Fatalf("Unmatched failed: %v", err)
	}
	if gotPath != "/api/payments/unmatched" {
		t.Errorf("Unexpected path %q", gotPath)
	}
	if len(payments) != 1 || payments[0].InvoiceID != nil {
		t.Errorf("Expected one unmatched payment, got %+v", payments)
	}
}

func TestAdmin_UpdateUserRole(t *testing.T) {
	var gotPath string
	var gotBody updateRoleRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.Method + " " + r.URL.Path
		json.NewDecoder(r.Body).Decode(&gotBody)
		writeJSON(w, http.StatusOK, `{"id":4,"email":"x@example.com","role":"accountant"}`)
	}))
	defer srv.Close()

	sdk := newTestSdk(t, srv.URL)
	ctx := context.Background()

	if _, err := sdk.Admin.UpdateUserRole(ctx, 4, "superuser"); err == nil {
		t.Error("Expected unknown role rejected")
	}

	user, err := sdk.Admin.UpdateUserRole(ctx, 4, RoleAccountant)
	if err != nil {
		t.Fatalf("UpdateUserRole failed: %v", err)
	}
	if gotPath != "PUT /api/admin/users/4/role" {
		t.Errorf("Unexpected request %q", gotPath)
	}
	if gotBody.Role != RoleAccountant {
		t.Errorf("Expected role in body, got %q", gotBody.Role)
	}
	if user.Role != RoleAccountant {
		t.Errorf("Unexpected user: %+v", user)
	}
}

func TestAutomation_CreateScheduleValidation(t *testing.T) {
	sdk := newTestSdk(t, "http://localhost:8000")
	ctx := context.Background()

	_, err := sdk.Automation.CreateSchedule(ctx, CreateScheduleRequest{
		Name:       "weekly p&l",
		Cron:       "0 8 * * MON",
		Recipients: []string{"not-an-email"},
	})
	if err == nil {
		t.Fatal("Expected a validation error for a bad recipient")
	}
}

func TestReceipts_UploadValidation(t *testing.T) {
	sdk := newTestSdk(t, "http://localhost:8000")
	ctx := context.Background()

	_, err := sdk.Receipts.Upload(ctx, UploadReceiptRequest{Filename: "virus.exe", Data: []byte("x")})
	if err == nil {
		t.Fatal("Expected unsupported file type rejected")
	}
	_, err = sdk.Receipts.Upload(ctx, UploadReceiptRequest{Filename: "empty.pdf"})
	if err == nil {
		t.Fatal("Expected empty file rejected")
	}
}

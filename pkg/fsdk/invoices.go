package fsdk

import (
	"context"
	"fmt"
	"strconv"
)

const invoicesPath = "/api/invoices"

// InvoicesService manages customer invoices.
type InvoicesService struct {
	sdk *Sdk
}

type InvoiceListOptions struct {
	ListOptions
	Status     string
	CustomerID int64
}

type CreateInvoiceRequest struct {
	CustomerID int64         `json:"customer_id"`
	IssueDate  Date          `json:"issue_date"`
	DueDate    Date          `json:"due_date"`
	Currency   string        `json:"currency,omitempty"`
	Notes      string        `json:"notes,omitempty"`
	Items      []InvoiceItem `json:"items"`
}

func (r CreateInvoiceRequest) validate() error {
	if r.CustomerID <= 0 {
		return validationError("customer_id", "must reference a customer")
	}
	if len(r.Items) == 0 {
		return validationError("items", "needs at least one line item")
	}
	for i, item := range r.Items {
		if err := validateLineItem(i, item); err != nil {
			return err
		}
	}
	if !r.IssueDate.IsZero() && !r.DueDate.IsZero() && r.DueDate.Before(r.IssueDate.Time) {
		return validationError("due_date", "must not be before issue_date")
	}
	return nil
}

func (s *InvoicesService) List(ctx context.Context, opts InvoiceListOptions) ([]Invoice, error) {
	q := opts.values()
	if opts.Status != "" {
		q.Set("status", opts.Status)
	}
	if opts.CustomerID > 0 {
		q.Set("customer_id", strconv.FormatInt(opts.CustomerID, 10))
	}
	var invoices []Invoice
	if err := s.sdk.get(ctx, invoicesPath, q, &invoices); err != nil {
		return nil, err
	}
	return invoices, nil
}

func (s *InvoicesService) Get(ctx context.Context, id int64) (*Invoice, error) {
	var invoice Invoice
	if err := s.sdk.get(ctx, fmt.Sprintf("%s/%d", invoicesPath, id), nil, &invoice); err != nil {
		return nil, err
	}
	return &invoice, nil
}

func (s *InvoicesService) Create(ctx context.Context, req CreateInvoiceRequest) (*Invoice, error) {
	if err := req.validate(); err != nil {
		return nil, err
	}
	var invoice Invoice
	if err := s.sdk.post(ctx, invoicesPath, req, &invoice); err != nil {
		return nil, err
	}
	return &invoice, nil
}

// MarkPaid transitions an invoice to paid. The backend records a
// matching payment for the open balance.
func (s *InvoicesService) MarkPaid(ctx context.Context, id int64) (*Invoice, error) {
	var invoice Invoice
	if err := s.sdk.post(ctx, fmt.Sprintf("%s/%d/pay", invoicesPath, id), nil, &invoice); err != nil {
		return nil, err
	}
	return &invoice, nil
}

func (s *InvoicesService) Delete(ctx context.Context, id int64) error {
	return s.sdk.delete(ctx, fmt.Sprintf("%s/%d", invoicesPath, id))
}

package fsdk

import (
	"context"
	"fmt"
	"strconv"
)

const paymentsPath = "/api/payments"

// PaymentsService manages received payments and their invoice matches.
type PaymentsService struct {
	sdk *Sdk
}

type PaymentListOptions struct {
	ListOptions
	InvoiceID  int64
	CustomerID int64
	Method     string
}

type RecordPaymentRequest struct {
	InvoiceID   *int64  `json:"invoice_id,omitempty"`
	CustomerID  *int64  `json:"customer_id,omitempty"`
	Amount      float64 `json:"amount"`
	Method      string  `json:"method"`
	Reference   string  `json:"reference,omitempty"`
	PaymentDate Date    `json:"payment_date"`
}

func (r RecordPaymentRequest) validate() error {
	if r.Amount <= 0 {
		return validationError("amount", "must be positive")
	}
	if err := validateRequired("method", r.Method); err != nil {
		return err
	}
	return nil
}

func (s *PaymentsService) List(ctx context.Context, opts PaymentListOptions) ([]Payment, error) {
	q := opts.values()
	if opts.InvoiceID > 0 {
		q.Set("invoice_id", strconv.FormatInt(opts.InvoiceID, 10))
	}
	if opts.CustomerID > 0 {
		q.Set("customer_id", strconv.FormatInt(opts.CustomerID, 10))
	}
	if opts.Method != "" {
		q.Set("method", opts.Method)
	}
	var payments []Payment
	if err := s.sdk.get(ctx, paymentsPath, q, &payments); err != nil {
		return nil, err
	}
	return payments, nil
}

func (s *PaymentsService) Get(ctx context.Context, id int64) (*Payment, error) {
	var payment Payment
	if err := s.sdk.get(ctx, fmt.Sprintf("%s/%d", paymentsPath, id), nil, &payment); err != nil {
		return nil, err
	}
	return &payment, nil
}

// Record registers a received payment. When no invoice is given the
// backend's matcher tries to link it to an open invoice.
func (s *PaymentsService) Record(ctx context.Context, req RecordPaymentRequest) (*Payment, error) {
	if err := req.validate(); err != nil {
		return nil, err
	}
	var payment Payment
	if err := s.sdk.post(ctx, paymentsPath, req, &payment); err != nil {
		return nil, err
	}
	return &payment, nil
}

func (s *PaymentsService) Delete(ctx context.Context, id int64) error {
	return s.sdk.delete(ctx, fmt.Sprintf("%s/%d", paymentsPath, id))
}

// Unmatched lists payments that could not be linked to an invoice.
func (s *PaymentsService) Unmatched(ctx context.Context) ([]Payment, error) {
	var payments []Payment
	if err := s.sdk.get(ctx, paymentsPath+"/unmatched", nil, &payments); err != nil {
		return nil, err
	}
	return payments, nil
}

package fsdk

import (
	"context"
	"fmt"
	"net/url"
)

const customersPath = "/api/customers"

// CustomersService manages the customer ledger.
type CustomersService struct {
	sdk *Sdk
}

type CustomerListOptions struct {
	ListOptions
	Search string
}

type CreateCustomerRequest struct {
	Name      string `json:"name"`
	Email     string `json:"email,omitempty"`
	Phone     string `json:"phone,omitempty"`
	Address   string `json:"address,omitempty"`
	VATNumber string `json:"vat_number,omitempty"`
}

func (r CreateCustomerRequest) validate() error {
	if err := validateRequired("name", r.Name); err != nil {
		return err
	}
	return validateEmail("email", r.Email)
}

// UpdateCustomerRequest is a partial update; nil fields keep their
// current value.
type UpdateCustomerRequest struct {
	Name      *string `json:"name,omitempty"`
	Email     *string `json:"email,omitempty"`
	Phone     *string `json:"phone,omitempty"`
	Address   *string `json:"address,omitempty"`
	VATNumber *string `json:"vat_number,omitempty"`
}

func (s *CustomersService) List(ctx context.Context, opts CustomerListOptions) ([]Customer, error) {
	q := opts.values()
	if opts.Search != "" {
		q.Set("search", opts.Search)
	}
	var customers []Customer
	if err := s.sdk.get(ctx, customersPath, q, &customers); err != nil {
		return nil, err
	}
	return customers, nil
}

func (s *CustomersService) Get(ctx context.Context, id int64) (*Customer, error) {
	var customer Customer
	if err := s.sdk.get(ctx, fmt.Sprintf("%s/%d", customersPath, id), nil, &customer); err != nil {
		return nil, err
	}
	return &customer, nil
}

func (s *CustomersService) Create(ctx context.Context, req CreateCustomerRequest) (*Customer, error) {
	if err := req.validate(); err != nil {
		return nil, err
	}
	var customer Customer
	if err := s.sdk.post(ctx, customersPath, req, &customer); err != nil {
		return nil, err
	}
	return &customer, nil
}

func (s *CustomersService) Update(ctx context.Context, id int64, req UpdateCustomerRequest) (*Customer, error) {
	if req.Email != nil {
		if err := validateEmail("email", *req.Email); err != nil {
			return nil, err
		}
	}
	var customer Customer
	if err := s.sdk.put(ctx, fmt.Sprintf("%s/%d", customersPath, id), req, &customer); err != nil {
		return nil, err
	}
	return &customer, nil
}

func (s *CustomersService) Delete(ctx context.Context, id int64) error {
	return s.sdk.delete(ctx, fmt.Sprintf("%s/%d", customersPath, id))
}

// Statement fetches the customer's account activity between two dates,
// with running balance.
func (s *CustomersService) Statement(ctx context.Context, id int64, from, to Date) (*CustomerStatement, error) {
	q := url.Values{}
	if !from.IsZero() {
		q.Set("from_date", from.String())
	}
	if !to.IsZero() {
		q.Set("to_date", to.String())
	}
	var statement CustomerStatement
	if err := s.sdk.get(ctx, fmt.Sprintf("%s/%d/statement", customersPath, id), q, &statement); err != nil {
		return nil, err
	}
	return &statement, nil
}

package fsdk

import (
	"context"
	"fmt"
)

const budgetsPath = "/api/budgets"

// BudgetsService manages spending budgets per expense category.
type BudgetsService struct {
	sdk *Sdk
}

type CreateBudgetRequest struct {
	Name      string  `json:"name"`
	Category  string  `json:"category"`
	Period    string  `json:"period"`
	Amount    float64 `json:"amount"`
	StartDate Date    `json:"start_date"`
}

func (r CreateBudgetRequest) validate() error {
	if err := validateRequired("name", r.Name); err != nil {
		return err
	}
	if err := validateRequired("category", r.Category); err != nil {
		return err
	}
	switch r.Period {
	case BudgetPeriodMonthly, BudgetPeriodQuarterly, BudgetPeriodYearly:
	default:
		return validationError("period", "must be monthly, quarterly or yearly")
	}
	if r.Amount <= 0 {
		return validationError("amount", "must be positive")
	}
	return nil
}

type UpdateBudgetRequest struct {
	Name   *string  `json:"name,omitempty"`
	Amount *float64 `json:"amount,omitempty"`
}

func (s *BudgetsService) List(ctx context.Context, opts ListOptions) ([]Budget, error) {
	var budgets []Budget
	if err := s.sdk.get(ctx, budgetsPath, opts.values(), &budgets); err != nil {
		return nil, err
	}
	return budgets, nil
}

func (s *BudgetsService) Get(ctx context.Context, id int64) (*Budget, error) {
	var budget Budget
	if err := s.sdk.get(ctx, fmt.Sprintf("%s/%d", budgetsPath, id), nil, &budget); err != nil {
		return nil, err
	}
	return &budget, nil
}

func (s *BudgetsService) Create(ctx context.Context, req CreateBudgetRequest) (*Budget, error) {
	if err := req.validate(); err != nil {
		return nil, err
	}
	var budget Budget
	if err := s.sdk.post(ctx, budgetsPath, req, &budget); err != nil {
		return nil, err
	}
	return &budget, nil
}

func (s *BudgetsService) Update(ctx context.Context, id int64, req UpdateBudgetRequest) (*Budget, error) {
	if req.Amount != nil && *req.Amount <= 0 {
		return nil, validationError("amount", "must be positive")
	}
	var budget Budget
	if err := s.sdk.put(ctx, fmt.Sprintf("%s/%d", budgetsPath, id), req, &budget); err != nil {
		return nil, err
	}
	return &budget, nil
}

func (s *BudgetsService) Delete(ctx context.Context, id int64) error {
	return s.sdk.delete(ctx, fmt.Sprintf("%s/%d", budgetsPath, id))
}

package fsdk

import (
	"context"
	"fmt"
)

const reportsPath = "/api/reports"

// ReportsService generates and fetches financial reports. Generation is
// asynchronous: Generate returns a pending report that moves through
// processing to completed.
type ReportsService struct {
	sdk *Sdk
}

type GenerateReportRequest struct {
	Type        string `json:"report_type"`
	PeriodStart Date   `json:"period_start"`
	PeriodEnd   Date   `json:"period_end"`
}

func (r GenerateReportRequest) validate() error {
	switch r.Type {
	case ReportProfitLoss, ReportCashFlow, ReportAging, ReportTaxSummary:
	default:
		return validationError("report_type", fmt.Sprintf("unknown report type %q", r.Type))
	}
	if r.PeriodStart.IsZero() || r.PeriodEnd.IsZero() {
		return validationError("period", "start and end dates are required")
	}
	if r.PeriodEnd.Before(r.PeriodStart.Time) {
		return validationError("period_end", "must not be before period_start")
	}
	return nil
}

func (s *ReportsService) List(ctx context.Context, opts ListOptions) ([]Report, error) {
	var reports []Report
	if err := s.sdk.get(ctx, reportsPath, opts.values(), &reports); err != nil {
		return nil, err
	}
	return reports, nil
}

func (s *ReportsService) Get(ctx context.Context, id int64) (*Report, error) {
	var report Report
	if err := s.sdk.get(ctx, fmt.Sprintf("%s/%d", reportsPath, id), nil, &report); err != nil {
		return nil, err
	}
	return &report, nil
}

func (s *ReportsService) Generate(ctx context.Context, req GenerateReportRequest) (*Report, error) {
	if err := req.validate(); err != nil {
		return nil, err
	}
	var report Report
	if err := s.sdk.post(ctx, reportsPath+"/generate", req, &report); err != nil {
		return nil, err
	}
	return &report, nil
}

// Download fetches the rendered report file. Only completed reports
// have one.
func (s *ReportsService) Download(ctx context.Context, id int64) ([]byte, error) {
	var data []byte
	if err := s.sdk.get(ctx, fmt.Sprintf("%s/%d/download", reportsPath, id), nil, &data); err != nil {
		return nil, err
	}
	return data, nil
}

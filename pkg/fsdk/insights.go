package fsdk

import (
	"context"
	"net/url"
)

const insightsPath = "/api/insights"

// InsightsService reads the backend's generated financial insights.
type InsightsService struct {
	sdk *Sdk
}

type InsightListOptions struct {
	ListOptions
	Severity string
	Category string
}

func (s *InsightsService) List(ctx context.Context, opts InsightListOptions) ([]Insight, error) {
	q := opts.values()
	if opts.Severity != "" {
		q.Set("severity", opts.Severity)
	}
	if opts.Category != "" {
		q.Set("category", opts.Category)
	}
	var insights []Insight
	if err := s.sdk.get(ctx, insightsPath, q, &insights); err != nil {
		return nil, err
	}
	return insights, nil
}

// Summary fetches the aggregated highlights for a period such as
// "month" or "quarter". Empty period means the backend default.
func (s *InsightsService) Summary(ctx context.Context, period string) (*InsightSummary, error) {
	q := url.Values{}
	if period != "" {
		q.Set("period", period)
	}
	var summary InsightSummary
	if err := s.sdk.get(ctx, insightsPath+"/summary", q, &summary); err != nil {
		return nil, err
	}
	return &summary, nil
}

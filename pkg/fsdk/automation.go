package fsdk

import (
	"context"
	"fmt"
)

const automationPath = "/api/automation"

// AutomationService controls the backend's report scheduler and email
// delivery log.
type AutomationService struct {
	sdk *Sdk
}

type CreateScheduleRequest struct {
	Name       string   `json:"name"`
	ReportType string   `json:"report_type"`
	Cron       string   `json:"cron"`
	Recipients []string `json:"recipients"`
	Enabled    bool     `json:"enabled"`
}

func (r CreateScheduleRequest) validate() error {
	if err := validateRequired("name", r.Name); err != nil {
		return err
	}
	if err := validateRequired("cron", r.Cron); err != nil {
		return err
	}
	if len(r.Recipients) == 0 {
		return validationError("recipients", "needs at least one recipient")
	}
	for _, addr := range r.Recipients {
		if err := validateEmail("recipients", addr); err != nil {
			return err
		}
	}
	return nil
}

type UpdateScheduleRequest struct {
	Name       *string   `json:"name,omitempty"`
	Cron       *string   `json:"cron,omitempty"`
	Recipients *[]string `json:"recipients,omitempty"`
	Enabled    *bool     `json:"enabled,omitempty"`
}

type triggerReportRequest struct {
	ReportType string `json:"report_type"`
}

func (s *AutomationService) Status(ctx context.Context) (*AutomationStatus, error) {
	var status AutomationStatus
	if err := s.sdk.get(ctx, automationPath+"/status", nil, &status); err != nil {
		return nil, err
	}
	return &status, nil
}

func (s *AutomationService) ListSchedules(ctx context.Context) ([]Schedule, error) {
	var schedules []Schedule
	if err := s.sdk.get(ctx, automationPath+"/schedules", nil, &schedules); err != nil {
		return nil, err
	}
	return schedules, nil
}

func (s *AutomationService) CreateSchedule(ctx context.Context, req CreateScheduleRequest) (*Schedule, error) {
	if err := req.validate(); err != nil {
		return nil, err
	}
	var schedule Schedule
	if err := s.sdk.post(ctx, automationPath+"/schedules", req, &schedule); err != nil {
		return nil, err
	}
	return &schedule, nil
}

func (s *AutomationService) UpdateSchedule(ctx context.Context, id int64, req UpdateScheduleRequest) (*Schedule, error) {
	var schedule Schedule
	if err := s.sdk.put(ctx, fmt.Sprintf("%s/schedules/%d", automationPath, id), req, &schedule); err != nil {
		return nil, err
	}
	return &schedule, nil
}

func (s *AutomationService) DeleteSchedule(ctx context.Context, id int64) error {
	return s.sdk.delete(ctx, fmt.Sprintf("%s/schedules/%d", automationPath, id))
}

// EmailLog lists recent automated report emails, newest first.
func (s *AutomationService) EmailLog(ctx context.Context, opts ListOptions) ([]EmailLogEntry, error) {
	var entries []EmailLogEntry
	if err := s.sdk.get(ctx, automationPath+"/email-log", opts.values(), &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

// TriggerReport runs a scheduled report immediately instead of waiting
// for its next cron slot.
func (s *AutomationService) TriggerReport(ctx context.Context, reportType string) (*Report, error) {
	var report Report
	if err := s.sdk.post(ctx, automationPath+"/reports/trigger", triggerReportRequest{ReportType: reportType}, &report); err != nil {
		return nil, err
	}
	return &report, nil
}

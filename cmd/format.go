package cmd

import (
	"fmt"
	"strconv"
	"time"

	"github.com/fintracklabs/fintrack/pkg/fsdk"
)

// money renders amounts with two decimals for terminal output.
func money(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}

func yesNo(v bool) string {
	if v {
		return "yes"
	}
	return "no"
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return t.Local().Format("2006-01-02 15:04")
}

func formatTimePtr(t *time.Time) string {
	if t == nil {
		return "-"
	}
	return formatTime(*t)
}

func formatDate(d fsdk.Date) string {
	if d.IsZero() {
		return "-"
	}
	return d.String()
}

// parseID converts a positional id argument.
func parseID(arg string) (int64, error) {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid id %q", arg)
	}
	return id, nil
}

func parseDateFlag(name, value string) (fsdk.Date, error) {
	if value == "" {
		return fsdk.Date{}, nil
	}
	d, err := fsdk.ParseDate(value)
	if err != nil {
		return fsdk.Date{}, fmt.Errorf("--%s: %v", name, err)
	}
	return d, nil
}

package cmd

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/spf13/cobra"

	"github.com/fintracklabs/fintrack/pkg/fsdk"
)

var (
	generateType  string
	generateStart string
	generateEnd   string
	generateWait  bool
)

var reportsGenerateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Request a report for a period",
	Long: `Request a report. Generation runs on the server; pass --wait to poll
until it finishes and print the summary.

Examples:
  fintrack reports generate --type profit_loss --start 2026-01-01 --end 2026-06-30 --wait
  fintrack reports generate --type aging --start 2026-07-01 --end 2026-07-31`,
	RunE: func(cmd *cobra.Command, args []string) error {
		start, err := parseDateFlag("start", generateStart)
		if err != nil {
			return err
		}
		end, err := parseDateFlag("end", generateEnd)
		if err != nil {
			return err
		}

		sdk, err := newSdk(cmd)
		if err != nil {
			return err
		}

		report, err := sdk.Reports.Generate(cmd.Context(), fsdk.GenerateReportRequest{
			Type:        generateType,
			PeriodStart: start,
			PeriodEnd:   end,
		})
		if err != nil {
			exitIfSdkError(err)
		}

		fmt.Printf("✓ Report requested (id %d), status: %s\n", report.ID, report.Status)
		if !generateWait {
			fmt.Println("Check progress with 'fintrack reports show'.")
			return nil
		}

		fmt.Println("Waiting for the report to complete...")
		final, err := waitForReport(cmd.Context(), sdk, report.ID)
		if err != nil {
			exitIfSdkError(err)
		}

		fmt.Printf("Report completed: %s\n", final.Status)
		printReportSummary(final)
		return nil
	},
}

// waitForReport polls until the report leaves the pending/processing
// states.
func waitForReport(ctx context.Context, sdk *fsdk.Sdk, id int64) (*fsdk.Report, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Minute)
	defer cancel()

	ticker := time.NewTicker(2 * time.Second)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-ticker.C:
			report, err := sdk.Reports.Get(ctx, id)
			if err != nil {
				return nil, err
			}
			switch report.Status {
			case fsdk.ReportStatusCompleted, fsdk.ReportStatusFailed:
				return report, nil
			}
		}
	}
}

func printReportSummary(report *fsdk.Report) {
	if len(report.Summary) == 0 {
		return
	}
	keys := make([]string, 0, len(report.Summary))
	for k := range report.Summary {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	fmt.Println()
	for _, k := range keys {
		fmt.Printf("%-28s %14s\n", k, money(report.Summary[k]))
	}
}

func init() {
	reportsCmd.AddCommand(reportsGenerateCmd)
	reportsGenerateCmd.Flags().StringVar(&generateType, "type", "", "Report type: profit_loss, cash_flow, aging, tax_summary (required)")
	reportsGenerateCmd.Flags().StringVar(&generateStart, "start", "", "Period start YYYY-MM-DD (required)")
	reportsGenerateCmd.Flags().StringVar(&generateEnd, "end", "", "Period end YYYY-MM-DD (required)")
	reportsGenerateCmd.Flags().BoolVar(&generateWait, "wait", false, "Poll until generation finishes")
	reportsGenerateCmd.MarkFlagRequired("type")
	reportsGenerateCmd.MarkFlagRequired("start")
	reportsGenerateCmd.MarkFlagRequired("end")
}

package cmd

import (
	"fmt"
	"log"
	"sort"

	"github.com/spf13/cobra"
)

var summaryPeriod string

var insightsSummaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Show the aggregated insight summary for a period",
	Run: func(cmd *cobra.Command, args []string) {
		sdk, err := newSdk(cmd)
		if err != nil {
			log.Fatalf("failed to create client: %v", err)
		}

		summary, err := sdk.Insights.Summary(cmd.Context(), summaryPeriod)
		if err != nil {
			exitIfSdkError(err)
		}

		fmt.Printf("Summary for %s (generated %s)\n\n", summary.Period, formatTime(summary.GeneratedAt))
		for _, h := range summary.Highlights {
			fmt.Printf("• %s\n", h)
		}

		if len(summary.Metrics) > 0 {
			keys := make([]string, 0, len(summary.Metrics))
			for k := range summary.Metrics {
				keys = append(keys, k)
			}
			sort.Strings(keys)

			fmt.Println()
			for _, k := range keys {
				fmt.Printf("%-28s %14s\n", k, money(summary.Metrics[k]))
			}
		}
	},
}

func init() {
	insightsCmd.AddCommand(insightsSummaryCmd)
	insightsSummaryCmd.Flags().StringVar(&summaryPeriod, "period", "month", "Summary period, e.g. month or quarter")
}

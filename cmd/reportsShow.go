package cmd

import (
	"fmt"
	"log"

	"github.com/spf13/cobra"
)

var reportsShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show a report's status and summary figures",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		id, err := parseID(args[0])
		if err != nil {
			log.Fatalf("%v", err)
		}

		sdk, err := newSdk(cmd)
		if err != nil {
			log.Fatalf("failed to create client: %v", err)
		}

		report, err := sdk.Reports.Get(cmd.Context(), id)
		if err != nil {
			exitIfSdkError(err)
		}

		fmt.Printf("Report %d: %s\n", report.ID, report.Type)
		fmt.Printf("Period: %s to %s\n", formatDate(report.PeriodStart), formatDate(report.PeriodEnd))
		fmt.Printf("Status: %s\n", report.Status)
		fmt.Printf("Requested: %s\n", formatTime(report.CreatedAt))
		if report.CompletedAt != nil {
			fmt.Printf("Completed: %s\n", formatTimePtr(report.CompletedAt))
		}
		printReportSummary(report)
	},
}

func init() {
	reportsCmd.AddCommand(reportsShowCmd)
}

package cmd

import (
	"fmt"
	"log"

	"github.com/spf13/cobra"

	"github.com/fintracklabs/fintrack/pkg/fsdk"
)

var reportsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List generated reports",
	Run: func(cmd *cobra.Command, args []string) {
		sdk, err := newSdk(cmd)
		if err != nil {
			log.Fatalf("failed to create client: %v", err)
		}

		reports, err := sdk.Reports.List(cmd.Context(), fsdk.ListOptions{})
		if err != nil {
			exitIfSdkError(err)
		}

		if len(reports) == 0 {
			fmt.Println("No reports found.")
			return
		}

		fmt.Printf("%-6s %-14s %-12s %-12s %-12s %-18s\n", "ID", "TYPE", "FROM", "TO", "STATUS", "COMPLETED")
		for _, r := range reports {
			fmt.Printf("%-6d %-14s %-12s %-12s %-12s %-18s\n",
				r.ID, r.Type, formatDate(r.PeriodStart), formatDate(r.PeriodEnd),
				r.Status, formatTimePtr(r.CompletedAt))
		}
	},
}

func init() {
	reportsCmd.AddCommand(reportsListCmd)
}

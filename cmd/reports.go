package cmd

import (
	"github.com/spf13/cobra"
)

var reportsCmd = &cobra.Command{
	Use:   "reports",
	Short: "Generate and download financial reports",
	Long: `Generate financial reports (profit & loss, cash flow, receivables aging,
tax summary) and fetch the results.

Examples:
  fintrack reports generate --type profit_loss --start 2026-01-01 --end 2026-06-30 --wait
  fintrack reports show 12
  fintrack reports download 12`,
}

func init() {
	rootCmd.AddCommand(reportsCmd)
}

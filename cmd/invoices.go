package cmd

import (
	"github.com/spf13/cobra"
)

var invoicesCmd = &cobra.Command{
	Use:   "invoices",
	Short: "Manage invoices (list, show, create, pay, export)",
	Long: `Manage invoices in the FinTrack backend.

Examples:
  fintrack invoices list --status overdue
  fintrack invoices show 42
  fintrack invoices create --customer 7 --item "Consulting:10:120:21" --due 2026-09-30
  fintrack invoices pay 42
  fintrack invoices export --format xlsx`,
}

func init() {
	rootCmd.AddCommand(invoicesCmd)
}

package cmd

import (
	"github.com/spf13/cobra"
)

var paymentsCmd = &cobra.Command{
	Use:   "payments",
	Short: "Record and inspect incoming payments",
	Long: `Record payments and inspect how they were matched to invoices.

Examples:
  fintrack payments list --method bank_transfer
  fintrack payments record --amount 1452.00 --method bank_transfer --invoice 42
  fintrack payments unmatched`,
}

func init() {
	rootCmd.AddCommand(paymentsCmd)
}

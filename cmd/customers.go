package cmd

import (
	"github.com/spf13/cobra"
)

var customersCmd = &cobra.Command{
	Use:   "customers",
	Short: "Manage customers and their account statements",
	Long: `Manage the customer register.

Examples:
  fintrack customers list --search acme
  fintrack customers create --name "Acme GmbH" --email billing@acme.example
  fintrack customers statement 7 --from 2026-01-01 --to 2026-06-30`,
}

func init() {
	rootCmd.AddCommand(customersCmd)
}

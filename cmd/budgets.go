package cmd

import (
	"github.com/spf13/cobra"
)

var budgetsCmd = &cobra.Command{
	Use:   "budgets",
	Short: "Track spending budgets per category",
	Long: `Create and track spending budgets.

Examples:
  fintrack budgets list
  fintrack budgets create --name "Office Q3" --category office --period quarterly --amount 4500
  fintrack budgets update 3 --amount 5000`,
}

func init() {
	rootCmd.AddCommand(budgetsCmd)
}

package cmd

import (
	"fmt"
	"log"

	"github.com/spf13/cobra"

	"github.com/fintracklabs/fintrack/pkg/fsdk"
)

var budgetsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List budgets with spent and remaining amounts",
	Run: func(cmd *cobra.Command, args []string) {
		sdk, err := newSdk(cmd)
		if err != nil {
			log.Fatalf("failed to create client: %v", err)
		}

		budgets, err := sdk.Budgets.List(cmd.Context(), fsdk.ListOptions{})
		if err != nil {
			exitIfSdkError(err)
		}

		if len(budgets) == 0 {
			fmt.Println("No budgets found.")
			return
		}

		fmt.Printf("%-6s %-20s %-14s %-10s %12s %12s %12s\n",
			"ID", "NAME", "CATEGORY", "PERIOD", "AMOUNT", "SPENT", "REMAINING")
		for _, b := range budgets {
			marker := ""
			if b.Remaining < 0 {
				marker = " ⚠"
			}
			fmt.Printf("%-6d %-20.20s %-14.14s %-10s %12s %12s %12s%s\n",
				b.ID, b.Name, b.Category, b.Period,
				money(b.Amount), money(b.Spent), money(b.Remaining), marker)
		}
	},
}

func init() {
	budgetsCmd.AddCommand(budgetsListCmd)
}

package cmd

import (
	"fmt"
	"log"

	"github.com/spf13/cobra"

	"github.com/fintracklabs/fintrack/pkg/fsdk"
)

var (
	updateBudgetName   string
	updateBudgetAmount float64
)

var budgetsUpdateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Rename a budget or change its amount",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		id, err := parseID(args[0])
		if err != nil {
			log.Fatalf("%v", err)
		}

		var req fsdk.UpdateBudgetRequest
		if cmd.Flags().Changed("name") {
			req.Name = &updateBudgetName
		}
		if cmd.Flags().Changed("amount") {
			req.Amount = &updateBudgetAmount
		}
		if req.Name == nil && req.Amount == nil {
			log.Fatalf("nothing to update: pass --name and/or --amount")
		}

		sdk, err := newSdk(cmd)
		if err != nil {
			log.Fatalf("failed to create client: %v", err)
		}

		b, err := sdk.Budgets.Update(cmd.Context(), id, req)
		if err != nil {
			exitIfSdkError(err)
		}
		fmt.Printf("✓ Budget %q updated: %s per %s\n", b.Name, money(b.Amount), b.Period)
	},
}

func init() {
	budgetsCmd.AddCommand(budgetsUpdateCmd)
	budgetsUpdateCmd.Flags().StringVar(&updateBudgetName, "name", "", "New budget name")
	budgetsUpdateCmd.Flags().Float64Var(&updateBudgetAmount, "amount", 0, "New budgeted amount")
}

package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/fintracklabs/fintrack/pkg/fsdk"
)

var (
	createBudgetName     string
	createBudgetCategory string
	createBudgetPeriod   string
	createBudgetAmount   float64
	createBudgetStart    string
)

var budgetsCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a spending budget",
	RunE: func(cmd *cobra.Command, args []string) error {
		start, err := parseDateFlag("start", createBudgetStart)
		if err != nil {
			return err
		}
		if start.IsZero() {
			now := time.Now()
			start = fsdk.NewDate(now.Year(), now.Month(), 1)
		}

		sdk, err := newSdk(cmd)
		if err != nil {
			return err
		}

		b, err := sdk.Budgets.Create(cmd.Context(), fsdk.CreateBudgetRequest{
			Name:      createBudgetName,
			Category:  createBudgetCategory,
			Period:    createBudgetPeriod,
			Amount:    createBudgetAmount,
			StartDate: start,
		})
		if err != nil {
			exitIfSdkError(err)
		}

		fmt.Printf("✓ Budget %q created (id %d): %s per %s\n", b.Name, b.ID, money(b.Amount), b.Period)
		return nil
	},
}

func init() {
	budgetsCmd.AddCommand(budgetsCreateCmd)
	budgetsCreateCmd.Flags().StringVar(&createBudgetName, "name", "", "Budget name (required)")
	budgetsCreateCmd.Flags().StringVar(&createBudgetCategory, "category", "", "Expense category covered (required)")
	budgetsCreateCmd.Flags().StringVar(&createBudgetPeriod, "period", "monthly", "Period: monthly, quarterly or yearly")
	budgetsCreateCmd.Flags().Float64Var(&createBudgetAmount, "amount", 0, "Budgeted amount per period (required)")
	budgetsCreateCmd.Flags().StringVar(&createBudgetStart, "start", "", "Start date YYYY-MM-DD (default first of this month)")
	budgetsCreateCmd.MarkFlagRequired("name")
	budgetsCreateCmd.MarkFlagRequired("category")
	budgetsCreateCmd.MarkFlagRequired("amount")
}

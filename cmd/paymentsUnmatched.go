package cmd

import (
	"fmt"
	"log"

	"github.com/spf13/cobra"
)

var paymentsUnmatchedCmd = &cobra.Command{
	Use:   "unmatched",
	Short: "List payments the matcher could not pair with an invoice",
	Run: func(cmd *cobra.Command, args []string) {
		sdk, err := newSdk(cmd)
		if err != nil {
			log.Fatalf("failed to create client: %v", err)
		}

		payments, err := sdk.Payments.Unmatched(cmd.Context())
		if err != nil {
			exitIfSdkError(err)
		}

		if len(payments) == 0 {
			fmt.Println("All payments are matched.")
			return
		}

		fmt.Printf("%d unmatched payment(s):\n\n", len(payments))
		fmt.Printf("%-6s %-12s %12s %-14s %-20s\n", "ID", "DATE", "AMOUNT", "METHOD", "REFERENCE")
		for _, p := range payments {
			fmt.Printf("%-6d %-12s %12s %-14s %-20.20s\n",
				p.ID, formatDate(p.PaymentDate), money(p.Amount), p.Method, p.Reference)
		}
	},
}

func init() {
	paymentsCmd.AddCommand(paymentsUnmatchedCmd)
}

package cmd

import (
	"fmt"
	"log"

	"github.com/spf13/cobra"

	"github.com/fintracklabs/fintrack/pkg/fsdk"
)

var (
	paymentListInvoice  int64
	paymentListCustomer int64
	paymentListMethod   string
	paymentListSkip     int
	paymentListLimit    int
)

var paymentsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List payments, optionally filtered by invoice, customer or method",
	Run: func(cmd *cobra.Command, args []string) {
		sdk, err := newSdk(cmd)
		if err != nil {
			log.Fatalf("failed to create client: %v", err)
		}

		payments, err := sdk.Payments.List(cmd.Context(), fsdk.PaymentListOptions{
			ListOptions: fsdk.ListOptions{Skip: paymentListSkip, Limit: paymentListLimit},
			InvoiceID:   paymentListInvoice,
			CustomerID:  paymentListCustomer,
			Method:      paymentListMethod,
		})
		if err != nil {
			exitIfSdkError(err)
		}

		if len(payments) == 0 {
			fmt.Println("No payments found.")
			return
		}

		fmt.Printf("%-6s %-12s %12s %-14s %-16s %-8s\n", "ID", "DATE", "AMOUNT", "METHOD", "REFERENCE", "INVOICE")
		for _, p := range payments {
			invoice := "-"
			if p.InvoiceID != nil {
				invoice = fmt.Sprintf("%d", *p.InvoiceID)
				if p.MatchConfidence != nil {
					invoice += fmt.Sprintf(" (%.0f%%)", *p.MatchConfidence*100)
				}
			}
			fmt.Printf("%-6d %-12s %12s %-14s %-16.16s %-8s\n",
				p.ID, formatDate(p.PaymentDate), money(p.Amount), p.Method, p.Reference, invoice)
		}
	},
}

func init() {
	paymentsCmd.AddCommand(paymentsListCmd)
	paymentsListCmd.Flags().Int64Var(&paymentListInvoice, "invoice", 0, "Filter by invoice id")
	paymentsListCmd.Flags().Int64Var(&paymentListCustomer, "customer", 0, "Filter by customer id")
	paymentsListCmd.Flags().StringVar(&paymentListMethod, "method", "", "Filter by method (bank_transfer, card, cash, direct_debit)")
	paymentsListCmd.Flags().IntVar(&paymentListSkip, "skip", 0, "Pagination offset")
	paymentsListCmd.Flags().IntVar(&paymentListLimit, "limit", 0, "Maximum number of results")
}

package cmd

import (
	"fmt"
	"log"

	"github.com/spf13/cobra"

	"github.com/fintracklabs/fintrack/pkg/fsdk"
)

var (
	invoiceListStatus   string
	invoiceListCustomer int64
	invoiceListSkip     int
	invoiceListLimit    int
)

var invoicesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List invoices, optionally filtered by status or customer",
	Run: func(cmd *cobra.Command, args []string) {
		sdk, err := newSdk(cmd)
		if err != nil {
			log.Fatalf("failed to create client: %v", err)
		}

		invoices, err := sdk.Invoices.List(cmd.Context(), fsdk.InvoiceListOptions{
			ListOptions: fsdk.ListOptions{Skip: invoiceListSkip, Limit: invoiceListLimit},
			Status:      invoiceListStatus,
			CustomerID:  invoiceListCustomer,
		})
		if err != nil {
			exitIfSdkError(err)
		}

		if len(invoices) == 0 {
			fmt.Println("No invoices found.")
			return
		}

		fmt.Printf("%-6s %-12s %-24s %-10s %-12s %12s %12s\n",
			"ID", "NUMBER", "CUSTOMER", "STATUS", "DUE", "TOTAL", "PAID")
		for _, inv := range invoices {
			fmt.Printf("%-6d %-12s %-24.24s %-10s %-12s %12s %12s\n",
				inv.ID, inv.InvoiceNumber, inv.CustomerName, inv.Status,
				formatDate(inv.DueDate), money(inv.Total), money(inv.AmountPaid))
		}
	},
}

func init() {
	invoicesCmd.AddCommand(invoicesListCmd)
	invoicesListCmd.Flags().StringVar(&invoiceListStatus, "status", "", "Filter by status (draft, sent, paid, overdue, cancelled)")
	invoicesListCmd.Flags().Int64Var(&invoiceListCustomer, "customer", 0, "Filter by customer id")
	invoicesListCmd.Flags().IntVar(&invoiceListSkip, "skip", 0, "Pagination offset")
	invoicesListCmd.Flags().IntVar(&invoiceListLimit, "limit", 0, "Maximum number of results")
}

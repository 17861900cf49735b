package cmd

import (
	"fmt"
	"log"

	"github.com/spf13/cobra"
)

var invoicesShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show one invoice with its line items",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		id, err := parseID(args[0])
		if err != nil {
			log.Fatalf("%v", err)
		}

		sdk, err := newSdk(cmd)
		if err != nil {
			log.Fatalf("failed to create client: %v", err)
		}

		inv, err := sdk.Invoices.Get(cmd.Context(), id)
		if err != nil {
			exitIfSdkError(err)
		}

		fmt.Printf("Invoice %s (id %d)\n", inv.InvoiceNumber, inv.ID)
		fmt.Printf("Customer: %s (id %d)\n", inv.CustomerName, inv.CustomerID)
		fmt.Printf("Status: %s\n", inv.Status)
		fmt.Printf("Issued: %s  Due: %s\n", formatDate(inv.IssueDate), formatDate(inv.DueDate))
		if inv.Notes != "" {
			fmt.Printf("Notes: %s\n", inv.Notes)
		}

		if len(inv.Items) > 0 {
			fmt.Printf("\n%-32s %8s %12s %6s %12s\n", "DESCRIPTION", "QTY", "UNIT", "VAT%", "TOTAL")
			for _, item := range inv.Items {
				fmt.Printf("%-32.32s %8s %12s %6s %12s\n",
					item.Description, money(item.Quantity), money(item.UnitPrice),
					money(item.VATRate), money(item.Total))
			}
		}

		fmt.Printf("\nSubtotal: %s %s\n", money(inv.Subtotal), inv.Currency)
		fmt.Printf("VAT: %s %s\n", money(inv.VATAmount), inv.Currency)
		fmt.Printf("Total: %s %s\n", money(inv.Total), inv.Currency)
		fmt.Printf("Paid: %s %s\n", money(inv.AmountPaid), inv.Currency)
		fmt.Printf("Balance due: %s %s\n", money(inv.Total-inv.AmountPaid), inv.Currency)
	},
}

func init() {
	invoicesCmd.AddCommand(invoicesShowCmd)
}

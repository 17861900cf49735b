package cmd

import (
	"fmt"
	"log"

	"github.com/spf13/cobra"
)

var invoicesPayCmd = &cobra.Command{
	Use:   "pay <id>",
	Short: "Mark an invoice as paid in full",
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

		inv, err := sdk.Invoices.MarkPaid(cmd.Context(), id)
		if err != nil {
			exitIfSdkError(err)
		}
		fmt.Printf("✓ Invoice %s marked as paid (%s %s)\n", inv.InvoiceNumber, money(inv.Total), inv.Currency)
	},
}

func init() {
	invoicesCmd.AddCommand(invoicesPayCmd)
}

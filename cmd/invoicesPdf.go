package cmd

import (
	"fmt"
	"log"

	"github.com/spf13/cobra"
)

var invoicesPdfCmd = &cobra.Command{
	Use:   "pdf <id>",
	Short: "Render an invoice as a PDF document",
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

		exporter, _, err := newExporter(cmd)
		if err != nil {
			log.Fatalf("failed to open export store: %v", err)
		}

		artifact, err := exporter.InvoiceDocument(cmd.Context(), inv)
		if err != nil {
			log.Fatalf("pdf rendering failed: %v", err)
		}
		fmt.Printf("✓ Invoice %s written to %s\n", inv.InvoiceNumber, artifact.Path)
	},
}

func init() {
	invoicesCmd.AddCommand(invoicesPdfCmd)
}

package cmd

import (
	"fmt"
	"log"

	"github.com/spf13/cobra"

	"github.com/fintracklabs/fintrack/pkg/fexport"
	"github.com/fintracklabs/fintrack/pkg/fsdk"
)

var (
	invoiceExportFormat   string
	invoiceExportStatus   string
	invoiceExportCustomer int64
)

var invoicesExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export invoices to a local CSV or XLSX file",
	Run: func(cmd *cobra.Command, args []string) {
		format, err := fexport.ParseFormat(invoiceExportFormat)
		if err != nil {
			log.Fatalf("%v", err)
		}

		sdk, err := newSdk(cmd)
		if err != nil {
			log.Fatalf("failed to create client: %v", err)
		}

		invoices, err := sdk.Invoices.List(cmd.Context(), fsdk.InvoiceListOptions{
			Status:     invoiceExportStatus,
			CustomerID: invoiceExportCustomer,
		})
		if err != nil {
			exitIfSdkError(err)
		}

		exporter, _, err := newExporter(cmd)
		if err != nil {
			log.Fatalf("failed to open export store: %v", err)
		}

		artifact, err := exporter.Invoices(cmd.Context(), format, invoices)
		if err != nil {
			log.Fatalf("export failed: %v", err)
		}
		fmt.Printf("✓ Exported %d invoices to %s\n", len(invoices), artifact.Path)
	},
}

func init() {
	invoicesCmd.AddCommand(invoicesExportCmd)
	invoicesExportCmd.Flags().StringVar(&invoiceExportFormat, "format", "csv", "Output format: csv or xlsx")
	invoicesExportCmd.Flags().StringVar(&invoiceExportStatus, "status", "", "Only export invoices with this status")
	invoicesExportCmd.Flags().Int64Var(&invoiceExportCustomer, "customer", 0, "Only export invoices for this customer")
}

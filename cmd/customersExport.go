package cmd

import (
	"fmt"
	"log"

	"github.com/spf13/cobra"

	"github.com/fintracklabs/fintrack/pkg/fexport"
	"github.com/fintracklabs/fintrack/pkg/fsdk"
)

var customerExportFormat string

var customersExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the customer register to a local CSV or XLSX file",
	Run: func(cmd *cobra.Command, args []string) {
		format, err := fexport.ParseFormat(customerExportFormat)
		if err != nil {
			log.Fatalf("%v", err)
		}

		sdk, err := newSdk(cmd)
		if err != nil {
			log.Fatalf("failed to create client: %v", err)
		}

		customers, err := sdk.Customers.List(cmd.Context(), fsdk.CustomerListOptions{})
		if err != nil {
			exitIfSdkError(err)
		}

		exporter, _, err := newExporter(cmd)
		if err != nil {
			log.Fatalf("failed to open export store: %v", err)
		}

		artifact, err := exporter.Customers(cmd.Context(), format, customers)
		if err != nil {
			log.Fatalf("export failed: %v", err)
		}
		fmt.Printf("✓ Exported %d customers to %s\n", len(customers), artifact.Path)
	},
}

func init() {
	customersCmd.AddCommand(customersExportCmd)
	customersExportCmd.Flags().StringVar(&customerExportFormat, "format", "csv", "Output format: csv or xlsx")
}

package cmd

import (
	"fmt"
	"log"

	"github.com/spf13/cobra"

	"github.com/fintracklabs/fintrack/pkg/fexport"
	"github.com/fintracklabs/fintrack/pkg/fsdk"
)

var paymentExportFormat string

var paymentsExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export payments to a local CSV or XLSX file",
	Run: func(cmd *cobra.Command, args []string) {
		format, err := fexport.ParseFormat(paymentExportFormat)
		if err != nil {
			log.Fatalf("%v", err)
		}

		sdk, err := newSdk(cmd)
		if err != nil {
			log.Fatalf("failed to create client: %v", err)
		}

		payments, err := sdk.Payments.List(cmd.Context(), fsdk.PaymentListOptions{})
		if err != nil {
			exitIfSdkError(err)
		}

		exporter, _, err := newExporter(cmd)
		if err != nil {
			log.Fatalf("failed to open export store: %v", err)
		}

		artifact, err := exporter.Payments(cmd.Context(), format, payments)
		if err != nil {
			log.Fatalf("export failed: %v", err)
		}
		fmt.Printf("✓ Exported %d payments to %s\n", len(payments), artifact.Path)
	},
}

func init() {
	paymentsCmd.AddCommand(paymentsExportCmd)
	paymentsExportCmd.Flags().StringVar(&paymentExportFormat, "format", "csv", "Output format: csv or xlsx")
}

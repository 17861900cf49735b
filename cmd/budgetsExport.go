package cmd

import (
	"fmt"
	"log"

	"github.com/spf13/cobra"

	"github.com/fintracklabs/fintrack/pkg/fexport"
	"github.com/fintracklabs/fintrack/pkg/fsdk"
)

var budgetExportFormat string

var budgetsExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export budgets to a local CSV or XLSX file",
	Run: func(cmd *cobra.Command, args []string) {
		format, err := fexport.ParseFormat(budgetExportFormat)
		if err != nil {
			log.Fatalf("%v", err)
		}

		sdk, err := newSdk(cmd)
		if err != nil {
			log.Fatalf("failed to create client: %v", err)
		}

		budgets, err := sdk.Budgets.List(cmd.Context(), fsdk.ListOptions{})
		if err != nil {
			exitIfSdkError(err)
		}

		exporter, _, err := newExporter(cmd)
		if err != nil {
			log.Fatalf("failed to open export store: %v", err)
		}

		artifact, err := exporter.Budgets(cmd.Context(), format, budgets)
		if err != nil {
			log.Fatalf("export failed: %v", err)
		}
		fmt.Printf("✓ Exported %d budgets to %s\n", len(budgets), artifact.Path)
	},
}

func init() {
	budgetsCmd.AddCommand(budgetsExportCmd)
	budgetsExportCmd.Flags().StringVar(&budgetExportFormat, "format", "csv", "Output format: csv or xlsx")
}

package cmd

import (
	"fmt"
	"log"

	"github.com/spf13/cobra"
)

var reportsExportCmd = &cobra.Command{
	Use:   "export <id>",
	Short: "Render a completed report's summary as a local PDF",
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

		report, err := sdk.Reports.Get(cmd.Context(), id)
		if err != nil {
			exitIfSdkError(err)
		}

		exporter, _, err := newExporter(cmd)
		if err != nil {
			log.Fatalf("failed to open export store: %v", err)
		}

		artifact, err := exporter.ReportDocument(cmd.Context(), report)
		if err != nil {
			log.Fatalf("pdf rendering failed: %v", err)
		}
		fmt.Printf("✓ Report written to %s\n", artifact.Path)
	},
}

func init() {
	reportsCmd.AddCommand(reportsExportCmd)
}

package cmd

import (
	"fmt"
	"log"

	"github.com/spf13/cobra"

	"github.com/fintracklabs/fintrack/pkg/fsdk"
)

var reportsDownloadCmd = &cobra.Command{
	Use:   "download <id>",
	Short: "Download the server-rendered report file",
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
		if report.Status != fsdk.ReportStatusCompleted {
			log.Fatalf("report %d is not ready yet (status: %s)", id, report.Status)
		}

		data, err := sdk.Reports.Download(cmd.Context(), id)
		if err != nil {
			exitIfSdkError(err)
		}

		exporter, _, err := newExporter(cmd)
		if err != nil {
			log.Fatalf("failed to open export store: %v", err)
		}

		filename := fmt.Sprintf("%s-%d.pdf", report.Type, report.ID)
		artifact, err := exporter.SaveRaw(cmd.Context(), "reports", filename, data, "application/pdf")
		if err != nil {
			log.Fatalf("failed to save report: %v", err)
		}
		fmt.Printf("✓ Report saved to %s (%d bytes)\n", artifact.Path, artifact.Size)
	},
}

func init() {
	reportsCmd.AddCommand(reportsDownloadCmd)
}

package cmd

import (
	"fmt"
	"log"

	"github.com/spf13/cobra"
)

var automationTriggerCmd = &cobra.Command{
	Use:   "trigger <report-type>",
	Short: "Trigger a scheduled report run immediately",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		sdk, err := newSdk(cmd)
		if err != nil {
			log.Fatalf("failed to create client: %v", err)
		}

		report, err := sdk.Automation.TriggerReport(cmd.Context(), args[0])
		if err != nil {
			exitIfSdkError(err)
		}
		fmt.Printf("🚀 Report run triggered (id %d), status: %s\n", report.ID, report.Status)
	},
}

func init() {
	automationCmd.AddCommand(automationTriggerCmd)
}

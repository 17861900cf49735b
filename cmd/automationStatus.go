package cmd

import (
	"fmt"
	"log"

	"github.com/spf13/cobra"
)

var automationStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the scheduler's health",
	Run: func(cmd *cobra.Command, args []string) {
		sdk, err := newSdk(cmd)
		if err != nil {
			log.Fatalf("failed to create client: %v", err)
		}

		status, err := sdk.Automation.Status(cmd.Context())
		if err != nil {
			exitIfSdkError(err)
		}

		running := "stopped"
		if status.SchedulerRunning {
			running = "running"
		}
		fmt.Printf("Scheduler: %s\n", running)
		fmt.Printf("Active schedules: %d\n", status.ActiveSchedules)
		fmt.Printf("Last run: %s\n", formatTimePtr(status.LastRunAt))
		fmt.Printf("Emails sent today: %d\n", status.EmailsSentToday)
	},
}

func init() {
	automationCmd.AddCommand(automationStatusCmd)
}

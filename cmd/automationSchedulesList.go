package cmd

import (
	"fmt"
	"log"
	"strings"

	"github.com/spf13/cobra"
)

var schedulesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List report schedules",
	Run: func(cmd *cobra.Command, args []string) {
		sdk, err := newSdk(cmd)
		if err != nil {
			log.Fatalf("failed to create client: %v", err)
		}

		schedules, err := sdk.Automation.ListSchedules(cmd.Context())
		if err != nil {
			exitIfSdkError(err)
		}

		if len(schedules) == 0 {
			fmt.Println("No schedules configured.")
			return
		}

		for _, s := range schedules {
			state := "enabled"
			if !s.Enabled {
				state = "disabled"
			}
			fmt.Printf("%d: %s (%s, %s)\n", s.ID, s.Name, s.ReportType, state)
			fmt.Printf("   cron: %s\n", s.Cron)
			fmt.Printf("   recipients: %s\n", strings.Join(s.Recipients, ", "))
			fmt.Printf("   last run: %s  next run: %s\n\n",
				formatTimePtr(s.LastRunAt), formatTimePtr(s.NextRunAt))
		}
	},
}

func init() {
	schedulesCmd.AddCommand(schedulesListCmd)
}

package cmd

import (
	"fmt"
	"log"

	"github.com/spf13/cobra"

	"github.com/fintracklabs/fintrack/pkg/fsdk"
)

var (
	updateSchedName       string
	updateSchedCron       string
	updateSchedRecipients []string
	updateSchedEnable     bool
	updateSchedDisable    bool
)

var schedulesUpdateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Change a schedule; only the given flags change",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		id, err := parseID(args[0])
		if err != nil {
			log.Fatalf("%v", err)
		}
		if updateSchedEnable && updateSchedDisable {
			log.Fatalf("--enable and --disable are mutually exclusive")
		}

		var req fsdk.UpdateScheduleRequest
		changed := false
		if cmd.Flags().Changed("name") {
			req.Name = &updateSchedName
			changed = true
		}
		if cmd.Flags().Changed("cron") {
			req.Cron = &updateSchedCron
			changed = true
		}
		if cmd.Flags().Changed("to") {
			req.Recipients = &updateSchedRecipients
			changed = true
		}
		if updateSchedEnable || updateSchedDisable {
			enabled := updateSchedEnable
			req.Enabled = &enabled
			changed = true
		}
		if !changed {
			log.Fatalf("nothing to update: pass at least one of --name, --cron, --to, --enable, --disable")
		}

		sdk, err := newSdk(cmd)
		if err != nil {
			log.Fatalf("failed to create client: %v", err)
		}

		s, err := sdk.Automation.UpdateSchedule(cmd.Context(), id, req)
		if err != nil {
			exitIfSdkError(err)
		}
		fmt.Printf("✓ Schedule %q updated\n", s.Name)
	},
}

func init() {
	schedulesCmd.AddCommand(schedulesUpdateCmd)
	schedulesUpdateCmd.Flags().StringVar(&updateSchedName, "name", "", "New schedule name")
	schedulesUpdateCmd.Flags().StringVar(&updateSchedCron, "cron", "", "New cron expression")
	schedulesUpdateCmd.Flags().StringArrayVar(&updateSchedRecipients, "to", nil, "Replace the recipient list (repeatable)")
	schedulesUpdateCmd.Flags().BoolVar(&updateSchedEnable, "enable", false, "Resume the schedule")
	schedulesUpdateCmd.Flags().BoolVar(&updateSchedDisable, "disable", false, "Pause the schedule")
}

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/fintracklabs/fintrack/pkg/fsdk"
)

var (
	createSchedName       string
	createSchedType       string
	createSchedCron       string
	createSchedRecipients []string
	createSchedDisabled   bool
)

var schedulesCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a recurring report schedule",
	Long: `Create a schedule that generates a report and emails it.

Examples:
  fintrack automation schedules create --name "Monthly P&L" \
    --type profit_loss --cron "0 8 1 * *" \
    --to cfo@company.com --to accounting@company.com`,
	RunE: func(cmd *cobra.Command, args []string) error {
		sdk, err := newSdk(cmd)
		if err != nil {
			return err
		}

		s, err := sdk.Automation.CreateSchedule(cmd.Context(), fsdk.CreateScheduleRequest{
			Name:       createSchedName,
			ReportType: createSchedType,
			Cron:       createSchedCron,
			Recipients: createSchedRecipients,
			Enabled:    !createSchedDisabled,
		})
		if err != nil {
			exitIfSdkError(err)
		}

		fmt.Printf("✓ Schedule %q created (id %d)\n", s.Name, s.ID)
		if s.NextRunAt != nil {
			fmt.Printf("Next run: %s\n", formatTimePtr(s.NextRunAt))
		}
		return nil
	},
}

func init() {
	schedulesCmd.AddCommand(schedulesCreateCmd)
	schedulesCreateCmd.Flags().StringVar(&createSchedName, "name", "", "Schedule name (required)")
	schedulesCreateCmd.Flags().StringVar(&createSchedType, "type", "", "Report type: profit_loss, cash_flow, aging, tax_summary (required)")
	schedulesCreateCmd.Flags().StringVar(&createSchedCron, "cron", "", `Cron expression, e.g. "0 8 1 * *" (required)`)
	schedulesCreateCmd.Flags().StringArrayVar(&createSchedRecipients, "to", nil, "Recipient email (repeatable, required)")
	schedulesCreateCmd.Flags().BoolVar(&createSchedDisabled, "disabled", false, "Create the schedule paused")
	schedulesCreateCmd.MarkFlagRequired("name")
	schedulesCreateCmd.MarkFlagRequired("type")
	schedulesCreateCmd.MarkFlagRequired("cron")
	schedulesCreateCmd.MarkFlagRequired("to")
}

package cmd

import (
	"github.com/spf13/cobra"
)

var automationCmd = &cobra.Command{
	Use:   "automation",
	Short: "Control scheduled reports and email delivery",
	Long: `Inspect and control the backend's automation: the report scheduler,
its email delivery log, and one-off triggers.

Examples:
  fintrack automation status
  fintrack automation schedules list
  fintrack automation trigger profit_loss`,
}

func init() {
	rootCmd.AddCommand(automationCmd)
}

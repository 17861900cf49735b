package cmd

import (
	"github.com/spf13/cobra"
)

var schedulesCmd = &cobra.Command{
	Use:   "schedules",
	Short: "Manage recurring report schedules",
}

func init() {
	automationCmd.AddCommand(schedulesCmd)
}

package cmd

import (
	"github.com/spf13/cobra"
)

var insightsCmd = &cobra.Command{
	Use:   "insights",
	Short: "Read generated financial insights",
}

func init() {
	rootCmd.AddCommand(insightsCmd)
}

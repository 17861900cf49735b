package cmd

import (
	"fmt"
	"log"

	"github.com/spf13/cobra"
)

var schedulesDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a report schedule",
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

		if err := sdk.Automation.DeleteSchedule(cmd.Context(), id); err != nil {
			exitIfSdkError(err)
		}
		fmt.Printf("Schedule %d deleted\n", id)
	},
}

func init() {
	schedulesCmd.AddCommand(schedulesDeleteCmd)
}

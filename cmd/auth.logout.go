package cmd

import (
	"fmt"
	"log"

	"github.com/spf13/cobra"
)

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "End the current session and forget stored credentials",
	Run: func(cmd *cobra.Command, args []string) {
		sdk, err := newSdk(cmd)
		if err != nil {
			log.Fatalf("failed to create client: %v", err)
		}

		if err := sdk.Logout(cmd.Context()); err != nil {
			exitIfSdkError(err)
		}
		fmt.Println("Logged out")
	},
}

func init() {
	authCmd.AddCommand(logoutCmd)
}

package cmd

import (
	"fmt"
	"log"

	"github.com/spf13/cobra"
)

var passwdCmd = &cobra.Command{
	Use:   "change-password",
	Short: "Change the password of the current account",
	Run: func(cmd *cobra.Command, args []string) {
		sdk, err := newSdk(cmd)
		if err != nil {
			log.Fatalf("failed to create client: %v", err)
		}

		current := promptPassword("Current password: ")
		updated := promptPassword("New password: ")
		if confirm := promptPassword("Confirm new password: "); confirm != updated {
			log.Fatalf("passwords do not match")
		}

		if err := sdk.ChangePassword(cmd.Context(), current, updated); err != nil {
			exitIfSdkError(err)
		}
		fmt.Println("Password changed")
	},
}

func init() {
	authCmd.AddCommand(passwdCmd)
}

package cmd

import (
	"fmt"
	"log"

	"github.com/spf13/cobra"
)

var meCmd = &cobra.Command{
	Use:   "me",
	Short: "Show information about the current authenticated user",
	Run: func(cmd *cobra.Command, args []string) {
		sdk, err := newSdk(cmd)
		if err != nil {
			log.Fatalf("failed to create client: %v", err)
		}

		user, err := sdk.CurrentUser(cmd.Context())
		if err != nil {
			exitIfSdkError(err)
		}

		fmt.Printf("Logged in: %s (%s)\n", user.FullName, user.Role)
		fmt.Printf("Email: %s\n", user.Email)
		if user.CompanyName != "" {
			fmt.Printf("Company: %s\n", user.CompanyName)
		}
		fmt.Printf("ID: %d\n", user.ID)
		if !user.IsVerified {
			fmt.Println("⚠ Email not verified")
		}
	},
}

func init() {
	rootCmd.AddCommand(meCmd)
}

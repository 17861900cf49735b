package cmd

import (
	"fmt"
	"log"

	"github.com/spf13/cobra"

	"github.com/fintracklabs/fintrack/pkg/fsdk"
)

var adminUsersListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all user accounts",
	Run: func(cmd *cobra.Command, args []string) {
		sdk, err := newSdk(cmd)
		if err != nil {
			log.Fatalf("failed to create client: %v", err)
		}

		users, err := sdk.Admin.ListUsers(cmd.Context(), fsdk.ListOptions{})
		if err != nil {
			exitIfSdkError(err)
		}

		fmt.Printf("%-6s %-28s %-24s %-12s %-8s %-8s\n", "ID", "EMAIL", "NAME", "ROLE", "ACTIVE", "VERIFIED")
		for _, u := range users {
			fmt.Printf("%-6d %-28.28s %-24.24s %-12s %-8s %-8s\n",
				u.ID, u.Email, u.FullName, u.Role, yesNo(u.IsActive), yesNo(u.IsVerified))
		}
	},
}

func init() {
	adminUsersCmd.AddCommand(adminUsersListCmd)
}

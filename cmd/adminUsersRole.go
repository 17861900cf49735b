package cmd

import (
	"fmt"
	"log"

	"github.com/spf13/cobra"
)

var adminUsersRoleCmd = &cobra.Command{
	Use:   "role <id> <role>",
	Short: "Change a user's role (admin, accountant or viewer)",
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		id, err := parseID(args[0])
		if err != nil {
			log.Fatalf("%v", err)
		}

		sdk, err := newSdk(cmd)
		if err != nil {
			log.Fatalf("failed to create client: %v", err)
		}

		user, err := sdk.Admin.UpdateUserRole(cmd.Context(), id, args[1])
		if err != nil {
			exitIfSdkError(err)
		}
		fmt.Printf("✓ %s is now %s\n", user.Email, user.Role)
	},
}

func init() {
	adminUsersCmd.AddCommand(adminUsersRoleCmd)
}

package cmd

import (
	"github.com/spf13/cobra"
)

var adminUsersCmd = &cobra.Command{
	Use:   "users",
	Short: "Manage user accounts",
}

func init() {
	adminCmd.AddCommand(adminUsersCmd)
}

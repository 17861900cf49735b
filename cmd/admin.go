package cmd

import (
	"github.com/spf13/cobra"
)

var adminCmd = &cobra.Command{
	Use:   "admin",
	Short: "Administrative operations (requires the admin role)",
	Long: `Administrative operations. The backend enforces the admin role; other
accounts get a permission error.

Examples:
  fintrack admin users list
  fintrack admin users role 5 accountant
  fintrack admin users delete 5`,
}

func init() {
	rootCmd.AddCommand(adminCmd)
}

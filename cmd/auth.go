package cmd

import (
	"github.com/spf13/cobra"
)

var authCmd = &cobra.Command{
	Use:   "auth",
	Short: "Manage authentication with the FinTrack API (login, logout, status)",
	Long: `Manage authentication against a FinTrack backend.

Subcommands let you sign in (login), create an account (register), end the
session (logout), and inspect the current authentication status. The token
pair is stored in the system keychain with a config-file fallback, scoped to
the configured base URL, so parallel sessions against staging and production
do not clobber each other.

Examples:
  fintrack auth login --email you@company.com
  fintrack auth login --sso
  fintrack auth status
  fintrack auth logout`,
}

func init() {
	rootCmd.AddCommand(authCmd)
}

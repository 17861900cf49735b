package cmd

import (
	"github.com/spf13/cobra"
)

var exportsCmd = &cobra.Command{
	Use:   "exports",
	Short: "Manage locally exported files",
	Long: `List and clean up files produced by the export commands. Exports live
under the configured export directory (exportDir in the config file, or the
per-user default).

Examples:
  fintrack exports list
  fintrack exports list invoices/
  fintrack exports clean reports/`,
}

func init() {
	rootCmd.AddCommand(exportsCmd)
}

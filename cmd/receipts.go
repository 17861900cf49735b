package cmd

import (
	"github.com/spf13/cobra"
)

var receiptsCmd = &cobra.Command{
	Use:   "receipts",
	Short: "Upload receipt files and track their extraction",
	Long: `Push receipt files (PDF or photo) through the extraction pipeline and
inspect the results. For a hands-off workflow see 'fintrack watch', which
uploads everything dropped into an inbox directory.

Examples:
  fintrack receipts upload scans/lunch.pdf --category travel
  fintrack receipts list --status processed`,
}

func init() {
	rootCmd.AddCommand(receiptsCmd)
}

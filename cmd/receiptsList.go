package cmd

import (
	"fmt"
	"log"

	"github.com/spf13/cobra"

	"github.com/fintracklabs/fintrack/pkg/fsdk"
)

var (
	receiptListStatus   string
	receiptListCategory string
	receiptListSkip     int
	receiptListLimit    int
)

var receiptsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List uploaded receipts",
	Run: func(cmd *cobra.Command, args []string) {
		sdk, err := newSdk(cmd)
		if err != nil {
			log.Fatalf("failed to create client: %v", err)
		}

		receipts, err := sdk.Receipts.List(cmd.Context(), fsdk.ReceiptListOptions{
			ListOptions: fsdk.ListOptions{Skip: receiptListSkip, Limit: receiptListLimit},
			Status:      receiptListStatus,
			Category:    receiptListCategory,
		})
		if err != nil {
			exitIfSdkError(err)
		}

		if len(receipts) == 0 {
			fmt.Println("No receipts found.")
			return
		}

		fmt.Printf("%-6s %-28s %-16s %12s %-12s %-10s\n", "ID", "FILE", "VENDOR", "AMOUNT", "DATE", "STATUS")
		for _, r := range receipts {
			amount := "-"
			if r.Amount != 0 {
				amount = money(r.Amount)
			}
			fmt.Printf("%-6d %-28.28s %-16.16s %12s %-12s %-10s\n",
				r.ID, r.Filename, r.Vendor, amount, formatDate(r.ReceiptDate), r.Status)
		}
	},
}

func init() {
	receiptsCmd.AddCommand(receiptsListCmd)
	receiptsListCmd.Flags().StringVar(&receiptListStatus, "status", "", "Filter by status (pending, processed, failed)")
	receiptsListCmd.Flags().StringVar(&receiptListCategory, "category", "", "Filter by expense category")
	receiptsListCmd.Flags().IntVar(&receiptListSkip, "skip", 0, "Pagination offset")
	receiptsListCmd.Flags().IntVar(&receiptListLimit, "limit", 0, "Maximum number of results")
}

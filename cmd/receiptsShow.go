package cmd

import (
	"fmt"
	"log"

	"github.com/spf13/cobra"
)

var receiptsShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show one receipt and its extracted fields",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		id, err := parseID(args[0])
		if err != nil {
			log.Fatalf("%v", err)
		}

		sdk, err := newSdk(cmd)
		if err != nil {
			log.Fatalf("failed to create client: %v", err)
		}

		r, err := sdk.Receipts.Get(cmd.Context(), id)
		if err != nil {
			exitIfSdkError(err)
		}

		fmt.Printf("Receipt %d: %s\n", r.ID, r.Filename)
		fmt.Printf("Status: %s\n", r.Status)
		if r.Vendor != "" {
			fmt.Printf("Vendor: %s\n", r.Vendor)
		}
		if r.Amount != 0 {
			fmt.Printf("Amount: %s %s\n", money(r.Amount), r.Currency)
		}
		if r.Category != "" {
			fmt.Printf("Category: %s\n", r.Category)
		}
		if !r.ReceiptDate.IsZero() {
			fmt.Printf("Receipt date: %s\n", formatDate(r.ReceiptDate))
		}
		fmt.Printf("Uploaded: %s\n", formatTime(r.UploadedAt))
	},
}

func init() {
	receiptsCmd.AddCommand(receiptsShowCmd)
}

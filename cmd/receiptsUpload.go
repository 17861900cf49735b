package cmd

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/fintracklabs/fintrack/pkg/fsdk"
)

var (
	uploadVendor   string
	uploadCategory string
)

var receiptsUploadCmd = &cobra.Command{
	Use:   "upload <file>",
	Short: "Upload a receipt file for extraction",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		path := args[0]
		data, err := os.ReadFile(path)
		if err != nil {
			log.Fatalf("failed to read %s: %v", path, err)
		}

		sdk, err := newSdk(cmd)
		if err != nil {
			log.Fatalf("failed to create client: %v", err)
		}

		receipt, err := sdk.Receipts.Upload(cmd.Context(), fsdk.UploadReceiptRequest{
			Filename: filepath.Base(path),
			Data:     data,
			Vendor:   uploadVendor,
			Category: uploadCategory,
		})
		if err != nil {
			exitIfSdkError(err)
		}

		fmt.Printf("✓ Receipt uploaded (id %d), status: %s\n", receipt.ID, receipt.Status)
		fmt.Println("Extraction runs in the background; check progress with 'fintrack receipts show'.")
	},
}

func init() {
	receiptsCmd.AddCommand(receiptsUploadCmd)
	receiptsUploadCmd.Flags().StringVar(&uploadVendor, "vendor", "", "Vendor hint for the extraction pipeline")
	receiptsUploadCmd.Flags().StringVar(&uploadCategory, "category", "", "Expense category hint")
}

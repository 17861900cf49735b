package cmd

import (
	"fmt"
	"log"

	"github.com/spf13/cobra"
)

var paymentsDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a mistakenly recorded payment",
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

		if err := sdk.Payments.Delete(cmd.Context(), id); err != nil {
			exitIfSdkError(err)
		}
		fmt.Printf("Payment %d deleted\n", id)
	},
}

func init() {
	paymentsCmd.AddCommand(paymentsDeleteCmd)
}

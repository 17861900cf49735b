package cmd

import (
	"fmt"
	"log"

	"github.com/spf13/cobra"

	"github.com/fintracklabs/fintrack/pkg/fsdk"
)

var emailLogLimit int

var automationEmailLogCmd = &cobra.Command{
	Use:   "email-log",
	Short: "Show recently sent report emails",
	Run: func(cmd *cobra.Command, args []string) {
		sdk, err := newSdk(cmd)
		if err != nil {
			log.Fatalf("failed to create client: %v", err)
		}

		entries, err := sdk.Automation.EmailLog(cmd.Context(), fsdk.ListOptions{Limit: emailLogLimit})
		if err != nil {
			exitIfSdkError(err)
		}

		if len(entries) == 0 {
			fmt.Println("No emails sent yet.")
			return
		}

		fmt.Printf("%-6s %-28s %-36s %-10s %-18s\n", "ID", "RECIPIENT", "SUBJECT", "STATUS", "SENT")
		for _, e := range entries {
			fmt.Printf("%-6d %-28.28s %-36.36s %-10s %-18s\n",
				e.ID, e.Recipient, e.Subject, e.Status, formatTime(e.SentAt))
		}
	},
}

func init() {
	automationCmd.AddCommand(automationEmailLogCmd)
	automationEmailLogCmd.Flags().IntVar(&emailLogLimit, "limit", 50, "Maximum number of entries")
}

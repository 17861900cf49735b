package cmd

import (
	"fmt"
	"log"

	"github.com/spf13/cobra"

	"github.com/fintracklabs/fintrack/internal/watch"
)

var watchLogStatus string

var watchLogCmd = &cobra.Command{
	Use:   "log",
	Short: "Show the upload journal of the inbox watcher",
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := watch.LoadConfig()
		if err != nil {
			log.Fatalf("%v", err)
		}

		dir := cfg.JournalDir
		if dir == "" {
			dir, err = watch.DefaultJournalDir()
			if err != nil {
				log.Fatalf("%v", err)
			}
		}

		entries, err := watch.NewJournal(dir).List(watch.Status(watchLogStatus))
		if err != nil {
			log.Fatalf("failed to read journal: %v", err)
		}

		if len(entries) == 0 {
			fmt.Println("Journal is empty.")
			return
		}

		fmt.Printf("%-18s %-32s %-10s %-8s %s\n", "WHEN", "FILE", "STATUS", "RECEIPT", "ERROR")
		for _, e := range entries {
			receipt := "-"
			if e.ReceiptID != 0 {
				receipt = fmt.Sprintf("%d", e.ReceiptID)
			}
			fmt.Printf("%-18s %-32.32s %-10s %-8s %s\n",
				formatTime(e.CreatedAt), e.File, e.Status, receipt, e.Error)
		}
	},
}

func init() {
	watchCmd.AddCommand(watchLogCmd)
	watchLogCmd.Flags().StringVar(&watchLogStatus, "status", "", "Filter by status (pending, uploaded, failed)")
}

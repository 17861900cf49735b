package cmd

import (
	"context"
	"errors"
	"fmt"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/fintracklabs/fintrack/internal/watch"
)

var (
	watchInbox    string
	watchCategory string
	watchSettle   time.Duration
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Watch an inbox directory and upload dropped receipts",
	Long: `Run the receipt inbox daemon: every supported file (pdf, png, jpg,
jpeg, heic) dropped into the inbox is uploaded for extraction once it has
finished writing, then moved to the processed subdirectory. Outcomes are
journaled; see 'fintrack watch log'.

The daemon is configured through FINTRACK_WATCH_* environment variables
(a .env file is honored); flags override the environment.

Examples:
  fintrack watch --inbox ~/receipts
  FINTRACK_WATCH_INBOX_DIR=~/receipts fintrack watch --category office`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := watch.LoadConfig()
		if err != nil {
			return err
		}
		if watchInbox != "" {
			cfg.InboxDir = watchInbox
		}
		if watchCategory != "" {
			cfg.Category = watchCategory
		}
		if cmd.Flags().Changed("settle") {
			cfg.Settle = watchSettle
		}

		sdk, err := newSdk(cmd)
		if err != nil {
			return err
		}

		svc, err := watch.New(cfg, sdk.Receipts, newLogger())
		if err != nil {
			return err
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		fmt.Printf("🚀 Watching %s (Ctrl-C to stop)\n", cfg.InboxDir)
		if err := svc.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
			return err
		}
		fmt.Println("Watcher stopped")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(watchCmd)
	watchCmd.Flags().StringVar(&watchInbox, "inbox", "", "Inbox directory (overrides FINTRACK_WATCH_INBOX_DIR)")
	watchCmd.Flags().StringVar(&watchCategory, "category", "", "Category attached to every upload")
	watchCmd.Flags().DurationVar(&watchSettle, "settle", 2*time.Second, "Quiet period before a file is uploaded")
}

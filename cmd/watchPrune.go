package cmd

import (
	"fmt"
	"log"
	"time"

	"github.com/spf13/cobra"

	"github.com/fintracklabs/fintrack/internal/watch"
)

var watchPruneOlderThan time.Duration

var watchPruneCmd = &cobra.Command{
	Use:   "prune",
	Short: "Remove old finished entries from the upload journal",
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

		cutoff := time.Now().Add(-watchPruneOlderThan)
		removed, err := watch.NewJournal(dir).Prune(cutoff)
		if err != nil {
			log.Fatalf("failed to prune journal: %v", err)
		}
		fmt.Printf("🧹 Removed %d journal entries older than %s\n", removed, watchPruneOlderThan)
	},
}

func init() {
	watchCmd.AddCommand(watchPruneCmd)
	watchPruneCmd.Flags().DurationVar(&watchPruneOlderThan, "older-than", 720*time.Hour, "Remove finished entries older than this")
}

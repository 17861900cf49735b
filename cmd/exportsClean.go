package cmd

import (
	"fmt"
	"log"

	"github.com/spf13/cobra"
)

var exportsCleanAll bool

var exportsCleanCmd = &cobra.Command{
	Use:   "clean [prefix]",
	Short: "Delete exported files under a prefix",
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		prefix := ""
		if len(args) == 1 {
			prefix = args[0]
		}
		if prefix == "" && !exportsCleanAll {
			log.Fatalf("refusing to delete everything: pass a prefix or --all")
		}

		_, store, err := newExporter(cmd)
		if err != nil {
			log.Fatalf("failed to open export store: %v", err)
		}

		artifacts, err := store.List(cmd.Context(), prefix)
		if err != nil {
			log.Fatalf("failed to list exports: %v", err)
		}
		if len(artifacts) == 0 {
			fmt.Println("Nothing to delete.")
			return
		}

		if err := store.DeletePrefix(cmd.Context(), prefix); err != nil {
			log.Fatalf("failed to delete exports: %v", err)
		}
		fmt.Printf("Deleted %d export(s)\n", len(artifacts))
	},
}

func init() {
	exportsCmd.AddCommand(exportsCleanCmd)
	exportsCleanCmd.Flags().BoolVar(&exportsCleanAll, "all", false, "Delete every export")
}

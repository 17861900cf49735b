package cmd

import (
	"fmt"
	"log"

	"github.com/spf13/cobra"
)

var exportsListCmd = &cobra.Command{
	Use:   "list [prefix]",
	Short: "List exported files, newest first",
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		prefix := ""
		if len(args) == 1 {
			prefix = args[0]
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
			fmt.Println("No exports found.")
			return
		}

		fmt.Printf("Export directory: %s\n\n", store.Root())
		fmt.Printf("%-44s %10s %-18s\n", "KEY", "SIZE", "CREATED")
		for _, a := range artifacts {
			fmt.Printf("%-44.44s %10d %-18s\n", a.Key, a.Size, formatTime(a.CreatedAt))
		}
	},
}

func init() {
	exportsCmd.AddCommand(exportsListCmd)
}

package cmd

import (
	"fmt"
	"log"

	"github.com/spf13/cobra"

	"github.com/fintracklabs/fintrack/pkg/fsdk"
)

var (
	insightListSeverity string
	insightListCategory string
	insightListLimit    int
)

var severityGlyphs = map[string]string{
	fsdk.SeverityInfo:     "ℹ️ ",
	fsdk.SeverityWarning:  "⚠️ ",
	fsdk.SeverityCritical: "❌",
}

var insightsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List insights, newest first",
	Run: func(cmd *cobra.Command, args []string) {
		sdk, err := newSdk(cmd)
		if err != nil {
			log.Fatalf("failed to create client: %v", err)
		}

		insights, err := sdk.Insights.List(cmd.Context(), fsdk.InsightListOptions{
			ListOptions: fsdk.ListOptions{Limit: insightListLimit},
			Severity:    insightListSeverity,
			Category:    insightListCategory,
		})
		if err != nil {
			exitIfSdkError(err)
		}

		if len(insights) == 0 {
			fmt.Println("No insights yet.")
			return
		}

		for _, in := range insights {
			glyph := severityGlyphs[in.Severity]
			fmt.Printf("%s %s [%s]\n", glyph, in.Title, in.Category)
			fmt.Printf("   %s\n", in.Body)
			fmt.Printf("   %s\n\n", formatTime(in.CreatedAt))
		}
	},
}

func init() {
	insightsCmd.AddCommand(insightsListCmd)
	insightsListCmd.Flags().StringVar(&insightListSeverity, "severity", "", "Filter by severity (info, warning, critical)")
	insightsListCmd.Flags().StringVar(&insightListCategory, "category", "", "Filter by category")
	insightsListCmd.Flags().IntVar(&insightListLimit, "limit", 0, "Maximum number of results")
}

package cmd

import (
	"fmt"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/fintracklabs/fintrack/pkg/fsdk"
)

var dashboardCmd = &cobra.Command{
	Use:   "dashboard",
	Short: "Stream live dashboard updates to the terminal",
	Long: `Connect to the realtime stream and print dashboard metrics, alerts and
transactions as they happen. Reconnects automatically if the connection
drops. Stop with Ctrl-C.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		sdk, err := newSdk(cmd)
		if err != nil {
			return err
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		logger := newLogger()
		client := sdk.Realtime(fsdk.RealtimeOptions{})
		logger.Info("connecting to the realtime stream", "client_id", client.ClientID())

		done := make(chan error, 1)
		go func() { done <- client.Run(ctx) }()

		for event := range client.Events() {
			printEvent(event)
		}

		<-done
		logger.Info("stream closed")
		return nil
	},
}

func printEvent(event fsdk.Event) {
	switch event.Type {
	case fsdk.EventConnected:
		fmt.Println("✓ Connected")
	case fsdk.EventDashboardUpdate:
		m, err := event.Dashboard()
		if err != nil {
			return
		}
		fmt.Printf("Revenue %s | Expenses %s | Net %s | Cash %s | Outstanding %s (%d overdue)\n",
			money(m.Revenue), money(m.Expenses), money(m.NetIncome),
			money(m.CashBalance), money(m.OutstandingInvoices), m.OverdueInvoices)
	case fsdk.EventMetricUpdate:
		m, err := event.Metric()
		if err != nil {
			return
		}
		fmt.Printf("%s = %s\n", m.Name, money(m.Value))
	case fsdk.EventAlert:
		a, err := event.Alert()
		if err != nil {
			return
		}
		fmt.Printf("⚠️  [%s] %s\n", a.Level, a.Message)
	case fsdk.EventNewTransaction:
		t, err := event.Transaction()
		if err != nil {
			return
		}
		fmt.Printf("%s: %s (%s)\n", t.Kind, money(t.Amount), t.Description)
	case fsdk.EventReportComplete:
		r, err := event.ReportComplete()
		if err != nil {
			return
		}
		fmt.Printf("📋 Report %d (%s) completed\n", r.ReportID, r.ReportType)
	case fsdk.EventHeartbeat:
		// Keepalive only.
	}
}

func init() {
	rootCmd.AddCommand(dashboardCmd)
}

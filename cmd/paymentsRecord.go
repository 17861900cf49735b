package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/fintracklabs/fintrack/pkg/fsdk"
)

var (
	recordAmount    float64
	recordMethod    string
	recordInvoice   int64
	recordCustomer  int64
	recordReference string
	recordDate      string
)

var paymentsRecordCmd = &cobra.Command{
	Use:   "record",
	Short: "Record an incoming payment",
	Long: `Record a payment. Link it to an invoice with --invoice, or leave it
unlinked and let the backend's matcher pair it with an open invoice.

Examples:
  fintrack payments record --amount 1452.00 --method bank_transfer --invoice 42
  fintrack payments record --amount 89.90 --method card --reference "POS 2026-08-21"`,
	RunE: func(cmd *cobra.Command, args []string) error {
		date, err := parseDateFlag("date", recordDate)
		if err != nil {
			return err
		}
		if date.IsZero() {
			now := time.Now()
			date = fsdk.NewDate(now.Year(), now.Month(), now.Day())
		}

		req := fsdk.RecordPaymentRequest{
			Amount:      recordAmount,
			Method:      recordMethod,
			Reference:   recordReference,
			PaymentDate: date,
		}
		if recordInvoice > 0 {
			req.InvoiceID = &recordInvoice
		}
		if recordCustomer > 0 {
			req.CustomerID = &recordCustomer
		}

		sdk, err := newSdk(cmd)
		if err != nil {
			return err
		}

		p, err := sdk.Payments.Record(cmd.Context(), req)
		if err != nil {
			exitIfSdkError(err)
		}

		fmt.Printf("✓ Payment recorded (id %d): %s via %s\n", p.ID, money(p.Amount), p.Method)
		if p.InvoiceID != nil {
			fmt.Printf("Matched to invoice %d\n", *p.InvoiceID)
		} else {
			fmt.Println("Not yet matched to an invoice")
		}
		return nil
	},
}

func init() {
	paymentsCmd.AddCommand(paymentsRecordCmd)
	paymentsRecordCmd.Flags().Float64Var(&recordAmount, "amount", 0, "Payment amount (required)")
	paymentsRecordCmd.Flags().StringVar(&recordMethod, "method", "", "Payment method: bank_transfer, card, cash, direct_debit (required)")
	paymentsRecordCmd.Flags().Int64Var(&recordInvoice, "invoice", 0, "Invoice to settle")
	paymentsRecordCmd.Flags().Int64Var(&recordCustomer, "customer", 0, "Customer the payment belongs to")
	paymentsRecordCmd.Flags().StringVar(&recordReference, "reference", "", "Bank or POS reference")
	paymentsRecordCmd.Flags().StringVar(&recordDate, "date", "", "Payment date YYYY-MM-DD (default today)")
	paymentsRecordCmd.MarkFlagRequired("amount")
	paymentsRecordCmd.MarkFlagRequired("method")
}

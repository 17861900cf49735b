package cmd

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/fintracklabs/fintrack/pkg/fsdk"
)

var (
	createInvCustomer int64
	createInvItems    []string
	createInvIssue    string
	createInvDue      string
	createInvCurrency string
	createInvNotes    string
)

var invoicesCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create an invoice from line items",
	Long: `Create an invoice. Each --item takes "description:quantity:unit_price:vat_rate";
the flag can be repeated for multiple lines.

Examples:
  fintrack invoices create --customer 7 \
    --item "Consulting:10:120:21" \
    --item "Travel expenses:1:250:0" \
    --due 2026-09-30`,
	RunE: func(cmd *cobra.Command, args []string) error {
		items, err := parseInvoiceItems(createInvItems)
		if err != nil {
			return err
		}

		issue, err := parseDateFlag("issue", createInvIssue)
		if err != nil {
			return err
		}
		if issue.IsZero() {
			now := time.Now()
			issue = fsdk.NewDate(now.Year(), now.Month(), now.Day())
		}
		due, err := parseDateFlag("due", createInvDue)
		if err != nil {
			return err
		}
		if due.IsZero() {
			d := issue.AddDate(0, 0, 30)
			due = fsdk.NewDate(d.Year(), d.Month(), d.Day())
		}

		sdk, err := newSdk(cmd)
		if err != nil {
			return err
		}

		inv, err := sdk.Invoices.Create(cmd.Context(), fsdk.CreateInvoiceRequest{
			CustomerID: createInvCustomer,
			IssueDate:  issue,
			DueDate:    due,
			Currency:   createInvCurrency,
			Notes:      createInvNotes,
			Items:      items,
		})
		if err != nil {
			exitIfSdkError(err)
		}

		fmt.Printf("✓ Invoice %s created (id %d)\n", inv.InvoiceNumber, inv.ID)
		fmt.Printf("Total: %s %s, due %s\n", money(inv.Total), inv.Currency, formatDate(inv.DueDate))
		return nil
	},
}

// parseInvoiceItems parses "description:quantity:unit_price:vat_rate"
// flags. The three numeric fields are taken from the end, so the
// description may contain colons.
func parseInvoiceItems(raw []string) ([]fsdk.InvoiceItem, error) {
	items := make([]fsdk.InvoiceItem, 0, len(raw))
	for _, arg := range raw {
		parts := strings.Split(arg, ":")
		if len(parts) < 4 {
			return nil, fmt.Errorf("invalid --item %q: want description:quantity:unit_price:vat_rate", arg)
		}
		n := len(parts)
		desc := strings.Join(parts[:n-3], ":")

		qty, err := strconv.ParseFloat(parts[n-3], 64)
		if err != nil {
			return nil, fmt.Errorf("invalid quantity in --item %q", arg)
		}
		price, err := strconv.ParseFloat(parts[n-2], 64)
		if err != nil {
			return nil, fmt.Errorf("invalid unit price in --item %q", arg)
		}
		vat, err := strconv.ParseFloat(parts[n-1], 64)
		if err != nil {
			return nil, fmt.Errorf("invalid vat rate in --item %q", arg)
		}

		items = append(items, fsdk.InvoiceItem{
			Description: desc,
			Quantity:    qty,
			UnitPrice:   price,
			VATRate:     vat,
		})
	}
	return items, nil
}

func init() {
	invoicesCmd.AddCommand(invoicesCreateCmd)
	invoicesCreateCmd.Flags().Int64Var(&createInvCustomer, "customer", 0, "Customer id (required)")
	invoicesCreateCmd.Flags().StringArrayVar(&createInvItems, "item", nil, `Line item "description:quantity:unit_price:vat_rate" (repeatable)`)
	invoicesCreateCmd.Flags().StringVar(&createInvIssue, "issue", "", "Issue date YYYY-MM-DD (default today)")
	invoicesCreateCmd.Flags().StringVar(&createInvDue, "due", "", "Due date YYYY-MM-DD (default issue + 30 days)")
	invoicesCreateCmd.Flags().StringVar(&createInvCurrency, "currency", "", "Currency code, e.g. EUR")
	invoicesCreateCmd.Flags().StringVar(&createInvNotes, "notes", "", "Free-form notes")
	invoicesCreateCmd.MarkFlagRequired("customer")
	invoicesCreateCmd.MarkFlagRequired("item")
}

package fexport

import (
	"encoding/csv"
	"io"
	"strconv"

	"github.com/fintracklabs/fintrack/pkg/fsdk"
)

func money(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}

func writeInvoicesCSV(w io.Writer, invoices []fsdk.Invoice) error {
	cw := csv.NewWriter(w)
	header := []string{"invoice_number", "customer", "status", "issue_date", "due_date", "currency", "subtotal", "vat_amount", "total", "amount_paid"}
	if err := cw.Write(header); err != nil {
		return err
	}
	for _, inv := range invoices {
		record := []string{
			inv.InvoiceNumber,
			inv.CustomerName,
			inv.Status,
			inv.IssueDate.String(),
			inv.DueDate.String(),
			inv.Currency,
			money(inv.Subtotal),
			money(inv.VATAmount),
			money(inv.Total),
			money(inv.AmountPaid),
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func writeCustomersCSV(w io.Writer, customers []fsdk.Customer) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"name", "email", "phone", "vat_number", "balance"}); err != nil {
		return err
	}
	for _, c := range customers {
		if err := cw.Write([]string{c.Name, c.Email, c.Phone, c.VATNumber, money(c.Balance)}); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func writePaymentsCSV(w io.Writer, payments []fsdk.Payment) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"payment_date", "amount", "method", "reference", "invoice_id"}); err != nil {
		return err
	}
	for _, p := range payments {
		invoiceID := ""
		if p.InvoiceID != nil {
			invoiceID = strconv.FormatInt(*p.InvoiceID, 10)
		}
		record := []string{p.PaymentDate.String(), money(p.Amount), p.Method, p.Reference, invoiceID}
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func writeBudgetsCSV(w io.Writer, budgets []fsdk.Budget) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"name", "category", "period", "amount", "spent", "remaining"}); err != nil {
		return err
	}
	for _, b := range budgets {
		record := []string{b.Name, b.Category, b.Period, money(b.Amount), money(b.Spent), money(b.Remaining)}
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

package fexport

import (
	"fmt"
	"io"

	"github.com/fintracklabs/fintrack/pkg/fsdk"
	"github.com/xuri/excelize/v2"
)

// sheetWriter fills one worksheet row by row, starting below the header.
type sheetWriter struct {
	f     *excelize.File
	sheet string
	row   int
	err   error
}

func newSheet(name string, header []string) (*sheetWriter, error) {
	f := excelize.NewFile()
	if err := f.SetSheetName("Sheet1", name); err != nil {
		f.Close()
		return nil, err
	}
	sw := &sheetWriter{f: f, sheet: name, row: 1}
	sw.writeRow(headerCells(header))
	return sw, sw.err
}

func headerCells(header []string) []any {
	cells := make([]any, len(header))
	for i, h := range header {
		cells[i] = h
	}
	return cells
}

func (sw *sheetWriter) writeRow(values []any) {
	if sw.err != nil {
		return
	}
	for col, value := range values {
		cell, err := excelize.CoordinatesToCellName(col+1, sw.row)
		if err != nil {
			sw.err = err
			return
		}
		if err := sw.f.SetCellValue(sw.sheet, cell, value); err != nil {
			sw.err = err
			return
		}
	}
	sw.row++
}

func (sw *sheetWriter) flush(w io.Writer) error {
	defer sw.f.Close()
	if sw.err != nil {
		return fmt.Errorf("building workbook: %w", sw.err)
	}
	return sw.f.Write(w)
}

func writeInvoicesXLSX(w io.Writer, invoices []fsdk.Invoice) error {
	sw, err := newSheet("Invoices", []string{"Invoice", "Customer", "Status", "Issue date", "Due date", "Currency", "Subtotal", "VAT", "Total", "Paid"})
	if err != nil {
		return err
	}
	for _, inv := range invoices {
		sw.writeRow([]any{
			inv.InvoiceNumber, inv.CustomerName, inv.Status,
			inv.IssueDate.String(), inv.DueDate.String(), inv.Currency,
			inv.Subtotal, inv.VATAmount, inv.Total, inv.AmountPaid,
		})
	}
	return sw.flush(w)
}

func writeCustomersXLSX(w io.Writer, customers []fsdk.Customer) error {
	sw, err := newSheet("Customers", []string{"Name", "Email", "Phone", "VAT number", "Balance"})
	if err != nil {
		return err
	}
	for _, c := range customers {
		sw.writeRow([]any{c.Name, c.Email, c.Phone, c.VATNumber, c.Balance})
	}
	return sw.flush(w)
}

func writePaymentsXLSX(w io.Writer, payments []fsdk.Payment) error {
	sw, err := newSheet("Payments", []string{"Date", "Amount", "Method", "Reference", "Invoice"})
	if err != nil {
		return err
	}
	for _, p := range payments {
		var invoiceID any
		if p.InvoiceID != nil {
			invoiceID = *p.InvoiceID
		}
		sw.writeRow([]any{p.PaymentDate.String(), p.Amount, p.Method, p.Reference, invoiceID})
	}
	return sw.flush(w)
}

func writeBudgetsXLSX(w io.Writer, budgets []fsdk.Budget) error {
	sw, err := newSheet("Budgets", []string{"Name", "Category", "Period", "Amount", "Spent", "Remaining"})
	if err != nil {
		return err
	}
	for _, b := range budgets {
		sw.writeRow([]any{b.Name, b.Category, b.Period, b.Amount, b.Spent, b.Remaining})
	}
	return sw.flush(w)
}

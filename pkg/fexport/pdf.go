package fexport

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/fintracklabs/fintrack/pkg/fsdk"
	"github.com/go-pdf/fpdf"
)

const (
	pdfFont     = "Helvetica"
	pdfLineH    = 7.0
	pdfLabelW   = 60.0
	pdfAmountW  = 30.0
	pdfFullW    = 190.0
	pdfMarginLn = 4.0
)

func newPDF(title string) *fpdf.Fpdf {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetTitle(title, false)
	pdf.AddPage()
	pdf.SetFont(pdfFont, "B", 18)
	pdf.CellFormat(pdfFullW, 10, title, "", 1, "L", false, 0, "")
	pdf.Ln(pdfMarginLn)
	return pdf
}

func pdfKeyValue(pdf *fpdf.Fpdf, key, value string) {
	pdf.SetFont(pdfFont, "B", 10)
	pdf.CellFormat(pdfLabelW, pdfLineH, key, "", 0, "L", false, 0, "")
	pdf.SetFont(pdfFont, "", 10)
	pdf.CellFormat(pdfFullW-pdfLabelW, pdfLineH, value, "", 1, "L", false, 0, "")
}

// writeInvoicePDF renders a single invoice as a printable document.
func writeInvoicePDF(w io.Writer, invoice *fsdk.Invoice) error {
	pdf := newPDF("Invoice " + invoice.InvoiceNumber)

	pdfKeyValue(pdf, "Customer", invoice.CustomerName)
	pdfKeyValue(pdf, "Status", strings.ToUpper(invoice.Status))
	pdfKeyValue(pdf, "Issue date", invoice.IssueDate.String())
	pdfKeyValue(pdf, "Due date", invoice.DueDate.String())
	pdf.Ln(pdfMarginLn)

	// Line item table
	pdf.SetFont(pdfFont, "B", 10)
	pdf.SetFillColor(230, 230, 230)
	pdf.CellFormat(80, pdfLineH, "Description", "1", 0, "L", true, 0, "")
	pdf.CellFormat(20, pdfLineH, "Qty", "1", 0, "R", true, 0, "")
	pdf.CellFormat(30, pdfLineH, "Unit price", "1", 0, "R", true, 0, "")
	pdf.CellFormat(20, pdfLineH, "VAT %", "1", 0, "R", true, 0, "")
	pdf.CellFormat(40, pdfLineH, "Total", "1", 1, "R", true, 0, "")

	pdf.SetFont(pdfFont, "", 10)
	for _, item := range invoice.Items {
		total := item.Total
		if total == 0 {
			total = item.Quantity * item.UnitPrice * (1 + item.VATRate/100)
		}
		pdf.CellFormat(80, pdfLineH, item.Description, "1", 0, "L", false, 0, "")
		pdf.CellFormat(20, pdfLineH, fmt.Sprintf("%g", item.Quantity), "1", 0, "R", false, 0, "")
		pdf.CellFormat(30, pdfLineH, money(item.UnitPrice), "1", 0, "R", false, 0, "")
		pdf.CellFormat(20, pdfLineH, fmt.Sprintf("%g", item.VATRate), "1", 0, "R", false, 0, "")
		pdf.CellFormat(40, pdfLineH, money(total), "1", 1, "R", false, 0, "")
	}
	pdf.Ln(pdfMarginLn)

	currency := invoice.Currency
	totalLine := func(label string, amount float64, bold bool) {
		style := ""
		if bold {
			style = "B"
		}
		pdf.SetFont(pdfFont, style, 10)
		pdf.CellFormat(pdfFullW-2*pdfAmountW, pdfLineH, "", "", 0, "L", false, 0, "")
		pdf.CellFormat(pdfAmountW, pdfLineH, label, "", 0, "R", false, 0, "")
		pdf.CellFormat(pdfAmountW, pdfLineH, money(amount)+" "+currency, "", 1, "R", false, 0, "")
	}
	totalLine("Subtotal", invoice.Subtotal, false)
	totalLine("VAT", invoice.VATAmount, false)
	totalLine("Total", invoice.Total, true)
	totalLine("Paid", invoice.AmountPaid, false)
	totalLine("Balance due", invoice.Total-invoice.AmountPaid, true)

	return pdf.Output(w)
}

// writeReportPDF renders a completed report's summary figures.
func writeReportPDF(w io.Writer, report *fsdk.Report) error {
	title := fmt.Sprintf("%s %s to %s",
		reportTitle(report.Type), report.PeriodStart, report.PeriodEnd)
	pdf := newPDF(title)

	pdfKeyValue(pdf, "Status", report.Status)
	if report.CompletedAt != nil {
		pdfKeyValue(pdf, "Completed", report.CompletedAt.Format("2006-01-02 15:04"))
	}
	pdf.Ln(pdfMarginLn)

	if len(report.Summary) > 0 {
		keys := make([]string, 0, len(report.Summary))
		for k := range report.Summary {
			keys = append(keys, k)
		}
		sort.Strings(keys)

		pdf.SetFont(pdfFont, "B", 10)
		pdf.SetFillColor(230, 230, 230)
		pdf.CellFormat(120, pdfLineH, "Metric", "1", 0, "L", true, 0, "")
		pdf.CellFormat(70, pdfLineH, "Amount", "1", 1, "R", true, 0, "")
		pdf.SetFont(pdfFont, "", 10)
		for _, k := range keys {
			pdf.CellFormat(120, pdfLineH, metricLabel(k), "1", 0, "L", false, 0, "")
			pdf.CellFormat(70, pdfLineH, money(report.Summary[k]), "1", 1, "R", false, 0, "")
		}
	}

	return pdf.Output(w)
}

func reportTitle(reportType string) string {
	switch reportType {
	case fsdk.ReportProfitLoss:
		return "Profit & Loss"
	case fsdk.ReportCashFlow:
		return "Cash Flow"
	case fsdk.ReportAging:
		return "Receivables Aging"
	case fsdk.ReportTaxSummary:
		return "Tax Summary"
	}
	return metricLabel(reportType)
}

func metricLabel(key string) string {
	words := strings.Split(key, "_")
	for i, word := range words {
		if word == "" {
			continue
		}
		words[i] = strings.ToUpper(word[:1]) + word[1:]
	}
	return strings.Join(words, " ")
}

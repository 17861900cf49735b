package fexport

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"time"

	"github.com/fintracklabs/fintrack/pkg/fsdk"
)

// Format selects the output file type.
type Format string

const (
	FormatCSV  Format = "csv"
	FormatXLSX Format = "xlsx"
	FormatPDF  Format = "pdf"
)

// ParseFormat validates a user-supplied format string.
func ParseFormat(s string) (Format, error) {
	switch Format(s) {
	case FormatCSV, FormatXLSX, FormatPDF:
		return Format(s), nil
	}
	return "", fmt.Errorf("%w: %q (want csv, xlsx or pdf)", ErrBadFormat, s)
}

func (f Format) contentType() string {
	switch f {
	case FormatCSV:
		return "text/csv"
	case FormatXLSX:
		return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	case FormatPDF:
		return "application/pdf"
	}
	return "application/octet-stream"
}

// Exporter renders data sets and saves the files through a Store.
type Exporter struct {
	store Store
	now   func() time.Time
}

func NewExporter(store Store) *Exporter {
	return &Exporter{store: store, now: time.Now}
}

func (e *Exporter) filename(resource string, format Format) string {
	stamp := e.now().Format("20060102-150405")
	return fmt.Sprintf("%s-%s.%s", resource, stamp, format)
}

// exportTable renders a row set in the requested tabular format and
// saves it under the resource's prefix.
func exportTable[T any](e *Exporter, ctx context.Context, resource string, format Format, rows []T,
	writeCSV, writeXLSX func(io.Writer, []T) error) (*Artifact, error) {

	if len(rows) == 0 {
		return nil, ErrEmptyInput
	}
	var buf bytes.Buffer
	var err error
	switch format {
	case FormatCSV:
		err = writeCSV(&buf, rows)
	case FormatXLSX:
		err = writeXLSX(&buf, rows)
	default:
		err = fmt.Errorf("%w: %s export supports csv and xlsx", ErrBadFormat, resource)
	}
	if err != nil {
		return nil, err
	}

	key := ResourceKey(resource, e.filename(resource, format))
	meta := map[string]string{"rows": fmt.Sprint(len(rows))}
	return e.store.Save(ctx, key, &buf, format.contentType(), meta)
}

// Invoices exports an invoice list as CSV or XLSX.
func (e *Exporter) Invoices(ctx context.Context, format Format, invoices []fsdk.Invoice) (*Artifact, error) {
	return exportTable(e, ctx, "invoices", format, invoices, writeInvoicesCSV, writeInvoicesXLSX)
}

// Customers exports the customer ledger as CSV or XLSX.
func (e *Exporter) Customers(ctx context.Context, format Format, customers []fsdk.Customer) (*Artifact, error) {
	return exportTable(e, ctx, "customers", format, customers, writeCustomersCSV, writeCustomersXLSX)
}

// Payments exports a payment list as CSV or XLSX.
func (e *Exporter) Payments(ctx context.Context, format Format, payments []fsdk.Payment) (*Artifact, error) {
	return exportTable(e, ctx, "payments", format, payments, writePaymentsCSV, writePaymentsXLSX)
}

// Budgets exports budget utilization as CSV or XLSX.
func (e *Exporter) Budgets(ctx context.Context, format Format, budgets []fsdk.Budget) (*Artifact, error) {
	return exportTable(e, ctx, "budgets", format, budgets, writeBudgetsCSV, writeBudgetsXLSX)
}

// InvoiceDocument renders one invoice as a printable PDF.
func (e *Exporter) InvoiceDocument(ctx context.Context, invoice *fsdk.Invoice) (*Artifact, error) {
	var buf bytes.Buffer
	if err := writeInvoicePDF(&buf, invoice); err != nil {
		return nil, err
	}
	filename := fmt.Sprintf("%s.pdf", invoice.InvoiceNumber)
	meta := map[string]string{"invoice": invoice.InvoiceNumber}
	return e.store.Save(ctx, ResourceKey("invoices", filename), &buf, FormatPDF.contentType(), meta)
}

// ReportDocument renders a completed report's summary as a PDF.
func (e *Exporter) ReportDocument(ctx context.Context, report *fsdk.Report) (*Artifact, error) {
	var buf bytes.Buffer
	if err := writeReportPDF(&buf, report); err != nil {
		return nil, err
	}
	filename := fmt.Sprintf("%s-%s-%s.pdf", report.Type, report.PeriodStart, report.PeriodEnd)
	meta := map[string]string{"report_type": report.Type}
	return e.store.Save(ctx, ResourceKey("reports", filename), &buf, FormatPDF.contentType(), meta)
}

// SaveRaw stores pre-rendered bytes, e.g. a report file downloaded from
// the backend.
func (e *Exporter) SaveRaw(ctx context.Context, resource, filename string, data []byte, contentType string) (*Artifact, error) {
	return e.store.Save(ctx, ResourceKey(resource, filename), bytes.NewReader(data), contentType, nil)
}

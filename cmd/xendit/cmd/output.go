package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/mrfansi/xendit-go/internal/model"
)

func outputJSON(w io.Writer, v any) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}

func outputTable(w io.Writer, headers []string, rows [][]string) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, strings.Join(headers, "\t"))
	underline := make([]string, len(headers))
	for i, h := range headers {
		underline[i] = strings.Repeat("-", len(h))
	}
	fmt.Fprintln(tw, strings.Join(underline, "\t"))
	for _, row := range rows {
		fmt.Fprintln(tw, strings.Join(row, "\t"))
	}
	return tw.Flush()
}

// outputInvoices writes invoices as a table of the named columns, or as
// their full wire form with --format json
func outputInvoices(w io.Writer, invoices []model.InvoiceResponse, columns []column) error {
	if outputFormat == "json" {
		out := make([]map[string]any, len(invoices))
		for i, inv := range invoices {
			out[i] = inv.ToMap()
		}
		return outputJSON(w, out)
	}

	headers := make([]string, len(columns))
	for i, c := range columns {
		headers[i] = c.header
	}
	rows := make([][]string, len(invoices))
	for i, inv := range invoices {
		row := make([]string, len(columns))
		for j, c := range columns {
			row[j] = c.value(inv)
		}
		rows[i] = row
	}
	return outputTable(w, headers, rows)
}

type column struct {
	header string
	value  func(model.InvoiceResponse) string
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

var (
	colID            = column{"ID", func(i model.InvoiceResponse) string { return i.ID }}
	colStatus        = column{"Status", func(i model.InvoiceResponse) string { return i.Status.String() }}
	colAmount        = column{"Amount", func(i model.InvoiceResponse) string { return i.Amount.String() }}
	colCurrency      = column{"Currency", currencyOf}
	colInvoiceURL    = column{"Invoice URL", func(i model.InvoiceResponse) string { return deref(i.InvoiceURL) }}
	colCreatedAt     = column{"Created At", func(i model.InvoiceResponse) string { return deref(i.Created) }}
	colUpdatedAt     = column{"Updated At", func(i model.InvoiceResponse) string { return deref(i.Updated) }}
	colExpiredAt     = column{"Expired At", func(i model.InvoiceResponse) string { return deref(i.Updated) }}
	colCustomerName  = column{"Customer Name", customerField(model.InvoiceCustomer.FullName)}
	colCustomerEmail = column{"Customer Email", customerField(func(c model.InvoiceCustomer) string { return deref(c.Email) })}
	colCustomerPhone = column{"Customer Phone", customerField(func(c model.InvoiceCustomer) string { return deref(c.MobileNumber) })}
)

func currencyOf(i model.InvoiceResponse) string {
	if i.Currency == nil {
		return ""
	}
	return i.Currency.String()
}

func customerField(get func(model.InvoiceCustomer) string) func(model.InvoiceResponse) string {
	return func(i model.InvoiceResponse) string {
		if i.Customer == nil {
			return ""
		}
		return get(*i.Customer)
	}
}

var (
	listColumns   = []column{colID, colCustomerName, colCustomerEmail, colCustomerPhone, colAmount, colCurrency, colStatus}
	findColumns   = append(append([]column(nil), listColumns...), colCreatedAt, colUpdatedAt)
	createColumns = []column{colID, colAmount, colCurrency, colStatus, colInvoiceURL}
	expireColumns = []column{colID, colStatus, colExpiredAt}
)

// Package export renders invoices as PDF documents.
package export

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/pdfcpu/pdfcpu/pkg/api"

	money "github.com/mrfansi/xendit-go/internal/decimal"
	"github.com/mrfansi/xendit-go/internal/enum"
	"github.com/mrfansi/xendit-go/internal/model"
)

// A4 portrait geometry in points
const (
	pageHeight    = 842.0
	marginLeft    = 50.0
	marginTop     = 60.0
	marginBottom  = 60.0
	lineHeight    = 16.0
	linesPerPage  = 45
	maxValueRunes = 80
)

// Document is the pdfcpu create layout
type Document struct {
	Paper  string          `json:"paper"`
	Origin string          `json:"origin"`
	Pages  map[string]Page `json:"pages"`
}

// Page is one page of the layout
type Page struct {
	Content Content `json:"content"`
}

// Content holds the text boxes of a page
type Content struct {
	Text []Text `json:"text"`
}

// Text is one positioned line
type Text struct {
	Value string     `json:"value"`
	Pos   [2]float64 `json:"pos"`
	Font  Font       `json:"font"`
}

// Font names a PDF core font
type Font struct {
	Name string `json:"name"`
	Size int    `json:"size"`
}

var (
	titleFont   = Font{Name: "Helvetica-Bold", Size: 20}
	headingFont = Font{Name: "Helvetica-Bold", Size: 12}
	bodyFont    = Font{Name: "Helvetica", Size: 10}
)

type line struct {
	text string
	font Font
}

// Layout lays inv out over as many A4 pages as it needs
func Layout(inv model.InvoiceResponse) Document {
	currency := enum.CurrencyIDR
	if inv.Currency != nil {
		currency = *inv.Currency
	}

	lines := []line{
		{"INVOICE", titleFont},
		{inv.MerchantName, headingFont},
		{"", bodyFont},
	}
	for _, row := range inv.ToTable() {
		lines = append(lines, line{row.Label + ": " + truncate(row.Value), bodyFont})
	}

	if len(inv.Items) > 0 {
		lines = append(lines, line{"", bodyFont}, line{"Items", headingFont})
		for _, item := range inv.Items {
			total := money.LineTotal(item.Price, item.Quantity)
			lines = append(lines, line{fmt.Sprintf("%s  %d x %s = %s",
				truncate(item.Name), item.Quantity,
				money.Format(item.Price, currency), money.Format(total, currency)), bodyFont})
		}
		lines = append(lines, line{"Items total: " + money.Format(inv.ItemsTotal(), currency), bodyFont})
	}
	if len(inv.Fees) > 0 {
		lines = append(lines, line{"", bodyFont}, line{"Fees", headingFont})
		for _, fee := range inv.Fees {
			lines = append(lines, line{truncate(fee.Type) + ": " + money.Format(fee.Value, currency), bodyFont})
		}
	}
	lines = append(lines, line{"", bodyFont}, line{"Amount due: " + money.Format(inv.Amount, currency), headingFont})

	return paginate(lines)
}

func paginate(lines []line) Document {
	doc := Document{Paper: "A4P", Origin: "LowerLeft", Pages: map[string]Page{}}

	for i, l := range lines {
		pageNo := strconv.Itoa(i/linesPerPage + 1)
		page := doc.Pages[pageNo]
		if l.text != "" {
			y := pageHeight - marginTop - float64(i%linesPerPage)*lineHeight
			page.Content.Text = append(page.Content.Text, Text{
				Value: l.text,
				Pos:   [2]float64{marginLeft, y},
				Font:  l.font,
			})
		}
		doc.Pages[pageNo] = page
	}
	return doc
}

// truncate bounds a value to one line and drops characters outside the
// core font encoding
func truncate(s string) string {
	s = strings.Map(func(r rune) rune {
		switch {
		case r == '\n' || r == '\t':
			return ' '
		case r < 0x20 || r > 0xff:
			return '?'
		}
		return r
	}, s)
	if r := []rune(s); len(r) > maxValueRunes {
		return string(r[:maxValueRunes-3]) + "..."
	}
	return s
}

// WritePDF renders inv to w
func WritePDF(w io.Writer, inv model.InvoiceResponse) error {
	layout, err := json.Marshal(Layout(inv))
	if err != nil {
		return fmt.Errorf("encode layout: %w", err)
	}
	api.DisableConfigDir()
	if err := api.Create(nil, bytes.NewReader(layout), w, nil); err != nil {
		return fmt.Errorf("render invoice %s: %w", inv.ID, err)
	}
	return nil
}

// WriteFile renders inv to a new file at path
func WriteFile(path string, inv model.InvoiceResponse) error {
	var buf bytes.Buffer
	if err := WritePDF(&buf, inv); err != nil {
		return err
	}
	return os.WriteFile(path, buf.Bytes(), 0o644)
}

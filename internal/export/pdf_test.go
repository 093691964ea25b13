package export_test

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrfansi/xendit-go/internal/enum"
	"github.com/mrfansi/xendit-go/internal/export"
	"github.com/mrfansi/xendit-go/internal/model"
)

func sampleInvoice(t *testing.T, items int) model.InvoiceResponse {
	t.Helper()
	data := model.InvoiceData{
		ExternalID: "invoice-123",
		Amount:     decimal.NewFromInt(150000),
	}
	for i := 0; i < items; i++ {
		data.Items = append(data.Items, model.Item{Name: "Widget", Quantity: 2, Price: decimal.NewFromInt(75000)})
	}
	url := "https://checkout.xendit.co/web/inv_001"
	inv, err := model.NewInvoiceResponse(model.InvoiceResponse{
		InvoiceData:  data,
		ID:           "inv_001",
		UserID:       "user_001",
		Status:       enum.StatusPending,
		MerchantName: "Toko Maju",
		InvoiceURL:   &url,
	})
	require.NoError(t, err)
	return inv
}

func TestLayout(t *testing.T) {
	doc := export.Layout(sampleInvoice(t, 1))

	assert.Equal(t, "A4P", doc.Paper)
	require.Len(t, doc.Pages, 1)
	text := doc.Pages["1"].Content.Text
	require.NotEmpty(t, text)

	assert.Equal(t, "INVOICE", text[0].Value)
	assert.Equal(t, "Helvetica-Bold", text[0].Font.Name)
	assert.Equal(t, "Toko Maju", text[1].Value)
	assert.Greater(t, text[0].Pos[1], text[1].Pos[1], "lines run top to bottom")

	var values []string
	for _, tx := range text {
		values = append(values, tx.Value)
	}
	joined := strings.Join(values, "\n")
	assert.Contains(t, joined, "ID: inv_001")
	assert.Contains(t, joined, "Widget  2 x IDR 75,000 = IDR 150,000")
	assert.Contains(t, joined, "Amount due: IDR 150,000")
}

func TestLayout_Paginates(t *testing.T) {
	doc := export.Layout(sampleInvoice(t, 75))

	assert.GreaterOrEqual(t, len(doc.Pages), 2)
	for no, page := range doc.Pages {
		assert.LessOrEqual(t, len(page.Content.Text), 45, "page %s holds too many lines", no)
		for _, tx := range page.Content.Text {
			assert.GreaterOrEqual(t, tx.Pos[1], 60.0, "page %s overflows the bottom margin", no)
		}
	}
	assert.NotEmpty(t, doc.Pages["2"].Content.Text)
}

func TestLayout_SanitizesValues(t *testing.T) {
	inv := sampleInvoice(t, 0)
	desc := "line one\nline two " + strings.Repeat("x", 200) + " ✓"
	inv.Description = &desc

	for _, tx := range export.Layout(inv).Pages["1"].Content.Text {
		assert.NotContains(t, tx.Value, "\n")
		assert.LessOrEqual(t, len([]rune(tx.Value)), 120)
	}
}

func TestWritePDF(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, export.WritePDF(&buf, sampleInvoice(t, 3)))
	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("%PDF")))

	path := filepath.Join(t.TempDir(), "invoice.pdf")
	require.NoError(t, export.WriteFile(path, sampleInvoice(t, 1)))
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte("%PDF")))
}

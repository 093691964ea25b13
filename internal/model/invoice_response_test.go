package model_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrfansi/xendit-go/internal/enum"
	"github.com/mrfansi/xendit-go/internal/model"
)

const sampleInvoiceJSON = `{
  "id": "579c8d61f23fa4ca35e52da4",
  "external_id": "invoice_123124123",
  "user_id": "5781d19b2e2385880609791c",
  "status": "PENDING",
  "merchant_name": "Xendit",
  "merchant_profile_picture_url": "https://xnd-companies.s3.amazonaws.com/prod/1493610897264_473.png",
  "amount": 50000,
  "payer_email": "b@example.com",
  "description": "This is a description",
  "invoice_url": "https://checkout-staging.xendit.co/web/579c8d61f23fa4ca35e52da4",
  "expiry_date": "2016-08-01T11:20:01.017Z",
  "available_banks": [
    {"bank_code": "BCA", "collection_type": "POOL", "bank_account_number": "1000008", "transfer_amount": 54000}
  ],
  "available_retail_outlets": [
    {"retail_outlet_name": "ALFAMART", "payment_code": "ALFA123456", "transfer_amount": 54000}
  ],
  "should_exclude_credit_card": false,
  "should_send_email": false,
  "created": "2016-07-31T11:20:01.017Z",
  "updated": "2016-07-31T11:20:01.017Z",
  "currency": "IDR",
  "payment_details": {"receipt_id": "RC-001", "source": "OVO"}
}`

func decodeSample(t *testing.T) model.InvoiceResponse {
	t.Helper()
	var r model.InvoiceResponse
	require.NoError(t, json.Unmarshal([]byte(sampleInvoiceJSON), &r))
	return r
}

func TestInvoiceResponse_Decode(t *testing.T) {
	r := decodeSample(t)

	assert.Equal(t, "579c8d61f23fa4ca35e52da4", r.ID)
	assert.Equal(t, "invoice_123124123", r.ExternalID)
	assert.Equal(t, enum.StatusPending, r.Status)
	assert.Equal(t, "50000", r.Amount.String())
	assert.Equal(t, enum.CurrencyIDR, *r.Currency)
	require.Len(t, r.AvailableBanks, 1)
	assert.Equal(t, "BCA", r.AvailableBanks[0]["bank_code"])
	require.NotNil(t, r.PaymentDetails)
	assert.Equal(t, enum.QrisOVO, *r.PaymentDetails.Source)
	assert.False(t, r.IsPaid())
}

func TestInvoiceResponse_RoundTrip(t *testing.T) {
	r := decodeSample(t)

	data, err := json.Marshal(r)
	require.NoError(t, err)

	var back model.InvoiceResponse
	require.NoError(t, json.Unmarshal(data, &back))
	assert.Equal(t, r.ToMap(), back.ToMap())
}

func TestInvoiceResponse_Validation(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(m map[string]any)
		wantErr string
	}{
		{"missing id", func(m map[string]any) { delete(m, "id") }, "Invoice ID is required"},
		{"missing user id", func(m map[string]any) { m["user_id"] = " " }, "User ID is required"},
		{"unknown status", func(m map[string]any) { m["status"] = "VOIDED" }, "Invalid invoice status: VOIDED"},
		{"missing merchant", func(m map[string]any) { delete(m, "merchant_name") }, "Merchant name is required"},
		{"bad payer email", func(m map[string]any) { m["payer_email"] = "nobody" }, "Invalid payer email"},
		{"bad invoice url", func(m map[string]any) { m["invoice_url"] = "checkout" }, "Invalid invoice URL"},
		{"bad payment method", func(m map[string]any) { m["payment_method"] = "CHEQUE" }, "Invalid payment method: CHEQUE"},
		{"invoice rules first", func(m map[string]any) {
			m["amount"] = 0
			delete(m, "id")
		}, "Amount must be greater than 0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := model.DecodeJSON([]byte(sampleInvoiceJSON))
			require.NoError(t, err)
			tt.mutate(m)

			_, err = model.InvoiceResponseFromMap(m)
			require.Error(t, err)
			assert.Equal(t, tt.wantErr, err.Error())
		})
	}
}

func TestInvoiceResponse_WithStatus(t *testing.T) {
	r := decodeSample(t)

	paid, err := r.WithStatus(enum.StatusPaid)
	require.NoError(t, err)
	assert.True(t, paid.IsPaid())
	assert.Equal(t, enum.StatusPending, r.Status)

	_, err = r.WithStatus(enum.InvoiceStatus("LOST"))
	assert.Error(t, err)
}

func TestInvoiceResponse_ToTable(t *testing.T) {
	r := decodeSample(t)

	rows := r.ToTable()
	require.NotEmpty(t, rows)
	assert.Equal(t, model.Row{Label: "ID", Value: "579c8d61f23fa4ca35e52da4"}, rows[0])
	assert.Equal(t, model.Row{Label: "User ID", Value: "5781d19b2e2385880609791c"}, rows[1])
	assert.Equal(t, model.Row{Label: "External ID", Value: "invoice_123124123"}, rows[2])

	byLabel := make(map[string]string, len(rows))
	for _, row := range rows {
		byLabel[row.Label] = row.Value
	}
	assert.Equal(t, "50000", byLabel["Amount"])
	assert.Equal(t, "false", byLabel["Should Send Email"])
	assert.Equal(t, `[{"bank_account_number":"1000008","bank_code":"BCA","collection_type":"POOL","transfer_amount":54000}]`, byLabel["Available Banks"])
	assert.Equal(t, len(r.ToMap()), len(rows))
}

func TestHeadline(t *testing.T) {
	tests := map[string]string{
		"id":                           "ID",
		"merchant_name":                "Merchant Name",
		"should_exclude_credit_card":   "Should Exclude Credit Card",
		"merchant_profile_picture_url": "Merchant Profile Picture Url",
		"amount":                       "Amount",
	}
	for in, want := range tests {
		t.Run(in, func(t *testing.T) {
			assert.Equal(t, want, model.Headline(in))
		})
	}
}

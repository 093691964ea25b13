package xendit_test

import (
	"context"
	"errors"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrfansi/xendit-go/pkg/xendit"
)

const secretKey = "xnd_development_lib"

func newSandboxClient(t *testing.T) *xendit.Client {
	t.Helper()
	sandbox, err := xendit.NewSandbox(xendit.SandboxConfig{SecretKey: secretKey})
	require.NoError(t, err)
	ts := httptest.NewServer(sandbox.Handler())
	t.Cleanup(ts.Close)

	client, err := xendit.NewClient(xendit.Config{BaseURL: ts.URL, SecretKey: secretKey})
	require.NoError(t, err)
	return client
}

func TestNewClient_DefaultBaseURL(t *testing.T) {
	client, err := xendit.NewClient(xendit.Config{SecretKey: secretKey})
	require.NoError(t, err)
	assert.Equal(t, xendit.DefaultBaseURL, client.BaseURL())

	_, err = xendit.NewClient(xendit.Config{})
	require.Error(t, err)
	assert.True(t, errors.Is(err, xendit.ErrInvalidArgument))
}

func TestNewClientFromEnv(t *testing.T) {
	// godotenv never overrides a variable that is already set
	for _, key := range []string{"XENDIT_SECRET_KEY", "XENDIT_BASE_URL", "XENDIT_FOR_USER_ID"} {
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}

	path := filepath.Join(t.TempDir(), ".env")
	content := "XENDIT_SECRET_KEY=" + secretKey + "\nXENDIT_BASE_URL=https://api.example.com/\nXENDIT_FOR_USER_ID=sub_001\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	client, err := xendit.NewClientFromEnv(path)
	require.NoError(t, err)
	assert.Equal(t, "https://api.example.com", client.BaseURL())
	assert.Equal(t, []string{"sub_001"}, client.Header()["for-user-id"])

	_, err = xendit.NewClientFromEnv(filepath.Join(t.TempDir(), "missing.env"))
	assert.Error(t, err)
}

func TestClient_InvoiceLifecycle(t *testing.T) {
	ctx := context.Background()
	client := newSandboxClient(t)

	currency := xendit.CurrencyPHP
	data, err := xendit.NewInvoiceData(xendit.InvoiceData{
		ExternalID: "order-42",
		Amount:     decimal.NewFromInt(1500),
		Currency:   &currency,
	})
	require.NoError(t, err)

	created, err := client.CreateInvoice(ctx, data)
	require.NoError(t, err)
	assert.Equal(t, xendit.StatusPending, created.Status)
	assert.Equal(t, xendit.CurrencyPHP, *created.Currency)

	found, err := client.FindInvoiceByExternalID(ctx, "order-42")
	require.NoError(t, err)
	assert.Equal(t, created.ID, found.ID)

	expired, err := client.ExpireInvoice(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, xendit.StatusExpired, expired.Status)

	params, err := xendit.NewInvoiceParams(xendit.InvoiceParams{
		Statuses: []xendit.InvoiceStatus{xendit.StatusPending},
	})
	require.NoError(t, err)
	pending, err := client.ListInvoices(ctx, &params)
	require.NoError(t, err)
	assert.Empty(t, pending)

	_, err = client.RetrieveInvoice(ctx, "missing")
	assert.True(t, errors.Is(err, xendit.ErrNotFound))
	assert.True(t, errors.Is(err, xendit.ErrGateway))
}

func TestEnumLookups(t *testing.T) {
	assert.Equal(t, xendit.CurrencyIDR, xendit.CurrencyForCountry("ID"))
	assert.Contains(t, xendit.PaymentMethodsForCountry("PH"), xendit.PaymentMethod("GCASH"))

	_, err := xendit.ParseInvoiceStatus("VOIDED")
	assert.True(t, errors.Is(err, xendit.ErrInvalidValue))
}

func TestInvoiceResponseFromMap(t *testing.T) {
	inv, err := xendit.InvoiceResponseFromMap(map[string]any{
		"id":            "inv_001",
		"external_id":   "order-1",
		"user_id":       "user_001",
		"merchant_name": "Acme",
		"status":        "PAID",
		"amount":        10000,
	})
	require.NoError(t, err)
	assert.True(t, inv.IsPaid())

	_, err = xendit.InvoiceResponseFromMap(map[string]any{"id": "inv_001", "amount": 1})
	require.Error(t, err)
}

package cmd

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrfansi/xendit-go/internal/enum"
	"github.com/mrfansi/xendit-go/internal/gateway"
	"github.com/mrfansi/xendit-go/internal/model"
	"github.com/mrfansi/xendit-go/internal/server"
)

const sandboxKey = "xnd_development_cli"

type cliResult struct {
	stdout string
	stderr string
	err    error
}

// runCLI executes the root command with fresh globals
func runCLI(t *testing.T, stdin string, args ...string) cliResult {
	t.Helper()
	invoiceID, advancedSearch, exportOutput = "", false, ""
	outputFormat, country = "table", string(enum.CountryIndonesia)
	secretKey, baseURL, forUserID, envFile = "", "", "", ""
	verbose = false

	var stdout, stderr bytes.Buffer
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetOut(&stdout)
	rootCmd.SetErr(&stderr)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return cliResult{stdout: stdout.String(), stderr: stderr.String(), err: err}
}

// newSandbox starts a sandbox and points the environment at it
func newSandbox(t *testing.T) *server.Server {
	t.Helper()
	srv, err := server.NewServer(&server.Config{SecretKey: sandboxKey})
	require.NoError(t, err)
	ts := httptest.NewServer(srv.Handler())
	t.Cleanup(ts.Close)

	t.Setenv("XENDIT_BASE_URL", ts.URL)
	t.Setenv("XENDIT_SECRET_KEY", sandboxKey)
	t.Setenv("XENDIT_FOR_USER_ID", "")
	return srv
}

func seed(t *testing.T, srv *server.Server, externalID string) model.InvoiceResponse {
	t.Helper()
	data, err := model.NewInvoiceData(model.InvoiceData{
		ExternalID: externalID,
		Amount:     decimal.NewFromInt(50000),
	})
	require.NoError(t, err)
	inv, _, err := srv.Store().Create(data, server.DefaultUserID, "")
	require.NoError(t, err)
	return inv
}

func TestInvoice_InvalidAction(t *testing.T) {
	res := runCLI(t, "", "invoice", "refund")
	require.Error(t, res.err)
	assert.Equal(t, "[INVALID_INPUT] Invalid action. Use: all, find, new, expire", res.err.Error())
}

func TestInvoice_MissingSecretKey(t *testing.T) {
	newSandbox(t)
	t.Setenv("XENDIT_SECRET_KEY", "")

	res := runCLI(t, "", "invoice", "all")
	require.Error(t, res.err)
	assert.Equal(t, "[INVALID_INPUT] Xendit API key must be configured", res.err.Error())
}

func TestInvoice_New(t *testing.T) {
	srv := newSandbox(t)

	stdin := "abc\n150000\n\nnot-an-email\nbuyer@example.com\nBudi\nTest order\n"
	res := runCLI(t, stdin, "invoice", "new")
	require.NoError(t, res.err)

	assert.Contains(t, res.stderr, "Amount must be numeric")
	assert.Contains(t, res.stderr, "Invalid email format")
	assert.True(t, strings.HasPrefix(res.stdout, "Invoice created successfully!"))
	assert.Contains(t, res.stdout, "Invoice URL")
	assert.Contains(t, res.stdout, "150000")
	assert.Contains(t, res.stdout, "IDR")
	assert.Contains(t, res.stdout, "PENDING")

	require.Equal(t, 1, srv.Store().Len())
	inv := srv.Store().List(model.InvoiceParams{})[0]
	require.NotNil(t, inv.Customer)
	assert.Equal(t, "Budi", inv.Customer.FullName())
	assert.Equal(t, "buyer@example.com", *inv.Customer.Email)
	assert.Equal(t, "Test order", *inv.Description)
	assert.Len(t, inv.ExternalID, 32)
}

func TestInvoice_NewJSON(t *testing.T) {
	newSandbox(t)

	res := runCLI(t, "250000\n2\nbuyer@example.com\nMaria\nSubscription\n", "invoice", "new", "-f", "json")
	require.NoError(t, res.err)

	var out []map[string]any
	require.NoError(t, json.Unmarshal([]byte(res.stdout), &out))
	require.Len(t, out, 1)
	assert.Equal(t, "PHP", out[0]["currency"])
	assert.Equal(t, "PENDING", out[0]["status"])
}

func TestInvoice_All(t *testing.T) {
	srv := newSandbox(t)
	first := seed(t, srv, "order-1")
	second := seed(t, srv, "order-2")

	res := runCLI(t, "n\n", "invoice")
	require.NoError(t, res.err)
	assert.Contains(t, res.stderr, "Do you really want to advanced search? [y/N]")

	lines := strings.Split(strings.TrimSpace(res.stdout), "\n")
	require.Len(t, lines, 4)
	assert.True(t, strings.HasPrefix(lines[0], "ID"))
	assert.True(t, strings.HasPrefix(lines[2], second.ID), "newest first")
	assert.True(t, strings.HasPrefix(lines[3], first.ID))
}

func TestInvoice_AllAdvanced(t *testing.T) {
	srv := newSandbox(t)
	pending := seed(t, srv, "order-1")
	expired := seed(t, srv, "order-2")
	_, err := srv.Store().Expire(expired.ID)
	require.NoError(t, err)

	res := runCLI(t, "expired\n", "invoice", "all", "--advanced")
	require.NoError(t, res.err)
	assert.NotContains(t, res.stderr, "advanced search?")
	assert.Contains(t, res.stdout, expired.ID)
	assert.NotContains(t, res.stdout, pending.ID)

	// the default pick is PENDING
	res = runCLI(t, "y\n\n", "invoice", "all")
	require.NoError(t, res.err)
	assert.Contains(t, res.stdout, pending.ID)
	assert.NotContains(t, res.stdout, expired.ID)
}

func TestInvoice_Find(t *testing.T) {
	srv := newSandbox(t)
	inv := seed(t, srv, "order-1")

	res := runCLI(t, "", "invoice", "find", "--id", inv.ID)
	require.NoError(t, res.err)
	assert.Contains(t, res.stdout, "Created At")
	assert.Contains(t, res.stdout, inv.ID)

	// prompted when --id is missing
	res = runCLI(t, "\n"+inv.ID+"\n", "invoice", "find", "-f", "json")
	require.NoError(t, res.err)
	assert.Contains(t, res.stderr, "Invoice ID is required")
	var out []map[string]any
	require.NoError(t, json.Unmarshal([]byte(res.stdout), &out))
	assert.Equal(t, inv.ID, out[0]["id"])
	assert.Equal(t, "order-1", out[0]["external_id"])
}

func TestInvoice_FindMissing(t *testing.T) {
	newSandbox(t)

	res := runCLI(t, "", "invoice", "find", "--id", "missing")
	require.Error(t, res.err)
	assert.True(t, strings.HasPrefix(res.err.Error(), "[API_ERROR] "))
	assert.True(t, errors.Is(res.err, gateway.ErrNotFound))
}

func TestInvoice_Expire(t *testing.T) {
	srv := newSandbox(t)
	inv := seed(t, srv, "order-1")

	res := runCLI(t, "n\n", "invoice", "expire", "--id", inv.ID)
	require.NoError(t, res.err)
	assert.Equal(t, "Operation cancelled.\n", res.stdout)
	got, err := srv.Store().Get(inv.ID)
	require.NoError(t, err)
	assert.Equal(t, enum.StatusPending, got.Status)

	res = runCLI(t, "y\n", "invoice", "expire", "--id", inv.ID)
	require.NoError(t, res.err)
	assert.Contains(t, res.stderr, "Are you sure you want to expire invoice "+inv.ID+"?")
	assert.True(t, strings.HasPrefix(res.stdout, "Invoice expired successfully!"))
	assert.Contains(t, res.stdout, "Expired At")
	assert.Contains(t, res.stdout, "EXPIRED")

	res = runCLI(t, "y\n", "invoice", "expire", "--id", inv.ID)
	require.Error(t, res.err)
	assert.True(t, strings.HasPrefix(res.err.Error(), "[API_ERROR] Failed to expire invoice: "))
	assert.Contains(t, res.err.Error(), server.ErrCodeNotPending)
}

func TestInvoice_NetworkError(t *testing.T) {
	ts := httptest.NewServer(nil)
	ts.Close()
	t.Setenv("XENDIT_BASE_URL", ts.URL)
	t.Setenv("XENDIT_SECRET_KEY", sandboxKey)

	res := runCLI(t, "", "invoice", "find", "--id", "inv_001")
	require.Error(t, res.err)
	assert.True(t, strings.HasPrefix(res.err.Error(), "[NETWORK_ERROR] "))
}

func TestInvoice_InputClosed(t *testing.T) {
	newSandbox(t)

	res := runCLI(t, "", "invoice", "new")
	require.Error(t, res.err)
	assert.Equal(t, "[INVALID_INPUT] "+errInputClosed.Error(), res.err.Error())
}

func TestInvoice_Export(t *testing.T) {
	srv := newSandbox(t)
	inv := seed(t, srv, "order-1")
	path := filepath.Join(t.TempDir(), "invoice.pdf")

	res := runCLI(t, "", "invoice", "export", "--id", inv.ID, "-o", path)
	require.NoError(t, res.err)
	assert.Equal(t, "Invoice "+inv.ID+" written to "+path+"\n", res.stdout)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte("%PDF")))
}

func TestMethods(t *testing.T) {
	tests := []struct {
		name     string
		country  string
		currency string
		count    int
		wantErr  string
	}{
		{name: "code", country: "ID", currency: "IDR", count: 22},
		{name: "lower case code", country: "th", currency: "THB", count: 11},
		{name: "country name", country: "Malaysia", currency: "MYR", count: 42},
		{name: "unknown", country: "Atlantis", wantErr: `[INVALID_INPUT] Unknown country "Atlantis"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := runCLI(t, "", "methods", "--country", tt.country, "-f", "json")
			if tt.wantErr != "" {
				require.Error(t, res.err)
				assert.Equal(t, tt.wantErr, res.err.Error())
				return
			}
			require.NoError(t, res.err)

			var out MethodsResponse
			require.NoError(t, json.Unmarshal([]byte(res.stdout), &out))
			assert.Equal(t, tt.currency, out.Currency)
			assert.Len(t, out.Methods, tt.count)
		})
	}
}

func TestMethods_ExtraCountries(t *testing.T) {
	t.Setenv("XENDIT_COUNTRIES", "Republik Indonesia=ID")

	res := runCLI(t, "", "methods", "-c", "Republik Indonesia")
	require.NoError(t, res.err)
	assert.Contains(t, res.stdout, "METHOD")
	assert.Contains(t, res.stdout, "QRIS")
}

func TestVersion(t *testing.T) {
	res := runCLI(t, "", "version")
	require.NoError(t, res.err)
	assert.Contains(t, res.stdout, "xendit "+version)
	assert.Contains(t, res.stdout, "xendit-go/"+version)
}

func TestPrompter(t *testing.T) {
	options := []option{{Value: "PENDING"}, {Value: "PAID"}, {Value: "EXPIRED"}}

	t.Run("select by number or value", func(t *testing.T) {
		var out bytes.Buffer
		p := newPrompter(strings.NewReader("9\n2\npending\n"), &out)

		got, err := p.Select("Status", options, "PENDING")
		require.NoError(t, err)
		assert.Equal(t, "PAID", got)
		assert.Contains(t, out.String(), `"9" is not one of the options`)

		got, err = p.Select("Status", options, "PAID")
		require.NoError(t, err)
		assert.Equal(t, "PENDING", got)
	})

	t.Run("multi select deduplicates", func(t *testing.T) {
		p := newPrompter(strings.NewReader("paid, 2 ,3\n"), &bytes.Buffer{})
		got, err := p.MultiSelect("Status", options, nil)
		require.NoError(t, err)
		assert.Equal(t, []string{"PAID", "EXPIRED"}, got)
	})

	t.Run("confirm default and retry", func(t *testing.T) {
		var out bytes.Buffer
		p := newPrompter(strings.NewReader("\nmaybe\nyes\n"), &out)

		ok, err := p.Confirm("Continue?", true)
		require.NoError(t, err)
		assert.True(t, ok)

		ok, err = p.Confirm("Continue?", false)
		require.NoError(t, err)
		assert.True(t, ok)
		assert.Contains(t, out.String(), "Please answer yes or no")
	})

	t.Run("last line without newline", func(t *testing.T) {
		p := newPrompter(strings.NewReader("inv_001"), &bytes.Buffer{})
		got, err := p.Text("Invoice ID", nil)
		require.NoError(t, err)
		assert.Equal(t, "inv_001", got)

		_, err = p.Text("Invoice ID", nil)
		assert.True(t, errors.Is(err, errInvalidInput))
	})
}

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{name: "input", err: inputError("bad"), want: PrefixInvalidInput},
		{name: "argument", err: gateway.ErrInvalidArgument, want: PrefixInvalidInput},
		{name: "enum", err: enum.ErrInvalidValue, want: PrefixInvalidInput},
		{name: "network", err: gateway.NewConnectivityError("retrieve invoice", "http://127.0.0.1:1", context.DeadlineExceeded), want: PrefixNetworkError},
		{name: "gateway", err: &gateway.GatewayError{Op: "create invoice", Body: "boom"}, want: PrefixAPIError},
		{name: "bad reply", err: gateway.ErrInvalidResponse("retrieve invoice", 200, enum.ErrInvalidValue), want: PrefixAPIError},
		{name: "other", err: os.ErrPermission, want: PrefixUnexpected},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, classify(tt.err))
		})
	}

	once := withPrefix(inputError("bad"))
	assert.Equal(t, "[INVALID_INPUT] bad", withPrefix(once).Error())
	assert.NoError(t, withPrefix(nil))
}

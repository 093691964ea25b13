package server_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrfansi/xendit-go/internal/enum"
	"github.com/mrfansi/xendit-go/internal/gateway"
	"github.com/mrfansi/xendit-go/internal/model"
	"github.com/mrfansi/xendit-go/internal/server"
)

const sandboxKey = "xnd_development_sandbox"

type clock struct {
	now time.Time
}

func (c *clock) Now() time.Time { return c.now }

func newTestServer(t *testing.T, clk *clock) *server.Server {
	t.Helper()
	config := &server.Config{
		Address:   ":0",
		SecretKey: sandboxKey,
		Debug:     true,
	}
	var opts []server.Option
	if clk != nil {
		opts = append(opts, server.WithClock(clk.Now))
	}
	srv, err := server.NewServer(config, opts...)
	require.NoError(t, err)
	return srv
}

func newSandboxClient(t *testing.T, srv *server.Server) *gateway.Client {
	t.Helper()
	ts := httptest.NewServer(srv.Handler())
	t.Cleanup(ts.Close)
	c, err := gateway.New(gateway.Config{BaseURL: ts.URL, SecretKey: sandboxKey})
	require.NoError(t, err)
	return c
}

func invoice(t *testing.T, externalID string, amount int64) model.InvoiceData {
	t.Helper()
	data, err := model.NewInvoiceData(model.InvoiceData{
		ExternalID: externalID,
		Amount:     decimal.NewFromInt(amount),
	})
	require.NoError(t, err)
	return data
}

func TestHealthEndpoint(t *testing.T) {
	srv := newTestServer(t, nil)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()

	srv.Handler().ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var response server.HealthResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, "ok", response.Status)
	assert.NotEmpty(t, response.Time)
	assert.Zero(t, response.Invoices)
}

func TestInvoiceEndpoints_RequireAuth(t *testing.T) {
	srv := newTestServer(t, nil)

	tests := []struct {
		name    string
		setup   func(r *http.Request)
		wantMsg string
	}{
		{"no credentials", func(r *http.Request) {}, "API key is required"},
		{"wrong key", func(r *http.Request) { r.SetBasicAuth("xnd_other", "") }, "API key is invalid"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/v2/invoices", nil)
			tt.setup(req)
			w := httptest.NewRecorder()

			srv.Handler().ServeHTTP(w, req)

			assert.Equal(t, http.StatusUnauthorized, w.Code)
			var response server.ErrorResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
			assert.Equal(t, server.ErrCodeInvalidKey, response.ErrorCode)
			assert.Equal(t, tt.wantMsg, response.Message)
		})
	}
}

func TestCreateEndpoint_Validation(t *testing.T) {
	srv := newTestServer(t, nil)

	tests := []struct {
		name    string
		body    string
		wantMsg string
	}{
		{"empty body", "", "empty request body"},
		{"not json", "amount=1", "request body must be a JSON object"},
		{"empty external id", `{"external_id":"","amount":1000}`, "External ID must be between 1 and 255 characters"},
		{"bad quantity", `{"external_id":"a","amount":1000,"items":[{"name":"x","quantity":"two","price":1}]}`, "[invoice] items[0].quantity: expected integer"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/v2/invoices", bytes.NewReader([]byte(tt.body)))
			req.SetBasicAuth(sandboxKey, "")
			w := httptest.NewRecorder()

			srv.Handler().ServeHTTP(w, req)

			assert.Equal(t, http.StatusBadRequest, w.Code)
			var response server.ErrorResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
			assert.Equal(t, server.ErrCodeValidation, response.ErrorCode)
			assert.True(t, strings.HasPrefix(response.Message, tt.wantMsg), response.Message)
		})
	}
}

func TestSandbox_ClientRoundTrip(t *testing.T) {
	srv := newTestServer(t, nil)
	c := newSandboxClient(t, srv)
	ctx := context.Background()

	created, err := c.WithUserID("sub_42").CreateInvoice(ctx, invoice(t, "invoice-123", 100000))
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, "sub_42", created.UserID)
	assert.Equal(t, enum.StatusPending, created.Status)
	assert.Equal(t, server.DefaultMerchantName, created.MerchantName)
	assert.Equal(t, enum.CurrencyIDR, *created.Currency)
	assert.True(t, decimal.NewFromInt(100000).Equal(created.Amount))

	got, err := c.RetrieveInvoice(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ToMap(), got.ToMap())

	found, err := c.FindInvoiceByExternalID(ctx, "invoice-123")
	require.NoError(t, err)
	assert.Equal(t, created.ID, found.ID)

	expired, err := c.ExpireInvoice(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, enum.StatusExpired, expired.Status)

	_, err = c.ExpireInvoice(ctx, created.ID)
	var gerr *gateway.GatewayError
	require.True(t, errors.As(err, &gerr))
	assert.Equal(t, http.StatusBadRequest, gerr.StatusCode)
	assert.Equal(t, server.ErrCodeNotPending, gerr.Code)

	_, err = c.RetrieveInvoice(ctx, "missing")
	assert.True(t, errors.Is(err, gateway.ErrNotFound))
}

func TestSandbox_ListFilters(t *testing.T) {
	srv := newTestServer(t, nil)
	c := newSandboxClient(t, srv)
	ctx := context.Background()

	var ids []string
	for _, ext := range []string{"order-1", "order-2", "order-3"} {
		inv, err := c.CreateInvoice(ctx, invoice(t, ext, 5000))
		require.NoError(t, err)
		ids = append(ids, inv.ID)
	}
	_, err := c.ExpireInvoice(ctx, ids[0])
	require.NoError(t, err)

	all, err := c.ListInvoices(ctx, nil)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "order-3", all[0].ExternalID, "newest first")

	params, err := model.NewInvoiceParams(model.InvoiceParams{Statuses: []enum.InvoiceStatus{enum.StatusExpired}})
	require.NoError(t, err)
	expired, err := c.ListInvoices(ctx, &params)
	require.NoError(t, err)
	require.Len(t, expired, 1)
	assert.Equal(t, ids[0], expired[0].ID)

	params, err = model.NewInvoiceParams(model.InvoiceParams{Limit: 2})
	require.NoError(t, err)
	page, err := c.ListInvoices(ctx, &params)
	require.NoError(t, err)
	require.Len(t, page, 2)

	params, err = params.After(page[1].ID)
	require.NoError(t, err)
	rest, err := c.ListInvoices(ctx, &params)
	require.NoError(t, err)
	require.Len(t, rest, 1)
	assert.Equal(t, "order-1", rest[0].ExternalID)

	params, err = model.NewInvoiceParams(model.InvoiceParams{ClientTypes: []enum.ClientType{enum.ClientDashboard}})
	require.NoError(t, err)
	none, err := c.ListInvoices(ctx, &params)
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestStore_ListUnknownCursor(t *testing.T) {
	clk := &clock{now: time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC)}
	store := server.NewStore("Shop", server.DefaultCheckoutURL, clk.Now)

	var ids []string
	for _, ext := range []string{"order-1", "order-2"} {
		inv, _, err := store.Create(invoice(t, ext, 1000), server.DefaultUserID, "")
		require.NoError(t, err)
		ids = append(ids, inv.ID)
	}

	tests := []struct {
		name   string
		cursor string
		want   int
	}{
		{name: "unknown id", cursor: "inv_missing", want: 0},
		{name: "oldest id", cursor: ids[0], want: 0},
		{name: "newest id", cursor: ids[1], want: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			params, err := model.NewInvoiceParams(model.InvoiceParams{})
			require.NoError(t, err)
			params, err = params.After(tt.cursor)
			require.NoError(t, err)

			got := store.List(params)
			assert.NotNil(t, got)
			assert.Len(t, got, tt.want)
		})
	}
}

func TestSandbox_ListRejectsBadQuery(t *testing.T) {
	srv := newTestServer(t, nil)

	req := httptest.NewRequest(http.MethodGet, "/v2/invoices?limit=500", nil)
	req.SetBasicAuth(sandboxKey, "")
	w := httptest.NewRecorder()

	srv.Handler().ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Limit must be between 1 and 100")
}

func TestSandbox_IdempotencyKey(t *testing.T) {
	srv := newTestServer(t, nil)
	c := newSandboxClient(t, srv).WithIdempotencyKey("idem-1")
	ctx := context.Background()

	first, err := c.CreateInvoice(ctx, invoice(t, "order-1", 1000))
	require.NoError(t, err)
	second, err := c.CreateInvoice(ctx, invoice(t, "order-2", 2000))
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, 1, srv.Store().Len())
}

func TestSandbox_ExpirySweep(t *testing.T) {
	clk := &clock{now: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
	srv := newTestServer(t, clk)
	store := srv.Store()

	short := invoice(t, "short", 1000)
	duration := 60
	short.InvoiceDuration = &duration
	shortInv, _, err := store.Create(short, server.DefaultUserID, "")
	require.NoError(t, err)
	longInv, _, err := store.Create(invoice(t, "long", 1000), server.DefaultUserID, "")
	require.NoError(t, err)
	assert.Equal(t, "2024-01-01T00:01:00.000Z", *shortInv.ExpiryDate)

	clk.now = clk.now.Add(2 * time.Minute)
	assert.Equal(t, 1, store.ExpireOverdue())
	assert.Equal(t, 0, store.ExpireOverdue())

	got, err := store.Get(shortInv.ID)
	require.NoError(t, err)
	assert.Equal(t, enum.StatusExpired, got.Status)

	got, err = store.Get(longInv.ID)
	require.NoError(t, err)
	assert.Equal(t, enum.StatusPending, got.Status)
}

func TestStore_DateFilters(t *testing.T) {
	clk := &clock{now: time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC)}
	store := server.NewStore("Shop", server.DefaultCheckoutURL, clk.Now)

	_, _, err := store.Create(invoice(t, "march", 1000), "u1", "")
	require.NoError(t, err)

	params, err := model.NewInvoiceParams(model.InvoiceParams{})
	require.NoError(t, err)

	inMarch, err := params.WithCreatedRange("2024-03-01T00:00:00Z", "2024-03-31T00:00:00Z")
	require.NoError(t, err)
	assert.Len(t, store.List(inMarch), 1)

	inApril, err := params.WithCreatedRange("2024-04-01T00:00:00Z", "2024-04-30T00:00:00Z")
	require.NoError(t, err)
	assert.Empty(t, store.List(inApril))

	paid, err := params.WithPaidRange("2024-03-01", "2024-03-31")
	require.NoError(t, err)
	assert.Empty(t, store.List(paid), "unpaid invoices never match a paid range")
}

func TestMetricsEndpoint(t *testing.T) {
	srv := newTestServer(t, nil)

	srv.Handler().ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/health", nil))

	w := httptest.NewRecorder()
	srv.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `sandbox_http_requests_total{method="GET",route="/health",status="200"} 1`)
}

func TestNewServer_BadSchedule(t *testing.T) {
	_, err := server.NewServer(&server.Config{ExpirySchedule: "every tuesday"})
	assert.Error(t, err)
}

package gateway

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"go.uber.org/zap"

	"github.com/mrfansi/xendit-go/internal/model"
)

const invoicesPath = "/v2/invoices"

// Operation names, as they appear in error messages and metric labels
const (
	opList     = "retrieve invoices"
	opCreate   = "create invoice"
	opRetrieve = "retrieve invoice"
	opExpire   = "expire invoice"
	opFind     = "find invoice"
)

// ListInvoices returns the invoices matching params. A nil params sends no
// query, leaving the gateway defaults in place.
func (c *Client) ListInvoices(ctx context.Context, params *model.InvoiceParams) ([]model.InvoiceResponse, error) {
	query := ""
	if params != nil {
		if err := params.Validate(); err != nil {
			return nil, err
		}
		query = params.Query().Encode()
	}

	resp, err := c.do(ctx, opList, http.MethodGet, invoicesPath, query, nil)
	if err != nil {
		return nil, c.report("Failed to retrieve invoices", err)
	}
	if !resp.OK() {
		return nil, c.report("Failed to retrieve invoices", failure(opList, resp))
	}

	list, err := model.DecodeJSONList(resp.Body)
	if err != nil {
		return nil, c.report("Failed to retrieve invoices", ErrInvalidResponse(opList, resp.StatusCode, err))
	}
	invoices := make([]model.InvoiceResponse, 0, len(list))
	for i, m := range list {
		inv, err := model.InvoiceResponseFromMap(m)
		if err != nil {
			return nil, c.report("Failed to retrieve invoices", decodeFailure(opList, resp.StatusCode, err), zap.Int("index", i))
		}
		invoices = append(invoices, inv)
	}
	return invoices, nil
}

// CreateInvoice validates data and submits it
func (c *Client) CreateInvoice(ctx context.Context, data model.InvoiceData) (model.InvoiceResponse, error) {
	if err := data.Validate(); err != nil {
		return model.InvoiceResponse{}, err
	}

	resp, err := c.do(ctx, opCreate, http.MethodPost, invoicesPath, "", data.ToMap())
	if err != nil {
		return model.InvoiceResponse{}, c.report("Failed to create invoice", err, zap.String("external_id", data.ExternalID))
	}
	return c.single(opCreate, "Failed to create invoice", resp)
}

// RetrieveInvoice fetches one invoice by its gateway id
func (c *Client) RetrieveInvoice(ctx context.Context, id string) (model.InvoiceResponse, error) {
	path, err := invoicePath(id, "")
	if err != nil {
		return model.InvoiceResponse{}, err
	}

	resp, err := c.do(ctx, opRetrieve, http.MethodGet, path, "", nil)
	if err != nil {
		return model.InvoiceResponse{}, c.report("Failed to retrieve invoice", err, zap.String("invoice_id", id))
	}
	return c.single(opRetrieve, "Failed to retrieve invoice", resp)
}

// ExpireInvoice expires a pending invoice immediately
func (c *Client) ExpireInvoice(ctx context.Context, id string) (model.InvoiceResponse, error) {
	path, err := invoicePath(id, "/expire")
	if err != nil {
		return model.InvoiceResponse{}, err
	}

	resp, err := c.do(ctx, opExpire, http.MethodPost, path, "", nil)
	if err != nil {
		return model.InvoiceResponse{}, c.report("Failed to expire invoice", err, zap.String("invoice_id", id))
	}
	return c.single(opExpire, "Failed to expire invoice", resp)
}

// FindInvoiceByExternalID returns the first invoice carrying externalID
func (c *Client) FindInvoiceByExternalID(ctx context.Context, externalID string) (model.InvoiceResponse, error) {
	if strings.TrimSpace(externalID) == "" {
		return model.InvoiceResponse{}, fmt.Errorf("%w: external id is required", ErrInvalidArgument)
	}
	params, err := model.InvoiceParams{}.WithExternalID(externalID)
	if err != nil {
		return model.InvoiceResponse{}, err
	}

	invoices, err := c.ListInvoices(ctx, &params)
	if err != nil {
		return model.InvoiceResponse{}, err
	}
	for _, inv := range invoices {
		if inv.ExternalID == externalID {
			return inv, nil
		}
	}
	return model.InvoiceResponse{}, ErrInvoiceNotFound(externalID)
}

func (c *Client) single(op, message string, resp *Response) (model.InvoiceResponse, error) {
	if !resp.OK() {
		return model.InvoiceResponse{}, c.report(message, failure(op, resp))
	}
	m, err := model.DecodeJSON(resp.Body)
	if err != nil {
		return model.InvoiceResponse{}, c.report(message, ErrInvalidResponse(op, resp.StatusCode, err))
	}
	inv, err := model.InvoiceResponseFromMap(m)
	if err != nil {
		return model.InvoiceResponse{}, c.report(message, decodeFailure(op, resp.StatusCode, err))
	}
	return inv, nil
}

// decodeFailure wraps a 2xx body that breaks a shape or rule check; the
// cause stays reachable through errors.Is
func decodeFailure(op string, status int, err error) error {
	return ErrInvalidResponse(op, status, err)
}

func invoicePath(id, suffix string) (string, error) {
	if strings.TrimSpace(id) == "" {
		return "", fmt.Errorf("%w: invoice id is required", ErrInvalidArgument)
	}
	return invoicesPath + "/" + url.PathEscape(id) + suffix, nil
}

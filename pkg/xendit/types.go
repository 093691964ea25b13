// Package xendit provides a public API for the Xendit Invoice API.
//
// It exposes the invoice models, the enum registry and the gateway client
// so callers outside this module can create, list, retrieve and expire
// invoices.
//
// Example usage:
//
//	client, err := xendit.NewClient(xendit.Config{
//	    BaseURL:   xendit.DefaultBaseURL,
//	    SecretKey: os.Getenv("XENDIT_SECRET_KEY"),
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	invoices, err := client.ListInvoices(ctx, nil)
package xendit

import (
	"github.com/mrfansi/xendit-go/internal/config"
	"github.com/mrfansi/xendit-go/internal/enum"
	"github.com/mrfansi/xendit-go/internal/gateway"
	"github.com/mrfansi/xendit-go/internal/model"
	"github.com/mrfansi/xendit-go/internal/validation"
)

// DefaultBaseURL is the production API endpoint
const DefaultBaseURL = config.DefaultBaseURL

// Re-export invoice models
type (
	InvoiceData     = model.InvoiceData
	InvoiceResponse = model.InvoiceResponse
	InvoiceParams   = model.InvoiceParams
	InvoiceCustomer = model.InvoiceCustomer
	Item            = model.Item
	Fee             = model.Fee
	Address         = model.Address
	Customer        = model.Customer
)

// Re-export enums
type (
	InvoiceStatus = enum.InvoiceStatus
	ClientType    = enum.ClientType
	Currency      = enum.Currency
	CountryCode   = enum.CountryCode
	PaymentMethod = enum.PaymentMethod
	Locale        = enum.Locale
)

// Re-export invoice statuses
const (
	StatusPending = enum.StatusPending
	StatusPaid    = enum.StatusPaid
	StatusSettled = enum.StatusSettled
	StatusExpired = enum.StatusExpired
)

// Re-export currencies
const (
	CurrencyIDR = enum.CurrencyIDR
	CurrencyPHP = enum.CurrencyPHP
	CurrencyTHB = enum.CurrencyTHB
	CurrencyVND = enum.CurrencyVND
	CurrencyMYR = enum.CurrencyMYR
)

// Re-export error types
type (
	ValidationError   = validation.Error
	DecodeError       = model.DecodeError
	GatewayError      = gateway.GatewayError
	ConnectivityError = gateway.ConnectivityError
	ConfigError       = gateway.ConfigError
)

// Sentinels for errors.Is
var (
	ErrInvalid         = validation.ErrInvalid
	ErrInvalidValue    = enum.ErrInvalidValue
	ErrGateway         = gateway.ErrGateway
	ErrConnectivity    = gateway.ErrConnectivity
	ErrNotFound        = gateway.ErrNotFound
	ErrInvalidArgument = gateway.ErrInvalidArgument
)

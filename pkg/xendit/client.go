package xendit

import (
	"github.com/mrfansi/xendit-go/internal/config"
	"github.com/mrfansi/xendit-go/internal/enum"
	"github.com/mrfansi/xendit-go/internal/gateway"
	"github.com/mrfansi/xendit-go/internal/model"
	"github.com/mrfansi/xendit-go/internal/server"
)

type (
	// Client talks to the Xendit Invoice API. WithUserID, WithSplitRule and
	// WithIdempotencyKey return copies; the receiver is never modified.
	Client = gateway.Client
	// Config holds the endpoint, secret key and request timeout
	Config = gateway.Config
	// Option customizes a Client
	Option = gateway.Option
	// Metrics are the prometheus collectors a Client reports to
	Metrics = gateway.Metrics
	// Sandbox is a local server speaking the invoice endpoints
	Sandbox = server.Server
	// SandboxConfig configures a Sandbox
	SandboxConfig = server.Config
)

// Client options
var (
	WithTransport  = gateway.WithTransport
	WithHTTPClient = gateway.WithHTTPClient
	WithLogger     = gateway.WithLogger
	WithMetrics    = gateway.WithMetrics
	NewMetrics     = gateway.NewMetrics
)

// NewClient creates a client; an empty BaseURL means DefaultBaseURL
func NewClient(cfg Config, opts ...Option) (*Client, error) {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	return gateway.New(cfg, opts...)
}

// NewClientFromEnv creates a client from XENDIT_* variables, reading envPath
// first when it is set
func NewClientFromEnv(envPath string, opts ...Option) (*Client, error) {
	cfg, err := config.Load(envPath)
	if err != nil {
		return nil, err
	}
	client, err := gateway.New(Config{
		BaseURL:   cfg.BaseURL,
		SecretKey: cfg.SecretKey,
		Timeout:   cfg.Timeout,
	}, opts...)
	if err != nil {
		return nil, err
	}
	if cfg.ForUserID != "" {
		client = client.WithUserID(cfg.ForUserID)
	}
	return client, nil
}

// NewSandbox creates a local sandbox; serve it with Run or mount Handler
func NewSandbox(cfg SandboxConfig) (*Sandbox, error) {
	return server.NewServer(&cfg)
}

// Constructors validating their input
var (
	NewInvoiceData     = model.NewInvoiceData
	NewInvoiceParams   = model.NewInvoiceParams
	NewInvoiceCustomer = model.NewInvoiceCustomer
	NewItem            = model.NewItem
	NewFee             = model.NewFee
)

// Decoders for gateway payloads
var (
	InvoiceResponseFromMap = model.InvoiceResponseFromMap
	InvoiceDataFromMap     = model.InvoiceDataFromMap
)

// Enum lookups
var (
	ParseInvoiceStatus       = enum.ParseInvoiceStatus
	ParseCurrency            = enum.ParseCurrency
	ParsePaymentMethod       = enum.ParsePaymentMethod
	PaymentMethodsForCountry = enum.PaymentMethodsForCountry
	CurrencyForCountry       = enum.CurrencyForCountry
)

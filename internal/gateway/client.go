// Package gateway is the Xendit Invoice API client.
//
// A Client is immutable: the header handles (WithUserID, WithSplitRule,
// WithIdempotencyKey) return a new Client and leave the receiver untouched,
// so one Client can be shared across goroutines.
package gateway

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/mrfansi/xendit-go/internal/logger"
)

// Header names understood by the gateway
const (
	HeaderForUserID      = "for-user-id"
	HeaderWithSplitRule  = "with-split-rule"
	HeaderIdempotencyKey = "Idempotency-key"
)

// Config is the required connection settings
type Config struct {
	BaseURL   string
	SecretKey string
	Timeout   time.Duration
}

// Option configures the client
type Option func(*clientConfig)

type clientConfig struct {
	transport Transport
	logger    *zap.Logger
	metrics   *Metrics
}

// WithTransport replaces the default net/http transport
func WithTransport(t Transport) Option {
	return func(cfg *clientConfig) {
		cfg.transport = t
	}
}

// WithHTTPClient sends requests through client
func WithHTTPClient(client *http.Client) Option {
	return func(cfg *clientConfig) {
		cfg.transport = NewHTTPTransportWithClient(client)
	}
}

// WithLogger sets the logger failures are reported to
func WithLogger(l *zap.Logger) Option {
	return func(cfg *clientConfig) {
		cfg.logger = l
	}
}

// WithMetrics records every call on m
func WithMetrics(m *Metrics) Option {
	return func(cfg *clientConfig) {
		cfg.metrics = m
	}
}

// Client talks to the Xendit Invoice API
type Client struct {
	baseURL   string
	secretKey string
	header    http.Header
	transport Transport
	log       *zap.Logger
	metrics   *Metrics
}

// New validates cfg and creates a client
func New(cfg Config, opts ...Option) (*Client, error) {
	baseURL := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if baseURL == "" {
		return nil, &ConfigError{Message: "Xendit API endpoint must be configured"}
	}
	if strings.TrimSpace(cfg.SecretKey) == "" {
		return nil, &ConfigError{Message: "Xendit API key must be configured"}
	}

	o := &clientConfig{}
	for _, opt := range opts {
		opt(o)
	}
	if o.transport == nil {
		o.transport = NewHTTPTransport(cfg.Timeout)
	}

	c := &Client{
		baseURL:   baseURL,
		secretKey: cfg.SecretKey,
		header:    http.Header{},
		transport: o.transport,
		log:       logger.OrNop(o.logger).Named("xendit"),
		metrics:   o.metrics,
	}
	c.header.Set("Accept", "application/json")
	c.header.Set("Content-Type", "application/json")
	c.header.Set("Authorization", basicAuth(cfg.SecretKey))
	return c, nil
}

func basicAuth(secretKey string) string {
	return "Basic " + base64.StdEncoding.EncodeToString([]byte(secretKey+":"))
}

// BaseURL returns the endpoint the client sends to
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Header returns a copy of the headers sent on every request
func (c *Client) Header() http.Header {
	return c.header.Clone()
}

func (c *Client) withHeader(key, value string) *Client {
	next := *c
	next.header = c.header.Clone()
	// Set would canonicalize; the gateway expects these names verbatim.
	next.header[key] = []string{value}
	return &next
}

// WithUserID returns a client acting for a xenPlatform sub-account
func (c *Client) WithUserID(userID string) *Client {
	return c.withHeader(HeaderForUserID, userID)
}

// WithSplitRule returns a client that routes payments through a split rule
func (c *Client) WithSplitRule(splitRuleID string) *Client {
	return c.withHeader(HeaderWithSplitRule, splitRuleID)
}

// WithIdempotencyKey returns a client whose requests carry key
func (c *Client) WithIdempotencyKey(key string) *Client {
	return c.withHeader(HeaderIdempotencyKey, key)
}

// WithGeneratedIdempotencyKey is WithIdempotencyKey with a random UUID
func (c *Client) WithGeneratedIdempotencyKey() (*Client, string) {
	key := uuid.NewString()
	return c.WithIdempotencyKey(key), key
}

// do sends one request and returns the response whatever its status. Only
// a transport failure is an error here.
func (c *Client) do(ctx context.Context, op, method, path string, query string, payload any) (*Response, error) {
	url := c.baseURL + path
	if query != "" {
		url += "?" + query
	}

	req := &Request{Method: method, URL: url, Header: c.header.Clone()}
	if payload != nil {
		body, err := json.Marshal(payload)
		if err != nil {
			return nil, NewGatewayError(op, 0, ErrCodeEncode, "", err)
		}
		req.Body = body
	}

	c.log.Debug("sending request",
		zap.String("operation", op),
		zap.String("method", method),
		zap.String("url", url),
		zap.Any("headers", logger.MaskHeaders(req.Header)),
	)

	start := time.Now()
	resp, err := c.transport.Send(ctx, req)
	if err != nil {
		c.metrics.observe(op, 0, time.Since(start))
		return nil, NewConnectivityError(op, url, err)
	}
	c.metrics.observe(op, resp.StatusCode, time.Since(start))
	return resp, nil
}

// failure converts a non-2xx response into a GatewayError
func failure(op string, resp *Response) *GatewayError {
	body := strings.TrimSpace(string(resp.Body))
	code := ErrCodeAPI
	var payload struct {
		ErrorCode string `json:"error_code"`
	}
	if json.Unmarshal(resp.Body, &payload) == nil && payload.ErrorCode != "" {
		code = payload.ErrorCode
	}
	return NewGatewayError(op, resp.StatusCode, code, body, nil)
}

// report logs a failed operation and returns err unchanged
func (c *Client) report(message string, err error, fields ...zap.Field) error {
	fields = append(fields, zap.Error(err), zap.String("secret_key", logger.MaskAPIKey(c.secretKey)))
	var gerr *GatewayError
	if errors.As(err, &gerr) {
		fields = append(fields, zap.Int("status", gerr.StatusCode), zap.String("code", gerr.Code))
	}
	c.log.Error(message, fields...)
	return err
}

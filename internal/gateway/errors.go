package gateway

import (
	"errors"
	"fmt"
	"net/http"
)

// Error codes reported on GatewayError.Code when the gateway body carries
// none of its own
const (
	ErrCodeAPI             = "API_ERROR"
	ErrCodeInvalidResponse = "INVALID_RESPONSE"
	ErrCodeNotFound        = "INVOICE_NOT_FOUND_ERROR"
	ErrCodeEncode          = "ENCODE_ERROR"
)

var (
	// ErrConnectivity matches every *ConnectivityError via errors.Is
	ErrConnectivity = errors.New("gateway unreachable")
	// ErrGateway matches every *GatewayError via errors.Is
	ErrGateway = errors.New("gateway request failed")
	// ErrNotFound matches a gateway 404 and a failed lookup by external id
	ErrNotFound = errors.New("invoice not found")
	// ErrInvalidArgument is returned for caller mistakes caught before any request
	ErrInvalidArgument = errors.New("invalid argument")
)

// ConfigError reports a missing connection setting
type ConfigError struct {
	Message string
}

func (e *ConfigError) Error() string {
	return e.Message
}

func (e *ConfigError) Is(target error) bool {
	return target == ErrInvalidArgument
}

// ConnectivityError means no HTTP response was received
type ConnectivityError struct {
	Op    string
	URL   string
	Cause error
}

func (e *ConnectivityError) Error() string {
	return fmt.Sprintf("Failed to %s: cannot reach %s (%v)", e.Op, e.URL, e.Cause)
}

func (e *ConnectivityError) Unwrap() error {
	return e.Cause
}

func (e *ConnectivityError) Is(target error) bool {
	return target == ErrConnectivity
}

// NewConnectivityError creates a new connectivity error
func NewConnectivityError(op, url string, cause error) *ConnectivityError {
	return &ConnectivityError{Op: op, URL: url, Cause: cause}
}

// GatewayError is any other failed operation: a non-2xx status, an
// unreadable response, or a missing invoice
type GatewayError struct {
	Op         string
	StatusCode int
	Code       string
	Body       string
	Cause      error
}

func (e *GatewayError) Error() string {
	switch {
	case e.Body != "":
		return fmt.Sprintf("Failed to %s: %s", e.Op, e.Body)
	case e.Cause != nil:
		return fmt.Sprintf("Failed to %s: %v", e.Op, e.Cause)
	case e.StatusCode != 0:
		return fmt.Sprintf("Failed to %s: %d %s", e.Op, e.StatusCode, http.StatusText(e.StatusCode))
	}
	return fmt.Sprintf("Failed to %s", e.Op)
}

func (e *GatewayError) Unwrap() error {
	return e.Cause
}

func (e *GatewayError) Is(target error) bool {
	switch target {
	case ErrGateway:
		return true
	case ErrNotFound:
		return e.StatusCode == http.StatusNotFound || e.Code == ErrCodeNotFound
	}
	return false
}

// NewGatewayError creates a new gateway error
func NewGatewayError(op string, status int, code, body string, cause error) *GatewayError {
	return &GatewayError{
		Op:         op,
		StatusCode: status,
		Code:       code,
		Body:       body,
		Cause:      cause,
	}
}

// ErrInvalidResponse returns error when a 2xx body cannot be decoded
func ErrInvalidResponse(op string, status int, cause error) *GatewayError {
	return NewGatewayError(op, status, ErrCodeInvalidResponse, "", cause)
}

// ErrInvoiceNotFound returns error when no invoice carries the external id
func ErrInvoiceNotFound(externalID string) *GatewayError {
	return NewGatewayError(opFind, http.StatusNotFound, ErrCodeNotFound, "",
		fmt.Errorf("external id %q: %w", externalID, ErrNotFound))
}

package server

import "github.com/gin-gonic/gin"

// Error codes returned in ErrorResponse, named as the gateway names them
const (
	ErrCodeValidation = "API_VALIDATION_ERROR"
	ErrCodeInvalidKey = "INVALID_API_KEY"
	ErrCodeNotFound   = "INVOICE_NOT_FOUND_ERROR"
	ErrCodeNotPending = "INVOICE_NOT_PENDING_ERROR"
	ErrCodeServer     = "SERVER_ERROR"
)

// ErrorResponse is the gateway error body
type ErrorResponse struct {
	ErrorCode string `json:"error_code"`
	Message   string `json:"message"`
}

// HealthResponse is the response for the health endpoint
type HealthResponse struct {
	Status   string `json:"status"`
	Time     string `json:"time"`
	Invoices int    `json:"invoices"`
}

func abortWithError(c *gin.Context, status int, code, message string) {
	c.AbortWithStatusJSON(status, ErrorResponse{ErrorCode: code, Message: message})
}

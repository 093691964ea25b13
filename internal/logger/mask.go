package logger

import (
	"net/http"
	"strings"
)

var sensitiveHeaders = []string{
	"authorization",
	"idempotency-key",
	"x-api-key",
	"x-callback-token",
}

// MaskAuthorization masks Basic and Bearer credentials, keeping the scheme
func MaskAuthorization(value string) string {
	value = strings.TrimSpace(value)
	if value == "" {
		return ""
	}
	parts := strings.Fields(value)
	if len(parts) == 2 && (strings.EqualFold(parts[0], "Bearer") || strings.EqualFold(parts[0], "Basic")) {
		return parts[0] + " " + maskLast4(parts[1])
	}
	return maskLast4(value)
}

// MaskAPIKey keeps only the last 4 characters of a secret key
func MaskAPIKey(value string) string {
	return maskLast4(value)
}

// MaskHeaders returns a flattened copy of headers with credentials masked
func MaskHeaders(headers http.Header) map[string]string {
	masked := make(map[string]string, len(headers))
	for key, values := range headers {
		joined := strings.Join(values, ",")
		switch name := strings.ToLower(strings.TrimSpace(key)); {
		case name == "authorization":
			masked[key] = MaskAuthorization(joined)
		case isSensitiveHeader(name):
			masked[key] = maskLast4(joined)
		default:
			masked[key] = joined
		}
	}
	return masked
}

func isSensitiveHeader(name string) bool {
	for _, h := range sensitiveHeaders {
		if name == h {
			return true
		}
	}
	return false
}

func maskLast4(value string) string {
	value = strings.TrimSpace(value)
	if value == "" {
		return ""
	}
	if len(value) <= 4 {
		return "****"
	}
	return "****" + value[len(value)-4:]
}

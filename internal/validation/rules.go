// Package validation holds the field rules shared by the invoice DTOs.
//
// Rules are pure functions. Optional fields are passed as pointers and a nil
// pointer always passes. Messages are part of the public contract.
package validation

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/mrfansi/xendit-go/internal/enum"
)

var (
	alphanumericPattern = regexp.MustCompile(`^[a-zA-Z0-9\s]+$`)
	addressSafePattern  = regexp.MustCompile(`^[a-zA-Z0-9\s.,\-/]+$`)
	e164Pattern         = regexp.MustCompile(`^\+[1-9]\d{1,14}$`)
	datePattern         = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
	currencyCodePattern = regexp.MustCompile(`^[A-Z]{3}$`)
)

var formats = validator.New()

const dateLayout = "2006-01-02"

// IsAlphanumeric reports whether s is letters, digits and whitespace only
func IsAlphanumeric(s string) bool {
	return alphanumericPattern.MatchString(s)
}

// IsAddressSafe is IsAlphanumeric plus . , - /
func IsAddressSafe(s string) bool {
	return addressSafePattern.MatchString(s)
}

// IsCountryCode reports whether s is exactly two ASCII letters
func IsCountryCode(s string) bool {
	if len(s) != 2 {
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		if !(c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z') {
			return false
		}
	}
	return true
}

// IsE164 reports whether s is + followed by 2 to 15 digits, the first non-zero
func IsE164(s string) bool {
	return e164Pattern.MatchString(s)
}

// IsEmail reports whether s is a single bare email address
func IsEmail(s string) bool {
	return formats.Var(s, "required,email") == nil
}

// IsURL reports whether s is an absolute URL
func IsURL(s string) bool {
	return formats.Var(s, "required,url") == nil
}

// IsHTTPURL reports whether s is an absolute http or https URL
func IsHTTPURL(s string) bool {
	return formats.Var(s, "required,http_url") == nil
}

// IsDateFormat reports whether s looks like YYYY-MM-DD
func IsDateFormat(s string) bool {
	return datePattern.MatchString(s)
}

// IsCalendarDate reports whether s is a YYYY-MM-DD date that exists
func IsCalendarDate(s string) bool {
	if !IsDateFormat(s) {
		return false
	}
	_, err := time.Parse(dateLayout, s)
	return err == nil
}

// IsCurrencyCode reports whether s is three upper-case letters
func IsCurrencyCode(s string) bool {
	return currencyCodePattern.MatchString(s)
}

var iso8601Layouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05Z0700",
	"2006-01-02T15:04:05",
	dateLayout,
}

// ParseISO8601 parses the ISO 8601 forms the gateway accepts
func ParseISO8601(s string) (time.Time, error) {
	for _, layout := range iso8601Layouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("not an ISO 8601 timestamp: %q", s)
}

// Required fails when v is blank after trimming
func Required(field, label, v string) error {
	if strings.TrimSpace(v) == "" {
		return NewError(field, v, RuleRequired, label+" is required")
	}
	return nil
}

// MaxLength fails when v is longer than max bytes
func MaxLength(field, label, v string, max int) error {
	if len(v) > max {
		return NewError(field, v, RuleMaxLength, fmt.Sprintf("%s must not exceed %d characters", label, max))
	}
	return nil
}

// Alphanumeric fails when v contains anything but letters, digits and whitespace
func Alphanumeric(field, label, v string) error {
	if !IsAlphanumeric(v) {
		return NewError(field, v, RuleCharset, label+" must be alphanumeric")
	}
	return nil
}

// Country fails when v is not a two-letter country code
func Country(field, label, v string) error {
	if !IsCountryCode(v) {
		return NewError(field, v, RuleFormat, label+" must be a valid ISO 3166-2 code (2 letters)")
	}
	return nil
}

// DateFormat fails when v is not a real YYYY-MM-DD date
func DateFormat(field, label, v string) error {
	if !IsCalendarDate(v) {
		return NewError(field, v, RuleFormat, label+" must be in YYYY-MM-DD format")
	}
	return nil
}

// CurrencyCode fails when v is not an ISO 4217 code
func CurrencyCode(field, v string) error {
	if !IsCurrencyCode(v) {
		return NewError(field, v, RuleFormat, "Currency must be a valid ISO 4217 code (3 letters)")
	}
	return nil
}

// OneOf fails when v is not a member of allowed, listing the allowed set
func OneOf[T ~string](field, label string, v T, allowed []T) error {
	if !enum.Contains(allowed, v) {
		return NewError(field, string(v), RuleOneOf, fmt.Sprintf("%s must be one of: %s", label, enum.Join(allowed)))
	}
	return nil
}

// BoundedText is MaxLength followed by Alphanumeric
func BoundedText(field, label, v string, max int) error {
	return First(
		MaxLength(field, label, v, max),
		Alphanumeric(field, label, v),
	)
}

// Optional runs check only when v is present
func Optional[T any](v *T, check func(T) error) error {
	if v == nil {
		return nil
	}
	return check(*v)
}

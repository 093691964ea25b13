package validation

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/shopspring/decimal"

	money "github.com/mrfansi/xendit-go/internal/decimal"
	"github.com/mrfansi/xendit-go/internal/enum"
)

// Invoice limits enforced by the gateway
const (
	MaxExternalIDLength    = 255
	MaxRedirectURLLength   = 255
	MinInvoiceDuration     = 1
	MaxInvoiceDuration     = 31536000
	MaxItems               = 75
	MaxFees                = 10
	MaxMetadataKeys        = 50
	MaxMetadataKeyLength   = 40
	MaxMetadataValueLength = 500
	MaxItemNameLength      = 256
	MaxItemQuantity        = 510000
	MinListLimit           = 1
	MaxListLimit           = 100
)

var binPattern = regexp.MustCompile(`^(\d{6}|\d{8})$`)

// InstallmentIssuers are the banks allowed in installment terms
var InstallmentIssuers = []string{
	"BCA", "BNI", "MANDIRI", "BRI", "PERMATA", "OCBCNISP", "HSBCID",
	"BTPN", "DBSID", "CIMB", "DANAMON", "UOBID", "MAYBANKID", "BSI",
}

// ExternalID validates the merchant's invoice reference
func ExternalID(v string) error {
	if len(v) < 1 || len(v) > MaxExternalIDLength {
		return NewError("external_id", v, RuleRange, "External ID must be between 1 and 255 characters")
	}
	return nil
}

// Amount requires a strictly positive invoice amount
func Amount(v decimal.Decimal) error {
	if !money.IsPositive(v) {
		return NewError("amount", v.String(), RuleRange, "Amount must be greater than 0")
	}
	return nil
}

// InvoiceDescription rejects a present but empty description
func InvoiceDescription(v *string) error {
	return Optional(v, func(s string) error {
		if len(s) < 1 {
			return NewError("description", s, RuleMinLength, "Description must be at least 1 character")
		}
		return nil
	})
}

// NotificationEvent validates a notification preference key
func NotificationEvent(t enum.NotificationType) error {
	if !t.IsValid() {
		return NewError("customer_notification_preference", string(t), RuleOneOf, "Invalid notification type: "+string(t))
	}
	return nil
}

// NotificationChannel validates one channel of a notification preference.
// SMS is a customer channel but invoices cannot be delivered over it.
func NotificationChannel(c enum.NotificationChannel) error {
	if !enum.Contains(enum.InvoiceNotificationChannels(), c) {
		return NewError("customer_notification_preference", string(c), RuleOneOf, "Invalid channel: "+string(c))
	}
	return nil
}

// ChannelList reports a preference entry whose value is not a list
func ChannelList(raw any) error {
	return NewError("customer_notification_preference", raw, RuleType, "Channels must be an array")
}

// InvoiceDuration validates the optional validity window in seconds
func InvoiceDuration(v *int) error {
	return Optional(v, func(n int) error {
		if n < MinInvoiceDuration || n > MaxInvoiceDuration {
			return NewError("invoice_duration", n, RuleRange, "Invoice duration must be between 1 and 31536000 seconds")
		}
		return nil
	})
}

func redirectURL(field, label string, v *string) error {
	return Optional(v, func(s string) error {
		if len(s) < 1 || len(s) > MaxRedirectURLLength {
			return NewError(field, s, RuleRange, label+" must be between 1 and 255 characters")
		}
		if !IsURL(s) {
			return NewError(field, s, RuleFormat, label+" must be a valid URL")
		}
		return nil
	})
}

// SuccessRedirectURL validates where the payer lands after paying
func SuccessRedirectURL(v *string) error {
	return redirectURL("success_redirect_url", "Success redirect URL", v)
}

// FailureRedirectURL validates where the payer lands after a failure
func FailureRedirectURL(v *string) error {
	return redirectURL("failure_redirect_url", "Failure redirect URL", v)
}

// ReminderTime checks the reminder against the bound of its unit. Without a
// unit the value is not checked.
func ReminderTime(n *int, unit *enum.ReminderTimeUnit) error {
	if n == nil || unit == nil || !unit.IsValid() {
		return nil
	}
	if !unit.IsValidValue(*n) {
		return NewError("reminder_time", *n, RuleRange,
			fmt.Sprintf("Reminder time must be between 1 and %d %s", unit.MaxValue(), strings.ToLower(string(*unit))))
	}
	return nil
}

// ItemCount caps the number of line items
func ItemCount(n int) error {
	if n > MaxItems {
		return NewError("items", n, RuleCount, fmt.Sprintf("Maximum %d items allowed", MaxItems))
	}
	return nil
}

// FeeCount caps the number of fees
func FeeCount(n int) error {
	if n > MaxFees {
		return NewError("fees", n, RuleCount, fmt.Sprintf("Maximum %d fees allowed", MaxFees))
	}
	return nil
}

// Metadata validates key count, key length and the rendered value length
func Metadata(m map[string]any) error {
	if m == nil {
		return nil
	}
	if len(m) > MaxMetadataKeys {
		return NewError("metadata", len(m), RuleCount, fmt.Sprintf("Metadata must not exceed %d keys", MaxMetadataKeys))
	}
	for k, v := range m {
		if len(k) > MaxMetadataKeyLength {
			return NewError("metadata."+k, k, RuleMaxLength, fmt.Sprintf("Metadata key must not exceed %d characters", MaxMetadataKeyLength))
		}
		if len(fmt.Sprint(v)) > MaxMetadataValueLength {
			return NewError("metadata."+k, v, RuleMaxLength, fmt.Sprintf("Metadata value must not exceed %d characters", MaxMetadataValueLength))
		}
	}
	return nil
}

// PaymentMethod validates one entry of the payment methods list
func PaymentMethod(m enum.PaymentMethod) error {
	if !m.IsValid() {
		return NewError("payment_methods", string(m), RuleOneOf, "Invalid payment method: "+string(m))
	}
	return nil
}

// InvoiceCurrency validates the optional invoice currency
func InvoiceCurrency(c *enum.Currency) error {
	return Optional(c, func(c enum.Currency) error {
		return OneOf("currency", "Currency", c, enum.CurrencyValues())
	})
}

// InvoiceLocale validates the optional checkout locale
func InvoiceLocale(l *enum.Locale) error {
	return Optional(l, func(l enum.Locale) error {
		return OneOf("locale", "Locale", l, enum.LocaleValues())
	})
}

// ItemName validates a line item name
func ItemName(v string) error {
	if strings.TrimSpace(v) == "" {
		return NewError("name", v, RuleRequired, "Item name is required")
	}
	if len(v) > MaxItemNameLength {
		return NewError("name", v, RuleMaxLength, fmt.Sprintf("Item name cannot exceed %d characters", MaxItemNameLength))
	}
	return nil
}

// ItemQuantity validates a line item quantity
func ItemQuantity(n int) error {
	if n < 1 {
		return NewError("quantity", n, RuleRange, "Item quantity must be greater than 0")
	}
	if n > MaxItemQuantity {
		return NewError("quantity", n, RuleRange, fmt.Sprintf("Item quantity cannot exceed %d", MaxItemQuantity))
	}
	return nil
}

// ItemPrice rejects negative unit prices
func ItemPrice(v decimal.Decimal) error {
	if !money.IsNonNegative(v) {
		return NewError("price", v.String(), RuleRange, "Item price must not be negative")
	}
	return nil
}

// ItemURL validates the optional product page
func ItemURL(v *string) error {
	return Optional(v, func(s string) error {
		if !IsHTTPURL(s) {
			return NewError("url", s, RuleFormat, "Item URL must be a valid HTTP or HTTPS URL")
		}
		return nil
	})
}

// FeeType validates the fee label
func FeeType(v string) error {
	if strings.TrimSpace(v) == "" {
		return NewError("type", v, RuleRequired, "Fee type cannot be empty")
	}
	return nil
}

// CardBIN validates one allowed card BIN
func CardBIN(v string) error {
	if !binPattern.MatchString(v) {
		return NewError("allowed_bins", v, RuleFormat, "Credit card BIN must be either 6 or 8 digits")
	}
	return nil
}

// Issuer validates an installment issuer bank
func Issuer(v string) error {
	for _, issuer := range InstallmentIssuers {
		if issuer == v {
			return nil
		}
	}
	return NewError("issuer", v, RuleOneOf, "Invalid issuer. Must be one of: "+strings.Join(InstallmentIssuers, ", "))
}

// Terms requires every installment tenor to be a positive integer
func Terms(terms []int) error {
	for _, t := range terms {
		if t < 1 {
			return NewError("terms", t, RuleRange, "Terms must be positive integers")
		}
	}
	return nil
}

// InstallmentBounds rejects a min amount above the max amount
func InstallmentBounds(min, max *decimal.Decimal) error {
	if min != nil && !money.IsNonNegative(*min) {
		return NewError("min_amount", min.String(), RuleRange, "Minimum amount must not be negative")
	}
	if max != nil && !money.IsNonNegative(*max) {
		return NewError("max_amount", max.String(), RuleRange, "Maximum amount must not be negative")
	}
	if min != nil && max != nil && min.GreaterThan(*max) {
		return NewError("min_amount", min.String(), RuleRangeOrder, "Minimum amount must not exceed maximum amount")
	}
	return nil
}

// ListLimit validates the page size of an invoice listing
func ListLimit(n int) error {
	if n < MinListLimit || n > MaxListLimit {
		return NewError("limit", n, RuleRange, fmt.Sprintf("Limit must be between %d and %d", MinListLimit, MaxListLimit))
	}
	return nil
}

// StatusFilter validates one status of a listing filter
func StatusFilter(s enum.InvoiceStatus) error {
	if !s.IsValid() {
		return NewError("statuses", string(s), RuleOneOf, "Invalid status: "+string(s))
	}
	return nil
}

// ClientTypeFilter validates one client type of a listing filter
func ClientTypeFilter(c enum.ClientType) error {
	if !c.IsValid() {
		return NewError("client_types", string(c), RuleOneOf, "Invalid client type: "+string(c))
	}
	return nil
}

// PaymentChannelFilter validates one payment channel of a listing filter
func PaymentChannelFilter(m enum.PaymentMethod) error {
	if !m.IsValid() {
		return NewError("payment_channels", string(m), RuleOneOf, "Invalid payment channel: "+string(m))
	}
	return nil
}

// DateRange validates a paired after/before filter named prefix. Both bounds
// must be given together, parse as ISO 8601 and be in order.
func DateRange(prefix string, after, before *string) error {
	if after == nil && before == nil {
		return nil
	}
	afterKey, beforeKey := prefix+"_after", prefix+"_before"
	if after == nil || before == nil {
		return NewError(prefix, nil, RulePaired,
			fmt.Sprintf("Both %s and %s must be provided together", afterKey, beforeKey))
	}
	from, err := ParseISO8601(*after)
	if err != nil {
		return NewError(afterKey, *after, RuleISO8601, fmt.Sprintf("Invalid ISO 8601 date format for %s range", prefix))
	}
	to, err := ParseISO8601(*before)
	if err != nil {
		return NewError(beforeKey, *before, RuleISO8601, fmt.Sprintf("Invalid ISO 8601 date format for %s range", prefix))
	}
	if from.After(to) {
		return NewError(afterKey, *after, RuleRangeOrder, fmt.Sprintf("%s must be before %s", afterKey, beforeKey))
	}
	return nil
}

// Package decimal carries the amount helpers shared by the invoice DTOs,
// the sandbox gateway and the CLI.
package decimal

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/mrfansi/xendit-go/internal/enum"
)

// Zero is decimal zero
var Zero = decimal.Zero

// FromString parses decimal from string
func FromString(s string) (decimal.Decimal, error) {
	return decimal.NewFromString(strings.TrimSpace(s))
}

// FromAny converts a decoded JSON value into a decimal. Numbers decoded with
// UseNumber arrive as json.Number and keep their exact digits.
func FromAny(v any) (decimal.Decimal, error) {
	switch n := v.(type) {
	case decimal.Decimal:
		return n, nil
	case json.Number:
		return decimal.NewFromString(n.String())
	case string:
		return FromString(n)
	case float64:
		return decimal.NewFromFloat(n), nil
	case float32:
		return decimal.NewFromFloat32(n), nil
	case int:
		return decimal.NewFromInt(int64(n)), nil
	case int64:
		return decimal.NewFromInt(n), nil
	case int32:
		return decimal.NewFromInt32(n), nil
	}
	return Zero, fmt.Errorf("cannot convert %T to decimal", v)
}

// ToWire renders an amount as a JSON number literal
func ToWire(d decimal.Decimal) json.Number {
	return json.Number(d.String())
}

// MinorUnits returns the number of decimal places a currency settles in
func MinorUnits(c enum.Currency) int32 {
	switch c {
	case enum.CurrencyIDR, enum.CurrencyVND:
		return 0
	}
	return 2
}

// Round rounds an amount to the settlement precision of its currency
func Round(d decimal.Decimal, c enum.Currency) decimal.Decimal {
	return d.Round(MinorUnits(c))
}

// Format renders an amount with thousands separators, e.g. "IDR 1,250,000"
func Format(d decimal.Decimal, c enum.Currency) string {
	places := MinorUnits(c)
	s := Round(d, c).StringFixed(places)
	sign := ""
	if strings.HasPrefix(s, "-") {
		sign, s = "-", s[1:]
	}
	whole, frac := s, ""
	if i := strings.IndexByte(s, '.'); i >= 0 {
		whole, frac = s[:i], s[i:]
	}
	var b strings.Builder
	for i, r := range whole {
		if i > 0 && (len(whole)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}
	out := sign + b.String() + frac
	if c == "" {
		return out
	}
	return string(c) + " " + out
}

// LineTotal computes: price * quantity
func LineTotal(price decimal.Decimal, quantity int) decimal.Decimal {
	return price.Mul(decimal.NewFromInt(int64(quantity)))
}

// Sum sums a slice of decimals
func Sum(values []decimal.Decimal) decimal.Decimal {
	result := Zero
	for _, v := range values {
		result = result.Add(v)
	}
	return result
}

// IsPositive returns true if decimal is greater than zero
func IsPositive(d decimal.Decimal) bool {
	return d.GreaterThan(Zero)
}

// IsNonNegative returns true if decimal is >= zero
func IsNonNegative(d decimal.Decimal) bool {
	return d.GreaterThanOrEqual(Zero)
}

package model

import (
	"github.com/shopspring/decimal"

	money "github.com/mrfansi/xendit-go/internal/decimal"
	"github.com/mrfansi/xendit-go/internal/validation"
)

// Fee is an extra charge on an invoice. A negative value is a discount.
type Fee struct {
	Type  string
	Value decimal.Decimal
}

// NewFee validates and returns the fee
func NewFee(f Fee) (Fee, error) {
	if err := f.Validate(); err != nil {
		return Fee{}, err
	}
	return f, nil
}

func (f Fee) Validate() error {
	return validation.FeeType(f.Type)
}

// IsDiscount reports whether the fee lowers the total
func (f Fee) IsDiscount() bool {
	return f.Value.IsNegative()
}

func (f Fee) ToMap() map[string]any {
	return wire{
		"type":  f.Type,
		"value": money.ToWire(f.Value),
	}
}

// FeeFromMap decodes and validates a wire fee
func FeeFromMap(m map[string]any) (Fee, error) {
	d := newDecoder("fee", m)
	f := Fee{
		Type:  d.RequiredString("type"),
		Value: d.RequiredDecimal("value"),
	}
	if err := d.Err(); err != nil {
		return Fee{}, err
	}
	return NewFee(f)
}

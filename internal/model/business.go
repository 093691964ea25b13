package model

import (
	"github.com/mrfansi/xendit-go/internal/enum"
	"github.com/mrfansi/xendit-go/internal/validation"
)

// BusinessDetail describes a legal entity
type BusinessDetail struct {
	BusinessName       string
	BusinessType       enum.BusinessType
	TradingName        *string
	NatureOfBusiness   *string
	BusinessDomicile   *string
	DateOfRegistration *string
}

// NewBusinessDetail validates and returns the detail
func NewBusinessDetail(b BusinessDetail) (BusinessDetail, error) {
	if err := b.Validate(); err != nil {
		return BusinessDetail{}, err
	}
	return b, nil
}

func (b BusinessDetail) Validate() error {
	return validation.First(
		validation.BusinessName(b.BusinessName),
		validation.BusinessType(b.BusinessType),
		validation.TradingName(b.TradingName),
		validation.NatureOfBusiness(b.NatureOfBusiness),
		validation.BusinessDomicile(b.BusinessDomicile),
		validation.BusinessDateOfRegistration(b.DateOfRegistration),
	)
}

// WithTradingName returns a copy with the trading name replaced
func (b BusinessDetail) WithTradingName(name string) (BusinessDetail, error) {
	b.TradingName = &name
	return NewBusinessDetail(b)
}

func (b BusinessDetail) ToMap() map[string]any {
	w := wire{
		"business_name": b.BusinessName,
		"business_type": string(b.BusinessType),
	}
	put(w, "trading_name", b.TradingName)
	put(w, "nature_of_business", b.NatureOfBusiness)
	put(w, "business_domicile", b.BusinessDomicile)
	put(w, "date_of_registration", b.DateOfRegistration)
	return w
}

// BusinessDetailFromMap decodes and validates a wire business detail
func BusinessDetailFromMap(m map[string]any) (BusinessDetail, error) {
	d := newDecoder("business_detail", m)
	b := BusinessDetail{
		BusinessName:       d.RequiredString("business_name"),
		BusinessType:       enum.BusinessType(d.RequiredString("business_type")),
		TradingName:        d.String("trading_name"),
		NatureOfBusiness:   d.String("nature_of_business"),
		BusinessDomicile:   d.String("business_domicile"),
		DateOfRegistration: d.String("date_of_registration"),
	}
	if err := d.Err(); err != nil {
		return BusinessDetail{}, err
	}
	return NewBusinessDetail(b)
}

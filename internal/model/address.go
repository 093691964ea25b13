package model

import (
	"github.com/mrfansi/xendit-go/internal/enum"
	"github.com/mrfansi/xendit-go/internal/validation"
)

// Address is a postal address of a customer
type Address struct {
	Country       string
	ProvinceState *string
	City          *string
	StreetLine1   *string
	StreetLine2   *string
	PostalCode    *string
	Category      *enum.AddressCategory
	IsPrimary     bool
}

// NewAddress validates and returns the address
func NewAddress(a Address) (Address, error) {
	if err := a.Validate(); err != nil {
		return Address{}, err
	}
	return a, nil
}

// Validate checks every field, stopping at the first violation
func (a Address) Validate() error {
	return validation.First(
		validation.AddressCountry(a.Country),
		validation.ProvinceState(a.ProvinceState),
		validation.City(a.City),
		validation.StreetLine1(a.StreetLine1),
		validation.StreetLine2(a.StreetLine2),
		validation.PostalCode(a.PostalCode),
		validation.AddressCategory(a.Category),
	)
}

// WithCity returns a copy with the city replaced
func (a Address) WithCity(city string) (Address, error) {
	a.City = &city
	return NewAddress(a)
}

// WithCategory returns a copy with the category replaced
func (a Address) WithCategory(c enum.AddressCategory) (Address, error) {
	a.Category = &c
	return NewAddress(a)
}

// WithPrimary returns a copy with the primary flag replaced
func (a Address) WithPrimary(primary bool) Address {
	a.IsPrimary = primary
	return a
}

func (a Address) ToMap() map[string]any {
	w := wire{"country": a.Country}
	put(w, "province_state", a.ProvinceState)
	put(w, "city", a.City)
	put(w, "street_line1", a.StreetLine1)
	put(w, "street_line2", a.StreetLine2)
	put(w, "postal_code", a.PostalCode)
	putEnum(w, "category", a.Category)
	w["is_primary"] = a.IsPrimary
	return w
}

// AddressFromMap decodes and validates a wire address
func AddressFromMap(m map[string]any) (Address, error) {
	d := newDecoder("address", m)
	a := Address{
		Country:       d.RequiredString("country"),
		ProvinceState: d.String("province_state"),
		City:          d.String("city"),
		StreetLine1:   d.String("street_line1"),
		StreetLine2:   d.String("street_line2"),
		PostalCode:    d.String("postal_code"),
		Category:      rawEnum[enum.AddressCategory](d, "category"),
	}
	if p := d.Bool("is_primary"); p != nil {
		a.IsPrimary = *p
	}
	if err := d.Err(); err != nil {
		return Address{}, err
	}
	return NewAddress(a)
}

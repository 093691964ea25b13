package model

import (
	"regexp"

	"github.com/mrfansi/xendit-go/internal/enum"
	"github.com/mrfansi/xendit-go/internal/validation"
)

var repeatedPlus = regexp.MustCompile(`\++`)

// InvoiceCustomer is the payer block embedded in an invoice: an individual
// plus contact details
type InvoiceCustomer struct {
	IndividualDetail
	Email        *string
	MobileNumber *string
	Addresses    []Address
}

// NewInvoiceCustomer normalizes the mobile number and validates the customer
func NewInvoiceCustomer(c InvoiceCustomer) (InvoiceCustomer, error) {
	if c.MobileNumber != nil {
		cleaned := CleanMobileNumber(*c.MobileNumber)
		c.MobileNumber = &cleaned
	}
	if err := c.Validate(); err != nil {
		return InvoiceCustomer{}, err
	}
	return c, nil
}

// CleanMobileNumber collapses runs of '+' into one
func CleanMobileNumber(s string) string {
	return repeatedPlus.ReplaceAllString(s, "+")
}

func (c InvoiceCustomer) Validate() error {
	if c.Email != nil && !validation.IsEmail(*c.Email) {
		return validation.NewError("email", *c.Email, validation.RuleFormat, "Invalid email format. Found: "+*c.Email)
	}
	if c.MobileNumber != nil && !validation.IsE164(*c.MobileNumber) {
		return validation.NewError("mobile_number", *c.MobileNumber, validation.RuleFormat,
			"Mobile number must be in E164 format (e.g., +6281234567890). Found: "+*c.MobileNumber)
	}
	for i, a := range c.Addresses {
		if err := a.Validate(); err != nil {
			return validation.AtIndex("addresses", i, err)
		}
	}
	return c.IndividualDetail.Validate()
}

// WithEmail returns a copy with the email replaced
func (c InvoiceCustomer) WithEmail(email string) (InvoiceCustomer, error) {
	c.Email = &email
	return NewInvoiceCustomer(c)
}

// WithMobileNumber returns a copy with the mobile number replaced
func (c InvoiceCustomer) WithMobileNumber(number string) (InvoiceCustomer, error) {
	c.MobileNumber = &number
	return NewInvoiceCustomer(c)
}

// FullName joins given names and surname
func (c InvoiceCustomer) FullName() string {
	if c.Surname == nil || *c.Surname == "" {
		return c.GivenNames
	}
	return c.GivenNames + " " + *c.Surname
}

func (c InvoiceCustomer) ToMap() map[string]any {
	w := wire(c.IndividualDetail.ToMap())
	put(w, "email", c.Email)
	put(w, "mobile_number", c.MobileNumber)
	putList(w, "addresses", c.Addresses)
	return w
}

// InvoiceCustomerFromMap decodes and validates a wire invoice customer
func InvoiceCustomerFromMap(m map[string]any) (InvoiceCustomer, error) {
	d := newDecoder("customer", m)
	c := InvoiceCustomer{
		IndividualDetail: IndividualDetail{
			GivenNames:   d.RequiredString("given_names"),
			Surname:      d.String("surname"),
			Nationality:  d.String("nationality"),
			PlaceOfBirth: d.String("place_of_birth"),
			DateOfBirth:  d.String("date_of_birth"),
			Gender:       rawEnum[enum.Gender](d, "gender"),
		},
		Email:        d.String("email"),
		MobileNumber: d.String("mobile_number"),
		Addresses:    nestedList(d, "addresses", AddressFromMap),
	}
	if err := d.Err(); err != nil {
		return InvoiceCustomer{}, err
	}
	return NewInvoiceCustomer(c)
}

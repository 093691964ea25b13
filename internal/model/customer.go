package model

import (
	"github.com/mrfansi/xendit-go/internal/enum"
	"github.com/mrfansi/xendit-go/internal/validation"
)

// Customer is the full customer record. Type selects which of
// IndividualDetail and BusinessDetail must be set.
type Customer struct {
	ReferenceID            string
	Type                   enum.CustomerType
	IndividualDetail       *IndividualDetail
	BusinessDetail         *BusinessDetail
	MobileNumber           *string
	PhoneNumber            *string
	HashedPhoneNumber      *string
	Email                  *string
	Addresses              []Address
	IdentityAccounts       []IdentityAccount
	KycDocuments           []KycDocument
	Description            *string
	DateOfRegistration     *string
	DomicileOfRegistration *string
	Metadata               map[string]any
}

// NewCustomer validates and returns the customer
func NewCustomer(c Customer) (Customer, error) {
	if err := c.Validate(); err != nil {
		return Customer{}, err
	}
	return c, nil
}

// Validate checks the record and every nested entity in wire order
func (c Customer) Validate() error {
	if err := validation.First(
		validation.ReferenceID(c.ReferenceID),
		validation.CustomerType(c.Type),
		validation.CustomerDetail(c.Type, c.IndividualDetail != nil, c.BusinessDetail != nil),
	); err != nil {
		return err
	}
	if c.IndividualDetail != nil {
		if err := c.IndividualDetail.Validate(); err != nil {
			return validation.Nested("individual_detail", err)
		}
	}
	if c.BusinessDetail != nil {
		if err := c.BusinessDetail.Validate(); err != nil {
			return validation.Nested("business_detail", err)
		}
	}
	if err := validation.First(
		validation.MobileNumber(c.MobileNumber),
		validation.PhoneNumber(c.PhoneNumber),
		validation.Email(c.Email),
	); err != nil {
		return err
	}
	for i, a := range c.Addresses {
		if err := a.Validate(); err != nil {
			return validation.AtIndex("addresses", i, err)
		}
	}
	for i, a := range c.IdentityAccounts {
		if err := a.Validate(); err != nil {
			return validation.AtIndex("identity_accounts", i, err)
		}
	}
	for i, k := range c.KycDocuments {
		if err := k.Validate(); err != nil {
			return validation.AtIndex("kyc_documents", i, err)
		}
	}
	return validation.First(
		validation.CustomerDescription(c.Description),
		validation.DateOfRegistration(c.DateOfRegistration),
		validation.DomicileOfRegistration(c.DomicileOfRegistration),
		validation.Metadata(c.Metadata),
	)
}

// WithEmail returns a copy with the email replaced
func (c Customer) WithEmail(email string) (Customer, error) {
	c.Email = &email
	return NewCustomer(c)
}

// WithMobileNumber returns a copy with the mobile number replaced
func (c Customer) WithMobileNumber(number string) (Customer, error) {
	c.MobileNumber = &number
	return NewCustomer(c)
}

// WithAddress returns a copy with one more address
func (c Customer) WithAddress(a Address) (Customer, error) {
	c.Addresses = append(append([]Address{}, c.Addresses...), a)
	return NewCustomer(c)
}

func (c Customer) ToMap() map[string]any {
	w := wire{
		"reference_id": c.ReferenceID,
		"type":         string(c.Type),
	}
	if c.IndividualDetail != nil {
		w["individual_detail"] = c.IndividualDetail.ToMap()
	}
	if c.BusinessDetail != nil {
		w["business_detail"] = c.BusinessDetail.ToMap()
	}
	put(w, "mobile_number", c.MobileNumber)
	put(w, "phone_number", c.PhoneNumber)
	put(w, "hashed_phone_number", c.HashedPhoneNumber)
	put(w, "email", c.Email)
	putList(w, "addresses", c.Addresses)
	putList(w, "identity_accounts", c.IdentityAccounts)
	putList(w, "kyc_documents", c.KycDocuments)
	put(w, "description", c.Description)
	put(w, "date_of_registration", c.DateOfRegistration)
	put(w, "domicile_of_registration", c.DomicileOfRegistration)
	if c.Metadata != nil {
		w["metadata"] = cloneMap(c.Metadata)
	}
	return w
}

// CustomerFromMap decodes and validates a wire customer
func CustomerFromMap(m map[string]any) (Customer, error) {
	d := newDecoder("customer", m)
	c := Customer{
		ReferenceID:            d.RequiredString("reference_id"),
		Type:                   enum.CustomerType(d.RequiredString("type")),
		IndividualDetail:       nested(d, "individual_detail", IndividualDetailFromMap),
		BusinessDetail:         nested(d, "business_detail", BusinessDetailFromMap),
		MobileNumber:           d.String("mobile_number"),
		PhoneNumber:            d.String("phone_number"),
		HashedPhoneNumber:      d.String("hashed_phone_number"),
		Email:                  d.String("email"),
		Addresses:              nestedList(d, "addresses", AddressFromMap),
		IdentityAccounts:       nestedList(d, "identity_accounts", IdentityAccountFromMap),
		KycDocuments:           nestedList(d, "kyc_documents", KycDocumentFromMap),
		Description:            d.String("description"),
		DateOfRegistration:     d.String("date_of_registration"),
		DomicileOfRegistration: d.String("domicile_of_registration"),
		Metadata:               d.Object("metadata"),
	}
	if err := d.Err(); err != nil {
		return Customer{}, err
	}
	return NewCustomer(c)
}

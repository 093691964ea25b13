package model

import (
	"github.com/mrfansi/xendit-go/internal/enum"
	"github.com/mrfansi/xendit-go/internal/validation"
)

// IdentityAccount is a payment account held by a customer. Properties is
// a free-form map whose required keys depend on Type.
type IdentityAccount struct {
	Type        enum.IdentityAccountType
	Company     *string
	Description *string
	Country     *string
	Properties  map[string]any
}

// NewIdentityAccount validates and returns the account
func NewIdentityAccount(a IdentityAccount) (IdentityAccount, error) {
	if err := a.Validate(); err != nil {
		return IdentityAccount{}, err
	}
	a.Properties = cloneMap(a.Properties)
	return a, nil
}

func (a IdentityAccount) Validate() error {
	return validation.First(
		validation.IdentityAccountType(a.Type),
		validation.Company(a.Company),
		validation.AccountDescription(a.Description),
		validation.AccountCountry(a.Country),
		validation.AccountProperties(a.Type, a.Properties),
	)
}

// WithProperties returns a copy with the properties replaced
func (a IdentityAccount) WithProperties(props map[string]any) (IdentityAccount, error) {
	a.Properties = props
	return NewIdentityAccount(a)
}

func (a IdentityAccount) ToMap() map[string]any {
	w := wire{"type": string(a.Type)}
	put(w, "company", a.Company)
	put(w, "description", a.Description)
	put(w, "country", a.Country)
	if a.Properties != nil {
		w["properties"] = cloneMap(a.Properties)
	}
	return w
}

// IdentityAccountFromMap decodes and validates a wire identity account
func IdentityAccountFromMap(m map[string]any) (IdentityAccount, error) {
	d := newDecoder("identity_account", m)
	a := IdentityAccount{
		Type:        enum.IdentityAccountType(d.RequiredString("type")),
		Company:     d.String("company"),
		Description: d.String("description"),
		Country:     d.String("country"),
		Properties:  d.Object("properties"),
	}
	if err := d.Err(); err != nil {
		return IdentityAccount{}, err
	}
	return NewIdentityAccount(a)
}

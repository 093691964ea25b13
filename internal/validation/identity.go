package validation

import (
	"fmt"

	"github.com/mrfansi/xendit-go/internal/enum"
)

const (
	maxAccountFieldLength = 255
	maxCompanyLength      = 100
)

// IdentityAccountType validates the account rail
func IdentityAccountType(v enum.IdentityAccountType) error {
	return OneOf("type", "Type", v, enum.IdentityAccountTypeValues())
}

// Company validates the optional issuing company
func Company(v *string) error {
	return Optional(v, func(s string) error {
		return MaxLength("company", "Company", s, maxCompanyLength)
	})
}

// AccountDescription validates the optional account description
func AccountDescription(v *string) error {
	return Optional(v, func(s string) error {
		return BoundedText("description", "Description", s, maxAccountFieldLength)
	})
}

// AccountCountry validates the optional account country
func AccountCountry(v *string) error {
	return Optional(v, func(s string) error {
		return Country("country", "Country", s)
	})
}

// AccountProperties validates the type-dependent properties map. Types
// without a schema accept any properties.
func AccountProperties(t enum.IdentityAccountType, props map[string]any) error {
	if props == nil {
		return nil
	}
	p := properties(props)
	switch t {
	case enum.AccountBankAccount:
		return First(
			p.required("account_number", "Bank account number"),
			p.required("account_holder_name", "Bank account holder name"),
			p.alphanumeric("account_number", "Bank account number"),
			p.alphanumeric("account_holder_name", "Bank account holder name"),
			p.alphanumeric("swift_code", "Swift code"),
			p.alphanumeric("account_type", "Account type"),
			p.alphanumeric("account_details", "Account details"),
			p.currency(),
		)
	case enum.AccountEwallet:
		return First(
			p.required("account_number", "E-wallet account number"),
			p.alphanumeric("account_number", "E-wallet account number"),
			p.alphanumeric("account_holder_name", "E-wallet account holder name"),
			p.currency(),
		)
	case enum.AccountCreditCard:
		return p.required("token_id", "Credit card token ID")
	case enum.AccountOTC:
		return First(
			p.required("payment_code", "OTC payment code"),
			p.dateFormat("expires_at", "Expiry date"),
		)
	case enum.AccountQRCode:
		return p.required("qr_string", "QR code string")
	case enum.AccountPayLater:
		return First(
			p.required("account_id", "Pay later account ID"),
			p.alphanumeric("account_holder_name", "Pay later account holder name"),
			p.currency(),
		)
	case enum.AccountSocialMedia:
		return p.required("account_id", "Social media account ID")
	}
	return nil
}

type properties map[string]any

func (p properties) lookup(key string) (string, bool) {
	v, ok := p[key]
	if !ok || v == nil {
		return "", false
	}
	if s, ok := v.(string); ok {
		return s, true
	}
	return fmt.Sprint(v), true
}

func (p properties) required(key, label string) error {
	if _, ok := p.lookup(key); !ok {
		return NewError("properties."+key, nil, RuleRequired, label+" is required")
	}
	return nil
}

func (p properties) alphanumeric(key, label string) error {
	v, ok := p.lookup(key)
	if !ok {
		return nil
	}
	return Alphanumeric("properties."+key, label, v)
}

func (p properties) currency() error {
	v, ok := p.lookup("currency")
	if !ok {
		return nil
	}
	return CurrencyCode("properties.currency", v)
}

func (p properties) dateFormat(key, label string) error {
	v, ok := p.lookup(key)
	if !ok {
		return nil
	}
	return DateFormat("properties."+key, label, v)
}

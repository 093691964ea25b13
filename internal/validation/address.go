package validation

import (
	"fmt"

	"github.com/mrfansi/xendit-go/internal/enum"
)

// MaxAddressFieldLength bounds every free-text address field
const MaxAddressFieldLength = 255

func addressText(field, label string, v *string) error {
	return Optional(v, func(s string) error {
		if len(s) > MaxAddressFieldLength {
			return NewError(field, s, RuleMaxLength, fmt.Sprintf("%s must not exceed %d characters", label, MaxAddressFieldLength))
		}
		if !IsAddressSafe(s) {
			return NewError(field, s, RuleCharset, label+" must be alphanumeric")
		}
		return nil
	})
}

// AddressCountry validates the mandatory address country
func AddressCountry(v string) error {
	return Country("country", "Country", v)
}

// ProvinceState validates the optional province or state
func ProvinceState(v *string) error {
	return addressText("province_state", "Province/state", v)
}

// City validates the optional city
func City(v *string) error {
	return addressText("city", "City", v)
}

// StreetLine1 validates the optional first street line
func StreetLine1(v *string) error {
	return addressText("street_line1", "Street line 1", v)
}

// StreetLine2 validates the optional second street line
func StreetLine2(v *string) error {
	return addressText("street_line2", "Street line 2", v)
}

// PostalCode validates the optional postal code
func PostalCode(v *string) error {
	return addressText("postal_code", "Postal code", v)
}

// AddressCategory validates the optional category
func AddressCategory(v *enum.AddressCategory) error {
	return Optional(v, func(c enum.AddressCategory) error {
		return OneOf("category", "Category", c, enum.AddressCategoryValues())
	})
}

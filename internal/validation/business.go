package validation

import "github.com/mrfansi/xendit-go/internal/enum"

const maxBusinessFieldLength = 255

// BusinessName validates the mandatory business name
func BusinessName(v string) error {
	return First(
		Required("business_name", "Business name", v),
		BoundedText("business_name", "Business name", v, maxBusinessFieldLength),
	)
}

// BusinessType validates the legal form
func BusinessType(v enum.BusinessType) error {
	return OneOf("business_type", "Business type", v, enum.BusinessTypeValues())
}

// TradingName validates the optional trading name
func TradingName(v *string) error {
	return Optional(v, func(s string) error {
		return BoundedText("trading_name", "Trading name", s, maxBusinessFieldLength)
	})
}

// NatureOfBusiness validates the optional nature of business
func NatureOfBusiness(v *string) error {
	return Optional(v, func(s string) error {
		return BoundedText("nature_of_business", "Nature of business", s, maxBusinessFieldLength)
	})
}

// BusinessDomicile validates the optional country of domicile
func BusinessDomicile(v *string) error {
	return Optional(v, func(s string) error {
		return Country("business_domicile", "Business domicile", s)
	})
}

// BusinessDateOfRegistration validates the optional registration date
func BusinessDateOfRegistration(v *string) error {
	return Optional(v, func(s string) error {
		return DateFormat("date_of_registration", "Date of registration", s)
	})
}

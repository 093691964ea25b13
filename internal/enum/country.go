package enum

// CountryCode is a market supported by the gateway
type CountryCode string

const (
	CountryIndonesia   CountryCode = "ID"
	CountryPhilippines CountryCode = "PH"
	CountryThailand    CountryCode = "TH"
	CountryVietnam     CountryCode = "VN"
	CountryMalaysia    CountryCode = "MY"
)

var countryCodes = []CountryCode{
	CountryIndonesia,
	CountryPhilippines,
	CountryThailand,
	CountryVietnam,
	CountryMalaysia,
}

// CountryCodeValues returns all supported markets
func CountryCodeValues() []CountryCode {
	return append([]CountryCode(nil), countryCodes...)
}

// ParseCountryCode parses a wire value
func ParseCountryCode(raw string) (CountryCode, error) {
	return parse("country code", raw, countryCodes)
}

func (c CountryCode) String() string { return string(c) }

// IsValid reports whether c is a declared variant
func (c CountryCode) IsValid() bool { return Contains(countryCodes, c) }

// Currency is an ISO 4217 code accepted by the invoice API
type Currency string

const (
	CurrencyIDR Currency = "IDR" // Indonesian Rupiah
	CurrencyPHP Currency = "PHP" // Philippine Peso
	CurrencyTHB Currency = "THB" // Thai Baht
	CurrencyVND Currency = "VND" // Vietnamese Dong
	CurrencyMYR Currency = "MYR" // Malaysian Ringgit
)

var currencies = []Currency{
	CurrencyIDR,
	CurrencyPHP,
	CurrencyTHB,
	CurrencyVND,
	CurrencyMYR,
}

var currencyNames = map[Currency]string{
	CurrencyIDR: "Indonesian Rupiah",
	CurrencyPHP: "Philippine Peso",
	CurrencyTHB: "Thai Baht",
	CurrencyVND: "Vietnamese Dong",
	CurrencyMYR: "Malaysian Ringgit",
}

// CurrencyValues returns all supported currencies
func CurrencyValues() []Currency {
	return append([]Currency(nil), currencies...)
}

// ParseCurrency parses a wire value
func ParseCurrency(raw string) (Currency, error) {
	return parse("currency", raw, currencies)
}

func (c Currency) String() string { return string(c) }

// IsValid reports whether c is a declared variant
func (c Currency) IsValid() bool { return Contains(currencies, c) }

// DisplayName returns the English currency name, e.g. "Thai Baht"
func (c Currency) DisplayName() string {
	return currencyNames[c]
}

// CurrencyForCountry returns the settlement currency of a market
func CurrencyForCountry(country CountryCode) Currency {
	switch country {
	case CountryIndonesia:
		return CurrencyIDR
	case CountryPhilippines:
		return CurrencyPHP
	case CountryThailand:
		return CurrencyTHB
	case CountryVietnam:
		return CurrencyVND
	case CountryMalaysia:
		return CurrencyMYR
	}
	return ""
}

package validation_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrfansi/xendit-go/internal/enum"
	"github.com/mrfansi/xendit-go/internal/validation"
)

func TestAddressRules(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		wantErr string
	}{
		{"country ok", validation.AddressCountry("ID"), ""},
		{"country too long", validation.AddressCountry("IDN"), "Country must be a valid ISO 3166-2 code (2 letters)"},
		{"city absent", validation.City(nil), ""},
		{"city at limit", validation.City(ptr(strings.Repeat("a", 255))), ""},
		{"city over limit", validation.City(ptr(strings.Repeat("a", 256))), "City must not exceed 255 characters"},
		{"street allows punctuation", validation.StreetLine1(ptr("Jl. Sudirman No. 1, Blok A/2")), ""},
		{"street rejects symbols", validation.StreetLine2(ptr("Apt #4")), "Street line 2 must be alphanumeric"},
		{"province", validation.ProvinceState(ptr("DKI Jakarta")), ""},
		{"postal code", validation.PostalCode(ptr("12190")), ""},
		{"category ok", validation.AddressCategory(ptr(enum.AddressHome)), ""},
		{"category bad", validation.AddressCategory(ptr(enum.AddressCategory("GARAGE"))), "Category must be one of: HOME, WORK, PROVINCIAL"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.wantErr == "" {
				assert.NoError(t, tt.err)
				return
			}
			require.Error(t, tt.err)
			assert.Equal(t, tt.wantErr, tt.err.Error())
		})
	}
}

func TestBusinessRules(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		wantErr string
	}{
		{"name ok", validation.BusinessName("Acme Trading"), ""},
		{"name blank", validation.BusinessName(" "), "Business name is required"},
		{"name charset", validation.BusinessName("Acme & Co"), "Business name must be alphanumeric"},
		{"name too long", validation.BusinessName(strings.Repeat("a", 256)), "Business name must not exceed 255 characters"},
		{"type ok", validation.BusinessType(enum.BusinessCorporation), ""},
		{"type bad", validation.BusinessType(enum.BusinessType("LLC")), "Business type must be one of: " + enum.Join(enum.BusinessTypeValues())},
		{"trading name", validation.TradingName(ptr("Acme")), ""},
		{"nature", validation.NatureOfBusiness(ptr("Retail!")), "Nature of business must be alphanumeric"},
		{"domicile", validation.BusinessDomicile(ptr("Indonesia")), "Business domicile must be a valid ISO 3166-2 code (2 letters)"},
		{"registration date", validation.BusinessDateOfRegistration(ptr("2020-13-01")), "Date of registration must be in YYYY-MM-DD format"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.wantErr == "" {
				assert.NoError(t, tt.err)
				return
			}
			require.Error(t, tt.err)
			assert.Equal(t, tt.wantErr, tt.err.Error())
		})
	}
}

func TestCustomerRules(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		wantErr string
	}{
		{"reference ok", validation.ReferenceID("cust 001"), ""},
		{"reference blank", validation.ReferenceID(""), "Reference ID is required"},
		{"type bad", validation.CustomerType(enum.CustomerType("ROBOT")), "Type must be one of: INDIVIDUAL, BUSINESS"},
		{"individual detail missing", validation.CustomerDetail(enum.CustomerIndividual, false, true), "Individual detail is required when type is INDIVIDUAL"},
		{"business detail missing", validation.CustomerDetail(enum.CustomerBusiness, true, false), "Business detail is required when type is BUSINESS"},
		{"detail present", validation.CustomerDetail(enum.CustomerBusiness, false, true), ""},
		{"mobile ok", validation.MobileNumber(ptr("+6281234567890")), ""},
		{"mobile bad", validation.MobileNumber(ptr("081234567890")), "Mobile number must be in E.164 format"},
		{"phone too long", validation.PhoneNumber(ptr("+" + strings.Repeat("1", 50))), "Phone number must not exceed 50 characters"},
		{"email ok", validation.Email(ptr("john@example.com")), ""},
		{"email bad", validation.Email(ptr("john")), "Email must be a valid email address"},
		{"email too long", validation.Email(ptr(strings.Repeat("a", 40) + "@example.com")), "Email must not exceed 50 characters"},
		{"description at limit", validation.CustomerDescription(ptr(strings.Repeat("a", 500))), ""},
		{"description over limit", validation.CustomerDescription(ptr(strings.Repeat("a", 501))), "Description must not exceed 500 characters"},
		{"domicile", validation.DomicileOfRegistration(ptr("ID")), ""},
		{"registration", validation.DateOfRegistration(ptr("2021-02-29")), "Date of registration must be in YYYY-MM-DD format"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.wantErr == "" {
				assert.NoError(t, tt.err)
				return
			}
			require.Error(t, tt.err)
			assert.Equal(t, tt.wantErr, tt.err.Error())
		})
	}
}

func TestIndividualRules(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		wantErr string
	}{
		{"given names", validation.GivenNames("John"), ""},
		{"given names blank", validation.GivenNames(""), "Given names is required"},
		{"given names charset", validation.GivenNames("J0hn!"), "Given names must be alphanumeric"},
		{"surname", validation.Surname(ptr("O'Brien")), "Surname must be alphanumeric"},
		{"nationality", validation.Nationality(ptr("IDN")), "Nationality must be a valid ISO 3166-2 code (2 letters)"},
		{"place of birth", validation.PlaceOfBirth(ptr("Jakarta")), ""},
		{"dob shape", validation.DateOfBirth(ptr("01/02/1990")), "Date of birth must be in YYYY-MM-DD format"},
		{"dob calendar", validation.DateOfBirth(ptr("1990-02-30")), "Invalid date of birth"},
		{"dob ok", validation.DateOfBirth(ptr("1990-02-28")), ""},
		{"gender", validation.Gender(ptr(enum.Gender("X"))), "Gender must be one of: MALE, FEMALE, OTHER"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.wantErr == "" {
				assert.NoError(t, tt.err)
				return
			}
			require.Error(t, tt.err)
			assert.Equal(t, tt.wantErr, tt.err.Error())
		})
	}
}

func TestIdentityAccountProperties(t *testing.T) {
	tests := []struct {
		name    string
		typ     enum.IdentityAccountType
		props   map[string]any
		wantErr string
	}{
		{"nil properties", enum.AccountBankAccount, nil, ""},
		{
			"bank account ok", enum.AccountBankAccount,
			map[string]any{"account_number": "1234567890", "account_holder_name": "John Doe", "currency": "IDR"},
			"",
		},
		{
			"bank account missing number", enum.AccountBankAccount,
			map[string]any{"account_holder_name": "John Doe"},
			"Bank account number is required",
		},
		{
			"bank account missing holder before charset", enum.AccountBankAccount,
			map[string]any{"account_number": "12-34"},
			"Bank account holder name is required",
		},
		{
			"bank account number charset", enum.AccountBankAccount,
			map[string]any{"account_number": "12-34", "account_holder_name": "John"},
			"Bank account number must be alphanumeric",
		},
		{
			"bank swift code", enum.AccountBankAccount,
			map[string]any{"account_number": "1234", "account_holder_name": "John", "swift_code": "CENA-IDJA"},
			"Swift code must be alphanumeric",
		},
		{
			"bank currency", enum.AccountBankAccount,
			map[string]any{"account_number": "1234", "account_holder_name": "John", "currency": "rupiah"},
			"Currency must be a valid ISO 4217 code (3 letters)",
		},
		{
			"ewallet missing number", enum.AccountEwallet,
			map[string]any{},
			"E-wallet account number is required",
		},
		{
			"ewallet holder", enum.AccountEwallet,
			map[string]any{"account_number": "0812", "account_holder_name": "J@ne"},
			"E-wallet account holder name must be alphanumeric",
		},
		{"credit card token", enum.AccountCreditCard, map[string]any{}, "Credit card token ID is required"},
		{
			"otc expiry", enum.AccountOTC,
			map[string]any{"payment_code": "ABC", "expires_at": "tomorrow"},
			"Expiry date must be in YYYY-MM-DD format",
		},
		{"qr string", enum.AccountQRCode, map[string]any{"qr_string": ""}, ""},
		{"qr missing", enum.AccountQRCode, map[string]any{"qr_string": nil}, "QR code string is required"},
		{"pay later", enum.AccountPayLater, map[string]any{"account_id": "PL-1"}, ""},
		{"pay later missing", enum.AccountPayLater, map[string]any{}, "Pay later account ID is required"},
		{"social media", enum.AccountSocialMedia, map[string]any{}, "Social media account ID is required"},
		{"unknown type skips schema", enum.IdentityAccountType("CRYPTO"), map[string]any{}, ""},
		{
			"numeric account number", enum.AccountBankAccount,
			map[string]any{"account_number": 1234567, "account_holder_name": "John"},
			"",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validation.AccountProperties(tt.typ, tt.props)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Equal(t, tt.wantErr, err.Error())
		})
	}
}

func TestIdentityAccountFields(t *testing.T) {
	err := validation.IdentityAccountType(enum.IdentityAccountType("CASH"))
	require.Error(t, err)
	assert.Equal(t, "Type must be one of: BANK_ACCOUNT, EWALLET, CREDIT_CARD, PAY_LATER, OTC, QR_CODE, SOCIAL_MEDIA", err.Error())

	assert.NoError(t, validation.Company(ptr(strings.Repeat("c", 100))))
	err = validation.Company(ptr(strings.Repeat("c", 101)))
	require.Error(t, err)
	assert.Equal(t, "Company must not exceed 100 characters", err.Error())

	err = validation.AccountDescription(ptr(strings.Repeat("d", 256)))
	require.Error(t, err)
	assert.Equal(t, "Description must not exceed 255 characters", err.Error())

	err = validation.AccountCountry(ptr("Indonesia"))
	require.Error(t, err)
	assert.Equal(t, "Country must be a valid ISO 3166-2 code (2 letters)", err.Error())
}

func TestKycRules(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		wantErr string
	}{
		{"country", validation.DocumentCountry("ID"), ""},
		{"type", validation.DocumentType(enum.KycDocumentType("SELFIE")),
			"Type must be one of: BIRTH_CERTIFICATE, BANK_STATEMENT, DRIVING_LICENSE, IDENTITY_CARD, PASSPORT, VISA, BUSINESS_REGISTRATION, BUSINESS_LICENSE"},
		{"sub type", validation.DocumentSubType(ptr(enum.KycDocumentSubType("LIBRARY_CARD"))),
			"Sub type must be one of: NATIONAL_ID, CONSULAR_ID, VOTER_ID, POSTAL_ID, RESIDENCE_PERMIT, TAX_ID, STUDENT_ID, MILITARY_ID, MEDICAL_ID"},
		{"document name", validation.DocumentName(ptr("KTP Card")), ""},
		{"document number", validation.DocumentNumber(ptr(strings.Repeat("9", 256))), "Document number must not exceed 255 characters"},
		{"expiry", validation.ExpiresAt(ptr("2030/01/01")), "Expiry date must be in YYYY-MM-DD format"},
		{"holder", validation.HolderName(ptr("Jane_Doe")), "Holder name must be alphanumeric"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.wantErr == "" {
				assert.NoError(t, tt.err)
				return
			}
			require.Error(t, tt.err)
			assert.Equal(t, tt.wantErr, tt.err.Error())
		})
	}
}

func TestDocumentImages(t *testing.T) {
	images, err := validation.DocumentImages([]any{"front.jpg", "back.jpg"})
	require.NoError(t, err)
	assert.Equal(t, []string{"front.jpg", "back.jpg"}, images)

	images, err = validation.DocumentImages(nil)
	require.NoError(t, err)
	assert.Nil(t, images)

	_, err = validation.DocumentImages([]any{"front.jpg", 3})
	require.Error(t, err)
	assert.Equal(t, "Document images must be an array of strings", err.Error())

	_, err = validation.DocumentImages("front.jpg")
	require.Error(t, err)
}

package enum

// AddressCategory classifies a customer address
type AddressCategory string

const (
	AddressHome       AddressCategory = "HOME"
	AddressWork       AddressCategory = "WORK"
	AddressProvincial AddressCategory = "PROVINCIAL"
)

var addressCategories = []AddressCategory{AddressHome, AddressWork, AddressProvincial}

// AddressCategoryValues returns all address categories
func AddressCategoryValues() []AddressCategory {
	return append([]AddressCategory(nil), addressCategories...)
}

// ParseAddressCategory parses a wire value
func ParseAddressCategory(raw string) (AddressCategory, error) {
	return parse("address category", raw, addressCategories)
}

func (c AddressCategory) String() string { return string(c) }

// IsValid reports whether c is a declared variant
func (c AddressCategory) IsValid() bool { return Contains(addressCategories, c) }

// BusinessType is the legal form of a business customer
type BusinessType string

const (
	BusinessCorporation    BusinessType = "CORPORATION"
	BusinessSoleProprietor BusinessType = "SOLE_PROPRIETOR"
	BusinessPartnership    BusinessType = "PARTNERSHIP"
	BusinessCooperative    BusinessType = "COOPERATIVE"
	BusinessTrust          BusinessType = "TRUST"
	BusinessNonProfit      BusinessType = "NON_PROFIT"
	BusinessGovernment     BusinessType = "GOVERNMENT"
)

var businessTypes = []BusinessType{
	BusinessCorporation,
	BusinessSoleProprietor,
	BusinessPartnership,
	BusinessCooperative,
	BusinessTrust,
	BusinessNonProfit,
	BusinessGovernment,
}

// BusinessTypeValues returns all business types
func BusinessTypeValues() []BusinessType {
	return append([]BusinessType(nil), businessTypes...)
}

// ParseBusinessType parses a wire value
func ParseBusinessType(raw string) (BusinessType, error) {
	return parse("business type", raw, businessTypes)
}

func (t BusinessType) String() string { return string(t) }

// IsValid reports whether t is a declared variant
func (t BusinessType) IsValid() bool { return Contains(businessTypes, t) }

// CustomerType discriminates individual and business customers
type CustomerType string

const (
	CustomerIndividual CustomerType = "INDIVIDUAL"
	CustomerBusiness   CustomerType = "BUSINESS"
)

var customerTypes = []CustomerType{CustomerIndividual, CustomerBusiness}

// CustomerTypeValues returns all customer types
func CustomerTypeValues() []CustomerType {
	return append([]CustomerType(nil), customerTypes...)
}

// ParseCustomerType parses a wire value
func ParseCustomerType(raw string) (CustomerType, error) {
	return parse("customer type", raw, customerTypes)
}

func (t CustomerType) String() string { return string(t) }

// IsValid reports whether t is a declared variant
func (t CustomerType) IsValid() bool { return Contains(customerTypes, t) }

// Gender of an individual customer
type Gender string

const (
	GenderMale   Gender = "MALE"
	GenderFemale Gender = "FEMALE"
	GenderOther  Gender = "OTHER"
)

var genders = []Gender{GenderMale, GenderFemale, GenderOther}

// GenderValues returns all genders
func GenderValues() []Gender {
	return append([]Gender(nil), genders...)
}

// ParseGender parses a wire value
func ParseGender(raw string) (Gender, error) {
	return parse("gender", raw, genders)
}

func (g Gender) String() string { return string(g) }

// IsValid reports whether g is a declared variant
func (g Gender) IsValid() bool { return Contains(genders, g) }

// IdentityAccountType is the payment rail an identity account lives on
type IdentityAccountType string

const (
	AccountBankAccount IdentityAccountType = "BANK_ACCOUNT"
	AccountEwallet     IdentityAccountType = "EWALLET"
	AccountCreditCard  IdentityAccountType = "CREDIT_CARD"
	AccountPayLater    IdentityAccountType = "PAY_LATER"
	AccountOTC         IdentityAccountType = "OTC"
	AccountQRCode      IdentityAccountType = "QR_CODE"
	AccountSocialMedia IdentityAccountType = "SOCIAL_MEDIA"
)

var identityAccountTypes = []IdentityAccountType{
	AccountBankAccount,
	AccountEwallet,
	AccountCreditCard,
	AccountPayLater,
	AccountOTC,
	AccountQRCode,
	AccountSocialMedia,
}

// IdentityAccountTypeValues returns all identity account types
func IdentityAccountTypeValues() []IdentityAccountType {
	return append([]IdentityAccountType(nil), identityAccountTypes...)
}

// ParseIdentityAccountType parses a wire value
func ParseIdentityAccountType(raw string) (IdentityAccountType, error) {
	return parse("identity account type", raw, identityAccountTypes)
}

func (t IdentityAccountType) String() string { return string(t) }

// IsValid reports whether t is a declared variant
func (t IdentityAccountType) IsValid() bool { return Contains(identityAccountTypes, t) }

// KycDocumentType is the kind of a KYC document
type KycDocumentType string

const (
	DocBirthCertificate     KycDocumentType = "BIRTH_CERTIFICATE"
	DocBankStatement        KycDocumentType = "BANK_STATEMENT"
	DocDrivingLicense       KycDocumentType = "DRIVING_LICENSE"
	DocIdentityCard         KycDocumentType = "IDENTITY_CARD"
	DocPassport             KycDocumentType = "PASSPORT"
	DocVisa                 KycDocumentType = "VISA"
	DocBusinessRegistration KycDocumentType = "BUSINESS_REGISTRATION"
	DocBusinessLicense      KycDocumentType = "BUSINESS_LICENSE"
)

var kycDocumentTypes = []KycDocumentType{
	DocBirthCertificate,
	DocBankStatement,
	DocDrivingLicense,
	DocIdentityCard,
	DocPassport,
	DocVisa,
	DocBusinessRegistration,
	DocBusinessLicense,
}

// KycDocumentTypeValues returns all KYC document types
func KycDocumentTypeValues() []KycDocumentType {
	return append([]KycDocumentType(nil), kycDocumentTypes...)
}

// ParseKycDocumentType parses a wire value
func ParseKycDocumentType(raw string) (KycDocumentType, error) {
	return parse("KYC document type", raw, kycDocumentTypes)
}

func (t KycDocumentType) String() string { return string(t) }

// IsValid reports whether t is a declared variant
func (t KycDocumentType) IsValid() bool { return Contains(kycDocumentTypes, t) }

// KycDocumentSubType refines IDENTITY_CARD style documents
type KycDocumentSubType string

const (
	SubNationalID      KycDocumentSubType = "NATIONAL_ID"
	SubConsularID      KycDocumentSubType = "CONSULAR_ID"
	SubVoterID         KycDocumentSubType = "VOTER_ID"
	SubPostalID        KycDocumentSubType = "POSTAL_ID"
	SubResidencePermit KycDocumentSubType = "RESIDENCE_PERMIT"
	SubTaxID           KycDocumentSubType = "TAX_ID"
	SubStudentID       KycDocumentSubType = "STUDENT_ID"
	SubMilitaryID      KycDocumentSubType = "MILITARY_ID"
	SubMedicalID       KycDocumentSubType = "MEDICAL_ID"
)

var kycDocumentSubTypes = []KycDocumentSubType{
	SubNationalID,
	SubConsularID,
	SubVoterID,
	SubPostalID,
	SubResidencePermit,
	SubTaxID,
	SubStudentID,
	SubMilitaryID,
	SubMedicalID,
}

// KycDocumentSubTypeValues returns all KYC document sub types
func KycDocumentSubTypeValues() []KycDocumentSubType {
	return append([]KycDocumentSubType(nil), kycDocumentSubTypes...)
}

// ParseKycDocumentSubType parses a wire value
func ParseKycDocumentSubType(raw string) (KycDocumentSubType, error) {
	return parse("KYC document sub type", raw, kycDocumentSubTypes)
}

func (t KycDocumentSubType) String() string { return string(t) }

// IsValid reports whether t is a declared variant
func (t KycDocumentSubType) IsValid() bool { return Contains(kycDocumentSubTypes, t) }

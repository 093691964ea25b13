package validation

import "github.com/mrfansi/xendit-go/internal/enum"

const (
	maxCustomerFieldLength = 255
	maxEmailLength         = 50
	maxPhoneLength         = 50
	maxDescriptionLength   = 500
)

// ReferenceID validates the merchant's customer reference
func ReferenceID(v string) error {
	return First(
		Required("reference_id", "Reference ID", v),
		BoundedText("reference_id", "Reference ID", v, maxCustomerFieldLength),
	)
}

// CustomerType validates the INDIVIDUAL/BUSINESS discriminator
func CustomerType(v enum.CustomerType) error {
	return OneOf("type", "Type", v, enum.CustomerTypeValues())
}

// CustomerDetail enforces that the detail matching the type is present
func CustomerDetail(t enum.CustomerType, hasIndividual, hasBusiness bool) error {
	switch {
	case t == enum.CustomerIndividual && !hasIndividual:
		return NewError("individual_detail", nil, RuleRequired, "Individual detail is required when type is INDIVIDUAL")
	case t == enum.CustomerBusiness && !hasBusiness:
		return NewError("business_detail", nil, RuleRequired, "Business detail is required when type is BUSINESS")
	}
	return nil
}

func phone(field, label string, v *string) error {
	return Optional(v, func(s string) error {
		if err := MaxLength(field, label, s, maxPhoneLength); err != nil {
			return err
		}
		if !IsE164(s) {
			return NewError(field, s, RuleFormat, label+" must be in E.164 format")
		}
		return nil
	})
}

// MobileNumber validates the optional mobile number
func MobileNumber(v *string) error {
	return phone("mobile_number", "Mobile number", v)
}

// PhoneNumber validates the optional landline number
func PhoneNumber(v *string) error {
	return phone("phone_number", "Phone number", v)
}

// Email validates the optional customer email
func Email(v *string) error {
	return Optional(v, func(s string) error {
		if err := MaxLength("email", "Email", s, maxEmailLength); err != nil {
			return err
		}
		if !IsEmail(s) {
			return NewError("email", s, RuleFormat, "Email must be a valid email address")
		}
		return nil
	})
}

// CustomerDescription validates the optional free-text description
func CustomerDescription(v *string) error {
	return Optional(v, func(s string) error {
		return BoundedText("description", "Description", s, maxDescriptionLength)
	})
}

// DateOfRegistration validates the optional customer registration date
func DateOfRegistration(v *string) error {
	return Optional(v, func(s string) error {
		return DateFormat("date_of_registration", "Date of registration", s)
	})
}

// DomicileOfRegistration validates the optional registration country
func DomicileOfRegistration(v *string) error {
	return Optional(v, func(s string) error {
		return Country("domicile_of_registration", "Domicile of registration", s)
	})
}

package validation

import "github.com/mrfansi/xendit-go/internal/enum"

// GivenNames validates the mandatory given names
func GivenNames(v string) error {
	return First(
		Required("given_names", "Given names", v),
		Alphanumeric("given_names", "Given names", v),
	)
}

// Surname validates the optional surname
func Surname(v *string) error {
	return Optional(v, func(s string) error {
		return Alphanumeric("surname", "Surname", s)
	})
}

// Nationality validates the optional nationality
func Nationality(v *string) error {
	return Optional(v, func(s string) error {
		return Country("nationality", "Nationality", s)
	})
}

// PlaceOfBirth validates the optional place of birth
func PlaceOfBirth(v *string) error {
	return Optional(v, func(s string) error {
		return Alphanumeric("place_of_birth", "Place of birth", s)
	})
}

// DateOfBirth validates shape first, then that the date exists
func DateOfBirth(v *string) error {
	return Optional(v, func(s string) error {
		if !IsDateFormat(s) {
			return NewError("date_of_birth", s, RuleFormat, "Date of birth must be in YYYY-MM-DD format")
		}
		if !IsCalendarDate(s) {
			return NewError("date_of_birth", s, RuleFormat, "Invalid date of birth")
		}
		return nil
	})
}

// Gender validates the optional gender
func Gender(v *enum.Gender) error {
	return Optional(v, func(g enum.Gender) error {
		return OneOf("gender", "Gender", g, enum.GenderValues())
	})
}

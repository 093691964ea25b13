package model

import (
	"github.com/mrfansi/xendit-go/internal/enum"
	"github.com/mrfansi/xendit-go/internal/validation"
)

// IndividualDetail describes a natural person
type IndividualDetail struct {
	GivenNames   string
	Surname      *string
	Nationality  *string
	PlaceOfBirth *string
	DateOfBirth  *string
	Gender       *enum.Gender
}

// NewIndividualDetail validates and returns the detail
func NewIndividualDetail(i IndividualDetail) (IndividualDetail, error) {
	if err := i.Validate(); err != nil {
		return IndividualDetail{}, err
	}
	return i, nil
}

func (i IndividualDetail) Validate() error {
	return validation.First(
		validation.GivenNames(i.GivenNames),
		validation.Surname(i.Surname),
		validation.Nationality(i.Nationality),
		validation.PlaceOfBirth(i.PlaceOfBirth),
		validation.DateOfBirth(i.DateOfBirth),
		validation.Gender(i.Gender),
	)
}

// WithSurname returns a copy with the surname replaced
func (i IndividualDetail) WithSurname(surname string) (IndividualDetail, error) {
	i.Surname = &surname
	return NewIndividualDetail(i)
}

// WithDateOfBirth returns a copy with the date of birth replaced
func (i IndividualDetail) WithDateOfBirth(date string) (IndividualDetail, error) {
	i.DateOfBirth = &date
	return NewIndividualDetail(i)
}

func (i IndividualDetail) ToMap() map[string]any {
	w := wire{"given_names": i.GivenNames}
	put(w, "surname", i.Surname)
	put(w, "nationality", i.Nationality)
	put(w, "place_of_birth", i.PlaceOfBirth)
	put(w, "date_of_birth", i.DateOfBirth)
	putEnum(w, "gender", i.Gender)
	return w
}

// IndividualDetailFromMap decodes and validates a wire individual detail
func IndividualDetailFromMap(m map[string]any) (IndividualDetail, error) {
	d := newDecoder("individual_detail", m)
	i := IndividualDetail{
		GivenNames:   d.RequiredString("given_names"),
		Surname:      d.String("surname"),
		Nationality:  d.String("nationality"),
		PlaceOfBirth: d.String("place_of_birth"),
		DateOfBirth:  d.String("date_of_birth"),
		Gender:       rawEnum[enum.Gender](d, "gender"),
	}
	if err := d.Err(); err != nil {
		return IndividualDetail{}, err
	}
	return NewIndividualDetail(i)
}

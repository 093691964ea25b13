package model

import (
	"slices"

	"github.com/mrfansi/xendit-go/internal/enum"
	"github.com/mrfansi/xendit-go/internal/validation"
)

// KycDocument is an identity document attached to a customer
type KycDocument struct {
	Country        string
	Type           enum.KycDocumentType
	SubType        *enum.KycDocumentSubType
	DocumentName   *string
	DocumentNumber *string
	ExpiresAt      *string
	HolderName     *string
	DocumentImages []string
}

// NewKycDocument validates and returns the document
func NewKycDocument(k KycDocument) (KycDocument, error) {
	if err := k.Validate(); err != nil {
		return KycDocument{}, err
	}
	return k, nil
}

func (k KycDocument) Validate() error {
	return validation.First(
		validation.DocumentCountry(k.Country),
		validation.DocumentType(k.Type),
		validation.DocumentSubType(k.SubType),
		validation.DocumentName(k.DocumentName),
		validation.DocumentNumber(k.DocumentNumber),
		validation.ExpiresAt(k.ExpiresAt),
		validation.HolderName(k.HolderName),
	)
}

// WithDocumentImages returns a copy with the image references replaced
func (k KycDocument) WithDocumentImages(images ...string) (KycDocument, error) {
	k.DocumentImages = append([]string{}, images...)
	return NewKycDocument(k)
}

func (k KycDocument) ToMap() map[string]any {
	w := wire{
		"country": k.Country,
		"type":    string(k.Type),
	}
	putEnum(w, "sub_type", k.SubType)
	put(w, "document_name", k.DocumentName)
	put(w, "document_number", k.DocumentNumber)
	put(w, "expires_at", k.ExpiresAt)
	put(w, "holder_name", k.HolderName)
	if k.DocumentImages != nil {
		w["document_images"] = slices.Clone(k.DocumentImages)
	}
	return w
}

// KycDocumentFromMap decodes and validates a wire KYC document
func KycDocumentFromMap(m map[string]any) (KycDocument, error) {
	d := newDecoder("kyc_document", m)
	k := KycDocument{
		Country:        d.RequiredString("country"),
		Type:           enum.KycDocumentType(d.RequiredString("type")),
		SubType:        rawEnum[enum.KycDocumentSubType](d, "sub_type"),
		DocumentName:   d.String("document_name"),
		DocumentNumber: d.String("document_number"),
		ExpiresAt:      d.String("expires_at"),
		HolderName:     d.String("holder_name"),
	}
	if err := d.Err(); err != nil {
		return KycDocument{}, err
	}
	images, err := validation.DocumentImages(d.Raw("document_images"))
	if err != nil {
		return KycDocument{}, err
	}
	k.DocumentImages = images
	return NewKycDocument(k)
}

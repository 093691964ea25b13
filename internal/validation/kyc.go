package validation

import "github.com/mrfansi/xendit-go/internal/enum"

const maxDocumentFieldLength = 255

// DocumentCountry validates the issuing country of a KYC document
func DocumentCountry(v string) error {
	return Country("country", "Country", v)
}

// DocumentType validates the document kind
func DocumentType(v enum.KycDocumentType) error {
	return OneOf("type", "Type", v, enum.KycDocumentTypeValues())
}

// DocumentSubType validates the optional document sub type
func DocumentSubType(v *enum.KycDocumentSubType) error {
	return Optional(v, func(s enum.KycDocumentSubType) error {
		return OneOf("sub_type", "Sub type", s, enum.KycDocumentSubTypeValues())
	})
}

// DocumentName validates the optional document name
func DocumentName(v *string) error {
	return Optional(v, func(s string) error {
		return BoundedText("document_name", "Document name", s, maxDocumentFieldLength)
	})
}

// DocumentNumber validates the optional document number
func DocumentNumber(v *string) error {
	return Optional(v, func(s string) error {
		return MaxLength("document_number", "Document number", s, maxDocumentFieldLength)
	})
}

// ExpiresAt validates the optional expiry date
func ExpiresAt(v *string) error {
	return Optional(v, func(s string) error {
		return DateFormat("expires_at", "Expiry date", s)
	})
}

// HolderName validates the optional document holder
func HolderName(v *string) error {
	return Optional(v, func(s string) error {
		return BoundedText("holder_name", "Holder name", s, maxDocumentFieldLength)
	})
}

// DocumentImages checks a decoded wire value is a list of strings
func DocumentImages(raw any) ([]string, error) {
	invalid := NewError("document_images", raw, RuleType, "Document images must be an array of strings")
	switch v := raw.(type) {
	case nil:
		return nil, nil
	case []string:
		return v, nil
	case []any:
		out := make([]string, 0, len(v))
		for _, item := range v {
			s, ok := item.(string)
			if !ok {
				return nil, invalid
			}
			out = append(out, s)
		}
		return out, nil
	}
	return nil, invalid
}

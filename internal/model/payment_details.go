package model

import "github.com/mrfansi/xendit-go/internal/enum"

// PaymentDetails carries the receipt of a QRIS payment
type PaymentDetails struct {
	ReceiptID *string
	Source    *enum.QrisSource
}

func (p PaymentDetails) ToMap() map[string]any {
	w := wire{}
	put(w, "receipt_id", p.ReceiptID)
	putEnum(w, "source", p.Source)
	return w
}

// PaymentDetailsFromMap decodes wire payment details
func PaymentDetailsFromMap(m map[string]any) (PaymentDetails, error) {
	d := newDecoder("payment_details", m)
	p := PaymentDetails{
		ReceiptID: d.String("receipt_id"),
		Source:    enumValue(d, "source", enum.ParseQrisSource),
	}
	if err := d.Err(); err != nil {
		return PaymentDetails{}, err
	}
	return p, nil
}

package model

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/mrfansi/xendit-go/internal/enum"
	"github.com/mrfansi/xendit-go/internal/validation"
)

// responseKeys is the wire order of the fields InvoiceResponse adds
var responseKeys = []string{
	"id", "user_id", "external_id", "status", "merchant_name", "amount", "description", "currency",
	"merchant_profile_picture_url", "payer_email", "invoice_url", "available_banks",
	"available_retail_outlets", "should_exclude_credit_card", "should_send_email", "created",
	"updated", "paid_at", "credit_card_charge_id", "payment_method", "payment_channel",
	"payment_destination", "fixed_va", "payment_details", "expiry_date",
}

// InvoiceResponse is an invoice as returned by the gateway: the request
// fields plus the server assigned ones
type InvoiceResponse struct {
	InvoiceData

	ID                        string
	UserID                    string
	Status                    enum.InvoiceStatus
	MerchantName              string
	MerchantProfilePictureURL *string
	PayerEmail                *string
	InvoiceURL                *string
	AvailableBanks            []map[string]any
	AvailableRetailOutlets    []map[string]any
	ShouldExcludeCreditCard   *bool
	ShouldSendEmail           *bool
	Created                   *string
	Updated                   *string
	PaidAt                    *string
	CreditCardChargeID        *string
	PaymentMethod             *string
	PaymentChannel            *string
	PaymentDestination        *string
	FixedVA                   *bool
	PaymentDetails            *PaymentDetails
	ExpiryDate                *string
}

// NewInvoiceResponse validates and returns the response
func NewInvoiceResponse(r InvoiceResponse) (InvoiceResponse, error) {
	if err := r.Validate(); err != nil {
		return InvoiceResponse{}, err
	}
	return r, nil
}

// Validate runs the invoice rules, then the response rules
func (r InvoiceResponse) Validate() error {
	if err := r.InvoiceData.Validate(); err != nil {
		return err
	}
	if strings.TrimSpace(r.ID) == "" {
		return validation.NewError("id", r.ID, validation.RuleRequired, "Invoice ID is required")
	}
	if strings.TrimSpace(r.UserID) == "" {
		return validation.NewError("user_id", r.UserID, validation.RuleRequired, "User ID is required")
	}
	if !r.Status.IsValid() {
		return validation.NewError("status", string(r.Status), validation.RuleOneOf, "Invalid invoice status: "+string(r.Status))
	}
	if strings.TrimSpace(r.MerchantName) == "" {
		return validation.NewError("merchant_name", r.MerchantName, validation.RuleRequired, "Merchant name is required")
	}
	if r.MerchantProfilePictureURL != nil && !validation.IsURL(*r.MerchantProfilePictureURL) {
		return validation.NewError("merchant_profile_picture_url", *r.MerchantProfilePictureURL, validation.RuleFormat, "Invalid merchant profile picture URL")
	}
	if r.PayerEmail != nil && !validation.IsEmail(*r.PayerEmail) {
		return validation.NewError("payer_email", *r.PayerEmail, validation.RuleFormat, "Invalid payer email")
	}
	if r.InvoiceURL != nil && !validation.IsURL(*r.InvoiceURL) {
		return validation.NewError("invoice_url", *r.InvoiceURL, validation.RuleFormat, "Invalid invoice URL")
	}
	if r.PaymentMethod != nil && !enum.PaymentMethod(*r.PaymentMethod).IsValid() {
		return validation.NewError("payment_method", *r.PaymentMethod, validation.RuleOneOf, "Invalid payment method: "+*r.PaymentMethod)
	}
	return nil
}

// IsPaid reports whether the payer has completed the invoice
func (r InvoiceResponse) IsPaid() bool {
	return r.Status == enum.StatusPaid || r.Status == enum.StatusSettled
}

// WithStatus returns a copy in the given status
func (r InvoiceResponse) WithStatus(s enum.InvoiceStatus) (InvoiceResponse, error) {
	r.Status = s
	return NewInvoiceResponse(r)
}

func (r InvoiceResponse) ToMap() map[string]any {
	w := wire(r.InvoiceData.ToMap())
	w["id"] = r.ID
	w["user_id"] = r.UserID
	w["status"] = string(r.Status)
	w["merchant_name"] = r.MerchantName
	put(w, "merchant_profile_picture_url", r.MerchantProfilePictureURL)
	put(w, "payer_email", r.PayerEmail)
	put(w, "invoice_url", r.InvoiceURL)
	if r.AvailableBanks != nil {
		w["available_banks"] = cloneObjects(r.AvailableBanks)
	}
	if r.AvailableRetailOutlets != nil {
		w["available_retail_outlets"] = cloneObjects(r.AvailableRetailOutlets)
	}
	put(w, "should_exclude_credit_card", r.ShouldExcludeCreditCard)
	put(w, "should_send_email", r.ShouldSendEmail)
	put(w, "created", r.Created)
	put(w, "updated", r.Updated)
	put(w, "paid_at", r.PaidAt)
	put(w, "credit_card_charge_id", r.CreditCardChargeID)
	put(w, "payment_method", r.PaymentMethod)
	put(w, "payment_channel", r.PaymentChannel)
	put(w, "payment_destination", r.PaymentDestination)
	put(w, "fixed_va", r.FixedVA)
	if r.PaymentDetails != nil {
		w["payment_details"] = r.PaymentDetails.ToMap()
	}
	put(w, "expiry_date", r.ExpiryDate)
	return w
}

func (r InvoiceResponse) MarshalJSON() ([]byte, error) {
	return json.Marshal(r.ToMap())
}

func (r *InvoiceResponse) UnmarshalJSON(data []byte) error {
	m, err := DecodeJSON(data)
	if err != nil {
		return err
	}
	decoded, err := InvoiceResponseFromMap(m)
	if err != nil {
		return err
	}
	*r = decoded
	return nil
}

// InvoiceResponseFromMap decodes and validates a gateway invoice
func InvoiceResponseFromMap(m map[string]any) (InvoiceResponse, error) {
	d := newDecoder("invoice", m)
	data, err := decodeInvoiceData(d)
	if err != nil {
		return InvoiceResponse{}, err
	}
	r := InvoiceResponse{
		InvoiceData:               data,
		ID:                        d.RequiredString("id"),
		UserID:                    d.RequiredString("user_id"),
		Status:                    enum.InvoiceStatus(d.RequiredString("status")),
		MerchantName:              d.RequiredString("merchant_name"),
		MerchantProfilePictureURL: d.String("merchant_profile_picture_url"),
		PayerEmail:                d.String("payer_email"),
		InvoiceURL:                d.String("invoice_url"),
		AvailableBanks:            d.Objects("available_banks"),
		AvailableRetailOutlets:    d.Objects("available_retail_outlets"),
		ShouldExcludeCreditCard:   d.Bool("should_exclude_credit_card"),
		ShouldSendEmail:           d.Bool("should_send_email"),
		Created:                   d.String("created"),
		Updated:                   d.String("updated"),
		PaidAt:                    d.String("paid_at"),
		CreditCardChargeID:        d.String("credit_card_charge_id"),
		PaymentMethod:             d.String("payment_method"),
		PaymentChannel:            d.String("payment_channel"),
		PaymentDestination:        d.String("payment_destination"),
		FixedVA:                   d.Bool("fixed_va"),
		PaymentDetails:            nested(d, "payment_details", PaymentDetailsFromMap),
		ExpiryDate:                d.String("expiry_date"),
	}
	if err := d.Err(); err != nil {
		return InvoiceResponse{}, err
	}
	return NewInvoiceResponse(r)
}

// Row is one labelled line of a rendered invoice
type Row struct {
	Label string
	Value string
}

// ToTable renders every present field as a labelled row: response fields
// first, then the remaining request fields
func (r InvoiceResponse) ToTable() []Row {
	m := r.ToMap()
	rows := make([]Row, 0, len(m))
	seen := make(map[string]bool, len(m))
	for _, keys := range [][]string{responseKeys, invoiceDataKeys} {
		for _, key := range keys {
			v, ok := m[key]
			if !ok || seen[key] {
				continue
			}
			seen[key] = true
			rows = append(rows, Row{Label: Headline(key), Value: renderValue(v)})
		}
	}
	return rows
}

// Headline turns a wire key into a column label: "merchant_name" becomes
// "Merchant Name", "user_id" becomes "User ID"
func Headline(key string) string {
	words := strings.Split(key, "_")
	for i, w := range words {
		switch w {
		case "":
			continue
		case "id":
			words[i] = "ID"
		default:
			words[i] = strings.ToUpper(w[:1]) + w[1:]
		}
	}
	return strings.Join(words, " ")
}

func renderValue(v any) string {
	switch val := v.(type) {
	case string:
		return val
	case json.Number:
		return val.String()
	case bool, int:
		return fmt.Sprint(val)
	}
	b, err := json.Marshal(v)
	if err != nil {
		return fmt.Sprint(v)
	}
	return string(b)
}

func cloneObjects(list []map[string]any) []map[string]any {
	out := make([]map[string]any, len(list))
	for i, m := range list {
		out[i] = cloneMap(m)
	}
	return out
}

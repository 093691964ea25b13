package model

import (
	"encoding/json"

	"github.com/shopspring/decimal"

	money "github.com/mrfansi/xendit-go/internal/decimal"
	"github.com/mrfansi/xendit-go/internal/enum"
	"github.com/mrfansi/xendit-go/internal/validation"
)

// invoiceDataKeys is the wire order of InvoiceData fields
var invoiceDataKeys = []string{
	"external_id", "amount", "description", "customer", "customer_notification_preference",
	"invoice_duration", "success_redirect_url", "failure_redirect_url", "payment_methods",
	"currency", "callback_virtual_account_id", "mid_label", "reminder_time_unit", "reminder_time",
	"locale", "items", "fees", "should_authenticate_credit_card", "channel_properties", "metadata",
}

// InvoiceData is the body of a create invoice request
type InvoiceData struct {
	ExternalID                     string
	Amount                         decimal.Decimal
	Description                    *string
	Customer                       *InvoiceCustomer
	CustomerNotificationPreference NotificationPreference
	InvoiceDuration                *int
	SuccessRedirectURL             *string
	FailureRedirectURL             *string
	PaymentMethods                 []enum.PaymentMethod
	Currency                       *enum.Currency
	CallbackVirtualAccountID       *string
	MidLabel                       *string
	ReminderTimeUnit               *enum.ReminderTimeUnit
	ReminderTime                   *int
	Locale                         *enum.Locale
	Items                          []Item
	Fees                           []Fee
	ShouldAuthenticateCreditCard   *bool
	ChannelProperties              *ChannelProperties
	Metadata                       map[string]any
}

// NewInvoiceData validates and returns the invoice request
func NewInvoiceData(i InvoiceData) (InvoiceData, error) {
	if err := i.Validate(); err != nil {
		return InvoiceData{}, err
	}
	return i, nil
}

// Validate runs the invoice rules in order and returns the first failure
func (i InvoiceData) Validate() error {
	if err := validation.First(
		validation.ExternalID(i.ExternalID),
		validation.Amount(i.Amount),
		validation.InvoiceDescription(i.Description),
	); err != nil {
		return err
	}
	if i.Customer != nil {
		if err := i.Customer.Validate(); err != nil {
			return validation.Nested("customer", err)
		}
	}
	if err := validation.First(
		i.CustomerNotificationPreference.Validate(),
		validation.InvoiceDuration(i.InvoiceDuration),
		validation.SuccessRedirectURL(i.SuccessRedirectURL),
		validation.FailureRedirectURL(i.FailureRedirectURL),
		validation.ReminderTime(i.ReminderTime, i.ReminderTimeUnit),
		validation.ItemCount(len(i.Items)),
	); err != nil {
		return err
	}
	for idx, item := range i.Items {
		if err := item.Validate(); err != nil {
			return validation.AtIndex("items", idx, err)
		}
	}
	if err := validation.FeeCount(len(i.Fees)); err != nil {
		return err
	}
	for idx, fee := range i.Fees {
		if err := fee.Validate(); err != nil {
			return validation.AtIndex("fees", idx, err)
		}
	}
	if err := validation.Metadata(i.Metadata); err != nil {
		return err
	}
	for _, m := range i.PaymentMethods {
		if err := validation.PaymentMethod(m); err != nil {
			return err
		}
	}
	if err := validation.First(
		validation.InvoiceCurrency(i.Currency),
		validation.InvoiceLocale(i.Locale),
	); err != nil {
		return err
	}
	if i.ChannelProperties != nil {
		return i.ChannelProperties.Validate()
	}
	return nil
}

// WithDescription returns a copy with the description replaced
func (i InvoiceData) WithDescription(description string) (InvoiceData, error) {
	i.Description = &description
	return NewInvoiceData(i)
}

// WithCustomer returns a copy billed to the given customer
func (i InvoiceData) WithCustomer(c InvoiceCustomer) (InvoiceData, error) {
	i.Customer = &c
	return NewInvoiceData(i)
}

// WithCurrency returns a copy in the given currency
func (i InvoiceData) WithCurrency(c enum.Currency) (InvoiceData, error) {
	i.Currency = &c
	return NewInvoiceData(i)
}

// WithItems returns a copy with the line items replaced
func (i InvoiceData) WithItems(items ...Item) (InvoiceData, error) {
	i.Items = append([]Item{}, items...)
	return NewInvoiceData(i)
}

// WithFees returns a copy with the fees replaced
func (i InvoiceData) WithFees(fees ...Fee) (InvoiceData, error) {
	i.Fees = append([]Fee{}, fees...)
	return NewInvoiceData(i)
}

// WithReminder returns a copy that reminds the payer n units before expiry
func (i InvoiceData) WithReminder(n int, unit enum.ReminderTimeUnit) (InvoiceData, error) {
	i.ReminderTime = &n
	i.ReminderTimeUnit = &unit
	return NewInvoiceData(i)
}

// WithPaymentMethods returns a copy restricted to the given methods
func (i InvoiceData) WithPaymentMethods(methods ...enum.PaymentMethod) (InvoiceData, error) {
	i.PaymentMethods = append([]enum.PaymentMethod{}, methods...)
	return NewInvoiceData(i)
}

// WithMetadata returns a copy with the metadata replaced
func (i InvoiceData) WithMetadata(metadata map[string]any) (InvoiceData, error) {
	i.Metadata = cloneMap(metadata)
	return NewInvoiceData(i)
}

// ItemsTotal sums price times quantity over all items
func (i InvoiceData) ItemsTotal() decimal.Decimal {
	totals := make([]decimal.Decimal, len(i.Items))
	for idx, item := range i.Items {
		totals[idx] = item.Total()
	}
	return money.Sum(totals)
}

// FeesTotal sums all fees, discounts included
func (i InvoiceData) FeesTotal() decimal.Decimal {
	values := make([]decimal.Decimal, len(i.Fees))
	for idx, fee := range i.Fees {
		values[idx] = fee.Value
	}
	return money.Sum(values)
}

func (i InvoiceData) ToMap() map[string]any {
	w := wire{
		"external_id": i.ExternalID,
		"amount":      money.ToWire(i.Amount),
	}
	put(w, "description", i.Description)
	if i.Customer != nil {
		w["customer"] = i.Customer.ToMap()
	}
	if i.CustomerNotificationPreference != nil {
		w["customer_notification_preference"] = i.CustomerNotificationPreference.ToMap()
	}
	put(w, "invoice_duration", i.InvoiceDuration)
	put(w, "success_redirect_url", i.SuccessRedirectURL)
	put(w, "failure_redirect_url", i.FailureRedirectURL)
	putEnums(w, "payment_methods", i.PaymentMethods)
	putEnum(w, "currency", i.Currency)
	put(w, "callback_virtual_account_id", i.CallbackVirtualAccountID)
	put(w, "mid_label", i.MidLabel)
	putEnum(w, "reminder_time_unit", i.ReminderTimeUnit)
	put(w, "reminder_time", i.ReminderTime)
	putEnum(w, "locale", i.Locale)
	putList(w, "items", i.Items)
	putList(w, "fees", i.Fees)
	put(w, "should_authenticate_credit_card", i.ShouldAuthenticateCreditCard)
	if i.ChannelProperties != nil {
		w["channel_properties"] = i.ChannelProperties.ToMap()
	}
	if i.Metadata != nil {
		w["metadata"] = cloneMap(i.Metadata)
	}
	return w
}

func (i InvoiceData) MarshalJSON() ([]byte, error) {
	return json.Marshal(i.ToMap())
}

func (i *InvoiceData) UnmarshalJSON(data []byte) error {
	m, err := DecodeJSON(data)
	if err != nil {
		return err
	}
	decoded, err := InvoiceDataFromMap(m)
	if err != nil {
		return err
	}
	*i = decoded
	return nil
}

// InvoiceDataFromMap decodes and validates a wire invoice request
func InvoiceDataFromMap(m map[string]any) (InvoiceData, error) {
	d := newDecoder("invoice", m)
	i, err := decodeInvoiceData(d)
	if err != nil {
		return InvoiceData{}, err
	}
	return NewInvoiceData(i)
}

func decodeInvoiceData(d *decoder) (InvoiceData, error) {
	i := InvoiceData{
		ExternalID:                   d.RequiredString("external_id"),
		Amount:                       d.RequiredDecimal("amount"),
		Description:                  d.String("description"),
		Customer:                     nested(d, "customer", InvoiceCustomerFromMap),
		InvoiceDuration:              d.Int("invoice_duration"),
		SuccessRedirectURL:           d.String("success_redirect_url"),
		FailureRedirectURL:           d.String("failure_redirect_url"),
		PaymentMethods:               rawEnumList[enum.PaymentMethod](d, "payment_methods"),
		Currency:                     rawEnum[enum.Currency](d, "currency"),
		CallbackVirtualAccountID:     d.String("callback_virtual_account_id"),
		MidLabel:                     d.String("mid_label"),
		ReminderTimeUnit:             enumValue(d, "reminder_time_unit", enum.ParseReminderTimeUnit),
		ReminderTime:                 d.Int("reminder_time"),
		Locale:                       rawEnum[enum.Locale](d, "locale"),
		Items:                        nestedList(d, "items", ItemFromMap),
		Fees:                         nestedList(d, "fees", FeeFromMap),
		ShouldAuthenticateCreditCard: d.Bool("should_authenticate_credit_card"),
		ChannelProperties:            nested(d, "channel_properties", ChannelPropertiesFromMap),
		Metadata:                     d.Object("metadata"),
	}
	preference := d.Object("customer_notification_preference")
	if err := d.Err(); err != nil {
		return InvoiceData{}, err
	}
	if preference != nil {
		pref, err := NotificationPreferenceFromMap(preference)
		if err != nil {
			return InvoiceData{}, err
		}
		i.CustomerNotificationPreference = pref
	}
	return i, nil
}

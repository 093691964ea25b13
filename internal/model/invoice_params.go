package model

import (
	"encoding/json"
	"net/url"
	"strconv"

	"github.com/mrfansi/xendit-go/internal/enum"
	"github.com/mrfansi/xendit-go/internal/validation"
)

// DefaultListLimit is the page size used when none is given
const DefaultListLimit = 10

// InvoiceParams filters an invoice listing. Each after/before pair must be
// set together.
type InvoiceParams struct {
	ExternalID         *string
	Statuses           []enum.InvoiceStatus
	Limit              int
	CreatedAfter       *string
	CreatedBefore      *string
	PaidAfter          *string
	PaidBefore         *string
	ExpiredAfter       *string
	ExpiredBefore      *string
	LastInvoiceID      *string
	ClientTypes        []enum.ClientType
	PaymentChannels    []enum.PaymentMethod
	OnDemandLink       *string
	RecurringPaymentID *string
}

// NewInvoiceParams applies the default limit and validates the filter
func NewInvoiceParams(p InvoiceParams) (InvoiceParams, error) {
	if p.Limit == 0 {
		p.Limit = DefaultListLimit
	}
	if err := p.Validate(); err != nil {
		return InvoiceParams{}, err
	}
	return p, nil
}

func (p InvoiceParams) Validate() error {
	if err := validation.ListLimit(p.Limit); err != nil {
		return err
	}
	for _, s := range p.Statuses {
		if err := validation.StatusFilter(s); err != nil {
			return err
		}
	}
	if err := validation.First(
		validation.DateRange("created", p.CreatedAfter, p.CreatedBefore),
		validation.DateRange("paid", p.PaidAfter, p.PaidBefore),
		validation.DateRange("expired", p.ExpiredAfter, p.ExpiredBefore),
	); err != nil {
		return err
	}
	for _, c := range p.ClientTypes {
		if err := validation.ClientTypeFilter(c); err != nil {
			return err
		}
	}
	for _, m := range p.PaymentChannels {
		if err := validation.PaymentChannelFilter(m); err != nil {
			return err
		}
	}
	return nil
}

// WithExternalID returns a copy filtered to one external id
func (p InvoiceParams) WithExternalID(id string) (InvoiceParams, error) {
	p.ExternalID = &id
	return NewInvoiceParams(p)
}

// WithStatuses returns a copy filtered to the given statuses
func (p InvoiceParams) WithStatuses(statuses ...enum.InvoiceStatus) (InvoiceParams, error) {
	p.Statuses = append([]enum.InvoiceStatus{}, statuses...)
	return NewInvoiceParams(p)
}

// WithLimit returns a copy with the page size replaced
func (p InvoiceParams) WithLimit(limit int) (InvoiceParams, error) {
	p.Limit = limit
	if err := p.Validate(); err != nil {
		return InvoiceParams{}, err
	}
	return p, nil
}

// WithCreatedRange returns a copy filtered by creation time
func (p InvoiceParams) WithCreatedRange(after, before string) (InvoiceParams, error) {
	p.CreatedAfter, p.CreatedBefore = &after, &before
	return NewInvoiceParams(p)
}

// WithPaidRange returns a copy filtered by payment time
func (p InvoiceParams) WithPaidRange(after, before string) (InvoiceParams, error) {
	p.PaidAfter, p.PaidBefore = &after, &before
	return NewInvoiceParams(p)
}

// WithExpiredRange returns a copy filtered by expiry time
func (p InvoiceParams) WithExpiredRange(after, before string) (InvoiceParams, error) {
	p.ExpiredAfter, p.ExpiredBefore = &after, &before
	return NewInvoiceParams(p)
}

// After returns a copy that pages past the given invoice
func (p InvoiceParams) After(lastInvoiceID string) (InvoiceParams, error) {
	p.LastInvoiceID = &lastInvoiceID
	return NewInvoiceParams(p)
}

func (p InvoiceParams) ToMap() map[string]any {
	w := wire{"limit": p.Limit}
	put(w, "external_id", p.ExternalID)
	putEnums(w, "statuses", p.Statuses)
	put(w, "created_after", p.CreatedAfter)
	put(w, "created_before", p.CreatedBefore)
	put(w, "paid_after", p.PaidAfter)
	put(w, "paid_before", p.PaidBefore)
	put(w, "expired_after", p.ExpiredAfter)
	put(w, "expired_before", p.ExpiredBefore)
	put(w, "last_invoice_id", p.LastInvoiceID)
	putEnums(w, "client_types", p.ClientTypes)
	putEnums(w, "payment_channels", p.PaymentChannels)
	put(w, "on_demand_link", p.OnDemandLink)
	put(w, "recurring_payment_id", p.RecurringPaymentID)
	return w
}

// Query encodes the filter as URL query parameters. Lists are sent as JSON
// arrays and empty lists are left out.
func (p InvoiceParams) Query() url.Values {
	q := url.Values{}
	for key, v := range p.ToMap() {
		switch val := v.(type) {
		case string:
			q.Set(key, val)
		case int:
			q.Set(key, strconv.Itoa(val))
		case []string:
			if len(val) == 0 {
				continue
			}
			encoded, _ := json.Marshal(val)
			q.Set(key, string(encoded))
		}
	}
	return q
}

// InvoiceParamsFromMap decodes and validates a wire filter
func InvoiceParamsFromMap(m map[string]any) (InvoiceParams, error) {
	d := newDecoder("invoice_params", m)
	p := InvoiceParams{
		ExternalID:         d.String("external_id"),
		Statuses:           rawEnumList[enum.InvoiceStatus](d, "statuses"),
		CreatedAfter:       d.String("created_after"),
		CreatedBefore:      d.String("created_before"),
		PaidAfter:          d.String("paid_after"),
		PaidBefore:         d.String("paid_before"),
		ExpiredAfter:       d.String("expired_after"),
		ExpiredBefore:      d.String("expired_before"),
		LastInvoiceID:      d.String("last_invoice_id"),
		ClientTypes:        rawEnumList[enum.ClientType](d, "client_types"),
		PaymentChannels:    rawEnumList[enum.PaymentMethod](d, "payment_channels"),
		OnDemandLink:       d.String("on_demand_link"),
		RecurringPaymentID: d.String("recurring_payment_id"),
	}
	limit := d.Int("limit")
	if err := d.Err(); err != nil {
		return InvoiceParams{}, err
	}
	if limit == nil {
		return NewInvoiceParams(p)
	}
	// a limit on the wire is taken as given, zero included
	p.Limit = *limit
	if err := p.Validate(); err != nil {
		return InvoiceParams{}, err
	}
	return p, nil
}

// ParseInvoiceParamsQuery reads a filter back from URL query parameters,
// accepting lists as JSON arrays or repeated keys
func ParseInvoiceParamsQuery(q url.Values) (InvoiceParams, error) {
	m := make(map[string]any, len(q))
	for key, values := range q {
		if len(values) == 0 {
			continue
		}
		switch key {
		case "statuses", "client_types", "payment_channels":
			var list []string
			if len(values) == 1 && json.Unmarshal([]byte(values[0]), &list) == nil {
				m[key] = list
			} else {
				m[key] = values
			}
		case "limit":
			n, err := strconv.Atoi(values[0])
			if err != nil {
				return InvoiceParams{}, NewDecodeError("invoice_params", "limit", "expected integer", err)
			}
			m[key] = n
		default:
			m[key] = values[0]
		}
	}
	return InvoiceParamsFromMap(m)
}

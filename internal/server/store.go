package server

import (
	"errors"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/mrfansi/xendit-go/internal/enum"
	"github.com/mrfansi/xendit-go/internal/model"
	"github.com/mrfansi/xendit-go/internal/validation"
)

// DefaultInvoiceDuration applies when a created invoice names none
const DefaultInvoiceDuration = 24 * time.Hour

// timestampLayout is the gateway's timestamp format
const timestampLayout = "2006-01-02T15:04:05.000Z"

var (
	// ErrInvoiceNotFound is returned for an unknown invoice id
	ErrInvoiceNotFound = errors.New("invoice not found")
	// ErrNotPending is returned when expiring an invoice that is already final or paid
	ErrNotPending = errors.New("invoice is not pending")
)

type stored struct {
	invoice    model.InvoiceResponse
	clientType enum.ClientType
}

// Store keeps sandbox invoices in memory, newest first
type Store struct {
	mu          sync.RWMutex
	byID        map[string]*stored
	order       []string
	idempotency map[string]string

	now          func() time.Time
	merchantName string
	checkoutURL  string
}

// NewStore creates an empty store. checkoutURL prefixes every invoice_url.
func NewStore(merchantName, checkoutURL string, now func() time.Time) *Store {
	if now == nil {
		now = time.Now
	}
	return &Store{
		byID:         make(map[string]*stored),
		idempotency:  make(map[string]string),
		now:          now,
		merchantName: merchantName,
		checkoutURL:  strings.TrimRight(checkoutURL, "/"),
	}
}

// Create stores a new PENDING invoice for userID. A repeated non-empty
// idempotencyKey returns the invoice created the first time.
func (s *Store) Create(data model.InvoiceData, userID, idempotencyKey string) (model.InvoiceResponse, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if idempotencyKey != "" {
		if id, ok := s.idempotency[idempotencyKey]; ok {
			return s.byID[id].invoice, false, nil
		}
	}

	now := s.now().UTC()
	duration := DefaultInvoiceDuration
	if data.InvoiceDuration != nil {
		duration = time.Duration(*data.InvoiceDuration) * time.Second
	}
	if data.Currency == nil {
		idr := enum.CurrencyIDR
		data.Currency = &idr
	}

	id := strings.ReplaceAll(uuid.NewString(), "-", "")
	created := now.Format(timestampLayout)
	expiry := now.Add(duration).Format(timestampLayout)
	invoiceURL := s.checkoutURL + "/" + id

	inv := model.InvoiceResponse{
		InvoiceData:  data,
		ID:           id,
		UserID:       userID,
		Status:       enum.StatusPending,
		MerchantName: s.merchantName,
		InvoiceURL:   &invoiceURL,
		Created:      &created,
		Updated:      &created,
		ExpiryDate:   &expiry,
	}
	if data.Customer != nil && data.Customer.Email != nil {
		email := *data.Customer.Email
		inv.PayerEmail = &email
	}

	inv, err := model.NewInvoiceResponse(inv)
	if err != nil {
		return model.InvoiceResponse{}, false, err
	}

	s.byID[id] = &stored{invoice: inv, clientType: enum.ClientAPIGateway}
	s.order = append([]string{id}, s.order...)
	if idempotencyKey != "" {
		s.idempotency[idempotencyKey] = id
	}
	return inv, true, nil
}

// Get returns one invoice
func (s *Store) Get(id string) (model.InvoiceResponse, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	st, ok := s.byID[id]
	if !ok {
		return model.InvoiceResponse{}, ErrInvoiceNotFound
	}
	return st.invoice, nil
}

// List returns the invoices matching p, newest first
func (s *Store) List(p model.InvoiceParams) []model.InvoiceResponse {
	s.mu.RLock()
	defer s.mu.RUnlock()

	start := 0
	if p.LastInvoiceID != nil {
		i := slices.Index(s.order, *p.LastInvoiceID)
		if i < 0 {
			return []model.InvoiceResponse{}
		}
		start = i + 1
	}

	limit := p.Limit
	if limit <= 0 {
		limit = model.DefaultListLimit
	}

	out := make([]model.InvoiceResponse, 0, limit)
	for _, id := range s.order[start:] {
		if len(out) == limit {
			break
		}
		st := s.byID[id]
		if matches(st, p) {
			out = append(out, st.invoice)
		}
	}
	return out
}

// Expire moves a PENDING invoice to EXPIRED now
func (s *Store) Expire(id string) (model.InvoiceResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	st, ok := s.byID[id]
	if !ok {
		return model.InvoiceResponse{}, ErrInvoiceNotFound
	}
	if st.invoice.Status != enum.StatusPending {
		return model.InvoiceResponse{}, ErrNotPending
	}
	s.expire(st, s.now().UTC())
	return st.invoice, nil
}

// ExpireOverdue expires every PENDING invoice whose expiry date has passed
// and returns how many changed
func (s *Store) ExpireOverdue() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now().UTC()
	n := 0
	for _, st := range s.byID {
		if st.invoice.Status != enum.StatusPending || st.invoice.ExpiryDate == nil {
			continue
		}
		expiry, err := validation.ParseISO8601(*st.invoice.ExpiryDate)
		if err != nil || expiry.After(now) {
			continue
		}
		s.expire(st, now)
		n++
	}
	return n
}

// Len returns the number of stored invoices
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.order)
}

func (s *Store) expire(st *stored, now time.Time) {
	ts := now.Format(timestampLayout)
	st.invoice.Status = enum.StatusExpired
	st.invoice.Updated = &ts
	st.invoice.ExpiryDate = &ts
}

func matches(st *stored, p model.InvoiceParams) bool {
	inv := st.invoice
	if p.ExternalID != nil && inv.ExternalID != *p.ExternalID {
		return false
	}
	if len(p.Statuses) > 0 && !slices.Contains(p.Statuses, inv.Status) {
		return false
	}
	if len(p.ClientTypes) > 0 && !slices.Contains(p.ClientTypes, st.clientType) {
		return false
	}
	if len(p.PaymentChannels) > 0 {
		if inv.PaymentChannel == nil || !slices.Contains(p.PaymentChannels, enum.PaymentMethod(*inv.PaymentChannel)) {
			return false
		}
	}
	// sandbox invoices are never created from payment links or recurring plans
	if p.OnDemandLink != nil || p.RecurringPaymentID != nil {
		return false
	}
	return within(inv.Created, p.CreatedAfter, p.CreatedBefore) &&
		within(inv.PaidAt, p.PaidAfter, p.PaidBefore) &&
		within(expiredAt(inv), p.ExpiredAfter, p.ExpiredBefore)
}

func expiredAt(inv model.InvoiceResponse) *string {
	if inv.Status != enum.StatusExpired {
		return nil
	}
	return inv.ExpiryDate
}

// within reports whether ts falls in [after, before]. An unset range always
// matches; a set range never matches a missing timestamp.
func within(ts, after, before *string) bool {
	if after == nil || before == nil {
		return true
	}
	if ts == nil {
		return false
	}
	t, err := validation.ParseISO8601(*ts)
	if err != nil {
		return false
	}
	from, err1 := validation.ParseISO8601(*after)
	to, err2 := validation.ParseISO8601(*before)
	if err1 != nil || err2 != nil {
		return false
	}
	return !t.Before(from) && !t.After(to)
}

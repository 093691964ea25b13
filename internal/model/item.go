package model

import (
	"github.com/shopspring/decimal"

	money "github.com/mrfansi/xendit-go/internal/decimal"
	"github.com/mrfansi/xendit-go/internal/validation"
)

// Item is an invoice line item
type Item struct {
	Name        string
	Quantity    int
	Price       decimal.Decimal
	Category    *string
	URL         *string
	ReferenceID *string
}

// NewItem validates and returns the item
func NewItem(i Item) (Item, error) {
	if err := i.Validate(); err != nil {
		return Item{}, err
	}
	return i, nil
}

func (i Item) Validate() error {
	return validation.First(
		validation.ItemName(i.Name),
		validation.ItemQuantity(i.Quantity),
		validation.ItemPrice(i.Price),
		validation.ItemURL(i.URL),
	)
}

// Total is price times quantity
func (i Item) Total() decimal.Decimal {
	return money.LineTotal(i.Price, i.Quantity)
}

// WithQuantity returns a copy with the quantity replaced
func (i Item) WithQuantity(n int) (Item, error) {
	i.Quantity = n
	return NewItem(i)
}

func (i Item) ToMap() map[string]any {
	w := wire{
		"name":     i.Name,
		"quantity": i.Quantity,
		"price":    money.ToWire(i.Price),
	}
	put(w, "category", i.Category)
	put(w, "url", i.URL)
	put(w, "reference_id", i.ReferenceID)
	return w
}

// ItemFromMap decodes and validates a wire item
func ItemFromMap(m map[string]any) (Item, error) {
	d := newDecoder("item", m)
	i := Item{
		Name:        d.RequiredString("name"),
		Price:       d.RequiredDecimal("price"),
		Category:    d.String("category"),
		URL:         d.String("url"),
		ReferenceID: d.String("reference_id"),
	}
	if q := d.Int("quantity"); q != nil {
		i.Quantity = *q
	}
	if err := d.Err(); err != nil {
		return Item{}, err
	}
	return NewItem(i)
}

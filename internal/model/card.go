package model

import (
	"slices"

	"github.com/shopspring/decimal"

	"github.com/mrfansi/xendit-go/internal/validation"
)

// AllowedTerm lists the installment tenors one issuer may offer
type AllowedTerm struct {
	Issuer string
	Terms  []int
}

// NewAllowedTerm validates and returns the term
func NewAllowedTerm(t AllowedTerm) (AllowedTerm, error) {
	if err := t.Validate(); err != nil {
		return AllowedTerm{}, err
	}
	return t, nil
}

func (t AllowedTerm) Validate() error {
	return validation.First(
		validation.Issuer(t.Issuer),
		validation.Terms(t.Terms),
	)
}

func (t AllowedTerm) ToMap() map[string]any {
	return wire{
		"issuer": t.Issuer,
		"terms":  slices.Clone(t.Terms),
	}
}

// AllowedTermFromMap decodes and validates a wire allowed term
func AllowedTermFromMap(m map[string]any) (AllowedTerm, error) {
	d := newDecoder("allowed_term", m)
	t := AllowedTerm{
		Issuer: d.RequiredString("issuer"),
		Terms:  d.Ints("terms"),
	}
	if err := d.Err(); err != nil {
		return AllowedTerm{}, err
	}
	return NewAllowedTerm(t)
}

// InstallmentConfiguration controls card installments at checkout. Both
// flags default to true when absent on the wire.
type InstallmentConfiguration struct {
	AllowInstallment bool
	AllowFullPayment bool
	AllowedTerms     []AllowedTerm
	MinAmount        *decimal.Decimal
	MaxAmount        *decimal.Decimal
	AllowedIssuers   []string
}

// DefaultInstallmentConfiguration allows both installments and full payment
func DefaultInstallmentConfiguration() InstallmentConfiguration {
	return InstallmentConfiguration{AllowInstallment: true, AllowFullPayment: true}
}

// NewInstallmentConfiguration validates and returns the configuration
func NewInstallmentConfiguration(c InstallmentConfiguration) (InstallmentConfiguration, error) {
	if err := c.Validate(); err != nil {
		return InstallmentConfiguration{}, err
	}
	return c, nil
}

func (c InstallmentConfiguration) Validate() error {
	for i, t := range c.AllowedTerms {
		if err := t.Validate(); err != nil {
			return validation.AtIndex("allowed_terms", i, err)
		}
	}
	for _, issuer := range c.AllowedIssuers {
		if err := validation.Issuer(issuer); err != nil {
			return err
		}
	}
	return validation.InstallmentBounds(c.MinAmount, c.MaxAmount)
}

func (c InstallmentConfiguration) ToMap() map[string]any {
	w := wire{
		"allow_installment":  c.AllowInstallment,
		"allow_full_payment": c.AllowFullPayment,
	}
	putList(w, "allowed_terms", c.AllowedTerms)
	putAmount(w, "min_amount", c.MinAmount)
	putAmount(w, "max_amount", c.MaxAmount)
	if c.AllowedIssuers != nil {
		w["allowed_issuers"] = slices.Clone(c.AllowedIssuers)
	}
	return w
}

// InstallmentConfigurationFromMap decodes and validates a wire configuration
func InstallmentConfigurationFromMap(m map[string]any) (InstallmentConfiguration, error) {
	d := newDecoder("installment_configuration", m)
	c := DefaultInstallmentConfiguration()
	if v := d.Bool("allow_installment"); v != nil {
		c.AllowInstallment = *v
	}
	if v := d.Bool("allow_full_payment"); v != nil {
		c.AllowFullPayment = *v
	}
	c.AllowedTerms = nestedList(d, "allowed_terms", AllowedTermFromMap)
	c.MinAmount = d.Decimal("min_amount")
	c.MaxAmount = d.Decimal("max_amount")
	c.AllowedIssuers = d.Strings("allowed_issuers")
	if err := d.Err(); err != nil {
		return InstallmentConfiguration{}, err
	}
	return NewInstallmentConfiguration(c)
}

// CardChannelProperties is the card payment policy of an invoice
type CardChannelProperties struct {
	AllowedBins              []string
	SkipThreeDSecure         *bool
	AllowedTerms             []AllowedTerm
	InstallmentConfiguration *InstallmentConfiguration
}

// NewCardChannelProperties validates and returns the properties
func NewCardChannelProperties(p CardChannelProperties) (CardChannelProperties, error) {
	if err := p.Validate(); err != nil {
		return CardChannelProperties{}, err
	}
	return p, nil
}

func (p CardChannelProperties) Validate() error {
	for _, bin := range p.AllowedBins {
		if err := validation.CardBIN(bin); err != nil {
			return err
		}
	}
	for i, t := range p.AllowedTerms {
		if err := t.Validate(); err != nil {
			return validation.AtIndex("allowed_terms", i, err)
		}
	}
	if p.InstallmentConfiguration != nil {
		if err := p.InstallmentConfiguration.Validate(); err != nil {
			return validation.Nested("installment_configuration", err)
		}
	}
	return nil
}

// WithAllowedBins returns a copy restricted to the given BINs
func (p CardChannelProperties) WithAllowedBins(bins ...string) (CardChannelProperties, error) {
	p.AllowedBins = append([]string{}, bins...)
	return NewCardChannelProperties(p)
}

func (p CardChannelProperties) ToMap() map[string]any {
	w := wire{}
	if p.AllowedBins != nil {
		w["allowed_bins"] = slices.Clone(p.AllowedBins)
	}
	put(w, "skip_three_d_secure", p.SkipThreeDSecure)
	putList(w, "allowed_terms", p.AllowedTerms)
	if p.InstallmentConfiguration != nil {
		w["installment_configuration"] = p.InstallmentConfiguration.ToMap()
	}
	return w
}

// CardChannelPropertiesFromMap decodes and validates wire card properties
func CardChannelPropertiesFromMap(m map[string]any) (CardChannelProperties, error) {
	d := newDecoder("cards", m)
	p := CardChannelProperties{
		AllowedBins:              d.Strings("allowed_bins"),
		SkipThreeDSecure:         d.Bool("skip_three_d_secure"),
		AllowedTerms:             nestedList(d, "allowed_terms", AllowedTermFromMap),
		InstallmentConfiguration: nested(d, "installment_configuration", InstallmentConfigurationFromMap),
	}
	if err := d.Err(); err != nil {
		return CardChannelProperties{}, err
	}
	return NewCardChannelProperties(p)
}

// ChannelProperties groups per-channel policies of an invoice
type ChannelProperties struct {
	Cards *CardChannelProperties
}

func (c ChannelProperties) Validate() error {
	if c.Cards == nil {
		return nil
	}
	return validation.Nested("channel_properties.cards", c.Cards.Validate())
}

func (c ChannelProperties) ToMap() map[string]any {
	w := wire{}
	if c.Cards != nil {
		w["cards"] = c.Cards.ToMap()
	}
	return w
}

// ChannelPropertiesFromMap decodes and validates wire channel properties
func ChannelPropertiesFromMap(m map[string]any) (ChannelProperties, error) {
	d := newDecoder("channel_properties", m)
	c := ChannelProperties{
		Cards: nested(d, "cards", CardChannelPropertiesFromMap),
	}
	if err := d.Err(); err != nil {
		return ChannelProperties{}, err
	}
	return c, nil
}

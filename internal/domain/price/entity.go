package price

import (
	"math"

	"price-offer/internal/pkg/errs"
)

// Price is a priced item. The base value is fixed by NewPrice; only the
// offer value changes afterwards.
type Price struct {
	value      float64
	offerValue *float64
}

func NewPrice(total float64) (*Price, error) {
	if !isFinite(total) {
		return nil, errs.InvalidArgument("price total must be finite, got %v", total)
	}
	return &Price{value: total}, nil
}

// SetValue recomputes the offer value as the base value times discount.
// The base value is left untouched. A rejected discount keeps the previous offer.
func (p *Price) SetValue(discount float64) error {
	if !isFinite(discount) {
		return errs.InvalidArgument("discount factor must be finite, got %v", discount)
	}
	offer := p.value * discount
	p.offerValue = &offer
	return nil
}

func (p *Price) Value() float64 { return p.value }

func (p *Price) OfferValue() (float64, bool) {
	if p.offerValue == nil {
		return 0, false
	}
	return *p.offerValue, true
}

func (p *Price) HasOffer() bool { return p.offerValue != nil }

type Snapshot struct {
	Value      float64
	OfferValue *float64
}

func (p *Price) Snapshot() Snapshot {
	s := Snapshot{Value: p.value}
	if p.offerValue != nil {
		offer := *p.offerValue
		s.OfferValue = &offer
	}
	return s
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

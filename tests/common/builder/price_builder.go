//go:build unit

package builder

import (
	"price-offer/internal/domain/price"
)

type PriceBuilder struct {
	Total     float64
	Discounts []float64
}

func NewPriceBuilder() *PriceBuilder {
	return &PriceBuilder{
		Total: 200,
	}
}

func (p *PriceBuilder) With(mutate func(*PriceBuilder)) *PriceBuilder {
	mutate(p)
	return p
}

func (p *PriceBuilder) WithTotal(total float64) *PriceBuilder {
	p.Total = total
	return p
}

func (p *PriceBuilder) WithDiscounts(discounts ...float64) *PriceBuilder {
	p.Discounts = discounts
	return p
}

// BuildDomain creates the price and applies every discount in order.
func (p *PriceBuilder) BuildDomain() (*price.Price, error) {
	pr, err := price.NewPrice(p.Total)
	if err != nil {
		return nil, err
	}
	for _, d := range p.Discounts {
		if err := pr.SetValue(d); err != nil {
			return nil, err
		}
	}
	return pr, nil
}

package usecase

import (
	"context"
	"log/slog"
	"time"

	"price-offer/internal/domain/price"
	"price-offer/internal/pkg/clock"
	"price-offer/internal/pkg/errs"
)

// QuoteRequest carries the base total and the discounts to apply.
// Discounts are multipliers; PercentOff entries (0..100) are converted
// to multipliers and applied after them.
type QuoteRequest struct {
	Total      float64
	Discounts  []float64
	PercentOff []float64
}

type QuoteLine struct {
	Discount   float64
	OfferValue float64
	Value      float64
}

type QuoteResult struct {
	Lines    []QuoteLine
	Final    price.Snapshot
	QuotedAt time.Time
}

type QuoteUseCase interface {
	Quote(ctx context.Context, req QuoteRequest) (*QuoteResult, error)
}

type quoteUseCaseImpl struct {
	clock  clock.Clock
	logger *slog.Logger
}

func NewQuoteUseCase(clk clock.Clock, logger *slog.Logger) QuoteUseCase {
	return &quoteUseCaseImpl{
		clock:  clk,
		logger: logger,
	}
}

// Quote prices req.Total and applies every discount in order. Lines
// holds one entry per applied discount; Final reflects the last one.
func (uc *quoteUseCaseImpl) Quote(ctx context.Context, req QuoteRequest) (*QuoteResult, error) {
	p, err := price.NewPrice(req.Total)
	if err != nil {
		return nil, errs.Wrap(err, "failed to create price")
	}

	discounts := make([]float64, 0, len(req.Discounts)+len(req.PercentOff))
	discounts = append(discounts, req.Discounts...)
	for _, percentOff := range req.PercentOff {
		factor, err := price.DiscountFromPercentOff(percentOff)
		if err != nil {
			return nil, errs.Wrap(err, "failed to convert percent off")
		}
		discounts = append(discounts, factor)
	}

	lines := make([]QuoteLine, 0, len(discounts))
	for i, discount := range discounts {
		if err := p.SetValue(discount); err != nil {
			return nil, errs.Wrapf(err, "failed to apply discount #%d", i+1)
		}

		offer, _ := p.OfferValue()
		lines = append(lines, QuoteLine{
			Discount:   discount,
			OfferValue: offer,
			Value:      p.Value(),
		})

		uc.logger.DebugContext(ctx, "discount applied",
			slog.Float64("value", p.Value()),
			slog.Float64("discount", discount),
			slog.Float64("offer_value", offer),
		)
	}

	result := &QuoteResult{
		Lines:    lines,
		Final:    p.Snapshot(),
		QuotedAt: uc.clock.Now(),
	}

	attrs := []any{
		slog.Float64("value", result.Final.Value),
		slog.Int("discounts", len(lines)),
	}
	if result.Final.OfferValue != nil {
		attrs = append(attrs, slog.Float64("offer_value", *result.Final.OfferValue))
	}
	uc.logger.InfoContext(ctx, "quote computed", attrs...)

	return result, nil
}

package price

import "price-offer/internal/pkg/errs"

const maxPercentOff = 100.0

// DiscountFromPercentOff converts a percentage off (0..100) into the
// multiplier SetValue expects, e.g. 10 -> 0.9.
func DiscountFromPercentOff(percentOff float64) (float64, error) {
	if !isFinite(percentOff) || percentOff < 0 || percentOff > maxPercentOff {
		return 0, errs.InvalidArgument("percentage discount must be between 0 and 100, got %v", percentOff)
	}
	return 1 - percentOff/maxPercentOff, nil
}

// Package indicators implements technical analysis indicators on exact
// decimal arithmetic. Every function is pure and free of I/O, and none of
// them returns an error: a series too short for an indicator degrades to a
// documented neutral result instead. Aligned outputs use decimal.NullDecimal
// so positions without a value stay explicitly absent.
package indicators

import (
	"github.com/shopspring/decimal"
)

// Tuning constants shared across the package.
const (
	DefaultRSIPeriod        = 14
	DefaultMACDFastPeriod   = 12
	DefaultMACDSlowPeriod   = 26
	DefaultMACDSignalPeriod = 9
	DefaultMomentumPeriod   = 10
	DefaultLevelWindow      = 20

	// TrendMinimumCandles is the least history the composite trend score
	// accepts before falling back to a neutral reading.
	TrendMinimumCandles = 200

	// mathPrecision is the digit count used for Ln and the square root,
	// the two operations without an exact decimal form.
	mathPrecision = 18
)

// DefaultVolatilityThreshold normalizes sigma to the 0-1 score scale.
var DefaultVolatilityThreshold = decimal.NewFromFloat(0.05)

var (
	two        = decimal.NewFromInt(2)
	fifty      = decimal.NewFromInt(50)
	oneHundred = decimal.NewFromInt(100)
)

// Latest returns the last value of a dense series, or fallback when the
// series is empty.
func Latest(series []decimal.Decimal, fallback decimal.Decimal) decimal.Decimal {
	if len(series) == 0 {
		return fallback
	}
	return series[len(series)-1]
}

// LatestPresent returns the most recent present value of an aligned series,
// or fallback when every position is absent.
func LatestPresent(series []decimal.NullDecimal, fallback decimal.Decimal) decimal.Decimal {
	for i := len(series) - 1; i >= 0; i-- {
		if series[i].Valid {
			return series[i].Decimal
		}
	}
	return fallback
}

func clamp(v, lo, hi decimal.Decimal) decimal.Decimal {
	if v.LessThan(lo) {
		return lo
	}
	if v.GreaterThan(hi) {
		return hi
	}
	return v
}

func present(v decimal.Decimal) decimal.NullDecimal {
	return decimal.NullDecimal{Decimal: v, Valid: true}
}

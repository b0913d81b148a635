package indicators

import (
	"github.com/shopspring/decimal"

	"github.com/CanAhmet12/CYRPTOLENS-sub000/internal/domain"
)

// TrendInputs carries precomputed indicator values into the trend score.
// Absent fields are derived from the price series itself; supplying them
// avoids recomputing indicators the caller already has.
type TrendInputs struct {
	EMA20         decimal.NullDecimal
	EMA50         decimal.NullDecimal
	EMA200        decimal.NullDecimal
	MACDHistogram decimal.NullDecimal
	RSI           decimal.NullDecimal
}

// TrendScore composite 0-100 trend reading with its direction label.
type TrendScore struct {
	Score     decimal.Decimal
	Direction domain.TrendDirection
}

// CalculateTrendScore blends price position, moving average alignment, MACD
// histogram sign and the RSI zone into one score. The scale starts at the
// 50 midpoint and each signal shifts it by a fixed weight:
//
//	price above/below EMA200        +10 / -10
//	EMA stack ordered up/down       +10 / -10
//	histogram positive/negative      +5 /  -5
//	RSI in 45..60                    +5
//	RSI above 70 or below 30         -5
//
// Fewer than TrendMinimumCandles prices returns the neutral {50, neutral}.
func CalculateTrendScore(prices []decimal.Decimal, inputs TrendInputs) TrendScore {
	if len(prices) < TrendMinimumCandles {
		return TrendScore{Score: fifty, Direction: domain.TrendDirectionNeutral}
	}

	price := prices[len(prices)-1]

	ema20 := emaOrSupplied(inputs.EMA20, prices, 20, price)
	ema50 := emaOrSupplied(inputs.EMA50, prices, 50, price)
	ema200 := emaOrSupplied(inputs.EMA200, prices, 200, price)

	rsi := fifty
	if inputs.RSI.Valid {
		rsi = inputs.RSI.Decimal
	} else {
		rsi = LatestPresent(CalculateRSI(prices, DefaultRSIPeriod), fifty)
	}

	histogram := decimal.Zero
	if inputs.MACDHistogram.Valid {
		histogram = inputs.MACDHistogram.Decimal
	} else {
		macd := CalculateMACD(prices, DefaultMACDFastPeriod, DefaultMACDSlowPeriod, DefaultMACDSignalPeriod)
		histogram = LatestPresent(macd.Histogram, decimal.Zero)
	}

	score := fifty

	ten := decimal.NewFromInt(10)
	five := decimal.NewFromInt(5)

	if price.GreaterThan(ema200) {
		score = score.Add(ten)
	} else {
		score = score.Sub(ten)
	}

	if ema20.GreaterThan(ema50) && ema50.GreaterThan(ema200) {
		score = score.Add(ten)
	} else if ema20.LessThan(ema50) && ema50.LessThan(ema200) {
		score = score.Sub(ten)
	}

	if histogram.IsPositive() {
		score = score.Add(five)
	} else if histogram.IsNegative() {
		score = score.Sub(five)
	}

	switch {
	case rsi.GreaterThanOrEqual(decimal.NewFromInt(45)) && rsi.LessThanOrEqual(decimal.NewFromInt(60)):
		score = score.Add(five)
	case rsi.GreaterThan(decimal.NewFromInt(70)):
		score = score.Sub(five)
	case rsi.LessThan(decimal.NewFromInt(30)):
		score = score.Sub(five)
	}

	score = clamp(score, decimal.Zero, oneHundred)

	return TrendScore{Score: score, Direction: trendDirectionForScore(score)}
}

// emaOrSupplied uses the caller-supplied EMA value when present, otherwise
// derives it from the price series.
func emaOrSupplied(supplied decimal.NullDecimal, prices []decimal.Decimal, period int, fallback decimal.Decimal) decimal.Decimal {
	if supplied.Valid {
		return supplied.Decimal
	}
	return Latest(CalculateEMA(prices, period), fallback)
}

func trendDirectionForScore(score decimal.Decimal) domain.TrendDirection {
	switch {
	case score.GreaterThanOrEqual(decimal.NewFromInt(65)):
		return domain.TrendDirectionBullish
	case score.LessThanOrEqual(decimal.NewFromInt(35)):
		return domain.TrendDirectionBearish
	default:
		return domain.TrendDirectionNeutral
	}
}

package domain

import (
	"github.com/shopspring/decimal"
)

// TrendDirection qualitative direction of price action.
type TrendDirection string

const (
	TrendDirectionBullish TrendDirection = "bullish"
	TrendDirectionBearish TrendDirection = "bearish"
	TrendDirectionNeutral TrendDirection = "neutral"
)

// Title returns a human-readable representation.
func (t TrendDirection) Title() string {
	switch t {
	case TrendDirectionBullish:
		return "Bullish"
	case TrendDirectionBearish:
		return "Bearish"
	default:
		return "Neutral"
	}
}

// RSIZone classification of an RSI reading.
type RSIZone string

const (
	RSIZoneOverbought RSIZone = "overbought"
	RSIZoneOversold   RSIZone = "oversold"
	RSIZoneNeutral    RSIZone = "neutral"
)

// MomentumStrength classification of a momentum score.
type MomentumStrength string

const (
	MomentumStrengthWeak     MomentumStrength = "weak"
	MomentumStrengthModerate MomentumStrength = "moderate"
	MomentumStrengthStrong   MomentumStrength = "strong"
)

var (
	rsiOverboughtLevel = decimal.NewFromInt(70)
	rsiOversoldLevel   = decimal.NewFromInt(30)
)

// ClassifyRSI maps an RSI reading to its zone: >=70 overbought, <=30 oversold.
func ClassifyRSI(rsi decimal.Decimal) RSIZone {
	switch {
	case rsi.GreaterThanOrEqual(rsiOverboughtLevel):
		return RSIZoneOverbought
	case rsi.LessThanOrEqual(rsiOversoldLevel):
		return RSIZoneOversold
	default:
		return RSIZoneNeutral
	}
}

// ClassifyMACD reads the crossover state of the MACD triple. Bullish requires
// a positive histogram with the MACD line above the signal line, bearish the
// mirror of that.
func ClassifyMACD(macd, signal, histogram decimal.Decimal) TrendDirection {
	if histogram.IsPositive() && macd.GreaterThan(signal) {
		return TrendDirectionBullish
	}
	if histogram.IsNegative() && macd.LessThan(signal) {
		return TrendDirectionBearish
	}
	return TrendDirectionNeutral
}

// ClassifyEMAAlignment orders the three moving averages: a strict
// ema20 > ema50 > ema200 stack is bullish, the strict reverse is bearish.
func ClassifyEMAAlignment(ema20, ema50, ema200 decimal.Decimal) TrendDirection {
	if ema20.GreaterThan(ema50) && ema50.GreaterThan(ema200) {
		return TrendDirectionBullish
	}
	if ema20.LessThan(ema50) && ema50.LessThan(ema200) {
		return TrendDirectionBearish
	}
	return TrendDirectionNeutral
}

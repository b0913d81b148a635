package indicators

import (
	"github.com/shopspring/decimal"

	"github.com/CanAhmet12/CYRPTOLENS-sub000/internal/domain"
)

// momentumScaleFactor stretches the raw rate of change onto the score scale,
// so a +10% move over the lookback saturates the score at 100.
var momentumScaleFactor = decimal.NewFromInt(500)

// Momentum rate-of-change score on a 0-100 scale with a strength label.
// 50 is the resting midpoint.
type Momentum struct {
	Score    decimal.Decimal
	Strength domain.MomentumStrength
}

// CalculateMomentum scores the price change over the lookback period.
// Too little history, or a zero reference price, returns the neutral
// {50, weak} result.
func CalculateMomentum(prices []decimal.Decimal, period int) Momentum {
	neutral := Momentum{Score: fifty, Strength: domain.MomentumStrengthWeak}
	if period <= 0 || len(prices) < period+1 {
		return neutral
	}

	last := prices[len(prices)-1]
	past := prices[len(prices)-1-period]
	if past.IsZero() {
		return neutral
	}

	raw := last.Sub(past).Div(past)
	score := clamp(raw.Mul(momentumScaleFactor).Add(fifty), decimal.Zero, oneHundred)

	return Momentum{Score: score, Strength: momentumStrength(score)}
}

func momentumStrength(score decimal.Decimal) domain.MomentumStrength {
	switch {
	case score.GreaterThanOrEqual(decimal.NewFromInt(70)):
		return domain.MomentumStrengthStrong
	case score.LessThanOrEqual(decimal.NewFromInt(30)):
		return domain.MomentumStrengthWeak
	default:
		return domain.MomentumStrengthModerate
	}
}

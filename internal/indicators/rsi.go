package indicators

import (
	"github.com/shopspring/decimal"
)

// CalculateRSI computes the Relative Strength Index with Wilder smoothing.
// The output stays aligned with the input: positions before the first
// computable index are absent, and a series shorter than period+1 yields a
// fully absent sequence of the same length. Present values sit in [0,100].
func CalculateRSI(prices []decimal.Decimal, period int) []decimal.NullDecimal {
	out := make([]decimal.NullDecimal, len(prices))
	if period <= 0 || len(prices) < period+1 {
		return out
	}

	gains := make([]decimal.Decimal, len(prices)-1)
	losses := make([]decimal.Decimal, len(prices)-1)
	for i := 1; i < len(prices); i++ {
		delta := prices[i].Sub(prices[i-1])
		switch {
		case delta.IsPositive():
			gains[i-1] = delta
			losses[i-1] = decimal.Zero
		case delta.IsNegative():
			gains[i-1] = decimal.Zero
			losses[i-1] = delta.Neg()
		default:
			gains[i-1] = decimal.Zero
			losses[i-1] = decimal.Zero
		}
	}

	periodDec := decimal.NewFromInt(int64(period))
	smoothing := periodDec.Sub(decimal.NewFromInt(1))

	avgGain := decimal.Zero
	avgLoss := decimal.Zero
	for i := 0; i < period; i++ {
		avgGain = avgGain.Add(gains[i])
		avgLoss = avgLoss.Add(losses[i])
	}
	avgGain = avgGain.Div(periodDec)
	avgLoss = avgLoss.Div(periodDec)

	out[period] = present(rsiFromAverages(avgGain, avgLoss))

	for i := period + 1; i < len(prices); i++ {
		avgGain = avgGain.Mul(smoothing).Add(gains[i-1]).Div(periodDec)
		avgLoss = avgLoss.Mul(smoothing).Add(losses[i-1]).Div(periodDec)
		out[i] = present(rsiFromAverages(avgGain, avgLoss))
	}

	return out
}

// rsiFromAverages maps smoothed average gain and loss to the RSI scale.
// A zero average loss pins the index at 100.
func rsiFromAverages(avgGain, avgLoss decimal.Decimal) decimal.Decimal {
	if avgLoss.IsZero() {
		return oneHundred
	}
	rs := avgGain.Div(avgLoss)
	return oneHundred.Sub(oneHundred.Div(decimal.NewFromInt(1).Add(rs)))
}

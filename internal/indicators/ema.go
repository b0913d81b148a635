package indicators

import (
	"github.com/shopspring/decimal"
)

// CalculateEMA computes the Exponential Moving Average over a price series.
// The first output seeds from the simple average of the first period prices,
// every later one follows ema = (price-prev)*k + prev with k = 2/(period+1).
// The result is dense: output[i] belongs to prices[period-1+i]. An empty
// slice comes back when period is not positive or the series is shorter than
// period.
func CalculateEMA(prices []decimal.Decimal, period int) []decimal.Decimal {
	if period <= 0 || len(prices) < period {
		return nil
	}

	sum := decimal.Zero
	for _, p := range prices[:period] {
		sum = sum.Add(p)
	}
	prev := sum.Div(decimal.NewFromInt(int64(period)))

	out := make([]decimal.Decimal, 0, len(prices)-period+1)
	out = append(out, prev)

	k := two.Div(decimal.NewFromInt(int64(period + 1)))
	for _, price := range prices[period:] {
		prev = price.Sub(prev).Mul(k).Add(prev)
		out = append(out, prev)
	}

	return out
}

package indicators

import (
	"github.com/shopspring/decimal"
)

// Volatility sigma of log returns and its normalized score.
// Sigma is the population standard deviation; Score maps it onto [0,1]
// against a threshold, capping at 1.
type Volatility struct {
	Sigma decimal.Decimal
	Score decimal.Decimal
}

// CalculateVolatility measures the dispersion of log returns over the price
// series. Consecutive pairs with a non-positive price are skipped. Fewer
// than two prices, or no usable pair at all, yields a zero result. A
// non-positive threshold pins the score at 1.
func CalculateVolatility(prices []decimal.Decimal, threshold decimal.Decimal) Volatility {
	if len(prices) < 2 {
		return Volatility{}
	}

	returns := make([]decimal.Decimal, 0, len(prices)-1)
	for i := 1; i < len(prices); i++ {
		if !prices[i-1].IsPositive() || !prices[i].IsPositive() {
			continue
		}
		ratio := prices[i].Div(prices[i-1])
		r, err := ratio.Ln(mathPrecision)
		if err != nil {
			continue
		}
		returns = append(returns, r)
	}
	if len(returns) == 0 {
		return Volatility{}
	}

	count := decimal.NewFromInt(int64(len(returns)))

	mean := decimal.Zero
	for _, r := range returns {
		mean = mean.Add(r)
	}
	mean = mean.Div(count)

	variance := decimal.Zero
	for _, r := range returns {
		diff := r.Sub(mean)
		variance = variance.Add(diff.Mul(diff))
	}
	variance = variance.Div(count)

	sigma := decimalSqrt(variance)

	score := decimal.NewFromInt(1)
	if threshold.IsPositive() {
		score = sigma.Div(threshold)
		if score.GreaterThan(decimal.NewFromInt(1)) {
			score = decimal.NewFromInt(1)
		}
	}

	return Volatility{Sigma: sigma, Score: score}
}

func decimalSqrt(d decimal.Decimal) decimal.Decimal {
	if !d.IsPositive() {
		return decimal.Zero
	}
	root, err := d.PowWithPrecision(decimal.NewFromFloat(0.5), mathPrecision)
	if err != nil {
		return decimal.Zero
	}
	return root
}

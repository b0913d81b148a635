package indicators

import (
	"github.com/shopspring/decimal"
)

// MACD bundles the three series of the Moving Average Convergence Divergence
// indicator, each aligned to the input length.
type MACD struct {
	Line      []decimal.NullDecimal
	Signal    []decimal.NullDecimal
	Histogram []decimal.NullDecimal
}

// CalculateMACD computes the MACD line, its signal line and the histogram.
// The line starts once the slow EMA exists (input index slow-1), signal and
// histogram once the signal EMA exists on top of it (index slow+signal-2);
// earlier positions are absent. A series shorter than slow+signalPeriod, or
// a period set with fast >= slow, yields three nil series.
func CalculateMACD(prices []decimal.Decimal, fast, slow, signalPeriod int) MACD {
	if fast <= 0 || signalPeriod <= 0 || fast >= slow {
		return MACD{}
	}
	if len(prices) < slow+signalPeriod {
		return MACD{}
	}

	fastEMA := CalculateEMA(prices, fast)
	slowEMA := CalculateEMA(prices, slow)

	// Skip the fast EMA entries that predate the slow EMA so both series
	// line up on the same candle.
	offset := slow - fast
	line := make([]decimal.Decimal, len(slowEMA))
	for i := range slowEMA {
		line[i] = fastEMA[i+offset].Sub(slowEMA[i])
	}

	signal := CalculateEMA(line, signalPeriod)

	histogram := make([]decimal.Decimal, len(signal))
	for i := range signal {
		histogram[i] = line[i+signalPeriod-1].Sub(signal[i])
	}

	n := len(prices)
	return MACD{
		Line:      alignTail(line, n),
		Signal:    alignTail(signal, n),
		Histogram: alignTail(histogram, n),
	}
}

// alignTail right-aligns a dense series into an absent-padded slice of
// length n.
func alignTail(dense []decimal.Decimal, n int) []decimal.NullDecimal {
	out := make([]decimal.NullDecimal, n)
	start := n - len(dense)
	for i, v := range dense {
		out[start+i] = present(v)
	}
	return out
}

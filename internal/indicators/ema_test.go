package indicators

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func constantPrices(n int, value int64) []decimal.Decimal {
	prices := make([]decimal.Decimal, n)
	for i := range prices {
		prices[i] = decimal.NewFromInt(value)
	}
	return prices
}

func rampPrices(from, to int64) []decimal.Decimal {
	prices := make([]decimal.Decimal, 0, to-from+1)
	for v := from; v <= to; v++ {
		prices = append(prices, decimal.NewFromInt(v))
	}
	return prices
}

func TestCalculateEMA_ConstantSeries(t *testing.T) {
	prices := constantPrices(25, 100)

	ema := CalculateEMA(prices, 20)

	// 25 prices, period 20 -> 25 - 20 + 1 = 6 outputs
	require.Len(t, ema, 6)
	for i, v := range ema {
		assert.True(t, decimal.NewFromInt(100).Equal(v), "index %d: expected 100, got %s", i, v)
	}
}

func TestCalculateEMA_HandComputed(t *testing.T) {
	// prices 1..5, period 3:
	// seed = (1+2+3)/3 = 2
	// k = 2/(3+1) = 0.5
	// ema(4) = (4-2)*0.5 + 2 = 3
	// ema(5) = (5-3)*0.5 + 3 = 4
	prices := rampPrices(1, 5)

	ema := CalculateEMA(prices, 3)

	require.Len(t, ema, 3)
	expected := []int64{2, 3, 4}
	for i, want := range expected {
		assert.True(t, decimal.NewFromInt(want).Equal(ema[i]), "index %d: expected %d, got %s", i, want, ema[i])
	}
}

func TestCalculateEMA_OutputLength(t *testing.T) {
	prices := rampPrices(1, 40)

	require.Len(t, CalculateEMA(prices, 1), 40)
	require.Len(t, CalculateEMA(prices, 12), 29)
	require.Len(t, CalculateEMA(prices, 40), 1)
}

func TestCalculateEMA_InsufficientData(t *testing.T) {
	tests := []struct {
		name   string
		prices []decimal.Decimal
		period int
	}{
		{name: "empty series", prices: nil, period: 14},
		{name: "series shorter than period", prices: rampPrices(1, 5), period: 6},
		{name: "zero period", prices: rampPrices(1, 5), period: 0},
		{name: "negative period", prices: rampPrices(1, 5), period: -3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Empty(t, CalculateEMA(tt.prices, tt.period))
		})
	}
}

func TestCalculateEMA_PeriodEqualsLength(t *testing.T) {
	// period == len(prices) leaves exactly the seed average.
	// (10+20+30+40)/4 = 25
	prices := []decimal.Decimal{
		decimal.NewFromInt(10),
		decimal.NewFromInt(20),
		decimal.NewFromInt(30),
		decimal.NewFromInt(40),
	}

	ema := CalculateEMA(prices, 4)

	require.Len(t, ema, 1)
	assert.True(t, decimal.NewFromInt(25).Equal(ema[0]), "expected 25, got %s", ema[0])
}

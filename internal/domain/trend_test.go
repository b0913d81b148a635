package domain

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassifyRSI(t *testing.T) {
	tests := []struct {
		name     string
		rsi      decimal.Decimal
		expected RSIZone
	}{
		{name: "overbought above threshold", rsi: decimal.NewFromInt(85), expected: RSIZoneOverbought},
		{name: "overbought at exactly 70", rsi: decimal.NewFromInt(70), expected: RSIZoneOverbought},
		{name: "neutral midrange", rsi: decimal.NewFromInt(50), expected: RSIZoneNeutral},
		{name: "neutral just above oversold", rsi: decimal.NewFromFloat(30.01), expected: RSIZoneNeutral},
		{name: "oversold at exactly 30", rsi: decimal.NewFromInt(30), expected: RSIZoneOversold},
		{name: "oversold deep", rsi: decimal.NewFromInt(5), expected: RSIZoneOversold},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ClassifyRSI(tt.rsi))
		})
	}
}

func TestClassifyMACD(t *testing.T) {
	tests := []struct {
		name                  string
		macd, signal, histogr decimal.Decimal
		expected              TrendDirection
	}{
		{
			name: "bullish crossover",
			// histogram positive and macd above signal
			macd: decimal.NewFromFloat(1.5), signal: decimal.NewFromFloat(1.2), histogr: decimal.NewFromFloat(0.3),
			expected: TrendDirectionBullish,
		},
		{
			name: "bearish crossover",
			macd: decimal.NewFromFloat(-1.5), signal: decimal.NewFromFloat(-1.2), histogr: decimal.NewFromFloat(-0.3),
			expected: TrendDirectionBearish,
		},
		{
			name: "zero histogram is neutral",
			macd: decimal.NewFromFloat(1.5), signal: decimal.NewFromFloat(1.5), histogr: decimal.Zero,
			expected: TrendDirectionNeutral,
		},
		{
			name: "positive histogram but macd below signal is neutral",
			macd: decimal.NewFromFloat(1.0), signal: decimal.NewFromFloat(1.2), histogr: decimal.NewFromFloat(0.1),
			expected: TrendDirectionNeutral,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ClassifyMACD(tt.macd, tt.signal, tt.histogr))
		})
	}
}

func TestClassifyEMAAlignment(t *testing.T) {
	tests := []struct {
		name                 string
		ema20, ema50, ema200 decimal.Decimal
		expected             TrendDirection
	}{
		{
			name:  "bullish stack",
			ema20: decimal.NewFromInt(110), ema50: decimal.NewFromInt(105), ema200: decimal.NewFromInt(100),
			expected: TrendDirectionBullish,
		},
		{
			name:  "bearish stack",
			ema20: decimal.NewFromInt(90), ema50: decimal.NewFromInt(95), ema200: decimal.NewFromInt(100),
			expected: TrendDirectionBearish,
		},
		{
			name:  "flat averages are neutral",
			ema20: decimal.NewFromInt(100), ema50: decimal.NewFromInt(100), ema200: decimal.NewFromInt(100),
			expected: TrendDirectionNeutral,
		},
		{
			name:  "mixed ordering is neutral",
			ema20: decimal.NewFromInt(110), ema50: decimal.NewFromInt(100), ema200: decimal.NewFromInt(105),
			expected: TrendDirectionNeutral,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ClassifyEMAAlignment(tt.ema20, tt.ema50, tt.ema200))
		})
	}
}

func TestHoldingValue(t *testing.T) {
	h := Holding{Symbol: "BTC", Amount: decimal.NewFromFloat(0.5), CurrentPrice: decimal.NewFromInt(50000)}
	// 0.5 * 50000 = 25000
	require.True(t, decimal.NewFromInt(25000).Equal(h.Value()))

	zeroPriced := Holding{Symbol: "DOGE", Amount: decimal.NewFromInt(1000), CurrentPrice: decimal.Zero}
	require.True(t, zeroPriced.Value().IsZero())
}

func TestTrendDirectionTitle(t *testing.T) {
	assert.Equal(t, "Bullish", TrendDirectionBullish.Title())
	assert.Equal(t, "Bearish", TrendDirectionBearish.Title())
	assert.Equal(t, "Neutral", TrendDirection("unknown").Title())
}

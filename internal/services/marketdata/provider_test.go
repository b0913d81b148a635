package marketdata

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSpotPair(t *testing.T) {
	assert.Equal(t, "BTCUSDT", spotPair("BTC"))
	assert.Equal(t, "ETHUSDT", spotPair("eth"))
	assert.Equal(t, "SOLUSDT", spotPair(" sol "))
}

func TestBaseCoin(t *testing.T) {
	assert.Equal(t, "BTC", baseCoin("btc"))
	assert.Equal(t, "ETH", baseCoin(" ETH "))
}

func TestBybitIntervalCode(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		expected  string
		shouldErr bool
	}{
		{
			name:     "1 minute",
			input:    "1m",
			expected: "1",
		},
		{
			name:     "15 minutes",
			input:    "15m",
			expected: "15",
		},
		{
			name:     "1 hour",
			input:    "1h",
			expected: "60",
		},
		{
			name:     "4 hours",
			input:    "4h",
			expected: "240",
		},
		{
			name:     "1 day",
			input:    "1d",
			expected: "D",
		},
		{
			name:     "1 week",
			input:    "1w",
			expected: "W",
		},
		{
			name:      "empty interval",
			input:     "",
			shouldErr: true,
		},
		{
			name:      "no unit",
			input:     "1",
			shouldErr: true,
		},
		{
			name:      "no number",
			input:     "h",
			shouldErr: true,
		},
		{
			name:      "unsupported unit",
			input:     "1x",
			shouldErr: true,
		},
		{
			name:      "non numeric",
			input:     "xm",
			shouldErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := bybitIntervalCode(tt.input)
			if tt.shouldErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expected, result)
			}
		})
	}
}

func TestIntervalDuration(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		expected  time.Duration
		shouldErr bool
	}{
		{
			name:     "5 minutes",
			input:    "5m",
			expected: 5 * time.Minute,
		},
		{
			name:     "4 hours",
			input:    "4h",
			expected: 4 * time.Hour,
		},
		{
			name:     "1 day",
			input:    "1d",
			expected: 24 * time.Hour,
		},
		{
			name:     "1 week",
			input:    "1w",
			expected: 7 * 24 * time.Hour,
		},
		{
			name:      "empty interval",
			input:     "",
			shouldErr: true,
		},
		{
			name:      "unsupported unit",
			input:     "1y",
			shouldErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := intervalDuration(tt.input)
			if tt.shouldErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expected, result)
			}
		})
	}
}

func TestParseMilliseconds(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		expected  int64
		shouldErr bool
	}{
		{
			name:     "valid timestamp",
			input:    "1672531200000",
			expected: 1672531200000,
		},
		{
			name:      "empty timestamp",
			input:     "",
			shouldErr: true,
		},
		{
			name:      "not a number",
			input:     "abc",
			shouldErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := parseMilliseconds(tt.input)
			if tt.shouldErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expected, result)
			}
		})
	}
}

func TestBuildCandle(t *testing.T) {
	openTime := time.UnixMilli(1672531200000)
	closeTime := time.UnixMilli(1672617599999)

	t.Run("parses all fields", func(t *testing.T) {
		candle, err := buildCandle(openTime, closeTime, "16500.5", "16800", "16400.25", "16750", "1234.56")
		require.NoError(t, err)

		assert.Equal(t, openTime, candle.OpenTime)
		assert.Equal(t, closeTime, candle.CloseTime)
		assert.True(t, decimal.RequireFromString("16500.5").Equal(candle.Open))
		assert.True(t, decimal.RequireFromString("16800").Equal(candle.High))
		assert.True(t, decimal.RequireFromString("16400.25").Equal(candle.Low))
		assert.True(t, decimal.RequireFromString("16750").Equal(candle.Close))
		assert.True(t, decimal.RequireFromString("1234.56").Equal(candle.Volume))
	})

	t.Run("rejects malformed close", func(t *testing.T) {
		_, err := buildCandle(openTime, closeTime, "16500", "16800", "16400", "garbage", "1234")
		assert.Error(t, err)
	})

	t.Run("rejects malformed volume", func(t *testing.T) {
		_, err := buildCandle(openTime, closeTime, "16500", "16800", "16400", "16750", "")
		assert.Error(t, err)
	})
}

package analytics

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/CanAhmet12/CYRPTOLENS-sub000/internal/domain"
)

func TestPortfolioSummary(t *testing.T) {
	t.Run("enriches missing price and volatility", func(t *testing.T) {
		provider := &mockProvider{
			prices: map[string]decimal.Decimal{"ETH": decimal.NewFromInt(5000)},
			candles: map[string][]domain.Candle{
				"BTC": constantCandles(30, 100),
				"ETH": constantCandles(30, 100),
			},
		}
		a := NewAnalyzer(provider, zap.NewNop(), "1d", 500)

		holdings := []domain.Holding{
			{Symbol: "BTC", Amount: decimal.NewFromInt(1), CurrentPrice: decimal.NewFromInt(50000)},
			{Symbol: "ETH", Amount: decimal.NewFromInt(10), BuyPrice: nullable(decimal.NewFromInt(4000))},
		}

		summary, err := a.PortfolioSummary(context.Background(), holdings)
		require.NoError(t, err)

		// ETH got priced at 5000 for 10 units, BTC came priced already
		assert.True(t, decimal.NewFromInt(100000).Equal(summary.TotalValue), "expected total 100000, got %s", summary.TotalValue)
		assert.True(t, decimal.NewFromFloat(0.5).Equal(summary.AllocationWeights["BTC"]))
		assert.True(t, decimal.NewFromFloat(0.5).Equal(summary.AllocationWeights["ETH"]))
		assert.True(t, decimal.NewFromInt(50).Equal(summary.DiversificationScore))

		// flat candle history measures zero volatility for both assets
		assert.True(t, summary.PortfolioVolatility.IsZero(), "expected zero volatility, got %s", summary.PortfolioVolatility)
		assert.True(t, decimal.NewFromInt(25).Equal(summary.RiskScore), "expected risk 25, got %s", summary.RiskScore)

		assert.True(t, decimal.NewFromInt(10000).Equal(summary.PerAssetPnL["ETH"].PnL))
		assert.True(t, decimal.NewFromInt(25).Equal(summary.PerAssetPnL["ETH"].PnLPercent))
		assert.True(t, summary.PerAssetPnL["BTC"].PnL.IsZero())
	})

	t.Run("supplied volatility is kept", func(t *testing.T) {
		a := NewAnalyzer(&mockProvider{}, zap.NewNop(), "1d", 500)

		holdings := []domain.Holding{{
			Symbol:       "BTC",
			Amount:       decimal.NewFromInt(1),
			CurrentPrice: decimal.NewFromInt(60000),
			Volatility:   nullable(decimal.NewFromFloat(0.8)),
		}}

		summary, err := a.PortfolioSummary(context.Background(), holdings)
		require.NoError(t, err)
		assert.True(t, decimal.NewFromInt(80).Equal(summary.PortfolioVolatility), "expected 80, got %s", summary.PortfolioVolatility)
	})

	t.Run("lookup failures keep the holding unpriced", func(t *testing.T) {
		provider := &mockProvider{failing: map[string]bool{"SOL": true}}
		a := NewAnalyzer(provider, zap.NewNop(), "1d", 500)

		holdings := []domain.Holding{{Symbol: "SOL", Amount: decimal.NewFromInt(2)}}

		summary, err := a.PortfolioSummary(context.Background(), holdings)
		require.NoError(t, err)
		assert.True(t, summary.TotalValue.IsZero())
		assert.True(t, summary.AllocationWeights["SOL"].IsZero())
	})

	t.Run("input holdings are not mutated", func(t *testing.T) {
		provider := &mockProvider{
			prices:  map[string]decimal.Decimal{"ETH": decimal.NewFromInt(5000)},
			candles: map[string][]domain.Candle{"ETH": constantCandles(30, 100)},
		}
		a := NewAnalyzer(provider, zap.NewNop(), "1d", 500)

		holdings := []domain.Holding{{Symbol: "ETH", Amount: decimal.NewFromInt(1)}}

		_, err := a.PortfolioSummary(context.Background(), holdings)
		require.NoError(t, err)
		assert.True(t, holdings[0].CurrentPrice.IsZero())
		assert.False(t, holdings[0].Volatility.Valid)
	})
}

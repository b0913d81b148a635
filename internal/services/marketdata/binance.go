package marketdata

import (
	"context"
	"time"

	"github.com/adshao/go-binance/v2"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/CanAhmet12/CYRPTOLENS-sub000/internal/domain"
	"github.com/CanAhmet12/CYRPTOLENS-sub000/pkg/backoff"
)

// BinanceProvider fetches candles and prices from the Binance spot API.
type BinanceProvider struct {
	client *binance.Client
	policy backoff.Policy
	logger *zap.Logger
}

// NewBinanceProvider creates a Binance-backed market data provider.
func NewBinanceProvider(client *binance.Client, logger *zap.Logger) *BinanceProvider {
	return &BinanceProvider{client: client, policy: backoff.Default(), logger: logger}
}

// Candles fetches kline data from Binance.
func (p *BinanceProvider) Candles(ctx context.Context, symbol, interval string, limit int) ([]domain.Candle, error) {
	if limit <= 0 {
		return nil, errors.New("limit must be > 0")
	}

	klines, err := backoff.Data(ctx, p.policy, func(ctx context.Context) ([]*binance.Kline, error) {
		return p.client.NewKlinesService().
			Symbol(spotPair(symbol)).
			Interval(interval).
			Limit(limit).
			Do(ctx)
	})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to fetch klines from Binance for %s", symbol)
	}

	candles := make([]domain.Candle, 0, len(klines))
	for i, k := range klines {
		candle, err := buildCandle(
			time.UnixMilli(k.OpenTime),
			time.UnixMilli(k.CloseTime),
			k.Open, k.High, k.Low, k.Close, k.Volume,
		)
		if err != nil {
			p.logger.Warn("skipping malformed Binance kline",
				zap.String("symbol", symbol),
				zap.Int("index", i),
				zap.Error(err))
			continue
		}
		candles = append(candles, candle)
	}

	return candles, nil
}

// Price fetches the current spot price from Binance.
func (p *BinanceProvider) Price(ctx context.Context, symbol string) (decimal.Decimal, error) {
	prices, err := backoff.Data(ctx, p.policy, func(ctx context.Context) ([]*binance.SymbolPrice, error) {
		return p.client.NewListPricesService().Symbol(spotPair(symbol)).Do(ctx)
	})
	if err != nil {
		return decimal.Decimal{}, errors.Wrapf(err, "failed to fetch price from Binance for %s", symbol)
	}
	if len(prices) == 0 {
		return decimal.Decimal{}, errors.Errorf("binance API returned empty prices for %s", symbol)
	}

	return decimal.NewFromString(prices[0].Price)
}

package marketdata

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	hyperliquid "github.com/sonirico/go-hyperliquid"
	"go.uber.org/zap"

	"github.com/CanAhmet12/CYRPTOLENS-sub000/internal/domain"
	"github.com/CanAhmet12/CYRPTOLENS-sub000/pkg/backoff"
)

// HyperliquidProvider fetches candles and mid prices from the Hyperliquid
// public Info API. Hyperliquid keys everything by bare coin name, so the
// USDT suffix never applies here.
type HyperliquidProvider struct {
	info   *hyperliquid.Info
	policy backoff.Policy
	logger *zap.Logger
}

// NewHyperliquidProvider creates a Hyperliquid-backed market data provider.
func NewHyperliquidProvider(info *hyperliquid.Info, logger *zap.Logger) *HyperliquidProvider {
	return &HyperliquidProvider{info: info, policy: backoff.Default(), logger: logger}
}

// Candles fetches a candle snapshot from Hyperliquid.
func (p *HyperliquidProvider) Candles(ctx context.Context, symbol, interval string, limit int) ([]domain.Candle, error) {
	if p.info == nil {
		return nil, errors.New("hyperliquid info client is nil")
	}
	if limit <= 0 {
		return nil, errors.New("limit must be > 0")
	}

	dur, err := intervalDuration(interval)
	if err != nil {
		return nil, err
	}

	coin := baseCoin(symbol)

	// pad the window by two candles to absorb boundary rounding
	endMs := time.Now().UnixMilli()
	startMs := endMs - (int64(limit)+2)*dur.Milliseconds()

	var candles []domain.Candle
	err = p.policy.Do(ctx, func(ctx context.Context) error {
		snapshot, err := p.info.CandlesSnapshot(ctx, coin, interval, startMs, endMs)
		if err != nil {
			return err
		}
		if len(snapshot) == 0 {
			return errors.Errorf("no candles from Hyperliquid for %s %s", coin, interval)
		}

		if len(snapshot) > limit {
			snapshot = snapshot[len(snapshot)-limit:]
		}

		candles = candles[:0]
		for i, c := range snapshot {
			candle, err := buildCandle(
				time.UnixMilli(c.TimeOpen),
				time.UnixMilli(c.TimeClose),
				c.Open, c.High, c.Low, c.Close, c.Volume,
			)
			if err != nil {
				p.logger.Warn("skipping malformed Hyperliquid candle",
					zap.String("symbol", coin),
					zap.Int("index", i),
					zap.Error(err))
				continue
			}
			candles = append(candles, candle)
		}
		return nil
	})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to fetch candles from Hyperliquid for %s", coin)
	}

	return candles, nil
}

// Price fetches the current mid price from Hyperliquid.
func (p *HyperliquidProvider) Price(ctx context.Context, symbol string) (decimal.Decimal, error) {
	if p.info == nil {
		return decimal.Decimal{}, errors.New("hyperliquid info client is nil")
	}

	coin := baseCoin(symbol)

	var mid string
	err := p.policy.Do(ctx, func(ctx context.Context) error {
		mids, err := p.info.AllMids(ctx)
		if err != nil {
			return err
		}

		// mids are keyed by base coin, e.g. "BTC"
		price, ok := mids[coin]
		if !ok || price == "" {
			return errors.Errorf("hyperliquid API returned no mid price for %s", coin)
		}
		mid = price
		return nil
	})
	if err != nil {
		return decimal.Decimal{}, errors.Wrapf(err, "failed to fetch price from Hyperliquid for %s", coin)
	}

	return decimal.NewFromString(mid)
}

package marketdata

import (
	"context"
	"fmt"
	"time"

	bybit "github.com/hirokisan/bybit/v2"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/CanAhmet12/CYRPTOLENS-sub000/internal/domain"
	"github.com/CanAhmet12/CYRPTOLENS-sub000/pkg/backoff"
)

// bybitMaxPageSize is the most klines the V5 market endpoint returns per call.
const bybitMaxPageSize = 200

// BybitProvider fetches candles and prices from the Bybit V5 spot API.
type BybitProvider struct {
	client *bybit.Client
	policy backoff.Policy
	logger *zap.Logger
}

// NewBybitProvider creates a Bybit-backed market data provider.
func NewBybitProvider(client *bybit.Client, logger *zap.Logger) *BybitProvider {
	return &BybitProvider{client: client, policy: backoff.Default(), logger: logger}
}

// Candles fetches kline data from Bybit. Bybit serves pages newest-first,
// so the provider walks backwards with the End cursor and reverses the
// result into chronological order.
func (p *BybitProvider) Candles(ctx context.Context, symbol, interval string, limit int) ([]domain.Candle, error) {
	if limit <= 0 {
		return nil, errors.New("limit must be > 0")
	}

	code, err := bybitIntervalCode(interval)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid interval: %s", interval)
	}

	pair := bybit.SymbolV5(spotPair(symbol))

	var newestFirst []bybit.V5GetKlineItem
	var end *int64

	for len(newestFirst) < limit {
		pageSize := limit - len(newestFirst)
		if pageSize > bybitMaxPageSize {
			pageSize = bybitMaxPageSize
		}

		param := bybit.V5GetKlineParam{
			Category: bybit.CategoryV5Spot,
			Symbol:   pair,
			Interval: bybit.Interval(code),
			End:      end,
			Limit:    &pageSize,
		}

		var page []bybit.V5GetKlineItem
		err := p.policy.Do(ctx, func(ctx context.Context) error {
			resp, err := p.client.V5().Market().GetKline(param)
			if err != nil {
				return err
			}
			if resp == nil {
				return errors.New("empty response from Bybit API")
			}
			page = resp.Result.List
			return nil
		})
		if err != nil {
			return nil, errors.Wrapf(err, "failed to fetch klines from Bybit for %s", symbol)
		}
		if len(page) == 0 {
			break
		}

		newestFirst = append(newestFirst, page...)

		// the next page ends just before the oldest kline seen so far
		oldest, err := parseMilliseconds(page[len(page)-1].StartTime)
		if err != nil {
			return nil, errors.Wrap(err, "failed to parse Bybit kline start time")
		}
		cursor := oldest - 1
		end = &cursor

		if len(page) < pageSize {
			break
		}
	}

	if len(newestFirst) == 0 {
		return nil, errors.Errorf("no kline data returned from Bybit for %s", symbol)
	}

	candles := make([]domain.Candle, 0, len(newestFirst))
	for i := len(newestFirst) - 1; i >= 0; i-- {
		k := newestFirst[i]

		msec, err := parseMilliseconds(k.StartTime)
		if err != nil {
			p.logger.Warn("skipping malformed Bybit kline",
				zap.String("symbol", symbol),
				zap.Int("index", i),
				zap.Error(err))
			continue
		}

		// Bybit does not report a close time, the open time stands in
		openTime := time.UnixMilli(msec)
		candle, err := buildCandle(openTime, openTime, k.Open, k.High, k.Low, k.Close, k.Volume)
		if err != nil {
			p.logger.Warn("skipping malformed Bybit kline",
				zap.String("symbol", symbol),
				zap.Int("index", i),
				zap.Error(err))
			continue
		}
		candles = append(candles, candle)
	}

	return candles, nil
}

// Price fetches the current spot price from Bybit.
func (p *BybitProvider) Price(ctx context.Context, symbol string) (decimal.Decimal, error) {
	pair := bybit.SymbolV5(spotPair(symbol))

	var lastPrice string
	err := p.policy.Do(ctx, func(ctx context.Context) error {
		resp, err := p.client.V5().Market().GetTickers(bybit.V5GetTickersParam{
			Category: bybit.CategoryV5Spot,
			Symbol:   &pair,
		})
		if err != nil {
			return err
		}
		if resp == nil || len(resp.Result.Spot.List) == 0 {
			return errors.Errorf("bybit API returned empty prices for %s", symbol)
		}
		lastPrice = resp.Result.Spot.List[0].LastPrice
		return nil
	})
	if err != nil {
		return decimal.Decimal{}, errors.Wrapf(err, "failed to fetch price from Bybit for %s", symbol)
	}

	return decimal.NewFromString(lastPrice)
}

// bybitIntervalCode converts an interval like "1m", "4h", "1d" or "1w" to
// the code the Bybit V5 API expects: minutes as a bare number, "D" for
// days and "W" for weeks.
func bybitIntervalCode(interval string) (string, error) {
	if len(interval) < 2 {
		return "", fmt.Errorf("invalid interval format: %s", interval)
	}

	unit := interval[len(interval)-1]
	n, err := intervalNumber(interval)
	if err != nil {
		return "", err
	}

	switch unit {
	case 'm':
		return fmt.Sprintf("%d", n), nil
	case 'h':
		return fmt.Sprintf("%d", n*60), nil
	case 'd':
		return "D", nil
	case 'w':
		return "W", nil
	default:
		return "", fmt.Errorf("unsupported interval unit: %c", unit)
	}
}

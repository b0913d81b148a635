// Package marketdata fetches OHLC candles and spot prices from exchange APIs.
package marketdata

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"

	"github.com/CanAhmet12/CYRPTOLENS-sub000/internal/domain"
)

// Provider serves candle history and spot prices for a base asset symbol
// such as "BTC". Implementations quote symbols against USDT internally.
type Provider interface {
	// Candles returns up to limit candles in chronological order, oldest first.
	Candles(ctx context.Context, symbol, interval string, limit int) ([]domain.Candle, error)
	// Price returns the current spot price of the asset.
	Price(ctx context.Context, symbol string) (decimal.Decimal, error)
}

// spotPair quotes a base asset against USDT, e.g. "btc" -> "BTCUSDT".
func spotPair(symbol string) string {
	return strings.ToUpper(strings.TrimSpace(symbol)) + "USDT"
}

// baseCoin normalizes a symbol to the bare upper-case asset name.
func baseCoin(symbol string) string {
	return strings.ToUpper(strings.TrimSpace(symbol))
}

// buildCandle parses the string OHLCV fields the exchange APIs return.
func buildCandle(openTime, closeTime time.Time, open, high, low, closePrice, volume string) (domain.Candle, error) {
	o, err := decimal.NewFromString(open)
	if err != nil {
		return domain.Candle{}, errors.Wrap(err, "failed to parse open price")
	}
	h, err := decimal.NewFromString(high)
	if err != nil {
		return domain.Candle{}, errors.Wrap(err, "failed to parse high price")
	}
	l, err := decimal.NewFromString(low)
	if err != nil {
		return domain.Candle{}, errors.Wrap(err, "failed to parse low price")
	}
	c, err := decimal.NewFromString(closePrice)
	if err != nil {
		return domain.Candle{}, errors.Wrap(err, "failed to parse close price")
	}
	v, err := decimal.NewFromString(volume)
	if err != nil {
		return domain.Candle{}, errors.Wrap(err, "failed to parse volume")
	}

	return domain.Candle{
		OpenTime:  openTime,
		Open:      o,
		High:      h,
		Low:       l,
		Close:     c,
		Volume:    v,
		CloseTime: closeTime,
	}, nil
}

// parseMilliseconds converts a millisecond timestamp string to int64.
func parseMilliseconds(ts string) (int64, error) {
	if ts == "" {
		return 0, errors.New("empty timestamp")
	}

	var msec int64
	if _, err := fmt.Sscanf(ts, "%d", &msec); err != nil {
		return 0, errors.Wrapf(err, "failed to parse timestamp: %s", ts)
	}

	return msec, nil
}

// intervalDuration converts an interval like "1m", "4h", "1d" or "1w" to a
// time span.
func intervalDuration(interval string) (time.Duration, error) {
	if len(interval) < 2 {
		return 0, fmt.Errorf("invalid interval format: %s", interval)
	}

	unit := interval[len(interval)-1]
	n, err := intervalNumber(interval)
	if err != nil {
		return 0, err
	}

	switch unit {
	case 'm':
		return time.Duration(n) * time.Minute, nil
	case 'h':
		return time.Duration(n) * time.Hour, nil
	case 'd':
		return time.Duration(n) * 24 * time.Hour, nil
	case 'w':
		return time.Duration(n) * 7 * 24 * time.Hour, nil
	default:
		return 0, fmt.Errorf("unsupported interval unit: %c", unit)
	}
}

// intervalNumber extracts the leading number of an interval string.
func intervalNumber(interval string) (int64, error) {
	numberPart := interval[:len(interval)-1]
	if numberPart == "" {
		return 0, fmt.Errorf("invalid interval format: %s", interval)
	}

	var n int64
	for _, r := range numberPart {
		if r < '0' || r > '9' {
			return 0, fmt.Errorf("invalid interval number: %s", interval)
		}
		n = n*10 + int64(r-'0')
	}

	return n, nil
}

// Package analytics assembles market overviews and portfolio summaries on
// top of raw exchange candles.
package analytics

import (
	"context"
	"sync"
	"time"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/CanAhmet12/CYRPTOLENS-sub000/internal/domain"
	"github.com/CanAhmet12/CYRPTOLENS-sub000/internal/indicators"
)

// minimumCandles is the least history an overview needs; anything shorter
// degrades to the neutral bundle.
const minimumCandles = indicators.DefaultRSIPeriod

var (
	ten        = decimal.NewFromInt(10)
	fifty      = decimal.NewFromInt(50)
	oneHundred = decimal.NewFromInt(100)
)

// marketProvider is the slice of the market data surface the analyzer uses.
type marketProvider interface {
	Candles(ctx context.Context, symbol, interval string, limit int) ([]domain.Candle, error)
	Price(ctx context.Context, symbol string) (decimal.Decimal, error)
}

// Analyzer turns candle history into indicator bundles.
type Analyzer struct {
	provider    marketProvider
	logger      *zap.Logger
	interval    string
	candleLimit int
}

// NewAnalyzer wires an analyzer to one market data provider. Every overview
// fetches candleLimit candles of the given interval.
func NewAnalyzer(provider marketProvider, logger *zap.Logger, interval string, candleLimit int) *Analyzer {
	return &Analyzer{
		provider:    provider,
		logger:      logger,
		interval:    interval,
		candleLimit: candleLimit,
	}
}

// Overview fetches candles for the symbol and assembles its indicator bundle.
func (a *Analyzer) Overview(ctx context.Context, symbol string) (*domain.MarketOverview, error) {
	candles, err := a.provider.Candles(ctx, symbol, a.interval, a.candleLimit)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to load candles for %s", symbol)
	}

	return a.OverviewFromCandles(symbol, candles), nil
}

// Overviews assembles bundles for several symbols concurrently. The first
// failing symbol cancels the rest and its error is returned.
func (a *Analyzer) Overviews(ctx context.Context, symbols []string) (map[string]*domain.MarketOverview, error) {
	g, ctx := errgroup.WithContext(ctx)

	var mu sync.Mutex
	result := make(map[string]*domain.MarketOverview, len(symbols))

	for _, symbol := range symbols {
		g.Go(func() error {
			overview, err := a.Overview(ctx, symbol)
			if err != nil {
				return err
			}

			mu.Lock()
			result[symbol] = overview
			mu.Unlock()
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return result, nil
}

// OverviewFromCandles assembles the indicator bundle from already-loaded
// candles. It never fails: short history degrades to the neutral bundle.
func (a *Analyzer) OverviewFromCandles(symbol string, candles []domain.Candle) *domain.MarketOverview {
	price, _ := domain.LastClose(candles)

	if len(candles) < minimumCandles {
		return neutralOverview(symbol, price)
	}

	closes := domain.Closes(candles)

	rsi := indicators.LatestPresent(indicators.CalculateRSI(closes, indicators.DefaultRSIPeriod), fifty)

	macd := indicators.CalculateMACD(closes,
		indicators.DefaultMACDFastPeriod,
		indicators.DefaultMACDSlowPeriod,
		indicators.DefaultMACDSignalPeriod)
	macdLine := indicators.LatestPresent(macd.Line, decimal.Zero)
	macdSignal := indicators.LatestPresent(macd.Signal, decimal.Zero)
	macdHistogram := indicators.LatestPresent(macd.Histogram, decimal.Zero)

	ema20 := indicators.Latest(indicators.CalculateEMA(closes, 20), price)
	ema50 := indicators.Latest(indicators.CalculateEMA(closes, 50), price)
	ema200 := indicators.Latest(indicators.CalculateEMA(closes, 200), price)

	volatility := indicators.CalculateVolatility(closes, indicators.DefaultVolatilityThreshold)
	momentum := indicators.CalculateMomentum(closes, indicators.DefaultMomentumPeriod)
	levels := indicators.DetectLevels(closes, indicators.DefaultLevelWindow)

	trend := indicators.CalculateTrendScore(closes, indicators.TrendInputs{
		EMA20:         nullable(ema20),
		EMA50:         nullable(ema50),
		EMA200:        nullable(ema200),
		MACDHistogram: nullable(macdHistogram),
		RSI:           nullable(rsi),
	})

	return &domain.MarketOverview{
		Symbol:             symbol,
		Price:              price,
		RSI:                rsi,
		RSIInterpretation:  domain.ClassifyRSI(rsi),
		MACD:               macdLine,
		MACDSignal:         macdSignal,
		MACDHistogram:      macdHistogram,
		MACDInterpretation: domain.ClassifyMACD(macdLine, macdSignal, macdHistogram),
		EMA20:              ema20,
		EMA50:              ema50,
		EMA200:             ema200,
		EMAAlignment:       domain.ClassifyEMAAlignment(ema20, ema50, ema200),
		Volatility:         volatility.Score.Mul(oneHundred),
		Momentum:           momentum.Score,
		SupportLevels:      orEmpty(levels.Support),
		ResistanceLevels:   orEmpty(levels.Resistance),
		TrendDirection:     trend.Direction,
		TrendStrength:      int(trend.Score.Div(ten).IntPart()),
		TrendScore:         trend.Score,
		Timestamp:          time.Now().UTC(),
	}
}

// neutralOverview is the bundle served when the candle history is too short
// to compute anything meaningful.
func neutralOverview(symbol string, price decimal.Decimal) *domain.MarketOverview {
	return &domain.MarketOverview{
		Symbol:             symbol,
		Price:              price,
		RSI:                fifty,
		RSIInterpretation:  domain.RSIZoneNeutral,
		MACDInterpretation: domain.TrendDirectionNeutral,
		EMA20:              price,
		EMA50:              price,
		EMA200:             price,
		EMAAlignment:       domain.TrendDirectionNeutral,
		Momentum:           fifty,
		SupportLevels:      []decimal.Decimal{},
		ResistanceLevels:   []decimal.Decimal{},
		TrendDirection:     domain.TrendDirectionNeutral,
		TrendStrength:      5,
		TrendScore:         fifty,
		Timestamp:          time.Now().UTC(),
	}
}

func nullable(v decimal.Decimal) decimal.NullDecimal {
	return decimal.NullDecimal{Decimal: v, Valid: true}
}

func orEmpty(levels []decimal.Decimal) []decimal.Decimal {
	if levels == nil {
		return []decimal.Decimal{}
	}
	return levels
}

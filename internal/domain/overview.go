package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// MarketOverview aggregated indicator snapshot for one trading symbol.
// Volatility and Momentum are normalized to a 0-100 scale, TrendStrength to
// 0-10. Decimal fields marshal as quoted strings.
type MarketOverview struct {
	Symbol             string            `json:"symbol"`
	Price              decimal.Decimal   `json:"price"`
	RSI                decimal.Decimal   `json:"rsi"`
	RSIInterpretation  RSIZone           `json:"rsiInterpretation"`
	MACD               decimal.Decimal   `json:"macd"`
	MACDSignal         decimal.Decimal   `json:"macdSignal"`
	MACDHistogram      decimal.Decimal   `json:"macdHistogram"`
	MACDInterpretation TrendDirection    `json:"macdInterpretation"`
	EMA20              decimal.Decimal   `json:"ema20"`
	EMA50              decimal.Decimal   `json:"ema50"`
	EMA200             decimal.Decimal   `json:"ema200"`
	EMAAlignment       TrendDirection    `json:"emaAlignment"`
	Volatility         decimal.Decimal   `json:"volatility"`
	Momentum           decimal.Decimal   `json:"momentum"`
	SupportLevels      []decimal.Decimal `json:"supportLevels"`
	ResistanceLevels   []decimal.Decimal `json:"resistanceLevels"`
	TrendDirection     TrendDirection    `json:"trendDirection"`
	TrendStrength      int               `json:"trendStrength"`
	TrendScore         decimal.Decimal   `json:"trendScore"`
	Timestamp          time.Time         `json:"timestamp"`
}

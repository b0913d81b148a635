package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Candle single OHLCV candlestick.
type Candle struct {
	OpenTime  time.Time       `json:"openTime"`
	Open      decimal.Decimal `json:"open"`
	High      decimal.Decimal `json:"high"`
	Low       decimal.Decimal `json:"low"`
	Close     decimal.Decimal `json:"close"`
	Volume    decimal.Decimal `json:"volume"`
	CloseTime time.Time       `json:"closeTime"`
}

// Closes extracts close prices in candle order.
func Closes(candles []Candle) []decimal.Decimal {
	prices := make([]decimal.Decimal, len(candles))
	for i, c := range candles {
		prices[i] = c.Close
	}
	return prices
}

// Opens extracts open prices in candle order.
func Opens(candles []Candle) []decimal.Decimal {
	prices := make([]decimal.Decimal, len(candles))
	for i, c := range candles {
		prices[i] = c.Open
	}
	return prices
}

// Highs extracts high prices in candle order.
func Highs(candles []Candle) []decimal.Decimal {
	prices := make([]decimal.Decimal, len(candles))
	for i, c := range candles {
		prices[i] = c.High
	}
	return prices
}

// Lows extracts low prices in candle order.
func Lows(candles []Candle) []decimal.Decimal {
	prices := make([]decimal.Decimal, len(candles))
	for i, c := range candles {
		prices[i] = c.Low
	}
	return prices
}

// LastClose returns the close price of the most recent candle.
func LastClose(candles []Candle) (decimal.Decimal, bool) {
	if len(candles) == 0 {
		return decimal.Zero, false
	}
	return candles[len(candles)-1].Close, true
}

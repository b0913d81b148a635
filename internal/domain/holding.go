package domain

import (
	"github.com/shopspring/decimal"
)

// Holding one portfolio position priced at the current market.
// BuyPrice and Volatility are optional: an invalid NullDecimal means the
// caller did not supply them.
type Holding struct {
	Symbol       string              `json:"symbol"`
	Amount       decimal.Decimal     `json:"amount"`
	BuyPrice     decimal.NullDecimal `json:"buyPrice"`
	CurrentPrice decimal.Decimal     `json:"currentPrice"`
	Volatility   decimal.NullDecimal `json:"volatility"`
}

// Value market worth of the holding. Zero when the current price is unknown
// or non-positive.
func (h Holding) Value() decimal.Decimal {
	if !h.CurrentPrice.IsPositive() {
		return decimal.Zero
	}
	return h.Amount.Mul(h.CurrentPrice)
}

// ProfitLoss absolute and relative gain of one holding against its buy price.
type ProfitLoss struct {
	PnL        decimal.Decimal `json:"pnl"`
	PnLPercent decimal.Decimal `json:"pnlPercent"`
}

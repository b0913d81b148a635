// Package portfolio derives valuation, allocation and risk metrics from a
// set of holdings. Everything here is pure decimal arithmetic over the
// supplied slice; an empty portfolio degrades to zero values instead of
// errors.
package portfolio

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/CanAhmet12/CYRPTOLENS-sub000/internal/domain"
)

var (
	oneHundred = decimal.NewFromInt(100)
	half       = decimal.NewFromFloat(0.5)

	// volatilityProxyBase anchors the fallback volatility estimate used
	// when no holding carries a measured volatility.
	volatilityProxyBase = decimal.NewFromFloat(0.03)
)

// TotalValue sums amount*currentPrice over holdings with a known positive
// price.
func TotalValue(holdings []domain.Holding) decimal.Decimal {
	total := decimal.Zero
	for _, h := range holdings {
		total = total.Add(h.Value())
	}
	return total
}

// PnL computes per-symbol absolute and percentage profit against the buy
// price. A holding without a usable buy price or current price gets a zero
// entry. Duplicate symbols keep the last entry.
func PnL(holdings []domain.Holding) map[string]domain.ProfitLoss {
	out := make(map[string]domain.ProfitLoss, len(holdings))
	for _, h := range holdings {
		if !h.BuyPrice.Valid || h.BuyPrice.Decimal.IsZero() || h.CurrentPrice.IsZero() {
			out[h.Symbol] = domain.ProfitLoss{PnL: decimal.Zero, PnLPercent: decimal.Zero}
			continue
		}

		diff := h.CurrentPrice.Sub(h.BuyPrice.Decimal)
		out[h.Symbol] = domain.ProfitLoss{
			PnL:        diff.Mul(h.Amount),
			PnLPercent: diff.Div(h.BuyPrice.Decimal).Mul(oneHundred),
		}
	}
	return out
}

// Allocations returns each symbol's weight as a fraction of total portfolio
// value. A zero-valued portfolio yields all-zero weights, as does any
// holding without a positive price. Duplicate symbols keep the last entry.
func Allocations(holdings []domain.Holding) map[string]decimal.Decimal {
	out := make(map[string]decimal.Decimal, len(holdings))

	total := TotalValue(holdings)
	if total.IsZero() {
		for _, h := range holdings {
			out[h.Symbol] = decimal.Zero
		}
		return out
	}

	for _, h := range holdings {
		out[h.Symbol] = h.Value().Div(total)
	}
	return out
}

// DiversificationScore rates spread across assets on a 0-100 scale using the
// Herfindahl-Hirschman index of allocation weights: 0 for a single asset,
// approaching 100 as value spreads evenly over many.
func DiversificationScore(holdings []domain.Holding) decimal.Decimal {
	if len(holdings) == 0 {
		return decimal.Zero
	}

	hhi := decimal.Zero
	for _, weight := range Allocations(holdings) {
		hhi = hhi.Add(weight.Mul(weight))
	}

	return decimal.NewFromInt(1).Sub(hhi).Mul(oneHundred)
}

// PortfolioVolatility estimates portfolio-wide volatility on a 0-100 scale.
// When holdings carry measured volatilities the result is their
// allocation-weighted average; otherwise a concentration-based proxy fills
// in. Capped at 100.
func PortfolioVolatility(holdings []domain.Holding) decimal.Decimal {
	if len(holdings) == 0 {
		return decimal.Zero
	}

	allocations := Allocations(holdings)

	weighted := decimal.Zero
	hasMeasured := false
	for _, h := range holdings {
		if !h.Volatility.Valid {
			continue
		}
		hasMeasured = true
		weighted = weighted.Add(allocations[h.Symbol].Mul(h.Volatility.Decimal))
	}

	if hasMeasured {
		return capAt(weighted.Mul(oneHundred), oneHundred)
	}

	// no measured volatility anywhere: scale the proxy with how
	// concentrated the portfolio is
	concentration := oneHundred.Sub(DiversificationScore(holdings))
	proxy := volatilityProxyBase.Mul(decimal.NewFromInt(1).Add(concentration.Div(oneHundred)))
	return capAt(proxy.Mul(oneHundred), oneHundred)
}

// RiskScore blends concentration risk and portfolio volatility into one
// 0-100 figure, half weight each.
func RiskScore(holdings []domain.Holding) decimal.Decimal {
	if len(holdings) == 0 {
		return decimal.Zero
	}

	concentration := oneHundred.Sub(DiversificationScore(holdings))
	volatility := PortfolioVolatility(holdings)

	risk := concentration.Mul(half).Add(volatility.Mul(half))

	if risk.LessThan(decimal.Zero) {
		return decimal.Zero
	}
	return capAt(risk, oneHundred)
}

// Summarize assembles the full metrics bundle for a portfolio snapshot.
func Summarize(holdings []domain.Holding, at time.Time) domain.PortfolioSummary {
	return domain.PortfolioSummary{
		TotalValue:           TotalValue(holdings),
		PerAssetPnL:          PnL(holdings),
		AllocationWeights:    Allocations(holdings),
		DiversificationScore: DiversificationScore(holdings),
		PortfolioVolatility:  PortfolioVolatility(holdings),
		RiskScore:            RiskScore(holdings),
		Timestamp:            at,
	}
}

func capAt(v, limit decimal.Decimal) decimal.Decimal {
	if v.GreaterThan(limit) {
		return limit
	}
	return v
}

package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// PortfolioSummary portfolio-wide valuation and risk bundle.
// Allocation weights are fractions of total value in [0,1]; the score fields
// sit on a 0-100 scale.
type PortfolioSummary struct {
	TotalValue           decimal.Decimal            `json:"totalValue"`
	PerAssetPnL          map[string]ProfitLoss      `json:"perAssetPnl"`
	AllocationWeights    map[string]decimal.Decimal `json:"allocationWeights"`
	DiversificationScore decimal.Decimal            `json:"diversificationScore"`
	PortfolioVolatility  decimal.Decimal            `json:"portfolioVolatility"`
	RiskScore            decimal.Decimal            `json:"riskScore"`
	Timestamp            time.Time                  `json:"timestamp"`
}

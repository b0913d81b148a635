package analytics

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/CanAhmet12/CYRPTOLENS-sub000/internal/domain"
	"github.com/CanAhmet12/CYRPTOLENS-sub000/internal/indicators"
	"github.com/CanAhmet12/CYRPTOLENS-sub000/internal/portfolio"
)

// PortfolioSummary prices and scores a set of holdings. Holdings without a
// current price get one from the provider, holdings without a volatility
// score get one measured from candle history. Both lookups run concurrently
// per holding and neither is fatal: a failed symbol keeps its zero price or
// stays unscored.
func (a *Analyzer) PortfolioSummary(ctx context.Context, holdings []domain.Holding) (*domain.PortfolioSummary, error) {
	enriched := make([]domain.Holding, len(holdings))
	copy(enriched, holdings)

	g := new(errgroup.Group)

	for i := range enriched {
		h := enriched[i]
		needsPrice := !h.CurrentPrice.IsPositive()
		needsVolatility := !h.Volatility.Valid
		if !needsPrice && !needsVolatility {
			continue
		}

		g.Go(func() error {
			if needsPrice {
				price, err := a.provider.Price(ctx, h.Symbol)
				if err != nil {
					a.logger.Warn("failed to price holding, keeping zero value",
						zap.String("symbol", h.Symbol),
						zap.Error(err))
				} else {
					enriched[i].CurrentPrice = price
				}
			}

			if needsVolatility {
				candles, err := a.provider.Candles(ctx, h.Symbol, a.interval, a.candleLimit)
				if err != nil {
					a.logger.Warn("failed to load candles for portfolio volatility",
						zap.String("symbol", h.Symbol),
						zap.Error(err))
					return nil
				}

				vol := indicators.CalculateVolatility(domain.Closes(candles), indicators.DefaultVolatilityThreshold)
				enriched[i].Volatility = decimal.NullDecimal{Decimal: vol.Score, Valid: true}
			}

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	summary := portfolio.Summarize(enriched, time.Now().UTC())
	return &summary, nil
}

// Command cryptolens serves cryptocurrency market analytics over HTTP.
// It loads OHLC candles from an exchange (Binance, Bybit or Hyperliquid),
// computes technical indicators and exposes the bundles as a JSON API,
// or prints a one-shot report and exits.
//
// Usage:
//
//	cryptolens --config config.yaml
//	cryptolens --platform binance --symbols BTC,ETH --interval 1d
//	cryptolens --symbols BTC --report
//
// Environment variables (public market data works without keys):
//
//	For Binance: BINANCE_API_KEY, BINANCE_API_SECRET
//	For Bybit: BYBIT_API_KEY, BYBIT_API_SECRET
//	For Hyperliquid: HYPERLIQUID_PRIVATE_KEY (always required)
package main

import (
	"context"
	"encoding/json"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/CanAhmet12/CYRPTOLENS-sub000/config"
	"github.com/CanAhmet12/CYRPTOLENS-sub000/internal/clients"
	"github.com/CanAhmet12/CYRPTOLENS-sub000/internal/services/analytics"
	"github.com/CanAhmet12/CYRPTOLENS-sub000/internal/services/marketdata"
	"github.com/CanAhmet12/CYRPTOLENS-sub000/internal/web"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Get()
	if err != nil {
		log.Fatal(err)
	}

	logger, _ := zap.NewProduction()
	defer logger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	provider, err := buildProvider(ctx, cfg, logger)
	if err != nil {
		logger.Fatal("failed to build market data provider", zap.Error(err))
	}

	analyzer := analytics.NewAnalyzer(provider, logger, cfg.Interval, cfg.CandleLimit)

	if cfg.Report {
		if err := printReport(ctx, analyzer, cfg.Symbols); err != nil {
			logger.Fatal("report failed", zap.Error(err))
		}
		return
	}

	server := web.NewServer(cfg.ListenAddr, analyzer, logger)
	if len(cfg.TLSDomains) > 0 {
		err = server.StartWithAutoTLS(ctx, cfg.TLSDomains, cfg.CertCacheDir)
	} else {
		err = server.Start(ctx)
	}
	if err != nil {
		logger.Fatal("server failed", zap.Error(err))
	}
}

func buildProvider(ctx context.Context, cfg config.Config, logger *zap.Logger) (marketdata.Provider, error) {
	switch cfg.Platform {
	case "binance":
		client := clients.NewBinanceClient(os.Getenv("BINANCE_API_KEY"), os.Getenv("BINANCE_API_SECRET"))
		return marketdata.NewBinanceProvider(client, logger), nil
	case "bybit":
		client := clients.NewBybitClient(os.Getenv("BYBIT_API_KEY"), os.Getenv("BYBIT_API_SECRET"))
		return marketdata.NewBybitProvider(client, logger), nil
	case "hyperliquid":
		privateKey := os.Getenv("HYPERLIQUID_PRIVATE_KEY")
		if privateKey == "" {
			return nil, errors.New("HYPERLIQUID_PRIVATE_KEY environment variable must be set")
		}
		client, err := clients.NewHyperliquidClient(ctx, privateKey, cfg.APIURL)
		if err != nil {
			return nil, err
		}
		return marketdata.NewHyperliquidProvider(client.Info(), logger), nil
	default:
		return nil, errors.Errorf("unsupported platform %q", cfg.Platform)
	}
}

func printReport(ctx context.Context, analyzer *analytics.Analyzer, symbols []string) error {
	overviews, err := analyzer.Overviews(ctx, symbols)
	if err != nil {
		return err
	}

	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(overviews)
}

package config

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	DefaultPlatform          = "binance"
	DefaultInterval          = "1d"
	DefaultCandleLimit       = 500
	DefaultListenAddr        = ":8085"
	DefaultCertCacheDir      = "cert-cache"
	DefaultHyperliquidAPIURL = "https://api.hyperliquid.xyz"
)

// Config runtime settings for the analytics service.
type Config struct {
	Platform     string
	Symbols      []string
	Interval     string
	CandleLimit  int
	ListenAddr   string
	TLSDomains   []string
	CertCacheDir string
	APIURL       string
	Report       bool
}

// ConfigTmp mirrors the YAML file before validation and default filling.
type ConfigTmp struct {
	Platform     string   `yaml:"platform"`
	Symbols      []string `yaml:"symbols"`
	Interval     string   `yaml:"interval"`
	CandleLimit  int      `yaml:"candle_limit"`
	ListenAddr   string   `yaml:"listen_addr"`
	TLSDomains   []string `yaml:"tls_domains"`
	CertCacheDir string   `yaml:"cert_cache_dir"`
	APIURL       string   `yaml:"api_url"`
	Report       bool     `yaml:"report"`
}

// Get reads the configuration from a YAML file when --config is set,
// otherwise from the remaining CLI flags.
func Get() (Config, error) {
	configPath := flag.String("config", "", "path to yaml config")
	platform := flag.String("platform", DefaultPlatform, "market data platform: binance, bybit or hyperliquid")
	symbols := flag.String("symbols", "BTC", "comma-separated symbols, example: BTC,ETH,SOL")
	interval := flag.String("interval", DefaultInterval, "candle interval, example: 4h")
	candleLimit := flag.Int("candlelimit", DefaultCandleLimit, "how many candles to load per symbol")
	listenAddr := flag.String("listenaddr", DefaultListenAddr, "HTTP listen address")
	report := flag.Bool("report", false, "print a one-shot JSON report instead of serving HTTP")
	flag.Parse()

	if *configPath != "" {
		return getYaml(*configPath)
	}

	return validate(Config{
		Platform:    *platform,
		Symbols:     splitList(*symbols),
		Interval:    *interval,
		CandleLimit: *candleLimit,
		ListenAddr:  *listenAddr,
		Report:      *report,
	})
}

func getYaml(path string) (Config, error) {
	var tmp ConfigTmp

	f, err := os.ReadFile(path)
	if err != nil {
		return Config{}, err
	}
	if err := yaml.Unmarshal(f, &tmp); err != nil {
		return Config{}, fmt.Errorf("incorrect yaml config %s: %w", path, err)
	}

	return validate(Config{
		Platform:     tmp.Platform,
		Symbols:      tmp.Symbols,
		Interval:     tmp.Interval,
		CandleLimit:  tmp.CandleLimit,
		ListenAddr:   tmp.ListenAddr,
		TLSDomains:   tmp.TLSDomains,
		CertCacheDir: tmp.CertCacheDir,
		APIURL:       tmp.APIURL,
		Report:       tmp.Report,
	})
}

func validate(cfg Config) (Config, error) {
	cfg.Platform = strings.ToLower(strings.TrimSpace(cfg.Platform))
	if cfg.Platform == "" {
		cfg.Platform = DefaultPlatform
	}
	switch cfg.Platform {
	case "binance", "bybit", "hyperliquid":
	default:
		return Config{}, fmt.Errorf("unsupported platform %q, expected binance, bybit or hyperliquid", cfg.Platform)
	}

	cleaned := make([]string, 0, len(cfg.Symbols))
	for _, symbol := range cfg.Symbols {
		if trimmed := strings.ToUpper(strings.TrimSpace(symbol)); trimmed != "" {
			cleaned = append(cleaned, trimmed)
		}
	}
	cfg.Symbols = cleaned
	if len(cfg.Symbols) == 0 {
		return Config{}, fmt.Errorf("at least one symbol is required")
	}

	if cfg.Interval == "" {
		cfg.Interval = DefaultInterval
	}
	if !validInterval(cfg.Interval) {
		return Config{}, fmt.Errorf("incorrect 'interval' param: %s, expected forms like 15m, 4h, 1d, 1w", cfg.Interval)
	}

	if cfg.CandleLimit == 0 {
		cfg.CandleLimit = DefaultCandleLimit
	}
	if cfg.CandleLimit < 0 {
		return Config{}, fmt.Errorf("incorrect 'candle_limit' param: %d", cfg.CandleLimit)
	}

	if cfg.ListenAddr == "" {
		cfg.ListenAddr = DefaultListenAddr
	}
	if cfg.CertCacheDir == "" {
		cfg.CertCacheDir = DefaultCertCacheDir
	}
	if cfg.APIURL == "" {
		cfg.APIURL = DefaultHyperliquidAPIURL
	}

	return cfg, nil
}

// validInterval accepts a positive number followed by a minute, hour, day or
// week unit.
func validInterval(interval string) bool {
	if len(interval) < 2 {
		return false
	}
	switch interval[len(interval)-1] {
	case 'm', 'h', 'd', 'w':
	default:
		return false
	}
	for _, r := range interval[:len(interval)-1] {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

func splitList(raw string) []string {
	var items []string
	for _, part := range strings.Split(raw, ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			items = append(items, trimmed)
		}
	}
	return items
}

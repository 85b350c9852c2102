package di

import (
	drepo "OracleScan/internal/domain/repository"
	"OracleScan/internal/handler/api"
	"OracleScan/internal/service/coingecko"
	"OracleScan/internal/service/metrics"
	"OracleScan/internal/usecase"
	"OracleScan/pkg/config"
	xhttp "OracleScan/pkg/http"
	applogger "OracleScan/pkg/logger"
	"OracleScan/pkg/server"
)

// ProvideLogger creates the application logger from config.
func ProvideLogger(cfg *config.Config) (*applogger.Logger, error) {
	return applogger.New(&applogger.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Output: cfg.Log.Output,
	})
}

// ProvideMetrics creates a Prometheus scan metrics recorder.
func ProvideMetrics() drepo.Metrics {
	return metrics.New()
}

// ProvideMarketDataSource creates the CoinGecko market-data client.
func ProvideMarketDataSource(cfg *config.Config) drepo.MarketDataSource {
	return coingecko.New(cfg)
}

// ProvideScanner creates the scan use case.
func ProvideScanner(
	source drepo.MarketDataSource,
	m drepo.Metrics,
	cfg *config.Config,
	l *applogger.Logger,
) *usecase.Scanner {
	s := usecase.NewScanner(source, m, cfg.Scan.MaxSymbols)
	s.SetLogger(l)
	return s
}

// ProvideScanHandler creates the HTTP handler.
func ProvideScanHandler(l *applogger.Logger, scanner *usecase.Scanner, cfg *config.Config) xhttp.Handler {
	return api.NewScanHandler(l, scanner, cfg)
}

// ProvideApp creates the application server.
func ProvideApp(cfg *config.Config, handler xhttp.Handler, l *applogger.Logger) *server.App {
	return server.New(cfg, handler, l)
}

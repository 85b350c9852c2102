package repository

import (
	"context"

	"OracleScan/internal/domain/models"
)

// MarketDataSource is the outbound market-data provider: a batched snapshot
// endpoint plus a per-asset historical chart endpoint.
type MarketDataSource interface {
	// Markets returns current snapshots for the given provider ids, in the
	// provider's own ordering. A transport error or non-2xx status is an error.
	Markets(ctx context.Context, ids []string) ([]models.MarketSnapshot, error)

	// MarketChart returns the hourly price/volume series for one asset over
	// the scan window.
	MarketChart(ctx context.Context, id string) (models.Chart, error)
}

// Metrics records scan-level observability signals.
type Metrics interface {
	RecordScan(seconds float64, assets int)
	RecordScanError(kind string)
	RecordChartError(symbol string)
	RecordScore(symbol string, score int)
}
